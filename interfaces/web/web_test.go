package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newPageRouter(t *testing.T) http.Handler {
	t.Helper()
	h, err := NewHandler(zap.NewNop())
	require.NoError(t, err)

	r := chi.NewRouter()
	h.Register(r)
	return r
}

func getPage(router http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

// Every page route must render its template to completion; a mismatch
// between a route and its template name only shows up on execution.
func TestPages_RenderEmbeddedTemplates(t *testing.T) {
	router := newPageRouter(t)

	for path, marker := range map[string]string{
		"/":            `data-page="gallery"`,
		"/login":       `data-page="login"`,
		"/memory/new":  `data-page="form"`,
		"/memory/68b1f2a4c9e77d0012345678":      `data-page="detail"`,
		"/memory/68b1f2a4c9e77d0012345678/edit": `data-page="form"`,
	} {
		rec := getPage(router, path)

		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"), path)
		body := rec.Body.String()
		assert.Contains(t, body, marker, path)
		assert.Contains(t, body, "</html>", path)
	}
}

func TestDetailAndEditPages_CarryMemoryID(t *testing.T) {
	router := newPageRouter(t)

	for _, path := range []string{
		"/memory/68b1f2a4c9e77d0012345678",
		"/memory/68b1f2a4c9e77d0012345678/edit",
	} {
		rec := getPage(router, path)

		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Body.String(), `data-memory-id="68b1f2a4c9e77d0012345678"`, path)
	}
}

func TestStaticAssets_Served(t *testing.T) {
	router := newPageRouter(t)

	for _, path := range []string{"/static/style.css", "/static/app.js"} {
		rec := getPage(router, path)

		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.NotEmpty(t, rec.Body.String(), path)
	}
}
