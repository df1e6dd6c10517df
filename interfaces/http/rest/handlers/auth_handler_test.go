package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jn0w/Lindsey/pkg/auth"
)

func newAuthHandler(t *testing.T) (*AuthHandler, *auth.TokenIssuer) {
	t.Helper()
	issuer, err := auth.NewTokenIssuer("test-secret", "lindsey")
	require.NoError(t, err)
	return NewAuthHandler("13", "07", issuer, zap.NewNop()), issuer
}

func postLogin(t *testing.T, h *AuthHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader([]byte(body)))
	h.Login(rec, req)
	return rec
}

func TestLogin_Success(t *testing.T) {
	h, issuer := newAuthHandler(t)

	rec := postLogin(t, h, `{"day":"13","month":"07"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Login successful", body["message"])

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, "auth", cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 30*24*60*60, cookie.MaxAge)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	// The cookie carries a verifiable token, not a bare marker.
	assert.NoError(t, issuer.Verify(cookie.Value))
}

func TestLogin_NumericDayMatchesStringConstant(t *testing.T) {
	h, _ := newAuthHandler(t)

	// 13 coerces to "13" and matches; 7 coerces to "7" and does not
	// match the configured "07".
	rec := postLogin(t, h, `{"day":13,"month":"07"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = postLogin(t, h, `{"day":"13","month":7}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_WrongCredentials(t *testing.T) {
	h, _ := newAuthHandler(t)

	for _, body := range []string{
		`{"day":"14","month":"07"}`,
		`{"day":"13","month":"08"}`,
		`{"day":"07","month":"13"}`,
	} {
		rec := postLogin(t, h, body)
		require.Equal(t, http.StatusUnauthorized, rec.Code, body)
		assert.Empty(t, rec.Result().Cookies(), body)
	}
}

func TestLogin_MissingFields(t *testing.T) {
	h, _ := newAuthHandler(t)

	for _, body := range []string{
		`{}`,
		`{"day":"13"}`,
		`{"month":"07"}`,
		`{"day":"","month":""}`,
	} {
		rec := postLogin(t, h, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestLogin_InvalidBody(t *testing.T) {
	h, _ := newAuthHandler(t)

	rec := postLogin(t, h, `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogout_ClearsCookie(t *testing.T) {
	h, _ := newAuthHandler(t)

	rec := httptest.NewRecorder()
	h.Logout(rec, httptest.NewRequest(http.MethodGet, "/auth/logout", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "auth", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)

	// Idempotent: clearing again still succeeds.
	rec = httptest.NewRecorder()
	h.Logout(rec, httptest.NewRequest(http.MethodGet, "/auth/logout", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCoerceString(t *testing.T) {
	assert.Equal(t, "07", coerceString("07"))
	assert.Equal(t, "7", coerceString(float64(7)))
	assert.Equal(t, "13", coerceString(float64(13)))
	assert.Equal(t, "", coerceString(nil))
	assert.Equal(t, "", coerceString(true))
}
