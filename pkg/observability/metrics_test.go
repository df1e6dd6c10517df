package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCollector_ReturnsSharedInstance(t *testing.T) {
	first := NewCollector("lindsey")
	second := NewCollector("other")

	// Repeated construction must not panic with duplicate metric
	// registration; the first collector wins and later namespaces are
	// discarded.
	assert.Same(t, first, second)
}

func TestCollector_ObservesAndScrapes(t *testing.T) {
	c := NewCollector("lindsey")

	c.ObserveRequest(http.MethodGet, "/memories", "200", 5*time.Millisecond)
	c.ObserveRequest(http.MethodPost, "/memories", "201", 8*time.Millisecond)
	c.ObserveStoreOperation("find_all", "ok", 3*time.Millisecond)
	c.ObserveStoreOperation("insert", "error", 2*time.Millisecond)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "lindsey_http_requests_total")
	assert.Contains(t, body, "lindsey_http_request_duration_seconds")
	assert.Contains(t, body, "lindsey_store_operations_total")
	assert.Contains(t, body, "lindsey_store_operation_duration_seconds")
	assert.Contains(t, body, `route="/memories"`)
	assert.Contains(t, body, `operation="insert"`)
}
