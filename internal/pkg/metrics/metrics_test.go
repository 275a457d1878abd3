package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"gotienda/internal/pkg/metrics"
)

func TestMiddlewareRecordsRoutePattern(t *testing.T) {
	m := metrics.NewMetrics()

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/v1/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/products/abc", nil))
	assert.Equal(t, http.StatusTeapot, rr.Code)

	out := httptest.NewRecorder()
	m.Handler().ServeHTTP(out, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := out.Body.String()
	assert.Contains(t, body, `gotienda_http_requests_total{code="418",method="GET",route="/v1/products/{id}"} 1`)
	assert.Contains(t, body, "gotienda_http_request_duration_seconds_bucket")
	assert.Contains(t, body, "go_goroutines")
}
