package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestHTTPMetrics_Middleware(t *testing.T) {
	m := NewHTTPMetrics(prometheus.NewRegistry())

	r := mux.NewRouter()
	r.Use(m.Middleware)
	r.HandleFunc("/cart/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		if mux.Vars(r)["id"] == "0" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusOK)
	}).Methods("DELETE")

	for _, id := range []string{"1", "2", "0"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/cart/items/"+id, nil))
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(m.requestsTotal.WithLabelValues("DELETE", "/cart/items/{id}", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.errorsTotal.WithLabelValues("DELETE", "/cart/items/{id}", "400")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.inFlightRequests))
}
