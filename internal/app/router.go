package app

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	handlersCart "freshcart/internal/handlers/cart"
	handlersCheckout "freshcart/internal/handlers/checkout"
	"freshcart/internal/middleware"
)

// NewRouter собирает все ручки магазина под /api и /metrics
func NewRouter(
	cartHandlers *handlersCart.CartHandler,
	checkoutHandlers *handlersCheckout.CheckoutHandler,
	metrics *middleware.HTTPMetrics,
	gatherer prometheus.Gatherer,
) *mux.Router {
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(metrics.Middleware)

	api.HandleFunc("/cart", cartHandlers.GetCart).Methods("GET")
	api.HandleFunc("/cart", cartHandlers.ClearCart).Methods("DELETE")
	api.HandleFunc("/cart/summary", cartHandlers.Summary).Methods("GET")
	api.HandleFunc("/cart/items", cartHandlers.AddItem).Methods("POST")
	api.HandleFunc("/cart/items/{id}", cartHandlers.UpdateQuantity).Methods("PATCH")
	api.HandleFunc("/cart/items/{id}", cartHandlers.RemoveItem).Methods("DELETE")

	api.HandleFunc("/checkout", checkoutHandlers.PlaceOrder).Methods("POST")
	api.HandleFunc("/orders", checkoutHandlers.Orders).Methods("GET")

	return r
}
