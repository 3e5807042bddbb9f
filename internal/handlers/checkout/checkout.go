package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"freshcart/internal/checkout"
	myErr "freshcart/internal/types/errors"
	"freshcart/internal/types/order"
)

// CheckoutHandler ручки оформления заказа
type CheckoutHandler struct {
	Logger  *zap.SugaredLogger
	Service *checkout.Service
}

// NewCheckoutHandler конструктор
func NewCheckoutHandler(log *zap.SugaredLogger, s *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{
		Logger:  log,
		Service: s,
	}
}

// PlaceOrder - POST /checkout
// Тело - order.Shipping, в ответ созданный заказ
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var form order.Shipping
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		myErr.SendErrorTo(w, myErr.ErrInvalidJSONPayload, http.StatusBadRequest, h.Logger)
		return
	}

	placed, err := h.Service.PlaceOrder(r.Context(), form)
	if err != nil {
		switch {
		case errors.Is(err, myErr.ErrMissingFields), errors.Is(err, myErr.ErrBadDelivery):
			myErr.SendErrorTo(w, err, http.StatusBadRequest, h.Logger)
		case errors.Is(err, myErr.ErrEmptyCart):
			myErr.SendErrorTo(w, err, http.StatusConflict, h.Logger)
		default:
			myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(placed); err != nil {
		h.Logger.Warnw("error writing response", "err", err)
	}
}

// Orders - GET /orders
func (h *CheckoutHandler) Orders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Service.Orders(r.Context())
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(orders); err != nil {
		h.Logger.Warnw("error writing response", "err", err)
	}
}
