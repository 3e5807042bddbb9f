package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"freshcart/internal/cart"
	"freshcart/internal/notify"
	"freshcart/internal/pricing"
	types "freshcart/internal/types/cart"
	myErr "freshcart/internal/types/errors"
)

// CartHandler ручки корзины
type CartHandler struct {
	Logger    *zap.SugaredLogger
	Cart      cart.CartStore
	Calc      *pricing.Calculator
	Formatter *pricing.Formatter
	Notifier  notify.Notifier
}

// NewCartHandler конструктор
func NewCartHandler(
	log *zap.SugaredLogger,
	cs cart.CartStore,
	calc *pricing.Calculator,
	f *pricing.Formatter,
	n notify.Notifier,
) *CartHandler {
	return &CartHandler{
		Logger:    log,
		Cart:      cs,
		Calc:      calc,
		Formatter: f,
		Notifier:  n,
	}
}

// CartResponse - корзина вместе с агрегатами
type CartResponse struct {
	Items           []types.CartItem `json:"items"`
	TotalItems      int              `json:"total_items"`
	Subtotal        decimal.Decimal  `json:"subtotal"`
	SubtotalDisplay string           `json:"subtotal_display"`
	Currency        string           `json:"currency"`
}

// SummaryResponse - итог корзины; Message заполняется, если купон не принят
type SummaryResponse struct {
	pricing.Summary
	Message string `json:"message,omitempty"`
}

type updateQuantityForm struct {
	Delta int `json:"delta"`
}

// GetCart - GET /cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	h.writeCart(w, http.StatusOK)
}

// AddItem - POST /cart/items
// Тело - товар без количества, каждый вызов добавляет одну единицу
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var item types.NewItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		myErr.SendErrorTo(w, myErr.ErrInvalidJSONPayload, http.StatusBadRequest, h.Logger)
		return
	}
	if item.ID <= 0 {
		myErr.SendErrorTo(w, myErr.ErrBadID, http.StatusBadRequest, h.Logger)
		return
	}
	if item.Price.IsNegative() {
		myErr.SendErrorTo(w, myErr.ErrInvalidPrice, http.StatusBadRequest, h.Logger)
		return
	}

	if err := h.Cart.AddToCart(r.Context(), item); err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	h.Logger.Infof("added product %d to cart", item.ID)
	h.writeCart(w, http.StatusCreated)
}

// RemoveItem - DELETE /cart/items/{id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.Cart.RemoveItem(r.Context(), id); err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	h.writeCart(w, http.StatusOK)
}

// UpdateQuantity - PATCH /cart/items/{id}, тело {"delta": n}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var form updateQuantityForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		myErr.SendErrorTo(w, myErr.ErrInvalidJSONPayload, http.StatusBadRequest, h.Logger)
		return
	}

	if err := h.Cart.UpdateQuantity(r.Context(), id, form.Delta); err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	h.writeCart(w, http.StatusOK)
}

// ClearCart - DELETE /cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.Cart.ClearCart(r.Context()); err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	h.writeCart(w, http.StatusOK)
}

// Summary - GET /cart/summary?coupon=CODE
func (h *CartHandler) Summary(w http.ResponseWriter, r *http.Request) {
	coupon := r.URL.Query().Get("coupon")

	summary, err := h.Calc.Summarize(h.Cart.GetSubtotal(), coupon)
	if err != nil {
		if errors.Is(err, myErr.ErrInvalidCoupon) {
			// итог без скидки отдаётся вместе с ошибкой
			h.Notifier.NotifyError(r.Context(), "Invalid coupon code")
			h.writeJSON(w, http.StatusUnprocessableEntity, SummaryResponse{
				Summary: summary,
				Message: err.Error(),
			})
			return
		}
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}
	if summary.Coupon != "" {
		h.Notifier.NotifySuccess(r.Context(), "Coupon applied successfully!")
	}

	h.writeJSON(w, http.StatusOK, SummaryResponse{Summary: summary})
}

func (h *CartHandler) parseID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		myErr.SendErrorTo(w, myErr.ErrBadID, http.StatusBadRequest, h.Logger)
		return 0, false
	}

	return id, true
}

func (h *CartHandler) writeCart(w http.ResponseWriter, status int) {
	items := h.Cart.Items()
	subtotal := cart.Subtotal(items)

	h.writeJSON(w, status, CartResponse{
		Items:           items,
		TotalItems:      cart.TotalItems(items),
		Subtotal:        subtotal,
		SubtotalDisplay: h.Formatter.Format(subtotal),
		Currency:        h.Formatter.Currency(),
	})
}

func (h *CartHandler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Logger.Warnw("error writing response", "err", err)
	}
}
