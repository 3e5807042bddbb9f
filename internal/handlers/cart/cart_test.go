package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"freshcart/internal/mocks"
	"freshcart/internal/pricing"
	types "freshcart/internal/types/cart"
	myErr "freshcart/internal/types/errors"
)

type recordingNotifier struct {
	success []string
	errors  []string
}

func (n *recordingNotifier) NotifySuccess(_ context.Context, message string) {
	n.success = append(n.success, message)
}

func (n *recordingNotifier) NotifyError(_ context.Context, message string) {
	n.errors = append(n.errors, message)
}

var tomatoesInCart = []types.CartItem{
	{ID: 1, Name: "Tomatoes", Price: decimal.RequireFromString("2.99"), Unit: "500g", Quantity: 2},
}

func newHandler(t *testing.T, ctrl *gomock.Controller) (*CartHandler, *mocks.MockCartStore, *recordingNotifier) {
	t.Helper()

	formatter, err := pricing.NewFormatter("USD")
	require.NoError(t, err)

	mockCart := mocks.NewMockCartStore(ctrl)
	notifier := &recordingNotifier{}
	handler := NewCartHandler(
		zaptest.NewLogger(t).Sugar(),
		mockCart,
		pricing.NewCalculator(pricing.DefaultConfig()),
		formatter,
		notifier,
	)

	return handler, mockCart, notifier
}

func TestCartHandler_GetCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, mockCart, _ := newHandler(t, ctrl)
	mockCart.EXPECT().Items().Return(tomatoesInCart)

	w := httptest.NewRecorder()
	handler.GetCart(w, httptest.NewRequest(http.MethodGet, "/api/cart", nil))

	resp := w.Result()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body CartResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Items, 1)
	assert.Equal(t, 2, body.TotalItems)
	assert.True(t, decimal.RequireFromString("5.98").Equal(body.Subtotal))
	assert.Equal(t, "USD", body.Currency)
	assert.NotEmpty(t, body.SubtotalDisplay)
}

func TestCartHandler_AddItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, mockCart, _ := newHandler(t, ctrl)

	tests := []struct {
		name           string
		body           string
		mockBehavior   func()
		expectedStatus int
	}{
		{
			name: "success",
			body: `{"id":1,"name":"Tomatoes","image":"/t.jpg","price":2.99,"unit":"500g"}`,
			mockBehavior: func() {
				mockCart.EXPECT().AddToCart(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, item types.NewItem) error {
						assert.Equal(t, 1, item.ID)
						assert.True(t, decimal.RequireFromString("2.99").Equal(item.Price))
						return nil
					})
				mockCart.EXPECT().Items().Return(tomatoesInCart)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "bad json",
			body:           `{"id":`,
			mockBehavior:   func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad id",
			body:           `{"id":0,"name":"Tomatoes","price":2.99}`,
			mockBehavior:   func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "negative price",
			body:           `{"id":3,"name":"Tomatoes","price":-1}`,
			mockBehavior:   func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "persist error",
			body: `{"id":1,"name":"Tomatoes","price":2.99}`,
			mockBehavior: func() {
				mockCart.EXPECT().AddToCart(gomock.Any(), gomock.Any()).Return(myErr.ErrPersist)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockBehavior()
			req := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(tc.body))
			w := httptest.NewRecorder()

			handler.AddItem(w, req)

			assert.Equal(t, tc.expectedStatus, w.Result().StatusCode)
		})
	}
}

func TestCartHandler_RemoveItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, mockCart, _ := newHandler(t, ctrl)

	tests := []struct {
		name           string
		id             string
		mockBehavior   func()
		expectedStatus int
	}{
		{
			name: "success",
			id:   "1",
			mockBehavior: func() {
				mockCart.EXPECT().RemoveItem(gomock.Any(), 1).Return(nil)
				mockCart.EXPECT().Items().Return([]types.CartItem{})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "bad id",
			id:             "abc",
			mockBehavior:   func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "store error",
			id:   "1",
			mockBehavior: func() {
				mockCart.EXPECT().RemoveItem(gomock.Any(), 1).Return(errors.New("persist failed"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockBehavior()
			req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/cart/items/%s", tc.id), nil)
			req = mux.SetURLVars(req, map[string]string{"id": tc.id})
			w := httptest.NewRecorder()

			handler.RemoveItem(w, req)

			assert.Equal(t, tc.expectedStatus, w.Result().StatusCode)
		})
	}
}

func TestCartHandler_UpdateQuantity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, mockCart, _ := newHandler(t, ctrl)

	tests := []struct {
		name           string
		id             string
		body           string
		mockBehavior   func()
		expectedStatus int
	}{
		{
			name: "decrement",
			id:   "1",
			body: `{"delta":-1}`,
			mockBehavior: func() {
				mockCart.EXPECT().UpdateQuantity(gomock.Any(), 1, -1).Return(nil)
				mockCart.EXPECT().Items().Return(tomatoesInCart)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "negative id",
			id:             "-4",
			body:           `{"delta":1}`,
			mockBehavior:   func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad body",
			id:             "1",
			body:           `delta`,
			mockBehavior:   func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockBehavior()
			req := httptest.NewRequest(http.MethodPatch, "/api/cart/items/"+tc.id, strings.NewReader(tc.body))
			req = mux.SetURLVars(req, map[string]string{"id": tc.id})
			w := httptest.NewRecorder()

			handler.UpdateQuantity(w, req)

			assert.Equal(t, tc.expectedStatus, w.Result().StatusCode)
		})
	}
}

func TestCartHandler_ClearCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler, mockCart, _ := newHandler(t, ctrl)
	mockCart.EXPECT().ClearCart(gomock.Any()).Return(nil)
	mockCart.EXPECT().Items().Return([]types.CartItem{})

	w := httptest.NewRecorder()
	handler.ClearCart(w, httptest.NewRequest(http.MethodDelete, "/api/cart", nil))

	resp := w.Result()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body CartResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Items)
	assert.Equal(t, 0, body.TotalItems)
}

func TestCartHandler_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("coupon applied", func(t *testing.T) {
		handler, mockCart, notifier := newHandler(t, ctrl)
		mockCart.EXPECT().GetSubtotal().Return(decimal.NewFromInt(20))

		w := httptest.NewRecorder()
		handler.Summary(w, httptest.NewRequest(http.MethodGet, "/api/cart/summary?coupon=fresh10", nil))

		resp := w.Result()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var summary SummaryResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
		assert.True(t, decimal.RequireFromString("22.99").Equal(summary.Total))
		assert.Equal(t, "fresh10", summary.Coupon)
		assert.Empty(t, summary.Message)
		assert.Equal(t, []string{"Coupon applied successfully!"}, notifier.success)
	})

	t.Run("invalid coupon", func(t *testing.T) {
		handler, mockCart, notifier := newHandler(t, ctrl)
		mockCart.EXPECT().GetSubtotal().Return(decimal.NewFromInt(20))

		w := httptest.NewRecorder()
		handler.Summary(w, httptest.NewRequest(http.MethodGet, "/api/cart/summary?coupon=nope", nil))

		resp := w.Result()
		require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, []string{"Invalid coupon code"}, notifier.errors)

		var summary SummaryResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
		assert.Equal(t, myErr.ErrInvalidCoupon.Error(), summary.Message)
		assert.True(t, summary.Discount.IsZero())
		assert.True(t, decimal.RequireFromString("24.99").Equal(summary.Total))
	})
}
