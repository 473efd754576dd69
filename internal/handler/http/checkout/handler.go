package checkout_http

import (
	_ "embed"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"fastpay-be/internal/order"
	"fastpay-be/internal/payment"
	"fastpay-be/internal/verification"
)

//go:embed checkout.html
var checkoutPage []byte

type CheckoutHandler struct {
	orders   order.Service
	verifier verification.Service
	gateway  payment.Gateway
	logger   *zap.Logger
}

func NewCheckoutHandler(orders order.Service, verifier verification.Service, gateway payment.Gateway, l *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		orders:   orders,
		verifier: verifier,
		gateway:  gateway,
		logger:   l,
	}
}

type CreateOrderRequest struct {
	Amount json.Number `json:"amount"`
}

type CreateOrderResponse struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"keyId"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func (h *CheckoutHandler) CreateOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	// json.Number keeps "50000.5" and "50000" apart; only whole amounts pass.
	amount, err := req.Amount.Int64()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: order.ErrInvalidAmount.Error()})
		return
	}

	ord, err := h.orders.CreateOrder(r.Context(), amount)
	if err != nil {
		if errors.Is(err, order.ErrInvalidAmount) {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: order.ErrInvalidAmount.Error()})
			return
		}
		h.logger.Error("Failed to create order", zap.Error(err))
		writeJSON(w, http.StatusBadGateway, ErrorResponse{Error: "order creation failed"})
		return
	}

	writeJSON(w, http.StatusOK, CreateOrderResponse{
		OrderID:  ord.ID,
		Amount:   ord.AmountMinorUnits,
		Currency: ord.Currency,
		KeyID:    h.gateway.KeyID(),
	})
}

func (h *CheckoutHandler) VerifyPaymentHandler(w http.ResponseWriter, r *http.Request) {
	var claim verification.PaymentClaim
	if err := json.NewDecoder(r.Body).Decode(&claim); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	writeJSON(w, http.StatusOK, h.verifier.Verify(r.Context(), claim))
}

func (h *CheckoutHandler) GetOrderHandler(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	ord, err := h.orders.GetOrder(r.Context(), orderID)
	if err != nil {
		h.logger.Error("Failed to fetch order", zap.String("order_id", orderID), zap.Error(err))
		writeJSON(w, http.StatusBadGateway, ErrorResponse{Error: "order lookup failed"})
		return
	}

	writeJSON(w, http.StatusOK, ord)
}

func (h *CheckoutHandler) GetPaymentHandler(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "paymentID")

	p, err := h.gateway.FetchPayment(r.Context(), paymentID)
	if err != nil {
		h.logger.Error("Failed to fetch payment", zap.String("payment_id", paymentID), zap.Error(err))
		writeJSON(w, http.StatusBadGateway, ErrorResponse{Error: "payment lookup failed"})
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (h *CheckoutHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"service": "fastpay",
		"status":  "ok",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *CheckoutHandler) CheckoutPageHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(checkoutPage)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
