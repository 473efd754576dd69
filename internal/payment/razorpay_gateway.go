package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	razorpay "github.com/razorpay/razorpay-go"
	"go.uber.org/zap"

	"fastpay-be/internal/logger"
)

// orderAPI and paymentAPI mirror the razorpay-go resource methods the
// gateway relies on, so tests can stub the SDK.
type orderAPI interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
	Fetch(orderID string, queryParams map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

type paymentAPI interface {
	Fetch(paymentID string, queryParams map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

type razorpayGateway struct {
	keyID     string
	keySecret string
	orders    orderAPI
	payments  paymentAPI
}

// ----------------- Constructor -----------------

func NewRazorpayGateway(keyID, keySecret string) Gateway {
	if keyID == "" || keySecret == "" {
		logger.L().Warn("Razorpay credentials are empty")
	}

	client := razorpay.NewClient(keyID, keySecret)

	return &razorpayGateway{
		keyID:     keyID,
		keySecret: keySecret,
		orders:    client.Order,
		payments:  client.Payment,
	}
}

func (g *razorpayGateway) KeyID() string {
	return g.keyID
}

// ----------------- CreateOrder -----------------

func (g *razorpayGateway) CreateOrder(ctx context.Context, amountMinorUnits int64, currency, receipt string) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.Int64("amount", amountMinorUnits),
		zap.String("currency", currency),
		zap.String("receipt", receipt),
	)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := map[string]interface{}{
		"amount":          amountMinorUnits,
		"currency":        currency,
		"receipt":         receipt,
		"payment_capture": 1,
	}

	log.Info("Sending order request to Razorpay")

	resp, err := g.orders.Create(data, nil)
	if err != nil {
		log.Error("Razorpay order creation failed", zap.Error(err))
		return nil, &GatewayError{Op: "create order", Err: err}
	}

	ord := orderFromResponse(resp)

	log.Info("Razorpay order created",
		zap.String("order_id", ord.ID),
		zap.String("status", ord.Status),
	)

	return ord, nil
}

// ----------------- FetchOrder -----------------

func (g *razorpayGateway) FetchOrder(ctx context.Context, orderID string) (*Order, error) {
	log := logger.FromCtx(ctx).With(zap.String("order_id", orderID))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp, err := g.orders.Fetch(orderID, nil, nil)
	if err != nil {
		log.Error("Razorpay order fetch failed", zap.Error(err))
		return nil, &GatewayError{Op: "fetch order", Err: err}
	}

	return orderFromResponse(resp), nil
}

// ----------------- FetchPayment -----------------

func (g *razorpayGateway) FetchPayment(ctx context.Context, paymentID string) (*Payment, error) {
	log := logger.FromCtx(ctx).With(zap.String("payment_id", paymentID))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp, err := g.payments.Fetch(paymentID, nil, nil)
	if err != nil {
		log.Error("Razorpay payment fetch failed", zap.Error(err))
		return nil, &GatewayError{Op: "fetch payment", Err: err}
	}

	return paymentFromResponse(resp), nil
}

// ----------------- ExpectedSignature -----------------

// ExpectedSignature computes hex(HMAC_SHA256(orderID + "|" + paymentID,
// keySecret)), the signature Razorpay attaches to a completed checkout.
func (g *razorpayGateway) ExpectedSignature(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// ----------------- Response mapping -----------------

func orderFromResponse(resp map[string]interface{}) *Order {
	return &Order{
		ID:               asString(resp["id"]),
		AmountMinorUnits: asInt64(resp["amount"]),
		Currency:         asString(resp["currency"]),
		Receipt:          asString(resp["receipt"]),
		Status:           asString(resp["status"]),
		CreatedAt:        asUnixTime(resp["created_at"]),
	}
}

func paymentFromResponse(resp map[string]interface{}) *Payment {
	return &Payment{
		ID:               asString(resp["id"]),
		OrderID:          asString(resp["order_id"]),
		AmountMinorUnits: asInt64(resp["amount"]),
		Currency:         asString(resp["currency"]),
		Status:           asString(resp["status"]),
		Method:           asString(resp["method"]),
		CreatedAt:        asUnixTime(resp["created_at"]),
	}
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asInt64(v interface{}) int64 {
	switch n := v.(type) {
	case float64:
		return int64(n)
	case json.Number:
		i, _ := n.Int64()
		return i
	case int64:
		return n
	case int:
		return int64(n)
	}
	return 0
}

func asUnixTime(v interface{}) time.Time {
	sec := asInt64(v)
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0).UTC()
}
