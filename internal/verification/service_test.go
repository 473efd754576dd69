package verification

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"fastpay-be/internal/order"
	"fastpay-be/internal/payment"
)

func sign(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestService_Verify(t *testing.T) {
	ctx := context.Background()
	secret := "test_secret"

	// The real gateway computes the expected signature; no network involved.
	gw := payment.NewRazorpayGateway("rzp_test_key", secret)
	svc := NewService(gw)

	orderID := "order_abc123"
	paymentID := "pay_xyz789"

	t.Run("Correct signature accepted", func(t *testing.T) {
		res := svc.Verify(ctx, PaymentClaim{
			OrderID:   orderID,
			PaymentID: paymentID,
			Signature: sign(orderID, paymentID, secret),
		})

		assert.True(t, res.Valid)
		assert.Equal(t, order.StatusVerified, res.Status)
	})

	t.Run("Tampered signature rejected", func(t *testing.T) {
		res := svc.Verify(ctx, PaymentClaim{
			OrderID:   orderID,
			PaymentID: paymentID,
			Signature: "tampered",
		})

		assert.False(t, res.Valid)
		assert.Equal(t, order.StatusRejected, res.Status)
	})

	t.Run("Single bit flip in any field rejects", func(t *testing.T) {
		valid := sign(orderID, paymentID, secret)

		cases := []PaymentClaim{
			{OrderID: "order_abc122", PaymentID: paymentID, Signature: valid},
			{OrderID: orderID, PaymentID: "pay_xyz788", Signature: valid},
			{OrderID: orderID, PaymentID: paymentID, Signature: flipLastBit(valid)},
		}

		for _, claim := range cases {
			res := svc.Verify(ctx, claim)
			assert.False(t, res.Valid)
		}
	})

	t.Run("Signature from another secret rejected", func(t *testing.T) {
		res := svc.Verify(ctx, PaymentClaim{
			OrderID:   orderID,
			PaymentID: paymentID,
			Signature: sign(orderID, paymentID, "other_secret"),
		})

		assert.False(t, res.Valid)
	})

	t.Run("Empty claim rejected", func(t *testing.T) {
		res := svc.Verify(ctx, PaymentClaim{})
		assert.False(t, res.Valid)
		assert.Equal(t, order.StatusRejected, res.Status)
	})
}

func flipLastBit(hexSig string) string {
	b := []byte(hexSig)
	if b[len(b)-1] == '0' {
		b[len(b)-1] = '1'
	} else {
		b[len(b)-1] = '0'
	}
	return string(b)
}
