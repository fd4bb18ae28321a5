package gateway_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"hirehub/internal/domain"
	"hirehub/pkg/gateway"

	"github.com/stretchr/testify/assert"
)

const testSecret = "rzp_test_secret"

func sign(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignatureAccepted(t *testing.T) {
	cb := domain.PaymentCallback{
		OrderID:   "order_123",
		PaymentID: "pay_456",
	}
	cb.Signature = sign(cb.OrderID, cb.PaymentID)

	assert.True(t, gateway.VerifySignature(testSecret, cb))
}

func TestVerifySignatureFailsClosed(t *testing.T) {
	valid := sign("order_123", "pay_456")

	cases := map[string]domain.PaymentCallback{
		"tampered order id":   {OrderID: "order_999", PaymentID: "pay_456", Signature: valid},
		"tampered payment id": {OrderID: "order_123", PaymentID: "pay_999", Signature: valid},
		"tampered signature":  {OrderID: "order_123", PaymentID: "pay_456", Signature: valid[:len(valid)-1] + "0"},
		"truncated signature": {OrderID: "order_123", PaymentID: "pay_456", Signature: valid[:10]},
		"empty signature":     {OrderID: "order_123", PaymentID: "pay_456"},
		"empty order id":      {PaymentID: "pay_456", Signature: valid},
		"empty payment id":    {OrderID: "order_123", Signature: valid},
	}

	for name, cb := range cases {
		t.Run(name, func(t *testing.T) {
			assert.False(t, gateway.VerifySignature(testSecret, cb))
		})
	}
}

func TestVerifySignatureWrongSecret(t *testing.T) {
	cb := domain.PaymentCallback{OrderID: "order_123", PaymentID: "pay_456"}
	cb.Signature = sign(cb.OrderID, cb.PaymentID)

	assert.False(t, gateway.VerifySignature("some-other-secret", cb))
}
