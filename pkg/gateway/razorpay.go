package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"hirehub/internal/domain"

	razorpay "github.com/razorpay/razorpay-go"
)

// RazorpayGateway implements domain.PaymentGateway against the Razorpay
// orders API.
type RazorpayGateway struct {
	client *razorpay.Client
	secret string
}

func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{
		client: razorpay.NewClient(keyID, keySecret),
		secret: keySecret,
	}
}

// CreateOrder creates a gateway order. Amount is in the smallest currency
// unit (paise for INR).
func (g *RazorpayGateway) CreateOrder(ctx context.Context, amount int, currency, receipt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}
	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create payment order: %w", err)
	}

	orderID, ok := body["id"].(string)
	if !ok || orderID == "" {
		return "", fmt.Errorf("payment order response missing id")
	}
	return orderID, nil
}

// VerifySignature recomputes the HMAC-SHA256 the gateway signs its
// callback with (over "order_id|payment_id") and compares in constant
// time. Any mismatch fails closed.
func (g *RazorpayGateway) VerifySignature(cb domain.PaymentCallback) bool {
	return VerifySignature(g.secret, cb)
}

// VerifySignature is the bare verification primitive, split out so it can
// be tested without gateway credentials.
func VerifySignature(secret string, cb domain.PaymentCallback) bool {
	if cb.OrderID == "" || cb.PaymentID == "" || cb.Signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(cb.OrderID + "|" + cb.PaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	// hmac.Equal for a constant-time comparison.
	return hmac.Equal([]byte(expected), []byte(cb.Signature))
}
