package domain

import "context"

// PaymentOrder is what the checkout endpoint hands to the payment widget.
type PaymentOrder struct {
	OrderID  string `json:"order_id"`
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
}

// PaymentCallback carries the three fields the payment widget returns to
// the browser, forwarded verbatim to the verify endpoint.
type PaymentCallback struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

// PaymentGateway abstracts the external payment provider.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount int, currency, receipt string) (orderID string, err error)
	// VerifySignature recomputes the gateway's HMAC over the callback and
	// compares in constant time. Any mismatch must fail closed.
	VerifySignature(cb PaymentCallback) bool
}

type PaymentUsecase interface {
	Checkout(ctx context.Context) (*PaymentOrder, error)
	// Verify marks the session user as subscribed only when the callback
	// signature checks out, and returns the updated user.
	Verify(ctx context.Context, cb PaymentCallback) (*User, error)
}
