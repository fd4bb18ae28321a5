package usecase_test

import (
	"testing"

	"hirehub/internal/domain"
	"hirehub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCheckoutUsesServerSidePrice(t *testing.T) {
	userRepo := new(MockUserRepo)
	gw := new(MockGateway)
	uc := usecase.NewPaymentUsecase(userRepo, gw, 29900, "INR")
	ctx := sessionCtx("user-1", domain.RoleJobseeker)

	gw.On("CreateOrder", mock.Anything, 29900, "INR", "user-1").Return("order_123", nil)

	order, err := uc.Checkout(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "order_123", order.OrderID)
	assert.Equal(t, 29900, order.Amount)
	assert.Equal(t, "INR", order.Currency)
}

func TestVerifyTamperedCallback(t *testing.T) {
	userRepo := new(MockUserRepo)
	gw := new(MockGateway)
	uc := usecase.NewPaymentUsecase(userRepo, gw, 29900, "INR")
	ctx := sessionCtx("user-1", domain.RoleJobseeker)

	gw.On("VerifySignature", mock.Anything).Return(false)

	_, err := uc.Verify(ctx, domain.PaymentCallback{
		OrderID:   "order_123",
		PaymentID: "pay_456",
		Signature: "forged",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Payment verification failed")

	// Fails closed: nothing written.
	userRepo.AssertNotCalled(t, "SetSubscribed", mock.Anything, mock.Anything, mock.Anything)
}

func TestVerifyMarksSubscribed(t *testing.T) {
	userRepo := new(MockUserRepo)
	gw := new(MockGateway)
	uc := usecase.NewPaymentUsecase(userRepo, gw, 29900, "INR")
	ctx := sessionCtx("user-1", domain.RoleJobseeker)

	gw.On("VerifySignature", mock.Anything).Return(true)
	userRepo.On("SetSubscribed", mock.Anything, "user-1", true).Return(nil)
	userRepo.On("GetByID", mock.Anything, "user-1").
		Return(&domain.User{ID: "user-1", Subscribed: true}, nil)

	user, err := uc.Verify(ctx, domain.PaymentCallback{
		OrderID:   "order_123",
		PaymentID: "pay_456",
		Signature: "valid",
	})
	assert.NoError(t, err)
	assert.True(t, user.Subscribed)
	userRepo.AssertCalled(t, "SetSubscribed", mock.Anything, "user-1", true)
}
