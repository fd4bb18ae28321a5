package usecase

import (
	"context"
	"errors"

	"hirehub/internal/domain"
	"hirehub/pkg/apperror"
	"hirehub/pkg/logger"
)

type paymentUsecase struct {
	userRepo domain.UserRepository
	gateway  domain.PaymentGateway
	amount   int
	currency string
}

func NewPaymentUsecase(userRepo domain.UserRepository, gateway domain.PaymentGateway, amount int, currency string) domain.PaymentUsecase {
	return &paymentUsecase{
		userRepo: userRepo,
		gateway:  gateway,
		amount:   amount,
		currency: currency,
	}
}

// Checkout creates a gateway order. The amount is fixed server-side; the
// client has no say in what it pays.
func (u *paymentUsecase) Checkout(ctx context.Context) (*domain.PaymentOrder, error) {
	userID, err := sessionUserID(ctx)
	if err != nil {
		return nil, err
	}

	orderID, err := u.gateway.CreateOrder(ctx, u.amount, u.currency, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.PaymentOrder{
		OrderID:  orderID,
		Amount:   u.amount,
		Currency: u.currency,
	}, nil
}

// Verify checks the callback signature and flips the subscribed flag.
// Fails closed: on any mismatch nothing is written.
func (u *paymentUsecase) Verify(ctx context.Context, cb domain.PaymentCallback) (*domain.User, error) {
	userID, err := sessionUserID(ctx)
	if err != nil {
		return nil, err
	}

	if !u.gateway.VerifySignature(cb) {
		logger.Log.Warn("payment signature mismatch", "user_id", userID, "order_id", cb.OrderID)
		return nil, apperror.BadRequest("Payment verification failed")
	}

	if err := u.userRepo.SetSubscribed(ctx, userID, true); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return user, nil
}
