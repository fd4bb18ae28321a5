package usecase

import (
	"context"

	"hirehub/internal/domain"
	"hirehub/pkg/apperror"
)

// Session values are placed on the request context by the auth
// middleware. Missing values fail safe as unauthenticated.

func sessionUserID(ctx context.Context) (string, error) {
	id, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || id == "" {
		return "", apperror.Unauthorized("User not authenticated")
	}
	return id, nil
}

func sessionRole(ctx context.Context) string {
	role, _ := ctx.Value(domain.KeyUserRole).(string)
	return role
}
