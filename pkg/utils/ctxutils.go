package utils

import (
	"context"

	"github.com/google/uuid"

	"order-catalog/pkg/contextkeys"
	apperrors "order-catalog/pkg/errors"
)

// GetUserIDFromCtx returns the authenticated caller's user id. The auth
// middleware puts it there in production; tests inject a fixed value.
func GetUserIDFromCtx(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctx.Value(contextkeys.UserIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, apperrors.ErrUserIDNotFoundInContext
	}
	return userID, nil
}

// WithUserID returns a context carrying the caller's user id.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, contextkeys.UserIDKey, userID)
}
