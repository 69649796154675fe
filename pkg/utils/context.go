package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	UserIDKey     contextKey = "user_id"
	RoleKey       contextKey = "role"
	BusinessIDKey contextKey = "business_id"
)

func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userIDVal := ctx.Value(UserIDKey)
	if userIDVal == nil {
		return uuid.Nil, false
	}

	userIDStr, ok := userIDVal.(string)
	if !ok {
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, false
	}

	return userID, true
}

func GetRoleFromContext(ctx context.Context) (string, bool) {
	roleVal := ctx.Value(RoleKey)
	if roleVal == nil {
		return "", false
	}

	role, ok := roleVal.(string)
	return role, ok
}

// GetBusinessIDFromContext returns the business the caller belongs to.
// Admin users carry no business and get (uuid.Nil, false).
func GetBusinessIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	val := ctx.Value(BusinessIDKey)
	if val == nil {
		return uuid.Nil, false
	}

	str, ok := val.(string)
	if !ok || str == "" {
		return uuid.Nil, false
	}

	businessID, err := uuid.Parse(str)
	if err != nil {
		return uuid.Nil, false
	}

	return businessID, true
}

func SetUserContext(ctx context.Context, userID uuid.UUID, role string, businessID *uuid.UUID) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID.String())
	ctx = context.WithValue(ctx, RoleKey, role)
	if businessID != nil {
		ctx = context.WithValue(ctx, BusinessIDKey, businessID.String())
	}
	return ctx
}
