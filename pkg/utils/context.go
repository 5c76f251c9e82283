package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	UserIDKey      contextKey = "user_id"
	FirebaseUIDKey contextKey = "firebase_uid"
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

func GetFirebaseUIDFromContext(ctx context.Context) (string, bool) {
	uidVal := ctx.Value(FirebaseUIDKey)
	if uidVal == nil {
		return "", false
	}

	uid, ok := uidVal.(string)
	return uid, ok
}

func SetUserContext(ctx context.Context, userID uuid.UUID, firebaseUID string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID.String())
	ctx = context.WithValue(ctx, FirebaseUIDKey, firebaseUID)
	return ctx
}
