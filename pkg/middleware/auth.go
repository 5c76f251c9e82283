package middleware

import (
	"context"
	"net/http"
	"strings"

	"art-market/internal/data/repository"
	"art-market/pkg/utils"

	firebaseauth "firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
)

// TokenVerifier is satisfied by *firebaseauth.Client.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error)
}

// Auth verifies the Firebase bearer token, resolves the local user, and
// stores both identities in the request context. Requests from signed-in
// users that never hit the sync endpoint fail here with 401.
func Auth(verifier TokenVerifier, userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			token, err := verifier.VerifyIDToken(r.Context(), parts[1])
			if err != nil {
				logger.Warn("Token verification failed", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			user, err := userRepo.FindByFirebaseUID(r.Context(), token.UID)
			if err != nil {
				logger.Error("Failed to resolve user",
					zap.Error(err),
					zap.String("firebase_uid", token.UID))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}
			if user == nil {
				logger.Warn("Authenticated user has no local account",
					zap.String("firebase_uid", token.UID))
				utils.ResponseUnauthorized(w, "Account not registered")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, token.UID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
