package wire

import (
	"art-market/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// POST /api/auth/user - Sync the signed-in Firebase user into a local
	// account. Not behind the auth middleware: the local user may not
	// exist yet, so the service verifies the token itself.
	r.Post("/api/auth/user", authHandler.EnsureUser)
}
