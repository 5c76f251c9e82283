package wire

import (
	"art-market/internal/adaptor"
	"art-market/internal/data/repository"
	"art-market/pkg/middleware"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	fbAuth *firebaseauth.Client,
	log *zap.Logger,
) {
	r.Route("/api/users", func(r chi.Router) {
		r.Use(middleware.Auth(fbAuth, repo.User, log))

		// GET /api/users/profile - Own profile with addresses and seller data
		r.Get("/profile", userHandler.GetProfile)

		// POST /api/users/complete-profile - Phone number plus delivery address
		r.Post("/complete-profile", userHandler.CompleteProfile)

		// GET /api/users/profile-complete - Onboarding status check
		r.Get("/profile-complete", userHandler.ProfileComplete)
	})
}
