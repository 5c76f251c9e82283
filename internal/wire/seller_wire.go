package wire

import (
	"art-market/internal/adaptor"
	"art-market/internal/data/repository"
	"art-market/pkg/middleware"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSeller(
	r chi.Router,
	sellerHandler *adaptor.SellerHandler,
	repo *repository.Repository,
	fbAuth *firebaseauth.Client,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/sellers/featured - Storefront highlights
	r.Get("/api/sellers/featured", sellerHandler.Featured)

	// GET /api/sellers/{id} - Public seller page
	r.Get("/api/sellers/{id}", sellerHandler.GetByID)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(fbAuth, repo.User, log))

		// POST /api/sellers/complete-profile - Seller onboarding (multipart)
		r.Post("/api/sellers/complete-profile", sellerHandler.CompleteProfile)

		// GET /api/sellers/profile - Own seller profile
		r.Get("/api/sellers/profile", sellerHandler.GetOwnProfile)

		// GET /api/sellers/profile-completion - Onboarding checklist
		r.Get("/api/sellers/profile-completion", sellerHandler.ProfileCompletion)
	})
}
