package wire

import (
	"art-market/internal/adaptor"
	"art-market/internal/data/repository"
	"art-market/pkg/middleware"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProduct(
	r chi.Router,
	productHandler *adaptor.ProductHandler,
	repo *repository.Repository,
	fbAuth *firebaseauth.Client,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/products - Filtered, paginated catalog
	r.Get("/api/products", productHandler.List)

	// GET /api/products/featured - Storefront highlights
	r.Get("/api/products/featured", productHandler.Featured)

	// GET /api/products/{id} - Product details
	r.Get("/api/products/{id}", productHandler.GetByID)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(fbAuth, repo.User, log))

		// GET /api/products/seller - Caller's own listings
		r.Get("/api/products/seller", productHandler.ListMine)

		// POST /api/products - Create listing (multipart)
		r.Post("/api/products", productHandler.Create)

		// PUT /api/products/{id} - Update own listing
		r.Put("/api/products/{id}", productHandler.Update)

		// DELETE /api/products/{id} - Remove own listing
		r.Delete("/api/products/{id}", productHandler.Delete)
	})
}
