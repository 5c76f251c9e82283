package wire

import (
	"art-market/internal/adaptor"
	"art-market/internal/data/entity"
	"art-market/internal/data/repository"
	"art-market/pkg/middleware"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireOrder mounts the two order surfaces as parallel subtrees. Each route
// is bound to one order type; ids from the other type read as 404.
func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	repo *repository.Repository,
	fbAuth *firebaseauth.Client,
	log *zap.Logger,
) {
	r.Route("/api/orders/product", func(r chi.Router) {
		r.Use(middleware.Auth(fbAuth, repo.User, log))

		// POST /api/orders/product - Order a catalog product
		r.Post("/", orderHandler.CreateProduct)

		// GET /api/orders/product/user - Orders placed by the caller
		r.Get("/user", orderHandler.ListByUser(entity.OrderTypeProduct))

		// GET /api/orders/product/artist/{artistId} - Incoming orders
		r.Get("/artist/{artistId}", orderHandler.ListByArtist(entity.OrderTypeProduct))

		// GET /api/orders/product/{id} - Order details
		r.Get("/{id}", orderHandler.GetByID(entity.OrderTypeProduct))

		// PATCH /api/orders/product/{id} - Status transitions
		r.Patch("/{id}", orderHandler.Update(entity.OrderTypeProduct))
	})

	r.Route("/api/orders/custom", func(r chi.Router) {
		r.Use(middleware.Auth(fbAuth, repo.User, log))

		// POST /api/orders/custom - Commission request (multipart)
		r.Post("/", orderHandler.CreateCustom)

		// GET /api/orders/custom/user - Commissions placed by the caller
		r.Get("/user", orderHandler.ListByUser(entity.OrderTypeCustom))

		// GET /api/orders/custom/artist/{artistId} - Incoming commissions
		r.Get("/artist/{artistId}", orderHandler.ListByArtist(entity.OrderTypeCustom))

		// GET /api/orders/custom/{id} - Commission details
		r.Get("/{id}", orderHandler.GetByID(entity.OrderTypeCustom))

		// PATCH /api/orders/custom/{id} - Status transitions
		r.Patch("/{id}", orderHandler.Update(entity.OrderTypeCustom))
	})
}
