package wire

import (
	"art-market/internal/adaptor"
	"art-market/internal/data/repository"
	"art-market/pkg/middleware"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCart(
	r chi.Router,
	cartHandler *adaptor.CartHandler,
	repo *repository.Repository,
	fbAuth *firebaseauth.Client,
	log *zap.Logger,
) {
	r.Route("/api/cart", func(r chi.Router) {
		r.Use(middleware.Auth(fbAuth, repo.User, log))

		// GET /api/cart - Caller's cart, created on first access
		r.Get("/", cartHandler.GetCart)

		// DELETE /api/cart - Empty the cart
		r.Delete("/", cartHandler.Clear)

		// POST /api/cart/items - Add a product
		r.Post("/items", cartHandler.AddItem)

		// PUT /api/cart/items/{id} - Change quantity (zero removes)
		r.Put("/items/{id}", cartHandler.UpdateItem)

		// DELETE /api/cart/items/{id} - Remove one item
		r.Delete("/items/{id}", cartHandler.RemoveItem)
	})
}
