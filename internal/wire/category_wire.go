package wire

import (
	"art-market/internal/adaptor"
	"art-market/internal/data/repository"
	"art-market/pkg/middleware"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCategory(
	r chi.Router,
	categoryHandler *adaptor.CategoryHandler,
	repo *repository.Repository,
	fbAuth *firebaseauth.Client,
	log *zap.Logger,
) {
	// GET /api/categories - List categories with product counts (public)
	r.Get("/api/categories", categoryHandler.List)

	// POST /api/categories - Create category (sellers only)
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(fbAuth, repo.User, log))
		r.Post("/api/categories", categoryHandler.Create)
	})
}
