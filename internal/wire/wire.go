// internal/wire/wire.go
package wire

import (
	"net/http"

	"art-market/internal/adaptor"
	"art-market/internal/data/repository"
	"art-market/internal/usecase"
	"art-market/pkg/media"
	"art-market/pkg/middleware"
	"art-market/pkg/utils"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the assembled application.
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies.
func Wiring(
	repo *repository.Repository,
	config *utils.Config,
	fbAuth *firebaseauth.Client,
	uploader media.Uploader,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, config, fbAuth, uploader, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, fbAuth, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router.
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	fbAuth *firebaseauth.Client,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth)
	wireUser(r, handler.User, repo, fbAuth, logger)
	wireSeller(r, handler.Seller, repo, fbAuth, logger)
	wireCategory(r, handler.Category, repo, fbAuth, logger)
	wireProduct(r, handler.Product, repo, fbAuth, logger)
	wireCart(r, handler.Cart, repo, fbAuth, logger)
	wireOrder(r, handler.Order, repo, fbAuth, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
