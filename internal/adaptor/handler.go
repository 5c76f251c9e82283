package adaptor

import (
	"net/http"

	"art-market/internal/usecase"
	"art-market/pkg/apperr"
	"art-market/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Seller   *SellerHandler
	Category *CategoryHandler
	Product  *ProductHandler
	Cart     *CartHandler
	Order    *OrderHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		User:     NewUserHandler(service.User, log),
		Seller:   NewSellerHandler(service.Seller, log),
		Category: NewCategoryHandler(service.Category, log),
		Product:  NewProductHandler(service.Product, log),
		Cart:     NewCartHandler(service.Cart, log),
		Order:    NewOrderHandler(service.Order, log),
	}
}

// respondError maps a service error onto an HTTP response by its kind.
func respondError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch apperr.KindOf(err) {
	case apperr.KindUnauthorized:
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case apperr.KindForbidden:
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case apperr.KindNotFound:
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case apperr.KindInvalidArgument:
		log.Warn(operation+" failed - invalid input", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case apperr.KindInvalidState, apperr.KindCapacityExceeded:
		log.Warn(operation+" failed - invalid state", zap.Error(err))
		var data any
		if e, ok := apperr.As(err); ok && e.Kind == apperr.KindCapacityExceeded {
			data = map[string]int{
				"availableQuantity": e.Available,
				"requestedQuantity": e.Requested,
			}
		}
		utils.ResponseJSON(w, http.StatusBadRequest, false, err.Error(), data, nil)

	default:
		log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
