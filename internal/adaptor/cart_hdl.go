package adaptor

import (
	"encoding/json"
	"net/http"

	"art-market/internal/dto/request"
	"art-market/internal/usecase"
	"art-market/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CartHandler struct {
	service usecase.CartService
	log     *zap.Logger
}

func NewCartHandler(service usecase.CartService, log *zap.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		log:     log.With(zap.String("handler", "cart")),
	}
}

// GetCart handles GET /api/cart (protected)
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	cart, err := h.service.GetCart(r.Context(), userID)
	if err != nil {
		respondError(w, h.log, err, "get cart")
		return
	}

	utils.ResponseSuccess(w, "success", cart)
}

// AddItem handles POST /api/cart/items (protected)
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	item, err := h.service.AddItem(r.Context(), userID, &req)
	if err != nil {
		respondError(w, h.log, err, "add cart item")
		return
	}

	utils.ResponseCreated(w, "success", item)
}

// UpdateItem handles PUT /api/cart/items/{id} (protected). Quantity zero
// removes the item.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	item, err := h.service.UpdateItem(r.Context(), userID, chi.URLParam(r, "id"), &req)
	if err != nil {
		respondError(w, h.log, err, "update cart item")
		return
	}
	if item == nil {
		utils.ResponseSuccess(w, "item removed", nil)
		return
	}

	utils.ResponseSuccess(w, "success", item)
}

// RemoveItem handles DELETE /api/cart/items/{id} (protected)
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.RemoveItem(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		respondError(w, h.log, err, "remove cart item")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// Clear handles DELETE /api/cart (protected)
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.Clear(r.Context(), userID); err != nil {
		respondError(w, h.log, err, "clear cart")
		return
	}

	utils.ResponseNoContent(w)
}
