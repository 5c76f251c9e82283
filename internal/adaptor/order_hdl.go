package adaptor

import (
	"encoding/json"
	"net/http"

	"art-market/internal/data/entity"
	"art-market/internal/dto/request"
	"art-market/internal/usecase"
	"art-market/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// OrderHandler serves both order surfaces; each route is bound to one
// order type at wiring time.
type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log.With(zap.String("handler", "order")),
	}
}

// CreateProduct handles POST /api/orders/product (protected)
func (h *OrderHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateProductOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	order, err := h.service.CreateProductOrder(r.Context(), userID, &req)
	if err != nil {
		respondError(w, h.log, err, "create product order")
		return
	}

	utils.ResponseCreated(w, "success", order)
}

// CreateCustom handles POST /api/orders/custom (protected, multipart).
func (h *OrderHandler) CreateCustom(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	req := request.CreateCustomOrderRequest{
		ArtistID:  r.FormValue("artistId"),
		NumPeople: utils.ParseOptionalInt(r.FormValue("numPeople")),
		BasePrice: utils.ParseOptionalInt(r.FormValue("basePrice")),
	}
	if v := r.FormValue("description"); v != "" {
		req.Description = &v
	}
	if v := r.FormValue("paperSize"); v != "" {
		req.PaperSize = &v
	}
	if v := r.FormValue("paperType"); v != "" {
		req.PaperType = &v
	}

	referenceImage, closeRef, err := formFile(r, "referenceImage")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid referenceImage upload", nil)
		return
	}
	if closeRef != nil {
		defer closeRef()
	}

	order, err := h.service.CreateCustomOrder(r.Context(), userID, &req, referenceImage)
	if err != nil {
		respondError(w, h.log, err, "create custom order")
		return
	}

	utils.ResponseCreated(w, "success", order)
}

// ListByUser handles GET /api/orders/{product|custom}/user (protected)
func (h *OrderHandler) ListByUser(orderType entity.OrderType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok {
			utils.ResponseUnauthorized(w, "Authentication required")
			return
		}

		orders, err := h.service.ListByUser(r.Context(), userID, orderType)
		if err != nil {
			respondError(w, h.log, err, "list user orders")
			return
		}

		utils.ResponseSuccess(w, "success", orders)
	}
}

// ListByArtist handles GET /api/orders/{product|custom}/artist/{artistId} (protected)
func (h *OrderHandler) ListByArtist(orderType entity.OrderType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok {
			utils.ResponseUnauthorized(w, "Authentication required")
			return
		}

		orders, err := h.service.ListByArtist(r.Context(), userID, chi.URLParam(r, "artistId"), orderType)
		if err != nil {
			respondError(w, h.log, err, "list artist orders")
			return
		}

		utils.ResponseSuccess(w, "success", orders)
	}
}

// GetByID handles GET /api/orders/{product|custom}/{id} (protected)
func (h *OrderHandler) GetByID(orderType entity.OrderType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok {
			utils.ResponseUnauthorized(w, "Authentication required")
			return
		}

		order, err := h.service.GetByID(r.Context(), userID, chi.URLParam(r, "id"), orderType)
		if err != nil {
			respondError(w, h.log, err, "get order")
			return
		}

		utils.ResponseSuccess(w, "success", order)
	}
}

// Update handles PATCH /api/orders/{product|custom}/{id} (protected)
func (h *OrderHandler) Update(orderType entity.OrderType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok {
			utils.ResponseUnauthorized(w, "Authentication required")
			return
		}

		var req request.UpdateOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.ResponseBadRequest(w, "Invalid request body", nil)
			return
		}

		order, err := h.service.Update(r.Context(), userID, chi.URLParam(r, "id"), orderType, &req)
		if err != nil {
			respondError(w, h.log, err, "update order")
			return
		}

		utils.ResponseSuccess(w, "success", order)
	}
}
