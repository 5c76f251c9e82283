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

type ProductHandler struct {
	service usecase.ProductService
	log     *zap.Logger
}

func NewProductHandler(service usecase.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log.With(zap.String("handler", "product")),
	}
}

// List handles GET /api/products (public)
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.ProductListQuery{
		Category:    query.Get("category"),
		Medium:      query.Get("medium"),
		MinPrice:    utils.ParseOptionalFloat(query.Get("minPrice")),
		MaxPrice:    utils.ParseOptionalFloat(query.Get("maxPrice")),
		OrderBy:     query.Get("orderBy"),
		Order:       query.Get("order"),
		PaginatedRequest: request.PaginatedRequest{
			Page:  utils.ParseInt(query.Get("page"), 1),
			Limit: utils.ParseInt(query.Get("limit"), 0),
		},
	}
	if v := query.Get("isAvailable"); v != "" {
		available := v == "true"
		req.IsAvailable = &available
	}

	products, err := h.service.List(r.Context(), req)
	if err != nil {
		respondError(w, h.log, err, "list products")
		return
	}

	utils.ResponseSuccess(w, "success", products)
}

// Featured handles GET /api/products/featured (public)
func (h *ProductHandler) Featured(w http.ResponseWriter, r *http.Request) {
	limit := utils.ParseInt(r.URL.Query().Get("limit"), 8)

	products, err := h.service.Featured(r.Context(), limit)
	if err != nil {
		respondError(w, h.log, err, "featured products")
		return
	}

	utils.ResponseSuccess(w, "success", products)
}

// GetByID handles GET /api/products/{id} (public)
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.log, err, "get product")
		return
	}

	utils.ResponseSuccess(w, "success", product)
}

// ListMine handles GET /api/products/seller (protected)
func (h *ProductHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	products, err := h.service.ListMine(r.Context(), userID)
	if err != nil {
		respondError(w, h.log, err, "list own products")
		return
	}

	utils.ResponseSuccess(w, "success", products)
}

// Create handles POST /api/products (protected, multipart)
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	req := request.CreateProductRequest{
		Name:     r.FormValue("name"),
		Price:    utils.ParseFloat(r.FormValue("price"), 0),
		Quantity: utils.ParseInt(r.FormValue("quantity"), 0),
	}
	if v := r.FormValue("description"); v != "" {
		req.Description = &v
	}
	if v := r.FormValue("categoryIds"); v != "" {
		if err := json.Unmarshal([]byte(v), &req.CategoryIDs); err != nil {
			utils.ResponseBadRequest(w, "Invalid categoryIds", nil)
			return
		}
	}

	mainImage, closeMain, err := formFile(r, "image")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid image upload", nil)
		return
	}
	if closeMain != nil {
		defer closeMain()
	}

	additional, closeAdditional, err := formFiles(r, "additionalImages")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid additionalImages upload", nil)
		return
	}
	defer closeAdditional()

	product, err := h.service.Create(r.Context(), userID, &req, mainImage, additional)
	if err != nil {
		respondError(w, h.log, err, "create product")
		return
	}

	utils.ResponseCreated(w, "success", product)
}

// Update handles PUT /api/products/{id} (protected)
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	product, err := h.service.Update(r.Context(), userID, chi.URLParam(r, "id"), &req)
	if err != nil {
		respondError(w, h.log, err, "update product")
		return
	}

	utils.ResponseSuccess(w, "success", product)
}

// Delete handles DELETE /api/products/{id} (protected)
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		respondError(w, h.log, err, "delete product")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
