package adaptor

import (
	"encoding/json"
	"io"
	"net/http"

	"art-market/internal/dto/request"
	"art-market/internal/usecase"
	"art-market/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxUploadMemory bounds the in-memory part of multipart parsing; larger
// files spill to temp storage.
const maxUploadMemory = 32 << 20

type SellerHandler struct {
	service usecase.SellerService
	log     *zap.Logger
}

func NewSellerHandler(service usecase.SellerService, log *zap.Logger) *SellerHandler {
	return &SellerHandler{
		service: service,
		log:     log.With(zap.String("handler", "seller")),
	}
}

// CompleteProfile handles POST /api/sellers/complete-profile (protected,
// multipart). JSON-valued fields arrive as form values; images as files.
func (h *SellerHandler) CompleteProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	req := request.CompleteSellerProfileRequest{
		Bio:           r.FormValue("bio"),
		DoesCustomArt: r.FormValue("doesCustomArt") == "true",
	}
	if v := r.FormValue("pickupAddress"); v != "" {
		if err := json.Unmarshal([]byte(v), &req.PickupAddress); err != nil {
			utils.ResponseBadRequest(w, "Invalid pickupAddress", nil)
			return
		}
	}
	if v := r.FormValue("categoryIds"); v != "" {
		if err := json.Unmarshal([]byte(v), &req.CategoryIDs); err != nil {
			utils.ResponseBadRequest(w, "Invalid categoryIds", nil)
			return
		}
	}
	if v := r.FormValue("customArtPricing"); v != "" {
		req.CustomArtPricing = json.RawMessage(v)
	}
	if v := r.FormValue("materialOptions"); v != "" {
		req.MaterialOptions = json.RawMessage(v)
	}

	profileImage, closeProfile, err := formFile(r, "profileImage")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid profileImage upload", nil)
		return
	}
	if closeProfile != nil {
		defer closeProfile()
	}

	portfolio, closePortfolio, err := formFiles(r, "portfolioImages")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid portfolioImages upload", nil)
		return
	}
	defer closePortfolio()

	profile, err := h.service.CompleteProfile(r.Context(), userID, &req, profileImage, portfolio)
	if err != nil {
		respondError(w, h.log, err, "complete seller profile")
		return
	}

	utils.ResponseSuccess(w, "success", profile)
}

// GetOwnProfile handles GET /api/sellers/profile (protected)
func (h *SellerHandler) GetOwnProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	profile, err := h.service.GetOwnProfile(r.Context(), userID)
	if err != nil {
		respondError(w, h.log, err, "get own seller profile")
		return
	}

	utils.ResponseSuccess(w, "success", profile)
}

// ProfileCompletion handles GET /api/sellers/profile-completion (protected)
func (h *SellerHandler) ProfileCompletion(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	status, err := h.service.ProfileCompletion(r.Context(), userID)
	if err != nil {
		respondError(w, h.log, err, "seller profile completion")
		return
	}

	utils.ResponseSuccess(w, "success", status)
}

// Featured handles GET /api/sellers/featured (public)
func (h *SellerHandler) Featured(w http.ResponseWriter, r *http.Request) {
	limit := utils.ParseInt(r.URL.Query().Get("limit"), 8)

	sellers, err := h.service.Featured(r.Context(), limit)
	if err != nil {
		respondError(w, h.log, err, "featured sellers")
		return
	}

	utils.ResponseSuccess(w, "success", sellers)
}

// GetByID handles GET /api/sellers/{id} (public)
func (h *SellerHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.log, err, "get seller")
		return
	}

	utils.ResponseSuccess(w, "success", profile)
}

// formFile opens a single optional multipart file. A missing file yields a
// nil reader and no error.
func formFile(r *http.Request, field string) (io.Reader, func(), error) {
	file, _, err := r.FormFile(field)
	if err == http.ErrMissingFile {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return file, func() { file.Close() }, nil
}

// formFiles opens all multipart files under one field. The returned closer
// is always safe to defer.
func formFiles(r *http.Request, field string) ([]io.Reader, func(), error) {
	closeAll := func() {}
	if r.MultipartForm == nil {
		return nil, closeAll, nil
	}

	headers := r.MultipartForm.File[field]
	readers := make([]io.Reader, 0, len(headers))
	closers := make([]func() error, 0, len(headers))
	closeAll = func() {
		for _, c := range closers {
			c()
		}
	}

	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		readers = append(readers, file)
		closers = append(closers, file.Close)
	}
	return readers, closeAll, nil
}
