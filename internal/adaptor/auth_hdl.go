package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"art-market/internal/dto/request"
	"art-market/internal/usecase"
	"art-market/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// EnsureUser handles POST /api/auth/user. The bearer token is verified by
// the service itself: the caller may not exist locally yet.
func (h *AuthHandler) EnsureUser(w http.ResponseWriter, r *http.Request) {
	var req request.SyncUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	user, err := h.service.EnsureUser(r.Context(), bearerToken(r), &req)
	if err != nil {
		respondError(w, h.log, err, "ensure user")
		return
	}

	utils.ResponseSuccess(w, "success", user)
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
