package usecase

import (
	"context"
	"time"

	"art-market/internal/data/entity"
	"art-market/internal/data/repository"
	"art-market/internal/dto/request"
	"art-market/internal/dto/response"
	"art-market/pkg/apperr"
	"art-market/pkg/utils"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TokenVerifier is satisfied by *firebaseauth.Client.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error)
}

type AuthService interface {
	// EnsureUser verifies the Firebase ID token and returns the matching
	// local user, creating it on first sign-in. This is the only route
	// that verifies the token itself: the user may not exist locally yet,
	// so it cannot sit behind the user-resolving middleware.
	EnsureUser(ctx context.Context, idToken string, req *request.SyncUserRequest) (*response.UserResponse, error)
}

type authService struct {
	repo     *repository.Repository
	verifier TokenVerifier
	log      *zap.Logger
}

func NewAuthService(repo *repository.Repository, verifier TokenVerifier, log *zap.Logger) AuthService {
	return &authService{
		repo:     repo,
		verifier: verifier,
		log:      log.With(zap.String("service", "auth")),
	}
}

func (s *authService) EnsureUser(ctx context.Context, idToken string, req *request.SyncUserRequest) (*response.UserResponse, error) {
	if idToken == "" {
		return nil, apperr.Unauthorized("missing authorization token")
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Sync user validation failed", zap.Any("errors", errs))
		return nil, apperr.InvalidArgument("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	token, err := s.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		s.log.Warn("Token verification failed", zap.Error(err))
		return nil, apperr.Unauthorized("invalid or expired token")
	}

	user, err := s.repo.User.FindByFirebaseUID(ctx, token.UID)
	if err != nil {
		s.log.Error("Failed to look up user", zap.Error(err), zap.String("firebase_uid", token.UID))
		return nil, apperr.Internal("look up user", err)
	}
	if user != nil {
		resp := response.UserToResponse(user)
		return &resp, nil
	}

	// Token claims win over the request body when both carry a value.
	name := req.Name
	if claim, ok := token.Claims["name"].(string); ok && claim != "" {
		name = claim
	}
	email := req.Email
	if claim, ok := token.Claims["email"].(string); ok && claim != "" {
		email = claim
	}

	now := time.Now()
	user = &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FirebaseUID: token.UID,
		Name:        name,
		Email:       email,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		// A concurrent first sign-in may have won the insert.
		if repository.IsUniqueViolation(err) {
			existing, ferr := s.repo.User.FindByFirebaseUID(ctx, token.UID)
			if ferr == nil && existing != nil {
				resp := response.UserToResponse(existing)
				return &resp, nil
			}
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("firebase_uid", token.UID))
		return nil, apperr.Internal("create user", err)
	}

	s.log.Info("User created",
		zap.String("user_id", user.ID.String()),
		zap.String("firebase_uid", token.UID),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}
