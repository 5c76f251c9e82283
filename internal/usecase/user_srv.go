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

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
	CompleteProfile(ctx context.Context, userID uuid.UUID, req *request.CompleteUserProfileRequest) (*response.UserResponse, error)
	ProfileComplete(ctx context.Context, userID uuid.UUID) (*response.ProfileCompleteResponse, error)
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, apperr.Internal("get user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user %s not found", userID.String())
	}

	resp := response.UserToResponse(user)

	addresses, err := s.repo.Address.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get addresses", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, apperr.Internal("get addresses", err)
	}
	for _, addr := range addresses {
		resp.Addresses = append(resp.Addresses, response.AddressToResponse(addr))
	}

	if user.IsSeller {
		profile, err := s.repo.SellerProfile.FindByUserID(ctx, userID)
		if err != nil {
			s.log.Error("Failed to get seller profile", zap.Error(err), zap.String("user_id", userID.String()))
			return nil, apperr.Internal("get seller profile", err)
		}
		if profile != nil {
			profileResp := response.SellerProfileToResponse(profile)
			categories, _ := s.repo.SellerProfile.FindCategories(ctx, profile.ID)
			profileResp.Categories = response.CategoriesToResponse(categories)
			resp.SellerProfile = &profileResp
		}
	}

	return &resp, nil
}

func (s *userService) CompleteProfile(ctx context.Context, userID uuid.UUID, req *request.CompleteUserProfileRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Complete profile validation failed", zap.Any("errors", errs))
		return nil, apperr.InvalidArgument("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, apperr.Internal("get user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user %s not found", userID.String())
	}

	if err := s.upsertAddress(ctx, userID, entity.AddressTypeDelivery, &req.Address); err != nil {
		return nil, err
	}

	now := time.Now()
	user.Phone = &req.PhoneNumber
	user.ProfileCompleted = true
	user.UpdatedAt = now
	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to update user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, apperr.Internal("update user", err)
	}

	s.log.Info("User profile completed", zap.String("user_id", userID.String()))

	return s.GetProfile(ctx, userID)
}

func (s *userService) ProfileComplete(ctx context.Context, userID uuid.UUID) (*response.ProfileCompleteResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, apperr.Internal("get user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user %s not found", userID.String())
	}

	return &response.ProfileCompleteResponse{IsComplete: user.ProfileCompleted}, nil
}

// upsertAddress writes the address of the given type for the user, reusing
// the existing row when one exists. One address per (user, type).
func (s *userService) upsertAddress(ctx context.Context, userID uuid.UUID, addrType entity.AddressType, payload *request.AddressPayload) error {
	existing, err := s.repo.Address.FindByUserAndType(ctx, userID, addrType)
	if err != nil {
		s.log.Error("Failed to get address", zap.Error(err), zap.String("user_id", userID.String()))
		return apperr.Internal("get address", err)
	}

	now := time.Now()
	if existing != nil {
		existing.Pincode = payload.Pincode
		existing.AddressLine1 = payload.AddressLine1
		existing.AddressLine2 = payload.AddressLine2
		existing.City = payload.City
		existing.State = payload.State
		existing.Country = payload.Country
		existing.UpdatedAt = now
		if err := s.repo.Address.Update(ctx, existing); err != nil {
			s.log.Error("Failed to update address", zap.Error(err), zap.String("user_id", userID.String()))
			return apperr.Internal("update address", err)
		}
		return nil
	}

	address := &entity.Address{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:       userID,
		Type:         addrType,
		Pincode:      payload.Pincode,
		AddressLine1: payload.AddressLine1,
		AddressLine2: payload.AddressLine2,
		City:         payload.City,
		State:        payload.State,
		Country:      payload.Country,
	}
	if err := s.repo.Address.Create(ctx, address); err != nil {
		s.log.Error("Failed to create address", zap.Error(err), zap.String("user_id", userID.String()))
		return apperr.Internal("create address", err)
	}
	return nil
}
