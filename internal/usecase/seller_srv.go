package usecase

import (
	"context"
	"io"
	"time"

	"art-market/internal/data/entity"
	"art-market/internal/data/repository"
	"art-market/internal/dto/request"
	"art-market/internal/dto/response"
	"art-market/pkg/apperr"
	"art-market/pkg/media"
	"art-market/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SellerService interface {
	// CompleteProfile upserts the seller profile, stores the pickup
	// address, uploads any images, and flips the user into a seller.
	CompleteProfile(ctx context.Context, userID uuid.UUID, req *request.CompleteSellerProfileRequest, profileImage io.Reader, portfolio []io.Reader) (*response.SellerProfileResponse, error)
	GetOwnProfile(ctx context.Context, userID uuid.UUID) (*response.SellerProfileResponse, error)
	ProfileCompletion(ctx context.Context, userID uuid.UUID) (*response.SellerCompletionResponse, error)

	// Public storefront views.
	GetByID(ctx context.Context, profileID string) (*response.SellerProfileResponse, error)
	Featured(ctx context.Context, limit int) ([]response.SellerProfileResponse, error)
}

type sellerService struct {
	repo     *repository.Repository
	uploader media.Uploader
	log      *zap.Logger
}

func NewSellerService(repo *repository.Repository, uploader media.Uploader, log *zap.Logger) SellerService {
	return &sellerService{
		repo:     repo,
		uploader: uploader,
		log:      log.With(zap.String("service", "seller")),
	}
}

func (s *sellerService) CompleteProfile(ctx context.Context, userID uuid.UUID, req *request.CompleteSellerProfileRequest, profileImage io.Reader, portfolio []io.Reader) (*response.SellerProfileResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Complete seller profile validation failed", zap.Any("errors", errs))
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

	categoryIDs, err := parseUUIDs(req.CategoryIDs)
	if err != nil {
		return nil, apperr.InvalidArgument("invalid category id: %v", err)
	}
	categories, err := s.repo.Category.FindByIDs(ctx, categoryIDs)
	if err != nil {
		s.log.Error("Failed to look up categories", zap.Error(err))
		return nil, apperr.Internal("look up categories", err)
	}
	if len(categories) != len(categoryIDs) {
		return nil, apperr.InvalidArgument("one or more categories do not exist")
	}

	var profileImageURL *string
	if profileImage != nil {
		url, err := s.uploader.UploadImage(ctx, profileImage, media.ProfileImage)
		if err != nil {
			s.log.Error("Failed to upload profile image", zap.Error(err), zap.String("user_id", userID.String()))
			return nil, apperr.Internal("upload profile image", err)
		}
		profileImageURL = &url
	}

	portfolioURLs := make([]string, 0, len(portfolio))
	for _, r := range portfolio {
		url, err := s.uploader.UploadImage(ctx, r, media.PortfolioImage)
		if err != nil {
			s.log.Error("Failed to upload portfolio image", zap.Error(err), zap.String("user_id", userID.String()))
			return nil, apperr.Internal("upload portfolio image", err)
		}
		portfolioURLs = append(portfolioURLs, url)
	}

	pickupAddress, err := s.upsertPickupAddress(ctx, userID, &req.PickupAddress)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	profile := &entity.SellerProfile{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:           userID,
		Bio:              req.Bio,
		ProfileImage:     profileImageURL,
		PortfolioImages:  portfolioURLs,
		PickupAddressID:  &pickupAddress.ID,
		DoesCustomArt:    req.DoesCustomArt,
		CustomArtPricing: req.CustomArtPricing,
		MaterialOptions:  req.MaterialOptions,
	}
	if err := s.repo.SellerProfile.Upsert(ctx, profile); err != nil {
		s.log.Error("Failed to upsert seller profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, apperr.Internal("upsert seller profile", err)
	}

	if err := s.repo.SellerProfile.SetCategories(ctx, profile.ID, categoryIDs); err != nil {
		s.log.Error("Failed to set seller categories", zap.Error(err), zap.String("profile_id", profile.ID.String()))
		return nil, apperr.Internal("set seller categories", err)
	}

	if !user.IsSeller {
		user.IsSeller = true
		user.UpdatedAt = now
		if err := s.repo.User.Update(ctx, user); err != nil {
			s.log.Error("Failed to mark user as seller", zap.Error(err), zap.String("user_id", userID.String()))
			return nil, apperr.Internal("mark user as seller", err)
		}
	}

	s.log.Info("Seller profile completed",
		zap.String("user_id", userID.String()),
		zap.String("profile_id", profile.ID.String()),
		zap.Int("categories", len(categoryIDs)),
		zap.Int("portfolio_images", len(portfolioURLs)),
	)

	resp := response.SellerProfileToResponse(profile)
	resp.Categories = response.CategoriesToResponse(categories)
	addrResp := response.AddressToResponse(pickupAddress)
	resp.PickupAddress = &addrResp
	return &resp, nil
}

func (s *sellerService) GetOwnProfile(ctx context.Context, userID uuid.UUID) (*response.SellerProfileResponse, error) {
	profile, err := s.repo.SellerProfile.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get seller profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, apperr.Internal("get seller profile", err)
	}
	if profile == nil {
		return nil, apperr.NotFound("seller profile for user %s not found", userID.String())
	}

	return s.buildProfileResponse(ctx, profile, false)
}

func (s *sellerService) ProfileCompletion(ctx context.Context, userID uuid.UUID) (*response.SellerCompletionResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, apperr.Internal("get user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user %s not found", userID.String())
	}

	resp := &response.SellerCompletionResponse{IsSeller: user.IsSeller}

	profile, err := s.repo.SellerProfile.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get seller profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, apperr.Internal("get seller profile", err)
	}
	if profile == nil {
		return resp, nil
	}

	resp.HasProfile = true
	resp.HasBio = profile.Bio != ""
	resp.HasAddress = profile.PickupAddressID != nil

	categories, err := s.repo.SellerProfile.FindCategories(ctx, profile.ID)
	if err != nil {
		s.log.Error("Failed to get seller categories", zap.Error(err), zap.String("profile_id", profile.ID.String()))
		return nil, apperr.Internal("get seller categories", err)
	}
	resp.HasCategories = len(categories) > 0

	resp.IsComplete = resp.HasProfile && resp.HasBio && resp.HasAddress && resp.HasCategories
	return resp, nil
}

func (s *sellerService) GetByID(ctx context.Context, profileID string) (*response.SellerProfileResponse, error) {
	id, err := uuid.Parse(profileID)
	if err != nil {
		return nil, apperr.InvalidArgument("invalid seller id %s", profileID)
	}

	profile, err := s.repo.SellerProfile.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get seller profile", zap.Error(err), zap.String("profile_id", profileID))
		return nil, apperr.Internal("get seller profile", err)
	}
	if profile == nil {
		return nil, apperr.NotFound("seller %s not found", profileID)
	}

	return s.buildProfileResponse(ctx, profile, true)
}

func (s *sellerService) Featured(ctx context.Context, limit int) ([]response.SellerProfileResponse, error) {
	profiles, err := s.repo.SellerProfile.FindFeatured(ctx, limit)
	if err != nil {
		s.log.Error("Failed to get featured sellers", zap.Error(err))
		return nil, apperr.Internal("get featured sellers", err)
	}

	out := make([]response.SellerProfileResponse, 0, len(profiles))
	for _, profile := range profiles {
		resp := response.SellerProfileToResponse(profile)
		categories, _ := s.repo.SellerProfile.FindCategories(ctx, profile.ID)
		resp.Categories = response.CategoriesToResponse(categories)
		resp.ProductCount, _ = s.repo.Product.CountBySellerID(ctx, profile.ID)
		if user, _ := s.repo.User.FindByID(ctx, profile.UserID); user != nil {
			resp.User = &response.SellerUserInfo{Name: user.Name, CreatedAt: user.CreatedAt}
		}
		out = append(out, resp)
	}
	return out, nil
}

// buildProfileResponse assembles the full storefront view. The public view
// hides the owner's email.
func (s *sellerService) buildProfileResponse(ctx context.Context, profile *entity.SellerProfile, public bool) (*response.SellerProfileResponse, error) {
	resp := response.SellerProfileToResponse(profile)

	categories, err := s.repo.SellerProfile.FindCategories(ctx, profile.ID)
	if err != nil {
		s.log.Error("Failed to get seller categories", zap.Error(err), zap.String("profile_id", profile.ID.String()))
		return nil, apperr.Internal("get seller categories", err)
	}
	resp.Categories = response.CategoriesToResponse(categories)

	if profile.PickupAddressID != nil {
		addresses, _ := s.repo.Address.FindByUserID(ctx, profile.UserID)
		for _, addr := range addresses {
			if addr.ID == *profile.PickupAddressID {
				addrResp := response.AddressToResponse(addr)
				resp.PickupAddress = &addrResp
				break
			}
		}
	}

	if user, _ := s.repo.User.FindByID(ctx, profile.UserID); user != nil {
		info := &response.SellerUserInfo{Name: user.Name, CreatedAt: user.CreatedAt}
		if !public {
			info.Email = user.Email
		}
		resp.User = info
	}

	products, err := s.repo.Product.FindBySellerID(ctx, profile.ID)
	if err != nil {
		s.log.Error("Failed to get seller products", zap.Error(err), zap.String("profile_id", profile.ID.String()))
		return nil, apperr.Internal("get seller products", err)
	}
	for _, product := range products {
		resp.Products = append(resp.Products, response.ProductToResponse(product))
	}
	resp.ProductCount = int64(len(products))

	return &resp, nil
}

func (s *sellerService) upsertPickupAddress(ctx context.Context, userID uuid.UUID, payload *request.AddressPayload) (*entity.Address, error) {
	existing, err := s.repo.Address.FindByUserAndType(ctx, userID, entity.AddressTypePickup)
	if err != nil {
		s.log.Error("Failed to get pickup address", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, apperr.Internal("get pickup address", err)
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
			s.log.Error("Failed to update pickup address", zap.Error(err), zap.String("user_id", userID.String()))
			return nil, apperr.Internal("update pickup address", err)
		}
		return existing, nil
	}

	address := &entity.Address{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:       userID,
		Type:         entity.AddressTypePickup,
		Pincode:      payload.Pincode,
		AddressLine1: payload.AddressLine1,
		AddressLine2: payload.AddressLine2,
		City:         payload.City,
		State:        payload.State,
		Country:      payload.Country,
	}
	if err := s.repo.Address.Create(ctx, address); err != nil {
		s.log.Error("Failed to create pickup address", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, apperr.Internal("create pickup address", err)
	}
	return address, nil
}

func parseUUIDs(values []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, len(values))
	for i, v := range values {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, err
		}
		out[i] = id
	}
	return out, nil
}
