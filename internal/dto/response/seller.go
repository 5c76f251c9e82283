package response

import (
	"encoding/json"
	"time"

	"art-market/internal/data/entity"
)

type SellerProfileResponse struct {
	ID               string             `json:"id"`
	UserID           string             `json:"userId"`
	Bio              string             `json:"bio"`
	ProfileImage     *string            `json:"profileImage,omitempty"`
	PortfolioImages  []string           `json:"portfolioImages"`
	DoesCustomArt    bool               `json:"doesCustomArt"`
	CustomArtPricing json.RawMessage    `json:"customArtPricing,omitempty"`
	MaterialOptions  json.RawMessage    `json:"materialOptions,omitempty"`
	Categories       []CategoryResponse `json:"categories,omitempty"`
	PickupAddress    *AddressResponse   `json:"pickupAddress,omitempty"`
	User             *SellerUserInfo    `json:"user,omitempty"`
	Products         []ProductResponse  `json:"products,omitempty"`
	ProductCount     int64              `json:"productCount"`
	CreatedAt        time.Time          `json:"createdAt"`
}

// SellerUserInfo is the public slice of the owning user shown on seller pages.
type SellerUserInfo struct {
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// SellerCompletionResponse breaks down what is still missing from a profile.
type SellerCompletionResponse struct {
	IsComplete    bool `json:"isComplete"`
	IsSeller      bool `json:"isSeller"`
	HasProfile    bool `json:"hasProfile"`
	HasBio        bool `json:"hasBio"`
	HasAddress    bool `json:"hasAddress"`
	HasCategories bool `json:"hasCategories"`
}

func SellerProfileToResponse(profile *entity.SellerProfile) SellerProfileResponse {
	return SellerProfileResponse{
		ID:               profile.ID.String(),
		UserID:           profile.UserID.String(),
		Bio:              profile.Bio,
		ProfileImage:     profile.ProfileImage,
		PortfolioImages:  profile.PortfolioImages,
		DoesCustomArt:    profile.DoesCustomArt,
		CustomArtPricing: profile.CustomArtPricing,
		MaterialOptions:  profile.MaterialOptions,
		CreatedAt:        profile.CreatedAt,
	}
}
