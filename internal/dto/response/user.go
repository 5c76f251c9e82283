package response

import (
	"time"

	"art-market/internal/data/entity"
)

type UserResponse struct {
	ID               string                 `json:"id"`
	Name             string                 `json:"name"`
	Email            string                 `json:"email"`
	Phone            *string                `json:"phone,omitempty"`
	PhoneVerified    bool                   `json:"phoneVerified"`
	IsSeller         bool                   `json:"isSeller"`
	ProfileCompleted bool                   `json:"profileCompleted"`
	Addresses        []AddressResponse      `json:"addresses,omitempty"`
	SellerProfile    *SellerProfileResponse `json:"sellerProfile,omitempty"`
	CreatedAt        time.Time              `json:"createdAt"`
}

type AddressResponse struct {
	ID           string  `json:"id"`
	Type         string  `json:"type"`
	Pincode      string  `json:"pincode"`
	AddressLine1 string  `json:"addressLine1"`
	AddressLine2 *string `json:"addressLine2,omitempty"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	Country      string  `json:"country"`
}

type ProfileCompleteResponse struct {
	IsComplete bool `json:"isComplete"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:               user.ID.String(),
		Name:             user.Name,
		Email:            user.Email,
		Phone:            user.Phone,
		PhoneVerified:    user.PhoneVerified,
		IsSeller:         user.IsSeller,
		ProfileCompleted: user.ProfileCompleted,
		CreatedAt:        user.CreatedAt,
	}
}

func AddressToResponse(address *entity.Address) AddressResponse {
	return AddressResponse{
		ID:           address.ID.String(),
		Type:         string(address.Type),
		Pincode:      address.Pincode,
		AddressLine1: address.AddressLine1,
		AddressLine2: address.AddressLine2,
		City:         address.City,
		State:        address.State,
		Country:      address.Country,
	}
}
