package entity

import (
	"encoding/json"

	"github.com/google/uuid"
)

type SellerProfile struct {
	Base
	UserID           uuid.UUID       `db:"user_id"`
	Bio              string          `db:"bio"`
	ProfileImage     *string         `db:"profile_image"`
	PortfolioImages  []string        `db:"portfolio_images"`
	PickupAddressID  *uuid.UUID      `db:"pickup_address_id"`
	DoesCustomArt    bool            `db:"does_custom_art"`
	CustomArtPricing json.RawMessage `db:"custom_art_pricing"`
	MaterialOptions  json.RawMessage `db:"material_options"`
}
