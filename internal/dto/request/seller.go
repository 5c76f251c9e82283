package request

import "encoding/json"

// CompleteSellerProfileRequest arrives as multipart form data; the handler
// decodes the JSON-encoded fields into this struct before validation.
type CompleteSellerProfileRequest struct {
	Bio              string          `json:"bio" validate:"required"`
	PickupAddress    AddressPayload  `json:"pickupAddress" validate:"required"`
	CategoryIDs      []string        `json:"categoryIds" validate:"required,min=1,dive,uuid4"`
	DoesCustomArt    bool            `json:"doesCustomArt"`
	CustomArtPricing json.RawMessage `json:"customArtPricing,omitempty"`
	MaterialOptions  json.RawMessage `json:"materialOptions,omitempty"`
}
