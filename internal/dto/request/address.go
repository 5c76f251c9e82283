package request

// AddressPayload is the structured address accepted on profile completion.
// Rejected by validation before it reaches business logic; malformed JSON in
// multipart fields is rejected at decode time.
type AddressPayload struct {
	Pincode      string  `json:"pincode" validate:"required"`
	AddressLine1 string  `json:"addressLine1" validate:"required"`
	AddressLine2 *string `json:"addressLine2,omitempty"`
	City         string  `json:"city" validate:"required"`
	State        string  `json:"state" validate:"required"`
	Country      string  `json:"country" validate:"required"`
}
