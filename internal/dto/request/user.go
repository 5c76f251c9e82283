package request

// SyncUserRequest carries the display name and email the client saw at
// sign-in; the Firebase UID itself always comes from the verified token.
type SyncUserRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email"`
}

type CompleteUserProfileRequest struct {
	PhoneNumber string         `json:"phoneNumber" validate:"required,min=6,max=20"`
	Address     AddressPayload `json:"address" validate:"required"`
}
