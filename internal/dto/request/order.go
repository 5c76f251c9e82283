package request

type CreateProductOrderRequest struct {
	ProductID string `json:"productId" validate:"required,uuid4"`
	// ArtistID is accepted for wire compatibility but ignored: the artist
	// is always derived from the product's owning seller.
	ArtistID string `json:"artistId,omitempty"`
}

// CreateCustomOrderRequest arrives as multipart form data (it may carry a
// reference image); the handler maps form values onto this struct.
// NumPeople and BasePrice stay nil when absent or unparsable.
type CreateCustomOrderRequest struct {
	ArtistID    string  `json:"artistId" validate:"required,uuid4"`
	Description *string `json:"description,omitempty"`
	PaperSize   *string `json:"paperSize,omitempty"`
	PaperType   *string `json:"paperType,omitempty"`
	NumPeople   *int    `json:"numPeople,omitempty"`
	BasePrice   *int    `json:"basePrice,omitempty"`
}

type UpdateOrderRequest struct {
	Status          *string `json:"status,omitempty" validate:"omitempty,oneof=requested accepted rejected in_progress completed"`
	RejectionReason *string `json:"rejectionReason,omitempty"`
	DeliveryURL     *string `json:"deliveryUrl,omitempty"`
}
