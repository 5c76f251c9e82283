package request

type AddCartItemRequest struct {
	ProductID string `json:"productId" validate:"required,uuid4"`
	// Quantity defaults to 1 when omitted.
	Quantity int `json:"quantity" validate:"omitempty,gte=1"`
}

type UpdateCartItemRequest struct {
	// Quantity 0 removes the item; negative values are rejected.
	Quantity *int `json:"quantity" validate:"required"`
}
