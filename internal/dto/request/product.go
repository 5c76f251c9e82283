package request

type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,max=200"`
	Description *string  `json:"description,omitempty"`
	Price       float64  `json:"price" validate:"gte=0"`
	Quantity    int      `json:"quantity" validate:"gte=0"`
	CategoryIDs []string `json:"categoryIds" validate:"omitempty,dive,uuid4"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,max=200"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Quantity    *int     `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	IsAvailable *bool    `json:"isAvailable,omitempty"`
	CategoryIDs []string `json:"categoryIds,omitempty" validate:"omitempty,dive,uuid4"`
}

// ProductListQuery mirrors the catalog filter query parameters.
type ProductListQuery struct {
	Category    string
	Medium      string
	MinPrice    *float64
	MaxPrice    *float64
	IsAvailable *bool
	OrderBy     string
	Order       string
	PaginatedRequest
}
