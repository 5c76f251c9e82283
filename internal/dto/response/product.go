package response

import (
	"time"

	"art-market/internal/data/entity"
)

type ProductResponse struct {
	ID          string             `json:"id"`
	SellerID    string             `json:"sellerId"`
	SellerName  string             `json:"sellerName,omitempty"`
	SellerEmail string             `json:"sellerEmail,omitempty"`
	Name        string             `json:"name"`
	Description *string            `json:"description,omitempty"`
	Price       float64            `json:"price"`
	Quantity    int                `json:"quantity"`
	IsAvailable bool               `json:"isAvailable"`
	Images      []string           `json:"images"`
	Categories  []CategoryResponse `json:"categories,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
}

func ProductToResponse(product *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID.String(),
		SellerID:    product.SellerID.String(),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Quantity:    product.Quantity,
		IsAvailable: product.IsAvailable,
		Images:      product.Images,
		CreatedAt:   product.CreatedAt,
	}
}
