package response

import (
	"art-market/internal/data/entity"
)

type CartItemResponse struct {
	ID       string          `json:"id"`
	Quantity int             `json:"quantity"`
	Product  ProductResponse `json:"product"`
}

type CartResponse struct {
	ID    string             `json:"id"`
	Items []CartItemResponse `json:"items"`
	Total float64            `json:"total"`
}

func CartItemToResponse(item *entity.CartItem, product *entity.Product) CartItemResponse {
	return CartItemResponse{
		ID:       item.ID.String(),
		Quantity: item.Quantity,
		Product:  ProductToResponse(product),
	}
}
