package response

import (
	"time"

	"art-market/internal/data/entity"
)

type OrderResponse struct {
	ID              string    `json:"id"`
	Type            string    `json:"type"`
	UserID          string    `json:"userId"`
	ArtistID        string    `json:"artistId"`
	ProductID       *string   `json:"productId,omitempty"`
	ReferenceImage  *string   `json:"referenceImage,omitempty"`
	Description     *string   `json:"description,omitempty"`
	PaperSize       *string   `json:"paperSize,omitempty"`
	PaperType       *string   `json:"paperType,omitempty"`
	NumPeople       *int      `json:"numPeople,omitempty"`
	BasePrice       *int      `json:"basePrice,omitempty"`
	Status          string    `json:"status"`
	RejectionReason *string   `json:"rejectionReason,omitempty"`
	DeliveryURL     *string   `json:"deliveryUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func OrderToResponse(order *entity.Order) OrderResponse {
	resp := OrderResponse{
		ID:              order.ID.String(),
		Type:            string(order.Type),
		UserID:          order.UserID.String(),
		ArtistID:        order.ArtistID.String(),
		ReferenceImage:  order.ReferenceImage,
		Description:     order.Description,
		PaperSize:       order.PaperSize,
		PaperType:       order.PaperType,
		NumPeople:       order.NumPeople,
		BasePrice:       order.BasePrice,
		Status:          string(order.Status),
		RejectionReason: order.RejectionReason,
		DeliveryURL:     order.DeliveryURL,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
	if order.ProductID != nil {
		id := order.ProductID.String()
		resp.ProductID = &id
	}
	return resp
}

func OrdersToResponse(orders []*entity.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, OrderToResponse(order))
	}
	return out
}
