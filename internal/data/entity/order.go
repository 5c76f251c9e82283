package entity

import (
	"github.com/google/uuid"
)

type OrderType string

const (
	OrderTypeProduct OrderType = "product"
	OrderTypeCustom  OrderType = "custom"
)

func (t OrderType) Valid() bool {
	return t == OrderTypeProduct || t == OrderTypeCustom
}

type OrderStatus string

const (
	OrderStatusRequested  OrderStatus = "requested"
	OrderStatusAccepted   OrderStatus = "accepted"
	OrderStatusRejected   OrderStatus = "rejected"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusRequested, OrderStatusAccepted, OrderStatusRejected,
		OrderStatusInProgress, OrderStatusCompleted:
		return true
	}
	return false
}

// legalTransitions holds the order lifecycle:
// requested -> accepted|rejected, accepted -> in_progress, in_progress -> completed.
var legalTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusRequested:  {OrderStatusAccepted, OrderStatusRejected},
	OrderStatusAccepted:   {OrderStatusInProgress},
	OrderStatusInProgress: {OrderStatusCompleted},
}

// CanTransition reports whether an order may move from one status to another.
// Same-status updates are allowed so fields like the delivery URL can be
// attached without changing state.
func CanTransition(from, to OrderStatus) bool {
	if from == to {
		return true
	}
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Order is discriminated by Type: product orders reference a catalog product,
// custom orders carry commission metadata negotiated with the artist.
// For product orders ArtistID is always derived from the product's owning
// seller, never taken from the client.
type Order struct {
	Base
	Type            OrderType   `db:"type"`
	UserID          uuid.UUID   `db:"user_id"`
	ArtistID        uuid.UUID   `db:"artist_id"`
	ProductID       *uuid.UUID  `db:"product_id"`
	ReferenceImage  *string     `db:"reference_image"`
	Description     *string     `db:"description"`
	PaperSize       *string     `db:"paper_size"`
	PaperType       *string     `db:"paper_type"`
	NumPeople       *int        `db:"num_people"`
	BasePrice       *int        `db:"base_price"`
	Status          OrderStatus `db:"status"`
	RejectionReason *string     `db:"rejection_reason"`
	DeliveryURL     *string     `db:"delivery_url"`
}
