package entity

import (
	"github.com/google/uuid"
)

type Product struct {
	Base
	SellerID    uuid.UUID `db:"seller_id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	Price       float64   `db:"price"`
	Quantity    int       `db:"quantity"`
	IsAvailable bool      `db:"is_available"`
	Images      []string  `db:"images"`
}
