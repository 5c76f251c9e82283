package entity

import (
	"github.com/google/uuid"
)

// Cart is unique per user.
type Cart struct {
	Base
	UserID uuid.UUID `db:"user_id"`
}

// CartItem is unique per (cart, product); re-adding a product increments
// quantity instead of duplicating the row. Quantity never exceeds the
// product's currently recorded stock.
type CartItem struct {
	Base
	CartID    uuid.UUID `db:"cart_id"`
	ProductID uuid.UUID `db:"product_id"`
	Quantity  int       `db:"quantity"`
}
