package entity

import (
	"github.com/google/uuid"
)

type AddressType string

const (
	AddressTypeDelivery AddressType = "DELIVERY"
	AddressTypePickup   AddressType = "PICKUP"
)

// Address is unique per (user, type); profile completion updates in place
// instead of creating duplicates.
type Address struct {
	Base
	UserID       uuid.UUID   `db:"user_id"`
	Type         AddressType `db:"type"`
	Pincode      string      `db:"pincode"`
	AddressLine1 string      `db:"address_line1"`
	AddressLine2 *string     `db:"address_line2"`
	City         string      `db:"city"`
	State        string      `db:"state"`
	Country      string      `db:"country"`
}
