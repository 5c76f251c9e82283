package repository

import (
	"errors"

	"art-market/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type Repository struct {
	User          UserRepository
	Address       AddressRepository
	SellerProfile SellerProfileRepository
	Category      CategoryRepository
	Product       ProductRepository
	Cart          CartRepository
	CartItem      CartItemRepository
	Order         OrderRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:          NewUserRepository(db, log),
		Address:       NewAddressRepository(db, log),
		SellerProfile: NewSellerProfileRepository(db, log),
		Category:      NewCategoryRepository(db, log),
		Product:       NewProductRepository(db, log),
		Cart:          NewCartRepository(db, log),
		CartItem:      NewCartItemRepository(db, log),
		Order:         NewOrderRepository(db, log),
	}
}

// IsUniqueViolation reports whether err is a postgres unique constraint error.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
