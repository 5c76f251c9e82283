package repository

import (
	"context"
	"fmt"

	"art-market/internal/data/entity"
	"art-market/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AddressRepository interface {
	Create(ctx context.Context, address *entity.Address) error
	FindByUserAndType(ctx context.Context, userID uuid.UUID, addrType entity.AddressType) (*entity.Address, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)
	Update(ctx context.Context, address *entity.Address) error
}

type addressRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAddressRepository(db database.PgxIface, log *zap.Logger) AddressRepository {
	return &addressRepository{
		db:  db,
		log: log.With(zap.String("repository", "address")),
	}
}

func (r *addressRepository) Create(ctx context.Context, address *entity.Address) error {
	query := `
		INSERT INTO addresses (id, user_id, type, pincode, address_line1, address_line2,
		                       city, state, country, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		address.ID,
		address.UserID,
		address.Type,
		address.Pincode,
		address.AddressLine1,
		address.AddressLine2,
		address.City,
		address.State,
		address.Country,
		address.CreatedAt,
		address.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create address",
			zap.Error(err),
			zap.String("user_id", address.UserID.String()),
			zap.String("type", string(address.Type)),
		)
		return fmt.Errorf("create %s address for user %s: %w", address.Type, address.UserID.String(), err)
	}

	return nil
}

func (r *addressRepository) FindByUserAndType(ctx context.Context, userID uuid.UUID, addrType entity.AddressType) (*entity.Address, error) {
	query := `
		SELECT id, user_id, type, pincode, address_line1, address_line2,
		       city, state, country, created_at, updated_at
		FROM addresses
		WHERE user_id = $1 AND type = $2
	`

	var address entity.Address
	err := r.db.QueryRow(ctx, query, userID, addrType).Scan(
		&address.ID,
		&address.UserID,
		&address.Type,
		&address.Pincode,
		&address.AddressLine1,
		&address.AddressLine2,
		&address.City,
		&address.State,
		&address.Country,
		&address.CreatedAt,
		&address.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find address by user and type",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("type", string(addrType)),
		)
		return nil, fmt.Errorf("find %s address for user %s: %w", addrType, userID.String(), err)
	}

	return &address, nil
}

func (r *addressRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	query := `
		SELECT id, user_id, type, pincode, address_line1, address_line2,
		       city, state, country, created_at, updated_at
		FROM addresses
		WHERE user_id = $1
		ORDER BY type
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find addresses by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find addresses for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var addresses []*entity.Address
	for rows.Next() {
		var address entity.Address
		err := rows.Scan(
			&address.ID,
			&address.UserID,
			&address.Type,
			&address.Pincode,
			&address.AddressLine1,
			&address.AddressLine2,
			&address.City,
			&address.State,
			&address.Country,
			&address.CreatedAt,
			&address.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan address row", zap.Error(err))
			return nil, fmt.Errorf("scan address row: %w", err)
		}
		addresses = append(addresses, &address)
	}

	return addresses, nil
}

func (r *addressRepository) Update(ctx context.Context, address *entity.Address) error {
	query := `
		UPDATE addresses
		SET pincode = $2, address_line1 = $3, address_line2 = $4,
		    city = $5, state = $6, country = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		address.ID,
		address.Pincode,
		address.AddressLine1,
		address.AddressLine2,
		address.City,
		address.State,
		address.Country,
		address.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update address",
			zap.Error(err),
			zap.String("address_id", address.ID.String()),
		)
		return fmt.Errorf("update address %s: %w", address.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("address %s not found", address.ID.String())
	}

	return nil
}
