package repository

import (
	"context"
	"fmt"
	"time"

	"art-market/internal/data/entity"
	"art-market/pkg/apperr"
	"art-market/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CartItemRepository interface {
	FindByCartID(ctx context.Context, cartID uuid.UUID) ([]*entity.CartItem, error)
	FindByCartAndID(ctx context.Context, cartID, itemID uuid.UUID) (*entity.CartItem, error)
	Delete(ctx context.Context, itemID uuid.UUID) error
	DeleteByCartID(ctx context.Context, cartID uuid.UUID) error

	// AddWithStockGuard upserts the (cart, product) item, incrementing
	// quantity by qty. The capacity check and the write happen in one
	// transaction with the product row locked, so two concurrent adds
	// cannot both pass the check and overshoot the stock.
	AddWithStockGuard(ctx context.Context, cartID, productID uuid.UUID, qty int) (*entity.CartItem, error)

	// SetQuantityWithStockGuard replaces the item quantity under the same
	// product row lock.
	SetQuantityWithStockGuard(ctx context.Context, itemID, productID uuid.UUID, qty int) (*entity.CartItem, error)
}

type cartItemRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCartItemRepository(db database.PgxIface, log *zap.Logger) CartItemRepository {
	return &cartItemRepository{
		db:  db,
		log: log.With(zap.String("repository", "cart_item")),
	}
}

const cartItemColumns = `id, cart_id, product_id, quantity, created_at, updated_at`

func (r *cartItemRepository) FindByCartID(ctx context.Context, cartID uuid.UUID) ([]*entity.CartItem, error) {
	query := `SELECT ` + cartItemColumns + ` FROM cart_items WHERE cart_id = $1 ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, cartID)
	if err != nil {
		r.log.Error("Failed to find cart items",
			zap.Error(err),
			zap.String("cart_id", cartID.String()),
		)
		return nil, fmt.Errorf("find items for cart %s: %w", cartID.String(), err)
	}
	defer rows.Close()

	var items []*entity.CartItem
	for rows.Next() {
		var item entity.CartItem
		err := rows.Scan(
			&item.ID,
			&item.CartID,
			&item.ProductID,
			&item.Quantity,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan cart item row", zap.Error(err))
			return nil, fmt.Errorf("scan cart item row: %w", err)
		}
		items = append(items, &item)
	}

	return items, nil
}

func (r *cartItemRepository) FindByCartAndID(ctx context.Context, cartID, itemID uuid.UUID) (*entity.CartItem, error) {
	query := `SELECT ` + cartItemColumns + ` FROM cart_items WHERE id = $1 AND cart_id = $2`

	var item entity.CartItem
	err := r.db.QueryRow(ctx, query, itemID, cartID).Scan(
		&item.ID,
		&item.CartID,
		&item.ProductID,
		&item.Quantity,
		&item.CreatedAt,
		&item.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find cart item",
			zap.Error(err),
			zap.String("cart_id", cartID.String()),
			zap.String("item_id", itemID.String()),
		)
		return nil, fmt.Errorf("find cart item %s: %w", itemID.String(), err)
	}

	return &item, nil
}

func (r *cartItemRepository) Delete(ctx context.Context, itemID uuid.UUID) error {
	query := `DELETE FROM cart_items WHERE id = $1`

	result, err := r.db.Exec(ctx, query, itemID)
	if err != nil {
		r.log.Error("Failed to delete cart item",
			zap.Error(err),
			zap.String("item_id", itemID.String()),
		)
		return fmt.Errorf("delete cart item %s: %w", itemID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("cart item %s not found", itemID.String())
	}

	return nil
}

func (r *cartItemRepository) DeleteByCartID(ctx context.Context, cartID uuid.UUID) error {
	query := `DELETE FROM cart_items WHERE cart_id = $1`

	if _, err := r.db.Exec(ctx, query, cartID); err != nil {
		r.log.Error("Failed to clear cart items",
			zap.Error(err),
			zap.String("cart_id", cartID.String()),
		)
		return fmt.Errorf("clear items for cart %s: %w", cartID.String(), err)
	}

	return nil
}

// lockProduct reads quantity and availability with the product row locked
// for the rest of the transaction.
func lockProduct(ctx context.Context, tx pgx.Tx, productID uuid.UUID) (available int, isAvailable bool, err error) {
	err = tx.QueryRow(ctx,
		`SELECT quantity, is_available FROM products WHERE id = $1 FOR UPDATE`,
		productID,
	).Scan(&available, &isAvailable)

	if err == pgx.ErrNoRows {
		return 0, false, apperr.NotFound("product not found")
	}
	if err != nil {
		return 0, false, fmt.Errorf("lock product %s: %w", productID.String(), err)
	}
	return available, isAvailable, nil
}

func (r *cartItemRepository) AddWithStockGuard(ctx context.Context, cartID, productID uuid.UUID, qty int) (*entity.CartItem, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin add cart item: %w", err)
	}
	defer tx.Rollback(ctx)

	available, isAvailable, err := lockProduct(ctx, tx, productID)
	if err != nil {
		return nil, err
	}
	if !isAvailable {
		return nil, apperr.InvalidState("product is not available")
	}

	var current int
	err = tx.QueryRow(ctx,
		`SELECT quantity FROM cart_items WHERE cart_id = $1 AND product_id = $2`,
		cartID, productID,
	).Scan(&current)
	if err != nil && err != pgx.ErrNoRows {
		return nil, fmt.Errorf("read current cart quantity: %w", err)
	}

	requested := current + qty
	if requested > available {
		return nil, apperr.CapacityExceeded(available, requested)
	}

	now := time.Now()
	var item entity.CartItem
	err = tx.QueryRow(ctx, `
		INSERT INTO cart_items (id, cart_id, product_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (cart_id, product_id) DO UPDATE
		SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = EXCLUDED.updated_at
		RETURNING `+cartItemColumns,
		uuid.New(), cartID, productID, qty, now,
	).Scan(
		&item.ID,
		&item.CartID,
		&item.ProductID,
		&item.Quantity,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to upsert cart item",
			zap.Error(err),
			zap.String("cart_id", cartID.String()),
			zap.String("product_id", productID.String()),
		)
		return nil, fmt.Errorf("upsert cart item: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit add cart item: %w", err)
	}

	return &item, nil
}

func (r *cartItemRepository) SetQuantityWithStockGuard(ctx context.Context, itemID, productID uuid.UUID, qty int) (*entity.CartItem, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin update cart item: %w", err)
	}
	defer tx.Rollback(ctx)

	available, _, err := lockProduct(ctx, tx, productID)
	if err != nil {
		return nil, err
	}

	if qty > available {
		return nil, apperr.CapacityExceeded(available, qty)
	}

	var item entity.CartItem
	err = tx.QueryRow(ctx, `
		UPDATE cart_items
		SET quantity = $2, updated_at = $3
		WHERE id = $1
		RETURNING `+cartItemColumns,
		itemID, qty, time.Now(),
	).Scan(
		&item.ID,
		&item.CartID,
		&item.ProductID,
		&item.Quantity,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, apperr.NotFound("cart item not found")
	}
	if err != nil {
		r.log.Error("Failed to update cart item quantity",
			zap.Error(err),
			zap.String("item_id", itemID.String()),
			zap.Int("quantity", qty),
		)
		return nil, fmt.Errorf("update cart item %s: %w", itemID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit update cart item: %w", err)
	}

	return &item, nil
}
