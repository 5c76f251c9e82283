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

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	FindByUserAndType(ctx context.Context, userID uuid.UUID, orderType entity.OrderType) ([]*entity.Order, error)
	FindByArtistAndType(ctx context.Context, artistID uuid.UUID, orderType entity.OrderType) ([]*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

const orderColumns = `id, type, user_id, artist_id, product_id, reference_image, description,
	paper_size, paper_type, num_people, base_price, status, rejection_reason, delivery_url,
	created_at, updated_at`

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (id, type, user_id, artist_id, product_id, reference_image,
		                    description, paper_size, paper_type, num_people, base_price,
		                    status, rejection_reason, delivery_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := r.db.Exec(ctx, query,
		order.ID,
		order.Type,
		order.UserID,
		order.ArtistID,
		order.ProductID,
		order.ReferenceImage,
		order.Description,
		order.PaperSize,
		order.PaperType,
		order.NumPeople,
		order.BasePrice,
		order.Status,
		order.RejectionReason,
		order.DeliveryURL,
		order.CreatedAt,
		order.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("type", string(order.Type)),
			zap.String("user_id", order.UserID.String()),
			zap.String("artist_id", order.ArtistID.String()),
		)
		return fmt.Errorf("create %s order: %w", order.Type, err)
	}

	return nil
}

func scanOrder(row pgx.Row, order *entity.Order) error {
	return row.Scan(
		&order.ID,
		&order.Type,
		&order.UserID,
		&order.ArtistID,
		&order.ProductID,
		&order.ReferenceImage,
		&order.Description,
		&order.PaperSize,
		&order.PaperType,
		&order.NumPeople,
		&order.BasePrice,
		&order.Status,
		&order.RejectionReason,
		&order.DeliveryURL,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
}

func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	var order entity.Order
	err := scanOrder(r.db.QueryRow(ctx, query, id), &order)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return nil, fmt.Errorf("find order by ID %s: %w", id.String(), err)
	}

	return &order, nil
}

func (r *orderRepository) FindByUserAndType(ctx context.Context, userID uuid.UUID, orderType entity.OrderType) ([]*entity.Order, error) {
	return r.findMany(ctx, "user_id", userID, orderType)
}

func (r *orderRepository) FindByArtistAndType(ctx context.Context, artistID uuid.UUID, orderType entity.OrderType) ([]*entity.Order, error) {
	return r.findMany(ctx, "artist_id", artistID, orderType)
}

func (r *orderRepository) findMany(ctx context.Context, column string, id uuid.UUID, orderType entity.OrderType) ([]*entity.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE %s = $1 AND type = $2 ORDER BY created_at DESC`,
		orderColumns, column)

	rows, err := r.db.Query(ctx, query, id, orderType)
	if err != nil {
		r.log.Error("Failed to find orders",
			zap.Error(err),
			zap.String(column, id.String()),
			zap.String("type", string(orderType)),
		)
		return nil, fmt.Errorf("find %s orders by %s %s: %w", orderType, column, id.String(), err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		var order entity.Order
		if err := scanOrder(rows, &order); err != nil {
			r.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	query := `
		UPDATE orders
		SET status = $2, rejection_reason = $3, delivery_url = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		order.ID,
		order.Status,
		order.RejectionReason,
		order.DeliveryURL,
		order.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update order",
			zap.Error(err),
			zap.String("order_id", order.ID.String()),
			zap.String("status", string(order.Status)),
		)
		return fmt.Errorf("update order %s: %w", order.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("order %s not found", order.ID.String())
	}

	return nil
}
