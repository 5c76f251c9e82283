package repository

import (
	"context"
	"fmt"
	"strings"

	"art-market/internal/data/entity"
	"art-market/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ProductFilter narrows catalog listings. Category names are matched
// case-insensitively; nil bounds are skipped.
type ProductFilter struct {
	CategoryNames []string
	MinPrice      *float64
	MaxPrice      *float64
	IsAvailable   *bool
	OrderBy       string // created_at or price
	Order         string // asc or desc
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	FindFiltered(ctx context.Context, filter ProductFilter, limit, offset int) ([]*entity.Product, error)
	CountFiltered(ctx context.Context, filter ProductFilter) (int64, error)
	FindFeatured(ctx context.Context, limit int) ([]*entity.Product, error)
	FindBySellerID(ctx context.Context, sellerID uuid.UUID) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountBySellerID(ctx context.Context, sellerID uuid.UUID) (int64, error)

	SetCategories(ctx context.Context, productID uuid.UUID, categoryIDs []uuid.UUID) error
	FindCategories(ctx context.Context, productID uuid.UUID) ([]*entity.Category, error)
}

type productRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProductRepository(db database.PgxIface, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log.With(zap.String("repository", "product")),
	}
}

const productColumns = `id, seller_id, name, description, price, quantity, is_available, images, created_at, updated_at`

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, seller_id, name, description, price, quantity,
		                      is_available, images, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		product.ID,
		product.SellerID,
		product.Name,
		product.Description,
		product.Price,
		product.Quantity,
		product.IsAvailable,
		product.Images,
		product.CreatedAt,
		product.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("name", product.Name),
			zap.String("seller_id", product.SellerID.String()),
		)
		return fmt.Errorf("create product %s: %w", product.Name, err)
	}

	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	var product entity.Product
	err := r.db.QueryRow(ctx, query, id).Scan(
		&product.ID,
		&product.SellerID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Quantity,
		&product.IsAvailable,
		&product.Images,
		&product.CreatedAt,
		&product.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find product by ID",
			zap.Error(err),
			zap.String("product_id", id.String()),
		)
		return nil, fmt.Errorf("find product by ID %s: %w", id.String(), err)
	}

	return &product, nil
}

// buildFilter renders the WHERE clause and args for a product filter.
func buildFilter(filter ProductFilter) (string, []any) {
	var clauses []string
	var args []any

	if len(filter.CategoryNames) > 0 {
		args = append(args, filter.CategoryNames)
		clauses = append(clauses, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM product_categories pc
			JOIN categories c ON c.id = pc.category_id
			WHERE pc.product_id = products.id AND LOWER(c.name) = ANY(
				SELECT LOWER(n) FROM unnest($%d::text[]) AS n
			)
		)`, len(args)))
	}
	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		clauses = append(clauses, fmt.Sprintf("price >= $%d", len(args)))
	}
	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		clauses = append(clauses, fmt.Sprintf("price <= $%d", len(args)))
	}
	if filter.IsAvailable != nil {
		args = append(args, *filter.IsAvailable)
		clauses = append(clauses, fmt.Sprintf("is_available = $%d", len(args)))
	}

	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// orderClause restricts sorting to allowed columns.
func orderClause(filter ProductFilter) string {
	orderBy := "created_at"
	if filter.OrderBy == "price" {
		orderBy = "price"
	}
	order := "DESC"
	if strings.EqualFold(filter.Order, "asc") {
		order = "ASC"
	}
	return fmt.Sprintf(" ORDER BY %s %s", orderBy, order)
}

func (r *productRepository) FindFiltered(ctx context.Context, filter ProductFilter, limit, offset int) ([]*entity.Product, error) {
	where, args := buildFilter(filter)
	args = append(args, limit, offset)
	query := fmt.Sprintf("SELECT %s FROM products%s%s LIMIT $%d OFFSET $%d",
		productColumns, where, orderClause(filter), len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find filtered products",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find filtered products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows, r.log)
}

func (r *productRepository) CountFiltered(ctx context.Context, filter ProductFilter) (int64, error) {
	where, args := buildFilter(filter)
	query := "SELECT COUNT(*) FROM products" + where

	var count int64
	err := r.db.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count filtered products", zap.Error(err))
		return 0, fmt.Errorf("count filtered products: %w", err)
	}

	return count, nil
}

func (r *productRepository) FindFeatured(ctx context.Context, limit int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products
		WHERE is_available = true
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to find featured products", zap.Error(err))
		return nil, fmt.Errorf("find featured products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows, r.log)
}

func (r *productRepository) FindBySellerID(ctx context.Context, sellerID uuid.UUID) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products
		WHERE seller_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, sellerID)
	if err != nil {
		r.log.Error("Failed to find products by seller ID",
			zap.Error(err),
			zap.String("seller_id", sellerID.String()),
		)
		return nil, fmt.Errorf("find products for seller %s: %w", sellerID.String(), err)
	}
	defer rows.Close()

	return scanProducts(rows, r.log)
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, quantity = $5,
		    is_available = $6, images = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		product.Price,
		product.Quantity,
		product.IsAvailable,
		product.Images,
		product.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update product",
			zap.Error(err),
			zap.String("product_id", product.ID.String()),
		)
		return fmt.Errorf("update product %s: %w", product.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product %s not found", product.ID.String())
	}

	return nil
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM products WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete product",
			zap.Error(err),
			zap.String("product_id", id.String()),
		)
		return fmt.Errorf("delete product %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product %s not found", id.String())
	}

	r.log.Info("Product deleted", zap.String("product_id", id.String()))
	return nil
}

func (r *productRepository) CountBySellerID(ctx context.Context, sellerID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM products WHERE seller_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, sellerID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count products by seller ID",
			zap.Error(err),
			zap.String("seller_id", sellerID.String()),
		)
		return 0, fmt.Errorf("count products for seller %s: %w", sellerID.String(), err)
	}

	return count, nil
}

func (r *productRepository) SetCategories(ctx context.Context, productID uuid.UUID, categoryIDs []uuid.UUID) error {
	if _, err := r.db.Exec(ctx,
		`DELETE FROM product_categories WHERE product_id = $1`, productID); err != nil {
		r.log.Error("Failed to clear product categories",
			zap.Error(err),
			zap.String("product_id", productID.String()),
		)
		return fmt.Errorf("clear categories for product %s: %w", productID.String(), err)
	}

	for _, categoryID := range categoryIDs {
		if _, err := r.db.Exec(ctx,
			`INSERT INTO product_categories (product_id, category_id) VALUES ($1, $2)`,
			productID, categoryID); err != nil {
			r.log.Error("Failed to link product category",
				zap.Error(err),
				zap.String("product_id", productID.String()),
				zap.String("category_id", categoryID.String()),
			)
			return fmt.Errorf("link category %s to product %s: %w", categoryID.String(), productID.String(), err)
		}
	}

	return nil
}

func (r *productRepository) FindCategories(ctx context.Context, productID uuid.UUID) ([]*entity.Category, error) {
	query := `
		SELECT c.id, c.name, c.description, c.created_at, c.updated_at
		FROM categories c
		JOIN product_categories pc ON pc.category_id = c.id
		WHERE pc.product_id = $1
		ORDER BY c.name
	`

	rows, err := r.db.Query(ctx, query, productID)
	if err != nil {
		r.log.Error("Failed to find product categories",
			zap.Error(err),
			zap.String("product_id", productID.String()),
		)
		return nil, fmt.Errorf("find categories for product %s: %w", productID.String(), err)
	}
	defer rows.Close()

	return scanCategories(rows, r.log)
}

func scanProducts(rows pgx.Rows, log *zap.Logger) ([]*entity.Product, error) {
	var products []*entity.Product
	for rows.Next() {
		var product entity.Product
		err := rows.Scan(
			&product.ID,
			&product.SellerID,
			&product.Name,
			&product.Description,
			&product.Price,
			&product.Quantity,
			&product.IsAvailable,
			&product.Images,
			&product.CreatedAt,
			&product.UpdatedAt,
		)
		if err != nil {
			log.Error("Failed to scan product row", zap.Error(err))
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, &product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, nil
}
