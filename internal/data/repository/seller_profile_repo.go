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

type SellerProfileRepository interface {
	Upsert(ctx context.Context, profile *entity.SellerProfile) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SellerProfile, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.SellerProfile, error)
	FindFeatured(ctx context.Context, limit int) ([]*entity.SellerProfile, error)
	SetCategories(ctx context.Context, profileID uuid.UUID, categoryIDs []uuid.UUID) error
	FindCategories(ctx context.Context, profileID uuid.UUID) ([]*entity.Category, error)
}

type sellerProfileRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSellerProfileRepository(db database.PgxIface, log *zap.Logger) SellerProfileRepository {
	return &sellerProfileRepository{
		db:  db,
		log: log.With(zap.String("repository", "seller_profile")),
	}
}

// Upsert creates the seller profile or updates it in place, keyed on the
// unique user_id. The caller fills ID/CreatedAt for the insert path.
func (r *sellerProfileRepository) Upsert(ctx context.Context, profile *entity.SellerProfile) error {
	query := `
		INSERT INTO seller_profiles (id, user_id, bio, profile_image, portfolio_images,
		                             pickup_address_id, does_custom_art, custom_art_pricing,
		                             material_options, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (user_id) DO UPDATE
		SET bio = EXCLUDED.bio,
		    profile_image = COALESCE(EXCLUDED.profile_image, seller_profiles.profile_image),
		    portfolio_images = EXCLUDED.portfolio_images,
		    pickup_address_id = EXCLUDED.pickup_address_id,
		    does_custom_art = EXCLUDED.does_custom_art,
		    custom_art_pricing = EXCLUDED.custom_art_pricing,
		    material_options = EXCLUDED.material_options,
		    updated_at = EXCLUDED.updated_at
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		profile.ID,
		profile.UserID,
		profile.Bio,
		profile.ProfileImage,
		profile.PortfolioImages,
		profile.PickupAddressID,
		profile.DoesCustomArt,
		profile.CustomArtPricing,
		profile.MaterialOptions,
		profile.CreatedAt,
		profile.UpdatedAt,
	).Scan(&profile.ID, &profile.CreatedAt)

	if err != nil {
		r.log.Error("Failed to upsert seller profile",
			zap.Error(err),
			zap.String("user_id", profile.UserID.String()),
		)
		return fmt.Errorf("upsert seller profile for user %s: %w", profile.UserID.String(), err)
	}

	return nil
}

func (r *sellerProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SellerProfile, error) {
	return r.findOne(ctx, "id", id)
}

func (r *sellerProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.SellerProfile, error) {
	return r.findOne(ctx, "user_id", userID)
}

func (r *sellerProfileRepository) findOne(ctx context.Context, column string, value uuid.UUID) (*entity.SellerProfile, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, bio, profile_image, portfolio_images, pickup_address_id,
		       does_custom_art, custom_art_pricing, material_options, created_at, updated_at
		FROM seller_profiles
		WHERE %s = $1
	`, column)

	var profile entity.SellerProfile
	err := r.db.QueryRow(ctx, query, value).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Bio,
		&profile.ProfileImage,
		&profile.PortfolioImages,
		&profile.PickupAddressID,
		&profile.DoesCustomArt,
		&profile.CustomArtPricing,
		&profile.MaterialOptions,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find seller profile",
			zap.Error(err),
			zap.String(column, value.String()),
		)
		return nil, fmt.Errorf("find seller profile by %s %s: %w", column, value.String(), err)
	}

	return &profile, nil
}

// FindFeatured returns profiles ordered by how many products they list.
func (r *sellerProfileRepository) FindFeatured(ctx context.Context, limit int) ([]*entity.SellerProfile, error) {
	query := `
		SELECT sp.id, sp.user_id, sp.bio, sp.profile_image, sp.portfolio_images,
		       sp.pickup_address_id, sp.does_custom_art, sp.custom_art_pricing,
		       sp.material_options, sp.created_at, sp.updated_at
		FROM seller_profiles sp
		LEFT JOIN products p ON p.seller_id = sp.id
		GROUP BY sp.id
		ORDER BY COUNT(p.id) DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to find featured sellers", zap.Error(err))
		return nil, fmt.Errorf("find featured sellers: %w", err)
	}
	defer rows.Close()

	var profiles []*entity.SellerProfile
	for rows.Next() {
		var profile entity.SellerProfile
		err := rows.Scan(
			&profile.ID,
			&profile.UserID,
			&profile.Bio,
			&profile.ProfileImage,
			&profile.PortfolioImages,
			&profile.PickupAddressID,
			&profile.DoesCustomArt,
			&profile.CustomArtPricing,
			&profile.MaterialOptions,
			&profile.CreatedAt,
			&profile.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan seller profile row", zap.Error(err))
			return nil, fmt.Errorf("scan seller profile row: %w", err)
		}
		profiles = append(profiles, &profile)
	}

	return profiles, nil
}

func (r *sellerProfileRepository) SetCategories(ctx context.Context, profileID uuid.UUID, categoryIDs []uuid.UUID) error {
	if _, err := r.db.Exec(ctx,
		`DELETE FROM seller_profile_categories WHERE seller_profile_id = $1`, profileID); err != nil {
		r.log.Error("Failed to clear seller categories",
			zap.Error(err),
			zap.String("seller_profile_id", profileID.String()),
		)
		return fmt.Errorf("clear categories for seller profile %s: %w", profileID.String(), err)
	}

	for _, categoryID := range categoryIDs {
		if _, err := r.db.Exec(ctx,
			`INSERT INTO seller_profile_categories (seller_profile_id, category_id) VALUES ($1, $2)`,
			profileID, categoryID); err != nil {
			r.log.Error("Failed to link seller category",
				zap.Error(err),
				zap.String("seller_profile_id", profileID.String()),
				zap.String("category_id", categoryID.String()),
			)
			return fmt.Errorf("link category %s to seller profile %s: %w", categoryID.String(), profileID.String(), err)
		}
	}

	return nil
}

func (r *sellerProfileRepository) FindCategories(ctx context.Context, profileID uuid.UUID) ([]*entity.Category, error) {
	query := `
		SELECT c.id, c.name, c.description, c.created_at, c.updated_at
		FROM categories c
		JOIN seller_profile_categories spc ON spc.category_id = c.id
		WHERE spc.seller_profile_id = $1
		ORDER BY c.name
	`

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		r.log.Error("Failed to find seller categories",
			zap.Error(err),
			zap.String("seller_profile_id", profileID.String()),
		)
		return nil, fmt.Errorf("find categories for seller profile %s: %w", profileID.String(), err)
	}
	defer rows.Close()

	var categories []*entity.Category
	for rows.Next() {
		var category entity.Category
		err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.Description,
			&category.CreatedAt,
			&category.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan category row", zap.Error(err))
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		categories = append(categories, &category)
	}

	return categories, nil
}
