package usecase

import (
	"context"
	"io"
	"time"

	"art-market/internal/data/entity"
	"art-market/internal/data/repository"
	"art-market/internal/dto/request"
	"art-market/internal/dto/response"
	"art-market/pkg/apperr"
	"art-market/pkg/media"
	"art-market/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProductService interface {
	List(ctx context.Context, query *request.ProductListQuery) (*response.PaginatedResponse[response.ProductResponse], error)
	Featured(ctx context.Context, limit int) ([]response.ProductResponse, error)
	GetByID(ctx context.Context, productID string) (*response.ProductResponse, error)

	// Seller-scoped operations; mutations require the caller to own the
	// product through their seller profile.
	ListMine(ctx context.Context, userID uuid.UUID) ([]response.ProductResponse, error)
	Create(ctx context.Context, userID uuid.UUID, req *request.CreateProductRequest, mainImage io.Reader, additional []io.Reader) (*response.ProductResponse, error)
	Update(ctx context.Context, userID uuid.UUID, productID string, req *request.UpdateProductRequest) (*response.ProductResponse, error)
	Delete(ctx context.Context, userID uuid.UUID, productID string) error
}

type productService struct {
	repo     *repository.Repository
	uploader media.Uploader
	log      *zap.Logger
}

func NewProductService(repo *repository.Repository, uploader media.Uploader, log *zap.Logger) ProductService {
	return &productService{
		repo:     repo,
		uploader: uploader,
		log:      log.With(zap.String("service", "product")),
	}
}

func (s *productService) List(ctx context.Context, query *request.ProductListQuery) (*response.PaginatedResponse[response.ProductResponse], error) {
	filter := repository.ProductFilter{
		MinPrice:    query.MinPrice,
		MaxPrice:    query.MaxPrice,
		IsAvailable: query.IsAvailable,
		OrderBy:     query.OrderBy,
		Order:       query.Order,
	}
	if query.Category != "" {
		filter.CategoryNames = append(filter.CategoryNames, query.Category)
	}
	if query.Medium != "" {
		filter.CategoryNames = append(filter.CategoryNames, query.Medium)
	}

	limit := query.PerPage()
	offset := query.Offset()

	products, err := s.repo.Product.FindFiltered(ctx, filter, limit, offset)
	if err != nil {
		s.log.Error("Failed to list products", zap.Error(err))
		return nil, apperr.Internal("list products", err)
	}

	total, err := s.repo.Product.CountFiltered(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count products", zap.Error(err))
		return nil, apperr.Internal("count products", err)
	}

	out := make([]response.ProductResponse, 0, len(products))
	for _, product := range products {
		out = append(out, s.buildProductResponse(ctx, product))
	}

	s.log.Info("Products listed",
		zap.Int("count", len(products)),
		zap.Int64("total", total),
		zap.Int("page", query.Page),
	)

	return response.NewPaginatedResponse(out, query.Page, limit, total), nil
}

func (s *productService) Featured(ctx context.Context, limit int) ([]response.ProductResponse, error) {
	products, err := s.repo.Product.FindFeatured(ctx, limit)
	if err != nil {
		s.log.Error("Failed to get featured products", zap.Error(err))
		return nil, apperr.Internal("get featured products", err)
	}

	out := make([]response.ProductResponse, 0, len(products))
	for _, product := range products {
		out = append(out, s.buildProductResponse(ctx, product))
	}
	return out, nil
}

func (s *productService) GetByID(ctx context.Context, productID string) (*response.ProductResponse, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return nil, apperr.InvalidArgument("invalid product id %s", productID)
	}

	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get product", zap.Error(err), zap.String("product_id", productID))
		return nil, apperr.Internal("get product", err)
	}
	if product == nil {
		return nil, apperr.NotFound("product %s not found", productID)
	}

	resp := s.buildProductResponse(ctx, product)
	return &resp, nil
}

func (s *productService) ListMine(ctx context.Context, userID uuid.UUID) ([]response.ProductResponse, error) {
	profile, err := s.requireSellerProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	products, err := s.repo.Product.FindBySellerID(ctx, profile.ID)
	if err != nil {
		s.log.Error("Failed to list seller products", zap.Error(err), zap.String("profile_id", profile.ID.String()))
		return nil, apperr.Internal("list seller products", err)
	}

	out := make([]response.ProductResponse, 0, len(products))
	for _, product := range products {
		resp := response.ProductToResponse(product)
		categories, _ := s.repo.Product.FindCategories(ctx, product.ID)
		resp.Categories = response.CategoriesToResponse(categories)
		out = append(out, resp)
	}
	return out, nil
}

func (s *productService) Create(ctx context.Context, userID uuid.UUID, req *request.CreateProductRequest, mainImage io.Reader, additional []io.Reader) (*response.ProductResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create product validation failed", zap.Any("errors", errs))
		return nil, apperr.InvalidArgument("validation failed: %s", utils.FormatValidationErrors(errs))
	}
	if mainImage == nil {
		return nil, apperr.InvalidArgument("a product image is required")
	}

	profile, err := s.requireSellerProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	categoryIDs, err := parseUUIDs(req.CategoryIDs)
	if err != nil {
		return nil, apperr.InvalidArgument("invalid category id: %v", err)
	}
	if len(categoryIDs) > 0 {
		categories, err := s.repo.Category.FindByIDs(ctx, categoryIDs)
		if err != nil {
			s.log.Error("Failed to look up categories", zap.Error(err))
			return nil, apperr.Internal("look up categories", err)
		}
		if len(categories) != len(categoryIDs) {
			return nil, apperr.InvalidArgument("one or more categories do not exist")
		}
	}

	images := make([]string, 0, 1+len(additional))
	url, err := s.uploader.UploadImage(ctx, mainImage, media.ProductImage)
	if err != nil {
		s.log.Error("Failed to upload product image", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, apperr.Internal("upload product image", err)
	}
	images = append(images, url)
	for _, r := range additional {
		url, err := s.uploader.UploadImage(ctx, r, media.ProductImage)
		if err != nil {
			s.log.Error("Failed to upload product image", zap.Error(err), zap.String("user_id", userID.String()))
			return nil, apperr.Internal("upload product image", err)
		}
		images = append(images, url)
	}

	now := time.Now()
	product := &entity.Product{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		SellerID:    profile.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		IsAvailable: req.Quantity > 0,
		Images:      images,
	}
	if err := s.repo.Product.Create(ctx, product); err != nil {
		s.log.Error("Failed to create product", zap.Error(err), zap.String("profile_id", profile.ID.String()))
		return nil, apperr.Internal("create product", err)
	}

	if len(categoryIDs) > 0 {
		if err := s.repo.Product.SetCategories(ctx, product.ID, categoryIDs); err != nil {
			s.log.Error("Failed to set product categories", zap.Error(err), zap.String("product_id", product.ID.String()))
			return nil, apperr.Internal("set product categories", err)
		}
	}

	s.log.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("profile_id", profile.ID.String()),
		zap.String("name", product.Name),
		zap.Int("quantity", product.Quantity),
	)

	resp := s.buildProductResponse(ctx, product)
	return &resp, nil
}

func (s *productService) Update(ctx context.Context, userID uuid.UUID, productID string, req *request.UpdateProductRequest) (*response.ProductResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update product validation failed", zap.Any("errors", errs))
		return nil, apperr.InvalidArgument("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	product, err := s.requireOwnedProduct(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Quantity != nil {
		product.Quantity = *req.Quantity
		// Stock changes drive availability unless the caller sets it
		// explicitly below.
		product.IsAvailable = *req.Quantity > 0
	}
	if req.IsAvailable != nil {
		product.IsAvailable = *req.IsAvailable
	}
	product.UpdatedAt = time.Now()

	if err := s.repo.Product.Update(ctx, product); err != nil {
		s.log.Error("Failed to update product", zap.Error(err), zap.String("product_id", productID))
		return nil, apperr.Internal("update product", err)
	}

	if req.CategoryIDs != nil {
		categoryIDs, err := parseUUIDs(req.CategoryIDs)
		if err != nil {
			return nil, apperr.InvalidArgument("invalid category id: %v", err)
		}
		if err := s.repo.Product.SetCategories(ctx, product.ID, categoryIDs); err != nil {
			s.log.Error("Failed to set product categories", zap.Error(err), zap.String("product_id", productID))
			return nil, apperr.Internal("set product categories", err)
		}
	}

	s.log.Info("Product updated", zap.String("product_id", productID))

	resp := s.buildProductResponse(ctx, product)
	return &resp, nil
}

func (s *productService) Delete(ctx context.Context, userID uuid.UUID, productID string) error {
	product, err := s.requireOwnedProduct(ctx, userID, productID)
	if err != nil {
		return err
	}

	if err := s.repo.Product.Delete(ctx, product.ID); err != nil {
		s.log.Error("Failed to delete product", zap.Error(err), zap.String("product_id", productID))
		return apperr.Internal("delete product", err)
	}

	s.log.Info("Product deleted", zap.String("product_id", productID))
	return nil
}

// requireSellerProfile resolves the caller's seller profile, rejecting
// callers that have not completed seller onboarding.
func (s *productService) requireSellerProfile(ctx context.Context, userID uuid.UUID) (*entity.SellerProfile, error) {
	profile, err := s.repo.SellerProfile.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get seller profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, apperr.Internal("get seller profile", err)
	}
	if profile == nil {
		return nil, apperr.Forbidden("seller profile required")
	}
	return profile, nil
}

// requireOwnedProduct loads the product and checks that it belongs to the
// caller's seller profile.
func (s *productService) requireOwnedProduct(ctx context.Context, userID uuid.UUID, productID string) (*entity.Product, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return nil, apperr.InvalidArgument("invalid product id %s", productID)
	}

	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get product", zap.Error(err), zap.String("product_id", productID))
		return nil, apperr.Internal("get product", err)
	}
	if product == nil {
		return nil, apperr.NotFound("product %s not found", productID)
	}

	profile, err := s.repo.SellerProfile.FindByID(ctx, product.SellerID)
	if err != nil {
		s.log.Error("Failed to get seller profile", zap.Error(err), zap.String("product_id", productID))
		return nil, apperr.Internal("get seller profile", err)
	}
	if profile == nil || profile.UserID != userID {
		return nil, apperr.Forbidden("you do not own this product")
	}
	return product, nil
}

func (s *productService) buildProductResponse(ctx context.Context, product *entity.Product) response.ProductResponse {
	resp := response.ProductToResponse(product)

	categories, _ := s.repo.Product.FindCategories(ctx, product.ID)
	resp.Categories = response.CategoriesToResponse(categories)

	if profile, _ := s.repo.SellerProfile.FindByID(ctx, product.SellerID); profile != nil {
		if user, _ := s.repo.User.FindByID(ctx, profile.UserID); user != nil {
			resp.SellerName = user.Name
			resp.SellerEmail = user.Email
		}
	}
	return resp
}
