package usecase

import (
	"context"
	"time"

	"art-market/internal/data/entity"
	"art-market/internal/data/repository"
	"art-market/internal/dto/request"
	"art-market/internal/dto/response"
	"art-market/pkg/apperr"
	"art-market/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CategoryService interface {
	List(ctx context.Context) ([]response.CategoryResponse, error)
	Create(ctx context.Context, userID uuid.UUID, req *request.CreateCategoryRequest) (*response.CategoryResponse, error)
}

type categoryService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCategoryService(repo *repository.Repository, log *zap.Logger) CategoryService {
	return &categoryService{
		repo: repo,
		log:  log.With(zap.String("service", "category")),
	}
}

func (s *categoryService) List(ctx context.Context) ([]response.CategoryResponse, error) {
	categories, err := s.repo.Category.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list categories", zap.Error(err))
		return nil, apperr.Internal("list categories", err)
	}

	out := make([]response.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		resp := response.CategoryToResponse(category)
		resp.ProductCount, _ = s.repo.Category.CountProducts(ctx, category.ID)
		out = append(out, resp)
	}
	return out, nil
}

func (s *categoryService) Create(ctx context.Context, userID uuid.UUID, req *request.CreateCategoryRequest) (*response.CategoryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create category validation failed", zap.Any("errors", errs))
		return nil, apperr.InvalidArgument("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, apperr.Internal("get user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user %s not found", userID.String())
	}
	if !user.IsSeller {
		return nil, apperr.Forbidden("only sellers can create categories")
	}

	now := time.Now()
	category := &entity.Category{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Category.Create(ctx, category); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperr.InvalidArgument("category %q already exists", req.Name)
		}
		s.log.Error("Failed to create category", zap.Error(err), zap.String("name", req.Name))
		return nil, apperr.Internal("create category", err)
	}

	s.log.Info("Category created",
		zap.String("category_id", category.ID.String()),
		zap.String("name", category.Name),
	)

	resp := response.CategoryToResponse(category)
	return &resp, nil
}
