package usecase

import (
	"art-market/internal/data/repository"
	"art-market/pkg/media"
	"art-market/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	User     UserService
	Seller   SellerService
	Category CategoryService
	Product  ProductService
	Cart     CartService
	Order    OrderService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	verifier TokenVerifier,
	uploader media.Uploader,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:     NewAuthService(repo, verifier, log),
		User:     NewUserService(repo, log),
		Seller:   NewSellerService(repo, uploader, log),
		Category: NewCategoryService(repo, log),
		Product:  NewProductService(repo, uploader, log),
		Cart:     NewCartService(repo, log),
		Order:    NewOrderService(repo, uploader, log),
	}
}
