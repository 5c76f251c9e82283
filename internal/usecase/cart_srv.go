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

type CartService interface {
	// GetCart returns the caller's cart, creating an empty one on first
	// access.
	GetCart(ctx context.Context, userID uuid.UUID) (*response.CartResponse, error)

	// AddItem adds a product to the cart, aggregating quantity with any
	// existing line for the same product. The stock check and the write
	// happen atomically against the product row.
	AddItem(ctx context.Context, userID uuid.UUID, req *request.AddCartItemRequest) (*response.CartItemResponse, error)

	// UpdateItem replaces an item's quantity. Quantity zero removes the
	// item, in which case the returned item is nil.
	UpdateItem(ctx context.Context, userID uuid.UUID, itemID string, req *request.UpdateCartItemRequest) (*response.CartItemResponse, error)

	RemoveItem(ctx context.Context, userID uuid.UUID, itemID string) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

type cartService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCartService(repo *repository.Repository, log *zap.Logger) CartService {
	return &cartService{
		repo: repo,
		log:  log.With(zap.String("service", "cart")),
	}
}

func (s *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*response.CartResponse, error) {
	cart, err := s.getOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.CartItem.FindByCartID(ctx, cart.ID)
	if err != nil {
		s.log.Error("Failed to get cart items", zap.Error(err), zap.String("cart_id", cart.ID.String()))
		return nil, apperr.Internal("get cart items", err)
	}

	resp := &response.CartResponse{
		ID:    cart.ID.String(),
		Items: make([]response.CartItemResponse, 0, len(items)),
	}
	for _, item := range items {
		product, err := s.repo.Product.FindByID(ctx, item.ProductID)
		if err != nil {
			s.log.Error("Failed to get cart product", zap.Error(err), zap.String("product_id", item.ProductID.String()))
			return nil, apperr.Internal("get cart product", err)
		}
		if product == nil {
			// Product deleted since it was added; skip the stale line.
			continue
		}
		resp.Items = append(resp.Items, s.itemResponse(ctx, item, product))
		resp.Total += product.Price * float64(item.Quantity)
	}

	return resp, nil
}

func (s *cartService) AddItem(ctx context.Context, userID uuid.UUID, req *request.AddCartItemRequest) (*response.CartItemResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add cart item validation failed", zap.Any("errors", errs))
		return nil, apperr.InvalidArgument("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, apperr.InvalidArgument("invalid product id %s", req.ProductID)
	}

	qty := req.Quantity
	if qty == 0 {
		qty = 1
	}

	product, err := s.repo.Product.FindByID(ctx, productID)
	if err != nil {
		s.log.Error("Failed to get product", zap.Error(err), zap.String("product_id", req.ProductID))
		return nil, apperr.Internal("get product", err)
	}
	if product == nil {
		return nil, apperr.NotFound("product %s not found", req.ProductID)
	}
	if !product.IsAvailable {
		return nil, apperr.InvalidState("product %s is not available", req.ProductID)
	}

	cart, err := s.getOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	// The guard re-checks stock under a product row lock so concurrent
	// adds cannot jointly exceed it.
	item, err := s.repo.CartItem.AddWithStockGuard(ctx, cart.ID, productID, qty)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindInternal {
			s.log.Error("Failed to add cart item", zap.Error(err), zap.String("cart_id", cart.ID.String()))
		}
		return nil, err
	}

	s.log.Info("Cart item added",
		zap.String("cart_id", cart.ID.String()),
		zap.String("product_id", req.ProductID),
		zap.Int("quantity", item.Quantity),
	)

	resp := s.itemResponse(ctx, item, product)
	return &resp, nil
}

func (s *cartService) UpdateItem(ctx context.Context, userID uuid.UUID, itemID string, req *request.UpdateCartItemRequest) (*response.CartItemResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update cart item validation failed", zap.Any("errors", errs))
		return nil, apperr.InvalidArgument("validation failed: %s", utils.FormatValidationErrors(errs))
	}
	if *req.Quantity < 0 {
		return nil, apperr.InvalidArgument("quantity must not be negative")
	}

	item, cart, err := s.requireOwnedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	if *req.Quantity == 0 {
		if err := s.repo.CartItem.Delete(ctx, item.ID); err != nil {
			s.log.Error("Failed to remove cart item", zap.Error(err), zap.String("item_id", itemID))
			return nil, apperr.Internal("remove cart item", err)
		}
		s.log.Info("Cart item removed via zero quantity",
			zap.String("cart_id", cart.ID.String()),
			zap.String("item_id", itemID),
		)
		return nil, nil
	}

	updated, err := s.repo.CartItem.SetQuantityWithStockGuard(ctx, item.ID, item.ProductID, *req.Quantity)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindInternal {
			s.log.Error("Failed to update cart item", zap.Error(err), zap.String("item_id", itemID))
		}
		return nil, err
	}

	product, err := s.repo.Product.FindByID(ctx, item.ProductID)
	if err != nil || product == nil {
		s.log.Error("Failed to get cart product", zap.Error(err), zap.String("product_id", item.ProductID.String()))
		return nil, apperr.Internal("get cart product", err)
	}

	s.log.Info("Cart item updated",
		zap.String("cart_id", cart.ID.String()),
		zap.String("item_id", itemID),
		zap.Int("quantity", updated.Quantity),
	)

	resp := s.itemResponse(ctx, updated, product)
	return &resp, nil
}

func (s *cartService) RemoveItem(ctx context.Context, userID uuid.UUID, itemID string) error {
	item, cart, err := s.requireOwnedItem(ctx, userID, itemID)
	if err != nil {
		return err
	}

	if err := s.repo.CartItem.Delete(ctx, item.ID); err != nil {
		s.log.Error("Failed to remove cart item", zap.Error(err), zap.String("item_id", itemID))
		return apperr.Internal("remove cart item", err)
	}

	s.log.Info("Cart item removed",
		zap.String("cart_id", cart.ID.String()),
		zap.String("item_id", itemID),
	)
	return nil
}

func (s *cartService) Clear(ctx context.Context, userID uuid.UUID) error {
	cart, err := s.requireCart(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.repo.CartItem.DeleteByCartID(ctx, cart.ID); err != nil {
		s.log.Error("Failed to clear cart", zap.Error(err), zap.String("cart_id", cart.ID.String()))
		return apperr.Internal("clear cart", err)
	}

	s.log.Info("Cart cleared", zap.String("cart_id", cart.ID.String()))
	return nil
}

// getOrCreateCart returns the user's cart, creating it on first access.
// The insert is conflict-free, so two concurrent first accesses converge
// on the same row.
func (s *cartService) getOrCreateCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := s.repo.Cart.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get cart", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, apperr.Internal("get cart", err)
	}
	if cart != nil {
		return cart, nil
	}

	now := time.Now()
	cart = &entity.Cart{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID: userID,
	}
	if err := s.repo.Cart.Create(ctx, cart); err != nil {
		s.log.Error("Failed to create cart", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, apperr.Internal("create cart", err)
	}

	// Re-read: a concurrent creation may have won, in which case the
	// insert above was a no-op.
	cart, err = s.repo.Cart.FindByUserID(ctx, userID)
	if err != nil || cart == nil {
		s.log.Error("Failed to get cart after create", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, apperr.Internal("get cart", err)
	}
	return cart, nil
}

// requireCart resolves the user's existing cart without creating one.
func (s *cartService) requireCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := s.repo.Cart.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get cart", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, apperr.Internal("get cart", err)
	}
	if cart == nil {
		return nil, apperr.NotFound("cart not found")
	}
	return cart, nil
}

// requireOwnedItem resolves the item within the caller's cart; items in
// other carts are indistinguishable from missing ones. A user without a
// cart owns no items, so no cart is created here.
func (s *cartService) requireOwnedItem(ctx context.Context, userID uuid.UUID, itemID string) (*entity.CartItem, *entity.Cart, error) {
	id, err := uuid.Parse(itemID)
	if err != nil {
		return nil, nil, apperr.InvalidArgument("invalid cart item id %s", itemID)
	}

	cart, err := s.repo.Cart.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get cart", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, nil, apperr.Internal("get cart", err)
	}
	if cart == nil {
		return nil, nil, apperr.NotFound("cart item %s not found", itemID)
	}

	item, err := s.repo.CartItem.FindByCartAndID(ctx, cart.ID, id)
	if err != nil {
		s.log.Error("Failed to get cart item", zap.Error(err), zap.String("item_id", itemID))
		return nil, nil, apperr.Internal("get cart item", err)
	}
	if item == nil {
		return nil, nil, apperr.NotFound("cart item %s not found", itemID)
	}
	return item, cart, nil
}

// itemResponse expands an item with its product and the seller's display
// name, resolved through the seller profile.
func (s *cartService) itemResponse(ctx context.Context, item *entity.CartItem, product *entity.Product) response.CartItemResponse {
	resp := response.CartItemToResponse(item, product)
	if profile, _ := s.repo.SellerProfile.FindByID(ctx, product.SellerID); profile != nil {
		if user, _ := s.repo.User.FindByID(ctx, profile.UserID); user != nil {
			resp.Product.SellerName = user.Name
		}
	}
	return resp
}
