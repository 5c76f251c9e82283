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

type OrderService interface {
	// CreateProductOrder places an order for a catalog product. The
	// artist is always derived from the product's owning seller; any
	// artist id sent by the client is ignored.
	CreateProductOrder(ctx context.Context, buyerID uuid.UUID, req *request.CreateProductOrderRequest) (*response.OrderResponse, error)

	// CreateCustomOrder places a commission request with an artist,
	// optionally attaching a reference image.
	CreateCustomOrder(ctx context.Context, buyerID uuid.UUID, req *request.CreateCustomOrderRequest, referenceImage io.Reader) (*response.OrderResponse, error)

	ListByUser(ctx context.Context, userID uuid.UUID, orderType entity.OrderType) ([]response.OrderResponse, error)
	ListByArtist(ctx context.Context, callerID uuid.UUID, artistID string, orderType entity.OrderType) ([]response.OrderResponse, error)

	// GetByID fetches one order. An id that exists under the other type
	// reads as not found.
	GetByID(ctx context.Context, callerID uuid.UUID, orderID string, orderType entity.OrderType) (*response.OrderResponse, error)

	// Update applies a status transition and/or lifecycle fields. Only
	// the buyer or the artist on the order may call it.
	Update(ctx context.Context, callerID uuid.UUID, orderID string, orderType entity.OrderType, req *request.UpdateOrderRequest) (*response.OrderResponse, error)
}

type orderService struct {
	repo     *repository.Repository
	uploader media.Uploader
	log      *zap.Logger
}

func NewOrderService(repo *repository.Repository, uploader media.Uploader, log *zap.Logger) OrderService {
	return &orderService{
		repo:     repo,
		uploader: uploader,
		log:      log.With(zap.String("service", "order")),
	}
}

func (s *orderService) CreateProductOrder(ctx context.Context, buyerID uuid.UUID, req *request.CreateProductOrderRequest) (*response.OrderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create product order validation failed", zap.Any("errors", errs))
		return nil, apperr.InvalidArgument("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, apperr.InvalidArgument("invalid product id %s", req.ProductID)
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

	profile, err := s.repo.SellerProfile.FindByID(ctx, product.SellerID)
	if err != nil {
		s.log.Error("Failed to get seller profile", zap.Error(err), zap.String("product_id", req.ProductID))
		return nil, apperr.Internal("get seller profile", err)
	}
	if profile == nil {
		return nil, apperr.NotFound("seller for product %s not found", req.ProductID)
	}

	now := time.Now()
	order := &entity.Order{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Type:      entity.OrderTypeProduct,
		UserID:    buyerID,
		ArtistID:  profile.UserID,
		ProductID: &productID,
		Status:    entity.OrderStatusRequested,
	}
	if err := s.repo.Order.Create(ctx, order); err != nil {
		s.log.Error("Failed to create product order", zap.Error(err), zap.String("product_id", req.ProductID))
		return nil, apperr.Internal("create order", err)
	}

	s.log.Info("Product order created",
		zap.String("order_id", order.ID.String()),
		zap.String("buyer_id", buyerID.String()),
		zap.String("artist_id", order.ArtistID.String()),
		zap.String("product_id", req.ProductID),
	)

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) CreateCustomOrder(ctx context.Context, buyerID uuid.UUID, req *request.CreateCustomOrderRequest, referenceImage io.Reader) (*response.OrderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create custom order validation failed", zap.Any("errors", errs))
		return nil, apperr.InvalidArgument("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	artistID, err := uuid.Parse(req.ArtistID)
	if err != nil {
		return nil, apperr.InvalidArgument("invalid artist id %s", req.ArtistID)
	}

	artist, err := s.repo.User.FindByID(ctx, artistID)
	if err != nil {
		s.log.Error("Failed to get artist", zap.Error(err), zap.String("artist_id", req.ArtistID))
		return nil, apperr.Internal("get artist", err)
	}
	// An unresolvable artist is reported as a bad request, the same as a
	// malformed id, not as a missing resource.
	if artist == nil {
		return nil, apperr.InvalidArgument("artist %s not found", req.ArtistID)
	}
	if !artist.IsSeller {
		return nil, apperr.InvalidState("user %s does not accept commissions", req.ArtistID)
	}

	var referenceURL *string
	if referenceImage != nil {
		url, err := s.uploader.UploadImage(ctx, referenceImage, media.ReferenceImage)
		if err != nil {
			s.log.Error("Failed to upload reference image", zap.Error(err), zap.String("buyer_id", buyerID.String()))
			return nil, apperr.Internal("upload reference image", err)
		}
		referenceURL = &url
	}

	now := time.Now()
	order := &entity.Order{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Type:           entity.OrderTypeCustom,
		UserID:         buyerID,
		ArtistID:       artistID,
		ReferenceImage: referenceURL,
		Description:    req.Description,
		PaperSize:      req.PaperSize,
		PaperType:      req.PaperType,
		NumPeople:      req.NumPeople,
		BasePrice:      req.BasePrice,
		Status:         entity.OrderStatusRequested,
	}
	if err := s.repo.Order.Create(ctx, order); err != nil {
		s.log.Error("Failed to create custom order", zap.Error(err), zap.String("artist_id", req.ArtistID))
		return nil, apperr.Internal("create order", err)
	}

	s.log.Info("Custom order created",
		zap.String("order_id", order.ID.String()),
		zap.String("buyer_id", buyerID.String()),
		zap.String("artist_id", req.ArtistID),
		zap.Bool("has_reference_image", referenceURL != nil),
	)

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) ListByUser(ctx context.Context, userID uuid.UUID, orderType entity.OrderType) ([]response.OrderResponse, error) {
	orders, err := s.repo.Order.FindByUserAndType(ctx, userID, orderType)
	if err != nil {
		s.log.Error("Failed to list user orders", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, apperr.Internal("list orders", err)
	}
	return response.OrdersToResponse(orders), nil
}

func (s *orderService) ListByArtist(ctx context.Context, callerID uuid.UUID, artistID string, orderType entity.OrderType) ([]response.OrderResponse, error) {
	id, err := uuid.Parse(artistID)
	if err != nil {
		return nil, apperr.InvalidArgument("invalid artist id %s", artistID)
	}
	if id != callerID {
		return nil, apperr.Forbidden("you may only view your own incoming orders")
	}

	orders, err := s.repo.Order.FindByArtistAndType(ctx, id, orderType)
	if err != nil {
		s.log.Error("Failed to list artist orders", zap.Error(err), zap.String("artist_id", artistID))
		return nil, apperr.Internal("list orders", err)
	}
	return response.OrdersToResponse(orders), nil
}

func (s *orderService) GetByID(ctx context.Context, callerID uuid.UUID, orderID string, orderType entity.OrderType) (*response.OrderResponse, error) {
	order, err := s.requireParty(ctx, callerID, orderID, orderType)
	if err != nil {
		return nil, err
	}

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) Update(ctx context.Context, callerID uuid.UUID, orderID string, orderType entity.OrderType, req *request.UpdateOrderRequest) (*response.OrderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update order validation failed", zap.Any("errors", errs))
		return nil, apperr.InvalidArgument("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	order, err := s.requireParty(ctx, callerID, orderID, orderType)
	if err != nil {
		return nil, err
	}

	target := order.Status
	if req.Status != nil {
		target = entity.OrderStatus(*req.Status)
		if !entity.CanTransition(order.Status, target) {
			return nil, apperr.InvalidState("cannot move order from %s to %s", order.Status, target)
		}
	}

	if req.RejectionReason != nil && target != entity.OrderStatusRejected {
		return nil, apperr.InvalidArgument("rejection reason requires status rejected")
	}
	if req.DeliveryURL != nil &&
		target != entity.OrderStatusInProgress && target != entity.OrderStatusCompleted {
		return nil, apperr.InvalidArgument("delivery url requires status in_progress or completed")
	}

	order.Status = target
	if req.RejectionReason != nil {
		order.RejectionReason = req.RejectionReason
	}
	if req.DeliveryURL != nil {
		order.DeliveryURL = req.DeliveryURL
	}
	order.UpdatedAt = time.Now()

	if err := s.repo.Order.Update(ctx, order); err != nil {
		s.log.Error("Failed to update order", zap.Error(err), zap.String("order_id", orderID))
		return nil, apperr.Internal("update order", err)
	}

	s.log.Info("Order updated",
		zap.String("order_id", orderID),
		zap.String("status", string(order.Status)),
	)

	resp := response.OrderToResponse(order)
	return &resp, nil
}

// requireParty loads the order under the given type and checks that the
// caller is its buyer or its artist. Orders of the other type read as not
// found so the two order surfaces stay disjoint.
func (s *orderService) requireParty(ctx context.Context, callerID uuid.UUID, orderID string, orderType entity.OrderType) (*entity.Order, error) {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, apperr.InvalidArgument("invalid order id %s", orderID)
	}

	order, err := s.repo.Order.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get order", zap.Error(err), zap.String("order_id", orderID))
		return nil, apperr.Internal("get order", err)
	}
	if order == nil || order.Type != orderType {
		return nil, apperr.NotFound("order %s not found", orderID)
	}
	if order.UserID != callerID && order.ArtistID != callerID {
		return nil, apperr.Forbidden("you are not a party to this order")
	}
	return order, nil
}
