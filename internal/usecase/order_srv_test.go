package usecase

import (
	"context"
	"strings"
	"testing"

	"art-market/internal/data/entity"
	"art-market/internal/data/repository"
	"art-market/internal/dto/request"
	"art-market/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type orderFixture struct {
	svc      OrderService
	users    *fakeUserRepo
	profiles *fakeSellerProfileRepo
	products *fakeProductRepo
	orders   *fakeOrderRepo
	uploader *fakeUploader
}

func newOrderFixture() *orderFixture {
	f := &orderFixture{
		users:    newFakeUserRepo(),
		profiles: newFakeSellerProfileRepo(),
		products: newFakeProductRepo(),
		orders:   newFakeOrderRepo(),
		uploader: &fakeUploader{},
	}
	repo := &repository.Repository{
		User:          f.users,
		SellerProfile: f.profiles,
		Product:       f.products,
		Order:         f.orders,
	}
	f.svc = NewOrderService(repo, f.uploader, zap.NewNop())
	return f
}

// seedArtist creates a seller user with a profile and one listed product.
func (f *orderFixture) seedArtist(available bool) (artistID uuid.UUID, product *entity.Product) {
	artist := &entity.User{
		Base:        entity.Base{ID: uuid.New()},
		FirebaseUID: uuid.NewString(),
		Name:        "Mira",
		Email:       "mira@example.com",
		IsSeller:    true,
	}
	f.users.users[artist.ID] = artist

	profile := &entity.SellerProfile{
		Base:   entity.Base{ID: uuid.New()},
		UserID: artist.ID,
		Bio:    "Ink and watercolor",
	}
	f.profiles.profiles[profile.ID] = profile

	product = &entity.Product{
		Base:        entity.Base{ID: uuid.New()},
		SellerID:    profile.ID,
		Name:        "Pen sketch",
		Price:       30,
		Quantity:    3,
		IsAvailable: available,
	}
	f.products.products[product.ID] = product
	return artist.ID, product
}

func TestCreateProductOrderDerivesArtist(t *testing.T) {
	f := newOrderFixture()
	artistID, product := f.seedArtist(true)
	buyerID := uuid.New()

	// The client-supplied artist id must be ignored.
	order, err := f.svc.CreateProductOrder(context.Background(), buyerID, &request.CreateProductOrderRequest{
		ProductID: product.ID.String(),
		ArtistID:  uuid.NewString(),
	})
	require.NoError(t, err)
	require.Equal(t, artistID.String(), order.ArtistID)
	require.Equal(t, buyerID.String(), order.UserID)
	require.Equal(t, string(entity.OrderStatusRequested), order.Status)
	require.NotNil(t, order.ProductID)
	require.Equal(t, product.ID.String(), *order.ProductID)
}

func TestCreateProductOrderUnavailableProduct(t *testing.T) {
	f := newOrderFixture()
	_, product := f.seedArtist(false)

	_, err := f.svc.CreateProductOrder(context.Background(), uuid.New(), &request.CreateProductOrderRequest{
		ProductID: product.ID.String(),
	})
	require.Equal(t, apperr.KindInvalidState, apperr.KindOf(err))
	require.Empty(t, f.orders.orders, "no order row may be written for an unavailable product")
}

func TestCreateProductOrderUnknownProduct(t *testing.T) {
	f := newOrderFixture()

	_, err := f.svc.CreateProductOrder(context.Background(), uuid.New(), &request.CreateProductOrderRequest{
		ProductID: uuid.NewString(),
	})
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestCreateCustomOrderWithoutReferenceImage(t *testing.T) {
	f := newOrderFixture()
	artistID, _ := f.seedArtist(true)
	description := "Two figures, A4"
	numPeople := 2

	order, err := f.svc.CreateCustomOrder(context.Background(), uuid.New(), &request.CreateCustomOrderRequest{
		ArtistID:    artistID.String(),
		Description: &description,
		NumPeople:   &numPeople,
	}, nil)
	require.NoError(t, err)
	require.Nil(t, order.ReferenceImage)
	require.Equal(t, &numPeople, order.NumPeople)
	require.Zero(t, f.uploader.uploads)
}

func TestCreateCustomOrderUploadsReferenceImage(t *testing.T) {
	f := newOrderFixture()
	artistID, _ := f.seedArtist(true)

	order, err := f.svc.CreateCustomOrder(context.Background(), uuid.New(), &request.CreateCustomOrderRequest{
		ArtistID: artistID.String(),
	}, strings.NewReader("image-bytes"))
	require.NoError(t, err)
	require.NotNil(t, order.ReferenceImage)
	require.Equal(t, 1, f.uploader.uploads)
}

func TestCreateCustomOrderUnknownArtistRejected(t *testing.T) {
	f := newOrderFixture()

	_, err := f.svc.CreateCustomOrder(context.Background(), uuid.New(), &request.CreateCustomOrderRequest{
		ArtistID: uuid.NewString(),
	}, nil)
	require.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))
	require.Empty(t, f.orders.orders)
}

func TestCreateCustomOrderArtistNotSeller(t *testing.T) {
	f := newOrderFixture()
	buyer := &entity.User{
		Base:        entity.Base{ID: uuid.New()},
		FirebaseUID: uuid.NewString(),
		Name:        "Sam",
	}
	f.users.users[buyer.ID] = buyer

	_, err := f.svc.CreateCustomOrder(context.Background(), uuid.New(), &request.CreateCustomOrderRequest{
		ArtistID: buyer.ID.String(),
	}, nil)
	require.Equal(t, apperr.KindInvalidState, apperr.KindOf(err))
}

func TestGetByIDWrongTypeReadsAsNotFound(t *testing.T) {
	f := newOrderFixture()
	_, product := f.seedArtist(true)
	buyerID := uuid.New()

	order, err := f.svc.CreateProductOrder(context.Background(), buyerID, &request.CreateProductOrderRequest{
		ProductID: product.ID.String(),
	})
	require.NoError(t, err)

	_, err = f.svc.GetByID(context.Background(), buyerID, order.ID, entity.OrderTypeCustom)
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	got, err := f.svc.GetByID(context.Background(), buyerID, order.ID, entity.OrderTypeProduct)
	require.NoError(t, err)
	require.Equal(t, order.ID, got.ID)
}

func TestGetByIDStrangerForbidden(t *testing.T) {
	f := newOrderFixture()
	_, product := f.seedArtist(true)

	order, err := f.svc.CreateProductOrder(context.Background(), uuid.New(), &request.CreateProductOrderRequest{
		ProductID: product.ID.String(),
	})
	require.NoError(t, err)

	_, err = f.svc.GetByID(context.Background(), uuid.New(), order.ID, entity.OrderTypeProduct)
	require.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestListByArtistOnlyOwn(t *testing.T) {
	f := newOrderFixture()
	artistID, product := f.seedArtist(true)
	buyerID := uuid.New()

	_, err := f.svc.CreateProductOrder(context.Background(), buyerID, &request.CreateProductOrderRequest{
		ProductID: product.ID.String(),
	})
	require.NoError(t, err)

	orders, err := f.svc.ListByArtist(context.Background(), artistID, artistID.String(), entity.OrderTypeProduct)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	_, err = f.svc.ListByArtist(context.Background(), buyerID, artistID.String(), entity.OrderTypeProduct)
	require.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestUpdateStatusTransitions(t *testing.T) {
	cases := []struct {
		name    string
		from    entity.OrderStatus
		to      string
		wantErr bool
	}{
		{"requested to accepted", entity.OrderStatusRequested, "accepted", false},
		{"requested to rejected", entity.OrderStatusRequested, "rejected", false},
		{"requested to completed", entity.OrderStatusRequested, "completed", true},
		{"accepted to in_progress", entity.OrderStatusAccepted, "in_progress", false},
		{"accepted to requested", entity.OrderStatusAccepted, "requested", true},
		{"in_progress to completed", entity.OrderStatusInProgress, "completed", false},
		{"rejected is terminal", entity.OrderStatusRejected, "accepted", true},
		{"completed is terminal", entity.OrderStatusCompleted, "in_progress", true},
		{"same status allowed", entity.OrderStatusAccepted, "accepted", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newOrderFixture()
			artistID, product := f.seedArtist(true)
			buyerID := uuid.New()

			created, err := f.svc.CreateProductOrder(context.Background(), buyerID, &request.CreateProductOrderRequest{
				ProductID: product.ID.String(),
			})
			require.NoError(t, err)

			orderID := uuid.MustParse(created.ID)
			f.orders.orders[orderID].Status = tc.from

			var req request.UpdateOrderRequest
			req.Status = &tc.to
			if tc.to == "rejected" {
				reason := "fully booked this month"
				req.RejectionReason = &reason
			}

			updated, err := f.svc.Update(context.Background(), artistID, created.ID, entity.OrderTypeProduct, &req)
			if tc.wantErr {
				require.Equal(t, apperr.KindInvalidState, apperr.KindOf(err))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.to, updated.Status)
		})
	}
}

func TestUpdateRejectionReasonRequiresRejectedStatus(t *testing.T) {
	f := newOrderFixture()
	artistID, product := f.seedArtist(true)

	created, err := f.svc.CreateProductOrder(context.Background(), uuid.New(), &request.CreateProductOrderRequest{
		ProductID: product.ID.String(),
	})
	require.NoError(t, err)

	status := "accepted"
	reason := "cannot do this"
	_, err = f.svc.Update(context.Background(), artistID, created.ID, entity.OrderTypeProduct, &request.UpdateOrderRequest{
		Status:          &status,
		RejectionReason: &reason,
	})
	require.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))
}

func TestUpdateDeliveryURLRequiresProgressOrCompleted(t *testing.T) {
	f := newOrderFixture()
	artistID, product := f.seedArtist(true)

	created, err := f.svc.CreateProductOrder(context.Background(), uuid.New(), &request.CreateProductOrderRequest{
		ProductID: product.ID.String(),
	})
	require.NoError(t, err)

	url := "https://cdn.example.com/final.png"
	status := "accepted"
	_, err = f.svc.Update(context.Background(), artistID, created.ID, entity.OrderTypeProduct, &request.UpdateOrderRequest{
		Status:      &status,
		DeliveryURL: &url,
	})
	require.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))

	// Allowed once the order is in progress.
	orderID := uuid.MustParse(created.ID)
	f.orders.orders[orderID].Status = entity.OrderStatusInProgress

	updated, err := f.svc.Update(context.Background(), artistID, created.ID, entity.OrderTypeProduct, &request.UpdateOrderRequest{
		DeliveryURL: &url,
	})
	require.NoError(t, err)
	require.Equal(t, &url, updated.DeliveryURL)
}

func TestUpdateStrangerForbidden(t *testing.T) {
	f := newOrderFixture()
	_, product := f.seedArtist(true)

	created, err := f.svc.CreateProductOrder(context.Background(), uuid.New(), &request.CreateProductOrderRequest{
		ProductID: product.ID.String(),
	})
	require.NoError(t, err)

	status := "accepted"
	_, err = f.svc.Update(context.Background(), uuid.New(), created.ID, entity.OrderTypeProduct, &request.UpdateOrderRequest{
		Status: &status,
	})
	require.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}
