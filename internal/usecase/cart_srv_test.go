package usecase

import (
	"context"
	"testing"

	"art-market/internal/data/entity"
	"art-market/internal/data/repository"
	"art-market/internal/dto/request"
	"art-market/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type cartFixture struct {
	svc      CartService
	users    *fakeUserRepo
	profiles *fakeSellerProfileRepo
	products *fakeProductRepo
	carts    *fakeCartRepo
	items    *fakeCartItemRepo
}

func newCartFixture() *cartFixture {
	f := &cartFixture{
		users:    newFakeUserRepo(),
		profiles: newFakeSellerProfileRepo(),
		products: newFakeProductRepo(),
		carts:    newFakeCartRepo(),
	}
	f.items = newFakeCartItemRepo(f.products)
	repo := &repository.Repository{
		User:          f.users,
		SellerProfile: f.profiles,
		Product:       f.products,
		Cart:          f.carts,
		CartItem:      f.items,
	}
	f.svc = NewCartService(repo, zap.NewNop())
	return f
}

func (f *cartFixture) seedProduct(quantity int, available bool) *entity.Product {
	product := &entity.Product{
		Base:        entity.Base{ID: uuid.New()},
		SellerID:    uuid.New(),
		Name:        "Watercolor landscape",
		Price:       45.0,
		Quantity:    quantity,
		IsAvailable: available,
	}
	f.products.products[product.ID] = product
	return product
}

// seedSellerProduct lists a product under a seller with a resolvable
// display name.
func (f *cartFixture) seedSellerProduct(sellerName string, quantity int) *entity.Product {
	seller := &entity.User{
		Base:        entity.Base{ID: uuid.New()},
		FirebaseUID: uuid.NewString(),
		Name:        sellerName,
		Email:       "seller@example.com",
		IsSeller:    true,
	}
	f.users.users[seller.ID] = seller

	profile := &entity.SellerProfile{
		Base:   entity.Base{ID: uuid.New()},
		UserID: seller.ID,
	}
	f.profiles.profiles[profile.ID] = profile

	product := f.seedProduct(quantity, true)
	product.SellerID = profile.ID
	return product
}

func TestGetCartCreatesOnFirstAccess(t *testing.T) {
	f := newCartFixture()
	userID := uuid.New()

	cart, err := f.svc.GetCart(context.Background(), userID)
	require.NoError(t, err)
	require.NotEmpty(t, cart.ID)
	require.Empty(t, cart.Items)
	require.Zero(t, cart.Total)

	again, err := f.svc.GetCart(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, cart.ID, again.ID)
}

func TestGetCartItemsCarrySellerName(t *testing.T) {
	f := newCartFixture()
	product := f.seedSellerProduct("Asha Rao", 5)
	userID := uuid.New()

	added, err := f.svc.AddItem(context.Background(), userID, &request.AddCartItemRequest{
		ProductID: product.ID.String(),
		Quantity:  2,
	})
	require.NoError(t, err)
	require.Equal(t, "Asha Rao", added.Product.SellerName)

	cart, err := f.svc.GetCart(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.Equal(t, "Asha Rao", cart.Items[0].Product.SellerName)
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	f := newCartFixture()
	product := f.seedProduct(5, true)

	item, err := f.svc.AddItem(context.Background(), uuid.New(), &request.AddCartItemRequest{
		ProductID: product.ID.String(),
	})
	require.NoError(t, err)
	require.Equal(t, 1, item.Quantity)
}

func TestAddItemAggregatesSameProduct(t *testing.T) {
	f := newCartFixture()
	product := f.seedProduct(10, true)
	userID := uuid.New()

	_, err := f.svc.AddItem(context.Background(), userID, &request.AddCartItemRequest{
		ProductID: product.ID.String(),
		Quantity:  2,
	})
	require.NoError(t, err)

	item, err := f.svc.AddItem(context.Background(), userID, &request.AddCartItemRequest{
		ProductID: product.ID.String(),
		Quantity:  3,
	})
	require.NoError(t, err)
	require.Equal(t, 5, item.Quantity)

	cart, err := f.svc.GetCart(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.InDelta(t, 5*product.Price, cart.Total, 0.001)
}

func TestAddItemCapacityCeiling(t *testing.T) {
	f := newCartFixture()
	product := f.seedProduct(5, true)

	_, err := f.svc.AddItem(context.Background(), uuid.New(), &request.AddCartItemRequest{
		ProductID: product.ID.String(),
		Quantity:  6,
	})
	require.Error(t, err)
	require.Equal(t, apperr.KindCapacityExceeded, apperr.KindOf(err))

	e, ok := apperr.As(err)
	require.True(t, ok)
	require.Equal(t, 5, e.Available)
	require.Equal(t, 6, e.Requested)
}

func TestAddItemCapacityCountsExistingLine(t *testing.T) {
	f := newCartFixture()
	product := f.seedProduct(5, true)
	userID := uuid.New()

	_, err := f.svc.AddItem(context.Background(), userID, &request.AddCartItemRequest{
		ProductID: product.ID.String(),
		Quantity:  4,
	})
	require.NoError(t, err)

	_, err = f.svc.AddItem(context.Background(), userID, &request.AddCartItemRequest{
		ProductID: product.ID.String(),
		Quantity:  2,
	})
	require.Equal(t, apperr.KindCapacityExceeded, apperr.KindOf(err))

	e, _ := apperr.As(err)
	require.Equal(t, 5, e.Available)
	require.Equal(t, 6, e.Requested)
}

func TestAddItemUnknownProduct(t *testing.T) {
	f := newCartFixture()

	_, err := f.svc.AddItem(context.Background(), uuid.New(), &request.AddCartItemRequest{
		ProductID: uuid.New().String(),
		Quantity:  1,
	})
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestAddItemUnavailableProduct(t *testing.T) {
	f := newCartFixture()
	product := f.seedProduct(5, false)

	_, err := f.svc.AddItem(context.Background(), uuid.New(), &request.AddCartItemRequest{
		ProductID: product.ID.String(),
		Quantity:  1,
	})
	require.Equal(t, apperr.KindInvalidState, apperr.KindOf(err))
}

func TestUpdateItemReplacesQuantity(t *testing.T) {
	f := newCartFixture()
	product := f.seedProduct(10, true)
	userID := uuid.New()

	added, err := f.svc.AddItem(context.Background(), userID, &request.AddCartItemRequest{
		ProductID: product.ID.String(),
		Quantity:  2,
	})
	require.NoError(t, err)

	qty := 7
	item, err := f.svc.UpdateItem(context.Background(), userID, added.ID, &request.UpdateCartItemRequest{Quantity: &qty})
	require.NoError(t, err)
	require.Equal(t, 7, item.Quantity)
}

func TestUpdateItemZeroRemoves(t *testing.T) {
	f := newCartFixture()
	product := f.seedProduct(10, true)
	userID := uuid.New()

	added, err := f.svc.AddItem(context.Background(), userID, &request.AddCartItemRequest{
		ProductID: product.ID.String(),
		Quantity:  2,
	})
	require.NoError(t, err)

	zero := 0
	item, err := f.svc.UpdateItem(context.Background(), userID, added.ID, &request.UpdateCartItemRequest{Quantity: &zero})
	require.NoError(t, err)
	require.Nil(t, item)

	cart, err := f.svc.GetCart(context.Background(), userID)
	require.NoError(t, err)
	require.Empty(t, cart.Items)
}

func TestUpdateItemNegativeRejected(t *testing.T) {
	f := newCartFixture()
	product := f.seedProduct(10, true)
	userID := uuid.New()

	added, err := f.svc.AddItem(context.Background(), userID, &request.AddCartItemRequest{
		ProductID: product.ID.String(),
		Quantity:  2,
	})
	require.NoError(t, err)

	negative := -1
	_, err = f.svc.UpdateItem(context.Background(), userID, added.ID, &request.UpdateCartItemRequest{Quantity: &negative})
	require.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))
}

func TestUpdateItemCapacityCeiling(t *testing.T) {
	f := newCartFixture()
	product := f.seedProduct(5, true)
	userID := uuid.New()

	added, err := f.svc.AddItem(context.Background(), userID, &request.AddCartItemRequest{
		ProductID: product.ID.String(),
		Quantity:  2,
	})
	require.NoError(t, err)

	qty := 6
	_, err = f.svc.UpdateItem(context.Background(), userID, added.ID, &request.UpdateCartItemRequest{Quantity: &qty})
	require.Equal(t, apperr.KindCapacityExceeded, apperr.KindOf(err))

	e, _ := apperr.As(err)
	require.Equal(t, 5, e.Available)
	require.Equal(t, 6, e.Requested)
}

func TestUpdateItemWithoutCartNotFound(t *testing.T) {
	f := newCartFixture()

	qty := 1
	_, err := f.svc.UpdateItem(context.Background(), uuid.New(), uuid.NewString(), &request.UpdateCartItemRequest{Quantity: &qty})
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	require.Empty(t, f.carts.carts, "a failed item mutation must not create a cart")
}

func TestRemoveItemScopedToOwnCart(t *testing.T) {
	f := newCartFixture()
	product := f.seedProduct(10, true)
	owner := uuid.New()

	added, err := f.svc.AddItem(context.Background(), owner, &request.AddCartItemRequest{
		ProductID: product.ID.String(),
		Quantity:  1,
	})
	require.NoError(t, err)

	// Another user cannot see or remove the item.
	err = f.svc.RemoveItem(context.Background(), uuid.New(), added.ID)
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	require.Len(t, f.carts.carts, 1, "only the owner's cart may exist")

	require.NoError(t, f.svc.RemoveItem(context.Background(), owner, added.ID))
}

func TestClearEmptiesCart(t *testing.T) {
	f := newCartFixture()
	first := f.seedProduct(10, true)
	second := f.seedProduct(10, true)
	userID := uuid.New()

	for _, p := range []*entity.Product{first, second} {
		_, err := f.svc.AddItem(context.Background(), userID, &request.AddCartItemRequest{
			ProductID: p.ID.String(),
			Quantity:  1,
		})
		require.NoError(t, err)
	}

	require.NoError(t, f.svc.Clear(context.Background(), userID))

	cart, err := f.svc.GetCart(context.Background(), userID)
	require.NoError(t, err)
	require.Empty(t, cart.Items)
}

func TestClearWithoutCartNotFound(t *testing.T) {
	f := newCartFixture()

	err := f.svc.Clear(context.Background(), uuid.New())
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	require.Empty(t, f.carts.carts, "clearing must not create a cart")
}
