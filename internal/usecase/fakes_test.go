package usecase

import (
	"context"
	"fmt"
	"io"
	"sync"

	"art-market/internal/data/entity"
	"art-market/internal/data/repository"
	"art-market/pkg/apperr"
	"art-market/pkg/media"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// In-memory repository fakes. They reproduce the persistence contracts the
// services rely on, including the stock guard on cart writes.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.FirebaseUID == user.FirebaseUID {
			return &pgconn.PgError{Code: "23505"}
		}
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByFirebaseUID(_ context.Context, firebaseUID string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.FirebaseUID == firebaseUID {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID] = user
	return nil
}

type fakeSellerProfileRepo struct {
	profiles map[uuid.UUID]*entity.SellerProfile
}

func newFakeSellerProfileRepo() *fakeSellerProfileRepo {
	return &fakeSellerProfileRepo{profiles: make(map[uuid.UUID]*entity.SellerProfile)}
}

func (f *fakeSellerProfileRepo) Upsert(_ context.Context, profile *entity.SellerProfile) error {
	for _, p := range f.profiles {
		if p.UserID == profile.UserID {
			profile.ID = p.ID
			break
		}
	}
	f.profiles[profile.ID] = profile
	return nil
}

func (f *fakeSellerProfileRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.SellerProfile, error) {
	return f.profiles[id], nil
}

func (f *fakeSellerProfileRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.SellerProfile, error) {
	for _, p := range f.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeSellerProfileRepo) FindFeatured(_ context.Context, _ int) ([]*entity.SellerProfile, error) {
	return nil, nil
}

func (f *fakeSellerProfileRepo) SetCategories(_ context.Context, _ uuid.UUID, _ []uuid.UUID) error {
	return nil
}

func (f *fakeSellerProfileRepo) FindCategories(_ context.Context, _ uuid.UUID) ([]*entity.Category, error) {
	return nil, nil
}

type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
}

func (f *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	return f.products[id], nil
}

func (f *fakeProductRepo) FindFiltered(_ context.Context, _ repository.ProductFilter, _, _ int) ([]*entity.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) CountFiltered(_ context.Context, _ repository.ProductFilter) (int64, error) {
	return 0, nil
}

func (f *fakeProductRepo) FindFeatured(_ context.Context, _ int) ([]*entity.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) FindBySellerID(_ context.Context, sellerID uuid.UUID) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		if p.SellerID == sellerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) CountBySellerID(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

func (f *fakeProductRepo) SetCategories(_ context.Context, _ uuid.UUID, _ []uuid.UUID) error {
	return nil
}

func (f *fakeProductRepo) FindCategories(_ context.Context, _ uuid.UUID) ([]*entity.Category, error) {
	return nil, nil
}

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uuid.UUID]*entity.Category)}
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	for _, c := range f.categories {
		if c.Name == category.Name {
			return &pgconn.PgError{Code: "23505"}
		}
	}
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepo) FindAll(_ context.Context) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range f.categories {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCategoryRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, id := range ids {
		if c, ok := f.categories[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) CountProducts(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

type fakeCartRepo struct {
	carts map[uuid.UUID]*entity.Cart // keyed by user id
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[uuid.UUID]*entity.Cart)}
}

func (f *fakeCartRepo) Create(_ context.Context, cart *entity.Cart) error {
	// Mirrors ON CONFLICT DO NOTHING on user_id.
	if _, exists := f.carts[cart.UserID]; exists {
		return nil
	}
	f.carts[cart.UserID] = cart
	return nil
}

func (f *fakeCartRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.Cart, error) {
	return f.carts[userID], nil
}

type fakeCartItemRepo struct {
	products *fakeProductRepo
	items    map[uuid.UUID]*entity.CartItem
}

func newFakeCartItemRepo(products *fakeProductRepo) *fakeCartItemRepo {
	return &fakeCartItemRepo{
		products: products,
		items:    make(map[uuid.UUID]*entity.CartItem),
	}
}

func (f *fakeCartItemRepo) FindByCartID(_ context.Context, cartID uuid.UUID) ([]*entity.CartItem, error) {
	var out []*entity.CartItem
	for _, item := range f.items {
		if item.CartID == cartID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeCartItemRepo) FindByCartAndID(_ context.Context, cartID, itemID uuid.UUID) (*entity.CartItem, error) {
	item := f.items[itemID]
	if item == nil || item.CartID != cartID {
		return nil, nil
	}
	return item, nil
}

func (f *fakeCartItemRepo) Delete(_ context.Context, itemID uuid.UUID) error {
	delete(f.items, itemID)
	return nil
}

func (f *fakeCartItemRepo) DeleteByCartID(_ context.Context, cartID uuid.UUID) error {
	for id, item := range f.items {
		if item.CartID == cartID {
			delete(f.items, id)
		}
	}
	return nil
}

func (f *fakeCartItemRepo) AddWithStockGuard(_ context.Context, cartID, productID uuid.UUID, qty int) (*entity.CartItem, error) {
	product := f.products.products[productID]
	if product == nil {
		return nil, apperr.NotFound("product %s not found", productID.String())
	}
	if !product.IsAvailable {
		return nil, apperr.InvalidState("product %s is not available", productID.String())
	}

	var existing *entity.CartItem
	for _, item := range f.items {
		if item.CartID == cartID && item.ProductID == productID {
			existing = item
			break
		}
	}

	current := 0
	if existing != nil {
		current = existing.Quantity
	}
	if current+qty > product.Quantity {
		return nil, apperr.CapacityExceeded(product.Quantity, current+qty)
	}

	if existing != nil {
		existing.Quantity += qty
		return existing, nil
	}

	item := &entity.CartItem{
		Base:      entity.Base{ID: uuid.New()},
		CartID:    cartID,
		ProductID: productID,
		Quantity:  qty,
	}
	f.items[item.ID] = item
	return item, nil
}

func (f *fakeCartItemRepo) SetQuantityWithStockGuard(_ context.Context, itemID, productID uuid.UUID, qty int) (*entity.CartItem, error) {
	product := f.products.products[productID]
	if product == nil {
		return nil, apperr.NotFound("product %s not found", productID.String())
	}
	if qty > product.Quantity {
		return nil, apperr.CapacityExceeded(product.Quantity, qty)
	}

	item := f.items[itemID]
	if item == nil {
		return nil, apperr.NotFound("cart item %s not found", itemID.String())
	}
	item.Quantity = qty
	return item, nil
}

type fakeOrderRepo struct {
	orders map[uuid.UUID]*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uuid.UUID]*entity.Order)}
}

func (f *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	return f.orders[id], nil
}

func (f *fakeOrderRepo) FindByUserAndType(_ context.Context, userID uuid.UUID, orderType entity.OrderType) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.orders {
		if o.UserID == userID && o.Type == orderType {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) FindByArtistAndType(_ context.Context, artistID uuid.UUID, orderType entity.OrderType) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.orders {
		if o.ArtistID == artistID && o.Type == orderType {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) Update(_ context.Context, order *entity.Order) error {
	f.orders[order.ID] = order
	return nil
}

type fakeUploader struct {
	uploads int
}

func (f *fakeUploader) UploadImage(_ context.Context, _ io.Reader, profile media.UploadProfile) (string, error) {
	f.uploads++
	return fmt.Sprintf("https://res.example.com/%s/%d", profile.Folder, f.uploads), nil
}
