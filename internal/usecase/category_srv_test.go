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

func newCategoryFixture() (CategoryService, *fakeUserRepo) {
	users := newFakeUserRepo()
	repo := &repository.Repository{
		User:     users,
		Category: newFakeCategoryRepo(),
	}
	return NewCategoryService(repo, zap.NewNop()), users
}

func seedUser(users *fakeUserRepo, isSeller bool) uuid.UUID {
	user := &entity.User{
		Base:        entity.Base{ID: uuid.New()},
		FirebaseUID: uuid.NewString(),
		Name:        "Sam",
		IsSeller:    isSeller,
	}
	users.users[user.ID] = user
	return user.ID
}

func TestCreateCategoryRequiresSeller(t *testing.T) {
	svc, users := newCategoryFixture()
	buyerID := seedUser(users, false)

	_, err := svc.Create(context.Background(), buyerID, &request.CreateCategoryRequest{Name: "Portraits"})
	require.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	svc, users := newCategoryFixture()
	sellerID := seedUser(users, true)

	_, err := svc.Create(context.Background(), sellerID, &request.CreateCategoryRequest{Name: "Portraits"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), sellerID, &request.CreateCategoryRequest{Name: "Portraits"})
	require.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))
}

func TestListCategories(t *testing.T) {
	svc, users := newCategoryFixture()
	sellerID := seedUser(users, true)

	for _, name := range []string{"Portraits", "Landscapes"} {
		_, err := svc.Create(context.Background(), sellerID, &request.CreateCategoryRequest{Name: name})
		require.NoError(t, err)
	}

	categories, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
}
