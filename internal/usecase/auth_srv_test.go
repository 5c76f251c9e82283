package usecase

import (
	"context"
	"errors"
	"testing"

	"art-market/internal/data/repository"
	"art-market/internal/dto/request"
	"art-market/pkg/apperr"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeVerifier struct {
	uid    string
	claims map[string]interface{}
	err    error
}

func (f *fakeVerifier) VerifyIDToken(_ context.Context, _ string) (*firebaseauth.Token, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &firebaseauth.Token{UID: f.uid, Claims: f.claims}, nil
}

func newAuthFixture(verifier TokenVerifier) (AuthService, *fakeUserRepo) {
	users := newFakeUserRepo()
	repo := &repository.Repository{User: users}
	return NewAuthService(repo, verifier, zap.NewNop()), users
}

func TestEnsureUserCreatesOnFirstSignIn(t *testing.T) {
	svc, users := newAuthFixture(&fakeVerifier{uid: "fb-123"})

	user, err := svc.EnsureUser(context.Background(), "token", &request.SyncUserRequest{
		Name:  "Sam",
		Email: "sam@example.com",
	})
	require.NoError(t, err)
	require.Equal(t, "Sam", user.Name)
	require.Equal(t, "sam@example.com", user.Email)
	require.False(t, user.IsSeller)
	require.Len(t, users.users, 1)
}

func TestEnsureUserIsIdempotent(t *testing.T) {
	svc, users := newAuthFixture(&fakeVerifier{uid: "fb-123"})

	first, err := svc.EnsureUser(context.Background(), "token", &request.SyncUserRequest{
		Name:  "Sam",
		Email: "sam@example.com",
	})
	require.NoError(t, err)

	second, err := svc.EnsureUser(context.Background(), "token", &request.SyncUserRequest{
		Name:  "Sam Again",
		Email: "sam@example.com",
	})
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Len(t, users.users, 1)
}

func TestEnsureUserPrefersTokenClaims(t *testing.T) {
	svc, _ := newAuthFixture(&fakeVerifier{
		uid: "fb-456",
		claims: map[string]interface{}{
			"name":  "Verified Name",
			"email": "verified@example.com",
		},
	})

	user, err := svc.EnsureUser(context.Background(), "token", &request.SyncUserRequest{
		Name:  "Body Name",
		Email: "body@example.com",
	})
	require.NoError(t, err)
	require.Equal(t, "Verified Name", user.Name)
	require.Equal(t, "verified@example.com", user.Email)
}

func TestEnsureUserRejectsBadToken(t *testing.T) {
	svc, _ := newAuthFixture(&fakeVerifier{err: errors.New("expired")})

	_, err := svc.EnsureUser(context.Background(), "token", &request.SyncUserRequest{
		Name:  "Sam",
		Email: "sam@example.com",
	})
	require.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
}

func TestEnsureUserRejectsMissingToken(t *testing.T) {
	svc, _ := newAuthFixture(&fakeVerifier{uid: "fb-123"})

	_, err := svc.EnsureUser(context.Background(), "", &request.SyncUserRequest{
		Name:  "Sam",
		Email: "sam@example.com",
	})
	require.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
}
