package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	require.Equal(t, KindNotFound, KindOf(NotFound("order %s not found", "abc")))
	require.Equal(t, KindForbidden, KindOf(Forbidden("nope")))
	require.Equal(t, KindInternal, KindOf(errors.New("plain")))
	require.Equal(t, KindInternal, KindOf(nil))
}

func TestKindOfWrapped(t *testing.T) {
	err := fmt.Errorf("handling request: %w", InvalidState("product is not available"))
	require.Equal(t, KindInvalidState, KindOf(err))
}

func TestCapacityExceededCarriesQuantities(t *testing.T) {
	err := CapacityExceeded(5, 6)

	e, ok := As(err)
	require.True(t, ok)
	require.Equal(t, KindCapacityExceeded, e.Kind)
	require.Equal(t, 5, e.Available)
	require.Equal(t, 6, e.Requested)
	require.NotEmpty(t, err.Error())
}

func TestInternalUnwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal("query products", cause)
	require.ErrorIs(t, err, cause)
	require.Equal(t, KindInternal, KindOf(err))
}
