package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"art-market/pkg/apperr"
	"art-market/pkg/utils"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRespondErrorStatusByKind(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"unauthorized", apperr.Unauthorized("token required"), http.StatusUnauthorized},
		{"forbidden", apperr.Forbidden("you do not own this product"), http.StatusForbidden},
		{"not found", apperr.NotFound("order %s not found", "42"), http.StatusNotFound},
		{"invalid argument", apperr.InvalidArgument("quantity must not be negative"), http.StatusBadRequest},
		{"invalid state", apperr.InvalidState("product is not available"), http.StatusBadRequest},
		{"capacity exceeded", apperr.CapacityExceeded(5, 6), http.StatusBadRequest},
		{"internal", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respondError(rec, zap.NewNop(), tc.err, "handle request")
			require.Equal(t, tc.code, rec.Code)
		})
	}
}

func TestRespondErrorCapacityPayload(t *testing.T) {
	rec := httptest.NewRecorder()
	respondError(rec, zap.NewNop(), apperr.CapacityExceeded(5, 6), "add cart item")

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.False(t, body.Status)

	data, ok := body.Data.(map[string]any)
	require.True(t, ok)
	require.EqualValues(t, 5, data["availableQuantity"])
	require.EqualValues(t, 6, data["requestedQuantity"])
}
