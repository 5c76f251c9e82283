package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{OrderStatusRequested, OrderStatusAccepted, true},
		{OrderStatusRequested, OrderStatusRejected, true},
		{OrderStatusRequested, OrderStatusInProgress, false},
		{OrderStatusRequested, OrderStatusCompleted, false},
		{OrderStatusAccepted, OrderStatusInProgress, true},
		{OrderStatusAccepted, OrderStatusRejected, false},
		{OrderStatusAccepted, OrderStatusRequested, false},
		{OrderStatusInProgress, OrderStatusCompleted, true},
		{OrderStatusInProgress, OrderStatusAccepted, false},
		{OrderStatusRejected, OrderStatusAccepted, false},
		{OrderStatusRejected, OrderStatusRequested, false},
		{OrderStatusCompleted, OrderStatusInProgress, false},
		// Same-status updates stay legal so fields can be attached.
		{OrderStatusRequested, OrderStatusRequested, true},
		{OrderStatusRejected, OrderStatusRejected, true},
		{OrderStatusCompleted, OrderStatusCompleted, true},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, CanTransition(tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestOrderStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{
		OrderStatusRequested, OrderStatusAccepted, OrderStatusRejected,
		OrderStatusInProgress, OrderStatusCompleted,
	} {
		require.True(t, s.Valid())
	}
	require.False(t, OrderStatus("cancelled").Valid())
	require.False(t, OrderStatus("").Valid())
}

func TestOrderTypeValid(t *testing.T) {
	require.True(t, OrderTypeProduct.Valid())
	require.True(t, OrderTypeCustom.Valid())
	require.False(t, OrderType("bulk").Valid())
}
