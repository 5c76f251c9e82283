package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculateTotalPages(t *testing.T) {
	cases := []struct {
		total   int64
		perPage int
		want    int
	}{
		{0, 12, 0},
		{1, 12, 1},
		{12, 12, 1},
		{13, 12, 2},
		{100, 10, 10},
		{101, 10, 11},
		{5, 0, 0},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, CalculateTotalPages(tc.total, tc.perPage),
			"total=%d perPage=%d", tc.total, tc.perPage)
	}
}

func TestCalculateOffset(t *testing.T) {
	require.Equal(t, 0, CalculateOffset(1, 12))
	require.Equal(t, 12, CalculateOffset(2, 12))
	require.Equal(t, 0, CalculateOffset(0, 12))
	require.Equal(t, 0, CalculateOffset(-1, 12))
}
