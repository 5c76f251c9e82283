package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseInt(t *testing.T) {
	require.Equal(t, 5, ParseInt("5", 1))
	require.Equal(t, 1, ParseInt("", 1))
	require.Equal(t, 1, ParseInt("abc", 1))
	require.Equal(t, 1, ParseInt("0", 1))
	require.Equal(t, 1, ParseInt("-3", 1))
}

func TestParseFloat(t *testing.T) {
	require.Equal(t, 19.5, ParseFloat("19.5", 0))
	require.Equal(t, 0.0, ParseFloat("", 0))
	require.Equal(t, 0.0, ParseFloat("x", 0))
}

func TestParseOptionalInt(t *testing.T) {
	require.Nil(t, ParseOptionalInt(""))
	require.Nil(t, ParseOptionalInt("  "))
	require.Nil(t, ParseOptionalInt("two"))

	got := ParseOptionalInt("2")
	require.NotNil(t, got)
	require.Equal(t, 2, *got)

	zero := ParseOptionalInt("0")
	require.NotNil(t, zero)
	require.Equal(t, 0, *zero)
}

func TestParseOptionalFloat(t *testing.T) {
	require.Nil(t, ParseOptionalFloat(""))
	require.Nil(t, ParseOptionalFloat("cheap"))

	got := ParseOptionalFloat("49.99")
	require.NotNil(t, got)
	require.Equal(t, 49.99, *got)
}
