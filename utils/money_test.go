package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		amount float64
		want   int64
	}{
		{29.99, 2999}, // exact two-decimal conversion
		{0, 0},
		{5000, 500000},
		{0.01, 1},
		{19.999, 2000},  // rounds to nearest
		{10.005, 1001},  // half rounds up
		{1234.56, 123456},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, ToMinorUnits(tt.amount), "amount %v", tt.amount)
	}
}

func TestFormatNGN(t *testing.T) {
	tests := []struct {
		kobo int64
		want string
	}{
		{0, "₦0.00"},
		{2999, "₦29.99"},
		{500000, "₦5,000.00"},
		{1250000, "₦12,500.00"},
		{100000000, "₦1,000,000.00"},
		{105, "₦1.05"},
		{-2999, "-₦29.99"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, FormatNGN(tt.kobo), "kobo %d", tt.kobo)
	}
}
