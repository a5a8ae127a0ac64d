package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEffectivePrice(t *testing.T) {
	tests := []struct {
		name    string
		product Product
		want    float64
	}{
		{
			name:    "paid product uses stored price",
			product: Product{Price: 29.99, IsFree: false},
			want:    29.99,
		},
		{
			name:    "free product is zero",
			product: Product{Price: 0, IsFree: true},
			want:    0,
		},
		{
			name:    "free flag overrides a non-zero stored price",
			product: Product{Price: 49.99, IsFree: true},
			want:    0,
		},
		{
			name:    "zero price without free flag stays zero",
			product: Product{Price: 0, IsFree: false},
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.product.EffectivePrice())
		})
	}
}

func TestValidProductType(t *testing.T) {
	for _, valid := range []string{ProductTypeBeat, ProductTypeSamplePack, ProductTypeMidiPack, ProductTypeSong} {
		require.True(t, ValidProductType(valid), valid)
	}
	require.False(t, ValidProductType("album"))
	require.False(t, ValidProductType(""))
	require.False(t, ValidProductType("Beat"))
}
