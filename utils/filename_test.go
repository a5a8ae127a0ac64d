package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"beatforge/models"
)

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Midnight Echoes", "Midnight Echoes"},
		{"Vibes (Remix) [2024]!", "Vibes Remix 2024"},
		{"808s & Heartbreaks", "808s  Heartbreaks"},
		{"", ""},
		{"---", ""},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, SanitizeTitle(tt.in))
	}
}

func TestInferExtension(t *testing.T) {
	tests := []struct {
		name        string
		fileURL     string
		productType string
		want        string
	}{
		{"wav suffix wins", "https://cdn.example.com/master.wav", models.ProductTypeSamplePack, ".wav"},
		{"mp3 suffix wins", "https://cdn.example.com/track.mp3", models.ProductTypeSamplePack, ".mp3"},
		{"zip suffix wins", "https://cdn.example.com/pack.zip", models.ProductTypeBeat, ".zip"},
		{"ambiguous beat defaults to mp3", "https://cdn.example.com/asset/12345", models.ProductTypeBeat, ".mp3"},
		{"ambiguous sample pack defaults to zip", "https://cdn.example.com/asset/12345", models.ProductTypeSamplePack, ".zip"},
		{"ambiguous midi pack defaults to zip", "https://cdn.example.com/asset/12345", models.ProductTypeMidiPack, ".zip"},
		{"ambiguous song defaults to zip", "https://cdn.example.com/asset/12345", models.ProductTypeSong, ".zip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, InferExtension(tt.fileURL, tt.productType))
		})
	}
}

func TestDownloadFileName(t *testing.T) {
	got := DownloadFileName("Midnight Echoes (VIP)", "https://cdn.example.com/asset/9", models.ProductTypeBeat)
	require.Equal(t, "Midnight Echoes VIP.mp3", got)
}

func TestUniqueUploadName(t *testing.T) {
	got := UniqueUploadName("my demo (final).mp3")

	// Timestamp prefix, then the sanitized original
	parts := strings.SplitN(got, "_", 2)
	require.Len(t, parts, 2)
	require.NotEmpty(t, parts[0])
	require.Equal(t, "my_demo__final_.mp3", parts[1])

	// Two calls never collide on the sanitized part alone
	require.True(t, strings.HasSuffix(got, ".mp3"))
}
