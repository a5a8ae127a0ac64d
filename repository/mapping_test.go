package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"beatforge/models"
)

func TestProductRowRoundTrip(t *testing.T) {
	req := &models.CreateProductRequest{
		Title:           "Midnight Echoes",
		Type:            models.ProductTypeBeat,
		Price:           29.99,
		IsFree:          false,
		AudioPreviewURL: "https://cdn.example.com/previews/midnight.mp3",
		ThumbnailURL:    "https://cdn.example.com/covers/midnight.jpg",
		Description:     "Dark trap beat with haunting melodies",
		Tags:            []string{"trap", "dark", "140bpm"},
		BPM:             140,
		Key:             "C minor",
		FileURL:         "https://cdn.example.com/files/midnight.wav",
	}

	row, err := fromProductRequest(req)
	require.NoError(t, err)

	row.ID = "prod-1"
	row.CreatedAt = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

	got := row.toProduct()
	require.Equal(t, "prod-1", got.ID)
	require.Equal(t, req.Title, got.Title)
	require.Equal(t, req.Type, got.Type)
	require.Equal(t, req.Price, got.Price)
	require.Equal(t, req.IsFree, got.IsFree)
	require.Equal(t, req.AudioPreviewURL, got.AudioPreviewURL)
	require.Equal(t, req.ThumbnailURL, got.ThumbnailURL)
	require.Equal(t, req.Description, got.Description)
	require.Equal(t, req.Tags, got.Tags)
	require.Equal(t, req.BPM, got.BPM)
	require.Equal(t, req.Key, got.Key)
	require.Equal(t, req.FileURL, got.FileURL)
	require.Equal(t, "2025-06-15T10:30:00Z", got.CreatedAt)
}

func TestProductRowOptionalDefaults(t *testing.T) {
	req := &models.CreateProductRequest{
		Title:  "Lo-Fi Loops",
		Type:   models.ProductTypeSamplePack,
		Price:  0,
		IsFree: true,
	}

	row, err := fromProductRequest(req)
	require.NoError(t, err)
	require.False(t, row.AudioPreviewURL.Valid)
	require.False(t, row.BPM.Valid)
	require.JSONEq(t, `[]`, string(row.Tags))

	got := row.toProduct()
	require.Empty(t, got.AudioPreviewURL)
	require.Empty(t, got.ThumbnailURL)
	require.Empty(t, got.Description)
	require.Empty(t, got.Key)
	require.Empty(t, got.FileURL)
	require.Zero(t, got.BPM)
	require.NotNil(t, got.Tags)
	require.Empty(t, got.Tags)
}

func TestToProductMalformedTags(t *testing.T) {
	row := &productRow{
		ID:        "prod-2",
		Title:     "Vintage Soul",
		Type:      models.ProductTypeSamplePack,
		Price:     49.99,
		Tags:      []byte("{not json"),
		CreatedAt: time.Now(),
	}

	got := row.toProduct()
	require.NotNil(t, got.Tags)
	require.Empty(t, got.Tags)
}

func TestToProductNullTagsColumn(t *testing.T) {
	row := &productRow{
		ID:        "prod-3",
		Title:     "City Lights",
		Type:      models.ProductTypeMidiPack,
		Price:     19.99,
		Key:       sql.NullString{String: "G major", Valid: true},
		CreatedAt: time.Now(),
	}

	got := row.toProduct()
	require.Equal(t, "G major", got.Key)
	require.NotNil(t, got.Tags)
	require.Empty(t, got.Tags)
}
