package repository

import (
	"database/sql"
	"encoding/json"
	"log"
	"time"

	"beatforge/models"
)

// productRow mirrors the products table shape. Optional columns are nullable
// so the mapping in one place decides every default, instead of ad-hoc field
// renaming spread across queries.
type productRow struct {
	ID              string
	Title           string
	Type            string
	Price           float64
	IsFree          bool
	AudioPreviewURL sql.NullString
	ThumbnailURL    sql.NullString
	Description     sql.NullString
	Tags            []byte // JSONB payload
	BPM             sql.NullInt64
	Key             sql.NullString
	FileURL         sql.NullString
	CreatedAt       time.Time
}

// toProduct converts a storage row into the in-memory product representation.
// Absent optional columns default to empty values; a malformed tags payload
// is logged and treated as no tags rather than failing the whole read.
func (r *productRow) toProduct() models.Product {
	p := models.Product{
		ID:              r.ID,
		Title:           r.Title,
		Type:            r.Type,
		Price:           r.Price,
		IsFree:          r.IsFree,
		AudioPreviewURL: r.AudioPreviewURL.String,
		ThumbnailURL:    r.ThumbnailURL.String,
		Description:     r.Description.String,
		Tags:            []string{},
		Key:             r.Key.String,
		FileURL:         r.FileURL.String,
		CreatedAt:       r.CreatedAt.UTC().Format(time.RFC3339),
	}

	if r.BPM.Valid {
		p.BPM = int(r.BPM.Int64)
	}

	if len(r.Tags) > 0 {
		var tags []string
		if err := json.Unmarshal(r.Tags, &tags); err != nil {
			log.Printf("warning: failed to parse tags payload for product %s: %v", r.ID, err)
		} else if tags != nil {
			p.Tags = tags
		}
	}

	return p
}

// fromProductRequest converts a create request into storage-ready values.
// The inverse of toProduct for every writable field.
func fromProductRequest(req *models.CreateProductRequest) (*productRow, error) {
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return nil, err
	}

	return &productRow{
		Title:           req.Title,
		Type:            req.Type,
		Price:           req.Price,
		IsFree:          req.IsFree,
		AudioPreviewURL: sql.NullString{String: req.AudioPreviewURL, Valid: req.AudioPreviewURL != ""},
		ThumbnailURL:    sql.NullString{String: req.ThumbnailURL, Valid: req.ThumbnailURL != ""},
		Description:     sql.NullString{String: req.Description, Valid: req.Description != ""},
		Tags:            tagsJSON,
		BPM:             sql.NullInt64{Int64: int64(req.BPM), Valid: req.BPM > 0},
		Key:             sql.NullString{String: req.Key, Valid: req.Key != ""},
		FileURL:         sql.NullString{String: req.FileURL, Valid: req.FileURL != ""},
	}, nil
}
