package repository

import (
	"context"
	"fmt"
	"log"

	"beatforge/db"
	"beatforge/models"
)

// ProductRepository handles database operations for catalog products
type ProductRepository struct{}

// NewProductRepository creates a new ProductRepository
func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// Ensure ProductRepository implements ProductRepositoryInterface
var _ ProductRepositoryInterface = (*ProductRepository)(nil)

const productColumns = `id, title, type, price, is_free, audio_preview_url, thumbnail_url, description, tags, bpm, key, file_url, created_at`

// List retrieves every product, most recently created first
func (r *ProductRepository) List(ctx context.Context) ([]models.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		ORDER BY created_at DESC
	`

	rows, err := db.DB.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ Error querying products: %v", err)
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var row productRow
		err := rows.Scan(
			&row.ID,
			&row.Title,
			&row.Type,
			&row.Price,
			&row.IsFree,
			&row.AudioPreviewURL,
			&row.ThumbnailURL,
			&row.Description,
			&row.Tags,
			&row.BPM,
			&row.Key,
			&row.FileURL,
			&row.CreatedAt,
		)
		if err != nil {
			log.Printf("❌ Error scanning product: %v", err)
			continue
		}
		products = append(products, row.toProduct())
	}

	if err := rows.Err(); err != nil {
		log.Printf("❌ Error iterating products: %v", err)
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	log.Printf("✓ Successfully fetched %d products", len(products))
	return products, nil
}

// Insert creates a new product and returns the stored representation
func (r *ProductRepository) Insert(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	log.Printf("📦 InsertProduct: title=%s, type=%s, price=%.2f, isFree=%t", req.Title, req.Type, req.Price, req.IsFree)

	row, err := fromProductRequest(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode product: %w", err)
	}

	query := `
		INSERT INTO products (title, type, price, is_free, audio_preview_url, thumbnail_url, description, tags, bpm, key, file_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + productColumns + `
	`

	var stored productRow
	err = db.DB.QueryRowContext(ctx, query,
		row.Title,
		row.Type,
		row.Price,
		row.IsFree,
		row.AudioPreviewURL,
		row.ThumbnailURL,
		row.Description,
		row.Tags,
		row.BPM,
		row.Key,
		row.FileURL,
	).Scan(
		&stored.ID,
		&stored.Title,
		&stored.Type,
		&stored.Price,
		&stored.IsFree,
		&stored.AudioPreviewURL,
		&stored.ThumbnailURL,
		&stored.Description,
		&stored.Tags,
		&stored.BPM,
		&stored.Key,
		&stored.FileURL,
		&stored.CreatedAt,
	)
	if err != nil {
		log.Printf("❌ InsertProduct: Error inserting product: %v", err)
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}

	product := stored.toProduct()
	log.Printf("✅ InsertProduct: Successfully created product id=%s", product.ID)
	return &product, nil
}

// Delete removes a product by id
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	log.Printf("🗑️ DeleteProduct: id=%s", id)

	result, err := db.DB.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		log.Printf("❌ DeleteProduct: Error deleting product: %v", err)
		return fmt.Errorf("failed to delete product: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("product %s does not exist", id)
	}

	log.Printf("✅ DeleteProduct: Successfully deleted product id=%s", id)
	return nil
}
