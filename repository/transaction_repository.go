package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"beatforge/db"
	"beatforge/models"
)

// TransactionRepository handles database operations for recorded checkouts
type TransactionRepository struct{}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{}
}

// Ensure TransactionRepository implements TransactionRepositoryInterface
var _ TransactionRepositoryInterface = (*TransactionRepository)(nil)

// Record inserts the bookkeeping row for a confirmed payment.
// The row is written once and never updated.
func (r *TransactionRepository) Record(ctx context.Context, req *models.RecordTransactionRequest) (*models.Transaction, error) {
	log.Printf("💰 RecordTransaction: reference=%s, email=%s, amount=%.2f, products=%d",
		req.Reference, req.Email, req.Amount, len(req.Products))

	products := req.Products
	if products == nil {
		products = []models.Product{}
	}
	productsJSON, err := json.Marshal(products)
	if err != nil {
		return nil, fmt.Errorf("failed to encode products: %w", err)
	}

	query := `
		INSERT INTO transactions (reference, email, amount, products)
		VALUES ($1, $2, $3, $4)
		RETURNING id, reference, email, amount, products, created_at
	`

	var transaction models.Transaction
	var storedProducts []byte
	var createdAt time.Time

	err = db.DB.QueryRowContext(ctx, query,
		req.Reference,
		req.Email,
		req.Amount,
		productsJSON,
	).Scan(
		&transaction.ID,
		&transaction.Reference,
		&transaction.Email,
		&transaction.Amount,
		&storedProducts,
		&createdAt,
	)
	if err != nil {
		log.Printf("❌ RecordTransaction: Error inserting transaction: %v", err)
		return nil, fmt.Errorf("failed to insert transaction: %w", err)
	}

	transaction.CreatedAt = createdAt.UTC().Format(time.RFC3339)
	if err := json.Unmarshal(storedProducts, &transaction.Products); err != nil {
		log.Printf("warning: failed to parse stored products for transaction %d: %v", transaction.ID, err)
		transaction.Products = []models.Product{}
	}

	log.Printf("✅ RecordTransaction: Successfully recorded transaction id=%d", transaction.ID)
	return &transaction, nil
}

// RevenueStats aggregates all recorded transactions for the admin dashboard:
// total revenue, total units sold and revenue bucketed per weekday.
func (r *TransactionRepository) RevenueStats(ctx context.Context) (*models.RevenueStats, error) {
	query := `
		SELECT amount, products, created_at
		FROM transactions
		ORDER BY created_at ASC
	`

	rows, err := db.DB.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ Error querying revenue stats: %v", err)
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	// Initialize every weekday with 0 so the chart always has seven buckets
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	salesByDay := make(map[string]float64, len(days))
	for _, d := range days {
		salesByDay[d] = 0
	}

	stats := &models.RevenueStats{}

	for rows.Next() {
		var amount float64
		var productsJSON []byte
		var createdAt time.Time

		if err := rows.Scan(&amount, &productsJSON, &createdAt); err != nil {
			log.Printf("❌ Error scanning transaction: %v", err)
			continue
		}

		stats.TotalRevenue += amount

		var products []models.Product
		if err := json.Unmarshal(productsJSON, &products); err == nil {
			stats.TotalUnits += len(products)
		}

		day := createdAt.Format("Mon")
		// += in case of multiple sales on the same day
		salesByDay[day] += amount
	}

	if err := rows.Err(); err != nil {
		log.Printf("❌ Error iterating transactions: %v", err)
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	for _, d := range days {
		stats.ChartData = append(stats.ChartData, models.RevenuePoint{Name: d, Sales: salesByDay[d]})
	}

	log.Printf("✓ RevenueStats: totalRevenue=%.2f, totalUnits=%d", stats.TotalRevenue, stats.TotalUnits)
	return stats, nil
}
