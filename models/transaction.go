package models

// Transaction represents a settled checkout recorded for bookkeeping.
// Created exactly once per confirmed payment and never mutated; the payment
// gateway remains the source of truth, this row is a mirror.
type Transaction struct {
	ID        int64     `json:"id"`
	Reference string    `json:"reference"` // opaque gateway reference, expected unique
	Email     string    `json:"email"`
	Amount    float64   `json:"amount"` // major units as displayed (e.g. 29.99)
	Products  []Product `json:"products"`
	CreatedAt string    `json:"createdAt"`
}

// RecordTransactionRequest carries the data written after a confirmed payment
type RecordTransactionRequest struct {
	Reference string    `json:"reference"`
	Email     string    `json:"email"`
	Amount    float64   `json:"amount"`
	Products  []Product `json:"products"`
}

// RevenuePoint is one weekday bucket in the sales chart
type RevenuePoint struct {
	Name  string  `json:"name"` // 'Sun' .. 'Sat'
	Sales float64 `json:"sales"`
}

// RevenueStats aggregates the transactions table for the admin dashboard
type RevenueStats struct {
	TotalRevenue float64        `json:"totalRevenue"`
	TotalUnits   int            `json:"totalUnits"`
	ChartData    []RevenuePoint `json:"chartData"`
}
