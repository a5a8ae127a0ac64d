package repository

import (
	"context"

	"beatforge/models"
)

// ProductRepositoryInterface defines the contract for product repository operations
type ProductRepositoryInterface interface {
	List(ctx context.Context) ([]models.Product, error)
	Insert(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	Delete(ctx context.Context, id string) error
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Record(ctx context.Context, req *models.RecordTransactionRequest) (*models.Transaction, error)
	RevenueStats(ctx context.Context) (*models.RevenueStats, error)
}

// CollaborationRepositoryInterface defines the contract for collaboration repository operations
type CollaborationRepositoryInterface interface {
	Create(ctx context.Context, req *models.CreateCollaborationRequest) (*models.CollaborationRequest, error)
	List(ctx context.Context) ([]models.CollaborationRequest, error)
	UpdateStatus(ctx context.Context, id string, status string) (*models.CollaborationRequest, error)
}
