package service

import (
	"context"

	"beatforge/models"
)

// DownloadServiceInterface defines the contract for asset downloads
type DownloadServiceInterface interface {
	Download(ctx context.Context, product *models.Product) (string, error)
	InFlight() []string
}
