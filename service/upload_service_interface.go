package service

import "context"

// UploadServiceInterface defines the contract for blob-store uploads
type UploadServiceInterface interface {
	Upload(ctx context.Context, folder, fileName string, content []byte) (string, error)
}
