package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"beatforge/models"
	"beatforge/utils"
)

// DownloadService retrieves a product's master file and saves it locally
// under a customer-friendly filename. A per-product in-flight set gates the
// blocking overlay so overlapping downloads of distinct products don't
// clobber each other's completion state.
type DownloadService struct {
	mu          sync.Mutex
	inFlight    map[string]bool
	downloadDir string
	client      *http.Client
}

// NewDownloadService creates a new DownloadService saving into downloadDir
func NewDownloadService(downloadDir string) *DownloadService {
	return &DownloadService{
		inFlight:    make(map[string]bool),
		downloadDir: downloadDir,
		client:      &http.Client{Timeout: 5 * time.Minute},
	}
}

// Ensure DownloadService implements DownloadServiceInterface
var _ DownloadServiceInterface = (*DownloadService)(nil)

// InFlight reports the product ids with a download currently running
func (ds *DownloadService) InFlight() []string {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ids := make([]string, 0, len(ds.inFlight))
	for id := range ds.inFlight {
		ids = append(ids, id)
	}
	return ids
}

func (ds *DownloadService) begin(productID string) bool {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	if ds.inFlight[productID] {
		return false
	}
	ds.inFlight[productID] = true
	return true
}

func (ds *DownloadService) finish(productID string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.inFlight, productID)
}

// Download fetches the product's file and saves it under the derived name.
// Returns the saved path. Fails fast when no file is attached, and surfaces
// the underlying reason when the retrieval itself fails.
func (ds *DownloadService) Download(ctx context.Context, product *models.Product) (string, error) {
	if product.FileURL == "" {
		log.Printf("❌ Download: No file URL found for product %s (%s)", product.ID, product.Title)
		return "", fmt.Errorf("no file attached to %q", product.Title)
	}

	if !ds.begin(product.ID) {
		return "", fmt.Errorf("download already in progress for %q", product.Title)
	}
	defer ds.finish(product.ID)

	log.Printf("📥 Downloading %s...", product.Title)

	if err := os.MkdirAll(ds.downloadDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create download directory: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, product.FileURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build download request: %w", err)
	}

	resp, err := ds.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("download failed: server responded with status %d", resp.StatusCode)
	}

	fileName := utils.DownloadFileName(product.Title, product.FileURL, product.Type)
	filePath := filepath.Join(ds.downloadDir, fileName)

	out, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", filePath, err)
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		os.Remove(filePath)
		return "", fmt.Errorf("failed to save file: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize file: %w", err)
	}

	log.Printf("✓ Secure download saved: %s", filePath)
	return filePath, nil
}
