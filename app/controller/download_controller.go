package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"beatforge/service"
)

// DownloadController handles HTTP requests for asset downloads
type DownloadController struct {
	downloads service.DownloadServiceInterface
	catalog   *service.CatalogService
}

// NewDownloadController creates a new DownloadController
func NewDownloadController(downloads service.DownloadServiceInterface, catalog *service.CatalogService) *DownloadController {
	return &DownloadController{
		downloads: downloads,
		catalog:   catalog,
	}
}

// downloadRequest is the body for POST /downloads
type downloadRequest struct {
	ProductID string `json:"productId"`
}

// Download handles POST /downloads
// Fetches the product's master file and saves it under the derived filename.
func (c *DownloadController) Download(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Download: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req downloadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Download: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if req.ProductID == "" {
		http.Error(w, "productId is required", http.StatusBadRequest)
		return
	}

	product := c.catalog.Get(req.ProductID)
	if product == nil {
		log.Printf("❌ Download: Product not found: %s", req.ProductID)
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}

	path, err := c.downloads.Download(r.Context(), product)
	if err != nil {
		log.Printf("❌ Download: %v", err)
		errMsg := err.Error()
		if strings.Contains(errMsg, "no file attached") {
			http.Error(w, errMsg, http.StatusUnprocessableEntity)
			return
		}
		if strings.Contains(errMsg, "already in progress") {
			http.Error(w, errMsg, http.StatusConflict)
			return
		}
		http.Error(w, fmt.Sprintf("Download Error: %v. Please try again.", err), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"path": path})
}

// InFlight handles GET /downloads/active
// Reports the product ids with a download currently running, used by the
// blocking overlay.
func (c *DownloadController) InFlight(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string][]string{"inFlight": c.downloads.InFlight()})
}
