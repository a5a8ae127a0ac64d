package controller

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"beatforge/service"
)

// maxUploadSize caps upload request bodies at 200 MB (master WAVs and
// sample-pack archives are large)
const maxUploadSize = 200 << 20

// UploadController handles multipart uploads to the blob store
type UploadController struct {
	uploads service.UploadServiceInterface
}

// NewUploadController creates a new UploadController
func NewUploadController(uploads service.UploadServiceInterface) *UploadController {
	return &UploadController{
		uploads: uploads,
	}
}

// Upload handles POST /admin/upload and POST /collaborations/demo
// Multipart form with a "file" part and an optional "folder" field
// (covers, previews, masters, demos).
func (c *UploadController) Upload(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Upload: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		log.Printf("❌ Upload: Failed to parse multipart form: %v", err)
		http.Error(w, fmt.Sprintf("Invalid upload: %v", err), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file part is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	folder := r.FormValue("folder")
	if folder == "" {
		folder = "uploads"
	}

	content, err := io.ReadAll(file)
	if err != nil {
		log.Printf("❌ Upload: Failed to read file: %v", err)
		http.Error(w, "failed to read uploaded file", http.StatusBadRequest)
		return
	}

	url, err := c.uploads.Upload(r.Context(), folder, header.Filename, content)
	if err != nil {
		log.Printf("❌ Upload: %v", err)
		http.Error(w, fmt.Sprintf("Upload failed: %v", err), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"url": url})
}
