package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"beatforge/utils"
)

// UploadService pushes binary assets (cover art, audio previews, master
// files, collaboration demos) to Cloudinary and hands back their public URLs
type UploadService struct {
	cld *cloudinary.Cloudinary
}

// NewUploadService creates a new UploadService from a CLOUDINARY_URL value
func NewUploadService(cloudinaryURL string) (*UploadService, error) {
	if cloudinaryURL == "" {
		return nil, fmt.Errorf("CLOUDINARY_URL is not set")
	}

	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudinary client: %w", err)
	}

	return &UploadService{cld: cld}, nil
}

// Ensure UploadService implements UploadServiceInterface
var _ UploadServiceInterface = (*UploadService)(nil)

// isImage reports whether a filename looks like optimizable cover art
func isImage(fileName string) bool {
	lower := strings.ToLower(fileName)
	return strings.HasSuffix(lower, ".png") ||
		strings.HasSuffix(lower, ".jpg") ||
		strings.HasSuffix(lower, ".jpeg")
}

// Upload stores a binary under folder and returns its public URL.
// Image uploads are optimized first; audio and archives pass through as-is.
// The blob name is made unique with a timestamp prefix and sanitized so the
// store never rejects it.
func (s *UploadService) Upload(ctx context.Context, folder, fileName string, content []byte) (string, error) {
	log.Printf("📤 Upload: folder=%s, file=%s, size=%d bytes", folder, fileName, len(content))

	if isImage(fileName) {
		optimized, err := OptimizeCoverArt(content)
		if err != nil {
			log.Printf("warning: cover art optimization failed, uploading original: %v", err)
		} else {
			content = optimized
		}
	}

	publicID := utils.UniqueUploadName(fileName)

	result, err := s.cld.Upload.Upload(ctx, bytes.NewReader(content), uploader.UploadParams{
		PublicID: publicID,
		Folder:   folder,
	})
	if err != nil {
		log.Printf("❌ Upload: cloudinary upload failed: %v", err)
		return "", fmt.Errorf("failed to upload %s: %w", fileName, err)
	}

	log.Printf("✅ Upload: %s available at %s", fileName, result.SecureURL)
	return result.SecureURL, nil
}
