package utils

import (
	"fmt"
	"strings"
	"time"

	"beatforge/models"
)

// SanitizeTitle strips every character that is not a letter, digit or space.
// Mirrors the filename the storefront offers customers for downloads.
func SanitizeTitle(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	for _, r := range title {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == ' ' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// InferExtension decides the download extension for a product file.
// Precedence: a recognized extension on the source URL wins; otherwise beats
// default to .mp3 and every other category to .zip.
func InferExtension(fileURL, productType string) string {
	switch {
	case strings.HasSuffix(fileURL, ".wav"):
		return ".wav"
	case strings.HasSuffix(fileURL, ".mp3"):
		return ".mp3"
	case strings.HasSuffix(fileURL, ".zip"):
		return ".zip"
	}
	if productType == models.ProductTypeBeat {
		return ".mp3"
	}
	return ".zip"
}

// DownloadFileName derives the full client-facing filename for a product.
func DownloadFileName(title, fileURL, productType string) string {
	return SanitizeTitle(title) + InferExtension(fileURL, productType)
}

// UniqueUploadName builds a collision-free blob-store name by prefixing a
// high-resolution timestamp and replacing every character outside
// [a-zA-Z0-9.-] with an underscore.
func UniqueUploadName(original string) string {
	var b strings.Builder
	b.Grow(len(original))
	for _, r := range original {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return fmt.Sprintf("%d_%s", time.Now().UnixMilli(), b.String())
}
