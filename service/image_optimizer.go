package service

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"log"

	"github.com/disintegration/imaging"
)

const (
	// Quality settings
	qualityCover = 80
	// Size settings (max dimension) for storefront cover art
	maxSizeCover = 1200
)

// OptimizeCoverArt re-encodes uploaded cover art as JPEG and caps its
// dimensions before it is pushed to the blob store, so the storefront never
// serves multi-megabyte originals.
// imageData: raw image bytes (PNG, JPEG, etc.)
// Returns optimized JPEG image bytes.
func OptimizeCoverArt(imageData []byte) ([]byte, error) {
	// Decode the image
	img, format, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	log.Printf("📸 Cover art decoded: format=%s, bounds=%v", format, img.Bounds())

	// Resize if either dimension exceeds the cap, keeping aspect ratio
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	var resizedImg image.Image = img
	if width > maxSizeCover || height > maxSizeCover {
		var newWidth, newHeight int
		if width > height {
			newWidth = maxSizeCover
			newHeight = int(float64(height) * float64(maxSizeCover) / float64(width))
		} else {
			newHeight = maxSizeCover
			newWidth = int(float64(width) * float64(maxSizeCover) / float64(height))
		}

		log.Printf("🔄 Resizing cover art: %dx%d -> %dx%d", width, height, newWidth, newHeight)
		resizedImg = imaging.Resize(img, newWidth, newHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	opts := &jpeg.Options{
		Quality: qualityCover,
	}
	if err := jpeg.Encode(&buf, resizedImg, opts); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}
	optimizedData := buf.Bytes()

	log.Printf("✓ Cover art optimized: quality=%d, output_size=%d bytes", qualityCover, len(optimizedData))
	return optimizedData, nil
}
