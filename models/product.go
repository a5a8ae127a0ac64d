package models

// ProductType constants for the fixed set of catalog categories
const (
	ProductTypeBeat       = "beat"
	ProductTypeSamplePack = "sample-pack"
	ProductTypeMidiPack   = "midi-pack"
	ProductTypeSong       = "song"
)

// ValidProductType reports whether t is one of the known catalog categories
func ValidProductType(t string) bool {
	switch t {
	case ProductTypeBeat, ProductTypeSamplePack, ProductTypeMidiPack, ProductTypeSong:
		return true
	}
	return false
}

// Product represents a purchasable or free digital asset in the catalog
type Product struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Type            string   `json:"type"` // 'beat', 'sample-pack', 'midi-pack' or 'song'
	Price           float64  `json:"price"`
	IsFree          bool     `json:"isFree"`
	AudioPreviewURL string   `json:"audioPreviewUrl"`
	ThumbnailURL    string   `json:"thumbnailUrl"`
	Description     string   `json:"description"`
	Tags            []string `json:"tags"`
	BPM             int      `json:"bpm,omitempty"` // 0 when not set
	Key             string   `json:"key,omitempty"`
	FileURL         string   `json:"fileUrl,omitempty"`
	CreatedAt       string   `json:"createdAt"`
}

// EffectivePrice returns the amount the customer is actually charged.
// Free products are always 0 regardless of the stored price field.
func (p *Product) EffectivePrice() float64 {
	if p.IsFree {
		return 0
	}
	return p.Price
}

// CreateProductRequest represents the request body for creating a product
// Example: {
//   "title": "Midnight Echoes",
//   "type": "beat",
//   "price": 29.99,
//   "isFree": false,
//   "audioPreviewUrl": "https://res.cloudinary.com/.../preview.mp3",
//   "thumbnailUrl": "https://res.cloudinary.com/.../cover.jpg",
//   "description": "Dark atmospheric trap beat",
//   "tags": ["trap", "dark"],
//   "bpm": 140,
//   "key": "C min",
//   "fileUrl": "https://res.cloudinary.com/.../master.wav"
// }
type CreateProductRequest struct {
	Title           string   `json:"title"`
	Type            string   `json:"type"`
	Price           float64  `json:"price"`
	IsFree          bool     `json:"isFree"`
	AudioPreviewURL string   `json:"audioPreviewUrl"`
	ThumbnailURL    string   `json:"thumbnailUrl"`
	Description     string   `json:"description"`
	Tags            []string `json:"tags"`
	BPM             int      `json:"bpm,omitempty"`
	Key             string   `json:"key,omitempty"`
	FileURL         string   `json:"fileUrl,omitempty"`
}
