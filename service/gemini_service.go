package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"
)

const geminiModel = "gemini-3-flash-preview"

// fallbackDescription is served whenever the text service fails; content
// generation is opportunistic, never a hard dependency.
const fallbackDescription = "High-quality professional assets for your next hit record."

// GeminiService generates product copy using Google's Gemini API
type GeminiService struct {
	client *genai.Client
}

// NewGeminiService creates a new GeminiService instance
func NewGeminiService(apiKey string) (*GeminiService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiService{client: client}, nil
}

// Ensure GeminiService implements TextServiceInterface
var _ TextServiceInterface = (*GeminiService)(nil)

// GenerateDescription produces a short high-converting product description.
// Any failure degrades to a generic description string.
func (s *GeminiService) GenerateDescription(ctx context.Context, title string, tags []string, productType string) string {
	prompt := fmt.Sprintf(
		"Generate a professional, high-converting product description for a %s called %q. Tags: %s. Keep it under 100 words and focus on musical qualities and mood.",
		productType, title, strings.Join(tags, ", "))

	result, err := s.client.Models.GenerateContent(ctx, geminiModel, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.7),
	})
	if err != nil {
		log.Printf("❌ AI Description Error: %v", err)
		return fallbackDescription
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return fallbackDescription
	}
	return text
}

// SuggestTags asks for genre/mood tags as a structured JSON list.
// Any failure degrades to an empty list.
func (s *GeminiService) SuggestTags(ctx context.Context, title, description string) []string {
	prompt := fmt.Sprintf(
		"Based on this product title %q and description %q, suggest 5 relevant musical genre or mood tags as a comma separated list.",
		title, description)

	result, err := s.client.Models.GenerateContent(ctx, geminiModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"tags": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
			},
		},
	})
	if err != nil {
		log.Printf("❌ AI Tags Error: %v", err)
		return []string{}
	}

	var parsed struct {
		Tags []string `json:"tags"`
	}
	if err := json.Unmarshal([]byte(result.Text()), &parsed); err != nil {
		log.Printf("❌ AI Tags Error: failed to parse response: %v", err)
		return []string{}
	}
	if parsed.Tags == nil {
		return []string{}
	}
	return parsed.Tags
}
