package service

import "context"

// TextServiceInterface defines the contract for the generative-text service
type TextServiceInterface interface {
	GenerateDescription(ctx context.Context, title string, tags []string, productType string) string
	SuggestTags(ctx context.Context, title, description string) []string
}
