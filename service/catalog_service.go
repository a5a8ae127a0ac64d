package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"beatforge/models"
	"beatforge/repository"
)

// CategoryAll matches every product when used as a filter category
const CategoryAll = "all"

// CatalogService owns the in-memory product list shown on the storefront.
// The list is loaded from the repository once at startup and kept current by
// the mutating operations. A mutex protects the slice because slow repository
// completions can interleave with user-triggered mutations.
type CatalogService struct {
	mu         sync.Mutex
	products   []models.Product
	repository repository.ProductRepositoryInterface
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(repo repository.ProductRepositoryInterface) *CatalogService {
	return &CatalogService{
		repository: repo,
	}
}

// Load fetches the full catalog from the repository, most recent first
func (s *CatalogService) Load(ctx context.Context) error {
	products, err := s.repository.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	s.mu.Lock()
	s.products = products
	s.mu.Unlock()

	log.Printf("✓ Catalog loaded with %d products", len(products))
	return nil
}

// List returns a snapshot copy of the catalog
func (s *CatalogService) List() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make([]models.Product, len(s.products))
	copy(snapshot, s.products)
	return snapshot
}

// Get returns the product with the given id, or nil if absent
func (s *CatalogService) Get(id string) *models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p
		}
	}
	return nil
}

// Filter returns the products matching a category and free-text search.
// A product matches when the category is "all" or equal to its type, AND the
// search text is empty or a case-insensitive substring of the title, any tag,
// or the category label.
func (s *CatalogService) Filter(category, search string) []models.Product {
	search = strings.ToLower(search)

	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []models.Product
	for _, p := range s.products {
		if category != CategoryAll && category != "" && p.Type != category {
			continue
		}
		if search != "" && !matchesSearch(&p, search) {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

func matchesSearch(p *models.Product, search string) bool {
	if strings.Contains(strings.ToLower(p.Title), search) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), search) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(p.Type), search)
}

// Add persists a new product and prepends it to the visible list
func (s *CatalogService) Add(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("title is required")
	}
	if !models.ValidProductType(req.Type) {
		return nil, fmt.Errorf("invalid product type: %s", req.Type)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}

	product, err := s.repository.Insert(ctx, req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.products = append([]models.Product{*product}, s.products...)
	s.mu.Unlock()

	return product, nil
}

// Remove deletes a product optimistically: the local list is updated before
// the repository confirms, and reverted to the prior snapshot on failure.
func (s *CatalogService) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	previous := make([]models.Product, len(s.products))
	copy(previous, s.products)

	kept := s.products[:0:0]
	for _, p := range s.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.products = kept
	s.mu.Unlock()

	if err := s.repository.Delete(ctx, id); err != nil {
		log.Printf("❌ RemoveProduct: Delete failed, rolling back local list: %v", err)
		s.mu.Lock()
		s.products = previous
		s.mu.Unlock()
		return err
	}

	return nil
}
