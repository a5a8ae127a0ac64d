package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"beatforge/models"
	"beatforge/service"
)

// ProductController handles HTTP requests for the catalog
type ProductController struct {
	catalog *service.CatalogService
	text    service.TextServiceInterface
}

// NewProductController creates a new ProductController
func NewProductController(catalog *service.CatalogService, text service.TextServiceInterface) *ProductController {
	return &ProductController{
		catalog: catalog,
		text:    text,
	}
}

// List handles GET /products
// Optional query parameters: category (beat|sample-pack|midi-pack|song|all)
// and q (free-text search over title, tags and category label)
func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	category := r.URL.Query().Get("category")
	search := r.URL.Query().Get("q")

	var products []models.Product
	if category == "" && search == "" {
		products = c.catalog.List()
	} else {
		products = c.catalog.Filter(category, search)
	}
	if products == nil {
		products = []models.Product{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(products); err != nil {
		log.Printf("❌ ListProducts: Error encoding response: %v", err)
	}
}

// Create handles POST /admin/products
func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CreateProduct: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		log.Printf("❌ CreateProduct: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ CreateProduct: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	product, err := c.catalog.Add(r.Context(), &req)
	if err != nil {
		log.Printf("❌ CreateProduct: %v", err)
		if strings.Contains(err.Error(), "required") || strings.Contains(err.Error(), "invalid") || strings.Contains(err.Error(), "negative") {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to create product: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(product); err != nil {
		log.Printf("❌ CreateProduct: Error encoding response: %v", err)
	}
}

// Delete handles DELETE /admin/products/{id}
func (c *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 DeleteProduct: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/admin/products/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "product id parameter is required", http.StatusBadRequest)
		return
	}

	if err := c.catalog.Remove(r.Context(), id); err != nil {
		log.Printf("❌ DeleteProduct: %v", err)
		if strings.Contains(err.Error(), "does not exist") {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to delete product: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// describeRequest is the body for both AI endpoints
type describeRequest struct {
	Title       string   `json:"title"`
	Type        string   `json:"type"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
}

// Describe handles POST /admin/products/describe
// Returns an AI-generated product description; degrades to a generic one.
func (c *ProductController) Describe(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 DescribeProduct: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req describeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}
	if req.Type == "" {
		req.Type = models.ProductTypeBeat
	}

	description := c.text.GenerateDescription(r.Context(), req.Title, req.Tags, req.Type)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"description": description})
}

// SuggestTags handles POST /admin/products/tags
// Returns AI-suggested genre/mood tags; degrades to an empty list.
func (c *ProductController) SuggestTags(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 SuggestTags: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req describeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}

	tags := c.text.SuggestTags(r.Context(), req.Title, req.Description)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string][]string{"tags": tags})
}
