package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"beatforge/service"
)

// CartController handles HTTP requests for a visitor's cart
type CartController struct {
	cart    *service.CartService
	catalog *service.CatalogService
}

// NewCartController creates a new CartController
func NewCartController(cart *service.CartService, catalog *service.CatalogService) *CartController {
	return &CartController{
		cart:    cart,
		catalog: catalog,
	}
}

// Get handles GET /cart
func (c *CartController) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sessionID := ensureSession(w, r)
	view := c.cart.View(sessionID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(view)
}

// addItemRequest is the body for POST /cart/items
type addItemRequest struct {
	ProductID string `json:"productId"`
}

// AddItem handles POST /cart/items
// Adding a product already in the cart is a no-op, not an error: the cart
// holds at most one entry per product.
func (c *CartController) AddItem(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 AddToCart: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ AddToCart: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if req.ProductID == "" {
		http.Error(w, "productId is required", http.StatusBadRequest)
		return
	}

	product := c.catalog.Get(req.ProductID)
	if product == nil {
		log.Printf("❌ AddToCart: Product not found: %s", req.ProductID)
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}

	sessionID := ensureSession(w, r)
	// The cart keeps a snapshot of the product, not a live reference
	c.cart.Add(sessionID, *product)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(c.cart.View(sessionID))
}

// RemoveItem handles DELETE /cart/items/{id}
func (c *CartController) RemoveItem(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 RemoveFromCart: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/cart/items/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "product id parameter is required", http.StatusBadRequest)
		return
	}

	sessionID := ensureSession(w, r)
	// Removing an absent id is a no-op
	c.cart.Remove(sessionID, id)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(c.cart.View(sessionID))
}

// Clear handles DELETE /cart
func (c *CartController) Clear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sessionID := ensureSession(w, r)
	c.cart.Clear(sessionID)

	w.WriteHeader(http.StatusNoContent)
}
