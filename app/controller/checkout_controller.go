package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"beatforge/service"
)

// CheckoutController handles HTTP requests for payment checkout and the
// post-purchase history view
type CheckoutController struct {
	checkout *service.CheckoutService
	history  *service.HistoryService
}

// NewCheckoutController creates a new CheckoutController
func NewCheckoutController(checkout *service.CheckoutService, history *service.HistoryService) *CheckoutController {
	return &CheckoutController{
		checkout: checkout,
		history:  history,
	}
}

// initiateRequest is the body for POST /checkout
type initiateRequest struct {
	Email string `json:"email"`
}

// Initiate handles POST /checkout
// Validates the attempt and registers it with the payment gateway. The cart
// is untouched until the gateway confirms success.
func (c *CheckoutController) Initiate(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CheckoutInitiate: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req initiateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ CheckoutInitiate: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	sessionID := ensureSession(w, r)
	initiation, err := c.checkout.Initiate(r.Context(), sessionID, req.Email)
	if err != nil {
		log.Printf("❌ CheckoutInitiate: %v", err)
		if strings.Contains(err.Error(), "email") || strings.Contains(err.Error(), "cart is empty") {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to initiate checkout: %v", err), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(initiation)
}

// confirmRequest is the body for POST /checkout/confirm
type confirmRequest struct {
	Reference string `json:"reference"`
	Email     string `json:"email"`
}

// Confirm handles POST /checkout/confirm
// Verifies the reference with the gateway and, on success, performs the
// post-payment bookkeeping. A failed settlement leaves the cart intact.
func (c *CheckoutController) Confirm(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CheckoutConfirm: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ CheckoutConfirm: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if req.Reference == "" {
		http.Error(w, "reference is required", http.StatusBadRequest)
		return
	}

	sessionID := ensureSession(w, r)
	result, err := c.checkout.Confirm(r.Context(), sessionID, req.Reference, req.Email)
	if err != nil {
		log.Printf("❌ CheckoutConfirm: %v", err)
		http.Error(w, fmt.Sprintf("Failed to confirm checkout: %v", err), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}

// Purchases handles GET /purchases
// Returns the session's durable purchase history, independent of the cart.
func (c *CheckoutController) Purchases(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sessionID := ensureSession(w, r)
	history := c.history.Load(sessionID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(history)
}
