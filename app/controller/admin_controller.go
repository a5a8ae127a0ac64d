package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"beatforge/repository"
	"beatforge/service"
)

// AdminController handles admin authentication, the dashboard stats and the
// inbox notification indicator
type AdminController struct {
	admin        *service.AdminService
	inbox        *service.InboxService
	transactions repository.TransactionRepositoryInterface
}

// NewAdminController creates a new AdminController
func NewAdminController(admin *service.AdminService, inbox *service.InboxService, transactions repository.TransactionRepositoryInterface) *AdminController {
	return &AdminController{
		admin:        admin,
		inbox:        inbox,
		transactions: transactions,
	}
}

// Guard wraps an admin handler with a token check.
// Tokens are issued by Login and sent back in the X-Admin-Token header.
func (c *AdminController) Guard(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("X-Admin-Token")
		if !c.admin.IsValidToken(token) {
			log.Printf("❌ Admin guard: rejected request to %s", r.URL.Path)
			http.Error(w, "admin access required", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

// loginRequest is the body for POST /admin/login
type loginRequest struct {
	Code string `json:"code"`
}

// Login handles POST /admin/login
// Exchanges the access code for an admin token.
func (c *AdminController) Login(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 AdminLogin: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	token, err := c.admin.Login(req.Code)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}

// Stats handles GET /admin/stats
// Aggregates the transactions table for the dashboard.
func (c *AdminController) Stats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	stats, err := c.transactions.RevenueStats(r.Context())
	if err != nil {
		log.Printf("❌ AdminStats: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch revenue stats: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(stats)
}

// Notifications handles GET /admin/notifications and DELETE /admin/notifications
// GET reports the new-request indicator; DELETE clears it.
func (c *AdminController) Notifications(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]bool{"hasNotification": c.inbox.HasNotification()})
	case http.MethodDelete:
		c.inbox.ClearNotification()
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
