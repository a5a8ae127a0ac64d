package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/schema"

	"beatforge/models"
	"beatforge/service"
)

// formDecoder decodes the public collaboration form submission. Unknown keys
// are ignored: forms carry hidden and tracking inputs the request type never
// models, and those must not fail the submission.
var formDecoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

// CollabController handles HTTP requests for the collaboration inbox
type CollabController struct {
	inbox *service.InboxService
}

// NewCollabController creates a new CollabController
func NewCollabController(inbox *service.InboxService) *CollabController {
	return &CollabController{
		inbox: inbox,
	}
}

// Create handles POST /collaborations
// Accepts either a JSON body or a classic form submission; new requests
// always start in pending state.
func (c *CollabController) Create(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CreateCollab: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.CreateCollaborationRequest

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("❌ CreateCollab: Failed to decode request body: %v", err)
			http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			log.Printf("❌ CreateCollab: Failed to parse form: %v", err)
			http.Error(w, fmt.Sprintf("Invalid form submission: %v", err), http.StatusBadRequest)
			return
		}
		if err := formDecoder.Decode(&req, r.PostForm); err != nil {
			log.Printf("❌ CreateCollab: Failed to decode form: %v", err)
			http.Error(w, fmt.Sprintf("Invalid form submission: %v", err), http.StatusBadRequest)
			return
		}
	}

	created, err := c.inbox.Create(r.Context(), &req)
	if err != nil {
		log.Printf("❌ CreateCollab: %v", err)
		if strings.Contains(err.Error(), "required") {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Failed to submit request.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// List handles GET /admin/collaborations
func (c *CollabController) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Serve the live store view, falling back to the cache when it fails
	if err := c.inbox.Refresh(r.Context()); err != nil {
		log.Printf("warning: serving cached collaborations: %v", err)
	}

	requests := c.inbox.List()
	if requests == nil {
		requests = []models.CollaborationRequest{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(requests)
}

// statusRequest is the body for PUT /admin/collaborations/{id}/status
type statusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PUT /admin/collaborations/{id}/status
func (c *CollabController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 UpdateCollabStatus: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Path format: /admin/collaborations/{id}/status
	path := strings.TrimPrefix(r.URL.Path, "/admin/collaborations/")
	id := strings.TrimSuffix(path, "/status")
	if id == "" || id == path {
		http.Error(w, "invalid path format", http.StatusBadRequest)
		return
	}

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ UpdateCollabStatus: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	updated, err := c.inbox.SetStatus(r.Context(), id, req.Status)
	if err != nil {
		log.Printf("❌ UpdateCollabStatus: %v", err)
		errMsg := err.Error()
		if strings.Contains(errMsg, "invalid status") {
			http.Error(w, errMsg, http.StatusBadRequest)
			return
		}
		if strings.Contains(errMsg, "does not exist") {
			http.Error(w, errMsg, http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to update status: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(updated)
}
