package models

// Collaboration request status constants.
// Lifecycle: pending -> contacted (outbound reply), pending -> rejected,
// {accepted, contacted} -> archived. Archived is terminal.
const (
	CollabStatusPending   = "pending"
	CollabStatusAccepted  = "accepted"
	CollabStatusRejected  = "rejected"
	CollabStatusContacted = "contacted"
	CollabStatusArchived  = "archived"
)

// ValidCollabStatus reports whether s is a known collaboration status
func ValidCollabStatus(s string) bool {
	switch s {
	case CollabStatusPending, CollabStatusAccepted, CollabStatusRejected,
		CollabStatusContacted, CollabStatusArchived:
		return true
	}
	return false
}

// CollaborationRequest represents an inbound pitch from a prospective client
type CollaborationRequest struct {
	ID          string `json:"id"`
	SenderName  string `json:"senderName"`
	SenderEmail string `json:"senderEmail"`
	ProjectType string `json:"projectType"`
	Message     string `json:"message"`
	DemoURL     string `json:"demoUrl,omitempty"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}

// CreateCollaborationRequest is decoded from the public collaboration form.
// Schema tags are used by gorilla/schema for form submissions.
type CreateCollaborationRequest struct {
	SenderName  string `json:"senderName" schema:"senderName"`
	SenderEmail string `json:"senderEmail" schema:"senderEmail"`
	ProjectType string `json:"projectType" schema:"projectType"`
	Message     string `json:"message" schema:"message"`
	DemoURL     string `json:"demoUrl" schema:"demoUrl"`
}
