package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"beatforge/db"
	"beatforge/models"
)

// CollaborationRepository handles database operations for collaboration requests
type CollaborationRepository struct{}

// NewCollaborationRepository creates a new CollaborationRepository
func NewCollaborationRepository() *CollaborationRepository {
	return &CollaborationRepository{}
}

// Ensure CollaborationRepository implements CollaborationRepositoryInterface
var _ CollaborationRepositoryInterface = (*CollaborationRepository)(nil)

const collaborationColumns = `id, sender_name, sender_email, project_type, message, demo_url, status, created_at`

func scanCollaboration(scan func(dest ...any) error) (*models.CollaborationRequest, error) {
	var req models.CollaborationRequest
	var demoURL sql.NullString
	var createdAt time.Time

	err := scan(
		&req.ID,
		&req.SenderName,
		&req.SenderEmail,
		&req.ProjectType,
		&req.Message,
		&demoURL,
		&req.Status,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	req.DemoURL = demoURL.String
	req.CreatedAt = createdAt.UTC().Format(time.RFC3339)
	return &req, nil
}

// Create inserts a new collaboration request in pending state
func (r *CollaborationRepository) Create(ctx context.Context, req *models.CreateCollaborationRequest) (*models.CollaborationRequest, error) {
	log.Printf("🤝 CreateCollaboration: sender=%s, projectType=%s", req.SenderName, req.ProjectType)

	query := `
		INSERT INTO collaborations (sender_name, sender_email, project_type, message, demo_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + collaborationColumns + `
	`

	created, err := scanCollaboration(db.DB.QueryRowContext(ctx, query,
		req.SenderName,
		req.SenderEmail,
		req.ProjectType,
		req.Message,
		sql.NullString{String: req.DemoURL, Valid: req.DemoURL != ""},
	).Scan)
	if err != nil {
		log.Printf("❌ CreateCollaboration: Error inserting collaboration: %v", err)
		return nil, fmt.Errorf("failed to insert collaboration: %w", err)
	}

	log.Printf("✅ CreateCollaboration: Successfully created collaboration id=%s", created.ID)
	return created, nil
}

// List retrieves every collaboration request, most recent first
func (r *CollaborationRepository) List(ctx context.Context) ([]models.CollaborationRequest, error) {
	query := `
		SELECT ` + collaborationColumns + `
		FROM collaborations
		ORDER BY created_at DESC
	`

	rows, err := db.DB.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ Error querying collaborations: %v", err)
		return nil, fmt.Errorf("failed to query collaborations: %w", err)
	}
	defer rows.Close()

	var requests []models.CollaborationRequest
	for rows.Next() {
		req, err := scanCollaboration(rows.Scan)
		if err != nil {
			log.Printf("❌ Error scanning collaboration: %v", err)
			continue
		}
		requests = append(requests, *req)
	}

	if err := rows.Err(); err != nil {
		log.Printf("❌ Error iterating collaborations: %v", err)
		return nil, fmt.Errorf("failed to iterate collaborations: %w", err)
	}

	return requests, nil
}

// UpdateStatus sets the status of a collaboration request.
// No transition table is enforced here; the status lifecycle is a client-side
// convention (pending -> contacted/rejected, accepted/contacted -> archived).
func (r *CollaborationRepository) UpdateStatus(ctx context.Context, id string, status string) (*models.CollaborationRequest, error) {
	log.Printf("🔄 UpdateCollaborationStatus: id=%s, status=%s", id, status)

	query := `
		UPDATE collaborations
		SET status = $2
		WHERE id = $1
		RETURNING ` + collaborationColumns + `
	`

	updated, err := scanCollaboration(db.DB.QueryRowContext(ctx, query, id, status).Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("collaboration %s does not exist", id)
		}
		log.Printf("❌ UpdateCollaborationStatus: Error updating status: %v", err)
		return nil, fmt.Errorf("failed to update collaboration status: %w", err)
	}

	log.Printf("✅ UpdateCollaborationStatus: id=%s now %s", updated.ID, updated.Status)
	return updated, nil
}
