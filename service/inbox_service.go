package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"beatforge/models"
	"beatforge/repository"
)

// pollInterval is how often the admin inbox re-reads the store while open
const pollInterval = 30 * time.Second

// InboxService tracks inbound collaboration requests: creation, the cached
// list served to the admin view, status transitions and the new-request
// notification flag. While an admin view is open a repeating poll keeps the
// cache fresh; the poll is cancelled with the view's context.
type InboxService struct {
	mu              sync.Mutex
	requests        []models.CollaborationRequest
	hasNotification bool
	repository      repository.CollaborationRepositoryInterface
}

// NewInboxService creates a new InboxService
func NewInboxService(repo repository.CollaborationRepositoryInterface) *InboxService {
	return &InboxService{
		repository: repo,
	}
}

// Create persists a new request in pending state, refreshes the cached list
// and raises the admin notification indicator
func (s *InboxService) Create(ctx context.Context, req *models.CreateCollaborationRequest) (*models.CollaborationRequest, error) {
	if strings.TrimSpace(req.SenderName) == "" {
		return nil, fmt.Errorf("senderName is required")
	}
	if !strings.Contains(req.SenderEmail, "@") {
		return nil, fmt.Errorf("a valid senderEmail is required")
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, fmt.Errorf("message is required")
	}

	created, err := s.repository.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.hasNotification = true
	s.mu.Unlock()

	if err := s.Refresh(ctx); err != nil {
		log.Printf("warning: failed to refresh collaborations after create: %v", err)
	}

	return created, nil
}

// SetStatus persists a status transition and refreshes the cached list.
// Any status may be set at any time; the lifecycle graph is a client-side
// convention, not enforced here.
func (s *InboxService) SetStatus(ctx context.Context, id, status string) (*models.CollaborationRequest, error) {
	if !models.ValidCollabStatus(status) {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	updated, err := s.repository.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	if err := s.Refresh(ctx); err != nil {
		log.Printf("warning: failed to refresh collaborations after status update: %v", err)
	}

	return updated, nil
}

// List returns a snapshot copy of the cached request list
func (s *InboxService) List() []models.CollaborationRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make([]models.CollaborationRequest, len(s.requests))
	copy(snapshot, s.requests)
	return snapshot
}

// Refresh re-reads the full request list from the store
func (s *InboxService) Refresh(ctx context.Context) error {
	requests, err := s.repository.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh collaborations: %w", err)
	}

	s.mu.Lock()
	s.requests = requests
	s.mu.Unlock()
	return nil
}

// HasNotification reports whether an unseen request arrived
func (s *InboxService) HasNotification() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasNotification
}

// ClearNotification resets the new-request indicator
func (s *InboxService) ClearNotification() {
	s.mu.Lock()
	s.hasNotification = false
	s.mu.Unlock()
}

// StartPolling refreshes the cached list every pollInterval until ctx is
// cancelled. Tied to the admin view's lifetime rather than free-running.
func (s *InboxService) StartPolling(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Printf("✓ Inbox polling stopped")
				return
			case <-ticker.C:
				if err := s.Refresh(ctx); err != nil {
					log.Printf("warning: inbox poll failed: %v", err)
				}
			}
		}
	}()
}
