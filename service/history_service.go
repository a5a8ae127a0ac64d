package service

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"beatforge/models"
)

// HistoryService is the purchase-history ledger: a durable, deduplicated
// record of everything a visitor has successfully bought, independent of the
// live cart. Each session's set is persisted as one JSON blob under dataDir
// and rewritten wholesale on every merge.
type HistoryService struct {
	mu      sync.Mutex
	dataDir string
}

// NewHistoryService creates a new HistoryService writing under dataDir
func NewHistoryService(dataDir string) (*HistoryService, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}
	return &HistoryService{dataDir: dataDir}, nil
}

func (s *HistoryService) ledgerPath(sessionID string) string {
	return filepath.Join(s.dataDir, "purchases_"+sessionID+".json")
}

// Load reads the persisted purchase set for a session.
// A missing or corrupt payload is logged and treated as empty; the ledger
// never fails the caller over bad persisted data.
func (s *HistoryService) Load(sessionID string) []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(sessionID)
}

func (s *HistoryService) loadLocked(sessionID string) []models.Product {
	payload, err := os.ReadFile(s.ledgerPath(sessionID))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: failed to read purchase history for session %s: %v", sessionID, err)
		}
		return []models.Product{}
	}

	var history []models.Product
	if err := json.Unmarshal(payload, &history); err != nil {
		log.Printf("warning: failed to parse purchase history for session %s, treating as empty: %v", sessionID, err)
		return []models.Product{}
	}
	if history == nil {
		history = []models.Product{}
	}
	return history
}

// Merge combines newItems with the existing ledger, deduplicating by product
// id with the most recently merged copy winning, then rewrites the persisted
// blob. Items are only ever added; nothing is silently removed.
func (s *HistoryService) Merge(sessionID string, newItems []models.Product) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.loadLocked(sessionID)

	// Newest first so the freshly merged copy of a duplicate id wins
	combined := append(append([]models.Product{}, newItems...), existing...)

	seen := make(map[string]bool, len(combined))
	merged := make([]models.Product, 0, len(combined))
	for _, item := range combined {
		if seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		merged = append(merged, item)
	}

	payload, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("failed to encode purchase history: %w", err)
	}

	if err := os.WriteFile(s.ledgerPath(sessionID), payload, 0644); err != nil {
		return nil, fmt.Errorf("failed to persist purchase history: %w", err)
	}

	log.Printf("✓ Purchase history for session %s now holds %d items", sessionID, len(merged))
	return merged, nil
}
