package service

import (
	"crypto/subtle"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
)

// AdminService gates the admin surface behind an access code. Successful
// logins are handed an opaque token held in memory for the process lifetime.
type AdminService struct {
	mu       sync.Mutex
	passcode string
	tokens   map[string]bool
}

// NewAdminService creates a new AdminService with the configured access code
func NewAdminService(passcode string) (*AdminService, error) {
	if passcode == "" {
		return nil, fmt.Errorf("ADMIN_PASSCODE is not set")
	}
	return &AdminService{
		passcode: passcode,
		tokens:   make(map[string]bool),
	}, nil
}

// Login exchanges a correct access code for an admin token
func (s *AdminService) Login(code string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(code), []byte(s.passcode)) != 1 {
		log.Printf("❌ Admin login rejected: wrong access code")
		return "", fmt.Errorf("invalid access code")
	}

	token := uuid.NewString()
	s.mu.Lock()
	s.tokens[token] = true
	s.mu.Unlock()

	log.Printf("✅ Admin login accepted")
	return token, nil
}

// IsValidToken reports whether token was issued by Login
func (s *AdminService) IsValidToken(token string) bool {
	if token == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens[token]
}
