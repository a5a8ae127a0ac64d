package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"beatforge/models"
	"beatforge/repository"
	"beatforge/service"
)

type stubCollabRepo struct {
	created []models.CollaborationRequest
}

var _ repository.CollaborationRepositoryInterface = (*stubCollabRepo)(nil)

func (s *stubCollabRepo) Create(_ context.Context, req *models.CreateCollaborationRequest) (*models.CollaborationRequest, error) {
	created := models.CollaborationRequest{
		ID:          "collab-1",
		SenderName:  req.SenderName,
		SenderEmail: req.SenderEmail,
		ProjectType: req.ProjectType,
		Message:     req.Message,
		DemoURL:     req.DemoURL,
		Status:      models.CollabStatusPending,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	s.created = append(s.created, created)
	return &created, nil
}

func (s *stubCollabRepo) List(_ context.Context) ([]models.CollaborationRequest, error) {
	return s.created, nil
}

func (s *stubCollabRepo) UpdateStatus(_ context.Context, id, status string) (*models.CollaborationRequest, error) {
	for i := range s.created {
		if s.created[i].ID == id {
			s.created[i].Status = status
			return &s.created[i], nil
		}
	}
	return nil, fmt.Errorf("collaboration request %s does not exist", id)
}

func newCollabController() (*CollabController, *stubCollabRepo) {
	repo := &stubCollabRepo{}
	return NewCollabController(service.NewInboxService(repo)), repo
}

func TestCreateCollabFormIgnoresUnknownFields(t *testing.T) {
	c, repo := newCollabController()

	form := url.Values{}
	form.Set("senderName", "Ada Beats")
	form.Set("senderEmail", "ada@example.com")
	form.Set("projectType", "mixing")
	form.Set("message", "Would love to work on your next release.")
	// Typical stray form inputs that the request type does not model
	form.Set("csrf_token", "abc123")
	form.Set("utm_source", "instagram")

	r := httptest.NewRequest(http.MethodPost, "/collaborations", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	c.Create(w, r)

	require.Equal(t, http.StatusCreated, w.Code, "unknown form keys must not fail the submission: %s", w.Body.String())
	require.Len(t, repo.created, 1)
	require.Equal(t, "Ada Beats", repo.created[0].SenderName)
	require.Equal(t, models.CollabStatusPending, repo.created[0].Status)
}

func TestCreateCollabFromJSONBody(t *testing.T) {
	c, repo := newCollabController()

	body := `{"senderName":"Ada Beats","senderEmail":"ada@example.com","message":"Let's collaborate."}`
	r := httptest.NewRequest(http.MethodPost, "/collaborations", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	c.Create(w, r)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, repo.created, 1)

	var created models.CollaborationRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Equal(t, models.CollabStatusPending, created.Status)
}

func TestCreateCollabValidationRejected(t *testing.T) {
	c, repo := newCollabController()

	form := url.Values{}
	form.Set("senderEmail", "ada@example.com")
	form.Set("message", "No name attached.")

	r := httptest.NewRequest(http.MethodPost, "/collaborations", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	c.Create(w, r)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Empty(t, repo.created)
}
