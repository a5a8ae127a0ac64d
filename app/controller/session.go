package controller

import (
	"net/http"

	"github.com/google/uuid"
)

// sessionCookie identifies one visitor's cart and purchase history
const sessionCookie = "bf_session"

// ensureSession returns the visitor's session id, minting a new cookie when
// none is present yet
func ensureSession(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
