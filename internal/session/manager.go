// Package session holds server-side login sessions. The client only
// ever sees an opaque token in a cookie; all state lives in the
// manager. Expiry is absolute: 24 hours from issuance, not sliding.
package session

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const CookieName = "dinehub_session"

type entry struct {
	userID    int
	expiresAt time.Time
}

type Manager struct {
	mu       sync.RWMutex
	sessions map[string]entry
	ttl      time.Duration
}

func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]entry),
		ttl:      ttl,
	}
}

// Create issues a new opaque token for the user.
func (m *Manager) Create(userID int) string {
	token := uuid.New().String()

	m.mu.Lock()
	m.sessions[token] = entry{
		userID:    userID,
		expiresAt: time.Now().Add(m.ttl),
	}
	m.mu.Unlock()

	return token
}

// UserID resolves a token to its user. Expired sessions are treated as
// absent and dropped lazily.
func (m *Manager) UserID(token string) (int, bool) {
	m.mu.RLock()
	e, ok := m.sessions[token]
	m.mu.RUnlock()

	if !ok {
		return 0, false
	}
	if time.Now().After(e.expiresAt) {
		m.Destroy(token)
		return 0, false
	}
	return e.userID, true
}

// Destroy invalidates a token. Destroying an unknown token is a no-op.
func (m *Manager) Destroy(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}

// TTL returns the configured session lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// SetCookie attaches the session cookie to the response.
func (m *Manager) SetCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(m.ttl.Seconds()), "/", "", false, true)
}

// ClearCookie removes the session cookie from the client.
func (m *Manager) ClearCookie(c *gin.Context) {
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
}

// TokenFromRequest extracts the session token, if any.
func TokenFromRequest(c *gin.Context) (string, bool) {
	token, err := c.Cookie(CookieName)
	if err != nil || token == "" {
		return "", false
	}
	return token, true
}
