package auth

import (
	"net/http"

	"github.com/RiniPat/aaDinehub/internal/apperr"
	"github.com/RiniPat/aaDinehub/internal/session"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service  *Service
	sessions *session.Manager
}

func NewHandler(service *Service, sessions *session.Manager) *Handler {
	return &Handler{service: service, sessions: sessions}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /auth/register
func (h *Handler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	user, err := h.service.Register(req.Username, req.Password)
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	token := h.sessions.Create(user.ID)
	h.sessions.SetCookie(c, token)

	c.JSON(http.StatusCreated, user)
}

// POST /auth/login
func (h *Handler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	user, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		apperr.Respond(c, err)
		return
	}

	token := h.sessions.Create(user.ID)
	h.sessions.SetCookie(c, token)

	c.JSON(http.StatusOK, user)
}

// POST /auth/logout
func (h *Handler) Logout(c *gin.Context) {
	if token, ok := session.TokenFromRequest(c); ok {
		h.sessions.Destroy(token)
	}
	h.sessions.ClearCookie(c)
	c.Status(http.StatusOK)
}

// GET /auth/me — public; null body when not logged in.
func (h *Handler) Me(c *gin.Context) {
	token, ok := session.TokenFromRequest(c)
	if !ok {
		c.JSON(http.StatusOK, nil)
		return
	}

	userID, ok := h.sessions.UserID(token)
	if !ok {
		c.JSON(http.StatusOK, nil)
		return
	}

	user, err := h.service.GetUser(userID)
	if err != nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, user)
}
