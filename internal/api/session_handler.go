package api

import (
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/gin-gonic/gin"
	"github.com/page-cms-api/internal/service"
	"github.com/rs/zerolog"
)

// sessionUserKey is the session key holding the logged-in user id.
const sessionUserKey = "uid"

// SessionHandler handles login, logout and current-identity endpoints
type SessionHandler struct {
	services *service.Services
	sessions *scs.SessionManager
	log      zerolog.Logger
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(services *service.Services, sessions *scs.SessionManager, log zerolog.Logger) *SessionHandler {
	return &SessionHandler{
		services: services,
		sessions: sessions,
		log:      log.With().Str("handler", "session").Logger(),
	}
}

// Login handles POST /api/sessions
func (h *SessionHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	identity, err := h.services.Auth.Login(ctx, req.Username, req.Password)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	if identity == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect username or password"})
		return
	}

	// Renew the session token on privilege change to prevent fixation.
	if err := h.sessions.RenewToken(ctx); err != nil {
		writeError(c, h.log, err)
		return
	}
	h.sessions.Put(ctx, sessionUserKey, identity.ID)

	h.log.Info().Str("username", identity.Username).Msg("User logged in")
	c.JSON(http.StatusOK, identity)
}

// Current handles GET /api/sessions/current
func (h *SessionHandler) Current(c *gin.Context) {
	identity := currentIdentity(c)
	if identity == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	c.JSON(http.StatusOK, identity)
}

// Logout handles DELETE /api/sessions/current
func (h *SessionHandler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.sessions.Destroy(ctx); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}
