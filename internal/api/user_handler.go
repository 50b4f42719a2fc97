package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/page-cms-api/internal/service"
	"github.com/rs/zerolog"
)

// UserHandler handles user endpoints
type UserHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(services *service.Services, log zerolog.Logger) *UserHandler {
	return &UserHandler{
		services: services,
		log:      log.With().Str("handler", "user").Logger(),
	}
}

// ListNames handles GET /api/users
func (h *UserHandler) ListNames(c *gin.Context) {
	names, err := h.services.User.ListNames(c.Request.Context(), currentIdentity(c))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	c.JSON(http.StatusOK, names)
}
