package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/page-cms-api/internal/service"
	"github.com/rs/zerolog"
)

// WebsiteHandler handles website config endpoints
type WebsiteHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewWebsiteHandler creates a new WebsiteHandler
func NewWebsiteHandler(services *service.Services, log zerolog.Logger) *WebsiteHandler {
	return &WebsiteHandler{
		services: services,
		log:      log.With().Str("handler", "website").Logger(),
	}
}

// GetName handles GET /api/website/name
func (h *WebsiteHandler) GetName(c *gin.Context) {
	cfg, err := h.services.Website.GetName(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// UpdateName handles PUT /api/website/name
func (h *WebsiteHandler) UpdateName(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	cfg, err := h.services.Website.UpdateName(c.Request.Context(), currentIdentity(c), req.Name)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}
