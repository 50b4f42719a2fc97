package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/page-cms-api/internal/models"
	"github.com/page-cms-api/internal/service"
	"github.com/rs/zerolog"
)

// PageHandler handles page endpoints
type PageHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(services *service.Services, log zerolog.Logger) *PageHandler {
	return &PageHandler{
		services: services,
		log:      log.With().Str("handler", "page").Logger(),
	}
}

// pageRequest is the submitted page body. The id is taken from the
// URL, never the body, and the stored creation date stays authoritative
// on update.
type pageRequest struct {
	Title           string           `json:"title"`
	Author          string           `json:"author"`
	CreationDate    string           `json:"creationDate"`
	PublicationDate string           `json:"publicationDate"`
	Blocks          models.BlockList `json:"blocks"`
}

func (r *pageRequest) toPage() *models.Page {
	return &models.Page{
		Title:           r.Title,
		Author:          r.Author,
		CreationDate:    r.CreationDate,
		PublicationDate: r.PublicationDate,
		Blocks:          r.Blocks,
	}
}

// pageID parses the :id path parameter.
func pageID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page id must be a positive integer"})
		return 0, false
	}
	return id, true
}

// List handles GET /api/pages
func (h *PageHandler) List(c *gin.Context) {
	pages, err := h.services.Page.ListPages(c.Request.Context(), currentIdentity(c))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	if pages == nil {
		pages = []*models.Page{}
	}
	c.JSON(http.StatusOK, pages)
}

// Get handles GET /api/pages/:id
func (h *PageHandler) Get(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	page, err := h.services.Page.GetPage(c.Request.Context(), id, currentIdentity(c))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Create handles POST /api/pages
func (h *PageHandler) Create(c *gin.Context) {
	var req pageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page body"})
		return
	}

	page, err := h.services.Page.CreatePage(c.Request.Context(), currentIdentity(c), req.toPage())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, page)
}

// Update handles PUT /api/pages/:id
func (h *PageHandler) Update(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	var req pageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page body"})
		return
	}

	page, err := h.services.Page.UpdatePage(c.Request.Context(), id, currentIdentity(c), req.toPage())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Delete handles DELETE /api/pages/:id
func (h *PageHandler) Delete(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	if err := h.services.Page.DeletePage(c.Request.Context(), id, currentIdentity(c)); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}
