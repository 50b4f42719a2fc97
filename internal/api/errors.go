package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/page-cms-api/internal/authz"
	"github.com/page-cms-api/internal/models"
	"github.com/rs/zerolog"
)

// currentIdentity returns the caller identity set by the session
// middleware, or nil for anonymous requests.
func currentIdentity(c *gin.Context) *models.Identity {
	if v, ok := c.Get(identityKey); ok {
		return v.(*models.Identity)
	}
	return nil
}

// writeError maps a service error to the HTTP response. Validation
// problems come back joined in one message; dependency failures are
// logged with detail but answered generically.
func writeError(c *gin.Context, log zerolog.Logger, err error) {
	var (
		validationErr *models.ValidationError
		authErr       *models.AuthorizationError
		notFoundErr   *models.NotFoundError
		conflictErr   *models.ConflictError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": strings.Join(validationErr.Reasons, ", "),
		})

	case errors.As(err, &authErr):
		// A rejected author reassignment is a bad request, not a
		// missing capability.
		if authErr.Reason == authz.ReasonAuthorNotFound {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Author does not exist."})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": fmt.Sprintf("Unauthorized: %s.", authErr.Reason),
		})

	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{
			"error": fmt.Sprintf("%s not found.", capitalize(notFoundErr.Entity)),
		})

	case errors.As(err, &conflictErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": capitalize(conflictErr.Reason) + ".",
		})

	default:
		log.Error().Err(err).Msg("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
