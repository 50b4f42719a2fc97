package api

import (
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/page-cms-api/internal/config"
	"github.com/page-cms-api/internal/service"
	"github.com/rs/zerolog"
)

// identityKey is the gin context key under which the resolved caller
// identity is stored by the session middleware.
const identityKey = "caller"

// NewRouter creates and configures the Gin router. The returned engine
// must be wrapped with sessions.LoadAndSave before serving, so the
// session context is available to the middleware and handlers.
func NewRouter(services *service.Services, sessions *scs.SessionManager, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware(cfg.Server.AllowOrigin))
	router.Use(identityMiddleware(sessions, services, log))

	// Handlers
	sessionHandler := NewSessionHandler(services, sessions, log)
	pageHandler := NewPageHandler(services, log)
	userHandler := NewUserHandler(services, log)
	websiteHandler := NewWebsiteHandler(services, log)

	// Health check
	router.GET("/health", healthCheck)

	api := router.Group("/api")
	{
		// Session endpoints (login, current identity, logout)
		sess := api.Group("/sessions")
		{
			sess.POST("", sessionHandler.Login)
			sess.GET("/current", sessionHandler.Current)
			sess.DELETE("/current", sessionHandler.Logout)
		}

		// Page endpoints
		pages := api.Group("/pages")
		{
			pages.GET("", pageHandler.List)
			pages.GET("/:id", pageHandler.Get)
			pages.POST("", requireAuth(), pageHandler.Create)
			pages.PUT("/:id", requireAuth(), pageHandler.Update)
			pages.DELETE("/:id", requireAuth(), pageHandler.Delete)
		}

		// User endpoints
		api.GET("/users", requireAuth(), userHandler.ListNames)

		// Website endpoints
		website := api.Group("/website")
		{
			website.GET("/name", websiteHandler.GetName)
			website.PUT("/name", requireAuth(), websiteHandler.UpdateName)
		}
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "page-cms-api",
	})
}

// identityMiddleware resolves the session-stored user id to a caller
// identity. Requests without a session stay anonymous; a stale uid
// (user deleted) is treated the same way.
func identityMiddleware(sessions *scs.SessionManager, services *service.Services, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if uid := sessions.GetInt(ctx, sessionUserKey); uid != 0 {
			identity, err := services.Auth.GetIdentity(ctx, uid)
			if err != nil {
				log.Error().Err(err).Int("uid", uid).Msg("Failed to resolve session identity")
			}
			if identity != nil {
				c.Set(identityKey, identity)
			}
		}
		c.Next()
	}
}

// requireAuth rejects anonymous requests before the handler runs.
func requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentIdentity(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
			return
		}
		c.Next()
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests with a per-request id
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		requestID := uuid.New().String()
		c.Writer.Header().Set("X-Request-ID", requestID)

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS for the front-end origin. Credentials
// are allowed because authentication is cookie based.
func corsMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
