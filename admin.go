package main

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/logger"
	"github.com/Zachkp/portfolio/internal/visitors"
)

// adminStore is what the admin routes need from the visitor store.
// *visitors.Store satisfies it.
type adminStore interface {
	Stats(ctx context.Context) (*visitors.Stats, error)
	Cleanup(ctx context.Context, retention time.Duration) (int64, error)
}

// adminAuthMiddleware requires "Authorization: Bearer <token>".
func adminAuthMiddleware(token string, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			log.Warn("Rejected admin request",
				logger.String("path", c.Request.URL.Path),
				logger.String("request_id", c.GetString("request_id")),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

// setupAdminRoutes exposes visitor statistics and the privacy cleanup.
// Nothing is mounted when token is empty.
func setupAdminRoutes(r *gin.Engine, token string, store adminStore, retention time.Duration, log logger.Logger) {
	if token == "" || store == nil {
		return
	}

	adminGroup := r.Group("/admin")
	adminGroup.Use(adminAuthMiddleware(token, log))

	adminGroup.GET("/stats", func(c *gin.Context) {
		stats, err := store.Stats(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	// Privacy: delete visitor data past the retention window now
	adminGroup.POST("/privacy/cleanup", func(c *gin.Context) {
		removed, err := store.Cleanup(c.Request.Context(), retention)
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clean up visitor data"})
			return
		}
		log.Info("Admin triggered visitor data cleanup", logger.Int64("removed", removed))
		c.JSON(http.StatusOK, gin.H{"removed": removed})
	})
}
