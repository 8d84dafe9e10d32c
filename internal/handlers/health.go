package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nexthire/job-board/internal/database"
)

// HealthCheck is GET /health, a bare liveness probe.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Root serves GET /: a welcome payload with basic API info and live
// database status.
func Root(db *gorm.DB, projectName, version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbStatus := "connected"
		if err := database.Ping(db); err != nil {
			dbStatus = "error (failed to connect or query)"
		}
		c.JSON(http.StatusOK, gin.H{
			"message":         "Welcome to " + projectName + "!",
			"api_version":     version,
			"database_status": dbStatus,
		})
	}
}
