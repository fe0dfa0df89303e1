package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campushr/docparser/internal/common"
)

// RequestID tags each request with an ID, honoring X-Request-ID when the
// caller supplies one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Request = c.Request.WithContext(common.WithRequestID(c.Request.Context(), requestID))
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, handler *Handler) {
	router.Use(RequestID())

	// Health and readiness checks
	router.GET("/health", handler.HealthCheck)
	router.GET("/ready", handler.ReadyCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/parse", handler.Parse)          // POST /api/v1/parse
		v1.GET("/jobs/:id", handler.GetJob)       // GET /api/v1/jobs/:id
		v1.POST("/summarize", handler.Summarize)  // POST /api/v1/summarize

		ingest := v1.Group("/ingest")
		{
			ingest.POST("/directory", handler.IngestDirectory) // POST /api/v1/ingest/directory
		}

		employees := v1.Group("/employees")
		{
			employees.GET("/:id/research-status", handler.GetResearchStatus) // GET /api/v1/employees/:id/research-status
		}

		export := v1.Group("/export")
		{
			export.GET("/appraisals", handler.ExportAppraisals) // GET /api/v1/export/appraisals
		}
	}
}
