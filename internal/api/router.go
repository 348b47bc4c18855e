package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alumnilink/leads-backend-go/internal/config"
	"github.com/alumnilink/leads-backend-go/internal/handler"
	"github.com/alumnilink/leads-backend-go/internal/middleware"
)

// Handlers groups everything the router wires up
type Handlers struct {
	Lead    *handler.LeadHandler
	Heatmap *handler.HeatmapHandler
	Panel   *handler.PanelHandler
}

// SetupRouter builds the gin engine with middleware and all API routes
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Alumni Leads API is running",
		})
	})

	// API route group
	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(300, time.Minute))
	api.Use(middleware.Auth(cfg.JWTSecret))
	{
		// Lead intelligence
		leads := api.Group("/leads")
		{
			leads.GET("", h.Lead.GetLeads)
			leads.GET("/summary", h.Lead.GetSummary)
			leads.GET("/universities", h.Lead.GetUniversityRollups)
			leads.GET("/trend", h.Lead.GetTrend)
			leads.POST("/regenerate", middleware.RequireAdmin(), h.Lead.Regenerate)
		}

		// Alumni world map
		heatmap := api.Group("/heatmap")
		{
			heatmap.GET("/clusters", h.Heatmap.GetClusters)
			heatmap.GET("/alumni", h.Heatmap.GetAlumniMarkers)
			heatmap.GET("/mode", h.Heatmap.GetViewMode)
		}

		// Admin panel state
		panels := api.Group("/panels", middleware.RequireAdmin())
		{
			panels.GET("/:key", h.Panel.GetPanel)
			panels.PUT("/:key", h.Panel.SetPanel)
		}
	}

	return r
}
