package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alumnilink/leads-backend-go/internal/mapview"
	"github.com/alumnilink/leads-backend-go/internal/middleware"
	"github.com/alumnilink/leads-backend-go/internal/models"
	"github.com/alumnilink/leads-backend-go/internal/service"
	"github.com/alumnilink/leads-backend-go/pkg/response"
)

// HeatmapHandler handles HTTP requests for the alumni world map
type HeatmapHandler struct {
	heatmapService *service.HeatmapService
}

// NewHeatmapHandler creates a new heatmap handler
func NewHeatmapHandler(heatmapService *service.HeatmapService) *HeatmapHandler {
	return &HeatmapHandler{heatmapService: heatmapService}
}

// GetClusters handles GET /api/v1/heatmap/clusters
func (h *HeatmapHandler) GetClusters(c *gin.Context) {
	var filter models.ClusterFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	clusters, err := h.heatmapService.Clusters(filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get clusters", err)
		return
	}

	response.Success(c, clusters)
}

// GetAlumniMarkers handles GET /api/v1/heatmap/alumni
//
// Drilldown is for regular members only; administrators are pinned to the
// aggregate view, so an administrator token gets 403 here.
func (h *HeatmapHandler) GetAlumniMarkers(c *gin.Context) {
	if middleware.Role(c) == models.RoleAdministrator {
		response.Forbidden(c, "Drilldown is not available for administrators")
		return
	}

	var filter models.MarkerFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	markers, err := h.heatmapService.Markers(filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get alumni markers", err)
		return
	}

	response.Success(c, markers)
}

// GetViewMode handles GET /api/v1/heatmap/mode
//
// Returns the view mode the caller's role and zoom resolve to, so clients
// don't duplicate the threshold policy.
func (h *HeatmapHandler) GetViewMode(c *gin.Context) {
	zoomStr := c.DefaultQuery("zoom", "0")
	zoom, err := strconv.Atoi(zoomStr)
	if err != nil {
		response.BadRequest(c, "Invalid zoom parameter")
		return
	}

	response.Success(c, gin.H{
		"mode":      mapview.Mode(zoom, middleware.Role(c)),
		"zoom":      zoom,
		"threshold": mapview.DrilldownZoomThreshold,
	})
}
