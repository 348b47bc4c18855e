package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumnilink/leads-backend-go/internal/models"
	"github.com/alumnilink/leads-backend-go/internal/service"
	"github.com/alumnilink/leads-backend-go/pkg/response"
)

// LeadHandler handles HTTP requests for lead intelligence
type LeadHandler struct {
	leadService *service.LeadService
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadService *service.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// GetLeads handles GET /api/v1/leads
func (h *LeadHandler) GetLeads(c *gin.Context) {
	var filter models.LeadFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	leads, err := h.leadService.Leads(filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get leads", err)
		return
	}

	response.Success(c, leads)
}

// GetSummary handles GET /api/v1/leads/summary
func (h *LeadHandler) GetSummary(c *gin.Context) {
	var filter models.LeadFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	summary, err := h.leadService.Summary(filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get lead summary", err)
		return
	}

	response.Success(c, summary)
}

// GetUniversityRollups handles GET /api/v1/leads/universities
func (h *LeadHandler) GetUniversityRollups(c *gin.Context) {
	rollups, err := h.leadService.UniversityRollups()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get university rollups", err)
		return
	}

	response.Success(c, gin.H{
		"universities": rollups,
		"count":        len(rollups),
	})
}

// GetTrend handles GET /api/v1/leads/trend
func (h *LeadHandler) GetTrend(c *gin.Context) {
	var filter models.TrendFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	series, err := h.leadService.Trend(filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get trend series", err)
		return
	}

	response.Success(c, gin.H{
		"buckets": series,
		"count":   len(series),
	})
}

// Regenerate handles POST /api/v1/leads/regenerate
func (h *LeadHandler) Regenerate(c *gin.Context) {
	count, err := h.leadService.Regenerate()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to regenerate leads", err)
		return
	}

	response.Success(c, gin.H{"generated": count})
}
