package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/merza/backend/internal/application/reporting"
)

// DashboardHandler handles the dashboard metrics endpoint
type DashboardHandler struct {
	BaseHandler
	dashboardService *reporting.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *reporting.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Metrics returns the combined dashboard payload
func (h *DashboardHandler) Metrics(c *gin.Context) {
	metrics, err := h.dashboardService.Dashboard(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, metrics)
}
