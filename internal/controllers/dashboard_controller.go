package controllers

import (
	"net/http"

	"folio-be/internal/middleware"
	"folio-be/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	dashboardService service.DashboardService
}

func NewDashboardController(dashboardService service.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// Stats handles GET /api/dashboard/stats
func (dc *DashboardController) Stats(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	stats, err := dc.dashboardService.Stats(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get dashboard stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
