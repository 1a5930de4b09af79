// internal/interfaces/http/handlers/dashboard.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/stockmaster-backend/internal/config"
	"github.com/your-org/stockmaster-backend/internal/domain/analytics"
	"github.com/your-org/stockmaster-backend/internal/infrastructure/database/redis"
	"gorm.io/gorm"
)

// DashboardHandler serves aggregated KPIs
type DashboardHandler struct {
	analyticsService *analytics.Service
	config           *config.Config
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(db *gorm.DB, cache *redis.Client, cfg *config.Config) *DashboardHandler {
	return &DashboardHandler{
		analyticsService: analytics.NewService(db, cache, cfg),
		config:           cfg,
	}
}

// GetDashboard handles GET /dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	kpis, err := h.analyticsService.GetDashboardKPIs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compute dashboard metrics",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Dashboard retrieved successfully",
		"data":    kpis,
	})
}

// RefreshDashboard handles POST /dashboard/refresh
func (h *DashboardHandler) RefreshDashboard(c *gin.Context) {
	if err := h.analyticsService.InvalidateDashboard(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to invalidate dashboard cache",
		})
		return
	}

	kpis, err := h.analyticsService.GetDashboardKPIs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compute dashboard metrics",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Dashboard refreshed successfully",
		"data":    kpis,
	})
}
