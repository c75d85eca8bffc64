package delivery

import (
	"log"
	"net/http"

	"expense-tracker-backend/internal/dashboard/usecase"

	"github.com/gin-gonic/gin"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
	}
}

// GetDashboardData handles GET /dashboard
func (h *DashboardHandler) GetDashboardData(c *gin.Context) {
	userID := c.GetString("userID")

	data, err := h.dashboardUsecase.GetDashboardData(userID)
	if err != nil {
		log.Printf("dashboard failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching dashboard data"})
		return
	}

	c.JSON(http.StatusOK, data)
}
