package controllers

import (
	"net/http"
	"time"

	"github.com/joaquincgp/FitFlow/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Dashboard *services.DashboardService
}

func NewDashboardController(dashboard *services.DashboardService) *DashboardController {
	return &DashboardController{Dashboard: dashboard}
}

func (dc *DashboardController) NutritionMetrics(c *gin.Context) {
	userID := c.GetUint("userID")

	metrics, err := dc.Dashboard.NutritionMetrics(userID, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}
