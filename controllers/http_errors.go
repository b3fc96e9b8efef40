package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/joaquincgp/FitFlow/services"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors onto HTTP statuses and, for portion
// rejections, includes the structured planned/consumed/remaining
// detail the caller needs to resubmit.
func respondError(c *gin.Context, err error) {
	var pe *services.PortionExceedsPlanError
	if errors.As(err, &pe) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":     err.Error(),
			"food_id":   pe.FoodID,
			"meal_type": pe.MealType,
			"date":      pe.Date.Format("2006-01-02"),
			"planned":   pe.Planned,
			"consumed":  pe.Consumed,
			"attempted": pe.Attempted,
			"remaining": pe.Remaining,
		})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrPlanAlreadyExists),
		errors.Is(err, services.ErrPlanHasLogs):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound),
		errors.Is(err, services.ErrNoPlanForDate),
		errors.Is(err, services.ErrNoFoodsAvailable):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrMealNotPlanned):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrUnauthorized):
		status = http.StatusForbidden
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// parseDateParam reads a YYYY-MM-DD path or query value.
func parseDateParam(c *gin.Context, value string) (ok bool, date time.Time) {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, use YYYY-MM-DD"})
		return false, time.Time{}
	}
	return true, d
}
