package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/joaquincgp/FitFlow/models"
	"github.com/joaquincgp/FitFlow/services"

	"github.com/gin-gonic/gin"
)

type FoodLogController struct {
	Logs *services.FoodLogService
	Hub  *services.RealtimeHub
}

func NewFoodLogController(logs *services.FoodLogService, hub *services.RealtimeHub) *FoodLogController {
	return &FoodLogController{Logs: logs, Hub: hub}
}

type logEntryInput struct {
	FoodID      uint    `json:"food_id" binding:"required"`
	MealType    string  `json:"meal_type" binding:"required"`
	PortionSize float64 `json:"portion_size" binding:"required"`
	Date        string  `json:"date"` // YYYY-MM-DD, empty means today
}

type logBatchInput struct {
	Entries []logEntryInput `json:"entries" binding:"required"`
}

// LogFood persists a batch of consumption entries. The whole batch is
// validated against the day's plan and either all entries land or none
// do.
func (lc *FoodLogController) LogFood(c *gin.Context) {
	var input logBatchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entries := make([]services.FoodLogEntryInput, 0, len(input.Entries))
	dates := make(map[string]struct{})
	for _, e := range input.Entries {
		entry := services.FoodLogEntryInput{
			FoodID:      e.FoodID,
			MealType:    models.MealType(e.MealType),
			PortionSize: e.PortionSize,
		}
		if e.Date != "" {
			ok, d := parseDateParam(c, e.Date)
			if !ok {
				return
			}
			entry.Date = &d
			dates[d.Format("2006-01-02")] = struct{}{}
		} else {
			dates[services.DateOnly(time.Now()).Format("2006-01-02")] = struct{}{}
		}
		entries = append(entries, entry)
	}

	userID := c.GetUint("userID")
	logs, err := lc.Logs.LogBatch(userID, entries, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	for d := range dates {
		lc.Hub.Broadcast(userID, services.DashboardEvent{Type: "food_logs_updated", Date: d})
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "food logged",
		"count":   len(logs),
		"logs":    logs,
	})
}

func (lc *FoodLogController) ListLogs(c *gin.Context) {
	userID := c.GetUint("userID")
	date := services.DateOnly(time.Now())
	if v := c.Query("date"); v != "" {
		ok, d := parseDateParam(c, v)
		if !ok {
			return
		}
		date = d
	}

	logs, err := lc.Logs.ListByDate(userID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (lc *FoodLogController) DeleteLog(c *gin.Context) {
	userID := c.GetUint("userID")
	logID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid log id"})
		return
	}

	if err := lc.Logs.DeleteLog(userID, uint(logID)); err != nil {
		respondError(c, err)
		return
	}

	lc.Hub.Broadcast(userID, services.DashboardEvent{Type: "food_logs_updated"})
	c.JSON(http.StatusOK, gin.H{"message": "log deleted"})
}
