package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/joaquincgp/FitFlow/config"
	"github.com/joaquincgp/FitFlow/logger"
	"github.com/joaquincgp/FitFlow/models"
	"github.com/joaquincgp/FitFlow/services"
	"github.com/joaquincgp/FitFlow/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PlanController struct {
	Plans      *services.PlanService
	Compliance *services.ComplianceService
	Hub        *services.RealtimeHub
}

func NewPlanController(plans *services.PlanService, compliance *services.ComplianceService, hub *services.RealtimeHub) *PlanController {
	return &PlanController{Plans: plans, Compliance: compliance, Hub: hub}
}

type CreatePlanInput struct {
	UserID      uint                     `json:"user_id"` // defaults to the caller
	PlanDate    string                   `json:"plan_date" binding:"required"`
	Name        string                   `json:"name" binding:"required"`
	Description string                   `json:"description"`
	Meals       []services.PlanMealInput `json:"meals"`
}

func (pc *PlanController) CreatePlan(c *gin.Context) {
	var input CreatePlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ok, planDate := parseDateParam(c, input.PlanDate)
	if !ok {
		return
	}

	actingID := c.GetUint("userID")
	ownerID := input.UserID
	if ownerID == 0 {
		ownerID = actingID
	}
	// Only a nutritionist may author plans for someone else.
	if ownerID != actingID && !services.IsNutritionist(actingID) {
		respondError(c, services.ErrUnauthorized)
		return
	}

	plan, err := pc.Plans.CreatePlan(ownerID, actingID, planDate, input.Name, input.Description, input.Meals, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	if ownerID != actingID {
		go pc.notifyPlanAssigned(plan, actingID)
	}
	pc.Hub.Broadcast(ownerID, services.DashboardEvent{
		Type: "plan_created",
		Date: plan.PlanDate.Format("2006-01-02"),
	})

	c.JSON(http.StatusCreated, gin.H{
		"message":   "nutrition plan created",
		"plan_id":   plan.ID,
		"plan_date": plan.PlanDate.Format("2006-01-02"),
		"plan":      plan,
	})
}

// notifyPlanAssigned emails the client about a plan their
// nutritionist authored. Best effort: a failed send is logged and
// never surfaces to the request.
func (pc *PlanController) notifyPlanAssigned(plan *models.NutritionPlan, nutritionistID uint) {
	var owner, author models.User
	if err := config.DB.First(&owner, plan.UserID).Error; err != nil {
		return
	}
	if err := config.DB.First(&author, nutritionistID).Error; err != nil {
		return
	}
	err := utils.SendPlanAssignedEmail(
		owner.Email,
		plan.Name,
		plan.PlanDate.Format("2006-01-02"),
		author.FirstName+" "+author.LastName,
	)
	if err != nil {
		logger.Warn("plan assignment email failed", zap.Uint("plan_id", plan.ID), zap.Error(err))
	}
}

func (pc *PlanController) MyPlans(c *gin.Context) {
	userID := c.GetUint("userID")

	var filter services.PlanFilter
	if v := c.Query("specific_date"); v != "" {
		ok, d := parseDateParam(c, v)
		if !ok {
			return
		}
		filter.SpecificDate = &d
	}
	if v := c.Query("start_date"); v != "" {
		ok, d := parseDateParam(c, v)
		if !ok {
			return
		}
		filter.StartDate = &d
	}
	if v := c.Query("end_date"); v != "" {
		ok, d := parseDateParam(c, v)
		if !ok {
			return
		}
		filter.EndDate = &d
	}
	if v := c.Query("week_offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid week_offset"})
			return
		}
		filter.WeekOffset = &offset
	}
	filter.MonthYear = c.Query("month_year")

	plans, err := pc.Plans.ListMyPlans(userID, filter, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

func (pc *PlanController) PlanByDate(c *gin.Context) {
	userID := c.GetUint("userID")
	ok, date := parseDateParam(c, c.Param("date"))
	if !ok {
		return
	}

	plan, err := pc.Plans.PlanByDate(userID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (pc *PlanController) WeekOverview(c *gin.Context) {
	userID := c.GetUint("userID")
	offset := 0
	if v := c.Query("week_offset"); v != "" {
		var err error
		offset, err = strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid week_offset"})
			return
		}
	}

	overview, err := pc.Plans.WeekOverview(userID, offset, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

func (pc *PlanController) deletePlan(c *gin.Context, force bool) {
	userID := c.GetUint("userID")
	planID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return
	}

	deletedLogs, err := pc.Plans.DeletePlan(userID, uint(planID), force)
	if err != nil {
		respondError(c, err)
		return
	}

	pc.Hub.Broadcast(userID, services.DashboardEvent{Type: "plan_deleted"})
	c.JSON(http.StatusOK, gin.H{
		"message":           "plan deleted",
		"deleted_food_logs": deletedLogs,
	})
}

func (pc *PlanController) DeletePlan(c *gin.Context) {
	pc.deletePlan(c, false)
}

func (pc *PlanController) ForceDeletePlan(c *gin.Context) {
	pc.deletePlan(c, true)
}

func (pc *PlanController) CheckDateAvailability(c *gin.Context) {
	ok, date := parseDateParam(c, c.Param("date"))
	if !ok {
		return
	}
	ownerID := c.GetUint("userID")
	if v := c.Query("user_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
			return
		}
		ownerID = uint(id)
	}

	availability, err := pc.Plans.CheckDateAvailability(ownerID, c.GetUint("userID"), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, availability)
}

func (pc *PlanController) StatusByDate(c *gin.Context) {
	userID := c.GetUint("userID")
	ok, date := parseDateParam(c, c.Param("date"))
	if !ok {
		return
	}

	status, err := pc.Compliance.PlanStatusByDate(userID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

func (pc *PlanController) StatusByID(c *gin.Context) {
	userID := c.GetUint("userID")
	planID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return
	}

	status, err := pc.Compliance.PlanStatusByID(userID, uint(planID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}
