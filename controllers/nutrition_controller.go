package controllers

import (
	"net/http"
	"time"

	"github.com/joaquincgp/FitFlow/services"

	"github.com/gin-gonic/gin"
)

type NutritionController struct {
	Optimizer *services.PlanOptimizerService
	factory   services.PlanFactory
}

func NewNutritionController(optimizer *services.PlanOptimizerService) *NutritionController {
	return &NutritionController{Optimizer: optimizer}
}

func (nc *NutritionController) CalculatorTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"calculator_types": []gin.H{
			{"type": services.CalculatorStandard, "name": "Standard", "description": "Mifflin-St Jeor with standard activity factors"},
			{"type": services.CalculatorSport, "name": "Sport", "description": "Katch-McArdle with athletic activity factors"},
		},
	})
}

func (nc *NutritionController) PlanTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"plan_types": nc.factory.AvailableTypes()})
}

// Requirements computes the caller's calorie and macro targets with the
// requested calculation strategy. Nothing is persisted.
func (nc *NutritionController) Requirements(c *gin.Context) {
	calcType := c.DefaultQuery("calculator_type", services.CalculatorStandard)
	calc, err := services.NewNutritionCalculator(calcType)
	if err != nil {
		respondError(c, err)
		return
	}

	profile, err := services.GetClientProfile(c.GetUint("userID"))
	if err != nil {
		respondError(c, err)
		return
	}

	now := time.Now()
	calories, err := calc.DailyRequirements(profile, now)
	if err != nil {
		respondError(c, err)
		return
	}
	macros, err := calc.MacronutrientTargets(profile, now)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"calculator_type": calcType,
		"calories":        calories,
		"macros":          macros,
	})
}

type generatePlanInput struct {
	PlanType       string `json:"plan_type" binding:"required"`
	CalculatorType string `json:"calculator_type"`
	TargetDate     string `json:"target_date" binding:"required"`
}

// GeneratePlan proposes a daily meal split without persisting it.
func (nc *NutritionController) GeneratePlan(c *gin.Context) {
	var input generatePlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ok, targetDate := parseDateParam(c, input.TargetDate)
	if !ok {
		return
	}

	calcType := input.CalculatorType
	if calcType == "" {
		calcType = services.CalculatorStandard
	}
	calc, err := services.NewNutritionCalculator(calcType)
	if err != nil {
		respondError(c, err)
		return
	}
	generator, err := nc.factory.CreateGenerator(input.PlanType, calc)
	if err != nil {
		respondError(c, err)
		return
	}

	profile, err := services.GetClientProfile(c.GetUint("userID"))
	if err != nil {
		respondError(c, err)
		return
	}

	plan, err := generator.GeneratePlan(profile, targetDate, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// Analysis returns the metabolic and goal analysis for the caller.
func (nc *NutritionController) Analysis(c *gin.Context) {
	calcType := c.DefaultQuery("calculator_type", services.CalculatorStandard)
	calc, err := services.NewNutritionCalculator(calcType)
	if err != nil {
		respondError(c, err)
		return
	}

	profile, err := services.GetClientProfile(c.GetUint("userID"))
	if err != nil {
		respondError(c, err)
		return
	}

	analysis, err := services.NewNutritionAnalysisService(calc).Analyze(profile, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}

type optimizePlanInput struct {
	PlanDate string `json:"plan_date" binding:"required"`
}

// OptimizePlan assembles a concrete food-level plan proposal for the
// given date from the catalog.
func (nc *NutritionController) OptimizePlan(c *gin.Context) {
	var input optimizePlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ok, planDate := parseDateParam(c, input.PlanDate)
	if !ok {
		return
	}

	proposal, err := nc.Optimizer.GenerateProposal(c.GetUint("userID"), planDate, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, proposal)
}
