package routes

import (
	"github.com/joaquincgp/FitFlow/config"
	"github.com/joaquincgp/FitFlow/controllers"
	"github.com/joaquincgp/FitFlow/middlewares"
	"github.com/joaquincgp/FitFlow/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(hub *services.RealtimeHub) *gin.Engine {
	r := gin.Default()

	foodSvc := services.NewFoodService(config.DB)
	planSvc := services.NewPlanService(config.DB)
	complianceSvc := services.NewComplianceService(config.DB)
	logSvc := services.NewFoodLogService(config.DB)
	dashboardSvc := services.NewDashboardService(config.DB)
	optimizerSvc := services.NewPlanOptimizerService(config.DB)

	foodCtl := controllers.NewFoodController(foodSvc)
	planCtl := controllers.NewPlanController(planSvc, complianceSvc, hub)
	logCtl := controllers.NewFoodLogController(logSvc, hub)
	dashboardCtl := controllers.NewDashboardController(dashboardSvc)
	nutritionCtl := controllers.NewNutritionController(optimizerSvc)
	realtimeCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register/client", controllers.RegisterClient)
		auth.POST("/register/nutritionist", controllers.RegisterNutritionist)
		auth.POST("/login", controllers.Login)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
	}

	foods := r.Group("/foods")
	foods.Use(middlewares.AuthMiddleware())
	{
		foods.POST("", foodCtl.CreateFood)
		foods.GET("", foodCtl.ListFoods)
		foods.GET("/:id", foodCtl.GetFood)
	}

	plans := r.Group("/nutrition-plans")
	plans.Use(middlewares.AuthMiddleware())
	{
		plans.POST("", planCtl.CreatePlan)
		plans.GET("/my-plans", planCtl.MyPlans)
		plans.GET("/week-overview", planCtl.WeekOverview)
		plans.GET("/by-date/:date", planCtl.PlanByDate)
		plans.GET("/check-date/:date", planCtl.CheckDateAvailability)
		plans.GET("/status/by-date/:date", planCtl.StatusByDate)
		plans.GET("/status/:id", planCtl.StatusByID)
		plans.DELETE("/:id", planCtl.DeletePlan)
		plans.DELETE("/:id/force", planCtl.ForceDeletePlan)
	}

	logs := r.Group("/food-logs")
	logs.Use(middlewares.AuthMiddleware())
	{
		logs.POST("", logCtl.LogFood)
		logs.GET("", logCtl.ListLogs)
		logs.DELETE("/:id", logCtl.DeleteLog)
	}

	dashboard := r.Group("/dashboard")
	dashboard.Use(middlewares.AuthMiddleware())
	{
		dashboard.GET("/nutrition-metrics", dashboardCtl.NutritionMetrics)
	}

	nutrition := r.Group("/nutrition")
	nutrition.Use(middlewares.AuthMiddleware())
	{
		nutrition.GET("/calculator-types", nutritionCtl.CalculatorTypes)
		nutrition.GET("/plan-types", nutritionCtl.PlanTypes)
		nutrition.GET("/requirements", nutritionCtl.Requirements)
		nutrition.GET("/analysis", nutritionCtl.Analysis)
		nutrition.POST("/generate-plan", nutritionCtl.GeneratePlan)
		nutrition.POST("/optimize-plan", nutritionCtl.OptimizePlan)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/dashboard", realtimeCtl.DashboardWS)
	}

	return r
}
