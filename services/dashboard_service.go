package services

import (
	"fmt"
	"time"

	"github.com/joaquincgp/FitFlow/models"
	"github.com/joaquincgp/FitFlow/utils"

	"gorm.io/gorm"
)

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

const (
	CaloricStatusOptimal = "optimal"
	CaloricStatusLow     = "low"
	CaloricStatusHigh    = "high"
)

// CaloricStatus classifies consumption against the daily target:
// optimal within 90-110%, low below, high above.
func CaloricStatus(consumed, target float64) string {
	if target <= 0 {
		return CaloricStatusLow
	}
	pct := consumed / target * 100
	switch {
	case pct < 90:
		return CaloricStatusLow
	case pct > 110:
		return CaloricStatusHigh
	default:
		return CaloricStatusOptimal
	}
}

// WeeklyAdherencePct is days-with-logs over days-elapsed, in percent.
func WeeklyAdherencePct(daysWithLogs, daysElapsed int) float64 {
	if daysElapsed <= 0 {
		return 0
	}
	return round1(float64(daysWithLogs) / float64(daysElapsed) * 100)
}

type UserInfo struct {
	Name          string               `json:"name"`
	Age           int                  `json:"age"`
	HeightCm      float64              `json:"height_cm"`
	WeightCurrent float64              `json:"weight_current"`
	WeightGoal    float64              `json:"weight_goal"`
	Goal          models.Goal          `json:"goal"`
	ActivityLevel models.ActivityLevel `json:"activity_level"`
}

type CalculatedMetrics struct {
	BMR                     float64 `json:"bmr"`
	TDEE                    float64 `json:"tdee"`
	RCDE                    float64 `json:"rcde"`
	BMI                     float64 `json:"bmi"`
	BMICategory             string  `json:"bmi_category"`
	WeightChangeNeeded      float64 `json:"weight_change_needed"`
	WeeksToGoal             float64 `json:"weeks_to_goal"`
	RecommendedExerciseKcal float64 `json:"recommended_exercise_calories"`
}

type TodayConsumption struct {
	TotalCalories float64                     `json:"total_calories"`
	TotalProtein  float64                     `json:"total_protein"`
	TotalCarbs    float64                     `json:"total_carbs"`
	TotalFat      float64                     `json:"total_fat"`
	ByMeal        map[models.MealType]float64 `json:"by_meal"`
}

type CaloricCompliance struct {
	TargetCalories   float64 `json:"target_calories"`
	ConsumedCalories float64 `json:"consumed_calories"`
	Difference       float64 `json:"difference"`
	Percentage       float64 `json:"percentage"`
	Status           string  `json:"status"`
}

type WeeklyAdherence struct {
	DaysWithLogs int     `json:"days_with_logs"`
	DaysElapsed  int     `json:"days_elapsed"`
	AdherencePct float64 `json:"adherence_percentage"`
}

type DailyConsumption struct {
	Date          string  `json:"date"`
	DayName       string  `json:"day_name"`
	Calories      float64 `json:"calories"`
	Target        float64 `json:"target"`
	CompliancePct float64 `json:"compliance"`
}

type NutritionMetrics struct {
	UserInfo             UserInfo           `json:"user_info"`
	CalculatedMetrics    CalculatedMetrics  `json:"calculated_metrics"`
	MacronutrientTargets MacroTargets       `json:"macronutrient_targets"`
	TodayConsumption     TodayConsumption   `json:"today_consumption"`
	CaloricCompliance    CaloricCompliance  `json:"caloric_compliance"`
	WeeklyAdherence      WeeklyAdherence    `json:"weekly_adherence"`
	WeekDailyConsumption []DailyConsumption `json:"week_daily_consumption"`
}

// NutritionMetrics assembles the whole dashboard for one client as of
// the supplied date.
func (s *DashboardService) NutritionMetrics(userID uint, today time.Time) (*NutritionMetrics, error) {
	var profile models.ClientProfile
	if err := s.db.Preload("User").First(&profile, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("%w: client profile for user %d", ErrNotFound, userID)
	}

	calc := StandardCalculator{}
	req, err := calc.DailyRequirements(&profile, today)
	if err != nil {
		return nil, err
	}
	macros, err := calc.MacronutrientTargets(&profile, today)
	if err != nil {
		return nil, err
	}
	bmi, err := utils.CalculateBMI(profile.HeightCm, profile.WeightCurrentKg)
	if err != nil {
		return nil, err
	}

	todayDate := DateOnly(today)
	dayTotals, err := s.dayTotals(userID, todayDate)
	if err != nil {
		return nil, err
	}

	compliance := CaloricCompliance{
		TargetCalories:   req.RCDE,
		ConsumedCalories: round1(dayTotals.TotalCalories),
		Difference:       round1(dayTotals.TotalCalories - req.RCDE),
		Status:           CaloricStatus(dayTotals.TotalCalories, req.RCDE),
	}
	if req.RCDE > 0 {
		compliance.Percentage = round1(dayTotals.TotalCalories / req.RCDE * 100)
	}

	adherence, err := s.weeklyAdherence(userID, todayDate)
	if err != nil {
		return nil, err
	}

	series, err := s.weekSeries(userID, todayDate, req.RCDE)
	if err != nil {
		return nil, err
	}

	return &NutritionMetrics{
		UserInfo: UserInfo{
			Name:          profile.User.FirstName + " " + profile.User.LastName,
			Age:           profile.Age(today),
			HeightCm:      profile.HeightCm,
			WeightCurrent: profile.WeightCurrentKg,
			WeightGoal:    profile.WeightGoalKg,
			Goal:          profile.Goal,
			ActivityLevel: profile.ActivityLevel,
		},
		CalculatedMetrics: CalculatedMetrics{
			BMR:                     req.BMR,
			TDEE:                    req.TDEE,
			RCDE:                    req.RCDE,
			BMI:                     round1(bmi),
			BMICategory:             utils.BMICategory(bmi),
			WeightChangeNeeded:      round1(profile.WeightChangeNeeded()),
			WeeksToGoal:             round1(EstimateWeeksToGoal(&profile)),
			RecommendedExerciseKcal: RecommendedExerciseCalories(profile.Goal),
		},
		MacronutrientTargets: macros,
		TodayConsumption:     *dayTotals,
		CaloricCompliance:    compliance,
		WeeklyAdherence:      *adherence,
		WeekDailyConsumption: series,
	}, nil
}

func (s *DashboardService) dayTotals(userID uint, date time.Time) (*TodayConsumption, error) {
	var logs []models.FoodLog
	if err := s.db.Preload("Food").
		Where("user_id = ? AND date = ?", userID, date).
		Find(&logs).Error; err != nil {
		return nil, err
	}

	totals := TodayConsumption{
		ByMeal: map[models.MealType]float64{
			models.MealBreakfast: 0,
			models.MealLunch:     0,
			models.MealDinner:    0,
			models.MealSnack:     0,
		},
	}
	for _, log := range logs {
		cal := log.Food.CaloriesPerPortion * log.PortionSize
		totals.TotalCalories += cal
		totals.TotalProtein += log.Food.ProteinPerPortion * log.PortionSize
		totals.TotalCarbs += log.Food.CarbsPerPortion * log.PortionSize
		totals.TotalFat += log.Food.FatPerPortion * log.PortionSize
		totals.ByMeal[log.MealType] += cal
	}
	totals.TotalCalories = round1(totals.TotalCalories)
	totals.TotalProtein = round1(totals.TotalProtein)
	totals.TotalCarbs = round1(totals.TotalCarbs)
	totals.TotalFat = round1(totals.TotalFat)
	return &totals, nil
}

func (s *DashboardService) weeklyAdherence(userID uint, today time.Time) (*WeeklyAdherence, error) {
	start := WeekStart(today)

	var daysWithLogs int64
	err := s.db.Model(&models.FoodLog{}).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, today).
		Distinct("date").
		Count(&daysWithLogs).Error
	if err != nil {
		return nil, err
	}

	daysElapsed := int(today.Sub(start).Hours()/24) + 1
	return &WeeklyAdherence{
		DaysWithLogs: int(daysWithLogs),
		DaysElapsed:  daysElapsed,
		AdherencePct: WeeklyAdherencePct(int(daysWithLogs), daysElapsed),
	}, nil
}

// weekSeries returns the last 7 days oldest first.
func (s *DashboardService) weekSeries(userID uint, today time.Time, target float64) ([]DailyConsumption, error) {
	var rows []struct {
		Date  time.Time
		Total float64
	}
	err := s.db.Model(&models.FoodLog{}).
		Select("food_logs.date AS date, SUM(foods.calories_per_portion * food_logs.portion_size) AS total").
		Joins("JOIN foods ON foods.id = food_logs.food_id").
		Where("food_logs.user_id = ? AND food_logs.date > ? AND food_logs.date <= ? AND food_logs.deleted_at IS NULL",
			userID, today.AddDate(0, 0, -7), today).
		Group("food_logs.date").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	byDate := make(map[string]float64, len(rows))
	for _, r := range rows {
		byDate[DateOnly(r.Date).Format("2006-01-02")] = r.Total
	}

	series := make([]DailyConsumption, 0, 7)
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		total := byDate[day.Format("2006-01-02")]
		entry := DailyConsumption{
			Date:     day.Format("2006-01-02"),
			DayName:  day.Weekday().String(),
			Calories: round1(total),
			Target:   round1(target),
		}
		if target > 0 {
			entry.CompliancePct = round1(total / target * 100)
		}
		series = append(series, entry)
	}
	return series, nil
}
