package services

import (
	"time"

	"github.com/joaquincgp/FitFlow/models"
	"github.com/joaquincgp/FitFlow/utils"
)

// NutritionAnalysisService composes a full nutritional report for one
// client: requirements, macro targets, BMI, goal feasibility and
// textual recommendations.
type NutritionAnalysisService struct {
	calc NutritionCalculator
}

func NewNutritionAnalysisService(calc NutritionCalculator) *NutritionAnalysisService {
	return &NutritionAnalysisService{calc: calc}
}

type BMIAnalysis struct {
	Value           float64    `json:"value"`
	Category        string     `json:"category"`
	HealthyRange    [2]float64 `json:"healthy_range"`
	Status          string     `json:"status"`
	Recommendations []string   `json:"recommendations"`
}

type GoalAnalysis struct {
	WeeksEstimated     float64 `json:"weeks_estimated"`
	WeightChangeNeeded float64 `json:"weight_change_needed"`
	Feasible           bool    `json:"feasible"`
	TimelineCategory   string  `json:"timeline_category"`
	RecommendedRate    string  `json:"recommended_rate"`
}

type NutritionAnalysis struct {
	DailyRequirements CalorieTargets `json:"daily_requirements"`
	MacroTargets      MacroTargets   `json:"macronutrient_targets"`
	BMI               BMIAnalysis    `json:"bmi_analysis"`
	Goal              GoalAnalysis   `json:"goal_analysis"`
	Recommendations   []string       `json:"recommendations"`
}

func (s *NutritionAnalysisService) Analyze(p *models.ClientProfile, today time.Time) (*NutritionAnalysis, error) {
	req, err := s.calc.DailyRequirements(p, today)
	if err != nil {
		return nil, err
	}
	macros, err := s.calc.MacronutrientTargets(p, today)
	if err != nil {
		return nil, err
	}
	bmi, err := utils.CalculateBMI(p.HeightCm, p.WeightCurrentKg)
	if err != nil {
		return nil, err
	}

	return &NutritionAnalysis{
		DailyRequirements: req,
		MacroTargets:      macros,
		BMI:               analyzeBMI(bmi),
		Goal:              analyzeGoal(p),
		Recommendations:   buildRecommendations(p, bmi),
	}, nil
}

func analyzeBMI(bmi float64) BMIAnalysis {
	return BMIAnalysis{
		Value:           round1(bmi),
		Category:        utils.BMICategory(bmi),
		HealthyRange:    [2]float64{18.5, 24.9},
		Status:          utils.BMIStatus(bmi),
		Recommendations: bmiRecommendations(bmi),
	}
}

// EstimateWeeksToGoal assumes ~0.5 kg/week on a deficit and
// ~0.3 kg/week on a surplus, matching the goal adjustments.
func EstimateWeeksToGoal(p *models.ClientProfile) float64 {
	change := p.WeightChangeNeeded()
	if change < 0 {
		change = -change
	}
	switch p.Goal {
	case models.GoalLose:
		return change / 0.5
	case models.GoalGain:
		return change / 0.3
	}
	return 0
}

func analyzeGoal(p *models.ClientProfile) GoalAnalysis {
	weeks := EstimateWeeksToGoal(p)
	return GoalAnalysis{
		WeeksEstimated:     round1(weeks),
		WeightChangeNeeded: round1(p.WeightChangeNeeded()),
		Feasible:           weeks <= 52,
		TimelineCategory:   timelineCategory(weeks),
		RecommendedRate:    recommendedRate(p.Goal),
	}
}

func timelineCategory(weeks float64) string {
	switch {
	case weeks <= 12:
		return "short_term"
	case weeks <= 26:
		return "medium_term"
	default:
		return "long_term"
	}
}

func recommendedRate(goal models.Goal) string {
	switch goal {
	case models.GoalLose:
		return "0.5-1 kg per week"
	case models.GoalGain:
		return "0.25-0.5 kg per week"
	}
	return "maintain current weight"
}

func bmiRecommendations(bmi float64) []string {
	switch {
	case bmi < 18.5:
		return []string{
			"Increase caloric intake with nutrient-dense foods",
			"Include protein in every meal",
			"Consult a health professional",
		}
	case bmi >= 30:
		return []string{
			"Prioritize gradual weight loss",
			"Increase vegetable and fiber intake",
			"Include regular physical activity",
		}
	default:
		return []string{"Keep your current healthy eating habits"}
	}
}

func buildRecommendations(p *models.ClientProfile, bmi float64) []string {
	var recs []string

	switch p.Goal {
	case models.GoalLose:
		recs = append(recs,
			"Keep a constant but moderate caloric deficit",
			"Prioritize protein to preserve muscle mass",
			"Combine cardio and strength training",
			"Increase fiber and water intake",
		)
	case models.GoalGain:
		recs = append(recs,
			"Increase calories gradually with nutritious foods",
			"Focus on high-quality protein sources",
			"Include complex carbohydrates in every meal",
			"Consider supplementation if needed",
		)
	default:
		recs = append(recs,
			"Keep a balanced and consistent diet",
			"Monitor your weight weekly",
			"Adjust calories to your activity level",
			"Focus on nutritional quality",
		)
	}

	if bmi < 18.5 {
		recs = append(recs, "Consult a professional to evaluate possible underweight")
	} else if bmi >= 30 {
		recs = append(recs, "Consider a gradual, sustainable approach to weight loss")
	}

	switch p.ActivityLevel {
	case models.ActivitySedentary:
		recs = append(recs, "Consider gradually increasing your physical activity")
	case models.ActivityIntense, models.ActivityExtreme:
		recs = append(recs, "Make sure hydration and recovery are adequate")
	}

	return recs
}

// RecommendedExerciseCalories is the daily burn suggested on top of
// the diet, by goal.
func RecommendedExerciseCalories(goal models.Goal) float64 {
	switch goal {
	case models.GoalLose:
		return 200
	case models.GoalGain:
		return 150
	}
	return 250
}
