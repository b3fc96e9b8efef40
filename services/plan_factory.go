package services

import (
	"fmt"
	"time"

	"github.com/joaquincgp/FitFlow/models"
)

// PlanGenerator proposes a daily plan from a profile. Nothing is
// persisted here; the caller decides whether to save the proposal.
type PlanGenerator interface {
	GeneratePlan(p *models.ClientProfile, targetDate, today time.Time) (*GeneratedPlan, error)
}

type PlanMealSplit struct {
	MealType       models.MealType `json:"meal_type"`
	TargetCalories float64         `json:"target_calories"`
	Percentage     float64         `json:"percentage"`
	Focus          string          `json:"focus,omitempty"`
}

type GeneratedPlan struct {
	Type            string          `json:"type"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	TargetCalories  float64         `json:"target_calories"`
	Meals           []PlanMealSplit `json:"meals"`
	NutritionalInfo MacroTargets    `json:"nutritional_info"`
	SportNotes      string          `json:"sport_notes,omitempty"`
}

const (
	PlanTypeSimple = "simple"
	PlanTypeSport  = "sport"
)

type PlanTypeInfo struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type PlanFactory struct{}

func (PlanFactory) CreateGenerator(planType string, calc NutritionCalculator) (PlanGenerator, error) {
	switch planType {
	case PlanTypeSimple:
		return &SimplePlanGenerator{calc: calc}, nil
	case PlanTypeSport:
		return &SportPlanGenerator{calc: calc}, nil
	}
	return nil, fmt.Errorf("%w: unsupported plan type %q", ErrValidation, planType)
}

func (PlanFactory) AvailableTypes() []PlanTypeInfo {
	return []PlanTypeInfo{
		{Type: PlanTypeSimple, Name: "Simple Plan", Description: "Basic plan with a standard meal split"},
		{Type: PlanTypeSport, Name: "Sport Plan", Description: "Athlete-oriented plan with nutrient timing"},
	}
}

type mealSplit struct {
	mealType models.MealType
	share    float64
}

// SimplePlanGenerator splits the calorie target across the four
// standard slots.
type SimplePlanGenerator struct {
	calc NutritionCalculator
}

var simpleSplits = []mealSplit{
	{models.MealBreakfast, 0.25},
	{models.MealLunch, 0.35},
	{models.MealDinner, 0.30},
	{models.MealSnack, 0.10},
}

func (g *SimplePlanGenerator) GeneratePlan(p *models.ClientProfile, targetDate, today time.Time) (*GeneratedPlan, error) {
	req, err := g.calc.DailyRequirements(p, today)
	if err != nil {
		return nil, err
	}
	macros, err := g.calc.MacronutrientTargets(p, today)
	if err != nil {
		return nil, err
	}

	target := req.TargetCalories
	meals := make([]PlanMealSplit, 0, len(simpleSplits))
	for _, s := range simpleSplits {
		meals = append(meals, PlanMealSplit{
			MealType:       s.mealType,
			TargetCalories: round1(target * s.share),
			Percentage:     s.share * 100,
		})
	}

	return &GeneratedPlan{
		Type:            PlanTypeSimple,
		Name:            fmt.Sprintf("Simple Plan - %s", targetDate.Format("2006-01-02")),
		TargetCalories:  target,
		Meals:           meals,
		Description:     fmt.Sprintf("Basic balanced plan for %.1f kcal per day", target),
		NutritionalInfo: macros,
	}, nil
}

// SportPlanGenerator adds pre and post workout slots. The focus label
// on each slot is display-only.
type SportPlanGenerator struct {
	calc NutritionCalculator
}

var sportSplits = []mealSplit{
	{models.MealBreakfast, 0.20},
	{models.MealPreWorkout, 0.15},
	{models.MealLunch, 0.30},
	{models.MealPostWorkout, 0.20},
	{models.MealDinner, 0.15},
}

var sportMealFocus = map[models.MealType]string{
	models.MealBreakfast:   "Protein + complex carbohydrates",
	models.MealPreWorkout:  "Fast carbohydrates + light protein",
	models.MealLunch:       "Balanced - all macronutrients",
	models.MealPostWorkout: "Protein + carbohydrates for recovery",
	models.MealDinner:      "Protein + vegetables + healthy fats",
}

func (g *SportPlanGenerator) GeneratePlan(p *models.ClientProfile, targetDate, today time.Time) (*GeneratedPlan, error) {
	req, err := g.calc.DailyRequirements(p, today)
	if err != nil {
		return nil, err
	}
	macros, err := g.calc.MacronutrientTargets(p, today)
	if err != nil {
		return nil, err
	}

	target := req.TargetCalories
	meals := make([]PlanMealSplit, 0, len(sportSplits))
	for _, s := range sportSplits {
		meals = append(meals, PlanMealSplit{
			MealType:       s.mealType,
			TargetCalories: round1(target * s.share),
			Percentage:     s.share * 100,
			Focus:          sportMealFocus[s.mealType],
		})
	}

	return &GeneratedPlan{
		Type:            PlanTypeSport,
		Name:            fmt.Sprintf("Sport Plan - %s", targetDate.Format("2006-01-02")),
		TargetCalories:  target,
		Meals:           meals,
		Description:     fmt.Sprintf("Athlete-oriented plan - %.1f kcal with nutrient timing", target),
		NutritionalInfo: macros,
		SportNotes:      "Includes pre and post workout meals to optimize performance",
	}, nil
}
