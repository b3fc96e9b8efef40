package services

import (
	"testing"
	"time"

	"github.com/joaquincgp/FitFlow/models"

	"gorm.io/gorm"
)

func TestClassifyCompliance(t *testing.T) {
	cases := []struct {
		pct  float64
		want MealStatus
	}{
		{100, MealFulfilled},
		{80, MealFulfilled},
		{120, MealFulfilled},
		{79.999, MealPartial},
		{120.001, MealPartial},
		{150, MealPartial},
		{0.1, MealPartial},
		{0, MealPending},
		{-5, MealPending},
	}
	for _, tc := range cases {
		if got := ClassifyCompliance(tc.pct); got != tc.want {
			t.Errorf("ClassifyCompliance(%v) = %s, want %s", tc.pct, got, tc.want)
		}
	}
}

func testPlan() *models.NutritionPlan {
	return &models.NutritionPlan{
		Model:    gorm.Model{ID: 7},
		Name:     "Cutting week",
		PlanDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Meals: []models.NutritionPlanMeal{
			{FoodID: 1, Food: models.Food{Name: "Oatmeal"}, MealType: models.MealBreakfast, PortionSize: 1.0},
			{FoodID: 2, Food: models.Food{Name: "Chicken Breast"}, MealType: models.MealLunch, PortionSize: 2.0},
			{FoodID: 3, Food: models.Food{Name: "Salmon"}, MealType: models.MealDinner, PortionSize: 1.5},
		},
	}
}

func TestEvaluatePlanCompliance(t *testing.T) {
	plan := testPlan()
	consumed := map[MealKey]float64{
		{FoodID: 1, MealType: models.MealBreakfast}: 1.0, // 100%
		{FoodID: 2, MealType: models.MealLunch}:     2.0, // 100%
		// dinner not logged: 0%
	}

	got := EvaluatePlanCompliance(plan, consumed)

	if !got.HasPlan {
		t.Error("HasPlan = false, want true")
	}
	if got.TotalPlanned != 3 {
		t.Errorf("TotalPlanned = %d, want 3", got.TotalPlanned)
	}
	if got.FulfilledCount != 2 {
		t.Errorf("FulfilledCount = %d, want 2", got.FulfilledCount)
	}
	if got.Status != "2/3 meals fulfilled" {
		t.Errorf("Status = %q", got.Status)
	}
	// mean of 100, 100, 0
	if !almostEqual(got.AdherencePct, 66.7) {
		t.Errorf("AdherencePct = %v, want 66.7", got.AdherencePct)
	}
	if len(got.Detail) != 3 {
		t.Fatalf("Detail has %d entries, want 3", len(got.Detail))
	}
	if got.Detail[2].Status != MealPending {
		t.Errorf("unlogged dinner status = %s, want pending", got.Detail[2].Status)
	}
}

// Adherence averages per-meal percentages; a large fulfilled meal must
// not outweigh a small missed one.
func TestAdherenceIsMeanNotWeighted(t *testing.T) {
	plan := &models.NutritionPlan{
		Meals: []models.NutritionPlanMeal{
			{FoodID: 1, MealType: models.MealLunch, PortionSize: 10},
			{FoodID: 2, MealType: models.MealSnack, PortionSize: 0.5},
		},
	}
	consumed := map[MealKey]float64{
		{FoodID: 1, MealType: models.MealLunch}: 10,
	}

	got := EvaluatePlanCompliance(plan, consumed)
	if !almostEqual(got.AdherencePct, 50) {
		t.Errorf("AdherencePct = %v, want 50", got.AdherencePct)
	}
}

func TestOverConsumptionClassifiesPartial(t *testing.T) {
	plan := &models.NutritionPlan{
		Meals: []models.NutritionPlanMeal{
			{FoodID: 1, MealType: models.MealLunch, PortionSize: 1.0},
		},
	}
	consumed := map[MealKey]float64{
		{FoodID: 1, MealType: models.MealLunch}: 1.5, // 150%
	}

	got := EvaluatePlanCompliance(plan, consumed)
	if got.Detail[0].Status != MealPartial {
		t.Errorf("150%% consumption status = %s, want partial", got.Detail[0].Status)
	}
	if got.FulfilledCount != 0 {
		t.Errorf("FulfilledCount = %d, want 0", got.FulfilledCount)
	}
}

func TestEvaluatePlanComplianceEmptyPlan(t *testing.T) {
	plan := &models.NutritionPlan{}
	got := EvaluatePlanCompliance(plan, nil)
	if got.AdherencePct != 0 {
		t.Errorf("AdherencePct = %v, want 0", got.AdherencePct)
	}
	if got.Status != "0/0 meals fulfilled" {
		t.Errorf("Status = %q", got.Status)
	}
}
