package services

import (
	"errors"
	"testing"
	"time"

	"github.com/joaquincgp/FitFlow/models"
)

var logDate = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func logPlan() *models.NutritionPlan {
	return &models.NutritionPlan{
		PlanDate: logDate,
		Meals: []models.NutritionPlanMeal{
			{FoodID: 1, MealType: models.MealBreakfast, PortionSize: 2.0},
			{FoodID: 2, MealType: models.MealLunch, PortionSize: 1.0},
		},
	}
}

func TestValidateEntriesRejectsOverconsumption(t *testing.T) {
	already := map[MealKey]float64{
		{FoodID: 1, MealType: models.MealBreakfast}: 1.0,
	}
	entries := []batchEntry{
		{FoodID: 1, MealType: models.MealBreakfast, Portion: 1.5, Date: logDate},
	}

	err := validateEntriesAgainstPlan(logPlan(), already, entries)

	var pe *PortionExceedsPlanError
	if !errors.As(err, &pe) {
		t.Fatalf("got err %v, want PortionExceedsPlanError", err)
	}
	if pe.Planned != 2.0 {
		t.Errorf("Planned = %v, want 2.0", pe.Planned)
	}
	if pe.Consumed != 1.0 {
		t.Errorf("Consumed = %v, want 1.0", pe.Consumed)
	}
	if pe.Attempted != 1.5 {
		t.Errorf("Attempted = %v, want 1.5", pe.Attempted)
	}
	if pe.Remaining != 1.0 {
		t.Errorf("Remaining = %v, want 1.0", pe.Remaining)
	}
}

func TestValidateEntriesAllowsExactFill(t *testing.T) {
	already := map[MealKey]float64{
		{FoodID: 1, MealType: models.MealBreakfast}: 1.5,
	}
	entries := []batchEntry{
		{FoodID: 1, MealType: models.MealBreakfast, Portion: 0.5, Date: logDate},
	}

	if err := validateEntriesAgainstPlan(logPlan(), already, entries); err != nil {
		t.Errorf("exact fill rejected: %v", err)
	}
}

// Float noise below the tolerance must not reject an exact fill, while
// a real excess above it must.
func TestValidateEntriesEpsilon(t *testing.T) {
	already := map[MealKey]float64{
		{FoodID: 1, MealType: models.MealBreakfast}: 1.5,
	}

	noisy := []batchEntry{{FoodID: 1, MealType: models.MealBreakfast, Portion: 0.5000004, Date: logDate}}
	if err := validateEntriesAgainstPlan(logPlan(), already, noisy); err != nil {
		t.Errorf("fill within tolerance rejected: %v", err)
	}

	over := []batchEntry{{FoodID: 1, MealType: models.MealBreakfast, Portion: 0.51, Date: logDate}}
	if err := validateEntriesAgainstPlan(logPlan(), already, over); err == nil {
		t.Error("excess above tolerance accepted")
	}
}

// Entries within one batch count against each other: the batch as a
// whole cannot exceed the planned portion.
func TestValidateEntriesAccumulatesWithinBatch(t *testing.T) {
	entries := []batchEntry{
		{FoodID: 1, MealType: models.MealBreakfast, Portion: 1.2, Date: logDate},
		{FoodID: 1, MealType: models.MealBreakfast, Portion: 1.0, Date: logDate},
	}

	err := validateEntriesAgainstPlan(logPlan(), map[MealKey]float64{}, entries)

	var pe *PortionExceedsPlanError
	if !errors.As(err, &pe) {
		t.Fatalf("got err %v, want PortionExceedsPlanError", err)
	}
	if pe.Consumed != 1.2 {
		t.Errorf("Consumed = %v, want the 1.2 accepted earlier in the batch", pe.Consumed)
	}
}

// Logging on a date with no plan at all is rejected before any entry
// is considered.
func TestValidateEntriesRequiresPlan(t *testing.T) {
	entries := []batchEntry{
		{FoodID: 1, MealType: models.MealBreakfast, Portion: 1.0, Date: logDate},
	}

	err := validateEntriesAgainstPlan(nil, nil, entries)
	if !errors.Is(err, ErrNoPlanForDate) {
		t.Fatalf("got err %v, want ErrNoPlanForDate", err)
	}
}

func TestValidateEntriesRejectsUnplannedMeal(t *testing.T) {
	cases := []batchEntry{
		{FoodID: 99, MealType: models.MealBreakfast, Portion: 1.0, Date: logDate},  // unknown food
		{FoodID: 1, MealType: models.MealDinner, Portion: 1.0, Date: logDate},      // wrong slot
		{FoodID: 2, MealType: models.MealPostWorkout, Portion: 0.5, Date: logDate}, // slot not in plan
	}
	for _, e := range cases {
		err := validateEntriesAgainstPlan(logPlan(), map[MealKey]float64{}, []batchEntry{e})
		if !errors.Is(err, ErrMealNotPlanned) {
			t.Errorf("food %d in %s: got err %v, want ErrMealNotPlanned", e.FoodID, e.MealType, err)
		}
	}
}
