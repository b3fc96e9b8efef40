package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/joaquincgp/FitFlow/models"

	"gorm.io/gorm"
)

func TestValidatePlanMeals(t *testing.T) {
	valid := []PlanMealInput{
		{FoodID: 1, MealType: models.MealBreakfast, PortionSize: 1.0},
		{FoodID: 1, MealType: models.MealLunch, PortionSize: 2.0}, // same food, other slot is fine
		{FoodID: 2, MealType: models.MealLunch, PortionSize: 1.5},
	}
	if err := validatePlanMeals(valid); err != nil {
		t.Errorf("valid meals rejected: %v", err)
	}

	cases := []struct {
		name  string
		meals []PlanMealInput
	}{
		{"invalid meal type", []PlanMealInput{
			{FoodID: 1, MealType: "brunch", PortionSize: 1.0},
		}},
		{"non-positive portion", []PlanMealInput{
			{FoodID: 1, MealType: models.MealDinner, PortionSize: 0},
		}},
		{"duplicate food and slot", []PlanMealInput{
			{FoodID: 1, MealType: models.MealBreakfast, PortionSize: 1.0},
			{FoodID: 1, MealType: models.MealBreakfast, PortionSize: 0.5},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := validatePlanMeals(tc.meals); !errors.Is(err, ErrValidation) {
				t.Errorf("got err %v, want ErrValidation", err)
			}
		})
	}
}

// A concurrent create that slips past the existence check hits the
// unique index; its violation must map to the domain error, not leak
// as a raw driver error.
func TestPlanCreateErrorTranslatesDuplicateKey(t *testing.T) {
	wrapped := fmt.Errorf("insert failed: %w", gorm.ErrDuplicatedKey)
	if got := planCreateError(wrapped); !errors.Is(got, ErrPlanAlreadyExists) {
		t.Errorf("duplicated key: got %v, want ErrPlanAlreadyExists", got)
	}

	other := errors.New("connection reset")
	if got := planCreateError(other); !errors.Is(got, other) {
		t.Errorf("unrelated error rewritten to %v", got)
	}
}
