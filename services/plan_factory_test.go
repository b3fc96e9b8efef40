package services

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/joaquincgp/FitFlow/models"
)

var planTargetDate = time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

func TestPlanFactoryCreateGenerator(t *testing.T) {
	var factory PlanFactory
	calc := StandardCalculator{}

	if _, err := factory.CreateGenerator(PlanTypeSimple, calc); err != nil {
		t.Errorf("simple: %v", err)
	}
	if _, err := factory.CreateGenerator(PlanTypeSport, calc); err != nil {
		t.Errorf("sport: %v", err)
	}
	if _, err := factory.CreateGenerator("fasting", calc); !errors.Is(err, ErrValidation) {
		t.Errorf("unknown type: got %v, want ErrValidation", err)
	}
}

func TestSimplePlanSplits(t *testing.T) {
	gen := &SimplePlanGenerator{calc: StandardCalculator{}}

	plan, err := gen.GeneratePlan(calcProfile(), planTargetDate, calcToday)
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}

	wantSlots := map[models.MealType]float64{
		models.MealBreakfast: 25,
		models.MealLunch:     35,
		models.MealDinner:    30,
		models.MealSnack:     10,
	}
	if len(plan.Meals) != len(wantSlots) {
		t.Fatalf("got %d meals, want %d", len(plan.Meals), len(wantSlots))
	}

	var sum float64
	for _, m := range plan.Meals {
		pct, ok := wantSlots[m.MealType]
		if !ok {
			t.Errorf("unexpected slot %s", m.MealType)
			continue
		}
		if m.Percentage != pct {
			t.Errorf("%s percentage = %v, want %v", m.MealType, m.Percentage, pct)
		}
		sum += m.TargetCalories
	}
	// rounding each slot to one decimal keeps the total within 0.4 kcal
	if math.Abs(sum-plan.TargetCalories) > 0.4 {
		t.Errorf("slot calories sum to %v, plan target %v", sum, plan.TargetCalories)
	}
}

func TestSportPlanAddsWorkoutSlots(t *testing.T) {
	gen := &SportPlanGenerator{calc: SportCalculator{}}

	plan, err := gen.GeneratePlan(calcProfile(), planTargetDate, calcToday)
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}
	if len(plan.Meals) != 5 {
		t.Fatalf("got %d meals, want 5", len(plan.Meals))
	}

	slots := make(map[models.MealType]PlanMealSplit, len(plan.Meals))
	for _, m := range plan.Meals {
		slots[m.MealType] = m
		if m.Focus == "" {
			t.Errorf("%s has no focus label", m.MealType)
		}
	}
	if _, ok := slots[models.MealPreWorkout]; !ok {
		t.Error("missing pre_workout slot")
	}
	if _, ok := slots[models.MealPostWorkout]; !ok {
		t.Error("missing post_workout slot")
	}
	if _, ok := slots[models.MealSnack]; ok {
		t.Error("sport plan should not have a snack slot")
	}
	if plan.SportNotes == "" {
		t.Error("sport plan has no notes")
	}
}

func TestGeneratePlanPropagatesProfileErrors(t *testing.T) {
	gen := &SimplePlanGenerator{calc: StandardCalculator{}}

	p := calcProfile()
	p.HeightCm = 0
	if _, err := gen.GeneratePlan(p, planTargetDate, calcToday); !errors.Is(err, ErrValidation) {
		t.Errorf("got err %v, want ErrValidation", err)
	}
}
