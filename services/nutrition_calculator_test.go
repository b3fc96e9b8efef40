package services

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/joaquincgp/FitFlow/models"
)

var calcToday = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

// 30 year old male, 180 cm, 80 kg, moderate activity.
func calcProfile() *models.ClientProfile {
	return &models.ClientProfile{
		User: models.User{
			BirthDate: time.Date(1996, 1, 15, 0, 0, 0, 0, time.UTC),
			Sex:       models.SexMale,
		},
		HeightCm:        180,
		WeightCurrentKg: 80,
		WeightGoalKg:    80,
		ActivityLevel:   models.ActivityModerate,
		Goal:            models.GoalMaintain,
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.05
}

func TestStandardCalculatorDailyRequirements(t *testing.T) {
	calc := StandardCalculator{}

	got, err := calc.DailyRequirements(calcProfile(), calcToday)
	if err != nil {
		t.Fatalf("DailyRequirements: %v", err)
	}
	// 10*80 + 6.25*180 - 5*30 + 5 = 1780
	if !almostEqual(got.BMR, 1780) {
		t.Errorf("BMR = %v, want 1780", got.BMR)
	}
	if !almostEqual(got.TDEE, 2759) {
		t.Errorf("TDEE = %v, want 2759", got.TDEE)
	}
	if !almostEqual(got.RCDE, 2759) {
		t.Errorf("RCDE = %v, want 2759 for maintain", got.RCDE)
	}
	if got.TargetCalories != got.RCDE {
		t.Errorf("TargetCalories = %v, want RCDE %v", got.TargetCalories, got.RCDE)
	}
}

func TestStandardCalculatorFemaleAndGoals(t *testing.T) {
	calc := StandardCalculator{}

	p := calcProfile()
	p.User.Sex = models.SexFemale
	p.ActivityLevel = models.ActivitySedentary
	p.Goal = models.GoalLose

	got, err := calc.DailyRequirements(p, calcToday)
	if err != nil {
		t.Fatalf("DailyRequirements: %v", err)
	}
	// 10*80 + 6.25*180 - 5*30 - 161 = 1614
	if !almostEqual(got.BMR, 1614) {
		t.Errorf("BMR = %v, want 1614", got.BMR)
	}
	if !almostEqual(got.TDEE, 1936.8) {
		t.Errorf("TDEE = %v, want 1936.8", got.TDEE)
	}
	if !almostEqual(got.RCDE, 1436.8) {
		t.Errorf("RCDE = %v, want TDEE-500", got.RCDE)
	}

	p.Goal = models.GoalGain
	got, err = calc.DailyRequirements(p, calcToday)
	if err != nil {
		t.Fatalf("DailyRequirements: %v", err)
	}
	if !almostEqual(got.RCDE, 2236.8) {
		t.Errorf("RCDE = %v, want TDEE+300", got.RCDE)
	}
}

func TestSportCalculatorDailyRequirements(t *testing.T) {
	calc := SportCalculator{}

	p := calcProfile()
	got, err := calc.DailyRequirements(p, calcToday)
	if err != nil {
		t.Fatalf("DailyRequirements: %v", err)
	}
	// lean = 80 * 0.88 = 70.4; bmr = 370 + 21.6*70.4 = 1890.64
	if !almostEqual(got.BMR, 1890.6) {
		t.Errorf("BMR = %v, want 1890.6", got.BMR)
	}
	if !almostEqual(got.TDEE, 3214.1) {
		t.Errorf("TDEE = %v, want 3214.1", got.TDEE)
	}

	p.Goal = models.GoalGain
	got, err = calc.DailyRequirements(p, calcToday)
	if err != nil {
		t.Fatalf("DailyRequirements: %v", err)
	}
	if !almostEqual(got.RCDE, 3714.1) {
		t.Errorf("RCDE = %v, want TDEE+500", got.RCDE)
	}
}

func TestCalculatorIsDeterministic(t *testing.T) {
	calc := StandardCalculator{}
	p := calcProfile()

	first, err := calc.DailyRequirements(p, calcToday)
	if err != nil {
		t.Fatalf("DailyRequirements: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := calc.DailyRequirements(p, calcToday)
		if err != nil {
			t.Fatalf("DailyRequirements: %v", err)
		}
		if again != first {
			t.Fatalf("run %d produced %+v, first run %+v", i, again, first)
		}
	}
}

func TestMacroRatiosSumToOne(t *testing.T) {
	for goal, r := range standardMacroRatios {
		if sum := r.Protein + r.Carbs + r.Fat; math.Abs(sum-1.0) > 1e-9 {
			t.Errorf("standard ratios for %s sum to %v", goal, sum)
		}
	}
	for goal, r := range sportMacroRatios {
		if sum := r.Protein + r.Carbs + r.Fat; math.Abs(sum-1.0) > 1e-9 {
			t.Errorf("sport ratios for %s sum to %v", goal, sum)
		}
	}
}

func TestMacronutrientTargets(t *testing.T) {
	calc := StandardCalculator{}

	got, err := calc.MacronutrientTargets(calcProfile(), calcToday)
	if err != nil {
		t.Fatalf("MacronutrientTargets: %v", err)
	}
	// maintain: 20/50/30 of 2759 kcal
	if !almostEqual(got.ProteinKcal, 551.8) {
		t.Errorf("ProteinKcal = %v, want 551.8", got.ProteinKcal)
	}
	if !almostEqual(got.ProteinG, 138.0) {
		t.Errorf("ProteinG = %v, want 138.0", got.ProteinG)
	}
	if !almostEqual(got.CarbsKcal, 1379.5) {
		t.Errorf("CarbsKcal = %v, want 1379.5", got.CarbsKcal)
	}
	if !almostEqual(got.FatG, 92.0) {
		t.Errorf("FatG = %v, want 92.0", got.FatG)
	}
}

func TestCalculatorRejectsIncompleteProfile(t *testing.T) {
	base := calcProfile()

	cases := []struct {
		name   string
		mutate func(*models.ClientProfile)
	}{
		{"zero height", func(p *models.ClientProfile) { p.HeightCm = 0 }},
		{"zero weight", func(p *models.ClientProfile) { p.WeightCurrentKg = 0 }},
		{"missing sex", func(p *models.ClientProfile) { p.User.Sex = "" }},
		{"missing birth date", func(p *models.ClientProfile) { p.User.BirthDate = time.Time{} }},
		{"bad activity level", func(p *models.ClientProfile) { p.ActivityLevel = "couch" }},
		{"bad goal", func(p *models.ClientProfile) { p.Goal = "bulk" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := *base
			p.User = base.User
			tc.mutate(&p)
			if _, err := (StandardCalculator{}).DailyRequirements(&p, calcToday); !errors.Is(err, ErrValidation) {
				t.Errorf("got err %v, want ErrValidation", err)
			}
		})
	}

	if _, err := (StandardCalculator{}).DailyRequirements(nil, calcToday); !errors.Is(err, ErrValidation) {
		t.Errorf("nil profile: got err %v, want ErrValidation", err)
	}
}

func TestNewNutritionCalculator(t *testing.T) {
	if _, err := NewNutritionCalculator(CalculatorStandard); err != nil {
		t.Errorf("standard: %v", err)
	}
	if _, err := NewNutritionCalculator(CalculatorSport); err != nil {
		t.Errorf("sport: %v", err)
	}
	if _, err := NewNutritionCalculator("keto"); !errors.Is(err, ErrValidation) {
		t.Errorf("unknown type: got %v, want ErrValidation", err)
	}
}
