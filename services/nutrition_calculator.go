package services

import (
	"fmt"
	"math"
	"time"

	"github.com/joaquincgp/FitFlow/models"
)

// CalorieTargets is derived on demand from the profile; it is never
// persisted as source of truth.
type CalorieTargets struct {
	BMR            float64 `json:"bmr"`
	TDEE           float64 `json:"tdee"`
	RCDE           float64 `json:"rcde"`
	TargetCalories float64 `json:"target_calories"`
}

type MacroTargets struct {
	ProteinKcal float64 `json:"protein_kcal"`
	ProteinG    float64 `json:"protein_g"`
	CarbsKcal   float64 `json:"carbs_kcal"`
	CarbsG      float64 `json:"carbs_g"`
	FatKcal     float64 `json:"fat_kcal"`
	FatG        float64 `json:"fat_g"`
}

// NutritionCalculator is the interchangeable calculation strategy.
// The reference date is always passed in explicitly so results never
// depend on ambient process time.
type NutritionCalculator interface {
	DailyRequirements(p *models.ClientProfile, today time.Time) (CalorieTargets, error)
	MacronutrientTargets(p *models.ClientProfile, today time.Time) (MacroTargets, error)
}

const (
	CalculatorStandard = "standard"
	CalculatorSport    = "sport"
)

func NewNutritionCalculator(calcType string) (NutritionCalculator, error) {
	switch calcType {
	case CalculatorStandard:
		return StandardCalculator{}, nil
	case CalculatorSport:
		return SportCalculator{}, nil
	}
	return nil, fmt.Errorf("%w: unknown calculator type %q", ErrValidation, calcType)
}

type macroRatio struct {
	Protein, Carbs, Fat float64
}

var standardMacroRatios = map[models.Goal]macroRatio{
	models.GoalGain:     {0.25, 0.45, 0.30},
	models.GoalLose:     {0.30, 0.40, 0.30},
	models.GoalMaintain: {0.20, 0.50, 0.30},
}

var sportMacroRatios = map[models.Goal]macroRatio{
	models.GoalGain:     {0.30, 0.45, 0.25},
	models.GoalLose:     {0.35, 0.35, 0.30},
	models.GoalMaintain: {0.25, 0.50, 0.25},
}

var standardActivityFactors = map[models.ActivityLevel]float64{
	models.ActivitySedentary: 1.20,
	models.ActivityLight:     1.375,
	models.ActivityModerate:  1.55,
	models.ActivityIntense:   1.725,
	models.ActivityExtreme:   1.90,
}

var sportActivityFactors = map[models.ActivityLevel]float64{
	models.ActivitySedentary: 1.30,
	models.ActivityLight:     1.50,
	models.ActivityModerate:  1.70,
	models.ActivityIntense:   1.90,
	models.ActivityExtreme:   2.20,
}

func validateProfile(p *models.ClientProfile) error {
	if p == nil {
		return fmt.Errorf("%w: profile is required", ErrValidation)
	}
	if p.HeightCm <= 0 {
		return fmt.Errorf("%w: height must be positive", ErrValidation)
	}
	if p.WeightCurrentKg <= 0 {
		return fmt.Errorf("%w: current weight must be positive", ErrValidation)
	}
	if !p.User.Sex.Valid() {
		return fmt.Errorf("%w: sex is required", ErrValidation)
	}
	if p.User.BirthDate.IsZero() {
		return fmt.Errorf("%w: birth date is required", ErrValidation)
	}
	if !p.ActivityLevel.Valid() {
		return fmt.Errorf("%w: activity level is required", ErrValidation)
	}
	if !p.Goal.Valid() {
		return fmt.Errorf("%w: goal is required", ErrValidation)
	}
	return nil
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func macroTargetsFor(rcde float64, ratios macroRatio) MacroTargets {
	return MacroTargets{
		ProteinKcal: round1(rcde * ratios.Protein),
		ProteinG:    round1(rcde * ratios.Protein / 4),
		CarbsKcal:   round1(rcde * ratios.Carbs),
		CarbsG:      round1(rcde * ratios.Carbs / 4),
		FatKcal:     round1(rcde * ratios.Fat),
		FatG:        round1(rcde * ratios.Fat / 9),
	}
}

// StandardCalculator uses the Mifflin-St Jeor formula with the
// traditional activity multipliers.
type StandardCalculator struct{}

func (StandardCalculator) DailyRequirements(p *models.ClientProfile, today time.Time) (CalorieTargets, error) {
	if err := validateProfile(p); err != nil {
		return CalorieTargets{}, err
	}

	age := float64(p.Age(today))
	bmr := 10*p.WeightCurrentKg + 6.25*p.HeightCm - 5*age - 161
	if p.User.Sex == models.SexMale {
		bmr = 10*p.WeightCurrentKg + 6.25*p.HeightCm - 5*age + 5
	}

	tdee := bmr * standardActivityFactors[p.ActivityLevel]

	rcde := tdee
	switch p.Goal {
	case models.GoalLose:
		rcde = tdee - 500
	case models.GoalGain:
		rcde = tdee + 300
	}

	return CalorieTargets{
		BMR:            round1(bmr),
		TDEE:           round1(tdee),
		RCDE:           round1(rcde),
		TargetCalories: round1(rcde),
	}, nil
}

func (c StandardCalculator) MacronutrientTargets(p *models.ClientProfile, today time.Time) (MacroTargets, error) {
	req, err := c.DailyRequirements(p, today)
	if err != nil {
		return MacroTargets{}, err
	}
	return macroTargetsFor(req.RCDE, standardMacroRatios[p.Goal]), nil
}

// SportCalculator estimates BMR via Katch-McArdle with a fixed
// body-fat assumption (12% male, 20% female) and applies higher
// activity multipliers. Goal adjustments are more conservative than
// the standard ones: a smaller deficit and a larger surplus, to favor
// muscle preservation.
type SportCalculator struct{}

func (SportCalculator) DailyRequirements(p *models.ClientProfile, today time.Time) (CalorieTargets, error) {
	if err := validateProfile(p); err != nil {
		return CalorieTargets{}, err
	}

	bodyFat := 0.20
	if p.User.Sex == models.SexMale {
		bodyFat = 0.12
	}
	leanMass := p.WeightCurrentKg * (1 - bodyFat)
	bmr := 370 + 21.6*leanMass

	tdee := bmr * sportActivityFactors[p.ActivityLevel]

	rcde := tdee
	switch p.Goal {
	case models.GoalLose:
		rcde = tdee - 300
	case models.GoalGain:
		rcde = tdee + 500
	}

	return CalorieTargets{
		BMR:            round1(bmr),
		TDEE:           round1(tdee),
		RCDE:           round1(rcde),
		TargetCalories: round1(rcde),
	}, nil
}

func (c SportCalculator) MacronutrientTargets(p *models.ClientProfile, today time.Time) (MacroTargets, error) {
	req, err := c.DailyRequirements(p, today)
	if err != nil {
		return MacroTargets{}, err
	}
	return macroTargetsFor(req.RCDE, sportMacroRatios[p.Goal]), nil
}
