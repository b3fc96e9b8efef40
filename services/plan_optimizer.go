package services

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/joaquincgp/FitFlow/models"

	"gorm.io/gorm"
)

// Heuristic plan generation: classify the catalog into coarse buckets
// and fill each meal slot from the buckets that fit it, picking at
// random among eligible foods. Randomness is intentional variety, not
// a correctness concern.

type FoodBuckets struct {
	Proteins   []models.Food
	Carbs      []models.Food
	Fruits     []models.Food
	Vegetables []models.Food
	Dairy      []models.Food
	Snacks     []models.Food
}

var (
	proteinKeywords   = []string{"chicken", "egg", "tuna", "salmon", "cheese"}
	carbKeywords      = []string{"rice", "oat", "bread", "pasta", "quinoa"}
	fruitKeywords     = []string{"apple", "banana", "orange", "strawberry"}
	vegetableKeywords = []string{"broccoli", "spinach", "carrot", "lettuce"}
	dairyKeywords     = []string{"yogurt", "milk"}
)

func nameMatches(f models.Food, keywords []string) bool {
	name := strings.ToLower(f.Name)
	for _, kw := range keywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

func ClassifyFoods(foods []models.Food) FoodBuckets {
	var b FoodBuckets
	for _, f := range foods {
		if nameMatches(f, proteinKeywords) || f.ProteinPerPortion > 15 {
			b.Proteins = append(b.Proteins, f)
		}
		if nameMatches(f, carbKeywords) || f.CarbsPerPortion > 15 {
			b.Carbs = append(b.Carbs, f)
		}
		if nameMatches(f, fruitKeywords) {
			b.Fruits = append(b.Fruits, f)
		}
		if nameMatches(f, vegetableKeywords) {
			b.Vegetables = append(b.Vegetables, f)
		}
		if nameMatches(f, dairyKeywords) {
			b.Dairy = append(b.Dairy, f)
		}
	}
	b.Snacks = append(b.Snacks, b.Fruits...)
	for _, f := range foods {
		if strings.Contains(strings.ToLower(f.Name), "almond") {
			b.Snacks = append(b.Snacks, f)
		}
	}
	return b
}

type MealAssignment struct {
	FoodID      uint            `json:"food_id"`
	MealType    models.MealType `json:"meal_type"`
	PortionSize float64         `json:"portion_size"`
}

func pick(rng *rand.Rand, foods []models.Food) models.Food {
	return foods[rng.Intn(len(foods))]
}

// pickPreferred narrows to foods whose name contains one of the
// keywords; falls back to the whole bucket when nothing matches.
func pickPreferred(rng *rand.Rand, foods []models.Food, keywords ...string) models.Food {
	var preferred []models.Food
	for _, f := range foods {
		if nameMatches(f, keywords) {
			preferred = append(preferred, f)
		}
	}
	if len(preferred) > 0 {
		return pick(rng, preferred)
	}
	return pick(rng, foods)
}

// pickOther avoids repeating a food already used in another slot.
func pickOther(rng *rand.Rand, foods []models.Food, usedID uint) models.Food {
	var others []models.Food
	for _, f := range foods {
		if f.ID != usedID {
			others = append(others, f)
		}
	}
	if len(others) > 0 {
		return pick(rng, others)
	}
	return pick(rng, foods)
}

// portionFor sizes a portion so the food roughly covers its calorie
// budget, capped to keep quantities sensible.
func portionFor(budget, calPerPortion, cap float64) float64 {
	p := math.Min(cap, budget/math.Max(calPerPortion, 10))
	p = math.Round(p*10) / 10
	if p < 0.1 {
		p = 0.1
	}
	return p
}

// GenerateMealAssignments builds the concrete food picks for a simple
// four-slot day: breakfast 25%, lunch 35%, dinner 30%, snack 10%.
func GenerateMealAssignments(b FoodBuckets, targetCalories float64, rng *rand.Rand) []MealAssignment {
	var out []MealAssignment

	// Breakfast: dairy + fruit + carb
	breakfast := targetCalories * 0.25
	if len(b.Dairy) > 0 {
		f := pick(rng, b.Dairy)
		out = append(out, MealAssignment{f.ID, models.MealBreakfast, portionFor(breakfast*0.4, f.CaloriesPerPortion, 2.0)})
	}
	if len(b.Fruits) > 0 {
		f := pick(rng, b.Fruits)
		out = append(out, MealAssignment{f.ID, models.MealBreakfast, portionFor(breakfast*0.3, f.CaloriesPerPortion, 2.0)})
	}
	if len(b.Carbs) > 0 {
		f := pickPreferred(rng, b.Carbs, "oat", "bread")
		out = append(out, MealAssignment{f.ID, models.MealBreakfast, portionFor(breakfast*0.3, f.CaloriesPerPortion, 1.5)})
	}

	// Lunch: protein + carb + vegetable
	lunch := targetCalories * 0.35
	var lunchProtein, lunchVegetable uint
	if len(b.Proteins) > 0 {
		f := pick(rng, b.Proteins)
		lunchProtein = f.ID
		out = append(out, MealAssignment{f.ID, models.MealLunch, portionFor(lunch*0.5, f.CaloriesPerPortion, 2.0)})
	}
	if len(b.Carbs) > 0 {
		f := pickPreferred(rng, b.Carbs, "rice", "pasta")
		out = append(out, MealAssignment{f.ID, models.MealLunch, portionFor(lunch*0.35, f.CaloriesPerPortion, 2.0)})
	}
	if len(b.Vegetables) > 0 {
		f := pick(rng, b.Vegetables)
		lunchVegetable = f.ID
		out = append(out, MealAssignment{f.ID, models.MealLunch, portionFor(lunch*0.15, f.CaloriesPerPortion, 3.0)})
	}

	// Dinner: protein + vegetable, avoiding the lunch picks
	dinner := targetCalories * 0.30
	if len(b.Proteins) > 0 {
		f := pickOther(rng, b.Proteins, lunchProtein)
		out = append(out, MealAssignment{f.ID, models.MealDinner, portionFor(dinner*0.7, f.CaloriesPerPortion, 2.0)})
	}
	if len(b.Vegetables) > 0 {
		f := pickOther(rng, b.Vegetables, lunchVegetable)
		out = append(out, MealAssignment{f.ID, models.MealDinner, portionFor(dinner*0.3, f.CaloriesPerPortion, 3.0)})
	}

	// Snack: fruit or nuts
	snack := targetCalories * 0.10
	if len(b.Snacks) > 0 {
		f := pick(rng, b.Snacks)
		out = append(out, MealAssignment{f.ID, models.MealSnack, portionFor(snack, f.CaloriesPerPortion, 1.5)})
	}

	return out
}

type PlanStatistics struct {
	TargetCalories     float64 `json:"target_calories"`
	GeneratedCalories  float64 `json:"generated_calories"`
	AccuracyPercentage float64 `json:"accuracy_percentage"`
	Protein            float64 `json:"protein"`
	Carbs              float64 `json:"carbs"`
	Fat                float64 `json:"fat"`
	MealCount          int     `json:"meal_count"`
}

type OptimizedPlanProposal struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Meals       []MealAssignment `json:"meals"`
	Statistics  PlanStatistics   `json:"statistics"`
}

type PlanOptimizerService struct {
	db *gorm.DB
}

func NewPlanOptimizerService(db *gorm.DB) *PlanOptimizerService {
	return &PlanOptimizerService{db: db}
}

// GenerateProposal builds a concrete plan proposal for one date. The
// proposal is not persisted; the caller submits it through the plan
// creation endpoint.
func (s *PlanOptimizerService) GenerateProposal(userID uint, planDate, today time.Time) (*OptimizedPlanProposal, error) {
	var profile models.ClientProfile
	if err := s.db.Preload("User").First(&profile, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("%w: client profile for user %d", ErrNotFound, userID)
	}

	var count int64
	s.db.Model(&models.NutritionPlan{}).
		Where("user_id = ? AND plan_date = ?", userID, planDate).
		Count(&count)
	if count > 0 {
		return nil, ErrPlanAlreadyExists
	}

	var foods []models.Food
	if err := s.db.Find(&foods).Error; err != nil {
		return nil, err
	}
	if len(foods) == 0 {
		return nil, ErrNoFoodsAvailable
	}

	req, err := StandardCalculator{}.DailyRequirements(&profile, today)
	if err != nil {
		return nil, err
	}
	target := req.TargetCalories

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	assignments := GenerateMealAssignments(ClassifyFoods(foods), target, rng)

	byID := make(map[uint]models.Food, len(foods))
	for _, f := range foods {
		byID[f.ID] = f
	}

	stats := PlanStatistics{TargetCalories: math.Round(target), MealCount: len(assignments)}
	var totalCal float64
	for _, m := range assignments {
		f := byID[m.FoodID]
		totalCal += f.CaloriesPerPortion * m.PortionSize
		stats.Protein += f.ProteinPerPortion * m.PortionSize
		stats.Carbs += f.CarbsPerPortion * m.PortionSize
		stats.Fat += f.FatPerPortion * m.PortionSize
	}
	stats.GeneratedCalories = math.Round(totalCal)
	if target > 0 {
		stats.AccuracyPercentage = round1(totalCal / target * 100)
	}
	stats.Protein = round1(stats.Protein)
	stats.Carbs = round1(stats.Carbs)
	stats.Fat = round1(stats.Fat)

	return &OptimizedPlanProposal{
		Name: fmt.Sprintf("Automatic Nutrition Plan - %s", planDate.Format("2006-01-02")),
		Description: fmt.Sprintf("Automatically generated plan. Target: %.0f kcal, generated: %.0f kcal, accuracy: %.1f%%",
			target, totalCal, stats.AccuracyPercentage),
		Meals:      assignments,
		Statistics: stats,
	}, nil
}
