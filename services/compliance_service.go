package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/joaquincgp/FitFlow/models"

	"gorm.io/gorm"
)

// Read-side reconciliation of a plan against logged consumption.
// Per meal: compliance = 100 * consumed / planned; the plan-level
// adherence is the arithmetic mean of those percentages, deliberately
// NOT a calorie-weighted ratio.

type MealStatus string

const (
	MealFulfilled MealStatus = "fulfilled"
	MealPartial   MealStatus = "partial"
	MealPending   MealStatus = "pending"
)

// ClassifyCompliance maps a compliance percentage to its terminal
// state. Over-consumption beyond 120% classifies as partial; there is
// no distinct over state.
func ClassifyCompliance(pct float64) MealStatus {
	switch {
	case pct >= 80 && pct <= 120:
		return MealFulfilled
	case pct > 0:
		return MealPartial
	default:
		return MealPending
	}
}

// MealKey joins a log to a planned meal: same food in the same slot.
type MealKey struct {
	FoodID   uint
	MealType models.MealType
}

type MealCompliance struct {
	FoodID          uint            `json:"food_id"`
	FoodName        string          `json:"food_name"`
	MealType        models.MealType `json:"meal_type"`
	PlannedPortion  float64         `json:"planned_portion"`
	ConsumedPortion float64         `json:"consumed_portion"`
	CompliancePct   float64         `json:"compliance_percentage"`
	Fulfilled       bool            `json:"fulfilled"`
	Status          MealStatus      `json:"status"`
}

type PlanCompliance struct {
	PlanID         uint             `json:"plan_id"`
	PlanName       string           `json:"plan_name"`
	PlanDate       time.Time        `json:"plan_date"`
	HasPlan        bool             `json:"has_plan"`
	Status         string           `json:"status"`
	TotalPlanned   int              `json:"total_planned"`
	FulfilledCount int              `json:"fulfilled_count"`
	AdherencePct   float64          `json:"adherence_percentage"`
	Detail         []MealCompliance `json:"detail"`
}

// EvaluatePlanCompliance is the pure reconciliation core: consumed
// portions are already aggregated per (food, meal type).
func EvaluatePlanCompliance(plan *models.NutritionPlan, consumed map[MealKey]float64) PlanCompliance {
	result := PlanCompliance{
		PlanID:       plan.ID,
		PlanName:     plan.Name,
		PlanDate:     plan.PlanDate,
		HasPlan:      true,
		TotalPlanned: len(plan.Meals),
	}

	var totalCompliance float64
	for _, meal := range plan.Meals {
		got := consumed[MealKey{FoodID: meal.FoodID, MealType: meal.MealType}]

		var pct float64
		if meal.PortionSize > 0 {
			pct = got / meal.PortionSize * 100
		}
		status := ClassifyCompliance(pct)
		if status == MealFulfilled {
			result.FulfilledCount++
		}
		totalCompliance += pct

		result.Detail = append(result.Detail, MealCompliance{
			FoodID:          meal.FoodID,
			FoodName:        meal.Food.Name,
			MealType:        meal.MealType,
			PlannedPortion:  meal.PortionSize,
			ConsumedPortion: got,
			CompliancePct:   round1(pct),
			Fulfilled:       status == MealFulfilled,
			Status:          status,
		})
	}

	if result.TotalPlanned > 0 {
		result.AdherencePct = round1(totalCompliance / float64(result.TotalPlanned))
	}
	result.Status = fmt.Sprintf("%d/%d meals fulfilled", result.FulfilledCount, result.TotalPlanned)
	return result
}

type ComplianceService struct {
	db *gorm.DB
}

func NewComplianceService(db *gorm.DB) *ComplianceService {
	return &ComplianceService{db: db}
}

// sumLoggedPortions aggregates the user's logs for one date keyed by
// (food, meal type). Logs are never linked to plans by foreign key,
// so this re-aggregation happens on every read.
func sumLoggedPortions(db *gorm.DB, userID uint, date time.Time) (map[MealKey]float64, error) {
	var rows []struct {
		FoodID   uint
		MealType models.MealType
		Total    float64
	}
	err := db.Model(&models.FoodLog{}).
		Select("food_id, meal_type, SUM(portion_size) AS total").
		Where("user_id = ? AND date = ?", userID, DateOnly(date)).
		Group("food_id, meal_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	consumed := make(map[MealKey]float64, len(rows))
	for _, r := range rows {
		consumed[MealKey{FoodID: r.FoodID, MealType: r.MealType}] = r.Total
	}
	return consumed, nil
}

// PlanStatusByDate reconciles the plan for one date. When no plan
// exists the result is an empty report, not an error, so dashboards
// can render a "no plan" day.
func (s *ComplianceService) PlanStatusByDate(userID uint, date time.Time) (*PlanCompliance, error) {
	var plan models.NutritionPlan
	err := s.db.Preload("Meals.Food").
		Where("user_id = ? AND plan_date = ?", userID, DateOnly(date)).
		Order("created_at ASC").
		First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &PlanCompliance{
				PlanDate: DateOnly(date),
				Status:   "no plan for this date",
				Detail:   []MealCompliance{},
			}, nil
		}
		return nil, err
	}

	consumed, err := sumLoggedPortions(s.db, userID, date)
	if err != nil {
		return nil, err
	}
	result := EvaluatePlanCompliance(&plan, consumed)
	return &result, nil
}

// PlanStatusByID reconciles a specific plan against the logs of its
// own date.
func (s *ComplianceService) PlanStatusByID(userID, planID uint) (*PlanCompliance, error) {
	var plan models.NutritionPlan
	err := s.db.Preload("Meals.Food").
		Where("id = ? AND user_id = ?", planID, userID).
		First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: plan %d", ErrNotFound, planID)
		}
		return nil, err
	}

	consumed, err := sumLoggedPortions(s.db, userID, plan.PlanDate)
	if err != nil {
		return nil, err
	}
	result := EvaluatePlanCompliance(&plan, consumed)
	return &result, nil
}
