package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/joaquincgp/FitFlow/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Tolerance applied when comparing accumulated portions against the
// planned one, so float noise never rejects an exact fill.
const portionEpsilon = 0.001

type FoodLogService struct {
	db *gorm.DB
}

func NewFoodLogService(db *gorm.DB) *FoodLogService {
	return &FoodLogService{db: db}
}

type FoodLogEntryInput struct {
	FoodID      uint            `json:"food_id"`
	MealType    models.MealType `json:"meal_type"`
	PortionSize float64         `json:"portion_size"`
	Date        *time.Time      `json:"date,omitempty"` // nil means today
}

type batchEntry struct {
	FoodID   uint
	MealType models.MealType
	Portion  float64
	Date     time.Time
}

// validateEntriesAgainstPlan checks one date group of a batch against
// its plan; a nil plan means no plan exists for that date. `already`
// holds the portions persisted before this batch; additions made
// earlier in the same batch count toward the cap too, so a single
// batch cannot jointly exceed a planned portion.
func validateEntriesAgainstPlan(plan *models.NutritionPlan, already map[MealKey]float64, entries []batchEntry) error {
	if len(entries) == 0 {
		return nil
	}
	if plan == nil {
		return fmt.Errorf("%w: %s", ErrNoPlanForDate, entries[0].Date.Format("2006-01-02"))
	}

	planned := make(map[MealKey]float64, len(plan.Meals))
	for _, m := range plan.Meals {
		planned[MealKey{FoodID: m.FoodID, MealType: m.MealType}] = m.PortionSize
	}

	pending := make(map[MealKey]float64)
	for _, e := range entries {
		key := MealKey{FoodID: e.FoodID, MealType: e.MealType}
		plannedPortion, ok := planned[key]
		if !ok || plannedPortion <= 0 {
			return fmt.Errorf("%w: food %d in %s on %s",
				ErrMealNotPlanned, e.FoodID, e.MealType, e.Date.Format("2006-01-02"))
		}

		consumed := already[key] + pending[key]
		if consumed+e.Portion > plannedPortion+portionEpsilon {
			remaining := plannedPortion - consumed
			if remaining < 0 {
				remaining = 0
			}
			return &PortionExceedsPlanError{
				FoodID:    e.FoodID,
				MealType:  e.MealType,
				Date:      e.Date,
				Planned:   plannedPortion,
				Consumed:  consumed,
				Attempted: e.Portion,
				Remaining: remaining,
			}
		}
		pending[key] += e.Portion
	}
	return nil
}

// LogBatch validates and persists a batch of log entries
// all-or-nothing. Every entry must land on a date that has a plan,
// match a planned (food, meal type) pair, and fit within the portion
// still available for it. Validation and insertion run inside one
// transaction with the day's plan meals row-locked, so two concurrent
// batches cannot jointly exceed a planned portion.
func (s *FoodLogService) LogBatch(userID uint, inputs []FoodLogEntryInput, today time.Time) ([]models.FoodLog, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: empty batch", ErrValidation)
	}

	byDate := make(map[time.Time][]batchEntry)
	var order []time.Time
	for _, in := range inputs {
		if in.PortionSize <= 0 {
			return nil, fmt.Errorf("%w: portion size must be positive", ErrValidation)
		}
		if !in.MealType.Valid() {
			return nil, fmt.Errorf("%w: invalid meal type %q", ErrValidation, in.MealType)
		}
		date := DateOnly(today)
		if in.Date != nil {
			date = DateOnly(*in.Date)
		}
		if _, seen := byDate[date]; !seen {
			order = append(order, date)
		}
		byDate[date] = append(byDate[date], batchEntry{
			FoodID:   in.FoodID,
			MealType: in.MealType,
			Portion:  in.PortionSize,
			Date:     date,
		})
	}

	var created []models.FoodLog
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, date := range order {
			entries := byDate[date]

			var plan *models.NutritionPlan
			var found models.NutritionPlan
			err := tx.Where("user_id = ? AND plan_date = ?", userID, date).
				Order("created_at ASC").
				First(&found).Error
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			var already map[MealKey]float64
			if err == nil {
				// Lock the plan's meals so a concurrent batch for
				// the same aggregate waits until this one commits.
				var meals []models.NutritionPlanMeal
				if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
					Where("plan_id = ?", found.ID).
					Find(&meals).Error; err != nil {
					return err
				}
				found.Meals = meals
				plan = &found

				if already, err = sumLoggedPortions(tx, userID, date); err != nil {
					return err
				}
			}

			if err := validateEntriesAgainstPlan(plan, already, entries); err != nil {
				return err
			}

			for _, e := range entries {
				log := models.FoodLog{
					UserID:      userID,
					FoodID:      e.FoodID,
					Date:        e.Date,
					MealType:    e.MealType,
					PortionSize: e.Portion,
				}
				if err := tx.Create(&log).Error; err != nil {
					return err
				}
				created = append(created, log)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ListByDate returns the user's logs for one date, foods loaded.
func (s *FoodLogService) ListByDate(userID uint, date time.Time) ([]models.FoodLog, error) {
	var logs []models.FoodLog
	err := s.db.Preload("Food").
		Where("user_id = ? AND date = ?", userID, DateOnly(date)).
		Order("created_at ASC").
		Find(&logs).Error
	return logs, err
}

// DeleteLog removes one entry. Logs are never updated, only deleted.
func (s *FoodLogService) DeleteLog(userID, logID uint) error {
	var log models.FoodLog
	if err := s.db.First(&log, logID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: food log %d", ErrNotFound, logID)
		}
		return err
	}
	if log.UserID != userID {
		return ErrUnauthorized
	}
	return s.db.Delete(&log).Error
}
