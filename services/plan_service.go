package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/joaquincgp/FitFlow/models"

	"gorm.io/gorm"
)

type PlanService struct {
	db *gorm.DB
}

func NewPlanService(db *gorm.DB) *PlanService {
	return &PlanService{db: db}
}

type PlanMealInput struct {
	FoodID      uint            `json:"food_id"`
	MealType    models.MealType `json:"meal_type"`
	PortionSize float64         `json:"portion_size"`
}

// validatePlanMeals checks the meal rows of a plan being created. Each
// (food, meal type) pair may appear at most once: the compliance
// engine keys consumption by that pair, so a duplicate row could never
// be reconciled separately.
func validatePlanMeals(meals []PlanMealInput) error {
	seen := make(map[MealKey]struct{}, len(meals))
	for _, m := range meals {
		if !m.MealType.Valid() {
			return fmt.Errorf("%w: invalid meal type %q", ErrValidation, m.MealType)
		}
		if m.PortionSize <= 0 {
			return fmt.Errorf("%w: portion size must be positive", ErrValidation)
		}
		key := MealKey{FoodID: m.FoodID, MealType: m.MealType}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: food %d appears twice in %s", ErrValidation, m.FoodID, m.MealType)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// planCreateError translates a unique-index violation on the plan
// insert into the domain error; anything else passes through.
func planCreateError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrPlanAlreadyExists
	}
	return err
}

// CreatePlan persists a plan with its meals. At most one plan may
// exist per (owner, nutritionist, date); a self-service plan uses the
// owner as its own nutritionist id.
func (s *PlanService) CreatePlan(
	ownerID, nutritionistID uint,
	planDate time.Time,
	name, description string,
	meals []PlanMealInput,
	today time.Time,
) (*models.NutritionPlan, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: plan name is required", ErrValidation)
	}
	planDate = DateOnly(planDate)
	if planDate.Before(DateOnly(today)) {
		return nil, fmt.Errorf("%w: plan date must not be in the past", ErrValidation)
	}
	if err := validatePlanMeals(meals); err != nil {
		return nil, err
	}
	for _, m := range meals {
		var food models.Food
		if err := s.db.First(&food, m.FoodID).Error; err != nil {
			return nil, fmt.Errorf("%w: food %d", ErrNotFound, m.FoodID)
		}
	}

	plan := &models.NutritionPlan{
		UserID:         ownerID,
		NutritionistID: nutritionistID,
		PlanDate:       planDate,
		Name:           name,
		Description:    description,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		tx.Model(&models.NutritionPlan{}).
			Where("user_id = ? AND nutritionist_id = ? AND plan_date = ?", ownerID, nutritionistID, planDate).
			Count(&count)
		if count > 0 {
			return ErrPlanAlreadyExists
		}

		// The count above still races with a concurrent create; the
		// unique index is the arbiter and its violation maps to the
		// same domain error.
		if err := tx.Create(plan).Error; err != nil {
			return planCreateError(err)
		}
		for _, m := range meals {
			meal := models.NutritionPlanMeal{
				PlanID:      plan.ID,
				FoodID:      m.FoodID,
				MealType:    m.MealType,
				PortionSize: m.PortionSize,
			}
			if err := tx.Create(&meal).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var populated models.NutritionPlan
	if err := s.db.Preload("Meals.Food").First(&populated, plan.ID).Error; err != nil {
		return nil, err
	}
	return &populated, nil
}

type PlanFilter struct {
	SpecificDate *time.Time
	StartDate    *time.Time
	EndDate      *time.Time
	WeekOffset   *int
	MonthYear    string // YYYY-MM
}

// ListMyPlans returns the caller's plans, newest first, optionally
// narrowed by one of the date filters.
func (s *PlanService) ListMyPlans(userID uint, f PlanFilter, today time.Time) ([]models.NutritionPlan, error) {
	q := s.db.Preload("Meals.Food").Where("user_id = ?", userID)

	switch {
	case f.SpecificDate != nil:
		q = q.Where("plan_date = ?", DateOnly(*f.SpecificDate))

	case f.StartDate != nil && f.EndDate != nil:
		q = q.Where("plan_date >= ? AND plan_date <= ?", DateOnly(*f.StartDate), DateOnly(*f.EndDate))

	case f.WeekOffset != nil:
		start := WeekStart(today).AddDate(0, 0, 7**f.WeekOffset)
		end := start.AddDate(0, 0, 6)
		q = q.Where("plan_date >= ? AND plan_date <= ?", start, end)

	case f.MonthYear != "":
		monthStart, err := time.Parse("2006-01", f.MonthYear)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid month_year, use YYYY-MM", ErrValidation)
		}
		monthEnd := monthStart.AddDate(0, 1, -1)
		q = q.Where("plan_date >= ? AND plan_date <= ?", monthStart, monthEnd)
	}

	var plans []models.NutritionPlan
	err := q.Order("created_at DESC").Find(&plans).Error
	return plans, err
}

// PlanByDate returns the plan for one date with meals and foods
// loaded, or ErrNoPlanForDate.
func (s *PlanService) PlanByDate(userID uint, date time.Time) (*models.NutritionPlan, error) {
	var plan models.NutritionPlan
	err := s.db.Preload("Meals.Food").
		Where("user_id = ? AND plan_date = ?", userID, DateOnly(date)).
		Order("created_at ASC").
		First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoPlanForDate
		}
		return nil, err
	}
	return &plan, nil
}

type WeekDayOverview struct {
	Date      time.Time             `json:"date"`
	DayName   string                `json:"day_name"`
	IsToday   bool                  `json:"is_today"`
	HasPlan   bool                  `json:"has_plan"`
	Plan      *models.NutritionPlan `json:"plan,omitempty"`
	MealCount int                   `json:"meals_count"`
}

type WeekOverview struct {
	WeekStart  time.Time         `json:"week_start"`
	WeekEnd    time.Time         `json:"week_end"`
	WeekOffset int               `json:"week_offset"`
	Days       []WeekDayOverview `json:"days"`
}

func (s *PlanService) WeekOverview(userID uint, weekOffset int, today time.Time) (*WeekOverview, error) {
	start := WeekStart(today).AddDate(0, 0, 7*weekOffset)

	var plans []models.NutritionPlan
	err := s.db.Preload("Meals.Food").
		Where("user_id = ? AND plan_date >= ? AND plan_date <= ?", userID, start, start.AddDate(0, 0, 6)).
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	byDate := make(map[string]*models.NutritionPlan, len(plans))
	for i := range plans {
		byDate[DateOnly(plans[i].PlanDate).Format("2006-01-02")] = &plans[i]
	}

	ov := &WeekOverview{
		WeekStart:  start,
		WeekEnd:    start.AddDate(0, 0, 6),
		WeekOffset: weekOffset,
	}
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		entry := WeekDayOverview{
			Date:    day,
			DayName: day.Weekday().String(),
			IsToday: day.Equal(DateOnly(today)),
		}
		if plan, ok := byDate[day.Format("2006-01-02")]; ok {
			entry.HasPlan = true
			entry.Plan = plan
			entry.MealCount = len(plan.Meals)
		}
		ov.Days = append(ov.Days, entry)
	}
	return ov, nil
}

// DeletePlan removes a plan and its meals. Without force it refuses
// when food logs exist for the plan's date; with force those logs are
// deleted in the same transaction. Returns the number of logs removed.
func (s *PlanService) DeletePlan(actingUserID, planID uint, force bool) (int64, error) {
	var plan models.NutritionPlan
	if err := s.db.First(&plan, planID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("%w: plan %d", ErrNotFound, planID)
		}
		return 0, err
	}
	if plan.UserID != actingUserID && plan.NutritionistID != actingUserID {
		return 0, ErrUnauthorized
	}

	var logCount int64
	s.db.Model(&models.FoodLog{}).
		Where("user_id = ? AND date = ?", plan.UserID, DateOnly(plan.PlanDate)).
		Count(&logCount)
	if logCount > 0 && !force {
		return 0, fmt.Errorf("%w: %d food logs on %s", ErrPlanHasLogs, logCount, plan.PlanDate.Format("2006-01-02"))
	}

	var deleted int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if force && logCount > 0 {
			res := tx.Where("user_id = ? AND date = ?", plan.UserID, DateOnly(plan.PlanDate)).
				Delete(&models.FoodLog{})
			if res.Error != nil {
				return res.Error
			}
			deleted = res.RowsAffected
		}
		if err := tx.Where("plan_id = ?", plan.ID).Delete(&models.NutritionPlanMeal{}).Error; err != nil {
			return err
		}
		return tx.Delete(&plan).Error
	})
	return deleted, err
}

type DateAvailability struct {
	Date         time.Time             `json:"date"`
	Available    bool                  `json:"available"`
	ExistingPlan *models.NutritionPlan `json:"existing_plan,omitempty"`
}

func (s *PlanService) CheckDateAvailability(ownerID, nutritionistID uint, date time.Time) (*DateAvailability, error) {
	var plan models.NutritionPlan
	err := s.db.
		Where("user_id = ? AND nutritionist_id = ? AND plan_date = ?", ownerID, nutritionistID, DateOnly(date)).
		First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &DateAvailability{Date: DateOnly(date), Available: true}, nil
		}
		return nil, err
	}
	return &DateAvailability{Date: DateOnly(date), Available: false, ExistingPlan: &plan}, nil
}
