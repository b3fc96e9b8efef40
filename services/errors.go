package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/joaquincgp/FitFlow/models"
)

// Domain errors. Controllers translate these into HTTP statuses; all
// of them are recoverable by the caller.
var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("resource not found")
	ErrUnauthorized      = errors.New("resource belongs to another user")
	ErrNoPlanForDate     = errors.New("no nutrition plan exists for this date")
	ErrMealNotPlanned    = errors.New("food and meal type are not part of the day's plan")
	ErrPlanAlreadyExists = errors.New("a plan already exists for this user and date")
	ErrNoFoodsAvailable  = errors.New("no foods available in the catalog")
	ErrPlanHasLogs       = errors.New("plan has logged meals for its date")
)

// PortionExceedsPlanError rejects a log batch that would push the
// consumed portion past the planned one. It carries everything the
// caller needs to resubmit correctly.
type PortionExceedsPlanError struct {
	FoodID    uint
	MealType  models.MealType
	Date      time.Time
	Planned   float64
	Consumed  float64
	Attempted float64
	Remaining float64
}

func (e *PortionExceedsPlanError) Error() string {
	return fmt.Sprintf(
		"portion exceeds plan for food %d (%s on %s): planned %.3f, already consumed %.3f, attempted %.3f, remaining %.3f",
		e.FoodID, e.MealType, e.Date.Format("2006-01-02"),
		e.Planned, e.Consumed, e.Attempted, e.Remaining,
	)
}
