package models

import (
	"time"

	"gorm.io/gorm"
)

type MealType string

const (
	MealBreakfast   MealType = "breakfast"
	MealLunch       MealType = "lunch"
	MealDinner      MealType = "dinner"
	MealSnack       MealType = "snack"
	MealPreWorkout  MealType = "pre_workout"
	MealPostWorkout MealType = "post_workout"
)

func (m MealType) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack, MealPreWorkout, MealPostWorkout:
		return true
	}
	return false
}

// NutritionPlan is the planned intake for one client on one day.
// At most one plan per (user, nutritionist, date).
type NutritionPlan struct {
	gorm.Model
	UserID         uint                `gorm:"not null;uniqueIndex:idx_plan_owner_author_date" json:"user_id"`
	NutritionistID uint                `gorm:"not null;uniqueIndex:idx_plan_owner_author_date" json:"nutritionist_id"`
	PlanDate       time.Time           `gorm:"type:date;not null;uniqueIndex:idx_plan_owner_author_date" json:"plan_date"`
	Name           string              `gorm:"size:100;not null" json:"name"`
	Description    string              `gorm:"size:255" json:"description"`
	Meals          []NutritionPlanMeal `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE" json:"meals"`
}

type NutritionPlanMeal struct {
	gorm.Model
	PlanID      uint     `gorm:"not null;index" json:"plan_id"`
	FoodID      uint     `gorm:"not null" json:"food_id"`
	Food        Food     `json:"food"`
	MealType    MealType `gorm:"type:varchar(20);not null" json:"meal_type"`
	PortionSize float64  `gorm:"not null" json:"portion_size"`
}
