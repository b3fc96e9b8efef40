package models

import (
	"time"

	"gorm.io/gorm"
)

// FoodLog records one consumed portion. There is no foreign key to a
// plan: logs are matched to the day's plan by the
// (user, date, food, meal type) tuple at read time, so logs survive
// plan deletion.
type FoodLog struct {
	gorm.Model
	UserID      uint      `gorm:"not null;index:idx_log_user_date" json:"user_id"`
	FoodID      uint      `gorm:"not null" json:"food_id"`
	Food        Food      `json:"food"`
	Date        time.Time `gorm:"type:date;not null;index:idx_log_user_date" json:"date"`
	MealType    MealType  `gorm:"type:varchar(20);not null" json:"meal_type"`
	PortionSize float64   `gorm:"not null" json:"portion_size"`
}
