package models

import "gorm.io/gorm"

// Food stores nutrient rates per one portion unit; a logged
// consumption contributes rate × portion size.
type Food struct {
	gorm.Model
	Name               string  `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description        string  `gorm:"size:255" json:"description"`
	CaloriesPerPortion float64 `gorm:"not null" json:"calories_per_portion"`
	ProteinPerPortion  float64 `gorm:"not null" json:"protein_per_portion"`
	FatPerPortion      float64 `gorm:"not null" json:"fat_per_portion"`
	CarbsPerPortion    float64 `gorm:"not null" json:"carbs_per_portion"`
	PortionUnit        string  `gorm:"size:50;not null" json:"portion_unit"`
}
