package models

import (
	"time"

	"gorm.io/gorm"
)

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale
}

type User struct {
	gorm.Model
	Email      string    `gorm:"uniqueIndex;not null" json:"email"`
	Password   string    `gorm:"not null" json:"-"`
	FirstName  string    `gorm:"not null" json:"first_name"`
	LastName   string    `gorm:"not null" json:"last_name"`
	NationalID string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"national_id"`
	BirthDate  time.Time `gorm:"not null" json:"birth_date"`
	Sex        Sex       `gorm:"type:varchar(10);not null" json:"sex"`
}
