package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/joaquincgp/FitFlow/config"
	"github.com/joaquincgp/FitFlow/models"
	"github.com/joaquincgp/FitFlow/utils"

	"gorm.io/gorm"
)

type RegisterClientInput struct {
	Email           string               `json:"email"`
	Password        string               `json:"password"`
	FirstName       string               `json:"first_name"`
	LastName        string               `json:"last_name"`
	NationalID      string               `json:"national_id"`
	BirthDate       time.Time            `json:"birth_date"`
	Sex             models.Sex           `json:"sex"`
	HeightCm        float64              `json:"height_cm"`
	WeightCurrentKg float64              `json:"weight_current_kg"`
	WeightGoalKg    float64              `json:"weight_goal_kg"`
	ActivityLevel   models.ActivityLevel `json:"activity_level"`
	Goal            models.Goal          `json:"goal"`
}

func validateRegistration(nationalID string, sex models.Sex, birthDate, now time.Time) error {
	if err := utils.ValidateCedula(nationalID); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if !sex.Valid() {
		return fmt.Errorf("%w: sex must be male or female", ErrValidation)
	}
	if birthDate.IsZero() {
		return fmt.Errorf("%w: birth date is required", ErrValidation)
	}
	if !birthDate.Before(DateOnly(now)) {
		return fmt.Errorf("%w: birth date must be in the past", ErrValidation)
	}
	return nil
}

// RegisterClient creates the user and its client profile in one
// transaction.
func RegisterClient(in RegisterClientInput) (*models.User, error) {
	if err := validateRegistration(in.NationalID, in.Sex, in.BirthDate, time.Now()); err != nil {
		return nil, err
	}
	if in.HeightCm <= 0 || in.WeightCurrentKg <= 0 || in.WeightGoalKg <= 0 {
		return nil, fmt.Errorf("%w: height and weights must be positive", ErrValidation)
	}
	if !in.ActivityLevel.Valid() {
		return nil, fmt.Errorf("%w: invalid activity level %q", ErrValidation, in.ActivityLevel)
	}
	if !in.Goal.Valid() {
		return nil, fmt.Errorf("%w: invalid goal %q", ErrValidation, in.Goal)
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:      in.Email,
		Password:   hashed,
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		NationalID: in.NationalID,
		BirthDate:  in.BirthDate,
		Sex:        in.Sex,
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile := models.ClientProfile{
			UserID:          user.ID,
			HeightCm:        in.HeightCm,
			WeightCurrentKg: in.WeightCurrentKg,
			WeightGoalKg:    in.WeightGoalKg,
			ActivityLevel:   in.ActivityLevel,
			Goal:            in.Goal,
		}
		return tx.Create(&profile).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type RegisterNutritionistInput struct {
	Email          string     `json:"email"`
	Password       string     `json:"password"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	NationalID     string     `json:"national_id"`
	BirthDate      time.Time  `json:"birth_date"`
	Sex            models.Sex `json:"sex"`
	Specialization string     `json:"specialization"`
	LicenseNumber  string     `json:"license_number"`
}

func RegisterNutritionist(in RegisterNutritionistInput) (*models.User, error) {
	if err := validateRegistration(in.NationalID, in.Sex, in.BirthDate, time.Now()); err != nil {
		return nil, err
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:      in.Email,
		Password:   hashed,
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		NationalID: in.NationalID,
		BirthDate:  in.BirthDate,
		Sex:        in.Sex,
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		nut := models.Nutritionist{
			UserID:         user.ID,
			Specialization: in.Specialization,
			LicenseNumber:  in.LicenseNumber,
		}
		return tx.Create(&nut).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// AuthenticateUser verifies credentials and returns a signed token.
func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("%w: user", ErrNotFound)
		}
		return "", result.Error
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}

	return utils.GenerateJWT(user.ID, user.Email)
}
