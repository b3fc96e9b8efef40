package services

import (
	"errors"
	"fmt"

	"github.com/joaquincgp/FitFlow/config"
	"github.com/joaquincgp/FitFlow/models"

	"gorm.io/gorm"
)

const (
	RoleClient       = "client"
	RoleNutritionist = "nutritionist"
)

type UserProfile struct {
	User         models.User           `json:"user"`
	Role         string                `json:"role"`
	Client       *models.ClientProfile `json:"client_profile,omitempty"`
	Nutritionist *models.Nutritionist  `json:"nutritionist_profile,omitempty"`
}

// GetUserProfile resolves a user plus its role-specific profile row.
func GetUserProfile(userID uint) (*UserProfile, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return nil, err
	}

	out := &UserProfile{User: user, Role: RoleClient}

	var client models.ClientProfile
	if err := config.DB.First(&client, "user_id = ?", userID).Error; err == nil {
		client.User = user
		out.Client = &client
		return out, nil
	}

	var nut models.Nutritionist
	if err := config.DB.First(&nut, "user_id = ?", userID).Error; err == nil {
		nut.User = user
		out.Role = RoleNutritionist
		out.Nutritionist = &nut
		return out, nil
	}

	return nil, fmt.Errorf("%w: no profile for user %d", ErrNotFound, userID)
}

// GetClientProfile loads the calculation inputs for one client.
func GetClientProfile(userID uint) (*models.ClientProfile, error) {
	var profile models.ClientProfile
	err := config.DB.Preload("User").First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: client profile for user %d", ErrNotFound, userID)
		}
		return nil, err
	}
	return &profile, nil
}

// IsNutritionist reports whether the user has a nutritionist profile.
func IsNutritionist(userID uint) bool {
	var count int64
	config.DB.Model(&models.Nutritionist{}).Where("user_id = ?", userID).Count(&count)
	return count > 0
}
