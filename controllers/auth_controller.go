package controllers

import (
	"net/http"
	"time"

	"github.com/joaquincgp/FitFlow/models"
	"github.com/joaquincgp/FitFlow/services"

	"github.com/gin-gonic/gin"
)

type RegisterClientInput struct {
	Email           string  `json:"email" binding:"required,email"`
	Password        string  `json:"password" binding:"required,min=8"`
	FirstName       string  `json:"first_name" binding:"required"`
	LastName        string  `json:"last_name" binding:"required"`
	NationalID      string  `json:"national_id" binding:"required"`
	BirthDate       string  `json:"birth_date" binding:"required"` // YYYY-MM-DD
	Sex             string  `json:"sex" binding:"required"`
	HeightCm        float64 `json:"height_cm" binding:"required"`
	WeightCurrentKg float64 `json:"weight_current_kg" binding:"required"`
	WeightGoalKg    float64 `json:"weight_goal_kg" binding:"required"`
	ActivityLevel   string  `json:"activity_level" binding:"required"`
	Goal            string  `json:"goal" binding:"required"`
}

func RegisterClient(c *gin.Context) {
	var input RegisterClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	birthDate, err := time.Parse("2006-01-02", input.BirthDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid birth_date, use YYYY-MM-DD"})
		return
	}

	user, err := services.RegisterClient(services.RegisterClientInput{
		Email:           input.Email,
		Password:        input.Password,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		NationalID:      input.NationalID,
		BirthDate:       birthDate,
		Sex:             models.Sex(input.Sex),
		HeightCm:        input.HeightCm,
		WeightCurrentKg: input.WeightCurrentKg,
		WeightGoalKg:    input.WeightGoalKg,
		ActivityLevel:   models.ActivityLevel(input.ActivityLevel),
		Goal:            models.Goal(input.Goal),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "registration successful", "user_id": user.ID})
}

type RegisterNutritionistInput struct {
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8"`
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	NationalID     string `json:"national_id" binding:"required"`
	BirthDate      string `json:"birth_date" binding:"required"`
	Sex            string `json:"sex" binding:"required"`
	Specialization string `json:"specialization"`
	LicenseNumber  string `json:"license_number"`
}

func RegisterNutritionist(c *gin.Context) {
	var input RegisterNutritionistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	birthDate, err := time.Parse("2006-01-02", input.BirthDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid birth_date, use YYYY-MM-DD"})
		return
	}

	user, err := services.RegisterNutritionist(services.RegisterNutritionistInput{
		Email:          input.Email,
		Password:       input.Password,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		NationalID:     input.NationalID,
		BirthDate:      birthDate,
		Sex:            models.Sex(input.Sex),
		Specialization: input.Specialization,
		LicenseNumber:  input.LicenseNumber,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "registration successful", "user_id": user.ID})
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := services.AuthenticateUser(input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}
