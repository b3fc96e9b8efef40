package config

import (
	"fmt"
	"os"

	"github.com/joaquincgp/FitFlow/logger"
	"github.com/joaquincgp/FitFlow/models"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file found, relying on environment", zap.Error(err))
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	// TranslateError surfaces unique-index violations as
	// gorm.ErrDuplicatedKey instead of raw driver errors.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.ClientProfile{},
		&models.Nutritionist{},
		&models.Food{},
		&models.NutritionPlan{},
		&models.NutritionPlanMeal{},
		&models.FoodLog{},
	)
	if err != nil {
		logger.Fatal("AutoMigrate failed", zap.Error(err))
	}
}
