package services

import (
	"errors"
	"fmt"

	"github.com/joaquincgp/FitFlow/models"

	"gorm.io/gorm"
)

type FoodService struct {
	db *gorm.DB
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{db: db}
}

type FoodInput struct {
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	CaloriesPerPortion float64 `json:"calories_per_portion"`
	ProteinPerPortion  float64 `json:"protein_per_portion"`
	FatPerPortion      float64 `json:"fat_per_portion"`
	CarbsPerPortion    float64 `json:"carbs_per_portion"`
	PortionUnit        string  `json:"portion_unit"`
}

func (s *FoodService) Create(in FoodInput) (*models.Food, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: food name is required", ErrValidation)
	}
	if in.PortionUnit == "" {
		return nil, fmt.Errorf("%w: portion unit is required", ErrValidation)
	}
	if in.CaloriesPerPortion <= 0 {
		return nil, fmt.Errorf("%w: calories per portion must be positive", ErrValidation)
	}
	if in.ProteinPerPortion < 0 || in.FatPerPortion < 0 || in.CarbsPerPortion < 0 {
		return nil, fmt.Errorf("%w: nutrient rates must not be negative", ErrValidation)
	}

	var count int64
	s.db.Model(&models.Food{}).Where("name = ?", in.Name).Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("%w: a food named %q already exists", ErrValidation, in.Name)
	}

	food := models.Food{
		Name:               in.Name,
		Description:        in.Description,
		CaloriesPerPortion: in.CaloriesPerPortion,
		ProteinPerPortion:  in.ProteinPerPortion,
		FatPerPortion:      in.FatPerPortion,
		CarbsPerPortion:    in.CarbsPerPortion,
		PortionUnit:        in.PortionUnit,
	}
	if err := s.db.Create(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (s *FoodService) List() ([]models.Food, error) {
	var foods []models.Food
	err := s.db.Order("name ASC").Find(&foods).Error
	return foods, err
}

func (s *FoodService) Get(id uint) (*models.Food, error) {
	var food models.Food
	if err := s.db.First(&food, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: food %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &food, nil
}
