package controllers

import (
	"net/http"
	"strconv"

	"github.com/joaquincgp/FitFlow/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Foods *services.FoodService
}

func NewFoodController(foods *services.FoodService) *FoodController {
	return &FoodController{Foods: foods}
}

func (fc *FoodController) CreateFood(c *gin.Context) {
	var input services.FoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := fc.Foods.Create(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, food)
}

func (fc *FoodController) ListFoods(c *gin.Context) {
	foods, err := fc.Foods.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

func (fc *FoodController) GetFood(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return
	}

	food, err := fc.Foods.Get(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}
