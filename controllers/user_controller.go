package controllers

import (
	"net/http"

	"github.com/joaquincgp/FitFlow/services"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	userID := c.GetUint("userID")
	profile, err := services.GetUserProfile(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
