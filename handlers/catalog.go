package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reserva-eva/models"
	"reserva-eva/services"
)

// GetProperties returns the static example catalog
func GetProperties(c *gin.Context) {
	c.JSON(http.StatusOK, models.Properties)
}

// GetTiers returns the current pricing tiers
func GetTiers(c *gin.Context) {
	c.JSON(http.StatusOK, services.Tiers())
}
