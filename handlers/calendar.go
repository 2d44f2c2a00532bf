package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"reserva-eva/services"
)

// GetCalendar returns the availability of every date in a month
func GetCalendar(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month query parameter is required (YYYY-MM)"})
		return
	}

	days, err := services.MonthAvailability(month)
	if err != nil {
		log.Printf("Error resolving calendar for %s: %v", month, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, days)
}

// GetDay returns the availability of a single date
func GetDay(c *gin.Context) {
	availability, err := services.GetAvailability(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, availability)
}
