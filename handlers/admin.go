package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"reserva-eva/models"
	"reserva-eva/services"
	"reserva-eva/store"
)

// GetSiteConfig returns the whole site configuration for the admin panel
func GetSiteConfig(c *gin.Context) {
	c.JSON(http.StatusOK, services.SiteSnapshot())
}

// SetDayStatus blocks or unblocks a batch of dates
func SetDayStatus(c *gin.Context) {
	var req models.DayStatusRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.SetDayStatus(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SetDayLimit changes the capacity limit globally or for selected dates
func SetDayLimit(c *gin.Context) {
	var req models.DayLimitRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.SetDayLimit(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UpdateTier edits one pricing tier
func UpdateTier(c *gin.Context) {
	var req models.TierUpdateRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tier, err := services.UpdateTier(c.Param("id"), req)
	if err != nil {
		log.Printf("Error updating tier %s: %v", c.Param("id"), err)
		status := http.StatusBadRequest
		if errors.Is(err, store.ErrTierNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tier)
}

// SetPayment toggles a booking's payment-confirmed flag
func SetPayment(c *gin.Context) {
	var req models.PaymentRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := services.SetPayment(c.Param("date"), c.Param("id"), *req.Paid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	c.JSON(http.StatusOK, booking)
}

// ExportDayCSV downloads a date's bookings as a semicolon-separated CSV
func ExportDayCSV(c *gin.Context) {
	data, filename, err := services.ExportDayCSV(c.Param("date"))
	if err != nil {
		log.Printf("Error exporting CSV for %s: %v", c.Param("date"), err)
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// ExportDayXLSX downloads a date's bookings as a spreadsheet
func ExportDayXLSX(c *gin.Context) {
	data, filename, err := services.ExportDayXLSX(c.Param("date"))
	if err != nil {
		log.Printf("Error exporting XLSX for %s: %v", c.Param("date"), err)
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
