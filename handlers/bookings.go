package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"reserva-eva/models"
	"reserva-eva/services"
	"reserva-eva/store"
)

// CreateBooking submits a new booking for a date
func CreateBooking(c *gin.Context) {
	var req models.BookingRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log.Printf("Booking request: date=%s guests=%d", req.Date, req.TotalGuests)

	booking, totalPrice, err := services.CreateBooking(req)
	if err != nil {
		log.Printf("Error creating booking: %v", err)
		status := http.StatusBadRequest
		if errors.Is(err, store.ErrDayBlocked) || errors.Is(err, store.ErrDayFull) {
			status = http.StatusConflict
		}
		c.JSON(status, models.BookingResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.BookingResponse{
		Success:    true,
		Message:    "Booking created successfully",
		Booking:    booking,
		TotalPrice: totalPrice,
		ShareLink:  services.ShareLink(*booking),
	})
}

// LookupGuest checks a CPF against all stored bookings for the
// returning-guest flow
func LookupGuest(c *gin.Context) {
	cpf := c.Query("cpf")
	if cpf == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cpf query parameter is required"})
		return
	}

	c.JSON(http.StatusOK, services.LookupGuest(cpf, c.Query("date")))
}

// GetShareLink rebuilds the WhatsApp deep link for an existing booking
func GetShareLink(c *gin.Context) {
	booking, err := services.GetBooking(c.Param("date"), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"share_link": services.ShareLink(*booking)})
}
