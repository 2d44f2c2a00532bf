package services

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"strings"
	"time"

	"reserva-eva/models"
	"reserva-eva/store"
)

const bookingIDCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const bookingIDLength = 9

// generateBookingID generates a short random booking identifier
func generateBookingID() (string, error) {
	result := make([]byte, bookingIDLength)
	for i := range result {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(bookingIDCharset))))
		if err != nil {
			return "", err
		}
		result[i] = bookingIDCharset[num.Int64()]
	}
	return string(result), nil
}

// SanitizeNumeric strips everything but digits and caps the length,
// matching the form's silent coercion of CPF and phone fields
func SanitizeNumeric(value string, maxLen int) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
		if b.Len() == maxLen {
			break
		}
	}
	return b.String()
}

// TotalPrice computes the booking price: guest count per tier times that
// tier's price. Unknown tier ids contribute nothing.
func TotalPrice(tiers []models.AgeTier, breakdown map[string]int) float64 {
	var total float64
	for _, tier := range tiers {
		total += float64(breakdown[tier.ID]) * tier.Price
	}
	return total
}

// GetAvailability resolves one date to its calendar view
func GetAvailability(date string) (models.DayAvailability, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return models.DayAvailability{}, fmt.Errorf("invalid date format: %w", err)
	}

	day := siteStore.EffectiveDay(date)
	return models.DayAvailability{
		Date:            date,
		IsBlocked:       day.IsBlocked,
		Limit:           day.Limit,
		CurrentBookings: day.CurrentBookings,
		Available:       !day.IsBlocked && day.CurrentBookings < day.Limit,
	}, nil
}

// MonthAvailability resolves every date of a month ("YYYY-MM")
func MonthAvailability(month string) ([]models.DayAvailability, error) {
	first, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, fmt.Errorf("invalid month format: %w", err)
	}

	var days []models.DayAvailability
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		availability, err := GetAvailability(d.Format("2006-01-02"))
		if err != nil {
			return nil, err
		}
		days = append(days, availability)
	}
	return days, nil
}

// CreateBooking validates a submission and commits it against its date.
// The guest breakdown is checked against the live tier list and the date's
// capacity before anything is written.
func CreateBooking(req models.BookingRequest) (*models.BookingDetail, float64, error) {
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, 0, fmt.Errorf("invalid date format: %w", err)
	}

	cpf := SanitizeNumeric(req.CPF, 11)
	phone := SanitizeNumeric(req.Phone, 11)
	if cpf == "" {
		return nil, 0, fmt.Errorf("cpf must contain digits")
	}

	tiers := siteStore.Tiers()
	known := make(map[string]bool, len(tiers))
	for _, tier := range tiers {
		known[tier.ID] = true
	}

	sum := 0
	for tierID, count := range req.GuestBreakdown {
		if !known[tierID] {
			return nil, 0, fmt.Errorf("unknown age tier: %s", tierID)
		}
		if count < 0 {
			return nil, 0, fmt.Errorf("negative guest count for tier %s", tierID)
		}
		sum += count
	}
	if sum != req.TotalGuests {
		return nil, 0, fmt.Errorf("guest breakdown sums to %d, expected %d", sum, req.TotalGuests)
	}
	if req.TotalGuests < 1 {
		return nil, 0, fmt.Errorf("booking needs at least one guest")
	}

	id, err := generateBookingID()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to generate booking id: %w", err)
	}

	now := time.Now()
	booking := models.BookingDetail{
		ID:             id,
		Name:           req.Name,
		CPF:            cpf,
		Phone:          phone,
		Email:          req.Email,
		BirthDate:      req.BirthDate,
		TotalGuests:    req.TotalGuests,
		GuestBreakdown: req.GuestBreakdown,
		Timestamp:      now.Format("15:04"),
		Date:           req.Date,
		Paid:           false,
		CreatedAt:      now,
	}

	if err := siteStore.AddBooking(booking); err != nil {
		return nil, 0, err
	}

	log.Printf("Booking created: %s for %d guests on %s", booking.ID, booking.TotalGuests, booking.Date)

	return &booking, TotalPrice(tiers, booking.GuestBreakdown), nil
}

// GetBooking finds one booking by date and id
func GetBooking(date, bookingID string) (*models.BookingDetail, error) {
	for _, booking := range siteStore.DayBookings(date) {
		if booking.ID == bookingID {
			return &booking, nil
		}
	}
	return nil, store.ErrBookingNotFound
}

// LookupGuest scans all bookings for a CPF. The most recently submitted
// match becomes the prefill; matches on the selected date are listed
// separately so the client asks before taking another booking for it.
func LookupGuest(cpf, date string) models.LookupResponse {
	cpf = SanitizeNumeric(cpf, 11)
	matches := siteStore.FindByCPF(cpf)
	if cpf == "" || len(matches) == 0 {
		return models.LookupResponse{Found: false}
	}

	latest := matches[len(matches)-1]
	var sameDay []models.BookingDetail
	for _, booking := range matches {
		if booking.Date == date {
			sameDay = append(sameDay, booking)
		}
	}

	return models.LookupResponse{
		Found:   true,
		Prefill: &latest,
		History: matches,
		SameDay: sameDay,
	}
}
