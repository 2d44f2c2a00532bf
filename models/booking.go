package models

import "time"

// BookingDetail represents one guest-party reservation for a single day
type BookingDetail struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	CPF            string         `json:"cpf"`
	Phone          string         `json:"phone"`
	Email          string         `json:"email"`
	BirthDate      string         `json:"birth_date"`
	TotalGuests    int            `json:"total_guests"`
	GuestBreakdown map[string]int `json:"guest_breakdown"` // count per AgeTier ID
	Timestamp      string         `json:"timestamp"`       // display-only HH:MM
	Date           string         `json:"date"`            // "YYYY-MM-DD"
	Paid           bool           `json:"paid"`
	CreatedAt      time.Time      `json:"created_at"`
}

// DayConfig holds per-date state. Absent dates fall back to the
// weekday-derived default, see store.EffectiveDay.
type DayConfig struct {
	IsBlocked       bool            `json:"is_blocked"`
	Limit           int             `json:"limit"`
	CurrentBookings int             `json:"current_bookings"` // total guests committed
	Bookings        []BookingDetail `json:"bookings,omitempty"`
}

// SiteConfig is the full in-memory state of the property
type SiteConfig struct {
	GlobalLimitPerDay int                  `json:"global_limit_per_day"`
	AgeTiers          []AgeTier            `json:"age_tiers"`
	Days              map[string]DayConfig `json:"days"`
}

// DayAvailability is the calendar view of a single date
type DayAvailability struct {
	Date            string `json:"date"`
	IsBlocked       bool   `json:"is_blocked"`
	Limit           int    `json:"limit"`
	CurrentBookings int    `json:"current_bookings"`
	Available       bool   `json:"available"`
}

// BookingRequest represents a booking submission
type BookingRequest struct {
	Date           string         `json:"date" binding:"required"`
	Name           string         `json:"name" binding:"required"`
	CPF            string         `json:"cpf" binding:"required"`
	Phone          string         `json:"phone" binding:"required"`
	Email          string         `json:"email" binding:"required"`
	BirthDate      string         `json:"birth_date" binding:"required"`
	TotalGuests    int            `json:"total_guests" binding:"required"`
	GuestBreakdown map[string]int `json:"guest_breakdown" binding:"required"`
}

// BookingResponse represents a booking submission response
type BookingResponse struct {
	Success    bool           `json:"success"`
	Message    string         `json:"message"`
	Booking    *BookingDetail `json:"booking,omitempty"`
	TotalPrice float64        `json:"total_price,omitempty"`
	ShareLink  string         `json:"share_link,omitempty"`
}

// LookupResponse is the returning-guest lookup result for a CPF.
// Prefill is the most recently submitted matching booking; SameDay holds
// the matches already placed on the selected date, which the client must
// explicitly override before showing the form again.
type LookupResponse struct {
	Found   bool            `json:"found"`
	Prefill *BookingDetail  `json:"prefill,omitempty"`
	History []BookingDetail `json:"history,omitempty"`
	SameDay []BookingDetail `json:"same_day,omitempty"`
}
