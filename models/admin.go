package models

// LoginRequest carries the admin credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the signed session token
type LoginResponse struct {
	Token string `json:"token"`
}

// DayStatusRequest blocks or unblocks a batch of dates
type DayStatusRequest struct {
	Dates   []string `json:"dates" binding:"required,min=1"`
	Blocked *bool    `json:"blocked" binding:"required"`
}

// DayLimitRequest changes the capacity limit. With no dates selected the
// global default changes and every existing day is overwritten; with dates
// selected only those days change.
type DayLimitRequest struct {
	Dates []string `json:"dates"`
	Limit *int     `json:"limit" binding:"required"`
}

// PaymentRequest sets a booking's payment-confirmed flag
type PaymentRequest struct {
	Paid *bool `json:"paid" binding:"required"`
}
