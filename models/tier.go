package models

// AgeTier represents a pricing bracket keyed by guest age range
type AgeTier struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	MinAge int     `json:"min_age"`
	MaxAge *int    `json:"max_age"` // nil for "and above"
	Price  float64 `json:"price"`
}

// TierUpdateRequest carries an admin edit for a single tier.
// MaxAge nil means the bracket is unbounded.
type TierUpdateRequest struct {
	Label  string   `json:"label" binding:"required"`
	MinAge *int     `json:"min_age" binding:"required"`
	MaxAge *int     `json:"max_age"`
	Price  *float64 `json:"price" binding:"required"`
}
