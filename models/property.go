package models

// Property is a catalog entry shown to the concierge. The booking flow does
// not use these; they only feed the assistant's persona prompt and the
// catalog endpoint.
type Property struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Location      string   `json:"location"`
	PricePerNight float64  `json:"price_per_night"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	Amenities     []string `json:"amenities"`
	Type          string   `json:"type"` // Villa, Apartment, Hotel, Cabin
}
