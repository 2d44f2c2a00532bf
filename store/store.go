package store

import (
	"errors"
	"sync"
	"time"

	"reserva-eva/models"
)

var (
	ErrDayBlocked      = errors.New("date is blocked for bookings")
	ErrDayFull         = errors.New("date has no remaining capacity")
	ErrTierNotFound    = errors.New("age tier not found")
	ErrBookingNotFound = errors.New("booking not found")
)

// bookingRef locates a booking inside the days map, in submission order
type bookingRef struct {
	date  string
	index int
}

// Store is the authoritative in-memory state of the property. All reads and
// writes go through it; day capacity is checked and committed under a single
// write lock so two submissions cannot both slip under the limit.
type Store struct {
	mu sync.RWMutex

	globalLimit int
	tiers       []models.AgeTier
	days        map[string]models.DayConfig

	submissions []bookingRef
}

// New creates a store seeded with the default tiers and day limit
func New(defaultLimit int, tiers []models.AgeTier) *Store {
	return &Store{
		globalLimit: defaultLimit,
		tiers:       append([]models.AgeTier(nil), tiers...),
		days:        make(map[string]models.DayConfig),
	}
}

// DefaultBlocked reports whether a date with no explicit override is
// blocked: weekdays are, Saturday and Sunday are open. Unparseable dates
// count as blocked.
func DefaultBlocked(date string) bool {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return true
	}
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// EffectiveDay resolves a date to its configuration, falling back to the
// weekday-derived default for dates never written to. The backing map stays
// sparse; defaults are never materialized here.
func (s *Store) EffectiveDay(date string) models.DayConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.effectiveDayLocked(date)
}

func (s *Store) effectiveDayLocked(date string) models.DayConfig {
	if day, ok := s.days[date]; ok {
		day.Bookings = append([]models.BookingDetail(nil), day.Bookings...)
		return day
	}
	return models.DayConfig{
		IsBlocked: DefaultBlocked(date),
		Limit:     s.globalLimit,
	}
}

// GlobalLimit returns the default per-day capacity
func (s *Store) GlobalLimit() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.globalLimit
}

// Tiers returns a copy of the current age tiers
func (s *Store) Tiers() []models.AgeTier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.AgeTier(nil), s.tiers...)
}

// Snapshot returns a deep copy of the whole site configuration
func (s *Store) Snapshot() models.SiteConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()

	days := make(map[string]models.DayConfig, len(s.days))
	for date, day := range s.days {
		day.Bookings = append([]models.BookingDetail(nil), day.Bookings...)
		days[date] = day
	}
	return models.SiteConfig{
		GlobalLimitPerDay: s.globalLimit,
		AgeTiers:          append([]models.AgeTier(nil), s.tiers...),
		Days:              days,
	}
}

// AddBooking appends a booking to its date, creating the day lazily and
// keeping occupancy equal to the sum of guests over the day's bookings.
// The capacity check and the commit happen under the same lock.
func (s *Store) AddBooking(booking models.BookingDetail) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	day, ok := s.days[booking.Date]
	if !ok {
		day = models.DayConfig{
			IsBlocked: DefaultBlocked(booking.Date),
			Limit:     s.globalLimit,
		}
	}

	if day.IsBlocked {
		return ErrDayBlocked
	}
	if day.CurrentBookings+booking.TotalGuests > day.Limit {
		return ErrDayFull
	}

	day.Bookings = append(day.Bookings, booking)
	day.CurrentBookings += booking.TotalGuests
	s.days[booking.Date] = day
	s.submissions = append(s.submissions, bookingRef{date: booking.Date, index: len(day.Bookings) - 1})

	return nil
}

// SetDayStatus sets the blocked flag on every given date, creating absent
// days with the global limit and zero occupancy
func (s *Store) SetDayStatus(dates []string, blocked bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, date := range dates {
		day, ok := s.days[date]
		if !ok {
			day = models.DayConfig{Limit: s.globalLimit}
		}
		day.IsBlocked = blocked
		s.days[date] = day
	}
}

// SetLimit changes capacity limits. With no dates it updates the global
// default and retroactively overwrites every existing day; with dates it
// touches only those days, creating absent ones with their weekday default.
func (s *Store) SetLimit(dates []string, limit int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(dates) == 0 {
		s.globalLimit = limit
		for date, day := range s.days {
			day.Limit = limit
			s.days[date] = day
		}
		return
	}

	for _, date := range dates {
		day, ok := s.days[date]
		if !ok {
			day = models.DayConfig{IsBlocked: DefaultBlocked(date)}
		}
		day.Limit = limit
		s.days[date] = day
	}
}

// UpdateTier replaces one tier's label, price and age range by id. Existing
// bookings keep their breakdowns; they are never revalidated.
func (s *Store) UpdateTier(id string, req models.TierUpdateRequest) (models.AgeTier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, tier := range s.tiers {
		if tier.ID != id {
			continue
		}
		tier.Label = req.Label
		tier.MinAge = *req.MinAge
		tier.MaxAge = req.MaxAge
		tier.Price = *req.Price
		s.tiers[i] = tier
		return tier, nil
	}
	return models.AgeTier{}, ErrTierNotFound
}

// SetPayment flips one booking's payment-confirmed flag by (date, id)
func (s *Store) SetPayment(date, bookingID string, paid bool) (models.BookingDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	day, ok := s.days[date]
	if !ok {
		return models.BookingDetail{}, ErrBookingNotFound
	}
	for i, booking := range day.Bookings {
		if booking.ID != bookingID {
			continue
		}
		booking.Paid = paid
		day.Bookings[i] = booking
		s.days[date] = day
		return booking, nil
	}
	return models.BookingDetail{}, ErrBookingNotFound
}

// DayBookings returns the bookings of one date in submission order
func (s *Store) DayBookings(date string) []models.BookingDetail {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.BookingDetail(nil), s.days[date].Bookings...)
}

// FindByCPF scans every day's bookings for the identifier, in system-wide
// submission order (earliest first)
func (s *Store) FindByCPF(cpf string) []models.BookingDetail {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []models.BookingDetail
	for _, ref := range s.submissions {
		booking := s.days[ref.date].Bookings[ref.index]
		if booking.CPF == cpf {
			matches = append(matches, booking)
		}
	}
	return matches
}
