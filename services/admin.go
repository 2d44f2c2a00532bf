package services

import (
	"fmt"
	"log"
	"time"

	"reserva-eva/models"
)

func validateDates(dates []string) error {
	for _, date := range dates {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return fmt.Errorf("invalid date %q: %w", date, err)
		}
	}
	return nil
}

// SiteSnapshot returns the whole site configuration for the admin panel
func SiteSnapshot() models.SiteConfig {
	return siteStore.Snapshot()
}

// Tiers returns the current pricing tiers
func Tiers() []models.AgeTier {
	return siteStore.Tiers()
}

// SetDayStatus blocks or unblocks a batch of dates
func SetDayStatus(req models.DayStatusRequest) error {
	if err := validateDates(req.Dates); err != nil {
		return err
	}
	siteStore.SetDayStatus(req.Dates, *req.Blocked)
	log.Printf("Day status change: %d dates, blocked=%v", len(req.Dates), *req.Blocked)
	return nil
}

// SetDayLimit changes the capacity limit, globally or for selected dates
func SetDayLimit(req models.DayLimitRequest) error {
	if *req.Limit < 0 {
		return fmt.Errorf("limit must not be negative")
	}
	if err := validateDates(req.Dates); err != nil {
		return err
	}
	siteStore.SetLimit(req.Dates, *req.Limit)
	if len(req.Dates) == 0 {
		log.Printf("Global day limit changed to %d", *req.Limit)
	} else {
		log.Printf("Day limit changed to %d for %d dates", *req.Limit, len(req.Dates))
	}
	return nil
}

// UpdateTier edits one pricing tier by id
func UpdateTier(id string, req models.TierUpdateRequest) (models.AgeTier, error) {
	if *req.Price < 0 {
		return models.AgeTier{}, fmt.Errorf("price must not be negative")
	}
	return siteStore.UpdateTier(id, req)
}

// SetPayment flips one booking's payment-confirmed flag
func SetPayment(date, bookingID string, paid bool) (models.BookingDetail, error) {
	booking, err := siteStore.SetPayment(date, bookingID, paid)
	if err != nil {
		return models.BookingDetail{}, err
	}
	log.Printf("Payment status for booking %s on %s set to paid=%v", bookingID, date, paid)
	return booking, nil
}
