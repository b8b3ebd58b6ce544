// Package status backs the order tracker page: confirmed bookings are
// recorded against the customer's phone number and looked up later.
package status

import (
	"context"
	"encoding/json"
	"fmt"

	"shoba/models"
	"shoba/services/wizard"
	"shoba/utils"

	"github.com/go-redis/redis/v8"
)

// ErrBookingNotFound is returned when no booking exists for a phone.
var ErrBookingNotFound = fmt.Errorf("no booking found for this number")

// ErrInvalidPhone is returned when the lookup number is not ten digits.
var ErrInvalidPhone = fmt.Errorf("enter a valid 10-digit number")

// demoRecord is the canned tracker record served in demo mode so the
// status page has something to show before any real booking exists.
var demoRecord = models.StatusRecord{
	ID:       "SHOBA-77312",
	Status:   models.OrderAssigned,
	Service:  "Deep Home Cleaning",
	Variant:  "3 BHK",
	Date:     "Today, Oct 24",
	Time:     "11:00 AM",
	Location: "HSR Layout, Bangalore",
	Expert:   "Manjunath G.",
	Rating:   "4.9/5",
	Total:    "₹6,999",
}

// StatusService records confirmed bookings and resolves tracker lookups.
type StatusService interface {
	Record(ctx context.Context, booking *models.Booking) error
	Lookup(ctx context.Context, phone string) (*models.StatusRecord, error)
}

// DefaultStatusService implements StatusService on the records cache.
type DefaultStatusService struct {
	Cache *redis.Client
	Demo  bool
}

// Record stores the tracker view of a confirmed booking, keyed by phone.
// A newer booking for the same number replaces the older one.
func (s *DefaultStatusService) Record(ctx context.Context, booking *models.Booking) error {
	record := models.StatusRecord{
		ID:       booking.ID,
		Status:   models.OrderConfirmed,
		Service:  booking.ServiceTitle,
		Variant:  booking.VariantLabel,
		Date:     booking.Date,
		Time:     booking.Time,
		Location: booking.LocationName + ", Bangalore",
		Total:    fmt.Sprintf("₹%d", booking.Breakdown.Total),
	}
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal status record: %w", err)
	}
	key := utils.OrderRecordPrefix + booking.Phone
	if err := s.Cache.Set(ctx, key, data, utils.OrderRecordTTL).Err(); err != nil {
		return fmt.Errorf("failed to store status record: %w", err)
	}
	return nil
}

// Lookup resolves the most recent booking recorded for a phone number.
// The number must normalize to exactly ten digits before any lookup is
// issued. Demo mode serves the canned record when nothing is stored.
func (s *DefaultStatusService) Lookup(ctx context.Context, phone string) (*models.StatusRecord, error) {
	digits := wizard.NormalizePhone(phone)
	if len(digits) != 10 {
		return nil, ErrInvalidPhone
	}

	data, err := s.Cache.Get(ctx, utils.OrderRecordPrefix+digits).Result()
	if err == redis.Nil {
		if s.Demo {
			record := demoRecord
			return &record, nil
		}
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load status record: %w", err)
	}

	var record models.StatusRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, fmt.Errorf("failed to parse status record: %w", err)
	}
	return &record, nil
}
