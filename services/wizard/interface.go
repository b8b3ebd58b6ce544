package wizard

import (
	"context"
	"time"

	"shoba/models"

	"github.com/go-redis/redis/v8"
)

// DraftPatch is a partial update of the booking draft. Nil fields are
// left untouched; every mutation goes through its named setter logic so
// the reactive invariants run on each change.
type DraftPatch struct {
	ServiceID    *string        `json:"serviceId,omitempty"`
	VariantLabel *string        `json:"variantLabel,omitempty"`
	LocationID   *string        `json:"locationId,omitempty"`
	Pin          *models.Coords `json:"pin,omitempty"` // map pin drop, resolved to the nearest location
	Date         *string        `json:"date,omitempty"`
	Time         *string        `json:"time,omitempty"` // empty string clears the selection
	Name         *string        `json:"name,omitempty"`
	Phone        *string        `json:"phone,omitempty"`
	Address      *string        `json:"address,omitempty"`
	ToggleAddon  *string        `json:"toggleAddon,omitempty"`
}

// WizardService defines the interface for managing a stateful booking
// wizard session.
type WizardService interface {
	StartSession(ctx context.Context, serviceID, locationID string) (*models.WizardResponse, error)
	GetSession(ctx context.Context, sessionID string) (*models.WizardResponse, error)
	UpdateDraft(ctx context.Context, sessionID string, patch DraftPatch) (*models.WizardResponse, error)
	Next(ctx context.Context, sessionID string) (*models.WizardResponse, error)
	Back(ctx context.Context, sessionID string) (*models.WizardResponse, error)
	Confirm(ctx context.Context, sessionID string) (*models.Booking, error)
	Cancel(ctx context.Context, sessionID string) error
	SlotStatuses(date string) ([]models.DerivedSlot, error)
	DateWindow() []models.DateOption
}

// OrderRecorder receives confirmed bookings for later status lookup.
type OrderRecorder interface {
	Record(ctx context.Context, booking *models.Booking) error
}

// DefaultWizardService implements WizardService on top of a Redis
// session cache.
type DefaultWizardService struct {
	Cache   *redis.Client
	Records OrderRecorder
	Now     func() time.Time // injectable clock; defaults to time.Now
}

func (s *DefaultWizardService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
