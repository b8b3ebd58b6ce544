// File: wizard/session.go
package wizard

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"shoba/catalog"
	"shoba/models"
	"shoba/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	bookingWindowDays = 14
	bookingIDPrefix   = "SHOBA-"
)

// StartSession creates a new wizard session, optionally pre-seeded from
// incoming service/location identifiers, and stores it in Redis. Unknown
// seed ids are ignored and fall back to the defaults: absence is a valid
// way to arrive at the booking page.
func (s *DefaultWizardService) StartSession(ctx context.Context, serviceID, locationID string) (*models.WizardResponse, error) {
	now := s.now()

	draft := models.BookingDraft{
		Date:   now.Format(dateLayout),
		Addons: []string{},
	}

	svc := catalog.ServiceByID(serviceID)
	if svc == nil {
		svc = &catalog.Services[0]
	}
	draft.ServiceID = svc.ID
	draft.VariantLabel = svc.Variants[0].Label

	if loc := catalog.LocationByID(locationID); loc != nil {
		draft.LocationID = loc.ID
	}

	session := &models.WizardSession{
		SessionID: uuid.New().String(),
		Step:      models.StepConfigureService,
		Draft:     draft,
		CreatedAt: now,
	}

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return s.respond(session), nil
}

// GetSession returns the session with its current derived values.
func (s *DefaultWizardService) GetSession(ctx context.Context, sessionID string) (*models.WizardResponse, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.respond(session), nil
}

// UpdateDraft applies a partial draft update. Each field runs through its
// setter so the reactive invariants hold after every mutation: a date
// change clears a time whose slot became past or full, and a service
// change re-defaults the variant when the chosen label no longer exists.
func (s *DefaultWizardService) UpdateDraft(ctx context.Context, sessionID string, patch DraftPatch) (*models.WizardResponse, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	draft := &session.Draft

	if patch.ServiceID != nil {
		svc := catalog.ServiceByID(*patch.ServiceID)
		if svc == nil {
			return nil, NewValidationError(fmt.Sprintf("unknown service %q", *patch.ServiceID))
		}
		draft.ServiceID = svc.ID
		if svc.Variant(draft.VariantLabel) == nil {
			draft.VariantLabel = svc.Variants[0].Label
		}
	}

	if patch.VariantLabel != nil {
		svc := catalog.ServiceByID(draft.ServiceID)
		if svc == nil || svc.Variant(*patch.VariantLabel) == nil {
			return nil, NewValidationError(fmt.Sprintf("unknown package %q", *patch.VariantLabel))
		}
		draft.VariantLabel = *patch.VariantLabel
	}

	if patch.LocationID != nil {
		loc := catalog.LocationByID(*patch.LocationID)
		if loc == nil {
			return nil, NewValidationError(fmt.Sprintf("unknown location %q", *patch.LocationID))
		}
		draft.LocationID = loc.ID
	}

	if patch.Pin != nil {
		closest, err := NearestLocation(patch.Pin.X, patch.Pin.Y, catalog.Locations)
		if err != nil {
			return nil, err
		}
		draft.LocationID = closest.ID
	}

	if patch.Date != nil {
		if err := validateDateInWindow(*patch.Date, s.now()); err != nil {
			return nil, err
		}
		draft.Date = *patch.Date
		// Re-derive slot statuses for the new date; a selection that is
		// no longer bookable must not survive the date change.
		if draft.Time != "" {
			if status := slotStatusFor(draft.Date, draft.Time, s.now()); status == nil || !status.Bookable() {
				draft.Time = ""
			}
		}
	}

	if patch.Time != nil {
		if *patch.Time == "" {
			draft.Time = ""
		} else {
			status := slotStatusFor(draft.Date, *patch.Time, s.now())
			if status == nil {
				return nil, NewValidationError(fmt.Sprintf("unknown time slot %q", *patch.Time))
			}
			if !status.Bookable() {
				return nil, NewValidationError(fmt.Sprintf("time slot %q is not available on %s", *patch.Time, draft.Date))
			}
			draft.Time = *patch.Time
		}
	}

	if patch.Name != nil {
		draft.Name = *patch.Name
	}
	if patch.Phone != nil {
		draft.Phone = NormalizePhone(*patch.Phone)
	}
	if patch.Address != nil {
		draft.Address = *patch.Address
	}

	if patch.ToggleAddon != nil {
		if catalog.AddonByID(*patch.ToggleAddon) == nil {
			return nil, NewValidationError(fmt.Sprintf("unknown addon %q", *patch.ToggleAddon))
		}
		toggleAddon(draft, *patch.ToggleAddon)
	}

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return s.respond(session), nil
}

// Next advances the wizard one step after validating the current one.
func (s *DefaultWizardService) Next(ctx context.Context, sessionID string) (*models.WizardResponse, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step >= models.StepReview {
		return nil, NewValidationError("already at review; confirm the booking to finish")
	}
	if err := guardStep(session, s.now()); err != nil {
		return nil, err
	}
	session.Step++
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return s.respond(session), nil
}

// Back moves the wizard one step backwards. Always permitted above the
// first step and never clears entered data.
func (s *DefaultWizardService) Back(ctx context.Context, sessionID string) (*models.WizardResponse, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step > models.StepConfigureService {
		session.Step--
	}
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return s.respond(session), nil
}

// Confirm finalizes the booking from the review step: it assigns the
// booking id, freezes the price breakdown, hands the record to the
// status tracker, and discards the session.
func (s *DefaultWizardService) Confirm(ctx context.Context, sessionID string) (*models.Booking, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepReview {
		return nil, NewValidationError("booking can only be confirmed from the review step")
	}

	draft := session.Draft
	svc := catalog.ServiceByID(draft.ServiceID)
	loc := catalog.LocationByID(draft.LocationID)
	if svc == nil || loc == nil {
		return nil, NewValidationError("session references unknown catalog entries")
	}

	booking := &models.Booking{
		ID:           newBookingID(),
		ServiceID:    svc.ID,
		ServiceTitle: svc.Title,
		VariantLabel: draft.VariantLabel,
		LocationID:   loc.ID,
		LocationName: loc.Name,
		Date:         draft.Date,
		Time:         draft.Time,
		Name:         draft.Name,
		Phone:        draft.Phone,
		Address:      draft.Address,
		Addons:       draft.Addons,
		Breakdown:    s.breakdown(&draft),
		CreatedAt:    s.now(),
	}

	if s.Records != nil {
		if err := s.Records.Record(ctx, booking); err != nil {
			// The confirmation itself succeeded; losing the tracker copy
			// only degrades the status page.
			utils.GetLogger().Warn("Confirm: failed to record booking for status lookup",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}

	s.Cache.Del(ctx, utils.SessionCachePrefix+sessionID)
	return booking, nil
}

// Cancel discards the session explicitly.
func (s *DefaultWizardService) Cancel(ctx context.Context, sessionID string) error {
	if err := s.Cache.Del(ctx, utils.SessionCachePrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to cancel wizard session: %w", err)
	}
	return nil
}

// SlotStatuses derives the slot grid for one date in the booking window.
func (s *DefaultWizardService) SlotStatuses(date string) ([]models.DerivedSlot, error) {
	now := s.now()
	if err := validateDateInWindow(date, now); err != nil {
		return nil, err
	}
	return ComputeSlotStatuses(date, catalog.TimeSlots, now), nil
}

// DateWindow returns the selectable days, today first.
func (s *DefaultWizardService) DateWindow() []models.DateOption {
	return dateWindow(s.now())
}

func (s *DefaultWizardService) respond(session *models.WizardSession) *models.WizardResponse {
	resp := &models.WizardResponse{
		Session:   session,
		Breakdown: s.breakdown(&session.Draft),
	}
	if session.Draft.Date != "" {
		resp.Slots = ComputeSlotStatuses(session.Draft.Date, catalog.TimeSlots, s.now())
	}
	return resp
}

func (s *DefaultWizardService) breakdown(draft *models.BookingDraft) models.PriceBreakdown {
	var variant *models.ServiceVariant
	if svc := catalog.ServiceByID(draft.ServiceID); svc != nil {
		variant = svc.Variant(draft.VariantLabel)
	}
	return ComputeBreakdown(variant, catalog.Addons, draft.Addons)
}

func (s *DefaultWizardService) loadSession(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	data, err := s.Cache.Get(ctx, utils.SessionCachePrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load wizard session: %w", err)
	}
	var session models.WizardSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse wizard session: %w", err)
	}
	return &session, nil
}

func (s *DefaultWizardService) saveSession(ctx context.Context, session *models.WizardSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal wizard session: %w", err)
	}
	if err := s.Cache.Set(ctx, utils.SessionCachePrefix+session.SessionID, data, utils.SessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store wizard session: %w", err)
	}
	return nil
}

func toggleAddon(draft *models.BookingDraft, id string) {
	for i, a := range draft.Addons {
		if a == id {
			draft.Addons = append(draft.Addons[:i], draft.Addons[i+1:]...)
			return
		}
	}
	draft.Addons = append(draft.Addons, id)
}

func dateWindow(now time.Time) []models.DateOption {
	out := make([]models.DateOption, 0, bookingWindowDays)
	for i := 0; i < bookingWindowDays; i++ {
		d := now.AddDate(0, 0, i)
		out = append(out, models.DateOption{
			Day:      d.Format("Mon"),
			Date:     d.Day(),
			Month:    d.Format("Jan"),
			FullDate: d.Format(dateLayout),
			IsToday:  i == 0,
		})
	}
	return out
}

func newBookingID() string {
	return fmt.Sprintf("%s%d", bookingIDPrefix, 10000+rand.Intn(90000))
}
