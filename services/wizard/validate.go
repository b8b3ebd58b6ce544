package wizard

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"shoba/catalog"
	"shoba/models"
)

const (
	minNameLength    = 3
	minAddressLength = 15
)

var (
	nonDigitPattern = regexp.MustCompile(`\D`)
	mobilePattern   = regexp.MustCompile(`^[6-9]\d{9}$`)
)

// NormalizePhone strips every non-digit character and truncates to ten
// digits. Applied on every phone mutation, not just on validation.
func NormalizePhone(raw string) string {
	digits := nonDigitPattern.ReplaceAllString(raw, "")
	if len(digits) > 10 {
		digits = digits[:10]
	}
	return digits
}

// ValidName requires at least three characters after trimming.
func ValidName(name string) bool {
	return len(strings.TrimSpace(name)) >= minNameLength
}

// ValidPhone requires a ten-digit Indian mobile number starting 6-9.
func ValidPhone(phone string) bool {
	return mobilePattern.MatchString(phone)
}

// ValidAddress requires at least fifteen characters after trimming.
func ValidAddress(address string) bool {
	return len(strings.TrimSpace(address)) >= minAddressLength
}

// guardStep reports whether the draft satisfies the exit conditions of
// the session's current step. Pure: repeated calls without a mutation in
// between return the same answer.
func guardStep(sess *models.WizardSession, now time.Time) error {
	draft := &sess.Draft
	switch sess.Step {
	case models.StepConfigureService:
		svc := catalog.ServiceByID(draft.ServiceID)
		if svc == nil {
			return NewValidationError("select a service")
		}
		if svc.Variant(draft.VariantLabel) == nil {
			return NewValidationError("select a package")
		}
		if catalog.LocationByID(draft.LocationID) == nil {
			return NewValidationError("select a service area")
		}
	case models.StepSchedule:
		if err := validateDateInWindow(draft.Date, now); err != nil {
			return err
		}
		if draft.Time == "" {
			return NewValidationError("select an arrival time")
		}
		if status := slotStatusFor(draft.Date, draft.Time, now); status == nil || !status.Bookable() {
			return NewValidationError("selected time slot is no longer available")
		}
	case models.StepContactAddons:
		if !ValidName(draft.Name) {
			return NewValidationError("name must be at least 3 characters")
		}
		if !ValidPhone(draft.Phone) {
			return NewValidationError("enter a valid 10-digit mobile number")
		}
		if !ValidAddress(draft.Address) {
			return NewValidationError(fmt.Sprintf("address must be at least %d characters", minAddressLength))
		}
	case models.StepReview:
		// Review has no form of its own; confirmation is a separate call.
	}
	return nil
}

func validateDateInWindow(date string, now time.Time) error {
	if date == "" {
		return NewValidationError("select a date")
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return NewValidationError("date must be YYYY-MM-DD")
	}
	for _, d := range dateWindow(now) {
		if d.FullDate == date {
			return nil
		}
	}
	return NewValidationError(fmt.Sprintf("date must be within the next %d days", bookingWindowDays))
}

// slotStatusFor recomputes the status of the named slot on the given
// date. Returns nil when the display time is not in the catalog.
func slotStatusFor(date, display string, now time.Time) *models.SlotStatus {
	if catalog.SlotByTime(display) == nil {
		return nil
	}
	for _, s := range ComputeSlotStatuses(date, catalog.TimeSlots, now) {
		if s.Time == display {
			return &s.Status
		}
	}
	return nil
}
