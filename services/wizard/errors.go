package wizard

import "fmt"

// WizardError is a typed service error with a stable code.
type WizardError struct {
	Code    string
	Message string
}

func (e *WizardError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &WizardError{
		Code:    "validationError",
		Message: msg,
	}
}

// ErrSessionNotFound is returned when a session id is unknown or expired.
var ErrSessionNotFound = &WizardError{
	Code:    "sessionNotFound",
	Message: "booking session not found or expired",
}

// ErrNoPlaceableLocation is returned when no catalog location carries map
// coordinates.
var ErrNoPlaceableLocation = &WizardError{
	Code:    "noPlaceableLocation",
	Message: "no location with map coordinates available",
}
