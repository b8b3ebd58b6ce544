package models

import "time"

// WizardStep identifies the current step of the booking wizard.
type WizardStep int

const (
	StepConfigureService WizardStep = 1
	StepSchedule         WizardStep = 2
	StepContactAddons    WizardStep = 3
	StepReview           WizardStep = 4
)

// SlotStatus is the derived bookability of a time slot on a given date.
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotLimited   SlotStatus = "limited"
	SlotFull      SlotStatus = "full"
	SlotPast      SlotStatus = "past"
)

// Bookable reports whether a slot with this status may be selected.
func (s SlotStatus) Bookable() bool {
	return s == SlotAvailable || s == SlotLimited
}

// DerivedSlot pairs a catalog time slot with its status for one date.
// Never stored; recomputed whenever the date changes.
type DerivedSlot struct {
	TimeSlot
	Status SlotStatus `json:"status"`
}

// BookingDraft is the mutable form state owned by one wizard session.
// It lives only in the session cache and is discarded on confirmation.
type BookingDraft struct {
	ServiceID    string   `json:"serviceId"`
	VariantLabel string   `json:"variantLabel"`
	LocationID   string   `json:"locationId"`
	Date         string   `json:"date"` // YYYY-MM-DD
	Time         string   `json:"time"` // slot display form or empty
	Name         string   `json:"name"`
	Phone        string   `json:"phone"`
	Address      string   `json:"address"`
	Addons       []string `json:"addons"`
}

// HasAddon reports whether the addon id is currently selected.
func (d *BookingDraft) HasAddon(id string) bool {
	for _, a := range d.Addons {
		if a == id {
			return true
		}
	}
	return false
}

// WizardSession holds a draft and its step between wizard requests.
type WizardSession struct {
	SessionID string       `json:"sessionId"`
	Step      WizardStep   `json:"step"`
	Draft     BookingDraft `json:"draft"`
	CreatedAt time.Time    `json:"createdAt"`
}

// PriceBreakdown is derived from the draft, never stored independently.
// Amounts are in rupees. Indicative marks totals that exclude an
// inspection-quoted base price.
type PriceBreakdown struct {
	Base        int  `json:"base"`
	AddonsTotal int  `json:"addonsTotal"`
	Subtotal    int  `json:"subtotal"`
	Discount    int  `json:"discount"`
	Tax         int  `json:"tax"`
	Total       int  `json:"total"`
	Indicative  bool `json:"indicative,omitempty"`
}

// DateOption is one selectable day in the wizard's booking window.
type DateOption struct {
	Day      string `json:"day"`   // e.g. "Mon"
	Date     int    `json:"date"`  // day of month
	Month    string `json:"month"` // e.g. "Oct"
	FullDate string `json:"fullDate"`
	IsToday  bool   `json:"isToday"`
}

// Booking is the confirmation record produced when a wizard session is
// confirmed. The breakdown is frozen at confirmation time.
type Booking struct {
	ID           string         `json:"id"`
	ServiceID    string         `json:"serviceId"`
	ServiceTitle string         `json:"serviceTitle"`
	VariantLabel string         `json:"variantLabel"`
	LocationID   string         `json:"locationId"`
	LocationName string         `json:"locationName"`
	Date         string         `json:"date"`
	Time         string         `json:"time"`
	Name         string         `json:"name"`
	Phone        string         `json:"phone"`
	Address      string         `json:"address"`
	Addons       []string       `json:"addons"`
	Breakdown    PriceBreakdown `json:"breakdown"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// WizardResponse is what the wizard endpoints return: the session plus
// the values derived from the current draft.
type WizardResponse struct {
	Session   *WizardSession `json:"session"`
	Slots     []DerivedSlot  `json:"slots,omitempty"`
	Breakdown PriceBreakdown `json:"breakdown"`
}
