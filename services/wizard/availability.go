package wizard

import (
	"time"

	"shoba/models"
)

const dateLayout = "2006-01-02"

// ComputeSlotStatuses derives the bookability of each slot for one date.
// The derivation is deliberately deterministic: the same date always
// yields the same pattern, simulating variable capacity without a real
// scheduling backend. The seed is the byte sum of the YYYY-MM-DD string;
// (seed+index)%10 maps to full (<2), limited (<4) or available. Slots on
// the current day whose hour falls within the next hour are past: too
// little lead time to dispatch a crew.
func ComputeSlotStatuses(date string, slots []models.TimeSlot, now time.Time) []models.DerivedSlot {
	isToday := date == now.Format(dateLayout)

	seed := 0
	for _, ch := range []byte(date) {
		seed += int(ch)
	}

	out := make([]models.DerivedSlot, 0, len(slots))
	for i, slot := range slots {
		status := models.SlotAvailable
		if isToday && slot.Hour <= now.Hour()+1 {
			status = models.SlotPast
		} else {
			switch pseudoRandom := (seed + i) % 10; {
			case pseudoRandom < 2:
				status = models.SlotFull
			case pseudoRandom < 4:
				status = models.SlotLimited
			}
		}
		out = append(out, models.DerivedSlot{TimeSlot: slot, Status: status})
	}
	return out
}
