package wizard

import (
	"testing"
	"time"

	"shoba/catalog"
	"shoba/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSlotStatusesDeterministic(t *testing.T) {
	now := time.Date(2026, 10, 20, 10, 0, 0, 0, time.UTC)

	first := ComputeSlotStatuses("2026-10-24", catalog.TimeSlots, now)
	second := ComputeSlotStatuses("2026-10-24", catalog.TimeSlots, now)

	assert.Equal(t, first, second)
}

func TestComputeSlotStatusesFutureDate(t *testing.T) {
	// Byte sum of "2026-10-24" is 491, so slot i maps to (491+i)%10.
	now := time.Date(2026, 10, 20, 10, 0, 0, 0, time.UTC)

	slots := ComputeSlotStatuses("2026-10-24", catalog.TimeSlots, now)
	require.Len(t, slots, len(catalog.TimeSlots))

	want := []models.SlotStatus{
		models.SlotFull,      // (491+0)%10 = 1
		models.SlotLimited,   // 2
		models.SlotLimited,   // 3
		models.SlotAvailable, // 4
		models.SlotAvailable, // 5
	}
	for i, slot := range slots {
		assert.Equalf(t, want[i], slot.Status, "slot %s", slot.Time)
		assert.NotEqual(t, models.SlotPast, slot.Status, "future dates never have past slots")
	}
}

func TestComputeSlotStatusesPastOnCurrentDay(t *testing.T) {
	// At 10:00 everything up to the 11:00 slot has too little lead time.
	now := time.Date(2026, 10, 24, 10, 0, 0, 0, time.UTC)

	slots := ComputeSlotStatuses("2026-10-24", catalog.TimeSlots, now)
	require.Len(t, slots, 5)

	assert.Equal(t, models.SlotPast, slots[0].Status)
	assert.Equal(t, models.SlotPast, slots[1].Status)
	assert.Equal(t, models.SlotLimited, slots[2].Status)   // (491+2)%10 = 3
	assert.Equal(t, models.SlotAvailable, slots[3].Status) // 4
	assert.Equal(t, models.SlotAvailable, slots[4].Status) // 5
}

func TestComputeSlotStatusesEveningAllPast(t *testing.T) {
	now := time.Date(2026, 10, 24, 18, 30, 0, 0, time.UTC)

	for _, slot := range ComputeSlotStatuses("2026-10-24", catalog.TimeSlots, now) {
		assert.Equalf(t, models.SlotPast, slot.Status, "slot %s", slot.Time)
	}
}

func TestSlotStatusBookable(t *testing.T) {
	assert.True(t, models.SlotAvailable.Bookable())
	assert.True(t, models.SlotLimited.Bookable())
	assert.False(t, models.SlotFull.Bookable())
	assert.False(t, models.SlotPast.Bookable())
}
