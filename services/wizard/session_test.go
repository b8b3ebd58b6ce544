package wizard

import (
	"context"
	"regexp"
	"testing"
	"time"

	"shoba/models"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 08:00 on 2026-08-31: only the 09:00 slot is within the no-lead-time
// window, and the date's seed (496) makes the 06:00 PM slot full.
var testNow = time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC)

type capturingRecorder struct {
	bookings []*models.Booking
}

func (r *capturingRecorder) Record(ctx context.Context, b *models.Booking) error {
	r.bookings = append(r.bookings, b)
	return nil
}

func newTestService(t *testing.T) (*DefaultWizardService, *capturingRecorder) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	recorder := &capturingRecorder{}
	svc := &DefaultWizardService{
		Cache:   client,
		Records: recorder,
		Now:     func() time.Time { return testNow },
	}
	return svc, recorder
}

func strPtr(s string) *string { return &s }

func TestStartSessionDefaults(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.StartSession(context.Background(), "", "")
	require.NoError(t, err)

	draft := resp.Session.Draft
	assert.Equal(t, models.StepConfigureService, resp.Session.Step)
	assert.Equal(t, "deep-home-cleaning", draft.ServiceID, "first catalog entry is the default")
	assert.Equal(t, "1 BHK", draft.VariantLabel)
	assert.Empty(t, draft.LocationID)
	assert.Equal(t, "2026-08-31", draft.Date)
	assert.NotEmpty(t, resp.Session.SessionID)
	assert.NotEmpty(t, resp.Slots, "slots derived for the default date")
}

func TestStartSessionSeedIgnoresUnknownIDs(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.StartSession(context.Background(), "window-washing", "gotham")
	require.NoError(t, err)

	assert.Equal(t, "deep-home-cleaning", resp.Session.Draft.ServiceID)
	assert.Empty(t, resp.Session.Draft.LocationID)
}

func TestFullBookingFlow(t *testing.T) {
	svc, recorder := newTestService(t)
	ctx := context.Background()

	resp, err := svc.StartSession(ctx, "pest-control", "indiranagar")
	require.NoError(t, err)
	id := resp.Session.SessionID
	assert.Equal(t, "Standard (1BHK)", resp.Session.Draft.VariantLabel)

	// Step 1 -> 2: service, package and area are all set.
	resp, err = svc.Next(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StepSchedule, resp.Session.Step)

	// A slot already inside the lead-time window is rejected.
	_, err = svc.UpdateDraft(ctx, id, DraftPatch{Time: strPtr("09:00 AM")})
	require.Error(t, err)

	resp, err = svc.UpdateDraft(ctx, id, DraftPatch{Time: strPtr("11:00 AM")})
	require.NoError(t, err)
	assert.Equal(t, "11:00 AM", resp.Session.Draft.Time)

	resp, err = svc.Next(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StepContactAddons, resp.Session.Step)

	// Contact details; the phone arrives with formatting junk.
	resp, err = svc.UpdateDraft(ctx, id, DraftPatch{
		Name:    strPtr("Priya Sharma"),
		Phone:   strPtr("98765 43210"),
		Address: strPtr("42, 1st Main Road, Indiranagar"),
	})
	require.NoError(t, err)
	assert.Equal(t, "9876543210", resp.Session.Draft.Phone)

	resp, err = svc.Next(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StepReview, resp.Session.Step)

	booking, err := svc.Confirm(ctx, id)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^SHOBA-\d{5}$`), booking.ID)
	assert.Equal(t, "Pest Control", booking.ServiceTitle)
	assert.Equal(t, "Indiranagar", booking.LocationName)

	// Frozen breakdown for the 899 package: 899 - 90 + 146.
	assert.Equal(t, 90, booking.Breakdown.Discount)
	assert.Equal(t, 146, booking.Breakdown.Tax)
	assert.Equal(t, 955, booking.Breakdown.Total)

	require.Len(t, recorder.bookings, 1)
	assert.Equal(t, booking.ID, recorder.bookings[0].ID)

	// The session is gone once confirmed.
	_, err = svc.GetSession(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestNextBlockedByGuard(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	resp, err := svc.StartSession(ctx, "pest-control", "")
	require.NoError(t, err)

	_, err = svc.Next(ctx, resp.Session.SessionID)
	require.Error(t, err, "no service area selected yet")

	var we *WizardError
	require.ErrorAs(t, err, &we)
	assert.Equal(t, "validationError", we.Code)
}

func TestBackRetainsData(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	resp, err := svc.StartSession(ctx, "pest-control", "indiranagar")
	require.NoError(t, err)
	id := resp.Session.SessionID

	_, err = svc.Next(ctx, id)
	require.NoError(t, err)
	_, err = svc.UpdateDraft(ctx, id, DraftPatch{Time: strPtr("11:00 AM")})
	require.NoError(t, err)

	resp, err = svc.Back(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StepConfigureService, resp.Session.Step)
	assert.Equal(t, "11:00 AM", resp.Session.Draft.Time, "backward navigation never clears data")

	// Back at the first step is a no-op.
	resp, err = svc.Back(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StepConfigureService, resp.Session.Step)
}

func TestServiceChangeRedefaultsVariant(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	resp, err := svc.StartSession(ctx, "deep-home-cleaning", "")
	require.NoError(t, err)
	id := resp.Session.SessionID

	resp, err = svc.UpdateDraft(ctx, id, DraftPatch{VariantLabel: strPtr("3 BHK")})
	require.NoError(t, err)
	assert.Equal(t, "3 BHK", resp.Session.Draft.VariantLabel)

	// "3 BHK" does not exist on pest-control, so the variant re-defaults.
	resp, err = svc.UpdateDraft(ctx, id, DraftPatch{ServiceID: strPtr("pest-control")})
	require.NoError(t, err)
	assert.Equal(t, "Standard (1BHK)", resp.Session.Draft.VariantLabel)
}

func TestPinDropResolvesNearestLocation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	resp, err := svc.StartSession(ctx, "", "")
	require.NoError(t, err)

	resp, err = svc.UpdateDraft(ctx, resp.Session.SessionID, DraftPatch{
		Pin: &models.Coords{X: 50, Y: 50},
	})
	require.NoError(t, err)
	assert.Equal(t, "koramangala", resp.Session.Draft.LocationID)
}

func TestDateChangeClearsStaleTime(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	resp, err := svc.StartSession(ctx, "", "")
	require.NoError(t, err)
	id := resp.Session.SessionID

	_, err = svc.UpdateDraft(ctx, id, DraftPatch{Time: strPtr("04:00 PM")})
	require.NoError(t, err, "04:00 PM is bookable today")

	// Seed 497 for 2026-09-04 maps slot 3 to (497+3)%10 = 0: full.
	resp, err = svc.UpdateDraft(ctx, id, DraftPatch{Date: strPtr("2026-09-04")})
	require.NoError(t, err)
	assert.Empty(t, resp.Session.Draft.Time, "selection cleared when the slot is full on the new date")
}

func TestToggleAddon(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	resp, err := svc.StartSession(ctx, "", "")
	require.NoError(t, err)
	id := resp.Session.SessionID

	resp, err = svc.UpdateDraft(ctx, id, DraftPatch{ToggleAddon: strPtr("eco")})
	require.NoError(t, err)
	assert.True(t, resp.Session.Draft.HasAddon("eco"))
	assert.Equal(t, 299, resp.Breakdown.AddonsTotal)

	resp, err = svc.UpdateDraft(ctx, id, DraftPatch{ToggleAddon: strPtr("eco")})
	require.NoError(t, err)
	assert.False(t, resp.Session.Draft.HasAddon("eco"), "second toggle removes the addon")

	_, err = svc.UpdateDraft(ctx, id, DraftPatch{ToggleAddon: strPtr("helipad")})
	assert.Error(t, err)
}

func TestConfirmRequiresReviewStep(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	resp, err := svc.StartSession(ctx, "pest-control", "indiranagar")
	require.NoError(t, err)

	_, err = svc.Confirm(ctx, resp.Session.SessionID)
	assert.Error(t, err)
}

func TestCancelDiscardsSession(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	resp, err := svc.StartSession(ctx, "", "")
	require.NoError(t, err)
	id := resp.Session.SessionID

	require.NoError(t, svc.Cancel(ctx, id))

	_, err = svc.GetSession(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestDateWindowShape(t *testing.T) {
	svc, _ := newTestService(t)

	dates := svc.DateWindow()
	require.Len(t, dates, 14)
	assert.True(t, dates[0].IsToday)
	assert.Equal(t, "2026-08-31", dates[0].FullDate)
	assert.Equal(t, "2026-09-13", dates[13].FullDate)
	for _, d := range dates[1:] {
		assert.False(t, d.IsToday)
	}
}

func TestSlotStatusesRejectsOutOfWindowDate(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.SlotStatuses("2027-01-01")
	assert.Error(t, err)

	slots, err := svc.SlotStatuses("2026-09-05")
	require.NoError(t, err)
	assert.Len(t, slots, 5)
}
