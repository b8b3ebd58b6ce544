package status

import (
	"context"
	"testing"
	"time"

	"shoba/models"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, demo bool) *DefaultStatusService {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return &DefaultStatusService{Cache: client, Demo: demo}
}

func sampleBooking() *models.Booking {
	return &models.Booking{
		ID:           "SHOBA-12345",
		ServiceID:    "pest-control",
		ServiceTitle: "Pest Control",
		VariantLabel: "Standard (1BHK)",
		LocationID:   "indiranagar",
		LocationName: "Indiranagar",
		Date:         "2026-09-02",
		Time:         "11:00 AM",
		Name:         "Priya Sharma",
		Phone:        "9876543210",
		Address:      "42, 1st Main Road, Indiranagar",
		Breakdown:    models.PriceBreakdown{Total: 955},
		CreatedAt:    time.Now(),
	}
}

func TestRecordThenLookup(t *testing.T) {
	svc := newTestService(t, false)
	ctx := context.Background()

	require.NoError(t, svc.Record(ctx, sampleBooking()))

	record, err := svc.Lookup(ctx, "9876543210")
	require.NoError(t, err)
	assert.Equal(t, "SHOBA-12345", record.ID)
	assert.Equal(t, models.OrderConfirmed, record.Status)
	assert.Equal(t, "Pest Control", record.Service)
	assert.Equal(t, "Indiranagar, Bangalore", record.Location)
	assert.Equal(t, "₹955", record.Total)
}

func TestLookupNormalizesPhone(t *testing.T) {
	svc := newTestService(t, false)
	ctx := context.Background()

	require.NoError(t, svc.Record(ctx, sampleBooking()))

	record, err := svc.Lookup(ctx, "98765 43210")
	require.NoError(t, err)
	assert.Equal(t, "SHOBA-12345", record.ID)
}

func TestLookupDemoFallback(t *testing.T) {
	svc := newTestService(t, true)

	record, err := svc.Lookup(context.Background(), "9000000000")
	require.NoError(t, err)
	assert.Equal(t, "SHOBA-77312", record.ID)
	assert.Equal(t, models.OrderAssigned, record.Status)
	assert.Equal(t, "Manjunath G.", record.Expert)
}

func TestLookupNotFoundWithoutDemo(t *testing.T) {
	svc := newTestService(t, false)

	_, err := svc.Lookup(context.Background(), "9000000000")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestLookupRejectsShortNumber(t *testing.T) {
	svc := newTestService(t, true)

	_, err := svc.Lookup(context.Background(), "12345")
	assert.ErrorIs(t, err, ErrInvalidPhone)
}

func TestNewerBookingReplacesOlder(t *testing.T) {
	svc := newTestService(t, false)
	ctx := context.Background()

	first := sampleBooking()
	require.NoError(t, svc.Record(ctx, first))

	second := sampleBooking()
	second.ID = "SHOBA-67890"
	require.NoError(t, svc.Record(ctx, second))

	record, err := svc.Lookup(ctx, "9876543210")
	require.NoError(t, err)
	assert.Equal(t, "SHOBA-67890", record.ID)
}
