package wizard

import (
	"testing"

	"shoba/catalog"
	"shoba/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBreakdownBaseOnly(t *testing.T) {
	svc := catalog.ServiceByID("deep-home-cleaning")
	require.NotNil(t, svc)
	variant := svc.Variant("1 BHK")
	require.NotNil(t, variant)

	b := ComputeBreakdown(variant, catalog.Addons, nil)

	assert.Equal(t, 3999, b.Base)
	assert.Equal(t, 0, b.AddonsTotal)
	assert.Equal(t, 3999, b.Subtotal)
	assert.Equal(t, 400, b.Discount) // round(399.9)
	assert.Equal(t, 648, b.Tax)      // round(3599 * 0.18)
	assert.Equal(t, 4247, b.Total)
	assert.False(t, b.Indicative)
}

func TestComputeBreakdownWithAddons(t *testing.T) {
	svc := catalog.ServiceByID("deep-home-cleaning")
	require.NotNil(t, svc)

	b := ComputeBreakdown(svc.Variant("1 BHK"), catalog.Addons, []string{"sanitization", "eco"})

	assert.Equal(t, 798, b.AddonsTotal)
	assert.Equal(t, 4797, b.Subtotal)
	assert.Equal(t, 480, b.Discount) // round(479.7)
	assert.Equal(t, 777, b.Tax)      // round(4317 * 0.18)
	assert.Equal(t, 5094, b.Total)
}

func TestComputeBreakdownInspectionVariant(t *testing.T) {
	svc := catalog.ServiceByID("deep-home-cleaning")
	require.NotNil(t, svc)
	villa := svc.Variant("Villa")
	require.NotNil(t, villa)

	b := ComputeBreakdown(villa, catalog.Addons, []string{"express"})

	assert.True(t, b.Indicative, "inspection-quoted base makes the total indicative")
	assert.Equal(t, 0, b.Base)
	assert.Equal(t, 399, b.Subtotal)
	assert.Equal(t, 40, b.Discount)
	assert.Equal(t, 65, b.Tax) // round(359 * 0.18)
	assert.Equal(t, 424, b.Total)
}

func TestComputeBreakdownNilVariant(t *testing.T) {
	b := ComputeBreakdown(nil, catalog.Addons, []string{"eco"})

	assert.Equal(t, 0, b.Base)
	assert.Equal(t, 299, b.Subtotal)
	assert.False(t, b.Indicative)
}

func TestComputeBreakdownIgnoresUnknownAddons(t *testing.T) {
	variant := &models.ServiceVariant{Label: "Test", Price: 1000}

	b := ComputeBreakdown(variant, catalog.Addons, []string{"jacuzzi", "eco"})

	assert.Equal(t, 299, b.AddonsTotal)
}
