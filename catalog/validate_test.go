package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateShippedCatalog(t *testing.T) {
	require.NoError(t, Validate(), "the authored catalog must always pass its own checks")
}

func TestLookupHelpers(t *testing.T) {
	svc := ServiceByID("pest-control")
	require.NotNil(t, svc)
	assert.Equal(t, "Pest Control", svc.Title)
	assert.Nil(t, ServiceByID("window-washing"))

	assert.NotNil(t, ServiceBySlug("deep-home-cleaning"))
	assert.Nil(t, ServiceBySlug("nope"))

	loc := LocationByID("hsr-layout")
	require.NotNil(t, loc)
	assert.Equal(t, "HSR Layout", loc.Name)
	assert.Nil(t, LocationByID("gotham"))

	addon := AddonByID("express")
	require.NotNil(t, addon)
	assert.Equal(t, 399, addon.Price)

	slot := SlotByTime("02:00 PM")
	require.NotNil(t, slot)
	assert.Equal(t, 14, slot.Hour)
	assert.Nil(t, SlotByTime("03:00 PM"))
}

func TestVariantLookup(t *testing.T) {
	svc := ServiceByID("deep-home-cleaning")
	require.NotNil(t, svc)

	variant := svc.Variant("Villa")
	require.NotNil(t, variant)
	assert.True(t, variant.Inspection)
	assert.Nil(t, svc.Variant("9 BHK"))
}
