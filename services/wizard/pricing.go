package wizard

import (
	"math"

	"shoba/models"
)

const (
	discountRate = 0.10
	taxRate      = 0.18
)

// ComputeBreakdown derives the invoice amounts from the selected variant
// and addons. Pure; the wizard recomputes it on every draft change and
// freezes the result only at confirmation. An inspection-quoted variant
// contributes nothing to the base price and marks the total indicative.
// Rounding is half away from zero, applied uniformly to discount and tax.
func ComputeBreakdown(variant *models.ServiceVariant, addons []models.Addon, selected []string) models.PriceBreakdown {
	var b models.PriceBreakdown
	if variant != nil {
		if variant.Inspection {
			b.Indicative = true
		} else {
			b.Base = variant.Price
		}
	}

	for _, id := range selected {
		for _, a := range addons {
			if a.ID == id {
				b.AddonsTotal += a.Price
				break
			}
		}
	}

	b.Subtotal = b.Base + b.AddonsTotal
	b.Discount = int(math.Round(float64(b.Subtotal) * discountRate))
	b.Tax = int(math.Round(float64(b.Subtotal-b.Discount) * taxRate))
	b.Total = b.Subtotal - b.Discount + b.Tax
	return b
}
