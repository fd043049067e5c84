package pricing

import (
	"math"
	"strings"

	"easydrive_booking/internal/domain/entities"
)

const (
	taxRateQC = 0.14975
	taxRateON = 0.13

	taxNoteQC = "QC (GST+QST)"
	taxNoteON = "ON (HST)"
)

// Distance-estimate constants, applied only when no official region matched.
const (
	estimateCostPerKm  = 2.50
	estimateMinimumCAD = 150
)

// ComputeTotals derives tax and grand total for a subtotal in a region.
//
// The function is pure and idempotent: it runs at quote time and again at
// checkout time, and both results must agree bit for bit. Bad input is
// normalized, never rejected: negative or non-finite subtotals clamp to zero.
func ComputeTotals(subtotal float64, region string) entities.Totals {
	if math.IsNaN(subtotal) || math.IsInf(subtotal, 0) || subtotal < 0 {
		subtotal = 0
	}

	rate, note := taxRateON, taxNoteON
	r := strings.ToLower(strings.TrimSpace(region))
	if strings.Contains(r, "montreal") || strings.Contains(r, "quebec") {
		rate, note = taxRateQC, taxNoteQC
	}

	tax := roundCents(subtotal * rate)
	return entities.Totals{
		Currency: "CAD",
		Subtotal: subtotal,
		TaxRate:  rate,
		Tax:      tax,
		Total:    roundCents(subtotal + tax),
		TaxNote:  note,
	}
}

// EstimateCost prices a distance-based quote: $2.50/km with a $150 floor,
// rounded to the nearest dollar.
func EstimateCost(distanceKm float64) float64 {
	return math.Round(math.Max(distanceKm*estimateCostPerKm, estimateMinimumCAD))
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
