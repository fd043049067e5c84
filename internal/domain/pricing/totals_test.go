package pricing

import (
	"math"
	"testing"
)

func TestComputeTotals_QuebecRate(t *testing.T) {
	got := ComputeTotals(285, "Montreal")
	if got.TaxRate != 0.14975 {
		t.Fatalf("expected rate 0.14975, got %v", got.TaxRate)
	}
	if got.Tax != 42.68 {
		t.Fatalf("expected tax 42.68, got %v", got.Tax)
	}
	if got.Total != 327.68 {
		t.Fatalf("expected total 327.68, got %v", got.Total)
	}
	if got.TaxNote != "QC (GST+QST)" {
		t.Fatalf("unexpected tax note %q", got.TaxNote)
	}
}

func TestComputeTotals_OntarioRate(t *testing.T) {
	got := ComputeTotals(385, "Toronto (Oshawa Region)")
	if got.TaxRate != 0.13 {
		t.Fatalf("expected rate 0.13, got %v", got.TaxRate)
	}
	if got.Tax != 50.05 {
		t.Fatalf("expected tax 50.05, got %v", got.Tax)
	}
	if got.Total != 435.05 {
		t.Fatalf("expected total 435.05, got %v", got.Total)
	}
	if got.TaxNote != "ON (HST)" {
		t.Fatalf("unexpected tax note %q", got.TaxNote)
	}
}

func TestComputeTotals_Idempotent(t *testing.T) {
	first := ComputeTotals(285, "montreal, qc")
	second := ComputeTotals(285, "montreal, qc")
	if first != second {
		t.Fatalf("expected identical outputs, got %+v vs %+v", first, second)
	}
}

func TestComputeTotals_NormalizesBadInput(t *testing.T) {
	cases := []struct {
		name     string
		subtotal float64
	}{
		{"negative", -10},
		{"nan", math.NaN()},
		{"inf", math.Inf(1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeTotals(tc.subtotal, "Hamilton")
			if got.Subtotal != 0 || got.Tax != 0 || got.Total != 0 {
				t.Fatalf("expected zeroed totals, got %+v", got)
			}
		})
	}
}

func TestEstimateCost(t *testing.T) {
	if got := EstimateCost(10); got != 150 {
		t.Fatalf("expected minimum 150, got %v", got)
	}
	if got := EstimateCost(200); got != 500 {
		t.Fatalf("expected 500, got %v", got)
	}
	if got := EstimateCost(100.3); got != 251 {
		t.Fatalf("expected 251, got %v", got)
	}
}
