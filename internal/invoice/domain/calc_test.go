package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateWithTaxAndDiscount(t *testing.T) {
	totals := Calculate([]float64{100, 50}, 10, 5)

	assert.Equal(t, 150.0, totals.Subtotal)
	assert.Equal(t, 15.0, totals.TaxAmount)
	assert.Equal(t, 7.5, totals.DiscountAmount)
	assert.Equal(t, 157.5, totals.TotalAmount)
}

func TestCalculateNoJobs(t *testing.T) {
	totals := Calculate(nil, 10, 5)

	assert.Equal(t, 0.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.TaxAmount)
	assert.Equal(t, 0.0, totals.DiscountAmount)
	assert.Equal(t, 0.0, totals.TotalAmount)
}

func TestCalculateTotalIdentity(t *testing.T) {
	cases := []struct {
		name     string
		costs    []float64
		tax      float64
		discount float64
	}{
		{"plain", []float64{200}, 0, 0},
		{"tax only", []float64{99.99, 0.01}, 11, 0},
		{"discount only", []float64{10, 20, 30}, 0, 50},
		{"both", []float64{75.25}, 7.5, 2.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			totals := Calculate(tc.costs, tc.tax, tc.discount)
			assert.InDelta(t, totals.Subtotal+totals.TaxAmount-totals.DiscountAmount, totals.TotalAmount, 1e-9)
		})
	}
}

func TestCalculateDiscountOverHundredGoesNegative(t *testing.T) {
	totals := Calculate([]float64{100}, 0, 150)

	assert.Equal(t, 150.0, totals.DiscountAmount)
	assert.Equal(t, -50.0, totals.TotalAmount)
}

func TestDeriveDiscardsPriorAmounts(t *testing.T) {
	first := Derive(100, 10, 0)
	assert.Equal(t, 110.0, first.TotalAmount)

	// Re-deriving from the same subtotal must not stack onto the
	// previous result.
	second := Derive(first.Subtotal, 20, 10)
	assert.Equal(t, 100.0, second.Subtotal)
	assert.Equal(t, 20.0, second.TaxAmount)
	assert.Equal(t, 10.0, second.DiscountAmount)
	assert.Equal(t, 110.0, second.TotalAmount)
}
