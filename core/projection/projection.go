// Package projection derives the yearly series for the with/without solar
// comparison chart.
package projection

import (
	"github.com/shopspring/decimal"

	"solar-quote/core/types"
)

// Chart horizon bounds
const (
	DefaultYears = 10
	MaxYears     = 100
)

var monthsPerYear = decimal.NewFromInt(12)

// Compare builds the comparison series from a record. Absent or non-finite
// fields count as zero and the horizon is clamped to [1, MaxYears]. Values
// are taken at the end of each year:
//
//	WithoutSolar[i] = consumption * 12 * (i+1)
//	WithSolar[i]    = max(0, cost - savings * 12 * (i+1))
//
// WithoutSolar is a consumption total in kWh, not a currency amount.
func Compare(record types.Record, years int) types.Projection {
	if years <= 0 {
		years = DefaultYears
	}
	if years > MaxYears {
		years = MaxYears
	}

	consumption := decimal.NewFromFloat(types.FiniteOr(record.ConsumptionKWh, 0))
	cost := decimal.NewFromFloat(types.FiniteOr(record.InstallationCost, 0))
	savings := decimal.NewFromFloat(types.FiniteOr(record.MonthlySavings, 0))

	yearlyConsumption := consumption.Mul(monthsPerYear)
	yearlySavings := savings.Mul(monthsPerYear)

	p := types.Projection{
		Years:        make([]int, years),
		WithoutSolar: make([]decimal.Decimal, years),
		WithSolar:    make([]decimal.Decimal, years),
	}

	without := decimal.Zero
	residual := cost
	for i := 0; i < years; i++ {
		without = without.Add(yearlyConsumption)
		residual = decimal.Max(decimal.Zero, residual.Sub(yearlySavings))

		p.Years[i] = i + 1
		p.WithoutSolar[i] = without
		p.WithSolar[i] = residual
	}

	return p
}

// BreakEvenYear returns the first year the with-solar series reaches zero,
// or 0 when it never does within the horizon.
func BreakEvenYear(p types.Projection) int {
	for i, v := range p.WithSolar {
		if v.IsZero() {
			return p.Years[i]
		}
	}
	return 0
}
