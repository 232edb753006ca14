// Package tariff - Tiered base fee table
// Maps a monthly consumption to the flat fee the utility keeps billing
// regardless of how much energy the panels produce.
package tariff

import "github.com/shopspring/decimal"

// Tier is one bracket of the base fee table
type Tier struct {
	UpTo decimal.Decimal // Inclusive upper limit in kWh (zero on the last tier = unlimited)
	Fee  decimal.Decimal // Flat fee for the bracket
}

// Unlimited reports whether the tier has no upper limit
func (t Tier) Unlimited() bool {
	return t.UpTo.IsZero()
}

var tiers = []Tier{
	{UpTo: decimal.NewFromInt(30), Fee: decimal.RequireFromString("1.62")},
	{UpTo: decimal.NewFromInt(50), Fee: decimal.RequireFromString("3.24")},
	{UpTo: decimal.NewFromInt(100), Fee: decimal.RequireFromString("12.95")},
	{UpTo: decimal.NewFromInt(200), Fee: decimal.RequireFromString("25.89")},
	{UpTo: decimal.NewFromInt(300), Fee: decimal.RequireFromString("35.60")},
	{Fee: decimal.RequireFromString("45.31")},
}

// Tiers returns a copy of the fee table in ascending order
func Tiers() []Tier {
	out := make([]Tier, len(tiers))
	copy(out, tiers)
	return out
}

// BaseFee returns the flat fee for a monthly consumption in kWh.
// Breakpoints are inclusive: 30 kWh falls in the first tier, 30.01 in the second.
func BaseFee(consumptionKWh decimal.Decimal) decimal.Decimal {
	for _, tier := range tiers {
		if tier.Unlimited() || consumptionKWh.LessThanOrEqual(tier.UpTo) {
			return tier.Fee
		}
	}
	// unreachable: the last tier is unlimited
	return tiers[len(tiers)-1].Fee
}
