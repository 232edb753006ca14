// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions.
package types

import "math"

// Record is the persisted quotation record. Every field is optional: a nil
// pointer means the figure has not been computed yet.
type Record struct {
	// ConsumptionKWh is the monthly consumption used for the installation quote
	ConsumptionKWh *float64 `json:"consumo_mensal,omitempty"`

	// InstallationCost is the estimated installation cost
	InstallationCost *float64 `json:"custo_instalacao,omitempty"`

	// MonthlySavings is the estimated monthly savings
	MonthlySavings *float64 `json:"economia_mensal,omitempty"`
}

// Float returns a pointer to v, for populating Record fields
func Float(v float64) *float64 {
	return &v
}

// ValueOr returns *p, or def when p is nil
func ValueOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

// FiniteOr returns *p, or def when p is nil, NaN or infinite
func FiniteOr(p *float64, def float64) float64 {
	if p == nil || math.IsNaN(*p) || math.IsInf(*p, 0) {
		return def
	}
	return *p
}

// IsFinite reports whether p holds a real number
func IsFinite(p *float64) bool {
	return p != nil && !math.IsNaN(*p) && !math.IsInf(*p, 0)
}

// IsEmpty reports whether no figure has been recorded
func (r Record) IsEmpty() bool {
	return r.ConsumptionKWh == nil && r.InstallationCost == nil && r.MonthlySavings == nil
}

// Equal compares two records field by field
func (r Record) Equal(other Record) bool {
	return equalFloat(r.ConsumptionKWh, other.ConsumptionKWh) &&
		equalFloat(r.InstallationCost, other.InstallationCost) &&
		equalFloat(r.MonthlySavings, other.MonthlySavings)
}

// Clone returns a deep copy so callers cannot mutate shared state
func (r Record) Clone() Record {
	clone := Record{}
	if r.ConsumptionKWh != nil {
		clone.ConsumptionKWh = Float(*r.ConsumptionKWh)
	}
	if r.InstallationCost != nil {
		clone.InstallationCost = Float(*r.InstallationCost)
	}
	if r.MonthlySavings != nil {
		clone.MonthlySavings = Float(*r.MonthlySavings)
	}
	return clone
}

func equalFloat(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
