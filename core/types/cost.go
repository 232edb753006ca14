// Package types - Quote result types
package types

import "github.com/shopspring/decimal"

// Currency represents a currency code
type Currency string

const (
	CurrencyBRL Currency = "BRL"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// Symbol returns the display symbol for the currency
func (c Currency) Symbol() string {
	switch c {
	case CurrencyBRL:
		return "R$"
	case CurrencyUSD:
		return "$"
	case CurrencyEUR:
		return "€"
	default:
		return string(c)
	}
}

// Format renders an amount with two decimals and the currency symbol
func (c Currency) Format(amount decimal.Decimal) string {
	return c.Symbol() + " " + amount.StringFixed(2)
}

// InstallationQuote is the result of the installation cost estimate
type InstallationQuote struct {
	// ConsumptionKWh is the monthly consumption the system is sized for
	ConsumptionKWh decimal.Decimal `json:"consumption_kwh"`

	// CapacityKW is the required panel capacity
	CapacityKW decimal.Decimal `json:"capacity_kw"`

	// CostPerKW is the installed cost per kW
	CostPerKW decimal.Decimal `json:"cost_per_kw"`

	// Cost is CapacityKW * CostPerKW
	Cost decimal.Decimal `json:"cost"`
}

// SavingsQuote is the result of the monthly savings estimate
type SavingsQuote struct {
	// ConsumptionKWh is the average monthly consumption
	ConsumptionKWh decimal.Decimal `json:"consumption_kwh"`

	// RatePerKWh is the local energy rate
	RatePerKWh decimal.Decimal `json:"rate_per_kwh"`

	// Gross is ConsumptionKWh * RatePerKWh
	Gross decimal.Decimal `json:"gross"`

	// BaseFee is the tariff table fee that is still billed with solar
	BaseFee decimal.Decimal `json:"base_fee"`

	// Net is Gross - BaseFee, the value stored in the record
	Net decimal.Decimal `json:"net"`
}

// Payback is the time until cumulative savings cover the installation cost
type Payback struct {
	// Months is the total payback time in months
	Months float64 `json:"months"`

	// Years is the whole number of years
	Years int `json:"years"`

	// RemainderMonths is the whole number of months past Years
	RemainderMonths int `json:"remainder_months"`
}

// Projection holds the yearly series behind the comparison chart
type Projection struct {
	// Years are the year numbers, starting at 1
	Years []int `json:"years"`

	// WithoutSolar is the cumulative consumption without panels
	WithoutSolar []decimal.Decimal `json:"without_solar"`

	// WithSolar is the installation cost not yet recovered by savings
	WithSolar []decimal.Decimal `json:"with_solar"`
}
