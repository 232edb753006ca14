package types

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestRecordJSONUsesPersistedKeys(t *testing.T) {
	r := Record{
		ConsumptionKWh:   Float(151),
		InstallationCost: Float(10000),
	}

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"consumo_mensal":151,"custo_instalacao":10000}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
}

func TestRecordEqualAndClone(t *testing.T) {
	r := Record{MonthlySavings: Float(0)}
	if r.IsEmpty() {
		t.Fatal("zero savings is a recorded figure, not an empty record")
	}

	clone := r.Clone()
	*clone.MonthlySavings = 12
	if *r.MonthlySavings != 0 {
		t.Fatal("Clone shares storage with the original")
	}
	if r.Equal(clone) {
		t.Fatal("records with different savings compare equal")
	}
	if !(Record{}).Equal(Record{}) {
		t.Fatal("empty records should be equal")
	}
	if (Record{}).Equal(r) {
		t.Fatal("nil and zero must differ")
	}
}

func TestCurrencyFormat(t *testing.T) {
	tests := []struct {
		currency Currency
		amount   string
		want     string
	}{
		{CurrencyBRL, "5000", "R$ 5000.00"},
		{CurrencyUSD, "137.05", "$ 137.05"},
		{Currency("CHF"), "1.5", "CHF 1.50"},
	}
	for _, tt := range tests {
		got := tt.currency.Format(decimal.RequireFromString(tt.amount))
		if got != tt.want {
			t.Errorf("%s.Format(%s) = %q, want %q", tt.currency, tt.amount, got, tt.want)
		}
	}
}

func TestFiniteOr(t *testing.T) {
	tests := []struct {
		name string
		in   *float64
		want float64
	}{
		{"nil", nil, -1},
		{"value", Float(2.5), 2.5},
		{"nan", Float(math.NaN()), -1},
		{"+inf", Float(math.Inf(1)), -1},
		{"-inf", Float(math.Inf(-1)), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FiniteOr(tt.in, -1); got != tt.want {
				t.Errorf("FiniteOr = %v, want %v", got, tt.want)
			}
			if got := IsFinite(tt.in); got != (tt.want != -1) {
				t.Errorf("IsFinite = %v", got)
			}
		})
	}
}
