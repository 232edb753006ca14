package quote

import (
	"context"
	stderrors "errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"

	"solar-quote/core/types"
	"solar-quote/internal/errors"
)

// memStore is a minimal RecordStore that can be told to fail
type memStore struct {
	record types.Record
	saves  int
	fail   bool
}

func (m *memStore) Load(ctx context.Context) types.Record { return m.record.Clone() }

func (m *memStore) Save(ctx context.Context, r types.Record) error {
	if m.fail {
		return errors.Persistence("save record", stderrors.New("read-only file system"))
	}
	m.record = r.Clone()
	m.saves++
	return nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestEstimateInstallation(t *testing.T) {
	tests := []struct {
		consumption string
		capacity    string
		cost        string
	}{
		{"0", "1", "5000"},
		{"1", "1", "5000"},
		{"150", "1", "5000"},
		{"151", "2", "10000"},
		{"300", "2", "10000"},
		{"300.5", "3", "15000"},
		{"1000", "7", "35000"},
	}

	for _, tt := range tests {
		t.Run(tt.consumption, func(t *testing.T) {
			q := EstimateInstallation(dec(tt.consumption), DefaultRates())
			if !q.CapacityKW.Equal(dec(tt.capacity)) {
				t.Errorf("capacity = %s, want %s", q.CapacityKW, tt.capacity)
			}
			if !q.Cost.Equal(dec(tt.cost)) {
				t.Errorf("cost = %s, want %s", q.Cost, tt.cost)
			}
		})
	}
}

func TestEstimateSavingsSubtractsBaseFee(t *testing.T) {
	q := EstimateSavings(dec("100"), dec("1.5"))

	if !q.Gross.Equal(dec("150")) {
		t.Errorf("gross = %s, want 150", q.Gross)
	}
	if !q.BaseFee.Equal(dec("12.95")) {
		t.Errorf("base fee = %s, want 12.95", q.BaseFee)
	}
	if !q.Net.Equal(dec("137.05")) {
		t.Errorf("net = %s, want 137.05", q.Net)
	}
}

func TestComputePayback(t *testing.T) {
	tests := []struct {
		name      string
		record    types.Record
		wantErr   errors.Type
		months    float64
		years     int
		remainder int
	}{
		{
			name:      "ten months",
			record:    types.Record{InstallationCost: types.Float(10000), MonthlySavings: types.Float(1000)},
			months:    10,
			years:     0,
			remainder: 10,
		},
		{
			name:      "several years",
			record:    types.Record{InstallationCost: types.Float(10000), MonthlySavings: types.Float(137.05)},
			months:    72.96607077708865,
			years:     6,
			remainder: 0,
		},
		{
			name:      "exactly two years",
			record:    types.Record{InstallationCost: types.Float(24000), MonthlySavings: types.Float(1000)},
			months:    24,
			years:     2,
			remainder: 0,
		},
		{
			name:    "infinite cost",
			record:  types.Record{InstallationCost: types.Float(math.Inf(1)), MonthlySavings: types.Float(100)},
			wantErr: errors.TypeInvalidInput,
		},
		{
			name:    "savings not a number",
			record:  types.Record{InstallationCost: types.Float(5000), MonthlySavings: types.Float(math.NaN())},
			wantErr: errors.TypeInvalidInput,
		},
		{
			name:    "vanishing savings",
			record:  types.Record{InstallationCost: types.Float(5000), MonthlySavings: types.Float(1e-300)},
			wantErr: errors.TypeNoPayback,
		},
		{
			name:    "nothing computed",
			record:  types.Record{},
			wantErr: errors.TypeMissingPrerequisite,
		},
		{
			name:    "savings missing",
			record:  types.Record{InstallationCost: types.Float(5000)},
			wantErr: errors.TypeMissingPrerequisite,
		},
		{
			name:    "cost missing",
			record:  types.Record{MonthlySavings: types.Float(100)},
			wantErr: errors.TypeMissingPrerequisite,
		},
		{
			name:    "zero savings",
			record:  types.Record{InstallationCost: types.Float(5000), MonthlySavings: types.Float(0)},
			wantErr: errors.TypeDivisionByZero,
		},
		{
			name:    "negative savings",
			record:  types.Record{InstallationCost: types.Float(5000), MonthlySavings: types.Float(-1.62)},
			wantErr: errors.TypeNoPayback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ComputePayback(tt.record)
			if tt.wantErr != "" {
				if !errors.IsType(err, tt.wantErr) {
					t.Fatalf("expected %s, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := p.Months - tt.months; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("months = %v, want %v", p.Months, tt.months)
			}
			if p.Years != tt.years || p.RemainderMonths != tt.remainder {
				t.Errorf("breakdown = %d years %d months, want %d years %d months",
					p.Years, p.RemainderMonths, tt.years, tt.remainder)
			}
		})
	}
}

func TestServiceInstallationPersists(t *testing.T) {
	ctx := context.Background()
	store := &memStore{}
	svc := NewService(ctx, store, DefaultRates(), nil)

	q, err := svc.Installation(ctx, " 151 ")
	if err != nil {
		t.Fatalf("Installation: %v", err)
	}
	if !q.Cost.Equal(dec("10000")) {
		t.Errorf("cost = %s", q.Cost)
	}
	if store.saves != 1 {
		t.Fatalf("expected one save, got %d", store.saves)
	}
	want := types.Record{ConsumptionKWh: types.Float(151), InstallationCost: types.Float(10000)}
	if !store.record.Equal(want) {
		t.Errorf("persisted %+v, want %+v", store.record, want)
	}
	if !svc.Record().Equal(want) {
		t.Errorf("live record %+v, want %+v", svc.Record(), want)
	}
}

func TestServiceInvalidInputLeavesRecordUntouched(t *testing.T) {
	ctx := context.Background()
	seed := types.Record{InstallationCost: types.Float(5000), ConsumptionKWh: types.Float(100)}
	store := &memStore{record: seed}
	svc := NewService(ctx, store, DefaultRates(), nil)

	inputs := []struct {
		name string
		call func() error
	}{
		{"installation text", func() error { _, err := svc.Installation(ctx, "abc"); return err }},
		{"installation empty", func() error { _, err := svc.Installation(ctx, ""); return err }},
		{"installation negative", func() error { _, err := svc.Installation(ctx, "-5"); return err }},
		{"installation nan", func() error { _, err := svc.Installation(ctx, "NaN"); return err }},
		{"savings consumption", func() error { _, err := svc.Savings(ctx, "lots", "1.5"); return err }},
		{"savings rate", func() error { _, err := svc.Savings(ctx, "100", "R$1"); return err }},
	}

	for _, in := range inputs {
		t.Run(in.name, func(t *testing.T) {
			if err := in.call(); !errors.IsType(err, errors.TypeInvalidInput) {
				t.Fatalf("expected %s, got %v", errors.TypeInvalidInput, err)
			}
		})
	}

	if store.saves != 0 {
		t.Errorf("invalid input triggered %d saves", store.saves)
	}
	if !svc.Record().Equal(seed) {
		t.Errorf("record changed to %+v", svc.Record())
	}
}

func TestServiceSavingsAcceptsCommaDecimal(t *testing.T) {
	ctx := context.Background()
	store := &memStore{}
	svc := NewService(ctx, store, DefaultRates(), nil)

	q, err := svc.Savings(ctx, "100", "1,5")
	if err != nil {
		t.Fatalf("Savings: %v", err)
	}
	if !q.Net.Equal(dec("137.05")) {
		t.Errorf("net = %s", q.Net)
	}
	if got := types.ValueOr(store.record.MonthlySavings, -1); got != 137.05 {
		t.Errorf("persisted savings = %v", got)
	}
}

func TestServiceFullFlow(t *testing.T) {
	ctx := context.Background()
	store := &memStore{}
	svc := NewService(ctx, store, DefaultRates(), nil)

	if _, err := svc.Payback(ctx); !errors.IsType(err, errors.TypeMissingPrerequisite) {
		t.Fatalf("expected missing prerequisite before any estimate, got %v", err)
	}

	if _, err := svc.Installation(ctx, "300"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Savings(ctx, "300", "0.8"); err != nil {
		t.Fatal(err)
	}

	// 10000 / (240 - 35.60) = 48.92...
	p, err := svc.Payback(ctx)
	if err != nil {
		t.Fatalf("Payback: %v", err)
	}
	if p.Years != 4 || p.RemainderMonths != 0 {
		t.Errorf("payback = %d years %d months", p.Years, p.RemainderMonths)
	}

	proj := svc.Projection(ctx, 10)
	if !proj.WithoutSolar[0].Equal(dec("3600")) {
		t.Errorf("first year without solar = %s", proj.WithoutSolar[0])
	}
	if !proj.WithSolar[0].Equal(dec("7547.2")) {
		t.Errorf("first year with solar = %s", proj.WithSolar[0])
	}
}

func TestServicePersistenceFailureKeepsMemoryState(t *testing.T) {
	ctx := context.Background()
	store := &memStore{fail: true}
	svc := NewService(ctx, store, DefaultRates(), nil)

	if _, err := svc.Installation(ctx, "150"); err != nil {
		t.Fatalf("persistence failure must not surface as an estimator error: %v", err)
	}
	if got := types.ValueOr(svc.Record().InstallationCost, 0); got != 5000 {
		t.Errorf("in-memory cost = %v, want 5000", got)
	}
}

func TestServiceHugeConsumptionIsRejected(t *testing.T) {
	ctx := context.Background()
	store := &memStore{}
	svc := NewService(ctx, store, DefaultRates(), nil)

	if _, err := svc.Installation(ctx, "1e400"); !errors.IsType(err, errors.TypeInvalidInput) {
		t.Fatalf("expected %s, got %v", errors.TypeInvalidInput, err)
	}
	if !svc.Record().IsEmpty() || store.saves != 0 {
		t.Fatalf("rejected input changed the record: %+v", svc.Record())
	}

	if _, err := svc.Savings(ctx, "100", "1.5"); err != nil {
		t.Fatalf("Savings: %v", err)
	}
	if _, err := svc.Payback(ctx); !errors.IsType(err, errors.TypeMissingPrerequisite) {
		t.Errorf("expected %s, got %v", errors.TypeMissingPrerequisite, err)
	}
	if p := svc.Projection(ctx, 10); len(p.Years) != 10 {
		t.Errorf("projection has %d years", len(p.Years))
	}
	if store.saves != 1 {
		t.Errorf("savings estimate was not persisted, saves = %d", store.saves)
	}
}
