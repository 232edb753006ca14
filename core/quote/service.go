// Package quote implements the solar quotation estimators: installation
// cost, monthly savings and payback time. The Service owns the live
// quotation record and flushes it to storage after every change.
package quote

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"solar-quote/core/projection"
	"solar-quote/core/tariff"
	"solar-quote/core/types"
	"solar-quote/internal/config"
	"solar-quote/internal/errors"
)

var (
	monthsPerYear = decimal.NewFromInt(12)

	// maxPaybackMonths caps the payback at a thousand years
	maxPaybackMonths = decimal.NewFromInt(12 * 1000)
)

// RecordStore loads and saves the quotation record
type RecordStore interface {
	Load(ctx context.Context) types.Record
	Save(ctx context.Context, record types.Record) error
}

// Rates are the fixed sizing and pricing parameters of the installation quote
type Rates struct {
	// CostPerKW is the installed cost of one kW
	CostPerKW decimal.Decimal

	// KWhPerKW is the monthly production of one kW
	KWhPerKW decimal.Decimal

	// MinimumCapacityKW is the smallest system quoted
	MinimumCapacityKW decimal.Decimal
}

// DefaultRates returns 5000 per kW, 150 kWh per kW and a 1 kW minimum
func DefaultRates() Rates {
	return RatesFromConfig(config.Default().Quote)
}

// RatesFromConfig converts the quote configuration section
func RatesFromConfig(cfg config.QuoteConfig) Rates {
	return Rates{
		CostPerKW:         decimal.NewFromFloat(cfg.CostPerKW),
		KWhPerKW:          decimal.NewFromFloat(cfg.KWhPerKW),
		MinimumCapacityKW: decimal.NewFromFloat(cfg.MinimumCapacityKW),
	}
}

// EstimateInstallation sizes the system as ceil(consumption / KWhPerKW) kW,
// never below MinimumCapacityKW, and prices it at CostPerKW.
func EstimateInstallation(consumptionKWh decimal.Decimal, rates Rates) types.InstallationQuote {
	capacity := consumptionKWh.Div(rates.KWhPerKW).Ceil()
	if capacity.LessThan(rates.MinimumCapacityKW) {
		capacity = rates.MinimumCapacityKW
	}

	return types.InstallationQuote{
		ConsumptionKWh: consumptionKWh,
		CapacityKW:     capacity,
		CostPerKW:      rates.CostPerKW,
		Cost:           capacity.Mul(rates.CostPerKW),
	}
}

// EstimateSavings computes net monthly savings: the avoided energy bill
// minus the tariff table base fee that is billed regardless.
func EstimateSavings(consumptionKWh, ratePerKWh decimal.Decimal) types.SavingsQuote {
	gross := consumptionKWh.Mul(ratePerKWh)
	fee := tariff.BaseFee(consumptionKWh)

	return types.SavingsQuote{
		ConsumptionKWh: consumptionKWh,
		RatePerKWh:     ratePerKWh,
		Gross:          gross,
		BaseFee:        fee,
		Net:            gross.Sub(fee),
	}
}

// ComputePayback divides the installation cost by the monthly savings
func ComputePayback(record types.Record) (types.Payback, error) {
	if record.InstallationCost == nil || record.MonthlySavings == nil {
		return types.Payback{}, errors.MissingPrerequisite(
			"compute the installation cost and the monthly savings first")
	}

	if !types.IsFinite(record.InstallationCost) || !types.IsFinite(record.MonthlySavings) {
		return types.Payback{}, errors.New(errors.TypeInvalidInput,
			"the recorded installation cost or monthly savings is not a finite number")
	}

	cost := decimal.NewFromFloat(*record.InstallationCost)
	savings := decimal.NewFromFloat(*record.MonthlySavings)

	switch {
	case savings.IsZero():
		return types.Payback{}, errors.DivisionByZero("monthly savings are zero")
	case savings.IsNegative():
		return types.Payback{}, errors.Newf(errors.TypeNoPayback,
			"monthly savings are negative (%s), the installation never pays back", savings.StringFixed(2))
	}

	months := cost.Div(savings)
	if months.GreaterThan(maxPaybackMonths) {
		return types.Payback{}, errors.New(errors.TypeNoPayback,
			"monthly savings are too small for the installation to ever pay back")
	}
	return types.Payback{
		Months:          months.InexactFloat64(),
		Years:           int(months.Div(monthsPerYear).Floor().IntPart()),
		RemainderMonths: int(months.Mod(monthsPerYear).Floor().IntPart()),
	}, nil
}

// Service owns the live quotation record
type Service struct {
	store  RecordStore
	rates  Rates
	logger *zap.Logger

	mu     sync.Mutex
	record types.Record
}

// NewService loads the persisted record and returns a service around it
func NewService(ctx context.Context, store RecordStore, rates Rates, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:  store,
		rates:  rates,
		logger: logger,
		record: store.Load(ctx),
	}
}

// Rates returns the service's sizing and pricing parameters
func (s *Service) Rates() Rates {
	return s.rates
}

// Record returns a copy of the live record
func (s *Service) Record() types.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record.Clone()
}

// Installation parses the monthly consumption, quotes the installation
// and records cost and consumption. Invalid input leaves the record untouched.
func (s *Service) Installation(ctx context.Context, consumptionText string) (*types.InstallationQuote, error) {
	consumption, err := ParseAmount("monthly consumption", consumptionText)
	if err != nil {
		return nil, err
	}

	q := EstimateInstallation(consumption, s.rates)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.record.InstallationCost = types.Float(q.Cost.InexactFloat64())
	s.record.ConsumptionKWh = types.Float(consumption.InexactFloat64())
	s.persist(ctx)

	s.logger.Debug("installation cost estimated",
		zap.String("consumption_kwh", consumption.String()),
		zap.String("capacity_kw", q.CapacityKW.String()),
		zap.String("cost", q.Cost.String()))

	return &q, nil
}

// Savings parses consumption and energy rate, estimates net monthly savings
// and records them. Invalid input leaves the record untouched.
func (s *Service) Savings(ctx context.Context, consumptionText, rateText string) (*types.SavingsQuote, error) {
	consumption, err := ParseAmount("monthly consumption", consumptionText)
	if err != nil {
		return nil, err
	}
	rate, err := ParseAmount("energy rate", rateText)
	if err != nil {
		return nil, err
	}

	q := EstimateSavings(consumption, rate)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.record.MonthlySavings = types.Float(q.Net.InexactFloat64())
	s.persist(ctx)

	s.logger.Debug("monthly savings estimated",
		zap.String("gross", q.Gross.String()),
		zap.String("base_fee", q.BaseFee.String()),
		zap.String("net", q.Net.String()))

	return &q, nil
}

// Payback computes the payback time from the live record
func (s *Service) Payback(_ context.Context) (*types.Payback, error) {
	s.mu.Lock()
	record := s.record.Clone()
	s.mu.Unlock()

	p, err := ComputePayback(record)
	if err != nil {
		s.logger.Debug("payback unavailable", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

// Projection builds the comparison chart series over the given horizon. It
// only reads the in-memory record.
func (s *Service) Projection(_ context.Context, years int) types.Projection {
	return projection.Compare(s.Record(), years)
}

// persist flushes the record. Failures are logged and the in-memory record
// stays authoritative. Callers hold s.mu.
func (s *Service) persist(ctx context.Context) {
	if err := s.store.Save(ctx, s.record.Clone()); err != nil {
		s.logger.Error("failed to save quotation record", zap.Error(err))
	}
}
