package pricing

import "time"

// MarketPriceProvider resolves the current market price of whatever
// ticker it was bound to.
type MarketPriceProvider interface {
	Eval() (float64, error)
}

// SinglePriceProvider is the simplest MarketPriceProvider: a constant
// spot observed at the valuation date.
type SinglePriceProvider struct {
	price float64
}

func NewSinglePriceProvider(price float64) *SinglePriceProvider {
	return &SinglePriceProvider{price: price}
}

func (p *SinglePriceProvider) Eval() (float64, error) { return p.price, nil }

// RateProvider resolves a discount rate. A real deployment would take
// from/to dates for a full curve; discounting here is scoped to a flat rate.
type RateProvider interface {
	Eval() (float64, error)
}

// FixedZeroRateProvider always returns a zero rate.
type FixedZeroRateProvider struct{}

func (FixedZeroRateProvider) Eval() (float64, error) { return 0.0, nil }

// VolProvider resolves an implied volatility given spot, strike and
// time-to-expiry, i.e. a (possibly flat) vol surface.
type VolProvider interface {
	Eval(spot, strike, tte float64) (float64, error)
}

// FixedVolSurface ignores spot/strike/tte and returns a flat vol.
type FixedVolSurface struct {
	vol float64
}

func NewFixedVolSurface(vol float64) *FixedVolSurface {
	return &FixedVolSurface{vol: vol}
}

func (s *FixedVolSurface) Eval(spot, strike, tte float64) (float64, error) {
	return s.vol, nil
}

// DatePeriodProvider converts a date into a year-fraction relative to
// whatever valuation date it was anchored to.
type DatePeriodProvider interface {
	PeriodInYear(dt time.Time) (float64, error)
}

// FixedValuationDatePeriodProvider computes year-fractions as the
// elapsed time from valuationDate to dt in days, including any
// fractional day, divided by 365.
type FixedValuationDatePeriodProvider struct {
	valuationDate time.Time
}

func NewFixedValuationDatePeriodProvider(valuationDate time.Time) *FixedValuationDatePeriodProvider {
	return &FixedValuationDatePeriodProvider{valuationDate: valuationDate}
}

func (p *FixedValuationDatePeriodProvider) PeriodInYear(dt time.Time) (float64, error) {
	days := dt.Sub(p.valuationDate).Hours() / 24.0
	return days / 365.0, nil
}
