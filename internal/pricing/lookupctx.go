package pricing

import "time"

// MarketObservation is the caller-owned snapshot a LookupCtx is built
// from: a valuation date plus per-ticker spot and vol.
type MarketObservation struct {
	ValuationDate time.Time
	Spot          map[Ticker]float64
	Vol           map[Ticker]float64
}

// LookupCtx is the base pricing context: per-ticker price and vol
// providers, one rate provider, one date-period provider. It performs
// no shift processing of its own (ProcessShifts is the identity).
type LookupCtx struct {
	volProviders         map[Ticker]VolProvider
	marketPriceProviders map[Ticker]MarketPriceProvider
	rateProvider         RateProvider
	periodProvider       DatePeriodProvider
}

// NewLookupCtx materializes a LookupCtx from a valuation date and
// ticker-keyed spot/vol maps: a SinglePriceProvider and FixedVolSurface
// per ticker, one FixedZeroRateProvider, one
// FixedValuationDatePeriodProvider.
func NewLookupCtx(valuationDate time.Time, spot, vol map[Ticker]float64) *LookupCtx {
	priceProviders := make(map[Ticker]MarketPriceProvider, len(spot))
	for ticker, price := range spot {
		priceProviders[ticker] = NewSinglePriceProvider(price)
	}
	volProviders := make(map[Ticker]VolProvider, len(vol))
	for ticker, v := range vol {
		volProviders[ticker] = NewFixedVolSurface(v)
	}
	return &LookupCtx{
		volProviders:         volProviders,
		marketPriceProviders: priceProviders,
		rateProvider:         FixedZeroRateProvider{},
		periodProvider:       NewFixedValuationDatePeriodProvider(valuationDate),
	}
}

// NewLookupCtxFromObservation is a convenience constructor over a
// MarketObservation.
func NewLookupCtxFromObservation(obs MarketObservation) *LookupCtx {
	return NewLookupCtx(obs.ValuationDate, obs.Spot, obs.Vol)
}

func (c *LookupCtx) ProcessShifts(measure Measure, instrument *Instrument, v float64) (float64, error) {
	return v, nil
}

func (c *LookupCtx) VolProvider(instrument *Instrument) (VolProvider, bool) {
	p, ok := c.volProviders[instrument.UnderlyingTicker()]
	return p, ok
}

func (c *LookupCtx) MarketPriceProvider(instrument *Instrument) (MarketPriceProvider, bool) {
	p, ok := c.marketPriceProviders[instrument.UnderlyingTicker()]
	return p, ok
}

func (c *LookupCtx) RateProvider(instrument *Instrument) (RateProvider, bool) {
	return c.rateProvider, true
}

func (c *LookupCtx) PeriodProvider(instrument *Instrument) (DatePeriodProvider, bool) {
	return c.periodProvider, true
}

var _ PricingCtx = (*LookupCtx)(nil)
