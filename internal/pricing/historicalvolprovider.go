package pricing

import "github.com/aristath/optionpricer/pkg/formulas"

// HistoricalVolProvider estimates a flat vol surface from a trailing
// window of underlying returns rather than a fixed value: it computes
// the rolling annualized standard deviation of Returns over Period and
// uses the latest value for every (spot, strike, tte) query. It is the
// realized-volatility counterpart to FixedVolSurface.
type HistoricalVolProvider struct {
	Returns []float64
	Period  int
}

func NewHistoricalVolProvider(returns []float64, period int) *HistoricalVolProvider {
	return &HistoricalVolProvider{Returns: returns, Period: period}
}

func (p *HistoricalVolProvider) Eval(spot, strike, tte float64) (float64, error) {
	vol, ok := formulas.LatestAnnualizedHistoricalVol(p.Returns, p.Period)
	if !ok {
		return 0, errInfrastructure("insufficient return history to estimate historical volatility")
	}
	return vol, nil
}

var _ VolProvider = (*HistoricalVolProvider)(nil)
