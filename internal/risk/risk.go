// Package risk reports realized-performance statistics for a return
// series: Sharpe/Sortino ratios, drawdown, and annualized volatility.
// It is independent of the pricing engine - it summarizes a history of
// P&L or price observations rather than evaluating forward-looking
// scenarios.
package risk

import "github.com/aristath/optionpricer/pkg/formulas"

// Report is a realized-performance summary over a price or P&L series.
type Report struct {
	Sharpe               *float64
	Sortino              *float64
	MaxDrawdown          *float64
	AnnualizedVolatility *float64
}

// ReportFromPrices builds a Report from a series of prices (e.g. daily
// marks of a position or portfolio), assuming periodsPerYear periods
// (252 for daily data).
func ReportFromPrices(prices []float64, riskFreeRate, targetReturn float64, periodsPerYear int) Report {
	returns := formulas.CalculateReturns(prices)

	var vol *float64
	if len(returns) > 0 {
		v := formulas.AnnualizedVolatility(returns)
		vol = &v
	}

	return Report{
		Sharpe:               formulas.CalculateSharpeRatio(returns, riskFreeRate, periodsPerYear),
		Sortino:              formulas.CalculateSortinoRatio(returns, riskFreeRate, targetReturn, periodsPerYear),
		MaxDrawdown:          formulas.CalculateMaxDrawdown(prices),
		AnnualizedVolatility: vol,
	}
}

// PortfolioReturns combines per-position return series into a single
// weighted portfolio return series. Series are aligned at their ends:
// longer series are truncated to the shortest by dropping their
// earliest entries.
func PortfolioReturns(returns map[string][]float64, weights map[string]float64) []float64 {
	minLen := -1
	for _, r := range returns {
		if minLen == -1 || len(r) < minLen {
			minLen = len(r)
		}
	}
	if minLen <= 0 {
		return nil
	}

	combined := make([]float64, minLen)
	for key, r := range returns {
		w := weights[key]
		for i := 0; i < minLen; i++ {
			combined[i] += r[len(r)-minLen+i] * w
		}
	}
	return combined
}
