package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportFromPricesRisingSeries(t *testing.T) {
	prices := []float64{100, 101, 102, 101, 103, 105, 104, 106}
	report := ReportFromPrices(prices, 0.02, 0.0, 252)

	assert.NotNil(t, report.Sharpe)
	assert.NotNil(t, report.MaxDrawdown)
	assert.NotNil(t, report.AnnualizedVolatility)
}

func TestReportFromPricesInsufficientData(t *testing.T) {
	report := ReportFromPrices([]float64{100}, 0.02, 0.0, 252)
	assert.Nil(t, report.Sharpe)
	assert.Nil(t, report.Sortino)
	assert.Nil(t, report.MaxDrawdown)
}

func TestPortfolioReturnsWeightedCombination(t *testing.T) {
	returns := map[string][]float64{
		"AAPL": {0.01, 0.02, -0.01},
		"MSFT": {0.02, 0.01, 0.00},
	}
	weights := map[string]float64{"AAPL": 0.5, "MSFT": 0.5}

	combined := PortfolioReturns(returns, weights)
	assert.Len(t, combined, 3)
	assert.InDelta(t, 0.015, combined[0], 1e-9)
	assert.InDelta(t, 0.015, combined[1], 1e-9)
	assert.InDelta(t, -0.005, combined[2], 1e-9)
}

func TestPortfolioReturnsEmpty(t *testing.T) {
	assert.Nil(t, PortfolioReturns(nil, nil))
}
