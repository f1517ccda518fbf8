package batch

import (
	"testing"
	"time"

	"github.com/aristath/optionpricer/internal/pricing"
	"github.com/stretchr/testify/assert"
)

func buildPortfolio() (*pricing.Portfolio, *pricing.LookupCtx) {
	valDate, _ := time.Parse("2006-01-02", "2021-08-31")
	portfolio := pricing.NewPortfolio()
	portfolio.AddTrade(pricing.NewStockInstrument(pricing.Stock{Ticker: "AAPL"}), 10)
	portfolio.AddTrade(pricing.NewStockInstrument(pricing.Stock{Ticker: "MSFT"}), 5)

	ctx := pricing.NewLookupCtx(valDate, map[pricing.Ticker]float64{
		"AAPL": 100.0,
		"MSFT": 200.0,
	}, nil)
	return portfolio, ctx
}

func TestRepriceEvaluatesEveryPositionInOrder(t *testing.T) {
	portfolio, ctx := buildPortfolio()
	repricer := NewRepricer(2)

	results := repricer.Reprice(ctx, pricing.Price, portfolio)
	assert.Len(t, results, 2)
	assert.Equal(t, pricing.PositionID("AAPL"), results[0].ID)
	assert.Equal(t, pricing.PositionID("MSFT"), results[1].ID)
	assert.InDelta(t, 100.0, results[0].Value, 1e-9)
	assert.InDelta(t, 200.0, results[1].Value, 1e-9)
}

func TestRepriceCollectsPerPositionErrors(t *testing.T) {
	portfolio, ctx := buildPortfolio()
	portfolio.AddTrade(pricing.NewStockInstrument(pricing.Stock{Ticker: "TSLA"}), 1)
	repricer := NewRepricer(4)

	results := repricer.Reprice(ctx, pricing.Price, portfolio)
	assert.Len(t, results, 3)
	assert.Error(t, results[2].Err)
}

func TestRepriceEmptyPortfolio(t *testing.T) {
	_, ctx := buildPortfolio()
	repricer := NewRepricer(0)
	results := repricer.Reprice(ctx, pricing.Price, pricing.NewPortfolio())
	assert.Empty(t, results)
}

func TestSummarizeAggregatesSuccessfulResults(t *testing.T) {
	summary := Summarize([]PositionResult{
		{ID: "AAPL", Value: 100},
		{ID: "MSFT", Value: 200},
		{ID: "TSLA", Err: assert.AnError},
	})

	assert.Equal(t, 2, summary.NumPriced)
	assert.Equal(t, 1, summary.NumFailed)
	assert.InDelta(t, 300.0, summary.Total, 1e-9)
	assert.InDelta(t, 150.0, summary.Mean, 1e-9)
}
