package scheduler

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/optionpricer/internal/batch"
	"github.com/aristath/optionpricer/internal/pricing"
)

func buildRevaluationPortfolio() (*pricing.Portfolio, *pricing.LookupCtx) {
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

func TestRevaluationJobNameIsStable(t *testing.T) {
	job := NewRevaluationJob(batch.NewRepricer(2), pricing.NewPortfolio(), nil, pricing.Price)
	assert.Equal(t, "portfolio_revaluation", job.Name())
}

func TestRevaluationJobRunReturnsNilOnSuccess(t *testing.T) {
	portfolio, ctx := buildRevaluationPortfolio()
	job := NewRevaluationJob(batch.NewRepricer(2), portfolio, ctx, pricing.Exposure)
	job.SetLogger(zerolog.Nop())

	err := job.Run()

	require.NoError(t, err)
}

func TestRevaluationJobRunDoesNotFailOnPartialErrors(t *testing.T) {
	portfolio, ctx := buildRevaluationPortfolio()
	portfolio.AddTrade(pricing.NewStockInstrument(pricing.Stock{Ticker: "TSLA"}), 1)
	job := NewRevaluationJob(batch.NewRepricer(2), portfolio, ctx, pricing.Price)
	job.SetLogger(zerolog.Nop())

	err := job.Run()

	require.NoError(t, err)
}

func TestRevaluationJobRunnableViaScheduler(t *testing.T) {
	portfolio, ctx := buildRevaluationPortfolio()
	job := NewRevaluationJob(batch.NewRepricer(2), portfolio, ctx, pricing.Price)

	s := New(zerolog.Nop())
	err := s.RunNow(job)

	require.NoError(t, err)
}
