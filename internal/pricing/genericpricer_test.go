package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStockDeltaIsOne(t *testing.T) {
	valDate := mustDate(t, "2021-08-31")
	stock := Stock{Ticker: "AAPL"}
	ctx := NewLookupCtx(valDate, map[Ticker]float64{"AAPL": 105.0}, nil)
	insref := NewStockInstrument(stock)

	delta, err := Evaluate(ctx, Delta, insref)
	assert.NoError(t, err)
	assert.InDelta(t, 1.0, delta, 1e-9)

	gamma, err := Evaluate(ctx, Gamma, insref)
	assert.NoError(t, err)
	assert.InDelta(t, 0.0, gamma, 1e-9)
}

func TestZeroPriceYieldsZeroDeltaAndGamma(t *testing.T) {
	valDate := mustDate(t, "2021-08-31")
	stock := Stock{Ticker: "AAPL"}
	ctx := NewLookupCtx(valDate, map[Ticker]float64{"AAPL": 0.0}, nil)
	insref := NewStockInstrument(stock)

	delta, err := Evaluate(ctx, Delta, insref)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, delta)

	gamma, err := Evaluate(ctx, Gamma, insref)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, gamma)
}

func TestPriceGenericMissingCalculator(t *testing.T) {
	_, err := priceGeneric(nil, TimeToExpiry, nil)
	assert.Error(t, err)
	var perr *PricerError
	assert.ErrorAs(t, err, &perr)
	assert.Equal(t, MissingCalculator, perr.Kind)
	assert.Equal(t, TimeToExpiry, perr.Measure)
}
