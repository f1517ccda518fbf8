package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTickerFilterNeverMatchesOptions(t *testing.T) {
	filter := NewTickerFilter("AAPL")
	stock := NewStockInstrument(Stock{Ticker: "AAPL"})
	option := NewOptionInstrument(StockOption{Underlying: Stock{Ticker: "AAPL"}, Strike: 100, Kind: Call})

	assert.True(t, filter.Accept(stock))
	assert.False(t, filter.Accept(option))
}

func TestRiskFactorFilterMatchesStocksOnly(t *testing.T) {
	filter := NewRiskFactorFilter(Equity)
	stock := NewStockInstrument(Stock{Ticker: "AAPL"})
	option := NewOptionInstrument(StockOption{Underlying: Stock{Ticker: "AAPL"}, Strike: 100, Kind: Call})

	assert.True(t, filter.Accept(stock))
	assert.False(t, filter.Accept(option))
}

func TestPassthroughFilterAcceptsEverything(t *testing.T) {
	filter := NewPassthroughFilter()
	stock := NewStockInstrument(Stock{Ticker: "AAPL"})
	option := NewOptionInstrument(StockOption{Underlying: Stock{Ticker: "AAPL"}, Strike: 100, Kind: Call})

	assert.True(t, filter.Accept(stock))
	assert.True(t, filter.Accept(option))
}

func TestShiftDefinitionLengthMismatch(t *testing.T) {
	_, err := NewShiftDefinition(NewPassthroughFilter(), []float64{0, 0}, []float64{0})
	assert.Error(t, err)
	var perr *PricerError
	assert.ErrorAs(t, err, &perr)
	assert.Equal(t, InvalidScenario, perr.Kind)
}

func TestShiftItemAtOutOfRange(t *testing.T) {
	def, err := NewVectorMeasureTransform(Price, NewPassthroughFilter(), []float64{0, 0}, []float64{-0.01, 0.01})
	assert.NoError(t, err)

	_, err = def.ShiftItemAt(2)
	assert.Error(t, err)
	var perr *PricerError
	assert.ErrorAs(t, err, &perr)
	assert.Equal(t, InvalidScenario, perr.Kind)
}

func TestMultiMeasureTargetMatchesMembersOnly(t *testing.T) {
	target := NewMultiMeasureTarget(Price, Exposure)
	assert.True(t, target.IsTarget(Price))
	assert.True(t, target.IsTarget(Exposure))
	assert.False(t, target.IsTarget(Delta))
}

func TestParseInstrumentFilter(t *testing.T) {
	f, err := ParseInstrumentFilter("passthrough")
	assert.NoError(t, err)
	assert.Equal(t, Passthrough, f.Kind)

	f, err = ParseInstrumentFilter("ticker_filter:AAPL")
	assert.NoError(t, err)
	assert.Equal(t, ByTicker, f.Kind)
	assert.Equal(t, Ticker("AAPL"), f.Ticker)

	f, err = ParseInstrumentFilter("risk_factor_filter:equity")
	assert.NoError(t, err)
	assert.Equal(t, ByRiskFactor, f.Kind)
	assert.Equal(t, Equity, f.RiskFactor)

	_, err = ParseInstrumentFilter("garbage")
	assert.Error(t, err)
}
