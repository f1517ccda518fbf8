package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddPositionAccumulatesSize(t *testing.T) {
	p := NewPortfolio()
	stock := NewStockInstrument(Stock{Ticker: "AAPL"})

	p.AddPosition("AAPL", 10, stock)
	p.AddPosition("AAPL", 5, stock)

	pos, ok := p.GetPosition("AAPL")
	assert.True(t, ok)
	assert.Equal(t, 15.0, pos.Size)
	assert.Equal(t, 1, p.Len())
}

func TestAddTradeAutoGeneratesStockID(t *testing.T) {
	p := NewPortfolio()
	stock := NewStockInstrument(Stock{Ticker: "AAPL"})

	id := p.AddTrade(stock, 10)
	assert.Equal(t, PositionID("AAPL"), id)
}

func TestAddTradeAutoGeneratesOptionID(t *testing.T) {
	p := NewPortfolio()
	expiry := mustDate(t, "2022-08-31")
	option := NewOptionInstrument(StockOption{
		Underlying: Stock{Ticker: "AAPL"},
		Strike:     100,
		Expiry:     expiry,
		Kind:       Call,
	})

	id1 := p.AddTrade(option, 1)
	id2 := p.AddTrade(option, 1)

	assert.NotEqual(t, id1, id2)
	assert.Contains(t, string(id1), "AAPL20220831C100")
	assert.Contains(t, string(id2), "AAPL20220831C100")
}

func TestPositionsInOrderPreservesInsertionOrder(t *testing.T) {
	p := NewPortfolio()
	aapl := NewStockInstrument(Stock{Ticker: "AAPL"})
	msft := NewStockInstrument(Stock{Ticker: "MSFT"})

	p.AddTrade(msft, 1)
	p.AddTrade(aapl, 1)

	entries := p.PositionsInOrder()
	assert.Len(t, entries, 2)
	assert.Equal(t, PositionID("MSFT"), entries[0].ID)
	assert.Equal(t, PositionID("AAPL"), entries[1].ID)
}
