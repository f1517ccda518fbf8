package pricing

import (
	"fmt"
	"time"
)

// Ticker is an opaque string identity for a tradable underlying.
type Ticker string

func (t Ticker) String() string { return string(t) }

// Stock is the equity instrument: just its ticker.
type Stock struct {
	Ticker Ticker
}

// OptionKind distinguishes a call from a put.
type OptionKind int

const (
	Call OptionKind = iota
	Put
)

func (k OptionKind) String() string {
	switch k {
	case Call:
		return "call"
	case Put:
		return "put"
	default:
		return "unknown"
	}
}

// ParseOptionKind parses the snake_case external representation.
func ParseOptionKind(s string) (OptionKind, error) {
	switch s {
	case "call":
		return Call, nil
	case "put":
		return Put, nil
	default:
		return 0, errInvalidOptionType(s)
	}
}

// StockOption is a European option on a stock.
type StockOption struct {
	Underlying Stock
	Strike     float64
	Expiry     time.Time
	Kind       OptionKind
}

// InstrumentKind tags which variant an Instrument holds.
type InstrumentKind int

const (
	KindStock InstrumentKind = iota
	KindOption
)

// Instrument is the closed two-variant sum type the pricer operates
// on. Go has no enum-with-payload construct, so the variant is tagged
// by Kind and only the matching field is populated. Callers always pass
// it by pointer; there is no separate owned/borrowed pair of types.
type Instrument struct {
	Kind   InstrumentKind
	Stock  Stock
	Option StockOption
}

// NewStockInstrument wraps a Stock as an Instrument.
func NewStockInstrument(s Stock) *Instrument {
	return &Instrument{Kind: KindStock, Stock: s}
}

// NewOptionInstrument wraps a StockOption as an Instrument.
func NewOptionInstrument(o StockOption) *Instrument {
	return &Instrument{Kind: KindOption, Option: o}
}

// UnderlyingTicker returns the ticker used to resolve providers: the
// option's underlying ticker, or the stock's own ticker.
func (i *Instrument) UnderlyingTicker() Ticker {
	switch i.Kind {
	case KindOption:
		return i.Option.Underlying.Ticker
	default:
		return i.Stock.Ticker
	}
}

func (i *Instrument) String() string {
	switch i.Kind {
	case KindOption:
		return fmt.Sprintf("%s %g %s %s", i.Option.Underlying.Ticker, i.Option.Strike, i.Option.Kind, i.Option.Expiry.Format("2006-01-02"))
	default:
		return string(i.Stock.Ticker)
	}
}
