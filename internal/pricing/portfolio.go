package pricing

import "fmt"

// PositionID identifies a position within a Portfolio.
type PositionID string

// Position is a signed size on an instrument.
type Position struct {
	Size       float64
	Instrument *Instrument
}

// Portfolio is the ordered iteration view the pricer consumes. CRUD
// and identifier generation beyond this belong to the external
// portfolio container.
type Portfolio struct {
	positions   map[PositionID]*Position
	positionIDs []PositionID
	autoCounter int
}

func NewPortfolio() *Portfolio {
	return &Portfolio{positions: make(map[PositionID]*Position)}
}

// AddPosition inserts or accumulates a position under id, preserving
// first-insertion order.
func (p *Portfolio) AddPosition(id PositionID, size float64, instrument *Instrument) {
	if existing, ok := p.positions[id]; ok {
		existing.Size += size
		return
	}
	p.positions[id] = &Position{Size: size, Instrument: instrument}
	p.positionIDs = append(p.positionIDs, id)
}

// AddTrade is a convenience wrapper that auto-generates a PositionID:
// the underlying ticker for a stock, an incrementing trade id for an
// option.
func (p *Portfolio) AddTrade(instrument *Instrument, size float64) PositionID {
	var id PositionID
	switch instrument.Kind {
	case KindOption:
		p.autoCounter++
		opt := instrument.Option
		id = PositionID(fmt.Sprintf("%s%s%s%g_%d", opt.Underlying.Ticker, opt.Expiry.Format("20060102"), optionKindChar(opt.Kind), opt.Strike, p.autoCounter))
	default:
		id = PositionID(instrument.Stock.Ticker)
	}
	p.AddPosition(id, size, instrument)
	return id
}

func optionKindChar(k OptionKind) string {
	if k == Put {
		return "P"
	}
	return "C"
}

// PositionEntry pairs a PositionID with its Position for ordered
// iteration.
type PositionEntry struct {
	ID       PositionID
	Position *Position
}

// PositionsInOrder iterates positions in insertion order.
func (p *Portfolio) PositionsInOrder() []PositionEntry {
	out := make([]PositionEntry, 0, len(p.positionIDs))
	for _, id := range p.positionIDs {
		if pos, ok := p.positions[id]; ok {
			out = append(out, PositionEntry{ID: id, Position: pos})
		}
	}
	return out
}

func (p *Portfolio) GetPosition(id PositionID) (*Position, bool) {
	pos, ok := p.positions[id]
	return pos, ok
}

func (p *Portfolio) Len() int { return len(p.positionIDs) }
