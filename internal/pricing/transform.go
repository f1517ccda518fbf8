package pricing

import "strings"

// RiskFactor identifies a broad category of market risk a shift can
// target. Extensible in principle; only Equity is defined today.
type RiskFactor int

const (
	Equity RiskFactor = iota
)

func (r RiskFactor) String() string {
	switch r {
	case Equity:
		return "equity"
	default:
		return "unknown"
	}
}

// ParseRiskFactor parses the snake_case external representation.
func ParseRiskFactor(s string) (RiskFactor, error) {
	switch s {
	case "equity":
		return Equity, nil
	default:
		return 0, errInvalidRiskFactor(s)
	}
}

// FilterKind tags which InstrumentFilter variant is active.
type FilterKind int

const (
	Passthrough FilterKind = iota
	ByTicker
	ByRiskFactor
)

// InstrumentFilter decides whether a shift applies to a given
// instrument.
type InstrumentFilter struct {
	Kind       FilterKind
	Ticker     Ticker
	RiskFactor RiskFactor
}

func NewPassthroughFilter() InstrumentFilter {
	return InstrumentFilter{Kind: Passthrough}
}

func NewTickerFilter(t Ticker) InstrumentFilter {
	return InstrumentFilter{Kind: ByTicker, Ticker: t}
}

func NewRiskFactorFilter(rf RiskFactor) InstrumentFilter {
	return InstrumentFilter{Kind: ByRiskFactor, RiskFactor: rf}
}

// Accept reports whether the filter matches the instrument. A ticker
// filter only matches stock instruments with that ticker — an
// option's underlying never matches. Use a risk-factor filter to shift
// an option's underlying instead.
func (f InstrumentFilter) Accept(instrument *Instrument) bool {
	switch f.Kind {
	case Passthrough:
		return true
	case ByTicker:
		return instrument.Kind == KindStock && instrument.Stock.Ticker == f.Ticker
	case ByRiskFactor:
		switch f.RiskFactor {
		case Equity:
			return instrument.Kind == KindStock
		default:
			return false
		}
	default:
		return false
	}
}

// TargetKind tags which ShiftTarget variant is active.
type TargetKind int

const (
	SingleMeasureTarget TargetKind = iota
	MultiMeasureTarget
)

// ShiftTarget decides whether a shift applies to a given measure.
type ShiftTarget struct {
	Kind    TargetKind
	Single  Measure
	Members map[Measure]struct{}
}

func NewSingleMeasureTarget(m Measure) ShiftTarget {
	return ShiftTarget{Kind: SingleMeasureTarget, Single: m}
}

func NewMultiMeasureTarget(measures ...Measure) ShiftTarget {
	members := make(map[Measure]struct{}, len(measures))
	for _, m := range measures {
		members[m] = struct{}{}
	}
	return ShiftTarget{Kind: MultiMeasureTarget, Members: members}
}

func (t ShiftTarget) IsTarget(m Measure) bool {
	switch t.Kind {
	case SingleMeasureTarget:
		return t.Single == m
	case MultiMeasureTarget:
		_, ok := t.Members[m]
		return ok
	default:
		return false
	}
}

// ShiftItem is one fully-resolved shift for a single coordinate: a
// filter, a target, and the (rel, abs) pair to apply.
type ShiftItem struct {
	Filter   InstrumentFilter
	Target   ShiftTarget
	RelShift float64
	AbsShift float64
}

// ShiftDefinition pairs an instrument filter with parallel vectors of
// rel/abs shifts; the vectors' shared length is the scenario axis
// dimension.
type ShiftDefinition struct {
	Filter    InstrumentFilter
	RelShifts []float64
	AbsShifts []float64
}

func NewShiftDefinition(filter InstrumentFilter, relShifts, absShifts []float64) (ShiftDefinition, error) {
	if len(relShifts) != len(absShifts) {
		return ShiftDefinition{}, errInvalidScenario("abs and rel shift lengths differ")
	}
	return ShiftDefinition{Filter: filter, RelShifts: relShifts, AbsShifts: absShifts}, nil
}

func (d ShiftDefinition) Len() int { return len(d.RelShifts) }

// TransformDefinition is a ShiftTarget paired with a ShiftDefinition:
// one measure, shifted along one axis, for instruments a filter
// accepts.
type TransformDefinition struct {
	Target ShiftTarget
	Def    ShiftDefinition
}

func (t TransformDefinition) Len() int     { return t.Def.Len() }
func (t TransformDefinition) IsEmpty() bool { return t.Len() == 0 }

// NewScalarMeasureTransform builds a dim=1 TransformDefinition.
func NewScalarMeasureTransform(target Measure, filter InstrumentFilter, absShift, relShift float64) (TransformDefinition, error) {
	def, err := NewShiftDefinition(filter, []float64{relShift}, []float64{absShift})
	if err != nil {
		return TransformDefinition{}, err
	}
	return TransformDefinition{Target: NewSingleMeasureTarget(target), Def: def}, nil
}

// NewVectorMeasureTransform builds a TransformDefinition whose
// dimension is len(relShifts) == len(absShifts).
func NewVectorMeasureTransform(target Measure, filter InstrumentFilter, absShifts, relShifts []float64) (TransformDefinition, error) {
	def, err := NewShiftDefinition(filter, relShifts, absShifts)
	if err != nil {
		return TransformDefinition{}, err
	}
	return TransformDefinition{Target: NewSingleMeasureTarget(target), Def: def}, nil
}

// ShiftItemAt resolves the i-th shift of this transform into a
// ShiftItem, or InvalidScenario if i is out of range.
func (t TransformDefinition) ShiftItemAt(i int) (ShiftItem, error) {
	if i < 0 || i >= t.Def.Len() {
		return ShiftItem{}, errInvalidScenario("accessing shift definition outside bounds")
	}
	return ShiftItem{
		Filter:   t.Def.Filter,
		Target:   t.Target,
		RelShift: t.Def.RelShifts[i],
		AbsShift: t.Def.AbsShifts[i],
	}, nil
}

// ParseInstrumentFilter parses the external filter-kind syntax:
// "passthrough", "ticker_filter:<ticker>" or
// "risk_factor_filter:<risk_factor>".
func ParseInstrumentFilter(s string) (InstrumentFilter, error) {
	if s == "passthrough" {
		return NewPassthroughFilter(), nil
	}
	if rest, ok := strings.CutPrefix(s, "ticker_filter:"); ok {
		return NewTickerFilter(Ticker(rest)), nil
	}
	if rest, ok := strings.CutPrefix(s, "risk_factor_filter:"); ok {
		rf, err := ParseRiskFactor(rest)
		if err != nil {
			return InstrumentFilter{}, err
		}
		return NewRiskFactorFilter(rf), nil
	}
	return InstrumentFilter{}, errInvalidScenario("unknown filter kind: " + s)
}

// TransformAlignment decides how a new transform's axis relates to
// its parent's when stacking vectorized contexts.
type TransformAlignment int

const (
	Orthogonal TransformAlignment = iota
	Stacked
)
