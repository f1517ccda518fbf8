package pricing

// ShiftedExecutor wraps a base context with an ordered list of active
// shift items for one scenario coordinate. It is built fresh per
// coordinate by a StackedVectorizedCtx and discarded after use.
type ShiftedExecutor struct {
	BaseCtx PricingCtx
	Shifts  []ShiftItem
}

func NewShiftedExecutor(base PricingCtx, shifts []ShiftItem) *ShiftedExecutor {
	return &ShiftedExecutor{BaseCtx: base, Shifts: shifts}
}

// ProcessShifts applies the base context's own shift processing first
// (so shifts on a deeper base, if any, are visible to this level),
// then applies this executor's shifts in insertion order. Ordering is
// significant: shifts compose multiplicatively and additively
// left-to-right.
func (s *ShiftedExecutor) ProcessShifts(measure Measure, instrument *Instrument, v float64) (float64, error) {
	v, err := s.BaseCtx.ProcessShifts(measure, instrument, v)
	if err != nil {
		return 0, err
	}
	for _, si := range s.Shifts {
		if si.Target.IsTarget(measure) && si.Filter.Accept(instrument) {
			v = (1+si.RelShift)*v + si.AbsShift
		}
	}
	return v, nil
}

func (s *ShiftedExecutor) VolProvider(instrument *Instrument) (VolProvider, bool) {
	return s.BaseCtx.VolProvider(instrument)
}

func (s *ShiftedExecutor) MarketPriceProvider(instrument *Instrument) (MarketPriceProvider, bool) {
	return s.BaseCtx.MarketPriceProvider(instrument)
}

func (s *ShiftedExecutor) RateProvider(instrument *Instrument) (RateProvider, bool) {
	return s.BaseCtx.RateProvider(instrument)
}

func (s *ShiftedExecutor) PeriodProvider(instrument *Instrument) (DatePeriodProvider, bool) {
	return s.BaseCtx.PeriodProvider(instrument)
}

var _ PricingCtx = (*ShiftedExecutor)(nil)
