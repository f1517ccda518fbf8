package pricing

// StackedVectorizedCtx recursively composes transforms into scenario
// axes and evaluates a measure across the Cartesian product of
// coordinates, producing a VectorResult tensor.
type StackedVectorizedCtx struct {
	axis         Axis
	baseCtx      PricingCtx
	parent       *StackedVectorizedCtx
	transformDef TransformDefinition
	axes         []Axis
	shape        []int
}

func newStackedVectorizedCtx(axis Axis, base PricingCtx, parent *StackedVectorizedCtx, def TransformDefinition) *StackedVectorizedCtx {
	var axes []Axis
	if parent != nil {
		axes = append(axes, parent.axes...)
	}
	if len(axes) == 0 || axes[len(axes)-1] != axis {
		axes = append(axes, axis)
	}
	shape := make([]int, len(axes))
	for i, a := range axes {
		shape[i] = a.Dim
	}
	return &StackedVectorizedCtx{
		axis:         axis,
		baseCtx:      base,
		parent:       parent,
		transformDef: def,
		axes:         axes,
		shape:        shape,
	}
}

// ShiftBaseCtx builds the root stacked context: a new Axis(id=0) over
// the given base and transform.
func ShiftBaseCtx(base PricingCtx, def TransformDefinition) *StackedVectorizedCtx {
	axis := NewBaseAxis(def.Len())
	return newStackedVectorizedCtx(axis, base, nil, def)
}

// ShiftVectorCtx stacks a new transform on top of parent. Orthogonal
// alignment adds a brand new axis; Stacked alignment reuses the
// parent's axis id/dim so the new transform's shifts superpose with
// the parent's at the same coordinate (dim mismatch is not rejected
// here: a Stacked transform shorter than the axis fails with
// InvalidScenario the first time an out-of-range coordinate is
// accessed, and the extra shifts of a longer one are never read).
func ShiftVectorCtx(parent *StackedVectorizedCtx, def TransformDefinition, alignment TransformAlignment) *StackedVectorizedCtx {
	var axis Axis
	switch alignment {
	case Stacked:
		axis = parent.axis
	default:
		axis = NewAxisFromParent(parent.axis, def.Len())
	}
	return newStackedVectorizedCtx(axis, parent.baseCtx, parent, def)
}

func (s *StackedVectorizedCtx) Axes() []Axis  { return s.axes }
func (s *StackedVectorizedCtx) Shape() []int  { return s.shape }
func (s *StackedVectorizedCtx) Axis() Axis    { return s.axis }

// ctxChain returns every ancestor-plus-self stacked context, root
// first.
func (s *StackedVectorizedCtx) ctxChain() []*StackedVectorizedCtx {
	var chain []*StackedVectorizedCtx
	if s.parent != nil {
		chain = append(chain, s.parent.ctxChain()...)
	}
	return append(chain, s)
}

// fillShiftItemsForAxis appends, to shifts, the ShiftItem every
// context in chain contributes at coordinate i along axis ax.
func fillShiftItemsForAxis(chain []*StackedVectorizedCtx, ax Axis, i int, shifts *[]ShiftItem) error {
	for _, c := range chain {
		if c.axis == ax {
			si, err := c.transformDef.ShiftItemAt(i)
			if err != nil {
				return err
			}
			*shifts = append(*shifts, si)
		}
	}
	return nil
}

// Price evaluates measure for instrument across every coordinate of
// this context's shape, producing a VectorResult tensor. The first
// failing coordinate aborts the whole tensor — no partial results.
func (s *StackedVectorizedCtx) Price(measure Measure, instrument *Instrument) (*VectorResult, error) {
	res := NewVectorResult(s.shape)
	chain := s.ctxChain()
	for _, coord := range coordinates(s.shape) {
		var shifts []ShiftItem
		for axIdx, ax := range s.axes {
			if err := fillShiftItemsForAxis(chain, ax, coord[axIdx], &shifts); err != nil {
				return nil, err
			}
		}
		sliced := NewShiftedExecutor(s.baseCtx, shifts)
		v, err := Evaluate(sliced, measure, instrument)
		if err != nil {
			return nil, err
		}
		res.Set(v, coord...)
	}
	return res, nil
}

// PricePosition is Price followed by an in-place linear rescale of
// every element by the position's size, if the measure's scaling
// policy is Linear.
func (s *StackedVectorizedCtx) PricePosition(measure Measure, position *Position) (*VectorResult, error) {
	res, err := s.Price(measure, position.Instrument)
	if err != nil {
		return nil, err
	}
	scaler := NewPositionScaler(measure, position)
	res.MapInPlace(scaler.Scale)
	return res, nil
}
