package pricing

import "math"

// equityBumpTransform builds the transient three-point vectorized
// context on the underlying Equity risk factor used by the generic
// finite-difference greeks: rel_shifts [-0.01, 0, +0.01], zero
// abs_shifts, targeting Price.
func equityBumpTransform() (TransformDefinition, error) {
	return NewVectorMeasureTransform(
		Price,
		NewRiskFactorFilter(Equity),
		[]float64{0, 0, 0},
		[]float64{-0.01, 0, 0.01},
	)
}

// threePointLadder prices instrument across the equity bump ladder
// and returns [V_down, V, V_up].
func threePointLadder(ctx PricingCtx, instrument *Instrument) ([]float64, error) {
	def, err := equityBumpTransform()
	if err != nil {
		return nil, err
	}
	vctx := ShiftBaseCtx(ctx, def)
	res, err := vctx.Price(Price, instrument)
	if err != nil {
		return nil, err
	}
	slice, err := res.AsSlice1D()
	if err != nil {
		return nil, err
	}
	if len(slice) != 3 {
		return nil, errShiftExecution(instrument, "unknown scenario dimension")
	}
	return slice, nil
}

func priceEquityDelta(ctx PricingCtx, instrument *Instrument) (float64, error) {
	ladder, err := threePointLadder(ctx, instrument)
	if err != nil {
		return 0, err
	}
	vdown, v, vup := ladder[0], ladder[1], ladder[2]
	if v == 0 {
		if math.Abs(vup-vdown) < epsilon {
			return 0, nil
		}
		return 0, errShiftExecution(instrument, "zero price in relshift")
	}
	h := v * 0.01
	return (vup - vdown) / (2 * h), nil
}

func priceEquityGamma(ctx PricingCtx, instrument *Instrument) (float64, error) {
	ladder, err := threePointLadder(ctx, instrument)
	if err != nil {
		return 0, err
	}
	vdown, v, vup := ladder[0], ladder[1], ladder[2]
	if v == 0 {
		if math.Abs(vup-vdown) < epsilon {
			return 0, nil
		}
		return 0, errShiftExecution(instrument, "zero price in relshift")
	}
	h := v * 0.01
	return (vup - 2*v + vdown) / (h * h), nil
}

// epsilon mirrors Rust's f64::EPSILON.
const epsilon = 2.220446049250313e-16

// priceGeneric is the dispatcher's fallback: it only knows Delta and
// Gamma, via finite-difference bumps; everything else is
// MissingCalculator.
func priceGeneric(ctx PricingCtx, measure Measure, instrument *Instrument) (float64, error) {
	switch measure {
	case Delta:
		return priceEquityDelta(ctx, instrument)
	case Gamma:
		return priceEquityGamma(ctx, instrument)
	default:
		return 0, errMissingCalculator(measure)
	}
}
