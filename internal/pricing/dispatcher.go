package pricing

// dispatchMeasure routes (measure, instrument) to the instrument-kind
// calculator first (stock or option); if that calculator declines
// (returns "not handled"), it falls through to the generic greek
// calculator, which fails with MissingCalculator if it too declines.
func dispatchMeasure(ctx PricingCtx, measure Measure, instrument *Instrument) (float64, error) {
	var (
		v   *float64
		err error
	)
	switch instrument.Kind {
	case KindOption:
		v, err = priceOption(ctx, measure, &instrument.Option)
	case KindStock:
		v, err = priceStock(ctx, measure, &instrument.Stock)
	}
	if err != nil {
		return 0, err
	}
	if v != nil {
		return *v, nil
	}
	return priceGeneric(ctx, measure, instrument)
}
