package pricing

func priceOptionPrice(ctx PricingCtx, option *StockOption) (float64, error) {
	insref := NewOptionInstrument(*option)
	undprice, err := Evaluate(ctx, UnderlyingPrice, insref)
	if err != nil {
		return 0, err
	}
	rate, err := Evaluate(ctx, Rate, insref)
	if err != nil {
		return 0, err
	}
	vol, err := Evaluate(ctx, Vol, insref)
	if err != nil {
		return 0, err
	}
	tte, err := Evaluate(ctx, TimeToExpiry, insref)
	if err != nil {
		return 0, err
	}
	return BlackScholes(BlackScholesParams{
		Spot:   undprice,
		Strike: option.Strike,
		TTE:    tte,
		Rate:   rate,
		Vol:    vol,
	}, option.Kind)
}

func priceOptionUnderlyingPrice(ctx PricingCtx, option *StockOption) (float64, error) {
	return Evaluate(ctx, Price, NewStockInstrument(option.Underlying))
}

func priceOptionExposure(ctx PricingCtx, option *StockOption) (float64, error) {
	insref := NewOptionInstrument(*option)
	uprice, err := Evaluate(ctx, UnderlyingPrice, insref)
	if err != nil {
		return 0, err
	}
	delta, err := Evaluate(ctx, Delta, insref)
	if err != nil {
		return 0, err
	}
	return uprice * delta, nil
}

// priceOption handles every measure an option knows how to compute
// directly; recursion through Evaluate is essential here — each
// sub-measure is itself routed through dispatch and shift processing,
// so scenarios targeting UnderlyingPrice or Vol apply transparently.
func priceOption(ctx PricingCtx, measure Measure, option *StockOption) (*float64, error) {
	insref := NewOptionInstrument(*option)
	var (
		v   float64
		err error
	)
	switch measure {
	case Price:
		v, err = priceOptionPrice(ctx, option)
	case Exposure:
		v, err = priceOptionExposure(ctx, option)
	case UnderlyingPrice:
		v, err = priceOptionUnderlyingPrice(ctx, option)
	case Vol:
		provider, ok := ctx.VolProvider(insref)
		if !ok {
			return nil, errInfrastructure("no vol provider found")
		}
		var spot, tte float64
		spot, err = Evaluate(ctx, UnderlyingPrice, insref)
		if err == nil {
			tte, err = Evaluate(ctx, TimeToExpiry, insref)
		}
		if err == nil {
			v, err = provider.Eval(spot, option.Strike, tte)
		}
	case Rate:
		provider, ok := ctx.RateProvider(insref)
		if !ok {
			return nil, errInfrastructure("no rate provider found")
		}
		v, err = provider.Eval()
	case TimeToExpiry:
		provider, ok := ctx.PeriodProvider(insref)
		if !ok {
			return nil, errInfrastructure("no period provider found")
		}
		v, err = provider.PeriodInYear(option.Expiry)
	default:
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}
