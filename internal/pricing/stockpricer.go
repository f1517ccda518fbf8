package pricing

func priceStockPrice(ctx PricingCtx, stock *Stock) (float64, error) {
	insref := NewStockInstrument(*stock)
	provider, ok := ctx.MarketPriceProvider(insref)
	if !ok {
		return 0, errMissingMarketData(MarketDataPrice, stock.Ticker)
	}
	return provider.Eval()
}

// priceStock handles Price and Exposure for a stock; every other
// measure falls through to the generic calculator (nil, nil).
func priceStock(ctx PricingCtx, measure Measure, stock *Stock) (*float64, error) {
	switch measure {
	case Price:
		v, err := priceStockPrice(ctx, stock)
		if err != nil {
			return nil, err
		}
		return &v, nil
	case Exposure:
		v, err := Evaluate(ctx, Price, NewStockInstrument(*stock))
		if err != nil {
			return nil, err
		}
		return &v, nil
	default:
		return nil, nil
	}
}
