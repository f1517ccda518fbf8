package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/aristath/optionpricer/internal/batch"
	"github.com/aristath/optionpricer/internal/pricing"
)

// Handlers holds the HTTP handlers for the pricing API.
type Handlers struct {
	repricer *batch.Repricer
	log      zerolog.Logger
}

func NewHandlers(repricer *batch.Repricer, log zerolog.Logger) *Handlers {
	return &Handlers{repricer: repricer, log: log.With().Str("handler", "pricing").Logger()}
}

// instrumentRequest is the wire representation of an instrument: either
// a stock (ticker only) or an option (underlying, strike, expiry, kind).
type instrumentRequest struct {
	Ticker   string  `json:"ticker"`
	Strike   float64 `json:"strike,omitempty"`
	Expiry   string  `json:"expiry,omitempty"`
	Kind     string  `json:"kind,omitempty"`
	IsOption bool    `json:"is_option"`
}

func (r instrumentRequest) toInstrument() (*pricing.Instrument, error) {
	if !r.IsOption {
		return pricing.NewStockInstrument(pricing.Stock{Ticker: pricing.Ticker(r.Ticker)}), nil
	}
	expiry, err := time.Parse("2006-01-02", r.Expiry)
	if err != nil {
		return nil, err
	}
	kind, err := pricing.ParseOptionKind(r.Kind)
	if err != nil {
		return nil, err
	}
	return pricing.NewOptionInstrument(pricing.StockOption{
		Underlying: pricing.Stock{Ticker: pricing.Ticker(r.Ticker)},
		Strike:     r.Strike,
		Expiry:     expiry,
		Kind:       kind,
	}), nil
}

// marketDataRequest is the wire representation of a market-data snapshot.
type marketDataRequest struct {
	ValuationDate string             `json:"valuation_date"`
	Spot          map[string]float64 `json:"spot"`
	Vol           map[string]float64 `json:"vol"`
}

func (r marketDataRequest) toLookupCtx() (*pricing.LookupCtx, error) {
	valDate, err := time.Parse("2006-01-02", r.ValuationDate)
	if err != nil {
		return nil, err
	}
	spot := make(map[pricing.Ticker]float64, len(r.Spot))
	for k, v := range r.Spot {
		spot[pricing.Ticker(k)] = v
	}
	vol := make(map[pricing.Ticker]float64, len(r.Vol))
	for k, v := range r.Vol {
		vol[pricing.Ticker(k)] = v
	}
	return pricing.NewLookupCtx(valDate, spot, vol), nil
}

// priceRequest is the body of POST /api/price.
type priceRequest struct {
	Measure    string            `json:"measure"`
	Instrument instrumentRequest `json:"instrument"`
	MarketData marketDataRequest `json:"market_data"`
}

type priceResponse struct {
	Value float64 `json:"value"`
}

// HandlePrice evaluates a single measure for a single instrument.
func (h *Handlers) HandlePrice(w http.ResponseWriter, r *http.Request) {
	var req priceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	measure, err := pricing.ParseMeasure(req.Measure)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	instrument, err := req.Instrument.toInstrument()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ctx, err := req.MarketData.toLookupCtx()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	value, err := pricing.Evaluate(ctx, measure, instrument)
	if err != nil {
		h.log.Warn().Err(err).Msg("price evaluation failed")
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	h.writeJSON(w, http.StatusOK, priceResponse{Value: value})
}

// scenarioShiftRequest is one transform in a scenario axis stack.
type scenarioShiftRequest struct {
	Target    string    `json:"target"`
	Filter    string    `json:"filter"`
	RelShifts []float64 `json:"rel_shifts"`
	AbsShifts []float64 `json:"abs_shifts"`
	Stacked   bool      `json:"stacked"`
}

// scenarioPriceRequest is the body of POST /api/price/scenario.
type scenarioPriceRequest struct {
	Measure    string                 `json:"measure"`
	Instrument instrumentRequest      `json:"instrument"`
	MarketData marketDataRequest      `json:"market_data"`
	Shifts     []scenarioShiftRequest `json:"shifts"`
}

type scenarioPriceResponse struct {
	Shape  []int     `json:"shape"`
	Values []float64 `json:"values"`
}

// HandleScenarioPrice evaluates a measure across the Cartesian product
// of one or more stacked scenario transforms, returning a flattened
// tensor alongside its shape.
func (h *Handlers) HandleScenarioPrice(w http.ResponseWriter, r *http.Request) {
	var req scenarioPriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.Shifts) == 0 {
		http.Error(w, "at least one scenario shift is required", http.StatusBadRequest)
		return
	}

	measure, err := pricing.ParseMeasure(req.Measure)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	instrument, err := req.Instrument.toInstrument()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	baseCtx, err := req.MarketData.toLookupCtx()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var stacked *pricing.StackedVectorizedCtx
	for i, shift := range req.Shifts {
		target, err := pricing.ParseMeasure(shift.Target)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		filter, err := pricing.ParseInstrumentFilter(shift.Filter)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		def, err := pricing.NewVectorMeasureTransform(target, filter, shift.AbsShifts, shift.RelShifts)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if i == 0 {
			stacked = pricing.ShiftBaseCtx(baseCtx, def)
			continue
		}
		alignment := pricing.Orthogonal
		if shift.Stacked {
			alignment = pricing.Stacked
		}
		stacked = pricing.ShiftVectorCtx(stacked, def, alignment)
	}

	result, err := stacked.Price(measure, instrument)
	if err != nil {
		h.log.Warn().Err(err).Msg("scenario price evaluation failed")
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	h.writeJSON(w, http.StatusOK, scenarioPriceResponse{Shape: result.Shape(), Values: result.Flatten()})
}

// portfolioRepriceRequest is the body of POST /api/portfolio/reprice.
type portfolioRepriceRequest struct {
	Measure    string            `json:"measure"`
	MarketData marketDataRequest `json:"market_data"`
	Positions  []positionRequest `json:"positions"`
}

type positionRequest struct {
	ID         string            `json:"id"`
	Size       float64           `json:"size"`
	Instrument instrumentRequest `json:"instrument"`
}

type positionResultResponse struct {
	ID    string  `json:"id"`
	Value float64 `json:"value,omitempty"`
	Error string  `json:"error,omitempty"`
}

type portfolioRepriceResponse struct {
	Results []positionResultResponse `json:"results"`
	Total   float64                  `json:"total"`
}

// HandlePortfolioReprice reprices every position in the request body in
// parallel via the batch repricer.
func (h *Handlers) HandlePortfolioReprice(w http.ResponseWriter, r *http.Request) {
	var req portfolioRepriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	measure, err := pricing.ParseMeasure(req.Measure)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ctx, err := req.MarketData.toLookupCtx()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	portfolio := pricing.NewPortfolio()
	for _, p := range req.Positions {
		instrument, err := p.Instrument.toInstrument()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		portfolio.AddPosition(pricing.PositionID(p.ID), p.Size, instrument)
	}

	results := h.repricer.Reprice(ctx, measure, portfolio)
	summary := batch.Summarize(results)

	out := make([]positionResultResponse, len(results))
	for i, res := range results {
		r := positionResultResponse{ID: string(res.ID), Value: res.Value}
		if res.Err != nil {
			r.Error = res.Err.Error()
		}
		out[i] = r
	}
	h.writeJSON(w, http.StatusOK, portfolioRepriceResponse{Results: out, Total: summary.Total})
}

// HandleHealth reports service health.
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.Error().Err(err).Msg("failed to encode response")
	}
}
