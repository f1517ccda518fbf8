// Package batch reprices every position in a portfolio in parallel,
// fanning work out across a fixed pool of goroutines and collecting
// per-position results back in portfolio order.
package batch

import (
	"sync"

	"github.com/aristath/optionpricer/internal/pricing"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Repricer reprices positions in parallel using a fixed worker count.
type Repricer struct {
	numWorkers int
}

// NewRepricer builds a Repricer with numWorkers goroutines. A
// non-positive value defaults to 10.
func NewRepricer(numWorkers int) *Repricer {
	if numWorkers <= 0 {
		numWorkers = 10
	}
	return &Repricer{numWorkers: numWorkers}
}

// PositionResult is one position's repriced value, or the error that
// prevented it from pricing.
type PositionResult struct {
	ID    pricing.PositionID
	Value float64
	Err   error
}

// Summary aggregates a batch of successful PositionResult values.
type Summary struct {
	Total       float64
	Mean        float64
	StdDev      float64
	Min         float64
	Max         float64
	NumPriced   int
	NumFailed   int
}

type job struct {
	index    int
	id       pricing.PositionID
	position *pricing.Position
}

type jobResult struct {
	index  int
	result PositionResult
}

// Reprice evaluates measure for every position in the portfolio against
// ctx, fanning out across the worker pool, and returns results in the
// portfolio's insertion order. A failure on one position does not
// abort the others.
func (r *Repricer) Reprice(ctx pricing.PricingCtx, measure pricing.Measure, portfolio *pricing.Portfolio) []PositionResult {
	entries := portfolio.PositionsInOrder()
	n := len(entries)
	if n == 0 {
		return nil
	}

	jobs := make(chan job, n)
	results := make(chan jobResult, n)

	numActualWorkers := r.numWorkers
	if n < numActualWorkers {
		numActualWorkers = n
	}

	var wg sync.WaitGroup
	for i := 0; i < numActualWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(ctx, measure, jobs, results)
		}()
	}

	for idx, entry := range entries {
		jobs <- job{index: idx, id: entry.ID, position: entry.Position}
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	out := make([]PositionResult, n)
	for jr := range results {
		out[jr.index] = jr.result
	}
	return out
}

func worker(ctx pricing.PricingCtx, measure pricing.Measure, jobs <-chan job, results chan<- jobResult) {
	for j := range jobs {
		v, err := pricing.EvaluatePosition(ctx, measure, j.position)
		results <- jobResult{index: j.index, result: PositionResult{ID: j.id, Value: v, Err: err}}
	}
}

// Summarize reduces a batch of PositionResult values into aggregate
// statistics over the successfully priced ones.
func Summarize(results []PositionResult) Summary {
	var values []float64
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			continue
		}
		values = append(values, r.Value)
	}
	if len(values) == 0 {
		return Summary{NumFailed: failed}
	}
	return Summary{
		Total:     floats.Sum(values),
		Mean:      stat.Mean(values, nil),
		StdDev:    stat.StdDev(values, nil),
		Min:       floats.Min(values),
		Max:       floats.Max(values),
		NumPriced: len(values),
		NumFailed: failed,
	}
}
