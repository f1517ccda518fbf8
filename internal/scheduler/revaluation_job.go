package scheduler

import (
	"github.com/rs/zerolog"

	"github.com/aristath/optionpricer/internal/batch"
	"github.com/aristath/optionpricer/internal/pricing"
)

// RevaluationJob reprices every position in a portfolio against the
// pricing context it was built with, on a cron schedule.
type RevaluationJob struct {
	log       zerolog.Logger
	repricer  *batch.Repricer
	portfolio *pricing.Portfolio
	ctx       pricing.PricingCtx
	measure   pricing.Measure
}

// NewRevaluationJob builds a RevaluationJob. ctx is captured as given
// and every run reprices against it; callers that want to swap market
// data construct a new RevaluationJob.
func NewRevaluationJob(repricer *batch.Repricer, portfolio *pricing.Portfolio, ctx pricing.PricingCtx, measure pricing.Measure) *RevaluationJob {
	return &RevaluationJob{
		log:       zerolog.Nop(),
		repricer:  repricer,
		portfolio: portfolio,
		ctx:       ctx,
		measure:   measure,
	}
}

// SetLogger sets the logger for the job.
func (j *RevaluationJob) SetLogger(log zerolog.Logger) {
	j.log = log.With().Str("job", "revaluation").Logger()
}

// Name returns the job name.
func (j *RevaluationJob) Name() string {
	return "portfolio_revaluation"
}

// Run reprices the whole portfolio and logs an aggregate summary.
func (j *RevaluationJob) Run() error {
	results := j.repricer.Reprice(j.ctx, j.measure, j.portfolio)
	summary := batch.Summarize(results)

	j.log.Info().
		Int("priced", summary.NumPriced).
		Int("failed", summary.NumFailed).
		Float64("total", summary.Total).
		Msg("Portfolio revaluation completed")

	if summary.NumFailed > 0 {
		for _, r := range results {
			if r.Err != nil {
				j.log.Warn().Err(r.Err).Str("position_id", string(r.ID)).Msg("Position reprice failed")
			}
		}
	}

	return nil
}
