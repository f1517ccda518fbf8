// Package main is the entry point for the pricer service: an HTTP API
// for pricing equities and equity options, plus a scheduled background
// job that revalues a standing demo portfolio.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aristath/optionpricer/internal/batch"
	"github.com/aristath/optionpricer/internal/config"
	"github.com/aristath/optionpricer/internal/pricing"
	"github.com/aristath/optionpricer/internal/scheduler"
	"github.com/aristath/optionpricer/internal/server"
	"github.com/aristath/optionpricer/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallbackLog := logger.New(logger.Config{Level: "info", Pretty: true})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})

	log.Info().Msg("Starting pricer")

	portfolio, ctx := demoPortfolio()

	repricer := batch.NewRepricer(cfg.RepricerWorkers)

	srv := server.New(server.Config{
		Log:      log,
		Config:   cfg,
		Port:     cfg.Port,
		DevMode:  cfg.DevMode,
		Repricer: repricer,
	})

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()
	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	sched := scheduler.New(log)
	revalJob := scheduler.NewRevaluationJob(repricer, portfolio, ctx, pricing.Exposure)
	revalJob.SetLogger(log)
	if err := sched.AddJob(cfg.RevaluationCron, revalJob); err != nil {
		log.Fatal().Err(err).Msg("Failed to register revaluation job")
	}
	sched.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down pricer...")
	sched.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Pricer stopped")
}

// demoPortfolio seeds a small standing portfolio and market snapshot so
// the scheduled revaluation job has something to reprice out of the box.
// A real deployment would source both from a market-data feed and a
// position-keeping system instead.
func demoPortfolio() (*pricing.Portfolio, *pricing.LookupCtx) {
	valDate := time.Now()

	portfolio := pricing.NewPortfolio()
	portfolio.AddTrade(pricing.NewStockInstrument(pricing.Stock{Ticker: "AAPL"}), 100)
	portfolio.AddTrade(pricing.NewOptionInstrument(pricing.StockOption{
		Underlying: pricing.Stock{Ticker: "AAPL"},
		Strike:     150,
		Expiry:     valDate.AddDate(1, 0, 0),
		Kind:       pricing.Call,
	}), 25)

	ctx := pricing.NewLookupCtx(valDate, map[pricing.Ticker]float64{
		"AAPL": 175.0,
	}, map[pricing.Ticker]float64{
		"AAPL": 0.22,
	})

	return portfolio, ctx
}
