package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"applause-ising/internal/config"
	"applause-ising/internal/curve"
	"applause-ising/internal/sweep"
)

func main() {
	cfg := config.Default()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	log := logrus.New()
	if cfg.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg config.Config, log *logrus.Logger) error {
	params := sweep.Params{
		LatticeSize:          cfg.LatticeSize,
		Temperatures:         cfg.Temperatures(),
		EquilibrationSweeps:  cfg.EquilibrationSweeps,
		SamplingSweeps:       cfg.SamplingSweeps,
		WarmStart:            cfg.StartPolicy == "warm",
		ConvergenceWindow:    cfg.ConvergenceWindow,
		ConvergenceThreshold: cfg.ConvergenceThreshold,
		ExtensionSweeps:      cfg.ExtensionSweeps,
	}

	pairs := len(cfg.JValues) * len(cfg.KValues)
	log.WithFields(logrus.Fields{
		"pairs":        pairs,
		"temperatures": len(params.Temperatures),
		"L":            cfg.LatticeSize,
		"start":        cfg.StartPolicy,
	}).Info("starting parameter sweep")

	progress := make(chan sweep.Progress, pairs)
	orchestrator := sweep.NewOrchestrator(cfg.Workers, log)
	orchestrator.Progress = progress

	done := make(chan struct{})
	go func() {
		defer close(done)
		completed := 0
		for p := range progress {
			completed++
			log.WithFields(logrus.Fields{
				"J":       p.Pair.J,
				"h":       p.Pair.H,
				"elapsed": p.Elapsed.Round(time.Millisecond),
				"done":    completed,
				"total":   pairs,
			}).Info("pair complete")
		}
	}()

	start := time.Now()
	curves, runErr := orchestrator.Run(ctx, cfg.JValues, cfg.KValues, params, cfg.Seed)
	close(progress)
	<-done
	if runErr != nil && len(curves) == 0 {
		return errors.Wrap(runErr, "parameter sweep")
	}

	// Pairs that completed before a cancellation are still valid; write them.
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return errors.Wrap(err, "create output directory")
	}
	for _, c := range curves {
		if err := curve.WriteFile(cfg.OutDir, c, curve.Format(cfg.Format)); err != nil {
			return err
		}
	}
	if runErr != nil {
		log.WithField("curves", len(curves)).Warn("sweep aborted, wrote completed pairs only")
		return errors.Wrap(runErr, "parameter sweep")
	}

	log.WithFields(logrus.Fields{
		"curves":  len(curves),
		"dir":     cfg.OutDir,
		"elapsed": time.Since(start).Round(time.Millisecond),
	}).Info("sweep complete")
	return nil
}
