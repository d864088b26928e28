// SPDX-License-Identifier: MIT
// Package: intergen/harness
//
// harness.go: one generation run, end to end.
//
// Steps:
//   1. Validate the Config.
//   2. Load the signature, resolve the probability profile.
//   3. Open the sink (directory or badger) unless one was injected.
//   4. Run the sampler with an Encode-then-Write persister.
//   5. Prepend the run header to the status lines; dump metrics if asked.

package harness

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/intergen/interaction"
	"github.com/katalvlaran/intergen/metrics"
	"github.com/katalvlaran/intergen/probas"
	"github.com/katalvlaran/intergen/sampler"
	"github.com/katalvlaran/intergen/store"
)

// runNamespace scopes run ids; a run id is the SHA-1 UUID of the YAML form
// of its Config within it, so equal configurations share an id.
var runNamespace = uuid.MustParse("6f1c2a3e-4b5d-5e6f-8a9b-0c1d2e3f4a5b")

// interactionWriter persists interactions as encoded files in a sink.
type interactionWriter struct {
	ctx  *interaction.Context
	sink store.Sink
}

func (w interactionWriter) Persist(ordinal int, i *interaction.Interaction) (string, error) {
	return w.sink.Write(store.FileName(ordinal, interaction.FileExtension), interaction.Encode(w.ctx, i))
}

// RunID returns the deterministic identifier of cfg.
func RunID(cfg Config) (uuid.UUID, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return uuid.Nil, fmt.Errorf("encode config: %w", err)
	}
	return uuid.NewSHA1(runNamespace, data), nil
}

// Header returns the status lines printed before the sampler's own.
func Header(cfg Config, p probas.Profile, id uuid.UUID) []string {
	return []string{
		"generated random interactions",
		fmt.Sprintf("with %s interaction symbols selection probabilities", p.Name()),
		fmt.Sprintf("num_ints : %d, max_depth : %d, min_symbols : %d, seed : %d",
			cfg.NumInts, cfg.MaxDepth, cfg.MinSymbols, cfg.Seed),
		fmt.Sprintf("in folder '%s'", cfg.Folder),
		fmt.Sprintf("run id : %s", id),
	}
}

// Run executes one generation run. Configuration errors are returned before
// any attempt. An exhausted budget is not an error: the result carries the
// partial output and State == sampler.Exhausted.
func Run(cfg Config, opts ...Option) (sampler.RunResult, error) {
	o := newRunOptions(opts...)
	logger := o.logger

	if err := cfg.Validate(); err != nil {
		return sampler.RunResult{}, fmt.Errorf("%s: %w", methodRun, err)
	}
	ctx, err := interaction.LoadContext(cfg.Context)
	if err != nil {
		return sampler.RunResult{}, fmt.Errorf("%s: %w", methodRun, err)
	}
	profile, err := probas.Resolve(cfg.Probas, cfg.Weights)
	if err != nil {
		return sampler.RunResult{}, fmt.Errorf("%s: %w", methodRun, err)
	}
	gen, err := interaction.NewGenerator(ctx)
	if err != nil {
		return sampler.RunResult{}, fmt.Errorf("%s: %w", methodRun, err)
	}
	id, err := RunID(cfg)
	if err != nil {
		return sampler.RunResult{}, fmt.Errorf("%s: %v: %w", methodRun, err, ErrInvalidConfig)
	}

	sink := o.sink
	if sink == nil {
		sink, err = openSink(cfg, logger)
		if err != nil {
			return sampler.RunResult{}, fmt.Errorf("%s: %w", methodRun, err)
		}
		defer func() {
			if cerr := sink.Close(); cerr != nil {
				logger.Warn("closing sink failed", "sink", cfg.Sink, "error", cerr)
			}
		}()
	}

	reg := o.registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	rec := metrics.NewRecorder(reg)

	runLogger := logger.With("run_id", id.String())
	smp, err := sampler.New[*interaction.Interaction](
		cfg.SamplingConfig(), profile, gen,
		interactionWriter{ctx: ctx, sink: sink},
		sampler.WithLogger(runLogger),
		sampler.WithRecorder(rec),
	)
	if err != nil {
		return sampler.RunResult{}, fmt.Errorf("%s: %w", methodRun, err)
	}

	runLogger.Info("starting generation",
		"context", cfg.Context,
		"profile", profile.Name(),
		"num_ints", cfg.NumInts,
		"retry_budget", cfg.RetryBudget(),
		"sink", cfg.Sink,
		"folder", cfg.Folder)

	res, runErr := smp.Run()
	res.Status = append(Header(cfg, profile, id), res.Status...)
	if runErr != nil {
		return res, fmt.Errorf("%s: %w", methodRun, runErr)
	}

	if cfg.MetricsOut != "" {
		if err := dumpMetrics(cfg.MetricsOut, reg); err != nil {
			return res, fmt.Errorf("%s: %w", methodRun, err)
		}
	}
	return res, nil
}

func openSink(cfg Config, logger *slog.Logger) (store.Sink, error) {
	switch cfg.Sink {
	case SinkBadger:
		bcfg := store.DefaultBadgerConfig(cfg.Folder)
		bcfg.Logger = logger
		return store.OpenBadger(bcfg)
	default:
		return store.NewDir(cfg.Folder)
	}
}

func dumpMetrics(path string, g prometheus.Gatherer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create metrics file: %w", err)
	}
	if err := metrics.WriteText(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
