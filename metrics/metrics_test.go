package metrics_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/intergen/metrics"
	"github.com/katalvlaran/intergen/probas"
	"github.com/katalvlaran/intergen/sampler"
)

func TestRecorderCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg)

	for _, o := range []sampler.Outcome{sampler.Success, sampler.Duplicate, sampler.Failure, sampler.Success} {
		rec.ObserveAttempt(o)
	}
	rec.ObserveTermination(sampler.Succeeded, 2)

	n, err := testutil.GatherAndCount(reg, "intergen_sampler_attempts_total")
	require.NoError(t, err)
	assert.Equal(t, 3, n, "one series per outcome")

	var buf bytes.Buffer
	require.NoError(t, metrics.WriteText(&buf, reg))
	out := buf.String()
	assert.Contains(t, out, `intergen_sampler_attempts_total{outcome="success"} 2`)
	assert.Contains(t, out, `intergen_sampler_attempts_total{outcome="duplicate"} 1`)
	assert.Contains(t, out, `intergen_sampler_attempts_total{outcome="failure"} 1`)
	assert.Contains(t, out, `intergen_sampler_runs_total{state="succeeded"} 1`)
	assert.Contains(t, out, "intergen_sampler_produced 2")
}

func TestRecorderDoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewRecorder(reg)
	assert.Panics(t, func() { metrics.NewRecorder(reg) })
}

func TestWriteTextEmptyRegistry(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, metrics.WriteText(&buf, prometheus.NewRegistry()))
	assert.Empty(t, buf.String())
}

type num int

func (n num) Hash() uint64     { return uint64(n) }
func (n num) Equal(o num) bool { return n == o }

func TestRecorderDrivesSampler(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg)

	// always the same value: one success, then duplicates until the budget is spent
	gen := sampler.GeneratorFunc[num](func(*rand.Rand, int, int, probas.Profile) (num, bool) { return 7, true })
	persist := sampler.PersisterFunc[num](func(int, num) (string, error) { return "mem", nil })
	cfg := sampler.Config{Target: 2, MaxDepth: 1, MinSymbols: 1, RetryBudget: 3}
	smp, err := sampler.New[num](cfg, probas.Default(), gen, persist, sampler.WithRecorder(rec))
	require.NoError(t, err)
	res, err := smp.Run()
	require.NoError(t, err)
	require.Equal(t, sampler.Exhausted, res.State)

	var buf bytes.Buffer
	require.NoError(t, metrics.WriteText(&buf, reg))
	out := buf.String()
	assert.Contains(t, out, `intergen_sampler_attempts_total{outcome="success"} 1`)
	assert.Contains(t, out, `intergen_sampler_attempts_total{outcome="duplicate"} 3`)
	assert.Contains(t, out, `intergen_sampler_runs_total{state="exhausted"} 1`)
	assert.Contains(t, out, "intergen_sampler_produced 1")
}
