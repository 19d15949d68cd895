package sweep

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"applause-ising/internal/curve"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func smallParams() Params {
	return Params{
		LatticeSize:         6,
		Temperatures:        linspace(1.0, 3.5, 4),
		EquilibrationSweeps: 20,
		SamplingSweeps:      20,
	}
}

func TestPairsCartesianProduct(t *testing.T) {
	pairs := Pairs([]float64{0.4, 0.8}, []float64{0.1, 0.2, 0.3})
	require.Len(t, pairs, 6)

	assert.Equal(t, Pair{Index: 0, J: 0.4, H: 0.1}, pairs[0])
	assert.Equal(t, Pair{Index: 3, J: 0.8, H: 0.1}, pairs[3])
	assert.Equal(t, Pair{Index: 5, J: 0.8, H: 0.3}, pairs[5])
}

func TestRunIsOrderIndependent(t *testing.T) {
	couplings := []float64{0.4, 0.8}
	fields := []float64{0.4, 0.8}

	run := func(workers int) []*curve.Curve {
		o := NewOrchestrator(workers, quietLogger())
		curves, err := o.Run(context.Background(), couplings, fields, smallParams(), 42)
		require.NoError(t, err)
		require.Len(t, curves, 4)
		return curves
	}

	sequential := run(1)
	parallel := run(4)
	require.Equal(t, sequential, parallel,
		"per-pair curves must not depend on the worker count")
}

func TestRunNormalizesCurves(t *testing.T) {
	o := NewOrchestrator(2, quietLogger())
	curves, err := o.Run(context.Background(), []float64{1}, []float64{0, 0.4}, smallParams(), 1)
	require.NoError(t, err)

	for _, c := range curves {
		require.False(t, c.Degenerate)
		assert.Equal(t, 1.0, c.MaxM(), "J=%g h=%g", c.J, c.H)
		for _, s := range c.Samples {
			assert.GreaterOrEqual(t, s.M, 0.0)
			assert.LessOrEqual(t, s.M, 1.0)
		}
	}
}

func TestRunEmitsProgress(t *testing.T) {
	progress := make(chan Progress, 8)
	o := NewOrchestrator(2, quietLogger())
	o.Progress = progress

	_, err := o.Run(context.Background(), []float64{0.5, 1}, []float64{0}, smallParams(), 9)
	require.NoError(t, err)
	close(progress)

	var events []Progress
	for p := range progress {
		events = append(events, p)
	}
	assert.Len(t, events, 2, "one event per completed pair")
}

func TestRunCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	o := NewOrchestrator(2, quietLogger())
	curves, err := o.Run(ctx, []float64{1}, []float64{0}, smallParams(), 1)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, curves)
}
