// Package sweep drives the Monte Carlo engine across temperature grids and
// (J, h) parameter products.
package sweep

import (
	"context"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat"

	"applause-ising/internal/curve"
	"applause-ising/internal/ising"
	"applause-ising/pkg/rng"
)

// Pair identifies one (J, h) combination of a parameter sweep. Index is the
// pair's position in the Cartesian product and keys its random streams.
type Pair struct {
	Index int
	J     float64
	H     float64
}

// Params carries the per-run knobs shared by every pair.
type Params struct {
	LatticeSize         int
	Temperatures        []float64 // ascending
	EquilibrationSweeps int
	SamplingSweeps      int

	// WarmStart reuses the lattice across the ascending temperature grid
	// instead of drawing a fresh random lattice per point. Warm runs form a
	// strict sequential chain over the grid.
	WarmStart bool

	// ConvergenceWindow is the trailing fraction of magnetization
	// measurements whose variance is checked against ConvergenceThreshold.
	// A threshold of 0 disables the check.
	ConvergenceWindow    float64
	ConvergenceThreshold float64

	// ExtensionSweeps caps how many extra sampling sweeps may be spent on a
	// point that failed the convergence check before it is annotated
	// low-confidence regardless.
	ExtensionSweeps int
}

// Controller runs the temperature sweep for a single pair.
type Controller struct {
	params Params
}

// NewController returns a controller sharing the given run parameters.
func NewController(params Params) *Controller {
	return &Controller{params: params}
}

// Run walks the ascending temperature grid for one pair and assembles its raw
// (unnormalized) curve. Cancellation is checked between sweeps, never inside
// one, so an aborted run never leaves a half-swept lattice observation.
func (c *Controller) Run(ctx context.Context, pair Pair, streams rng.Streams) (*curve.Curve, error) {
	p := c.params
	sampler := ising.NewSampler(pair.J, pair.H)

	var lat *ising.Lattice
	var source *rand.Rand
	if p.WarmStart {
		source = streams.Pair(pair.Index)
		lat = ising.New(p.LatticeSize, ising.StartRandom, source)
	}

	out := &curve.Curve{J: pair.J, H: pair.H, Samples: make([]curve.Sample, 0, len(p.Temperatures))}
	for ti, temperature := range p.Temperatures {
		if !p.WarmStart {
			source = streams.Point(pair.Index, ti)
			lat = ising.New(p.LatticeSize, ising.StartRandom, source)
		}

		sample, err := c.measurePoint(ctx, sampler, lat, temperature, source)
		if err != nil {
			return nil, err
		}
		out.Samples = append(out.Samples, sample)
	}
	return out, nil
}

func (c *Controller) measurePoint(ctx context.Context, sampler ising.Sampler, lat *ising.Lattice, temperature float64, source *rand.Rand) (curve.Sample, error) {
	p := c.params

	for s := 0; s < p.EquilibrationSweeps; s++ {
		if err := ctx.Err(); err != nil {
			return curve.Sample{}, err
		}
		sampler.Sweep(lat, temperature, source)
	}

	mags := make([]float64, 0, p.SamplingSweeps)
	energies := make([]float64, 0, p.SamplingSweeps)
	measure := func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		sampler.Sweep(lat, temperature, source)
		mags = append(mags, lat.MeanAbsMagnetization())
		energies = append(energies, lat.Energy(sampler.Coupling, sampler.Field))
		return nil
	}

	for s := 0; s < p.SamplingSweeps; s++ {
		if err := measure(); err != nil {
			return curve.Sample{}, err
		}
	}

	low := false
	if p.ConvergenceThreshold > 0 && !c.converged(mags) {
		for s := 0; s < p.ExtensionSweeps && !c.converged(mags); s++ {
			if err := measure(); err != nil {
				return curve.Sample{}, err
			}
		}
		low = !c.converged(mags)
	}

	sample := curve.Sample{T: temperature, LowConfidence: low}
	if len(mags) > 0 {
		sample.M = stat.Mean(mags, nil)
		sample.Fluctuation = fluctuation(energies, temperature)
		sample.Susceptibility = stat.PopVariance(mags, nil)
	}
	return sample, nil
}

// converged reports whether the trailing window of magnetization
// measurements has settled below the variance threshold.
func (c *Controller) converged(mags []float64) bool {
	window := c.params.ConvergenceWindow
	if window <= 0 || window > 1 {
		window = 0.25
	}
	n := int(float64(len(mags)) * window)
	if n < 2 {
		return true
	}
	tail := mags[len(mags)-n:]
	return stat.PopVariance(tail, nil) <= c.params.ConvergenceThreshold
}

// fluctuation is the average energy fluctuation (⟨E²⟩-⟨E⟩²)/T.
func fluctuation(energies []float64, temperature float64) float64 {
	if temperature <= 0 || len(energies) == 0 {
		return 0
	}
	return stat.PopVariance(energies, nil) / temperature
}
