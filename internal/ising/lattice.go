package ising

import (
	"math"
	"math/rand/v2"
)

// Lattice stores an L×L grid of spins in row-major order with toroidal
// wrapping, so every site has exactly four neighbors.
type Lattice struct {
	l     int
	spins []Spin
}

// New allocates an L×L lattice initialized per the start mode. The random
// source is only consulted for StartRandom.
func New(l int, mode StartMode, rng *rand.Rand) *Lattice {
	if l <= 0 {
		l = 1
	}
	lat := &Lattice{l: l, spins: make([]Spin, l*l)}
	switch mode {
	case StartAllUp:
		for i := range lat.spins {
			lat.spins[i] = SpinUp
		}
	case StartAllDown:
		// zero value is SpinDown
	default:
		for i := range lat.spins {
			lat.spins[i] = Spin(rng.IntN(2))
		}
	}
	return lat
}

// Size returns the side length L.
func (lat *Lattice) Size() int { return lat.l }

// Spins exposes the backing slice so callers can read values directly.
func (lat *Lattice) Spins() []Spin { return lat.spins }

// Wrap applies toroidal wrapping to a coordinate.
func (lat *Lattice) Wrap(i int) int {
	return (i%lat.l + lat.l) % lat.l
}

// At returns the spin at (i, j), wrapping both coordinates.
func (lat *Lattice) At(i, j int) Spin {
	return lat.spins[lat.Wrap(i)*lat.l+lat.Wrap(j)]
}

// Set assigns the spin at (i, j), wrapping both coordinates.
func (lat *Lattice) Set(i, j int, s Spin) {
	lat.spins[lat.Wrap(i)*lat.l+lat.Wrap(j)] = s
}

// Flip negates the spin at (i, j). No other site is touched.
func (lat *Lattice) Flip(i, j int) {
	idx := lat.Wrap(i)*lat.l + lat.Wrap(j)
	lat.spins[idx] = lat.spins[idx].Flipped()
}

// NeighborSum returns the ±1 sum of the four wrapped neighbors of (i, j).
func (lat *Lattice) NeighborSum(i, j int) int {
	return lat.At(i+1, j).Value() +
		lat.At(i-1, j).Value() +
		lat.At(i, j+1).Value() +
		lat.At(i, j-1).Value()
}

// Magnetization returns the signed mean spin, in [-1, 1].
func (lat *Lattice) Magnetization() float64 {
	sum := 0
	for _, s := range lat.spins {
		sum += s.Value()
	}
	return float64(sum) / float64(len(lat.spins))
}

// MeanAbsMagnetization returns |Σ spins| / L².
func (lat *Lattice) MeanAbsMagnetization() float64 {
	return math.Abs(lat.Magnetization())
}

// Energy returns the total configuration energy
// -J·Σ_bonds s_i·s_j - h·Σ s_i, counting each nearest-neighbor bond once by
// pairing every site with its right and down neighbor on the torus.
func (lat *Lattice) Energy(coupling, field float64) float64 {
	bonds := 0
	sum := 0
	for i := 0; i < lat.l; i++ {
		for j := 0; j < lat.l; j++ {
			s := lat.At(i, j).Value()
			bonds += s * (lat.At(i+1, j).Value() + lat.At(i, j+1).Value())
			sum += s
		}
	}
	return -coupling*float64(bonds) - field*float64(sum)
}
