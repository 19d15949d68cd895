package ising

// Spin is one binary lattice site. Keeping it a two-state type (rather than a
// bare ±1 integer) means invalid spin values cannot be represented; conversion
// to ±1 happens only at the arithmetic boundary via Value.
type Spin uint8

const (
	// SpinDown maps to -1 in the energy and magnetization arithmetic.
	SpinDown Spin = 0
	// SpinUp maps to +1.
	SpinUp Spin = 1
)

// Value returns the ±1 arithmetic value of the spin.
func (s Spin) Value() int {
	if s == SpinUp {
		return 1
	}
	return -1
}

// Flipped returns the opposite spin.
func (s Spin) Flipped() Spin { return s ^ 1 }

// StartMode selects how a fresh lattice is initialized.
type StartMode int

const (
	// StartRandom draws every spin independently and uniformly.
	StartRandom StartMode = iota
	// StartAllUp initializes a fully ordered up lattice.
	StartAllUp
	// StartAllDown initializes a fully ordered down lattice.
	StartAllDown
)
