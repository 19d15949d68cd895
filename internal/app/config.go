package app

import "flag"

// Config represents the command-line parameters of the lattice viewer.
type Config struct {
	LatticeSize int
	Coupling    float64
	Field       float64
	Temperature float64
	Scale       int
	TPS         int
	Seed        int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		LatticeSize: 128,
		Coupling:    1,
		Temperature: 2.27,
		Scale:       4,
		TPS:         30,
		Seed:        42,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.LatticeSize, "L", c.LatticeSize, "side length of the square lattice")
	fs.Float64Var(&c.Coupling, "J", c.Coupling, "coupling constant")
	fs.Float64Var(&c.Field, "k", c.Field, "external field strength")
	fs.Float64Var(&c.Temperature, "T", c.Temperature, "initial temperature")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "sweeps per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for lattice reset")
}
