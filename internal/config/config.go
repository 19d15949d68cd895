// Package config holds the run configuration for the simulation CLI and its
// fail-fast validation.
package config

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

// Config represents the command-line parameters for a parameter sweep run.
type Config struct {
	LatticeSize int
	JValues     []float64
	KValues     []float64

	TMin    float64
	TMax    float64
	TPoints int

	EquilibrationSweeps int
	SamplingSweeps      int

	Seed        int64
	StartPolicy string // "cold" or "warm"

	ConvergenceWindow    float64
	ConvergenceThreshold float64
	ExtensionSweeps      int

	Workers int
	OutDir  string
	Format  string // "table" or "json"
	Verbose bool
}

// Default returns a Config populated with sensible defaults.
func Default() Config {
	return Config{
		LatticeSize:         50,
		JValues:             []float64{1},
		KValues:             []float64{0},
		TMin:                0.1,
		TMax:                5.0,
		TPoints:             50,
		EquilibrationSweeps: 300,
		SamplingSweeps:      1000,
		Seed:                1337,
		StartPolicy:         "cold",
		ConvergenceWindow:   0.25,
		OutDir:              "results",
		Format:              "table",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.LatticeSize, "L", c.LatticeSize, "side length of the square lattice")
	fs.Var((*floatList)(&c.JValues), "J", "comma-separated coupling constants to sweep")
	fs.Var((*floatList)(&c.KValues), "k", "comma-separated field strengths to sweep")
	fs.Float64Var(&c.TMin, "tmin", c.TMin, "lowest temperature of the grid")
	fs.Float64Var(&c.TMax, "tmax", c.TMax, "highest temperature of the grid")
	fs.IntVar(&c.TPoints, "n", c.TPoints, "number of temperature points")
	fs.IntVar(&c.EquilibrationSweeps, "equil", c.EquilibrationSweeps, "burn-in sweeps per temperature point")
	fs.IntVar(&c.SamplingSweeps, "sample", c.SamplingSweeps, "measurement sweeps per temperature point")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "base seed for the derived random streams")
	fs.StringVar(&c.StartPolicy, "start", c.StartPolicy, "lattice start policy across temperatures: cold or warm")
	fs.Float64Var(&c.ConvergenceWindow, "conv-window", c.ConvergenceWindow, "trailing fraction of measurements used by the convergence check")
	fs.Float64Var(&c.ConvergenceThreshold, "conv-threshold", c.ConvergenceThreshold, "magnetization variance threshold, 0 disables the check")
	fs.IntVar(&c.ExtensionSweeps, "extend", c.ExtensionSweeps, "extra sampling sweeps allowed when the convergence check fails")
	fs.IntVar(&c.Workers, "workers", c.Workers, "worker goroutines, 0 means one per CPU")
	fs.StringVar(&c.OutDir, "out", c.OutDir, "directory the per-pair curve files are written to")
	fs.StringVar(&c.Format, "format", c.Format, "output format: table or json")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log per-pair progress")
}

// FieldError reports an invalid configuration value, naming the field.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return "invalid configuration: " + e.Field + " " + e.Reason
}

// Validate fails fast on the first invalid field, before any simulation work
// starts.
func (c *Config) Validate() error {
	switch {
	case c.LatticeSize <= 0:
		return &FieldError{"lattice_size", fmt.Sprintf("must be positive, got %d", c.LatticeSize)}
	case len(c.JValues) == 0:
		return &FieldError{"J_values", "must not be empty"}
	case len(c.KValues) == 0:
		return &FieldError{"k_values", "must not be empty"}
	case c.TMin <= 0:
		return &FieldError{"temperature_range", fmt.Sprintf("min must be positive, got %g", c.TMin)}
	case c.TMin >= c.TMax:
		return &FieldError{"temperature_range", fmt.Sprintf("min %g must be below max %g", c.TMin, c.TMax)}
	case c.TPoints <= 0:
		return &FieldError{"n", fmt.Sprintf("must be positive, got %d", c.TPoints)}
	case c.EquilibrationSweeps < 0:
		return &FieldError{"equilibration_sweeps", fmt.Sprintf("must not be negative, got %d", c.EquilibrationSweeps)}
	case c.SamplingSweeps < 0:
		return &FieldError{"sampling_sweeps", fmt.Sprintf("must not be negative, got %d", c.SamplingSweeps)}
	case c.StartPolicy != "cold" && c.StartPolicy != "warm":
		return &FieldError{"start_policy", fmt.Sprintf("must be cold or warm, got %q", c.StartPolicy)}
	case c.ConvergenceWindow <= 0 || c.ConvergenceWindow > 1:
		return &FieldError{"conv_window", fmt.Sprintf("must be in (0, 1], got %g", c.ConvergenceWindow)}
	case c.ConvergenceThreshold < 0:
		return &FieldError{"conv_threshold", fmt.Sprintf("must not be negative, got %g", c.ConvergenceThreshold)}
	case c.ExtensionSweeps < 0:
		return &FieldError{"extension_sweeps", fmt.Sprintf("must not be negative, got %d", c.ExtensionSweeps)}
	case c.Format != "table" && c.Format != "json":
		return &FieldError{"format", fmt.Sprintf("must be table or json, got %q", c.Format)}
	}
	return nil
}

// Temperatures materializes the ascending linear grid of TPoints values
// spanning [TMin, TMax], both endpoints included.
func (c *Config) Temperatures() []float64 {
	if c.TPoints == 1 {
		return []float64{c.TMin}
	}
	ts := make([]float64, c.TPoints)
	step := (c.TMax - c.TMin) / float64(c.TPoints-1)
	for i := range ts {
		ts[i] = c.TMin + step*float64(i)
	}
	return ts
}

// floatList adapts a []float64 to the flag.Value interface, parsing
// comma-separated numbers.
type floatList []float64

func (f *floatList) String() string {
	parts := make([]string, len(*f))
	for i, v := range *f {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (f *floatList) Set(s string) error {
	var out floatList
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return fmt.Errorf("not a number: %q", part)
		}
		out = append(out, v)
	}
	*f = out
	return nil
}
