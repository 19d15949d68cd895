// Package curve holds the magnetization-vs-temperature curves produced by a
// parameter sweep and their normalization into the [0,1] range shared with
// the externally produced applause-loudness curves.
package curve

// Sample is one measured temperature point of a curve. Fluctuation and
// Susceptibility are the variance-based estimators taken alongside the
// magnetization; LowConfidence marks points whose measurements failed the
// convergence check.
type Sample struct {
	T              float64 `json:"T"`
	M              float64 `json:"M"`
	Fluctuation    float64 `json:"dE"`
	Susceptibility float64 `json:"X"`
	LowConfidence  bool    `json:"lowConfidence,omitempty"`
}

// Curve is the ordered result of one (J, h) temperature sweep. Samples are
// ascending in T. Degenerate is set when normalization found an all-zero
// magnetization curve and left it untouched.
type Curve struct {
	J          float64
	H          float64
	Samples    []Sample
	Degenerate bool
}

// MaxM returns the largest absolute magnetization in the curve.
func (c *Curve) MaxM() float64 {
	max := 0.0
	for _, s := range c.Samples {
		m := s.M
		if m < 0 {
			m = -m
		}
		if m > max {
			max = m
		}
	}
	return max
}

// Normalize rescales the magnetization values so the curve maximum is exactly
// 1, matching the convention of the audio-derived loudness curves. An
// all-zero curve cannot be rescaled; it is flagged Degenerate and left as is.
func (c *Curve) Normalize() {
	max := c.MaxM()
	if max == 0 {
		c.Degenerate = true
		return
	}
	for i := range c.Samples {
		c.Samples[i].M /= max
	}
}
