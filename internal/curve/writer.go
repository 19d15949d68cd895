package curve

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Format selects the on-disk representation of a curve.
type Format string

const (
	// FormatTable writes a fixed-width text table with T and M columns.
	FormatTable Format = "table"
	// FormatJSON writes a document with the records and the (J, h) pair.
	FormatJSON Format = "json"
)

// FileName composes the per-pair output file name, e.g. "curve-J1.2-h0.4.txt".
func FileName(c *Curve, format Format) string {
	ext := "txt"
	if format == FormatJSON {
		ext = "json"
	}
	return fmt.Sprintf("curve-J%g-h%g.%s", c.J, c.H, ext)
}

// WriteFile serializes the curve into dir under its pair-derived file name.
func WriteFile(dir string, c *Curve, format Format) error {
	path := filepath.Join(dir, FileName(c, format))
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create curve file")
	}
	if err := Write(f, c, format); err != nil {
		f.Close()
		return errors.Wrapf(err, "write curve %s", path)
	}
	return errors.Wrap(f.Close(), "close curve file")
}

// Write serializes the curve in the requested format.
func Write(w io.Writer, c *Curve, format Format) error {
	if format == FormatJSON {
		return writeJSON(w, c)
	}
	return writeTable(w, c)
}

func writeTable(w io.Writer, c *Curve) error {
	if _, err := fmt.Fprintf(w, "# J=%g h=%g\n", c.J, c.H); err != nil {
		return err
	}
	if c.Degenerate {
		if _, err := fmt.Fprintln(w, "# degenerate: all-zero magnetization, not normalized"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "%12s%15s%18s%20s\n", "T", "M", "fluctuation", "susceptibility"); err != nil {
		return err
	}
	for _, s := range c.Samples {
		mark := ""
		if s.LowConfidence {
			mark = "  low-confidence"
		}
		if _, err := fmt.Fprintf(w, "%12.4f%15.6f%18.4f%20.6f%s\n",
			s.T, s.M, s.Fluctuation, s.Susceptibility, mark); err != nil {
			return err
		}
	}
	return nil
}

type jsonDocument struct {
	Records []Sample   `json:"records"`
	Params  jsonParams `json:"params"`
}

type jsonParams struct {
	J          float64 `json:"J"`
	H          float64 `json:"h"`
	Degenerate bool    `json:"degenerate,omitempty"`
}

func writeJSON(w io.Writer, c *Curve) error {
	doc := jsonDocument{
		Records: c.Samples,
		Params:  jsonParams{J: c.J, H: c.H, Degenerate: c.Degenerate},
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
