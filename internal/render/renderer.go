//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"applause-ising/internal/ising"
)

// LatticePainter updates a single RGBA image from lattice spins.
type LatticePainter struct {
	l   int
	img *ebiten.Image
	buf []byte
}

// NewLatticePainter allocates a painter for an L×L lattice.
func NewLatticePainter(l int) *LatticePainter {
	lp := &LatticePainter{l: l, buf: make([]byte, 4*l*l)}
	lp.img = ebiten.NewImage(l, l)
	return lp
}

// Blit uploads the lattice spins into the painter image and draws it scaled.
func (lp *LatticePainter) Blit(dst *ebiten.Image, spins []ising.Spin, up, down color.Color, scale int) {
	if len(spins) != lp.l*lp.l {
		return
	}
	fillSpinRGBA(lp.buf, spins, up, down)
	lp.img.WritePixels(lp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(lp.img, op)
}

// Size returns the side length of the underlying image.
func (lp *LatticePainter) Size() int { return lp.l }
