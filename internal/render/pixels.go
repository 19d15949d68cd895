package render

import (
	"image/color"

	"applause-ising/internal/ising"
)

// fillSpinRGBA converts lattice spins into RGBA pixels in buf, painting up
// and down sites with the two provided colors.
func fillSpinRGBA(buf []byte, spins []ising.Spin, up, down color.Color) {
	rUp, gUp, bUp, aUp := up.RGBA()
	rDown, gDown, bDown, aDown := down.RGBA()
	for i, s := range spins {
		base := i * 4
		if s == ising.SpinUp {
			buf[base+0] = uint8(rUp >> 8)
			buf[base+1] = uint8(gUp >> 8)
			buf[base+2] = uint8(bUp >> 8)
			buf[base+3] = uint8(aUp >> 8)
			continue
		}
		buf[base+0] = uint8(rDown >> 8)
		buf[base+1] = uint8(gDown >> 8)
		buf[base+2] = uint8(bDown >> 8)
		buf[base+3] = uint8(aDown >> 8)
	}
}
