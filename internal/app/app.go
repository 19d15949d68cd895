//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"applause-ising/internal/ising"
	"applause-ising/internal/render"
	"applause-ising/pkg/rng"
)

// Game runs a live Metropolis simulation of one lattice as an ebiten.Game.
// One tick is one full sweep at the current temperature.
type Game struct {
	cfg     *Config
	lattice *ising.Lattice
	sampler ising.Sampler
	source  *rand.Rand
	painter *render.LatticePainter

	temperature float64
	sweeps      int
	paused      bool
	tickOnce    bool
	seed        int64

	upColor   color.Color
	downColor color.Color
}

// New constructs a Game for the provided viewer configuration.
func New(cfg *Config) *Game {
	g := &Game{
		cfg:         cfg,
		sampler:     ising.NewSampler(cfg.Coupling, cfg.Field),
		painter:     render.NewLatticePainter(cfg.LatticeSize),
		temperature: cfg.Temperature,
		seed:        cfg.Seed,
		upColor:     color.White,
		downColor:   color.Black,
	}
	g.Reset(cfg.Seed)
	return g
}

// Reset reinitializes the lattice with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.source = rng.NewStreams(seed).Pair(0)
	g.lattice = ising.New(g.cfg.LatticeSize, ising.StartRandom, g.source)
	g.sweeps = 0
	g.tickOnce = false
}

// Update handles input and advances the simulation by one sweep.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.temperature += 0.1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.temperature -= 0.1
		if g.temperature < 0 {
			g.temperature = 0
		}
	}

	if (!g.paused) || g.tickOnce {
		g.sampler.Sweep(g.lattice, g.temperature, g.source)
		g.sweeps++
		g.tickOnce = false
	}
	return nil
}

// Draw renders the lattice with a status line.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.lattice.Spins(), g.upColor, g.downColor, g.cfg.Scale)

	status := fmt.Sprintf("T=%.2f J=%g k=%g |M|=%.3f sweep=%d",
		g.temperature, g.sampler.Coupling, g.sampler.Field,
		g.lattice.MeanAbsMagnetization(), g.sweeps)
	if g.paused {
		status += " [paused]"
	}
	ebitenutil.DebugPrintAt(screen, status, 4, 4)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.LatticeSize * g.cfg.Scale, g.cfg.LatticeSize * g.cfg.Scale
}
