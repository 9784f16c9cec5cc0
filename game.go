package main

import (
	"image/color"
	"math/rand"
	"time"

	"github.com/aquilax/go-perlin"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	resizeDebounce = 100 * time.Millisecond
	fadeInPerTick  = 1.0 / 60.0 // Overlay fades in over about a second
	backdropStep   = 16
)

// Game struct: Hosts the dust field overlay inside the ebiten loop
type Game struct {
	cfg         Config
	allowMotion bool

	surface *imageSurface
	sched   *tickScheduler
	field   *Field

	noise *perlin.Perlin
	tick  float64
	fade  float64

	paused bool

	// Debounced window resize: the size change is noted immediately, the
	// field only hears about it once the size has held for a beat
	appliedW, appliedH int
	pendingW, pendingH int
	resizeDue          time.Time
}

// NewGame creates the demo host. allowMotion false (reduced motion requested)
// means the field is never created; the backdrop still renders.
func NewGame(cfg Config, allowMotion bool) *Game {
	return &Game{
		cfg:         cfg,
		allowMotion: allowMotion,
		sched:       &tickScheduler{},
		noise:       perlin.NewPerlin(2, 2, 3, time.Now().UnixNano()),
	}
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		if g.field != nil {
			g.field.Stop()
		}
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}

	w, h := ebiten.WindowSize()

	if g.field == nil && g.allowMotion && !isTouchDevice() {
		g.surface = newImageSurface(w, h)
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		field, err := StartField(g.surface, g.sched, rng, float64(w), float64(h), g.cfg)
		if err != nil {
			return err
		}
		g.field = field
		g.appliedW, g.appliedH = w, h
		g.pendingW, g.pendingH = w, h
	}

	if g.field != nil {
		if w != g.pendingW || h != g.pendingH {
			g.pendingW, g.pendingH = w, h
			g.resizeDue = time.Now().Add(resizeDebounce)
		}
		if (g.pendingW != g.appliedW || g.pendingH != g.appliedH) && time.Now().After(g.resizeDue) {
			g.field.Resize(float64(g.pendingW), float64(g.pendingH))
			g.appliedW, g.appliedH = g.pendingW, g.pendingH
		}

		if !g.paused {
			g.sched.Tick()
			if g.fade < 1 {
				g.fade += fadeInPerTick
				if g.fade > 1 {
					g.fade = 1
				}
			}
		}
	}

	g.tick += 1.0 / 60.0
	return nil
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackdrop(screen)

	if g.field != nil {
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(g.fade))
		screen.DrawImage(g.surface.Image(), op)
	}
}

// drawBackdrop paints slow perlin-lit horizontal bands, a stand-in for the
// site's dark hero background.
func (g *Game) drawBackdrop(screen *ebiten.Image) {
	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()
	for y := 0; y < h; y += backdropStep {
		n := g.noise.Noise2D(g.tick*0.08, float64(y)/240)
		v := 14 + n*6
		clr := color.RGBA{R: uint8(v + 6), G: uint8(v), B: uint8(v + 10), A: 255}
		vector.DrawFilledRect(screen, 0, float32(y), float32(w), backdropStep, clr, false)
	}
}

// Layout returns the screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// isTouchDevice reports whether touch input is active. A field is never
// started on a touch device; once running, touches are ignored.
func isTouchDevice() bool {
	return len(ebiten.AppendTouchIDs(nil)) > 0
}
