package bounce

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// speedSteps are the selectable simulation speed multipliers, from paused to
// ten times real time.
var speedSteps = []float64{
	0.00, 0.01, 0.02, 0.05, 0.10, 0.20, 0.30, 0.40, 0.50, 0.60,
	0.70, 0.80, 0.90, 1.00, 1.10, 1.20, 1.30, 1.40, 1.50,
	1.60, 1.70, 1.80, 1.90, 2.00, 2.20, 2.40, 2.60, 2.80,
	3.00, 4.00, 5.00, 6.00, 7.00, 8.00, 9.00, 10.00,
}

// defaultSpeedIndex selects the 1.00 multiplier.
const defaultSpeedIndex = 13

// speedTweenDuration is how long, in seconds, the eased transition between
// speed steps takes.
const speedTweenDuration = 0.25

// RunConfig configures the window and game loop created by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// ClearColor fills the screen before the world renders.
	ClearColor Color
	// ShowHUD overlays FPS, object counts, and the current speed multiplier.
	ShowHUD bool
	// OnClick, if set, is called with the cursor position when the left mouse
	// button is pressed. Typical use: spawning balls.
	OnClick func(w *World, pos Vec2)
	// OnUpdate, if set, runs once per tick before the world steps, with the
	// speed-scaled frame time. Returning an error stops the loop.
	OnUpdate func(w *World, dt float64) error
}

// game adapts a World to ebiten.Game. The left and right arrow keys step
// through speedSteps; the effective multiplier eases toward the selected step
// so speed changes don't jolt the simulation.
type game struct {
	world  *World
	cfg    RunConfig
	canvas *Canvas

	speedIndex int
	speed      float64
	speedTween *gween.Tween
}

func (g *game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) && g.speedIndex > 0 {
		g.speedIndex--
		g.retween()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) && g.speedIndex < len(speedSteps)-1 {
		g.speedIndex++
		g.retween()
	}
	if g.speedTween != nil {
		v, done := g.speedTween.Update(float32(dt))
		g.speed = float64(v)
		if done {
			g.speedTween = nil
		}
	}

	if g.cfg.OnClick != nil && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.cfg.OnClick(g.world, Vec2{float64(x), float64(y)})
	}

	scaled := dt * g.speed
	if g.cfg.OnUpdate != nil {
		if err := g.cfg.OnUpdate(g.world, scaled); err != nil {
			return err
		}
	}
	g.world.Step(scaled)
	return nil
}

func (g *game) retween() {
	g.speedTween = gween.New(float32(g.speed), float32(speedSteps[g.speedIndex]),
		speedTweenDuration, ease.OutQuad)
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.ClearColor.toRGBA())
	g.canvas.SetTarget(screen)
	g.world.Render(g.canvas)

	if g.cfg.ShowHUD {
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS: %.1f\nballs: %d  obstacles: %d\nspeed: x%.2f (arrow keys)",
			ebiten.ActualFPS(), g.world.NumBalls(), g.world.NumObstacles(), g.speed))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and drives the world at the display tick rate until the
// window closes or a callback returns an error. Zero-value config fields get
// sensible defaults; a zero world Bounds is set to the window size.
func Run(w *World, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 1080
	}
	if cfg.Height <= 0 {
		cfg.Height = 720
	}
	if cfg.Title == "" {
		cfg.Title = "bounce"
	}
	if w.Bounds.Width == 0 && w.Bounds.Height == 0 {
		w.Bounds = Rect{Width: float64(cfg.Width), Height: float64(cfg.Height)}
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)

	return ebiten.RunGame(&game{
		world:      w,
		cfg:        cfg,
		canvas:     NewCanvas(nil),
		speedIndex: defaultSpeedIndex,
		speed:      speedSteps[defaultSpeedIndex],
	})
}
