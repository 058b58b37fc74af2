// Package bounce is a 2D rigid-circle physics sandbox for [Ebitengine] with
// continuous collision detection.
//
// Bounce simulates circular balls against rectangle, diamond, and arc
// obstacles. Collisions are resolved by sweeping each ball along its velocity
// and solving for the exact time of impact within the frame, so fast balls
// never tunnel through thin walls. Obstacles carry data-driven collision
// effects (color changes, speed boosts, sounds, spawning, removal) that fire
// when a ball strikes them.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	world := bounce.NewWorld(bounce.Rect{Width: 1080, Height: 720})
//	world.AddObstacle(bounce.NewRectangle(
//		bounce.Vec2{X: 540, Y: 600}, bounce.Vec2{}, 300, 20,
//		bounce.ColorWhite, true))
//	world.AddBall(bounce.NewBall(
//		bounce.Vec2{X: 540, Y: 100}, bounce.Vec2{X: 120, Y: 0},
//		12, bounce.ColorWhite, 1, 1, true))
//	bounce.Run(world, bounce.RunConfig{Title: "demo"})
//
// For full control, implement [ebiten.Game] yourself and call [World.Step]
// and [World.Render] directly:
//
//	type Game struct {
//		world  *bounce.World
//		canvas *bounce.Canvas
//	}
//
//	func (g *Game) Update() error { g.world.Step(1.0 / 60); return nil }
//	func (g *Game) Draw(s *ebiten.Image) {
//		g.canvas.SetTarget(s)
//		g.world.Render(g.canvas)
//	}
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// # Obstacles and effects
//
// Every obstacle implements [Obstacle]. Create them with typed constructors:
// [NewRectangle], [NewDiamond], [NewArc]. Attach effects with
// [Obstacle.AddEffect] (or [Ball.AddEffect] for per-ball effects):
//
//	wall := bounce.NewRectangle(pos, bounce.Vec2{}, 200, 30, red, true)
//	wall.AddEffect(bounce.NewVelocityBoost(1.5, false))
//	wall.AddEffect(bounce.NewSoundPlay(blip, false))
//
// Arcs additionally support rotation, escape detection through their angular
// gap ([Arc.OnEscape]), and collision observers ([Arc.OnCollision]).
//
// Sound playback lives in the bounce/audio subpackage, built on [Beep]; any
// type implementing [Sound] works.
//
// [Ebitengine]: https://ebitengine.org
// [Beep]: https://github.com/gopxl/beep
package bounce
