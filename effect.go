package bounce

// EffectKind identifies what a collision effect does to the ball it fires on.
type EffectKind uint8

const (
	EffectColorChange    EffectKind = iota // overwrite the ball's color
	EffectVelocityBoost                    // multiply velocity by a factor > 1
	EffectVelocityDampen                   // multiply velocity by a factor < 1
	EffectSizeChange                       // multiply radius, clamped to [2, 100]
	EffectSoundPlay                        // trigger a sound
	EffectDisappear                        // mark the ball for removal
	EffectSpawn                            // request a new ball from the owning loop
)

// Sound is an opaque handle to a playable sound. The audio subpackage provides
// synthesized implementations; the simulation core never touches an audio
// device itself.
type Sound interface {
	Play()
	Stop()
	Playing() bool
}

// SpawnParams carries the parameters of a Spawn effect. The effect engine
// performs no spawning itself; the owning game loop receives these through
// World.OnSpawn (or the callback passed to ApplyEffects) and constructs the
// ball.
type SpawnParams struct {
	Position Vec2
	Radius   float64
	Color    Color
}

// Effect is a single collision effect. Effects are applied to the ball
// involved in a contact, whether the effect is attached to the ball itself or
// to the obstacle it hit.
//
// Continuous effects reapply on every frame of sustained contact; one-shot
// effects fire only at the instant contact begins.
type Effect struct {
	Kind       EffectKind
	Continuous bool

	Color  Color   // EffectColorChange
	Factor float64 // EffectVelocityBoost, EffectVelocityDampen, EffectSizeChange
	Sound  Sound   // EffectSoundPlay

	// Presentation hints for EffectDisappear: how many particles to burst,
	// and their color. Consumed by the owning loop, not the engine.
	ParticleCount int
	ParticleColor Color

	Spawn SpawnParams // EffectSpawn
}

const (
	minBallRadius = 2
	maxBallRadius = 100
)

// NewColorChange returns an effect that recolors the ball on contact.
func NewColorChange(c Color, continuous bool) Effect {
	return Effect{Kind: EffectColorChange, Continuous: continuous, Color: c}
}

// NewVelocityBoost returns an effect that scales the ball's velocity up.
// Factors not greater than 1 fall back to a 10% boost.
func NewVelocityBoost(factor float64, continuous bool) Effect {
	if factor <= 1 {
		factor = 1.1
	}
	return Effect{Kind: EffectVelocityBoost, Continuous: continuous, Factor: factor}
}

// NewVelocityDampen returns an effect that scales the ball's velocity down.
// The factor is clamped to [0.01, 0.99].
func NewVelocityDampen(factor float64, continuous bool) Effect {
	return Effect{Kind: EffectVelocityDampen, Continuous: continuous, Factor: clamp(factor, 0.01, 0.99)}
}

// NewSizeChange returns an effect that multiplies the ball's radius by factor.
// The resulting radius is clamped to [2, 100] at application time.
func NewSizeChange(factor float64, continuous bool) Effect {
	return Effect{Kind: EffectSizeChange, Continuous: continuous, Factor: factor}
}

// NewSoundPlay returns an effect that triggers sound playback on contact.
// A one-shot sound plays once per bounce; a continuous sound toggles between
// play and stop on each application rather than retriggering.
func NewSoundPlay(s Sound, continuous bool) Effect {
	return Effect{Kind: EffectSoundPlay, Continuous: continuous, Sound: s}
}

// NewDisappear returns an effect that marks the ball for deletion. Removal is
// deferred to the world's compaction pass. The particle parameters are hints
// for the presentation layer.
func NewDisappear(particleCount int, particleColor Color, continuous bool) Effect {
	return Effect{
		Kind:          EffectDisappear,
		Continuous:    continuous,
		ParticleCount: particleCount,
		ParticleColor: particleColor,
	}
}

// NewSpawn returns an effect that requests a new ball at the given parameters.
func NewSpawn(p SpawnParams, continuous bool) Effect {
	return Effect{Kind: EffectSpawn, Continuous: continuous, Spawn: p}
}

// ApplyEffects applies every applicable effect to the ball: first the ball's
// own effect list, then the obstacle's (if any). Lists run newest-first.
//
// ongoing distinguishes sustained contact from the instant contact begins:
// when ongoing is true, one-shot (non-continuous) effects are skipped.
//
// onSpawn, if non-nil, receives the parameters of any Spawn effect that fires.
func ApplyEffects(b *Ball, o Obstacle, ongoing bool, onSpawn func(SpawnParams)) {
	for _, e := range b.Effects() {
		applyEffect(e, b, ongoing, onSpawn)
	}
	if o != nil {
		for _, e := range o.Effects() {
			applyEffect(e, b, ongoing, onSpawn)
		}
	}
}

func applyEffect(e Effect, b *Ball, ongoing bool, onSpawn func(SpawnParams)) {
	if ongoing && !e.Continuous {
		return
	}
	switch e.Kind {
	case EffectColorChange:
		b.Color = e.Color
	case EffectVelocityBoost, EffectVelocityDampen:
		b.Velocity = b.Velocity.Scale(e.Factor)
	case EffectSizeChange:
		b.Radius = clamp(b.Radius*e.Factor, minBallRadius, maxBallRadius)
	case EffectSoundPlay:
		if e.Sound == nil {
			return
		}
		if e.Continuous {
			// Sustained contact toggles rather than retriggering.
			if e.Sound.Playing() {
				e.Sound.Stop()
			} else {
				e.Sound.Play()
			}
		} else {
			e.Sound.Play()
		}
	case EffectDisappear:
		b.MarkForDeletion()
	case EffectSpawn:
		if onSpawn != nil {
			onSpawn(e.Spawn)
		}
	}
}
