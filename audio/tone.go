package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// WaveType selects the oscillator wave shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// ToneConfig describes a synthesized tone.
type ToneConfig struct {
	Freq     float64
	Duration time.Duration
	Wave     WaveType
	// Loop makes Play repeat the tone until Stop. Use this for continuous
	// effect sounds.
	Loop bool
	// Volume in beep's logarithmic scale; 0 is unity, negative is quieter.
	Volume float64
}

// Tone is a playable synthesized sound. It implements bounce.Sound.
type Tone struct {
	engine *Engine
	cfg    ToneConfig

	mu      sync.Mutex
	ctrl    *beep.Ctrl
	playing bool
}

// NewTone creates a tone played through the engine's mixer.
func (e *Engine) NewTone(cfg ToneConfig) *Tone {
	if cfg.Freq <= 0 {
		cfg.Freq = 440
	}
	if cfg.Duration <= 0 {
		cfg.Duration = 120 * time.Millisecond
	}
	return &Tone{engine: e, cfg: cfg}
}

// Play starts the tone. For looped tones a second Play while already playing
// is a no-op; one-shot tones restart.
func (t *Tone) Play() {
	if !t.engine.ready() {
		return
	}

	t.mu.Lock()
	if t.cfg.Loop && t.playing {
		t.mu.Unlock()
		return
	}

	osc := newOscillator(t.cfg.Freq, t.cfg.Duration, t.cfg.Wave)
	osc.loop = t.cfg.Loop
	var s beep.Streamer = &effects.Volume{Streamer: osc, Base: 2, Volume: t.cfg.Volume}
	s = beep.Seq(s, beep.Callback(t.finished))

	ctrl := &beep.Ctrl{Streamer: s}
	t.ctrl = ctrl
	t.playing = true
	t.mu.Unlock()

	// The speaker lock is taken without holding t.mu: the finish callback
	// runs under the speaker lock and takes t.mu itself.
	t.engine.play(ctrl)
}

// Stop silences the tone if it is playing.
func (t *Tone) Stop() {
	t.mu.Lock()
	ctrl := t.ctrl
	t.ctrl = nil
	t.playing = false
	t.mu.Unlock()

	if ctrl != nil {
		speaker.Lock()
		ctrl.Streamer = nil
		speaker.Unlock()
	}
}

// Playing reports whether the tone is currently audible.
func (t *Tone) Playing() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.playing
}

func (t *Tone) finished() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.playing = false
	t.ctrl = nil
}

// oscillator streams a fixed-length wave with a short linear fade-out so
// tones don't click when they end. With loop set it restarts instead of
// ending.
type oscillator struct {
	freq     float64
	wave     WaveType
	loop     bool
	phase    float64
	position int
	total    int
	fade     int
}

func newOscillator(freq float64, duration time.Duration, wave WaveType) *oscillator {
	total := sampleRate.N(duration)
	fade := sampleRate.N(10 * time.Millisecond)
	if fade > total/2 {
		fade = total / 2
	}
	return &oscillator{freq: freq, wave: wave, total: total, fade: fade}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			if !o.loop {
				return i, i > 0
			}
			o.position = 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		if remaining := o.total - o.position; remaining < o.fade && o.fade > 0 {
			val *= float64(remaining) / float64(o.fade)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(sampleRate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }
