package synth

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate is the rate every effect is produced at.
const SampleRate = beep.SampleRate(44100)

// Format describes the buffers this package returns.
var Format = beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

// sweep is a sine tone gliding linearly from one frequency to another.
type sweep struct {
	from, to float64
	phase    float64
	pos, n   int
	rate     beep.SampleRate
}

func newSweep(from, to float64, d time.Duration, rate beep.SampleRate) *sweep {
	return &sweep{from: from, to: to, n: rate.N(d), rate: rate}
}

func (s *sweep) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if s.pos >= s.n {
			return i, i > 0
		}
		freq := s.from + (s.to-s.from)*float64(s.pos)/float64(s.n)
		v := math.Sin(2 * math.Pi * s.phase)
		samples[i][0], samples[i][1] = v, v
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// crackle is white noise under an exponential decay.
type crackle struct {
	pos, n int
	decay  float64 // amplitude multiplier per sample
	amp    float64
}

func newCrackle(d, halfLife time.Duration, rate beep.SampleRate) *crackle {
	return &crackle{
		n:     rate.N(d),
		decay: math.Pow(0.5, 1/float64(rate.N(halfLife))),
		amp:   1,
	}
}

func (c *crackle) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if c.pos >= c.n {
			return i, i > 0
		}
		v := (rand.Float64()*2 - 1) * c.amp
		samples[i][0], samples[i][1] = v, v
		c.amp *= c.decay
		c.pos++
	}
	return len(samples), true
}

func (c *crackle) Err() error { return nil }

// fade applies a linear attack and release to a streamer of known length.
type fade struct {
	s                       beep.Streamer
	pos, n, attack, release int
}

func newFade(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) *fade {
	return &fade{s: s, n: rate.N(d), attack: rate.N(attack), release: rate.N(release)}
}

func (f *fade) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.s.Stream(samples)
	for i := 0; i < n; i++ {
		g := 1.0
		if f.pos < f.attack {
			g = float64(f.pos) / float64(f.attack)
		}
		if left := f.n - f.pos; left < f.release {
			g = math.Max(0, float64(left)/float64(f.release))
		}
		samples[i][0] *= g
		samples[i][1] *= g
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.s.Err() }

// gain scales s by a linear factor. Zero or less is silence.
func gain(s beep.Streamer, v float64) *effects.Volume {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// Launch is the whistle of a rocket leaving the ground.
func Launch() beep.Streamer {
	const d = 600 * time.Millisecond
	whistle := newFade(newSweep(500, 1700, d, SampleRate), d, 20*time.Millisecond, 250*time.Millisecond, SampleRate)
	hiss := newFade(newCrackle(d, 400*time.Millisecond, SampleRate), d, 5*time.Millisecond, 100*time.Millisecond, SampleRate)
	return beep.Take(SampleRate.N(d), beep.Mix(gain(whistle, 0.35), gain(hiss, 0.15)))
}

// Bang is the report of a rocket exploding.
func Bang() beep.Streamer {
	const d = 1200 * time.Millisecond
	thump := newFade(newSweep(90, 40, 350*time.Millisecond, SampleRate), 350*time.Millisecond, 2*time.Millisecond, 200*time.Millisecond, SampleRate)
	burst := newCrackle(d, 180*time.Millisecond, SampleRate)
	return beep.Take(SampleRate.N(d), beep.Mix(gain(thump, 0.55), gain(burst, 0.4)))
}

// Click is a short blip for interface feedback.
func Click() (beep.Streamer, error) {
	const d = 40 * time.Millisecond
	tone, err := generators.SineTone(SampleRate, 1200)
	if err != nil {
		return nil, err
	}
	return beep.Take(SampleRate.N(d), gain(newFade(tone, d, 2*time.Millisecond, 25*time.Millisecond, SampleRate), 0.3)), nil
}

// Buffer drains s into a buffer in Format.
func Buffer(s beep.Streamer) *beep.Buffer {
	buf := beep.NewBuffer(Format)
	buf.Append(s)
	return buf
}
