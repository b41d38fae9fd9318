package synth

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

var (
	speakerOnce sync.Once
	speakerErr  error
)

// InitSpeaker opens the audio device at SampleRate. Safe to call more than
// once; only the first call opens the device.
func InitSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond))
	})
	return speakerErr
}

// SpeakerPlayer plays a buffer through beep's speaker. It satisfies
// gamesetup.Player. Volume changes reach instances that are still playing.
type SpeakerPlayer struct {
	buf *beep.Buffer

	mu     sync.Mutex
	volume float64
	active map[*effects.Volume]struct{}
}

// NewSpeakerPlayer creates a player for buf at full volume. Call
// InitSpeaker before playing.
func NewSpeakerPlayer(buf *beep.Buffer) *SpeakerPlayer {
	return &SpeakerPlayer{buf: buf, volume: 1, active: make(map[*effects.Volume]struct{})}
}

// Play starts a new instance of the sample. Instances overlap.
func (p *SpeakerPlayer) Play() {
	p.mu.Lock()
	v := gain(p.buf.Streamer(0, p.buf.Len()), p.volume)
	p.active[v] = struct{}{}
	p.mu.Unlock()

	speaker.Play(beep.Seq(v, beep.Callback(func() {
		p.mu.Lock()
		delete(p.active, v)
		p.mu.Unlock()
	})))
}

// SetVolume sets the linear volume, 0 being silent.
func (p *SpeakerPlayer) SetVolume(volume float64) {
	p.mu.Lock()
	p.volume = volume
	playing := make([]*effects.Volume, 0, len(p.active))
	for v := range p.active {
		playing = append(playing, v)
	}
	p.mu.Unlock()

	// The speaker goroutine takes p.mu from the end-of-play callback while
	// holding its own lock, so p.mu must be released first.
	if len(playing) == 0 {
		return
	}
	speaker.Lock()
	for _, v := range playing {
		setGain(v, volume)
	}
	speaker.Unlock()
}

// Volume returns the linear volume.
func (p *SpeakerPlayer) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// Playing returns the number of instances still sounding.
func (p *SpeakerPlayer) Playing() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.active)
}

func setGain(v *effects.Volume, volume float64) {
	if volume <= 0 {
		v.Silent = true
		return
	}
	v.Silent = false
	v.Volume = math.Log2(volume)
}
