// Package synth produces the sound effects used by the demos. Effects are
// synthesized with beep streamers, or decoded from .wav and .mp3 files,
// and can be played through beep's speaker or rendered to PCM bytes for
// ebiten's audio context.
package synth
