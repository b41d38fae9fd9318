package synth

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/gopxl/beep"
	"github.com/hajimehoshi/go-mp3"
)

// frames is a fully decoded stereo sample sequence.
type frames struct {
	data [][2]float64
	pos  int
}

func (f *frames) Stream(samples [][2]float64) (int, bool) {
	if f.pos >= len(f.data) {
		return 0, false
	}
	n := copy(samples, f.data[f.pos:])
	f.pos += n
	return n, true
}

func (f *frames) Err() error { return nil }

// Load decodes a .wav or .mp3 file into a buffer in Format, resampling if
// the file uses another rate.
func Load(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var (
		src  *frames
		rate int
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		src, rate, err = decodeWAV(f)
	case ".mp3":
		src, rate, err = decodeMP3(f)
	default:
		return nil, fmt.Errorf("synth: %s: unsupported format %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("synth: %s: %w", path, err)
	}

	var s beep.Streamer = src
	if old := beep.SampleRate(rate); old != SampleRate {
		s = beep.Resample(4, old, SampleRate, s)
	}
	return Buffer(s), nil
}

func decodeWAV(r io.ReadSeeker) (*frames, int, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("wav: not a valid wav file")
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("wav: %w", err)
	}
	chans := int(dec.NumChans)
	if chans < 1 {
		return nil, 0, fmt.Errorf("wav: no channels")
	}
	scale := float64(int(1) << (dec.BitDepth - 1))

	out := &frames{data: make([][2]float64, 0, len(buf.Data)/chans)}
	for i := 0; i+chans <= len(buf.Data); i += chans {
		l := float64(buf.Data[i]) / scale
		r := l
		if chans > 1 {
			r = float64(buf.Data[i+1]) / scale
		}
		out.data = append(out.data, [2]float64{l, r})
	}
	return out, int(dec.SampleRate), nil
}

// decodeMP3 reads the whole stream. go-mp3 always yields 16-bit little
// endian stereo, four bytes per frame.
func decodeMP3(r io.Reader) (*frames, int, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, 0, fmt.Errorf("mp3: %w", err)
	}
	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, 0, fmt.Errorf("mp3: %w", err)
	}
	out := &frames{data: make([][2]float64, 0, len(raw)/4)}
	for i := 0; i+4 <= len(raw); i += 4 {
		l := int16(uint16(raw[i]) | uint16(raw[i+1])<<8)
		r := int16(uint16(raw[i+2]) | uint16(raw[i+3])<<8)
		out.data = append(out.data, [2]float64{float64(l) / 32768, float64(r) / 32768})
	}
	return out, dec.SampleRate(), nil
}
