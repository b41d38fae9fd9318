package synth

import (
	"encoding/binary"
	"math"

	"github.com/gopxl/beep"
)

// PCM renders buf as interleaved signed 16-bit little-endian stereo, the
// layout ebiten's audio context expects.
func PCM(buf *beep.Buffer) []byte {
	return Render(buf.Streamer(0, buf.Len()))
}

// Render drains s into 16-bit little-endian stereo PCM.
func Render(s beep.Streamer) []byte {
	var (
		out     []byte
		samples = make([][2]float64, 512)
	)
	for {
		n, ok := s.Stream(samples)
		for _, frame := range samples[:n] {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[1])))
		}
		if !ok {
			return out
		}
	}
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(math.Round(v * math.MaxInt16))
}
