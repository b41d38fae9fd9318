package gamesetup

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay shows ebiten's measured frame and tick rates in the top-left
// corner. The text is redrawn about every half second.
type fpsOverlay struct {
	img   *ebiten.Image
	clock *Clock
}

func newFPSOverlay() *fpsOverlay {
	o := &fpsOverlay{clock: NewClock()}
	o.clock.Start()
	return o
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	if o.img == nil || o.clock.Elapsed() >= 0.5 {
		if o.img == nil {
			// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
			o.img = ebiten.NewImage(100, 32)
		}
		o.img.Clear()
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, fpsText(ebiten.ActualFPS(), ebiten.ActualTPS()))
		o.clock.Reset()
		o.clock.Start()
	}
	screen.DrawImage(o.img, nil)
}

func fpsText(fps, tps float64) string {
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f", fps, tps)
}
