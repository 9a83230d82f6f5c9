package ebitenhost

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/lantern"
)

// statsOverlay shows FPS, TPS and stage counters in the top-left corner.
// The text is refreshed about twice a second.
type statsOverlay struct {
	img   *ebiten.Image
	since float64
	dt    float64
	text  string
}

func newStatsOverlay(ticksPerSecond int) *statsOverlay {
	if ticksPerSecond <= 0 {
		ticksPerSecond = 60
	}
	return &statsOverlay{dt: 1 / float64(ticksPerSecond), since: 0.5}
}

// update advances by one tick and reports whether the text changed.
func (o *statsOverlay) update(s *lantern.Stage, fps, tps float64) bool {
	o.since += o.dt
	if o.since < 0.5 {
		return false
	}
	o.since = 0
	o.text = statsText(s, fps, tps)
	return true
}

func statsText(s *lantern.Stage, fps, tps float64) string {
	items := 0
	for _, p := range s.Planes() {
		items += p.Cast().NumScreenItems()
	}
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nframe %d  planes %d  items %d",
		fps, tps, s.Frame(), len(s.Planes()), items)
}

func (o *statsOverlay) draw(screen *ebiten.Image, s *lantern.Stage) {
	if o.update(s, ebiten.ActualFPS(), ebiten.ActualTPS()) || o.img == nil {
		if o.img == nil {
			o.img = ebiten.NewImage(180, 48)
		}
		o.img.Clear()
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, o.text)
	}
	screen.DrawImage(o.img, nil)
}
