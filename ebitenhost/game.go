package ebitenhost

import (
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/lantern"
	"github.com/phanxgames/lantern/palette"
)

// Game adapts a lantern Stage to ebiten.Game.
type Game struct {
	Stage      *lantern.Stage
	Input      *Input
	Clock      *FrameClock
	Compositor *Compositor

	width, height int
	pal           color.Palette

	pano      *lantern.Panorama
	panoPal   *rgbaTable
	panoBuf   []byte
	panoRGBA  []byte
	panoImage *ebiten.Image

	fadeFrames, fadeLeft int

	stats *statsOverlay
}

// Config sizes the window and stage.
type Config struct {
	Width, Height  int
	TicksPerSecond int
	Debug          bool
	ErasePolicy    lantern.ErasePolicy
	ScreenshotDir  string
	Loader         lantern.ResourceLoader
	Palette        color.Palette
	Logger         *slog.Logger
}

// NewGame builds a stage wired to ebiten services.
func NewGame(cfg Config) *Game {
	in := NewInput()
	clock := NewFrameClock()
	comp := NewCompositor(cfg.Loader, cfg.Palette, cfg.Logger)
	stage := lantern.NewStage(lantern.Options{
		Compositor:     comp,
		Loader:         cfg.Loader,
		Input:          in,
		Clock:          clock,
		Cursor:         &Cursor{},
		Logger:         cfg.Logger,
		Debug:          cfg.Debug,
		ErasePolicy:    cfg.ErasePolicy,
		TicksPerSecond: cfg.TicksPerSecond,
		ScreenshotDir:  cfg.ScreenshotDir,
	})
	g := &Game{
		Stage:      stage,
		Input:      in,
		Clock:      clock,
		Compositor: comp,
		width:      cfg.Width,
		height:     cfg.Height,
		pal:        cfg.Palette,
		panoPal:    newRGBATable(cfg.Palette),
	}
	if cfg.Debug {
		g.stats = newStatsOverlay(cfg.TicksPerSecond)
	}
	comp.Background = g.drawBackground
	return g
}

// ShowPanorama renders pano into its plane every frame. nil stops.
func (g *Game) ShowPanorama(pano *lantern.Panorama) {
	g.pano = pano
	if g.panoImage != nil {
		g.panoImage.Deallocate()
		g.panoImage = nil
	}
	if pano == nil {
		return
	}
	w, h := pano.View().Width, pano.Backdrop().Width
	g.panoBuf = make([]byte, w*h)
	g.panoImage = ebiten.NewImage(w, h)
}

// FadeIn fades the panorama up from black over frames.
func (g *Game) FadeIn(frames int) {
	g.fadeFrames, g.fadeLeft = frames, frames
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.Input.Collect()
	g.Clock.Tick()
	g.Stage.Update()
	if g.Stage.QuitRequested() {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.fadeLeft > 0 {
		t := float64(g.fadeLeft) / float64(g.fadeFrames)
		g.panoPal = newRGBATable(palette.Fade(g.pal, color.Black, t))
		g.fadeLeft--
		if g.fadeLeft == 0 {
			g.panoPal = newRGBATable(g.pal)
		}
	}
	g.Compositor.Draw(screen)
	if g.stats != nil {
		g.stats.draw(screen, g.Stage)
	}

	if g.Stage.PendingScreenshots() > 0 && g.pano != nil {
		g.Stage.FlushScreenshots(lantern.PalettedFrame(g.panoBuf, g.pano.View().Width, g.pano.Backdrop().Width, g.pal))
	}
}

func (g *Game) drawBackground(screen *ebiten.Image, p *lantern.Plane) {
	if g.pano == nil || g.pano.Plane() != p || g.pano.IsDisposed() {
		return
	}
	g.pano.Render(g.panoBuf)
	g.panoRGBA = g.panoPal.convert(g.panoBuf, g.panoRGBA)
	g.panoImage.WritePixels(g.panoRGBA)
	op := &ebiten.DrawImageOptions{}
	r := p.Rect()
	op.GeoM.Translate(float64(r.Left), float64(r.Top))
	screen.DrawImage(g.panoImage, op)
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until the game ends.
func Run(g *Game, title string, scale int) error {
	if scale < 1 {
		scale = 1
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(g.width*scale, g.height*scale)
	ebiten.SetWindowClosingHandled(true)
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		return err
	}
	g.Stage.Dispose()
	return nil
}
