package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/lantern"
	"github.com/phanxgames/lantern/config"
	"github.com/phanxgames/lantern/ebitenhost"
)

const (
	roomPanorama = 1
	roomCabin    = 2
)

type demo struct {
	game *ebitenhost.Game
	cfg  config.Config
}

func (d *demo) screen() lantern.Rect {
	return lantern.R(0, 0, int16(d.cfg.Window.Width), int16(d.cfg.Window.Height))
}

// buildPanorama sets up the 360° room: the backdrop, a flickering lamp
// and an exit straddling the wrap point that leads into the cabin.
func (d *demo) buildPanorama(s *lantern.Stage) (lantern.Room, error) {
	backdrop, err := s.LoadBackdrop(backdropName)
	if err != nil {
		return nil, err
	}
	pc := d.cfg.Panorama
	view := lantern.NewPanView(pc.ViewWidth, pc.PanExtent)
	view.EdgeZone = pc.EdgeZone
	view.EdgeSpeed = pc.EdgeSpeed

	plane := s.NewPlane("panorama", d.screen(), 0, lantern.PlaneOpaque)
	pano := lantern.NewPanorama("panorama", backdrop, view)
	plane.Add(pano)

	if lamp, err := s.LoadSprite(lampName, lampCels); err == nil {
		lamp.Position = lantern.Pt(300, 180)
		pano.AddSprite(lamp)
		lantern.NewSpriteCycler(pano, lamp, 10)
	}
	pano.AddExit(&lantern.PanoramaExit{
		Rect:      lantern.R(int16(pc.PanExtent-80), 220, int16(pc.PanExtent+80), 340),
		Room:      roomCabin,
		CursorCel: 1,
	})

	keys := s.User().AddOrphan(lantern.EventHandlerFunc(func(ev *lantern.Event) bool {
		if ev.Type != lantern.EventKeyDown {
			return false
		}
		switch ebiten.Key(ev.Key) {
		case ebiten.KeyEscape:
			s.RequestQuit()
		case ebiten.KeyArrowLeft:
			view.ScrollTo(float64(view.Offset()-pc.ViewWidth/2), 0.4, ease.OutQuad)
		case ebiten.KeyArrowRight:
			view.ScrollTo(float64(view.Offset()+pc.ViewWidth/2), 0.4, ease.OutQuad)
		default:
			return false
		}
		ev.Claim()
		return true
	}))

	d.game.ShowPanorama(pano)
	return lantern.RoomFunc(func() {
		keys.Remove()
		d.game.ShowPanorama(nil)
		pano.Dispose()
		plane.Dispose()
	}), nil
}

// buildCabin sets up the interior: a moth patrolling between two corners,
// a window that takes a screenshot when clicked and a button back out.
// Catching the moth takes input away for a moment.
func (d *demo) buildCabin(s *lantern.Stage) (lantern.Room, error) {
	log := s.Logger()
	user := s.User()

	bg := s.NewPlane("cabin", d.screen(), 0, lantern.PlaneColored)
	bg.Color = 60
	r := d.screen()
	ui := s.NewPlane("cabin.ui", lantern.R(0, r.Bottom-40, r.Right, r.Bottom), 10, lantern.PlaneTransparent)

	handsOn := s.NewTimer("cabin.hands-on", lantern.CueFunc(func() {
		user.SetHandsOn(true)
	}))

	moth := lantern.NewCel("moth", lantern.CelInfo{View: mothView}, lantern.Pt(80, 120), 5)
	bg.Add(moth)
	moth.Show()
	moth.SetHandler(lantern.EventHandlerFunc(func(ev *lantern.Event) bool {
		if ev.Type != lantern.EventMousePress {
			return false
		}
		log.Info("moth caught", "at", ev.Pos)
		user.SetHandsOn(false)
		handsOn.SetCycles(45)
		return true
	}))
	lantern.NewForwardCycler(moth, mothCels)

	patrol := s.NewScript("moth.patrol", func(sc *lantern.Script, state int) {
		switch state {
		case 0:
			lantern.NewMover(moth, lantern.Pt(480, 120), sc)
		case 1:
			sc.SetSeconds(1)
		case 2:
			lantern.NewMover(moth, lantern.Pt(80, 300), sc)
		case 3:
			sc.SetCycles(30)
		default:
			sc.SetState(0)
		}
	}, nil)

	bg.Add(lantern.NewPoly("window", lantern.EventHandlerFunc(func(ev *lantern.Event) bool {
		if ev.Type != lantern.EventMousePress {
			return false
		}
		s.Screenshot("cabin-window")
		return true
	}), lantern.Pt(400, 60), lantern.Pt(560, 60), lantern.Pt(600, 200), lantern.Pt(360, 200)))

	label := lantern.NewCel("back.label", lantern.CelInfo{View: buttonView}, lantern.Pt(8, 8), 0)
	ui.Add(label)
	label.Show()
	ui.Add(lantern.NewButton("back", lantern.R(8, 8, 104, 32), lantern.EventHandlerFunc(func(*lantern.Event) bool {
		s.Rooms().NewRoom(roomPanorama)
		return true
	})))

	return lantern.RoomFunc(func() {
		patrol.Dispose()
		handsOn.Dispose()
		user.SetHandsOn(true)
		ui.Dispose()
		bg.Dispose()
	}), nil
}
