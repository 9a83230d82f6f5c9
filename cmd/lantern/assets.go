package main

import (
	"github.com/phanxgames/lantern"
	"github.com/phanxgames/lantern/config"
)

const (
	backdropName = "pano.backdrop"
	lampName     = "pano.lamp"
	lampCels     = 3

	mothView   = 1
	mothCels   = 4
	buttonView = 2
)

// generateAssets builds every bitmap the demo uses. Backdrop and sprite
// bitmaps are in source orientation: X along the pan axis, Y down the
// screen.
func generateAssets(cfg config.Config) lantern.MapLoader {
	l := lantern.MapLoader{}
	l[backdropName] = backdrop(cfg.Panorama.PanExtent, cfg.Panorama.BufferWidth)
	l[lampName] = lamp(24, 32, lampCels)
	for i := range mothCels {
		l[celName(mothView, 0, i)] = square(32, 32, byte(180+i*12))
	}
	l[celName(buttonView, 0, 0)] = square(96, 24, 220)
	return l
}

func celName(view, loop, cel int) string {
	return lantern.CelInfo{View: int16(view), Loop: int16(loop), Cel: int16(cel)}.Resource()
}

// backdrop is a sky gradient over a band of rolling hills. The hill line
// repeats every 512 pan pixels so the seam at the wrap point matches.
func backdrop(w, h int) lantern.Bitmap {
	pix := make([]byte, w*h)
	for x := range w {
		ridge := h*2/3 + hill(x%512)
		for y := range h {
			var c byte
			switch {
			case y >= ridge:
				c = byte(40 + (y-ridge)*40/max(h-ridge, 1))
			default:
				c = byte(120 + y*100/h)
			}
			pix[y*w+x] = c
		}
	}
	return lantern.Bitmap{Width: w, Height: h, Pixels: pix}
}

func hill(x int) int {
	// triangle wave, 64 pixels tall
	t := x % 256
	if t > 128 {
		t = 256 - t
	}
	return t/2 - 32
}

// lamp is a strip of frames stacked vertically: a post with a flame that
// grows each frame. Index 0 is the transparent key.
func lamp(w, h, frames int) lantern.Bitmap {
	pix := make([]byte, w*h*frames)
	for f := range frames {
		base := f * h * w
		for y := range h {
			for x := range w {
				var c byte
				switch {
				case x >= w/2-2 && x < w/2+2 && y >= h/3:
					c = 30
				case y < h/3 && abs(x-w/2) <= 3+f*2 && y >= h/3-6-f*3:
					c = byte(240 + f*5)
				}
				pix[base+y*w+x] = c
			}
		}
	}
	return lantern.Bitmap{Width: w, Height: h * frames, Pixels: pix}
}

func square(w, h int, c byte) lantern.Bitmap {
	pix := make([]byte, w*h)
	for i := range pix {
		pix[i] = c
	}
	return lantern.Bitmap{Width: w, Height: h, Pixels: pix}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
