package ebitenhost

import (
	"image/color"
	"log/slog"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/lantern"
)

// Compositor draws lantern planes and screen items with ebiten. Cel
// bitmaps come from the loader and are converted through the palette when
// first shown.
type Compositor struct {
	loader lantern.ResourceLoader
	pal    *rgbaTable
	log    *slog.Logger

	planes []*lantern.Plane
	items  map[*lantern.ScreenItem]*itemState
	cache  map[string]*celImage
	fill   map[uint8]*ebiten.Image

	// Background, when set, draws a plane's picture or panorama content
	// before its screen items.
	Background func(screen *ebiten.Image, p *lantern.Plane)
}

type celImage struct {
	img  *ebiten.Image
	w, h int
}

type itemState struct {
	cel *celImage
}

// NewCompositor creates a compositor over loader using pal.
func NewCompositor(loader lantern.ResourceLoader, pal color.Palette, log *slog.Logger) *Compositor {
	if log == nil {
		log = slog.Default()
	}
	return &Compositor{
		loader: loader,
		pal:    newRGBATable(pal),
		log:    log.With("component", "compositor"),
		items:  make(map[*lantern.ScreenItem]*itemState),
		cache:  make(map[string]*celImage),
		fill:   make(map[uint8]*ebiten.Image),
	}
}

// SetPalette replaces the palette. Cached cels keep their old colors until
// ClearCache.
func (c *Compositor) SetPalette(pal color.Palette) {
	c.pal = newRGBATable(pal)
}

// ClearCache drops converted cel images.
func (c *Compositor) ClearCache() {
	for _, ci := range c.cache {
		if ci.img != nil {
			ci.img.Deallocate()
		}
	}
	clear(c.cache)
}

func (c *Compositor) AddPlane(p *lantern.Plane) {
	c.planes = append(c.planes, p)
}

func (c *Compositor) UpdatePlane(p *lantern.Plane) {}

func (c *Compositor) DeletePlane(p *lantern.Plane) {
	for i, q := range c.planes {
		if q == p {
			c.planes = append(c.planes[:i], c.planes[i+1:]...)
			break
		}
	}
	for si := range c.items {
		if si.Plane() == p {
			delete(c.items, si)
		}
	}
}

func (c *Compositor) RepaintPlane(p *lantern.Plane) {}

func (c *Compositor) AddScreenItem(si *lantern.ScreenItem) {
	c.items[si] = &itemState{cel: c.resolve(si.CelInfo())}
}

func (c *Compositor) UpdateScreenItem(si *lantern.ScreenItem) {
	st, ok := c.items[si]
	if !ok {
		return
	}
	st.cel = c.resolve(si.CelInfo())
}

func (c *Compositor) DeleteScreenItem(si *lantern.ScreenItem) {
	delete(c.items, si)
}

// NowSeenRect places the cel at its plane position and clips it to the
// plane rect.
func (c *Compositor) NowSeenRect(si *lantern.ScreenItem) (lantern.Rect, bool) {
	st, ok := c.items[si]
	p := si.Plane()
	if !ok || st.cel == nil || p == nil {
		return lantern.Rect{}, false
	}
	o := p.ToGlobal(si.Position())
	r := lantern.R(o.X, o.Y, o.X+int16(st.cel.w), o.Y+int16(st.cel.h)).Intersect(p.Rect())
	return r, !r.Empty()
}

func (c *Compositor) resolve(info lantern.CelInfo) *celImage {
	if info.Bitmap != nil {
		img := info.Bitmap
		return &celImage{img: c.toEbiten(img.Pixels(), img.Width, img.Height), w: img.Width, h: img.Height}
	}
	key := info.Resource()
	if ci, ok := c.cache[key]; ok {
		return ci
	}
	bmp, err := c.loader.Bitmap(key)
	if err != nil || !bmp.Valid() {
		c.log.Warn("cel unavailable", "cel", key, "err", err)
		c.cache[key] = nil
		return nil
	}
	ci := &celImage{img: c.toEbiten(bmp.Pixels, bmp.Width, bmp.Height), w: bmp.Width, h: bmp.Height}
	c.cache[key] = ci
	return ci
}

func (c *Compositor) toEbiten(pix []byte, w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.WritePixels(c.pal.convert(pix, nil))
	return img
}

// Draw paints planes from the lowest priority up, each followed by its
// screen items in priority order.
func (c *Compositor) Draw(screen *ebiten.Image) {
	planes := make([]*lantern.Plane, len(c.planes))
	copy(planes, c.planes)
	sort.SliceStable(planes, func(i, j int) bool { return planes[i].Priority() < planes[j].Priority() })

	for _, p := range planes {
		c.drawPlane(screen, p)
	}
}

func (c *Compositor) drawPlane(screen *ebiten.Image, p *lantern.Plane) {
	r := p.Rect()
	switch p.Type() {
	case lantern.PlaneColored, lantern.PlaneOpaque:
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(r.Width()), float64(r.Height()))
		op.GeoM.Translate(float64(r.Left), float64(r.Top))
		screen.DrawImage(c.fillImage(p.Color), op)
	}
	if c.Background != nil {
		c.Background(screen, p)
	}

	var items []*lantern.ScreenItem
	for si, st := range c.items {
		if si.Plane() == p && st.cel != nil {
			items = append(items, si)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Priority() != items[j].Priority() {
			return items[i].Priority() < items[j].Priority()
		}
		return items[i].Handle().String() < items[j].Handle().String()
	})
	for _, si := range items {
		o := p.ToGlobal(si.Position())
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(o.X), float64(o.Y))
		screen.DrawImage(c.items[si].cel.img, op)
	}
}

func (c *Compositor) fillImage(idx uint8) *ebiten.Image {
	if img, ok := c.fill[idx]; ok {
		return img
	}
	img := ebiten.NewImage(1, 1)
	img.Fill(c.pal.color(idx))
	c.fill[idx] = img
	return img
}

// rgbaTable is a palette flattened for fast 8-bit to RGBA conversion.
type rgbaTable [256][4]byte

func newRGBATable(pal color.Palette) *rgbaTable {
	var t rgbaTable
	for i := range t {
		if i >= len(pal) || pal[i] == nil {
			t[i] = [4]byte{0, 0, 0, 0xff}
			continue
		}
		r, g, b, a := pal[i].RGBA()
		t[i] = [4]byte{byte(r >> 8), byte(g >> 8), byte(b >> 8), byte(a >> 8)}
	}
	return &t
}

func (t *rgbaTable) color(idx uint8) color.RGBA {
	e := t[idx]
	return color.RGBA{e[0], e[1], e[2], e[3]}
}

// convert expands 8-bit pixels to RGBA into dst, growing it as needed.
func (t *rgbaTable) convert(pix []byte, dst []byte) []byte {
	n := len(pix) * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, idx := range pix {
		copy(dst[i*4:i*4+4], t[idx][:])
	}
	return dst
}
