package lantern

import "fmt"

// Default panorama geometry. Images are stored rotated a quarter turn: the
// buffer's Width runs along the screen's vertical axis and its Height is
// the 360° pan axis, so wraparound happens on rows.
const (
	PanoramaWidth  = 512
	PanoramaHeight = 2048
)

// ErasePolicy decides what Erase does to a sprite's drawn flag.
type ErasePolicy uint8

const (
	// EraseKeepsDrawn leaves the sprite marked drawn after Erase, so a
	// second Erase restores the saved pixels again.
	EraseKeepsDrawn ErasePolicy = iota
	// EraseResetsDrawn clears the drawn flag, making a second Erase a
	// no-op.
	EraseResetsDrawn
)

func (p ErasePolicy) String() string {
	switch p {
	case EraseKeepsDrawn:
		return "keep-drawn"
	case EraseResetsDrawn:
		return "reset-drawn"
	}
	return "unknown"
}

// ParseErasePolicy converts a config string to an ErasePolicy.
func ParseErasePolicy(s string) (ErasePolicy, error) {
	switch s {
	case "", "keep-drawn":
		return EraseKeepsDrawn, nil
	case "reset-drawn":
		return EraseResetsDrawn, nil
	}
	return EraseKeepsDrawn, fmt.Errorf("lantern: unknown erase policy %q", s)
}

// Image is an 8-bit color-indexed pixel buffer, row-major. Its pixels are
// either owned by the image or borrowed from the caller, never both.
type Image struct {
	Width, Height int

	// ErasePolicy applies when this image is a backdrop that sprites are
	// erased from.
	ErasePolicy ErasePolicy

	pixels []byte
	owned  bool
}

// NewImage allocates a zeroed, owned w×h image.
func NewImage(w, h int) *Image {
	return &Image{Width: w, Height: h, pixels: make([]byte, w*h), owned: true}
}

// NewImageFrom wraps pixels without copying. The caller keeps ownership.
func NewImageFrom(w, h int, pixels []byte) (*Image, error) {
	if w <= 0 || h <= 0 || len(pixels) != w*h {
		return nil, fmt.Errorf("new image %dx%d with %d pixels: %w", w, h, len(pixels), ErrBadBitmap)
	}
	return &Image{Width: w, Height: h, pixels: pixels}, nil
}

// LoadImage fetches a landscape bitmap from loader and stores it rotated:
// source column x becomes buffer row Width-1-x and source row y becomes
// buffer column y. Missing resources return an error wrapping
// ErrResourceNotFound.
func LoadImage(loader ResourceLoader, name string) (*Image, error) {
	bmp, err := loader.Bitmap(name)
	if err != nil {
		return nil, fmt.Errorf("load image %q: %w", name, err)
	}
	if !bmp.Valid() {
		return nil, fmt.Errorf("load image %q: %w", name, ErrBadBitmap)
	}
	img := NewImage(bmp.Height, bmp.Width)
	rotateInto(img.pixels, bmp)
	return img, nil
}

func rotateInto(dst []byte, bmp Bitmap) {
	w := bmp.Height
	for y := 0; y < bmp.Height; y++ {
		row := bmp.Pixels[y*bmp.Width : (y+1)*bmp.Width]
		for x, c := range row {
			dst[(bmp.Width-1-x)*w+y] = c
		}
	}
}

// Pixels returns the backing buffer.
func (img *Image) Pixels() []byte {
	return img.pixels
}

// Owned reports whether the image allocated its pixels.
func (img *Image) Owned() bool {
	return img.owned
}

// At returns the pixel at column x, row y.
func (img *Image) At(x, y int) byte {
	return img.pixels[y*img.Width+x]
}

// Set writes the pixel at column x, row y.
func (img *Image) Set(x, y int, c byte) {
	img.pixels[y*img.Width+x] = c
}

// Fill sets every pixel to c.
func (img *Image) Fill(c byte) {
	for i := range img.pixels {
		img.pixels[i] = c
	}
}

// Free drops the pixel buffer. Borrowed pixels are only detached.
func (img *Image) Free() {
	img.pixels = nil
	img.owned = false
	img.Width, img.Height = 0, 0
}

// Sprite is an animated overlay drawn straight into a backdrop image. Its
// frames are tiled side by side along the buffer columns: frame n occupies
// columns [n*CelWidth, (n+1)*CelWidth).
type Sprite struct {
	Image

	// Position is in panorama coordinates: X along the pan axis, Y along
	// the screen's vertical axis.
	Position Point

	// ScaleInfo is the scale in percent. Only 100 is honoured; other
	// values draw unscaled.
	ScaleInfo int

	// HasTransparency skips source pixels equal to the top-left pixel.
	HasTransparency bool

	celNo, numCels int
	saved          []byte
	drawn          bool
	placed         placement
}

// placement is where a sprite was last drawn, reused by Erase.
type placement struct {
	x, y      int // buffer column and row of the frame's first pixel
	skip, pad int // columns clipped on the left and right
}

// NewSprite wraps a rotated strip of numCels frames.
func NewSprite(img *Image, numCels int) (*Sprite, error) {
	if numCels < 1 || img.Width%numCels != 0 {
		return nil, fmt.Errorf("new sprite %dx%d with %d cels: %w", img.Width, img.Height, numCels, ErrBadBitmap)
	}
	s := &Sprite{Image: *img, ScaleInfo: 100, HasTransparency: true, numCels: numCels}
	s.saved = make([]byte, s.CelWidth()*s.CelHeight())
	return s, nil
}

// LoadSprite loads a sprite resource whose numCels frames are stacked
// vertically in the source bitmap; after rotation they sit side by side.
func LoadSprite(loader ResourceLoader, name string, numCels int) (*Sprite, error) {
	img, err := LoadImage(loader, name)
	if err != nil {
		return nil, err
	}
	return NewSprite(img, numCels)
}

// CelWidth is the width of one frame in buffer columns.
func (s *Sprite) CelWidth() int {
	return s.Width / s.numCels
}

// CelHeight is the height of one frame in buffer rows.
func (s *Sprite) CelHeight() int {
	return s.Height
}

// CelNo returns the current frame.
func (s *Sprite) CelNo() int {
	return s.celNo
}

// NumCels returns the number of frames.
func (s *Sprite) NumCels() int {
	return s.numCels
}

// SetCelNo selects the frame drawn next. Out of range values wrap.
func (s *Sprite) SetCelNo(n int) {
	s.celNo = ((n % s.numCels) + s.numCels) % s.numCels
}

// IsDrawn reports whether the sprite's saved pixels belong to a backdrop.
func (s *Sprite) IsDrawn() bool {
	return s.drawn
}

// TransparentColor returns the key color, the strip's top-left pixel.
func (s *Sprite) TransparentColor() byte {
	return s.pixels[0]
}

// place computes where s lands on img. The pan axis wraps; the other axis
// is clipped through skip and pad.
func (img *Image) place(s *Sprite) placement {
	celW, celH := s.CelWidth(), s.CelHeight()
	p := placement{
		x: int(s.Position.Y),
		y: mod(img.Height-int(s.Position.X)-celH, img.Height),
	}
	if p.x < 0 {
		p.skip = -p.x
	}
	if over := p.x + celW - img.Width; over > 0 {
		p.pad = over
	}
	return p
}

// Draw copies s's current frame onto img, saving every covered pixel
// first so Erase can restore it. Transparent source pixels leave the
// destination untouched.
func (img *Image) Draw(s *Sprite) {
	if img.Height == 0 || img.Width == 0 {
		return
	}
	celW, celH := s.CelWidth(), s.CelHeight()
	p := img.place(s)
	s.placed = p
	s.drawn = true
	if p.skip+p.pad >= celW {
		return
	}
	key := s.TransparentColor()
	srcCol := s.celNo * celW
	for r := 0; r < celH; r++ {
		dst := ((p.y+r)%img.Height)*img.Width + p.x
		src := r*s.Width + srcCol
		sav := r * celW
		for c := p.skip; c < celW-p.pad; c++ {
			s.saved[sav+c] = img.pixels[dst+c]
			v := s.pixels[src+c]
			if s.HasTransparency && v == key {
				continue
			}
			img.pixels[dst+c] = v
		}
	}
}

// Erase restores the pixels saved by the last Draw of s at the same
// placement. It does nothing if s was never drawn.
func (img *Image) Erase(s *Sprite) {
	if !s.drawn {
		return
	}
	celW, celH := s.CelWidth(), s.CelHeight()
	p := s.placed
	if img.ErasePolicy == EraseResetsDrawn {
		s.drawn = false
	}
	if p.skip+p.pad >= celW || img.Height == 0 {
		return
	}
	for r := 0; r < celH; r++ {
		dst := ((p.y+r)%img.Height)*img.Width + p.x
		sav := r * celW
		copy(img.pixels[dst+p.skip:dst+celW-p.pad], s.saved[sav+p.skip:sav+celW-p.pad])
	}
}

// mod returns a mod n in [0, n).
func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
