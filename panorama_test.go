package lantern

import (
	"bytes"
	"errors"
	"testing"
)

// testSprite returns a single-cel 2×3 sprite whose top-left pixel is the
// transparent key.
//
//	0 5
//	6 7
//	8 9
func testSprite(t *testing.T) *Sprite {
	t.Helper()
	img, err := NewImageFrom(2, 3, []byte{0, 5, 6, 7, 8, 9})
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewSprite(img, 1)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func testBackdrop() *Image {
	bg := NewImage(4, 8)
	bg.Fill(1)
	return bg
}

func TestImageDrawAndErase(t *testing.T) {
	bg := testBackdrop()
	orig := append([]byte(nil), bg.Pixels()...)
	s := testSprite(t)
	s.Position = Pt(0, 1)

	bg.Draw(s)
	// x = Y = 1, y = 8 - 0 - 3 = 5
	checks := []struct {
		x, y int
		want byte
	}{
		{1, 5, 1}, // transparent
		{2, 5, 5},
		{1, 6, 6}, {2, 6, 7},
		{1, 7, 8}, {2, 7, 9},
		{0, 5, 1}, {3, 7, 1},
	}
	for _, c := range checks {
		if got := bg.At(c.x, c.y); got != c.want {
			t.Errorf("At(%d,%d) = %d, want %d", c.x, c.y, got, c.want)
		}
	}
	if !s.IsDrawn() {
		t.Error("sprite should be drawn")
	}

	bg.Erase(s)
	if !bytes.Equal(bg.Pixels(), orig) {
		t.Errorf("erase did not restore:\n got %v\nwant %v", bg.Pixels(), orig)
	}
}

func TestImageDrawWrapsPanAxis(t *testing.T) {
	bg := testBackdrop()
	s := testSprite(t)
	s.HasTransparency = false
	s.Position = Pt(7, 0)

	bg.Draw(s)
	// y = mod(8 - 7 - 3, 8) = 6: rows 6, 7 then 0
	if bg.At(0, 6) != 0 || bg.At(0, 7) != 6 || bg.At(0, 0) != 8 {
		t.Errorf("wrapped rows = %d %d %d", bg.At(0, 6), bg.At(0, 7), bg.At(0, 0))
	}
	bg.Erase(s)
	for i, v := range bg.Pixels() {
		if v != 1 {
			t.Fatalf("pixel %d = %d after erase", i, v)
		}
	}
}

func TestImageDrawNegativePan(t *testing.T) {
	bg := testBackdrop()
	s := testSprite(t)
	s.HasTransparency = false
	s.Position = Pt(-5, 0)

	bg.Draw(s)
	// y = mod(8 + 5 - 3, 8) = 2
	if bg.At(0, 2) != 0 || bg.At(1, 4) != 9 {
		t.Errorf("rows 2..4 = %d .. %d", bg.At(0, 2), bg.At(1, 4))
	}
}

func TestImageDrawClipsColumns(t *testing.T) {
	bg := testBackdrop()
	s := testSprite(t)
	s.HasTransparency = false

	s.Position = Pt(0, -1)
	bg.Draw(s)
	if bg.At(0, 5) != 5 || bg.At(0, 7) != 9 || bg.At(3, 5) != 1 {
		t.Errorf("left clip: col0 = %d,%d col3 = %d", bg.At(0, 5), bg.At(0, 7), bg.At(3, 5))
	}
	bg.Erase(s)

	s.Position = Pt(0, 3)
	bg.Draw(s)
	if bg.At(3, 5) != 0 || bg.At(3, 7) != 8 {
		t.Errorf("right clip: col3 = %d,%d", bg.At(3, 5), bg.At(3, 7))
	}
	bg.Erase(s)

	s.Position = Pt(0, 10)
	bg.Draw(s)
	bg.Erase(s)
	for i, v := range bg.Pixels() {
		if v != 1 {
			t.Fatalf("pixel %d = %d, fully clipped sprite touched the buffer", i, v)
		}
	}
}

func TestErasePolicy(t *testing.T) {
	bg := testBackdrop()
	s := testSprite(t)
	bg.Draw(s)
	bg.Erase(s)
	if !s.IsDrawn() {
		t.Error("keep-drawn should leave the flag set")
	}

	bg.ErasePolicy = EraseResetsDrawn
	bg.Draw(s)
	bg.Erase(s)
	if s.IsDrawn() {
		t.Error("reset-drawn should clear the flag")
	}
	bg.Set(1, 5, 42)
	bg.Erase(s)
	if bg.At(1, 5) != 42 {
		t.Error("second erase under reset-drawn should do nothing")
	}
}

func TestEraseNeverDrawn(t *testing.T) {
	bg := testBackdrop()
	s := testSprite(t)
	bg.Erase(s)
	for _, v := range bg.Pixels() {
		if v != 1 {
			t.Fatal("erase of an undrawn sprite changed the buffer")
		}
	}
}

func TestParseErasePolicy(t *testing.T) {
	for in, want := range map[string]ErasePolicy{"": EraseKeepsDrawn, "keep-drawn": EraseKeepsDrawn, "reset-drawn": EraseResetsDrawn} {
		got, err := ParseErasePolicy(in)
		if err != nil || got != want {
			t.Errorf("ParseErasePolicy(%q) = %v, %v", in, got, err)
		}
		if in != "" && got.String() != in {
			t.Errorf("String() = %q, want %q", got.String(), in)
		}
	}
	if _, err := ParseErasePolicy("sometimes"); err == nil {
		t.Error("expected error")
	}
}

func TestLoadImageRotates(t *testing.T) {
	loader := MapLoader{"bg": {Width: 3, Height: 2, Pixels: []byte{1, 2, 3, 4, 5, 6}}}
	img, err := LoadImage(loader, "bg")
	if err != nil {
		t.Fatal(err)
	}
	if img.Width != 2 || img.Height != 3 {
		t.Fatalf("size = %dx%d", img.Width, img.Height)
	}
	want := []byte{3, 6, 2, 5, 1, 4}
	if !bytes.Equal(img.Pixels(), want) {
		t.Errorf("pixels = %v, want %v", img.Pixels(), want)
	}
	if !img.Owned() {
		t.Error("loaded image should own its pixels")
	}
}

func TestLoadImageErrors(t *testing.T) {
	loader := MapLoader{"bad": {Width: 3, Height: 2, Pixels: []byte{1}}}
	if _, err := LoadImage(loader, "missing"); !errors.Is(err, ErrResourceNotFound) {
		t.Errorf("missing: %v", err)
	}
	if _, err := LoadImage(loader, "bad"); !errors.Is(err, ErrBadBitmap) {
		t.Errorf("bad: %v", err)
	}
	if _, err := NewImageFrom(2, 2, []byte{1}); !errors.Is(err, ErrBadBitmap) {
		t.Errorf("NewImageFrom: %v", err)
	}
}

func TestSpriteFrames(t *testing.T) {
	img, _ := NewImageFrom(4, 1, []byte{0, 2, 3, 4})
	s, err := NewSprite(img, 2)
	if err != nil {
		t.Fatal(err)
	}
	if s.CelWidth() != 2 || s.CelHeight() != 1 || s.NumCels() != 2 {
		t.Errorf("cel %dx%d of %d", s.CelWidth(), s.CelHeight(), s.NumCels())
	}
	s.SetCelNo(3)
	if s.CelNo() != 1 {
		t.Errorf("SetCelNo(3) = %d", s.CelNo())
	}
	s.SetCelNo(-1)
	if s.CelNo() != 1 {
		t.Errorf("SetCelNo(-1) = %d", s.CelNo())
	}

	bg := NewImage(2, 1)
	s.HasTransparency = false
	bg.Draw(s)
	if bg.At(0, 0) != 3 || bg.At(1, 0) != 4 {
		t.Errorf("frame 1 drew %v", bg.Pixels())
	}

	if _, err := NewSprite(img, 3); !errors.Is(err, ErrBadBitmap) {
		t.Errorf("uneven strip: %v", err)
	}
}

func TestImageFree(t *testing.T) {
	img := NewImage(2, 2)
	img.Free()
	if img.Pixels() != nil || img.Width != 0 || img.Owned() {
		t.Error("Free should drop the buffer")
	}
	s := testSprite(t)
	img.Draw(s)
}
