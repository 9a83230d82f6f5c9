// Package palette builds the 256-entry palettes used to show 8-bit
// panorama buffers, and fades them for room transitions.
package palette

import (
	"fmt"
	"image/color"
	"sort"

	clr "github.com/lucasb-eyer/go-colorful"
)

// Size is the number of entries in a full palette.
const Size = 256

// Stop pins a color at a palette index. Entries between stops are blended.
type Stop struct {
	Index int
	Color string // hex, "#rrggbb"
}

// Build returns a 256-entry palette interpolated between stops. Entries
// before the first stop and after the last take the end colors.
func Build(stops ...Stop) (color.Palette, error) {
	if len(stops) == 0 {
		return nil, fmt.Errorf("palette: no stops")
	}
	sorted := make([]Stop, len(stops))
	copy(sorted, stops)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Index < sorted[j].Index })

	cols := make([]clr.Color, len(sorted))
	for i, s := range sorted {
		if s.Index < 0 || s.Index >= Size {
			return nil, fmt.Errorf("palette: stop index %d out of range", s.Index)
		}
		c, err := clr.Hex(s.Color)
		if err != nil {
			return nil, fmt.Errorf("palette: stop %d: %w", s.Index, err)
		}
		cols[i] = c
	}

	pal := make(color.Palette, Size)
	for i := range pal {
		switch {
		case i <= sorted[0].Index:
			pal[i] = toRGBA(cols[0])
		case i >= sorted[len(sorted)-1].Index:
			pal[i] = toRGBA(cols[len(cols)-1])
		default:
			k := sort.Search(len(sorted), func(k int) bool { return sorted[k].Index >= i })
			lo, hi := sorted[k-1], sorted[k]
			t := float64(i-lo.Index) / float64(hi.Index-lo.Index)
			pal[i] = mix(cols[k-1], cols[k], t)
		}
	}
	return pal, nil
}

// Named returns one of the built-in palettes.
func Named(name string) (color.Palette, error) {
	stops, ok := builtin[name]
	if !ok {
		return nil, fmt.Errorf("palette: unknown palette %q", name)
	}
	return Build(stops...)
}

var builtin = map[string][]Stop{
	"grey": {{0, "#000000"}, {255, "#ffffff"}},
	"dusk": {
		{0, "#000000"},
		{64, "#1b1f3b"},
		{128, "#6b3e75"},
		{192, "#e0855a"},
		{255, "#fff1c1"},
	},
	"lighthouse": {
		{0, "#05070d"},
		{96, "#20425c"},
		{160, "#7fa9b8"},
		{224, "#f3e3b0"},
		{255, "#ffffff"},
	},
}

// Fade blends every entry of pal toward target by t in [0, 1]. t=0 returns
// a copy of pal and t=1 a flat palette of target.
func Fade(pal color.Palette, target color.Color, t float64) color.Palette {
	t = min(max(t, 0), 1)
	to, _ := clr.MakeColor(target)
	out := make(color.Palette, len(pal))
	for i, c := range pal {
		from, ok := clr.MakeColor(c)
		if !ok {
			out[i] = c
			continue
		}
		out[i] = mix(from, to, t)
	}
	return out
}

// Lighten raises the HCL luminance of c by p.
func Lighten(c color.Color, p float64) color.Color {
	src, _ := clr.MakeColor(c)
	h, ch, l := src.Hcl()
	return toRGBA(clr.Hcl(h, ch, l+p).Clamped())
}

// Darken lowers the HCL luminance of c by p.
func Darken(c color.Color, p float64) color.Color {
	src, _ := clr.MakeColor(c)
	h, ch, l := src.Hcl()
	return toRGBA(clr.Hcl(h, ch, l-p).Clamped())
}

// mix blends in Lab space, except for greys which stay in RGB so they do
// not pick up a hue.
func mix(c1, c2 clr.Color, t float64) color.RGBA {
	if (c1.R == c1.G && c1.G == c1.B) || (c2.R == c2.G && c2.G == c2.B) {
		return toRGBA(c1.BlendRgb(c2, t).Clamped())
	}
	return toRGBA(c1.BlendLab(c2, t).Clamped())
}

func toRGBA(c clr.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}
}
