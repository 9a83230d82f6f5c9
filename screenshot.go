package lantern

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Screenshot queues a labeled screenshot. The host writes queued shots with
// FlushScreenshots after it has rendered the frame.
func (s *Stage) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, label)
}

// PendingScreenshots returns the number of queued labels.
func (s *Stage) PendingScreenshots() int {
	return len(s.screenshotQueue)
}

// FlushScreenshots writes frame once per queued label as a timestamped PNG
// in ScreenshotDir and clears the queue. Failures are logged.
func (s *Stage) FlushScreenshots(frame image.Image) {
	if len(s.screenshotQueue) == 0 {
		return
	}
	defer func() { s.screenshotQueue = s.screenshotQueue[:0] }()

	if err := os.MkdirAll(s.ScreenshotDir, 0o755); err != nil {
		s.log.Error("screenshot mkdir", "dir", s.ScreenshotDir, "err", err)
		return
	}
	stamp := time.Now().Format("20060102_150405")
	for _, label := range s.screenshotQueue {
		path := filepath.Join(s.ScreenshotDir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := writePNG(path, frame); err != nil {
			s.log.Error("screenshot", "err", err)
			continue
		}
		s.log.Info("screenshot written", "path", path)
	}
}

// PalettedFrame wraps an 8-bit screen buffer of w×h pixels as an image
// with the given palette. The pixels are not copied.
func PalettedFrame(pixels []byte, w, h int, pal color.Palette) *image.Paletted {
	return &image.Paletted{
		Pix:     pixels,
		Stride:  w,
		Rect:    image.Rect(0, 0, w, h),
		Palette: pal,
	}
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
