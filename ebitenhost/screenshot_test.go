package ebitenhost

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-zoom", "after-zoom"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	g, _ := newTestGame(t, 100, 100, 100, 100)
	g.Screenshot("a")
	g.Screenshot("b")
	if len(g.screenshotQueue) != 2 || g.screenshotQueue[0] != "a" || g.screenshotQueue[1] != "b" {
		t.Errorf("queue = %v, want [a b]", g.screenshotQueue)
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		64, 32, 16, 128, // half transparent
		10, 20, 30, 255, // opaque
		0, 0, 0, 0, // clear
	}
	img := unpremultiply(pixels, 3, 1)
	want := []byte{
		127, 63, 31, 128,
		10, 20, 30, 255,
		0, 0, 0, 0,
	}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Errorf("Pix[%d] = %d, want %d", i, img.Pix[i], want[i])
		}
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.png")
	src := unpremultiply(make([]byte, 4*6*4), 6, 4)
	if err := writePNG(path, src); err != nil {
		t.Fatalf("writePNG: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if cfg.Width != 6 || cfg.Height != 4 {
		t.Errorf("size = %dx%d, want 6x4", cfg.Width, cfg.Height)
	}

	if err := writePNG(filepath.Join(t.TempDir(), "missing", "x.png"), image.NewNRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Error("expected error writing into a missing directory")
	}
}
