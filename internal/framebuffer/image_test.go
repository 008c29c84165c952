package framebuffer

import (
	"bytes"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"golang.org/x/image/colornames"
)

func TestNewIsBlack(t *testing.T) {
	img := New(4, 3)
	if img.Width() != 4 || img.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 4x3", img.Width(), img.Height())
	}
	if got := img.At(2, 2); got != (color.RGBA{A: 255}) {
		t.Errorf("new buffer should be black, got %v", got)
	}
}

func TestFillRectClips(t *testing.T) {
	img := New(10, 10)
	img.FillRect(-5, 8, 7, 10, colornames.Red)

	if got := img.At(0, 9); got != colornames.Red {
		t.Errorf("clipped corner should be red, got %v", got)
	}
	if got := img.At(1, 9); got != colornames.Red {
		t.Errorf("pixel inside rect should be red, got %v", got)
	}
	if got := img.At(2, 9); got == colornames.Red {
		t.Error("pixel right of rect should stay black")
	}
	if got := img.At(0, 7); got == colornames.Red {
		t.Error("pixel above rect should stay black")
	}

	// Entirely outside is a no-op
	img.FillRect(20, 20, 5, 5, colornames.Blue)
}

func TestTextDrawsPixels(t *testing.T) {
	img := New(80, 20)
	img.Text(2, 2, "Score", colornames.White)

	lit := 0
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			if img.At(x, y) != (color.RGBA{A: 255}) {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("Text should light some pixels")
	}
	if w := img.TextWidth("Score"); w != 5*7 {
		t.Errorf("TextWidth = %d, expected 35 for a 7px face", w)
	}
}

func TestPNGRoundTrip(t *testing.T) {
	img := New(6, 6)
	img.FillRect(1, 1, 2, 2, colornames.Lime)

	var buf bytes.Buffer
	if err := img.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode failed: %v", err)
	}
	r, g, b, _ := decoded.At(1, 1).RGBA()
	if r != 0 || g != 0xffff || b != 0 {
		t.Errorf("decoded pixel = (%d, %d, %d), expected lime", r, g, b)
	}

	path := filepath.Join(t.TempDir(), "shots", "frame.png")
	if err := img.SavePNG(path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}
}
