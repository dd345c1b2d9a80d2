package story

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func decode(t *testing.T, data []byte) image.Image {
	t.Helper()

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	return img
}

func near(t *testing.T, got color.Color, want color.RGBA, tolerance uint8) {
	t.Helper()

	r, g, b, _ := got.RGBA()
	diff := func(a uint32, b uint8) int {
		d := int(a>>8) - int(b)
		if d < 0 {
			d = -d
		}
		return d
	}
	if diff(r, want.R) > int(tolerance) || diff(g, want.G) > int(tolerance) || diff(b, want.B) > int(tolerance) {
		t.Errorf("color %v is not near %v", got, want)
	}
}

func writeLogo(t *testing.T, c color.RGBA) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "logo.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create logo: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode logo: %v", err)
	}
	return path
}

func TestRender_MissingLogos(t *testing.T) {
	r, err := NewRenderer(Options{
		MDNLogoPath:     filepath.Join(t.TempDir(), "missing.png"),
		MozFestLogoPath: "",
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := r.Render(12, 15, false)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	img := decode(t, data)
	if b := img.Bounds(); b.Dx() != Width || b.Dy() != Height {
		t.Errorf("expected %dx%d, got %dx%d", Width, Height, b.Dx(), b.Dy())
	}

	near(t, img.At(5, 2), LightPalette.Top, 4)
	near(t, img.At(5, Height-2), LightPalette.Bottom, 4)
	// Inside the score circle, clear of the text.
	near(t, img.At(centerX, 700), LightPalette.Circle, 0)
}

func TestRender_DarkPalette(t *testing.T) {
	r, err := NewRenderer(Options{}, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := r.Render(0, 15, true)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	img := decode(t, data)
	near(t, img.At(5, 2), DarkPalette.Top, 4)
	near(t, img.At(centerX, 700), DarkPalette.Circle, 0)
}

func TestRender_DrawsLogos(t *testing.T) {
	green := color.RGBA{0, 0xff, 0, 0xff}
	path := writeLogo(t, green)

	r, err := NewRenderer(Options{MDNLogoPath: path, MozFestLogoPath: path}, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := r.Render(15, 15, false)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	img := decode(t, data)
	// A 40x20 logo scales to 200x100.
	near(t, img.At(400, 150), green, 2)
	near(t, img.At(680, 150), green, 2)
	near(t, img.At(400, 250), LightPalette.Top, 40)
}
