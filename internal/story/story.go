// Package story renders the shareable 1080x1920 result image.
package story

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/dustin/go-humanize"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"go.uber.org/zap"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/pransh15/html-myths-quiz/internal/quiz"
)

// FileName is the name the image is delivered under.
const FileName = "html-myths-quiz-score.png"

const (
	Width  = 1080
	Height = 1920

	logoWidth = 200
	centerX   = Width / 2
)

// Palette holds the colors of one theme.
type Palette struct {
	Top       color.RGBA // gradient start
	Bottom    color.RGBA // gradient end
	Text      color.RGBA // text drawn on the gradient
	Circle    color.RGBA // score circle fill
	ScoreText color.RGBA // text inside the circle
}

var (
	LightPalette = Palette{
		Top:       color.RGBA{0x1e, 0x3a, 0x8a, 0xff},
		Bottom:    color.RGBA{0xea, 0x58, 0x0c, 0xff},
		Text:      color.RGBA{0xff, 0xff, 0xff, 0xff},
		Circle:    color.RGBA{0xff, 0xff, 0xff, 0xff},
		ScoreText: color.RGBA{0x1e, 0x3a, 0x8a, 0xff},
	}
	DarkPalette = Palette{
		Top:       color.RGBA{0x0f, 0x17, 0x2a, 0xff},
		Bottom:    color.RGBA{0x7c, 0x2d, 0x12, 0xff},
		Text:      color.RGBA{0xf3, 0xf4, 0xf6, 0xff},
		Circle:    color.RGBA{0x1f, 0x29, 0x37, 0xff},
		ScoreText: color.RGBA{0x93, 0xc5, 0xfd, 0xff},
	}
)

// Options configures logo locations. Empty or unreadable paths leave the
// logo out.
type Options struct {
	MDNLogoPath     string
	MozFestLogoPath string
}

// Renderer draws story images. It is safe for concurrent use.
type Renderer struct {
	mdnLogo     image.Image
	mozfestLogo image.Image
	bold        *truetype.Font
	regular     *truetype.Font
	logger      *zap.Logger
}

// NewRenderer loads fonts and logos.
func NewRenderer(opts Options, logger *zap.Logger) (*Renderer, error) {
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}

	r := &Renderer{
		bold:    bold,
		regular: regular,
		logger:  logger,
	}
	r.mdnLogo = r.loadLogo("mdn", opts.MDNLogoPath)
	r.mozfestLogo = r.loadLogo("mozfest", opts.MozFestLogoPath)

	return r, nil
}

func (r *Renderer) loadLogo(name, path string) image.Image {
	if path == "" {
		return nil
	}

	img, err := gg.LoadImage(path)
	if err != nil {
		r.logger.Warn("story logo unavailable, rendering without it",
			zap.String("logo", name),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil
	}

	return scaleToWidth(img, logoWidth)
}

// Render draws the story for a finished quiz and returns it PNG encoded.
func (r *Renderer) Render(score, total int, dark bool) ([]byte, error) {
	p := LightPalette
	if dark {
		p = DarkPalette
	}

	dc := gg.NewContext(Width, Height)

	grad := gg.NewLinearGradient(0, 0, 0, Height)
	grad.AddColorStop(0, p.Top)
	grad.AddColorStop(1, p.Bottom)
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, Width, Height)
	dc.Fill()

	if r.mdnLogo != nil {
		dc.DrawImage(r.mdnLogo, 300, 100)
	}
	if r.mozfestLogo != nil {
		dc.DrawImage(r.mozfestLogo, 580, 100)
	}

	dc.SetColor(p.Text)
	r.text(dc, r.bold, 60, "×", 140)
	r.text(dc, r.bold, 72, "Unlearning HTML Myths", 350)
	r.text(dc, r.regular, 42, "MDN x MozFest 2025", 430)

	dc.SetColor(p.Circle)
	dc.DrawCircle(centerX, 850, 250)
	dc.Fill()

	dc.SetColor(p.ScoreText)
	r.text(dc, r.bold, 120, fmt.Sprintf("%d/%d", score, total), 900)
	r.text(dc, r.bold, 72, fmt.Sprintf("%d%%", quiz.Percentage(score, total)), 1000)

	dc.SetColor(p.Text)
	r.text(dc, r.regular, 48, "Can you beat my score?", 1450)
	r.text(dc, r.regular, 36, "developer.mozilla.org", 1750)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode story png: %w", err)
	}

	r.logger.Debug("story rendered",
		zap.Int("score", score),
		zap.Int("total", total),
		zap.Bool("dark", dark),
		zap.String("size", humanize.Bytes(uint64(buf.Len()))),
	)

	return buf.Bytes(), nil
}

// text draws s centered horizontally with its baseline at y.
func (r *Renderer) text(dc *gg.Context, f *truetype.Font, size float64, s string, y float64) {
	face := truetype.NewFace(f, &truetype.Options{Size: size, Hinting: font.HintingFull})
	defer face.Close()

	dc.SetFontFace(face)
	dc.DrawStringAnchored(s, centerX, y, 0.5, 0)
}

func scaleToWidth(src image.Image, width int) image.Image {
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil
	}

	height := b.Dy() * width / b.Dx()
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}
