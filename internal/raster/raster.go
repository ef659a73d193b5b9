// Package raster draws a Scene into an image with gg.
// Coordinates are canvas units; Options.Scale maps them to pixels.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"sns/internal/scene"
)

// LabelSize is the label font size in canvas units.
const LabelSize = 16

// Options control the output image.
type Options struct {
	Scale      float64
	Background string
	// Preview, если задан, рисуется поверх сцены.
	Preview *scene.Primitive
}

var monoFont = sync.OnceValues(func() (*truetype.Font, error) {
	return truetype.Parse(gomono.TTF)
})

// Render draws s (which may be nil) onto a new square image.
func Render(s *scene.Scene, opts Options) (image.Image, error) {
	dc, err := newContext(opts)
	if err != nil {
		return nil, err
	}
	if s != nil {
		for i := range s.Primitives {
			drawPrimitive(dc, &s.Primitives[i])
		}
	}
	if opts.Preview != nil {
		drawPrimitive(dc, opts.Preview)
	}
	return dc.Image(), nil
}

// SavePNG renders s and writes it to path.
func SavePNG(path string, s *scene.Scene, opts Options) error {
	img, err := Render(s, opts)
	if err != nil {
		return err
	}
	return WritePNG(path, img)
}

// WritePNG encodes img to path.
func WritePNG(path string, img image.Image) error {
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func newContext(opts Options) (*gg.Context, error) {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	side := int(float64(scene.CanvasSize) * scale)
	dc := gg.NewContext(side, side)

	bg := color.Color(color.White)
	if opts.Background != "" {
		c, err := ParseColor(opts.Background)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		bg = c
	}
	dc.SetColor(bg)
	dc.Clear()
	dc.Scale(scale, scale)

	f, err := monoFont()
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	dc.SetFontFace(truetype.NewFace(f, &truetype.Options{
		Size:    LabelSize,
		DPI:     72,
		Hinting: font.HintingFull,
	}))
	return dc, nil
}

// цвет, который не разобрать, рисуется чёрным, как это делает браузер для невалидного stroke
func colorOr(s string, fallback color.Color) color.Color {
	c, err := ParseColor(s)
	if err != nil {
		return fallback
	}
	return c
}

func drawPrimitive(dc *gg.Context, p *scene.Primitive) {
	ax, ay := float64(p.A.X), float64(p.A.Y)
	bx, by := float64(p.B.X), float64(p.B.Y)

	switch p.Kind {
	case scene.PrimLine:
		dc.DrawLine(ax, ay, bx, by)
	case scene.PrimRect:
		dc.DrawRectangle(ax, ay, bx, by)
	case scene.PrimEllipse:
		dc.DrawEllipse(ax, ay, bx, by)
	case scene.PrimHandle:
		dc.DrawCircle(ax, ay, bx)
	case scene.PrimLabel:
		dc.SetColor(colorOr(p.Stroke, color.Black))
		dc.DrawString(p.Text, ax, ay)
		return
	default:
		return
	}

	if p.Fill != "" {
		dc.SetColor(colorOr(p.Fill, color.Black))
		dc.FillPreserve()
	}
	if p.RoundCap {
		dc.SetLineCapRound()
	} else {
		dc.SetLineCapButt()
	}
	if p.Dashed {
		dc.SetDash(6, 4)
	}
	dc.SetLineWidth(float64(p.StrokeWidth))
	dc.SetColor(colorOr(p.Stroke, color.Black))
	dc.Stroke()
	if p.Dashed {
		dc.SetDash()
	}
}
