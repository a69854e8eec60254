package glyph

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"strconv"
	"strings"

	"github.com/ferrolis/solresol/internal/sol"
	"github.com/golang/freetype/raster"
	"golang.org/x/image/colornames"
	"golang.org/x/image/math/fixed"
)

// RenderOptions control rasterization.
type RenderOptions struct {
	Scale  float64     // pixels per glyph unit
	Weight float64     // stroke width in glyph units
	Color  color.Color // stroke color
	Margin float64     // border in glyph units
}

// DefaultRenderOptions returns the standard rasterization parameters.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Scale: 48, Weight: 0.06, Color: color.Black, Margin: 0.75}
}

func (o RenderOptions) withDefaults() RenderOptions {
	d := DefaultRenderOptions()
	if o.Scale <= 0 {
		o.Scale = d.Scale
	}
	if o.Weight <= 0 {
		o.Weight = d.Weight
	}
	if o.Color == nil {
		o.Color = d.Color
	}
	if o.Margin <= 0 {
		o.Margin = d.Margin
	}
	return o
}

// ParseColor resolves an SVG 1.1 color name or a #rrggbb hex triplet.
func ParseColor(name string) (color.Color, error) {
	if c, ok := colornames.Map[strings.ToLower(name)]; ok {
		return c, nil
	}
	if hex, ok := strings.CutPrefix(name, "#"); ok && len(hex) == 6 {
		v, err := strconv.ParseUint(hex, 16, 32)
		if err == nil {
			return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
		}
	}
	return nil, fmt.Errorf("unknown color %q", name)
}

// Render rasterizes a phrase onto a white background. The image is sized
// to the stroke bounding box plus margins.
func Render(p sol.Phrase, opts RenderOptions) *image.RGBA {
	return RenderStrokes(PhraseStrokes(p), opts)
}

// RenderStrokes rasterizes pre-laid-out strokes. Glyph units use y up;
// image rows grow downward, so y flips during the transform.
func RenderStrokes(strokes []Stroke, opts RenderOptions) *image.RGBA {
	opts = opts.withDefaults()

	minX, minY, maxX, maxY := bounds(strokes)
	minX -= opts.Margin
	minY -= opts.Margin
	maxX += opts.Margin
	maxY += opts.Margin

	w := int((maxX - minX) * opts.Scale)
	h := int((maxY - minY) * opts.Scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	if len(strokes) == 0 {
		return img
	}

	toPixel := func(pt Point) fixed.Point26_6 {
		return fixed.Point26_6{
			X: fixed.Int26_6((pt.X - minX) * opts.Scale * 64),
			Y: fixed.Int26_6((maxY - pt.Y) * opts.Scale * 64),
		}
	}

	r := raster.NewRasterizer(w, h)
	r.UseNonZeroWinding = true
	width := fixed.Int26_6(opts.Weight * opts.Scale * 64)
	if width < 1<<6 {
		width = 1 << 6 // at least one pixel
	}
	for _, stroke := range strokes {
		if len(stroke) < 2 {
			continue
		}
		var path raster.Path
		path.Start(toPixel(stroke[0]))
		for _, pt := range stroke[1:] {
			path.Add1(toPixel(pt))
		}
		r.AddStroke(path, width, raster.RoundCapper, raster.RoundJoiner)
	}

	painter := raster.NewRGBAPainter(img)
	painter.SetColor(opts.Color)
	r.Rasterize(painter)
	return img
}

func bounds(strokes []Stroke) (minX, minY, maxX, maxY float64) {
	first := true
	for _, stroke := range strokes {
		for _, pt := range stroke {
			if first {
				minX, maxX = pt.X, pt.X
				minY, maxY = pt.Y, pt.Y
				first = false
				continue
			}
			minX = min(minX, pt.X)
			maxX = max(maxX, pt.X)
			minY = min(minY, pt.Y)
			maxY = max(maxY, pt.Y)
		}
	}
	return
}

// SavePNG writes an image to path.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating image file: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
