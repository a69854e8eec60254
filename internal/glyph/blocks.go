package glyph

import (
	"image"
	"image/color"
	"strings"

	"github.com/ferrolis/solresol/internal/sol"
)

// Terminal preview: the rendered image is scaled down by area averaging
// and emitted as half-block characters, two pixel rows per text row.

// Blocks renders a phrase as terminal half-block art, cols cells wide.
// Rows follow from the image aspect ratio.
func Blocks(p sol.Phrase, cols int) string {
	img := Render(p, RenderOptions{})
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || cols <= 0 {
		return ""
	}
	rows := cols * b.Dy() / b.Dx() / 2
	if rows < 1 {
		rows = 1
	}
	return imageToBlocks(img, cols, rows)
}

func imageToBlocks(img image.Image, cols, rows int) string {
	gray := scaleGray(img, cols, rows*2)

	const threshold = 64 // darkness on the white background counts as ink
	var out strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			topOn := 255-gray.GrayAt(col, row*2).Y > threshold
			bottomOn := 255-gray.GrayAt(col, row*2+1).Y > threshold
			switch {
			case topOn && bottomOn:
				out.WriteRune('█')
			case topOn:
				out.WriteRune('▀')
			case bottomOn:
				out.WriteRune('▄')
			default:
				out.WriteRune(' ')
			}
		}
		if row < rows-1 {
			out.WriteRune('\n')
		}
	}
	return out.String()
}

// scaleGray shrinks an image to dstWidth x dstHeight with area averaging.
func scaleGray(src image.Image, dstWidth, dstHeight int) *image.Gray {
	b := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, dstWidth, dstHeight))

	xRatio := float64(b.Dx()) / float64(dstWidth)
	yRatio := float64(b.Dy()) / float64(dstHeight)

	for dy := 0; dy < dstHeight; dy++ {
		for dx := 0; dx < dstWidth; dx++ {
			sx1 := b.Min.X + int(float64(dx)*xRatio)
			sy1 := b.Min.Y + int(float64(dy)*yRatio)
			sx2 := b.Min.X + int(float64(dx+1)*xRatio)
			sy2 := b.Min.Y + int(float64(dy+1)*yRatio)
			if sx2 > b.Max.X {
				sx2 = b.Max.X
			}
			if sy2 > b.Max.Y {
				sy2 = b.Max.Y
			}

			var sum, count int
			for sy := sy1; sy < sy2; sy++ {
				for sx := sx1; sx < sx2; sx++ {
					sum += int(color.GrayModel.Convert(src.At(sx, sy)).(color.Gray).Y)
					count++
				}
			}
			if count > 0 {
				dst.SetGray(dx, dy, color.Gray{Y: uint8(sum / count)})
			} else {
				// A cell past the source image covers no pixels;
				// leave it background white, not zero-value black.
				dst.SetGray(dx, dy, color.Gray{Y: 255})
			}
		}
	}
	return dst
}
