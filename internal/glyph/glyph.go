// Package glyph renders Solresol stenographic glyphs. Each symbol has a
// stroke shape (circle, line or arc) drawn left to right along a baseline;
// a repeated symbol is drawn as a compact doubling tick instead of a
// second full shape. Layout is computed in abstract units with y growing
// upward, then rasterized to an image.
package glyph

import (
	"math"

	"github.com/ferrolis/solresol/internal/sol"
)

// Point is a position in glyph units, y up.
type Point struct {
	X, Y float64
}

// Stroke is an open polyline. Closed shapes repeat their first point.
type Stroke []Point

// arcSegments is the polyline resolution for circles and arcs.
const arcSegments = 24

// wordGap is the baseline advance between words, in glyph units.
const wordGap = 2

// spacingShift is the cursor offset applied when the adapter reports
// SpacedBefore, keeping la clear of a preceding si or do hook.
const spacingShift = 0.5

// arc approximates a circular arc from angle a0 to a1 (degrees,
// counterclockwise positive) as a polyline.
func arc(center Point, r, a0, a1 float64) Stroke {
	stroke := make(Stroke, arcSegments+1)
	for i := 0; i <= arcSegments; i++ {
		a := (a0 + (a1-a0)*float64(i)/arcSegments) * math.Pi / 180
		stroke[i] = Point{center.X + r*math.Cos(a), center.Y + r*math.Sin(a)}
	}
	return stroke
}

func circle(center Point, r float64) Stroke {
	return arc(center, r, 0, 360)
}

// shape returns a symbol's strokes anchored at the cursor, plus the
// attachment point the next glyph continues from. The geometry follows
// the traditional stenographic forms: do a circle, re a falling vertical,
// mi an upper arc, fa a falling diagonal, sol a horizontal, la a right
// arc, si a rising diagonal.
func shape(s sol.Symbol, at Point) ([]Stroke, Point) {
	x, y := at.X, at.Y
	switch s {
	case sol.Do:
		return []Stroke{circle(Point{x + 0.5, y}, 0.5)}, Point{x + 1, y}
	case sol.Re:
		return []Stroke{{{x, y}, {x, y - 1}}}, Point{x, y - 1}
	case sol.Mi:
		return []Stroke{arc(Point{x + 0.5, y}, 0.5, 0, 180)}, Point{x + 1, y}
	case sol.Fa:
		return []Stroke{{{x, y}, {x + 1, y - 1}}}, Point{x + 1, y - 1}
	case sol.Sol:
		return []Stroke{{{x, y}, {x + 1, y}}}, Point{x + 1, y}
	case sol.La:
		return []Stroke{arc(Point{x, y - 0.5}, 0.5, 90, -90)}, Point{x, y - 1}
	case sol.Si:
		return []Stroke{{{x, y}, {x + 1, y + 1}}}, Point{x + 1, y + 1}
	}
	return nil, at
}

// doublerShape returns the compact tick drawn for a repeated symbol. It
// decorates the glyph just drawn, so the cursor does not move.
func doublerShape(s sol.Symbol, at Point) ([]Stroke, Point) {
	x, y := at.X, at.Y
	var stroke Stroke
	switch s {
	case sol.Do, sol.Mi:
		stroke = Stroke{{x - 0.5, y + 2.0 / 6}, {x - 0.5, y + 4.0 / 6}}
	case sol.Re:
		stroke = Stroke{{x - 1.0 / 6, y + 0.5}, {x + 1.0 / 6, y + 0.5}}
	case sol.Fa:
		stroke = Stroke{{x - 4.0 / 6, y + 0.5}, {x - 1.0 / 3, y + 0.5}}
	case sol.Sol:
		stroke = Stroke{{x - 0.5, y - 1.0 / 6}, {x - 0.5, y + 1.0 / 6}}
	case sol.La:
		stroke = Stroke{{x - 2.0 / 6, y + 0.5}, {x - 4.0 / 6, y + 0.5}}
	case sol.Si:
		stroke = Stroke{{x - 4.0 / 6, y - 0.5}, {x - 1.0 / 3, y - 0.5}}
	}
	return []Stroke{stroke}, at
}

// WordStrokes lays out one word starting at the given baseline position.
// It returns the strokes and the position the next word starts at.
func WordStrokes(w sol.Word, start Point) ([]Stroke, Point) {
	var strokes []Stroke
	pos := start
	for _, p := range w.Positions() {
		if p.SpacedBefore {
			pos = Point{pos.X + spacingShift, pos.Y + spacingShift}
		}
		var ss []Stroke
		if p.Doubled {
			ss, pos = doublerShape(p.Symbol, pos)
		} else {
			ss, pos = shape(p.Symbol, pos)
		}
		strokes = append(strokes, ss...)
	}
	return strokes, Point{pos.X + wordGap, start.Y}
}

// PhraseStrokes lays out a whole phrase along one baseline.
func PhraseStrokes(p sol.Phrase) []Stroke {
	var strokes []Stroke
	pos := Point{}
	for _, w := range p.Words() {
		var ss []Stroke
		ss, pos = WordStrokes(w, pos)
		strokes = append(strokes, ss...)
	}
	return strokes
}
