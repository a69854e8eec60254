package glyph

import (
	"image/color"
	"strings"
	"testing"

	"github.com/ferrolis/solresol/internal/sol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseWord(t *testing.T, text string) sol.Word {
	t.Helper()
	w, err := sol.ParseWord(text, sol.SyntaxFull)
	require.NoError(t, err)
	return w
}

func TestWordStrokesAdvance(t *testing.T) {
	// sol is a unit horizontal: the next word starts one unit plus the
	// word gap to the right, back on the baseline.
	_, next := WordStrokes(parseWord(t, "sol"), Point{})
	assert.Equal(t, Point{X: 1 + wordGap, Y: 0}, next)

	// re descends but the following word returns to the baseline.
	_, next = WordStrokes(parseWord(t, "re"), Point{})
	assert.Equal(t, Point{X: wordGap, Y: 0}, next)

	// si climbs one unit per symbol.
	strokes, next := WordStrokes(parseWord(t, "sisol"), Point{})
	assert.Len(t, strokes, 2)
	assert.Equal(t, Point{X: 2 + wordGap, Y: 0}, next)
}

func TestWordStrokesDoubling(t *testing.T) {
	single, singleNext := WordStrokes(parseWord(t, "sol"), Point{})
	doubled, next := WordStrokes(parseWord(t, "solsol"), Point{})

	require.Len(t, doubled, 2)
	// The doubling tick decorates the first glyph without advancing: the
	// doubled word ends where the single one does.
	assert.Equal(t, singleNext, next)
	assert.Equal(t, single[0], doubled[0])
}

func TestWordStrokesSpacingShift(t *testing.T) {
	// la after do triggers the collision shift; la after mi does not.
	shifted, _ := WordStrokes(parseWord(t, "dola"), Point{})
	plain, _ := WordStrokes(parseWord(t, "mila"), Point{})

	require.Len(t, shifted, 2)
	require.Len(t, plain, 2)

	// Both words put their second glyph's arc at the do/mi attachment
	// point (1, 0); the shifted one starts half a unit up and right.
	assert.InDelta(t, plain[1][0].X+spacingShift, shifted[1][0].X, 1e-9)
	assert.InDelta(t, plain[1][0].Y+spacingShift, shifted[1][0].Y, 1e-9)
}

func TestPhraseStrokes(t *testing.T) {
	p, err := sol.ParsePhrase("sol sol", sol.SyntaxFull)
	require.NoError(t, err)
	strokes := PhraseStrokes(p)
	require.Len(t, strokes, 2)
	// Second word starts after the first word's advance.
	assert.InDelta(t, 1+wordGap, strokes[1][0].X, 1e-9)
}

func TestRender(t *testing.T) {
	p, err := sol.ParsePhrase("dodomi sol refa", sol.SyntaxFull)
	require.NoError(t, err)

	img := Render(p, RenderOptions{Scale: 20, Color: color.RGBA{R: 0xff, A: 0xff}})
	b := img.Bounds()
	assert.Greater(t, b.Dx(), 0)
	assert.Greater(t, b.Dy(), 0)

	// Some pixels carry ink.
	inked := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r != g || g != bl {
				inked++
			}
		}
	}
	assert.Greater(t, inked, 0)
}

func TestRenderEmptyPhrase(t *testing.T) {
	img := Render(sol.PhraseFromWords(), RenderOptions{})
	assert.NotNil(t, img)
}

func TestBlocks(t *testing.T) {
	p, err := sol.ParsePhrase("sol", sol.SyntaxFull)
	require.NoError(t, err)

	art := Blocks(p, 40)
	require.NotEmpty(t, art)
	assert.True(t, strings.ContainsAny(art, "█▀▄"), "no ink in preview:\n%s", art)
}

// A preview wider than the rendered image leaves cells with no source
// pixels; those stay blank instead of filling with ink.
func TestBlocksWiderThanImage(t *testing.T) {
	// An empty phrase renders to a margins-only canvas far narrower
	// than 200 cells, so most preview cells cover no source pixels.
	art := Blocks(sol.PhraseFromWords(), 200)
	require.NotEmpty(t, art)
	assert.False(t, strings.ContainsAny(art, "█▀▄"), "ink in empty preview:\n%s", art)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("black")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{A: 0xff}, c)

	c, err = ParseColor("#ff0000")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, c)

	_, err = ParseColor("not-a-color")
	assert.Error(t, err)
}
