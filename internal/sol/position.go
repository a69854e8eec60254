package sol

// Position describes one symbol of a word together with the adjacency
// facts downstream renderers need: the preceding symbol, whether this
// symbol repeats it, and whether the glyph spacing rule applies. The
// codec computes no geometry or sound itself.
type Position struct {
	Symbol Symbol

	// Prev is the immediately preceding symbol, nil at the first
	// position.
	Prev *Symbol

	// Doubled is true when the symbol repeats its predecessor. Glyph
	// renderers draw a compact doubling mark instead of a second full
	// shape.
	Doubled bool

	// SpacedBefore is true exactly when this symbol is La and the
	// predecessor is Si or Do. Those glyph pairs collide visually, so
	// renderers shift the cursor before drawing.
	SpacedBefore bool
}

// Positions returns the word's symbols annotated with lookback metadata,
// in order. The slice is freshly built on every call and safe to iterate
// any number of times.
func (w Word) Positions() []Position {
	out := make([]Position, len(w.syms))
	for i, s := range w.syms {
		pos := Position{Symbol: s}
		if i > 0 {
			prev := w.syms[i-1]
			pos.Prev = &prev
			pos.Doubled = s == prev
			pos.SpacedBefore = s == La && (prev == Si || prev == Do)
		}
		out[i] = pos
	}
	return out
}
