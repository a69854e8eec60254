package sol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositions(t *testing.T) {
	w := mustWord(t, 1, 1, 7, 6, 6, 3)
	got := w.Positions()
	require.Len(t, got, 6)

	assert.Equal(t, Do, got[0].Symbol)
	assert.Nil(t, got[0].Prev)
	assert.False(t, got[0].Doubled)
	assert.False(t, got[0].SpacedBefore)

	// do do: a repeat.
	assert.True(t, got[1].Doubled)
	require.NotNil(t, got[1].Prev)
	assert.Equal(t, Do, *got[1].Prev)
	assert.False(t, got[1].SpacedBefore)

	// si after do: neither.
	assert.False(t, got[2].Doubled)
	assert.False(t, got[2].SpacedBefore)

	// la after si: spacing rule.
	assert.Equal(t, La, got[3].Symbol)
	assert.True(t, got[3].SpacedBefore)
	assert.False(t, got[3].Doubled)

	// la after la: repeat, and no extra spacing.
	assert.True(t, got[4].Doubled)
	assert.False(t, got[4].SpacedBefore)

	assert.Equal(t, Mi, got[5].Symbol)
	assert.False(t, got[5].Doubled)
}

func TestPositionsSpacingPairs(t *testing.T) {
	for prev := Do; prev <= Si; prev++ {
		w, err := NewWord(prev, La)
		require.NoError(t, err)
		got := w.Positions()
		want := prev == Si || prev == Do
		assert.Equal(t, want, got[1].SpacedBefore, "la after %v", prev)
	}

	// The rule keys on la only: si after do gets no spacing.
	w := mustWord(t, 1, 7)
	assert.False(t, w.Positions()[1].SpacedBefore)
}

// Leading la never looks back past the start of the word.
func TestPositionsSingle(t *testing.T) {
	w := mustWord(t, 6)
	got := w.Positions()
	require.Len(t, got, 1)
	assert.Nil(t, got[0].Prev)
	assert.False(t, got[0].SpacedBefore)
	assert.False(t, got[0].Doubled)
}
