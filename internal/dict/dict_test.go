package dict

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ferrolis/solresol/internal/sol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureJSON = `{
	"dore": "I, me",
	"domi": "you",
	"dodomi": "year, years",
	"sol": "if",
	"refa": "and, also"
}`

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dict.json")
	require.NoError(t, os.WriteFile(path, []byte(fixtureJSON), 0o644))
	return path
}

func TestJSONDictionary(t *testing.T) {
	d, err := LoadJSON(writeFixture(t))
	require.NoError(t, err)
	assert.Equal(t, 5, d.Size())

	defs, err := d.Lookup("dore")
	require.NoError(t, err)
	assert.Equal(t, "I, me", defs)

	_, err = d.Lookup("lala")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadJSONErrors(t *testing.T) {
	_, err := LoadJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))
	_, err = LoadJSON(path)
	assert.Error(t, err)
}

func TestSQLiteImportAndLookup(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "dict.db")
	n, err := Import(writeFixture(t), dbPath)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	d, err := OpenSQL(dbPath)
	require.NoError(t, err)
	defer d.Close()

	assert.Equal(t, 5, d.Size())

	defs, err := d.Lookup("dodomi")
	require.NoError(t, err)
	assert.Equal(t, "year, years", defs)

	_, err = d.Lookup("lala")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTranslate(t *testing.T) {
	d, err := LoadJSON(writeFixture(t))
	require.NoError(t, err)

	p, err := sol.ParsePhrase("dore refa domi", sol.SyntaxFull)
	require.NoError(t, err)

	got, err := Translate(p, d, TranslateOptions{})
	require.NoError(t, err)
	assert.Equal(t, "I and you", got)

	got, err = Translate(p, d, TranslateOptions{Index: 1})
	require.NoError(t, err)
	assert.Equal(t, "me also you", got)

	got, err = Translate(p, d, TranslateOptions{All: true})
	require.NoError(t, err)
	assert.Equal(t, "dore: (I, me) refa: (and, also) domi: (you)", got)

	unknown, err := sol.ParsePhrase("lala", sol.SyntaxFull)
	require.NoError(t, err)
	_, err = Translate(unknown, d, TranslateOptions{})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), `"lala"`)
}

func TestTranslateIndexClamped(t *testing.T) {
	d, err := LoadJSON(writeFixture(t))
	require.NoError(t, err)

	p, err := sol.ParsePhrase("domi", sol.SyntaxFull)
	require.NoError(t, err)

	// "you" has a single alternative; a large index falls back to it.
	got, err := Translate(p, d, TranslateOptions{Index: 5})
	require.NoError(t, err)
	assert.Equal(t, "you", got)

	// A negative index clamps to the first alternative instead of
	// indexing out of range.
	got, err = Translate(p, d, TranslateOptions{Index: -1})
	require.NoError(t, err)
	assert.Equal(t, "you", got)

	multi, err := sol.ParsePhrase("dore", sol.SyntaxFull)
	require.NoError(t, err)
	got, err = Translate(multi, d, TranslateOptions{Index: -3})
	require.NoError(t, err)
	assert.Equal(t, "I", got)
}
