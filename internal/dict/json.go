package dict

import (
	"encoding/json"
	"fmt"
	"os"
)

// JSONDictionary is an in-memory dictionary loaded from a single JSON
// object file of spelling to definitions, the layout of the historical
// solresol_dict.json exports.
type JSONDictionary struct {
	entries map[string]string
}

// NewJSONDictionary creates an empty dictionary.
func NewJSONDictionary() *JSONDictionary {
	return &JSONDictionary{entries: make(map[string]string)}
}

// LoadJSON reads a dictionary from a JSON object file.
func LoadJSON(path string) (*JSONDictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dictionary file: %w", err)
	}
	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing dictionary file: %w", err)
	}
	return &JSONDictionary{entries: entries}, nil
}

// Lookup returns the definitions for a spelling.
func (d *JSONDictionary) Lookup(spelling string) (string, error) {
	defs, ok := d.entries[spelling]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotFound, spelling)
	}
	return defs, nil
}

// Size returns the number of entries.
func (d *JSONDictionary) Size() int { return len(d.entries) }

// Entries returns spelling/definition pairs in map iteration order. Used
// by the SQLite importer.
func (d *JSONDictionary) Entries() map[string]string {
	out := make(map[string]string, len(d.entries))
	for k, v := range d.entries {
		out[k] = v
	}
	return out
}
