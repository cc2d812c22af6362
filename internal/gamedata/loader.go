package gamedata

import (
	"encoding/json"
	"fmt"
)

// Load decodes one embedded JSON file into a T. Unknown fields are
// rejected so a typo in the data fails loudly instead of zeroing a stat.
func Load[T any](filename string) (T, error) {
	var out T

	f, err := dataFS.Open(filename)
	if err != nil {
		return out, fmt.Errorf("open embedded file %s: %w", filename, err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		return out, fmt.Errorf("decode %s: %w", filename, err)
	}
	return out, nil
}

// MustLoad is Load for data the game cannot start without.
func MustLoad[T any](filename string) T {
	out, err := Load[T](filename)
	if err != nil {
		panic(err)
	}
	return out
}
