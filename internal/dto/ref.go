package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Ref is an identifier that may arrive as a JSON string or a JSON number.
// Ingredient references come from several client generations: current ones
// post UUID strings, older ones post numeric ids.
type Ref struct {
	raw string
	set bool
}

// RefOf builds a reference as if posted as a JSON string.
func RefOf(s string) Ref { return Ref{raw: s, set: true} }

func (r *Ref) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*r = Ref{set: true}
	switch {
	case bytes.Equal(b, []byte("null")):
	case len(b) > 0 && b[0] == '"':
		return json.Unmarshal(b, &r.raw)
	case len(b) > 0 && (b[0] == '-' || (b[0] >= '0' && b[0] <= '9')):
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return err
		}
		r.raw = n.String()
	default:
		return fmt.Errorf("referência inválida: %s", b)
	}
	return nil
}

func (r Ref) MarshalJSON() ([]byte, error) {
	s, ok := r.Value()
	if !ok {
		return []byte("null"), nil
	}
	return json.Marshal(s)
}

// Value returns the trimmed identifier. ok is false for absent, null or
// blank references.
func (r Ref) Value() (string, bool) {
	s := strings.TrimSpace(r.raw)
	return s, r.set && s != ""
}

// FirstRef returns a when it carries a value, otherwise b.
func FirstRef(a, b Ref) Ref {
	if _, ok := a.Value(); ok {
		return a
	}
	return b
}
