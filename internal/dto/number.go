package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a JSON value that may arrive as a number or as a numeric string
// (form inputs post strings). It remembers whether the key was present so the
// field mapper can tell "absent" from "zero".
type Number struct {
	raw      string
	set      bool
	null     bool
	isString bool
}

// Num builds a present numeric value.
func Num(v float64) Number {
	return Number{raw: strconv.FormatFloat(v, 'f', -1, 64), set: true}
}

// NumString builds a present value as if posted as a JSON string.
func NumString(s string) Number {
	return Number{raw: s, set: true, isString: true}
}

func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*n = Number{set: true}
	switch {
	case bytes.Equal(b, []byte("null")):
		n.null = true
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		n.raw = s
		n.isString = true
	default:
		n.raw = string(b)
	}
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.set || n.null {
		return []byte("null"), nil
	}
	if n.isString {
		return json.Marshal(n.raw)
	}
	if _, ok := n.Float(); !ok {
		return json.Marshal(n.raw)
	}
	return []byte(n.raw), nil
}

// Present reports whether the key carried a usable value. Absent keys, JSON
// null and blank strings all count as not present.
func (n Number) Present() bool {
	return n.set && !n.null && strings.TrimSpace(n.raw) != ""
}

// Float parses the value with parseFloat semantics: leading whitespace is
// skipped and the longest numeric prefix is used ("12.5g" -> 12.5).
// ok is false when the value is not present, has no numeric prefix, or does
// not fit a finite float64.
func (n Number) Float() (float64, bool) {
	if !n.Present() {
		return 0, false
	}
	return parseFloatPrefix(n.raw)
}

// FirstNumber returns a when it is present, otherwise b.
func FirstNumber(a, b Number) Number {
	if a.Present() {
		return a
	}
	return b
}

func parseFloatPrefix(s string) (float64, bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}
	f, err := strconv.ParseFloat(s[:i], 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
