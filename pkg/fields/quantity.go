package fields

import (
	"math"
	"strings"
)

// Bounds are the inclusive limits of a quantity input. A nil pointer leaves
// that side unbounded.
type Bounds struct {
	Min *int
	Max *int
}

// NewBounds builds inclusive bounds from explicit limits.
func NewBounds(min, max int) Bounds {
	return Bounds{Min: &min, Max: &max}
}

// ParseBounds reads bounds from the raw min/max attribute values of an input
// element. Attributes that do not parse as integers are ignored.
func ParseBounds(minAttr, maxAttr string) Bounds {
	var b Bounds
	if v, ok := ParseInt(minAttr); ok {
		b.Min = &v
	}
	if v, ok := ParseInt(maxAttr); ok {
		b.Max = &v
	}
	return b
}

// Contains reports whether v lies inside the bounds.
func (b Bounds) Contains(v int) bool {
	if b.Min != nil && v < *b.Min {
		return false
	}
	if b.Max != nil && v > *b.Max {
		return false
	}
	return true
}

// Quantity parses value and reports whether it lies within bounds.
// Non-numeric input is invalid.
func Quantity(value string, bounds Bounds) bool {
	v, ok := ParseInt(value)
	if !ok {
		return false
	}
	return bounds.Contains(v)
}

// ParseInt reads a base-10 integer prefix the way browsers parse number
// inputs: leading whitespace and an optional sign are accepted, parsing stops
// at the first non-digit, and at least one digit is required. Values that
// overflow int saturate.
func ParseInt(value string) (int, bool) {
	s := strings.TrimLeft(value, " \t\n\r\f\v")
	if s == "" {
		return 0, false
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	n, digits := 0, 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		d := int(s[digits] - '0')
		if n > (math.MaxInt-d)/10 {
			n = math.MaxInt
		} else {
			n = n*10 + d
		}
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	if negative {
		n = -n
	}
	return n, true
}
