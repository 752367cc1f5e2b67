package textutil

import (
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// NormalizedSimilarity returns 1 when both inputs are empty or absent, 0 when
// exactly one is, and Delegate otherwise.
func NormalizedSimilarity(a, b Text) Outcome {
	aEmpty, bEmpty := IsEmptyOrAbsent(a), IsEmptyOrAbsent(b)
	switch {
	case aEmpty && bEmpty:
		return Degenerate(1)
	case aEmpty || bEmpty:
		return Degenerate(0)
	}
	return Delegate()
}

// NormalizedDistance is the complement of NormalizedSimilarity on [0,1].
func NormalizedDistance(a, b Text) Outcome {
	sim, ok := NormalizedSimilarity(a, b).Value()
	if !ok {
		return Delegate()
	}
	return Degenerate(1 - sim)
}

// LengthDistance returns the raw length distance for degenerate pairs, with
// length counted in UTF-16 code units. Both empty or absent gives 0; exactly
// one gives the length of the other.
func LengthDistance(a, b Text) Outcome {
	return LengthDistanceIn(a, b, UnitUTF16)
}

// LengthDistanceIn is LengthDistance with an explicit counting unit.
func LengthDistanceIn(a, b Text, unit LengthUnit) Outcome {
	aEmpty, bEmpty := IsEmptyOrAbsent(a), IsEmptyOrAbsent(b)
	switch {
	case aEmpty && bEmpty:
		return Degenerate(0)
	case aEmpty:
		return Degenerate(float64(unit.Len(b.value)))
	case bEmpty:
		return Degenerate(float64(unit.Len(a.value)))
	}
	return Delegate()
}

// LengthUnit selects how string length is counted. The zero value is
// UnitUTF16.
type LengthUnit int

const (
	// UnitUTF16 counts UTF-16 code units, so characters outside the Basic
	// Multilingual Plane count as two.
	UnitUTF16 LengthUnit = iota
	// UnitRunes counts Unicode code points.
	UnitRunes
	// UnitBytes counts UTF-8 bytes.
	UnitBytes
)

// Len returns the length of s in unit u. Unknown units count UTF-16 code units.
func (u LengthUnit) Len(s string) int {
	switch u {
	case UnitRunes:
		return utf8.RuneCountInString(s)
	case UnitBytes:
		return len(s)
	default:
		n := 0
		for _, r := range s {
			n += utf16.RuneLen(r)
		}
		return n
	}
}

func (u LengthUnit) String() string {
	switch u {
	case UnitRunes:
		return "runes"
	case UnitBytes:
		return "bytes"
	default:
		return "utf16"
	}
}

// ParseLengthUnit maps a config or flag value to a LengthUnit.
// The empty string selects UnitUTF16.
func ParseLengthUnit(value string) (LengthUnit, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "utf16", "utf-16":
		return UnitUTF16, nil
	case "runes", "rune", "chars":
		return UnitRunes, nil
	case "bytes", "byte":
		return UnitBytes, nil
	default:
		return UnitUTF16, fmt.Errorf("length unit: unsupported value %q", value)
	}
}
