package textutil

import "strconv"

// Text is an optional string. The zero value is absent.
type Text struct {
	value   string
	present bool
}

// Absent returns a Text with no value.
func Absent() Text {
	return Text{}
}

// Some wraps s as a present Text. Some("") is present but empty.
func Some(s string) Text {
	return Text{value: s, present: true}
}

// FromPtr converts a *string, mapping nil to Absent.
func FromPtr(p *string) Text {
	if p == nil {
		return Absent()
	}
	return Some(*p)
}

// Get returns the wrapped string and whether it is present.
func (t Text) Get() (string, bool) {
	return t.value, t.present
}

// IsAbsent reports whether t carries no value at all.
func (t Text) IsAbsent() bool {
	return !t.present
}

// String renders t for diagnostics: "<absent>" or the quoted value.
func (t Text) String() string {
	if !t.present {
		return "<absent>"
	}
	return strconv.Quote(t.value)
}

// IsEmptyOrAbsent reports whether s is absent or the empty string.
func IsEmptyOrAbsent(s Text) bool {
	return !s.present || s.value == ""
}
