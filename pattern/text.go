package pattern

// Text is a pattern text or the missing marker. The zero value is missing.
type Text struct {
	s  string
	ok bool
}

// Of returns a concrete text.
func Of(s string) Text {
	return Text{s: s, ok: true}
}

// Missing returns the missing marker.
func Missing() Text {
	return Text{}
}

// FromPtr returns the missing marker for nil and a concrete text otherwise.
func FromPtr(s *string) Text {
	if s == nil {
		return Missing()
	}

	return Of(*s)
}

// Texts wraps every string as a concrete text.
func Texts(ss ...string) []Text {
	out := make([]Text, len(ss))
	for i, s := range ss {
		out[i] = Of(s)
	}
	return out
}

// IsMissing reports whether t is the missing marker.
func (t Text) IsMissing() bool {
	return !t.ok
}

// Value returns the text and whether it is present.
func (t Text) Value() (string, bool) {
	return t.s, t.ok
}

// String returns the text, or "NA" for the missing marker.
func (t Text) String() string {
	if !t.ok {
		return "NA"
	}

	return t.s
}
