package diff

import "strings"

const (
	DefaultMaskChar = '*'
	maskWidth       = 8
)

// Masker hides values for display. The placeholder has the same width for
// every value so nothing about the value, not even its length, leaks.
type Masker struct {
	Char   rune
	Reveal bool
}

// Mask returns value unchanged when Reveal is set, the placeholder otherwise.
func (m Masker) Mask(value string) string {
	if m.Reveal {
		return value
	}
	c := m.Char
	if c == 0 {
		c = DefaultMaskChar
	}
	return strings.Repeat(string(c), maskWidth)
}

// MaskValue masks value with the default character unless reveal is true.
func MaskValue(value string, reveal bool) string {
	return Masker{Reveal: reveal}.Mask(value)
}
