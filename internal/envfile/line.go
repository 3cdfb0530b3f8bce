package envfile

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const exportPrefix = "export "

// Line is a single KEY=VALUE assignment read from a .env file.
type Line struct {
	Key    string
	Value  string
	Quoted bool
}

// ParseLine parses one raw line. It reports false for blank lines, comments
// and anything that is not an assignment; those are skipped, never errors.
func ParseLine(raw string) (Line, bool) {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "#") {
		return Line{}, false
	}

	if after, ok := strings.CutPrefix(line, exportPrefix); ok {
		line = strings.TrimSpace(after)
	}

	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return Line{}, false
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return Line{}, false
	}

	value = strings.TrimSpace(StripInlineComment(value))

	quoted := false
	if n := len(value); n >= 2 && value[0] == value[n-1] && (value[0] == '"' || value[0] == '\'') {
		quoted = true
		value = value[1 : n-1]
	}

	return Line{Key: key, Value: value, Quoted: quoted}, true
}

// StripInlineComment cuts a trailing "# comment" from an assignment value.
// A '#' only starts a comment outside quotes and when it is the first
// character or follows whitespace, so "a#b" and "'#x'" are left alone.
func StripInlineComment(value string) string {
	inSingle, inDouble := false, false

	for i, c := range value {
		switch {
		case c == '\'' && !inDouble:
			inSingle = !inSingle
		case c == '"' && !inSingle:
			inDouble = !inDouble
		case c == '#' && !inSingle && !inDouble:
			if i == 0 || isSpaceBefore(value, i) {
				return strings.TrimRightFunc(value[:i], unicode.IsSpace)
			}
		}
	}

	return value
}

func isSpaceBefore(s string, i int) bool {
	r, size := utf8.DecodeLastRuneInString(s[:i])
	return size > 0 && unicode.IsSpace(r)
}
