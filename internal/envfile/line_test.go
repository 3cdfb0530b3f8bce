package envfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   Line
		wantOK bool
	}{
		{"simple", "KEY=value", Line{Key: "KEY", Value: "value"}, true},
		{"surrounding whitespace", "  KEY = value  ", Line{Key: "KEY", Value: "value"}, true},
		{"empty value", "KEY=", Line{Key: "KEY", Value: ""}, true},
		{"first equals wins", "K=a=b", Line{Key: "K", Value: "a=b"}, true},
		{"double quoted", `K="hello world"`, Line{Key: "K", Value: "hello world", Quoted: true}, true},
		{"single quoted", `K='hello world'`, Line{Key: "K", Value: "hello world", Quoted: true}, true},
		{"one quote layer only", `K=""x""`, Line{Key: "K", Value: `"x"`, Quoted: true}, true},
		{"mismatched quotes", `K="x'`, Line{Key: "K", Value: `"x'`}, true},
		{"lone quote", `K="`, Line{Key: "K", Value: `"`}, true},
		{"empty quotes", `K=""`, Line{Key: "K", Value: "", Quoted: true}, true},
		{"inline comment", "K=abc # note", Line{Key: "K", Value: "abc"}, true},
		{"hash without space", "K=abc#note", Line{Key: "K", Value: "abc#note"}, true},
		{"hash in double quotes", `K="a#b"`, Line{Key: "K", Value: "a#b", Quoted: true}, true},
		{"hash in single quotes", `K='a #b'`, Line{Key: "K", Value: "a #b", Quoted: true}, true},
		{"quoted then comment", `K="a b" # note`, Line{Key: "K", Value: "a b", Quoted: true}, true},
		{"url fragment", "URL=http://x#frag", Line{Key: "URL", Value: "http://x#frag"}, true},
		{"value is only a comment", "K=# nothing", Line{Key: "K", Value: ""}, true},
		{"tab before comment", "K=v\t# note", Line{Key: "K", Value: "v"}, true},
		{"export prefix", "export KEY=value", Line{Key: "KEY", Value: "value"}, true},
		{"export with extra spaces", "export    KEY=value", Line{Key: "KEY", Value: "value"}, true},
		{"export is case sensitive", "EXPORT KEY=value", Line{Key: "EXPORT KEY", Value: "value"}, true},
		{"blank", "", Line{}, false},
		{"whitespace only", "   \t ", Line{}, false},
		{"comment", "# KEY=value", Line{}, false},
		{"indented comment", "   # KEY=value", Line{}, false},
		{"no equals", "JUST_A_WORD", Line{}, false},
		{"export without assignment", "export KEY", Line{}, false},
		{"empty key", "=value", Line{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLine(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLineExportEquivalence(t *testing.T) {
	for _, line := range []string{
		"KEY=V",
		`KEY="quoted # value"`,
		"KEY=a=b # trailing",
		"KEY='x'",
	} {
		t.Run(line, func(t *testing.T) {
			plain, plainOK := ParseLine(line)
			exported, exportedOK := ParseLine("export " + line)
			assert.Equal(t, plainOK, exportedOK)
			assert.Equal(t, plain, exported)
		})
	}
}

func TestParseLineQuoteRoundTrip(t *testing.T) {
	for _, v := range []string{"", "plain", "with spaces", "a=b", "postgres://u:p@host/db"} {
		for _, q := range []string{`'`, `"`} {
			got, ok := ParseLine("K=" + q + v + q)
			assert.True(t, ok)
			assert.Equal(t, v, got.Value, "quote %s", q)
			assert.True(t, got.Quoted, "quote %s", q)
		}
	}
}

func TestStripInlineComment(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"value # comment", "value"},
		{"#comment", ""},
		{"a#b", "a#b"},
		{`"a # b"`, `"a # b"`},
		{`'a # b' # c`, `'a # b'`},
		{`"it's" # c`, `"it's"`},
		{"no comment", "no comment"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, StripInlineComment(tt.in))
		})
	}
}
