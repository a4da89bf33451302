package ui

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansi.ReplaceAllString(s, "")
}

func TestSuccessAndError(t *testing.T) {
	assert.Equal(t, "✓ remembered", stripANSI(Success("remembered")))
	assert.Equal(t, "✗ bad input", stripANSI(Error("bad input")))
	assert.Equal(t, "usage", stripANSI(Hint("usage")))
}

func TestHighlightJSONPreservesText(t *testing.T) {
	doc := "[\n  {\n    \"file\": \"a.md\",\n    \"path\": \"notes/a.md\"\n  }\n]"

	assert.Equal(t, doc, stripANSI(HighlightJSON(doc)))
}

func TestHighlightJSONEmptyArray(t *testing.T) {
	assert.Equal(t, "[]", stripANSI(HighlightJSON("[]")))
}
