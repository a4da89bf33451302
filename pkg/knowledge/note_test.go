package knowledge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoteTitle(t *testing.T) {
	note := Note{AbsPath: "/kb/topics/Plugin Dev.md", RelPath: "topics/Plugin Dev.md"}

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "h1", content: "# Plugin Development\nbody", want: "Plugin Development"},
		{name: "deeper heading trimmed", content: "intro\n###   Hot Reload  \n", want: "Hot Reload"},
		{name: "first heading wins", content: "# One\n# Two", want: "One"},
		{name: "no heading", content: "just text\nmore", want: "Plugin Dev"},
		{name: "empty", content: "", want: "Plugin Dev"},
		{name: "indented heading does not count", content: "  # Indented", want: "Plugin Dev"},
		{name: "crlf", content: "# Windows Title\r\nbody", want: "Windows Title"},
		{
			name:    "heading on line ten",
			content: strings.Repeat("x\n", 9) + "# Tenth",
			want:    "Tenth",
		},
		{
			name:    "heading on line eleven ignored",
			content: strings.Repeat("x\n", 10) + "# Eleventh",
			want:    "Plugin Dev",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, note.Title(tt.content))
		})
	}
}

func TestWikiLink(t *testing.T) {
	assert.Equal(t, "[[Obsidian Plugins]]", WikiLink("Obsidian Plugins"))
	assert.Equal(t, "[[Obsidian Plugins|", AliasLinkPrefix("Obsidian Plugins"))
}
