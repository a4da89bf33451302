package knowledge

import (
	"path/filepath"
	"strings"
)

// NoteExt is the only file extension the walker treats as a note.
const NoteExt = ".md"

// titleScanLines bounds how far into a note Title looks for a heading.
const titleScanLines = 10

// Note addresses one markdown file in the knowledge base.
type Note struct {
	AbsPath string // absolute path on disk
	RelPath string // slash-separated path relative to the knowledge root
}

// Stem returns the file name without its extension.
func (n Note) Stem() string {
	name := filepath.Base(n.AbsPath)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// Title returns the first heading found in the first ten lines of content,
// with its leading '#' marks and surrounding whitespace removed. Notes without
// such a heading are titled by their file stem.
func (n Note) Title(content string) string {
	lines := strings.SplitN(content, "\n", titleScanLines+1)
	if len(lines) > titleScanLines {
		lines = lines[:titleScanLines]
	}
	for _, line := range lines {
		if strings.HasPrefix(line, "#") {
			return strings.TrimSpace(strings.TrimLeft(line, "#"))
		}
	}
	return n.Stem()
}
