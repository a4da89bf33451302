package ui

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// HighlightStyle is the chroma theme used for JSON output.
const HighlightStyle = "dracula"

// HighlightJSON colours a JSON document for the terminal. Whitespace is
// copied through untouched so the layout stays byte-identical once colour
// codes are stripped. On any lexer failure the input is returned as is.
func HighlightJSON(src string) string {
	lexer := lexers.Get("json")
	if lexer == nil {
		return src
	}
	iterator, err := lexer.Tokenise(nil, src)
	if err != nil {
		return src
	}

	theme := styles.Get(HighlightStyle)
	if theme == nil {
		theme = styles.Fallback
	}

	var out strings.Builder
	for _, token := range iterator.Tokens() {
		if strings.TrimSpace(token.Value) == "" || strings.Contains(token.Value, "\n") {
			out.WriteString(token.Value)
			continue
		}
		out.WriteString(formatToken(token.Value, theme.Get(token.Type)))
	}
	return out.String()
}

func formatToken(value string, entry chroma.StyleEntry) string {
	style := lipgloss.NewStyle()
	if entry.Colour.IsSet() {
		style = style.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		style = style.Italic(true)
	}
	return style.Render(value)
}
