package memory

import (
	"strings"
	"time"
)

// TimestampLayout is the layout of the header line that opens every entry.
const TimestampLayout = "2006-01-02 15:04:05"

const (
	headerPrefix = "## "
	previewRunes = 50
)

var timeNow = time.Now // injected for testability

// FormatEntry renders one appended entry: a blank line, the timestamp header,
// the raw content and a trailing newline.
func FormatEntry(ts time.Time, content string) string {
	return "\n" + headerPrefix + ts.Format(TimestampLayout) + "\n" + content + "\n"
}

// Timestamp formats t the way entry headers and snapshots do.
func Timestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// Preview returns at most the first 50 characters of content, marking truncation with "...".
func Preview(content string) string {
	runes := []rune(content)
	if len(runes) <= previewRunes {
		return content
	}
	return string(runes[:previewRunes]) + "..."
}

// isEntryHeader reports whether line is a "## <timestamp>" header written by FormatEntry.
func isEntryHeader(line string) bool {
	if !strings.HasPrefix(line, headerPrefix) {
		return false
	}
	_, err := time.Parse(TimestampLayout, strings.TrimSpace(line[len(headerPrefix):]))
	return err == nil
}

// opensEntry reports whether lines[i] starts an entry. FormatEntry puts a blank
// line before every header, so header-shaped content inside a body is not one.
func opensEntry(lines []string, i int) bool {
	return isEntryHeader(lines[i]) && (i == 0 || strings.TrimSpace(lines[i-1]) == "")
}

// forgetLines drops every line containing pattern, case-insensitively, and
// returns the rewritten text with the number of lines removed. An entry header
// is dropped only when this call removed lines from its body and nothing but
// blank lines is left of it.
func forgetLines(text, pattern string) (string, int) {
	needle := strings.ToLower(pattern)
	lines := strings.Split(text, "\n")

	kept := make([]string, 0, len(lines))
	var headers []int        // indexes into kept
	touched := map[int]bool{} // headers whose body lost a line
	current := -1
	removed := 0
	for i, line := range lines {
		if strings.Contains(strings.ToLower(line), needle) {
			removed++
			if current >= 0 {
				touched[current] = true
			}
			continue
		}
		if opensEntry(lines, i) {
			current = len(kept)
			headers = append(headers, current)
		}
		kept = append(kept, line)
	}
	if removed == 0 {
		return text, 0
	}

	drop := make([]bool, len(kept))
	for n, h := range headers {
		if !touched[h] {
			continue
		}
		end := len(kept)
		if n+1 < len(headers) {
			end = headers[n+1]
		}
		if blankRun(kept[h+1 : end]) {
			for k := h; k < end; k++ {
				drop[k] = true
			}
		}
	}

	out := kept[:0]
	for k, line := range kept {
		if !drop[k] {
			out = append(out, line)
		}
	}
	if len(out) == 1 && out[0] == "" {
		return "", removed
	}
	return strings.Join(out, "\n"), removed
}

func blankRun(lines []string) bool {
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			return false
		}
	}
	return true
}
