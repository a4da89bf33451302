package memory

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatEntry(t *testing.T) {
	ts := time.Date(2025, 3, 9, 7, 5, 1, 0, time.Local)
	got := FormatEntry(ts, "line one\nline two")
	assert.Equal(t, "\n## 2025-03-09 07:05:01\nline one\nline two\n", got)
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "short", Preview("short"))

	exact := strings.Repeat("a", 50)
	assert.Equal(t, exact, Preview(exact))

	long := strings.Repeat("b", 60)
	assert.Equal(t, strings.Repeat("b", 50)+"...", Preview(long))

	// Counted in characters, not bytes.
	wide := strings.Repeat("记", 55)
	assert.Equal(t, strings.Repeat("记", 50)+"...", Preview(wide))
}

func TestIsEntryHeader(t *testing.T) {
	assert.True(t, isEntryHeader("## 2025-01-02 03:04:05"))
	assert.False(t, isEntryHeader("## Notes"))
	assert.False(t, isEntryHeader("# 2025-01-02 03:04:05"))
	assert.False(t, isEntryHeader("2025-01-02 03:04:05"))
}

func TestForgetLinesRemovesMatches(t *testing.T) {
	text := "keep me\nDrop THIS one\nalso keep\nthis too"
	got, removed := forgetLines(text, "this")
	assert.Equal(t, 2, removed)
	assert.Equal(t, "keep me\nalso keep", got)
}

func TestForgetLinesNoMatchLeavesText(t *testing.T) {
	text := "\n## 2025-01-01 00:00:00\n\n"
	got, removed := forgetLines(text, "absent")
	assert.Zero(t, removed)
	assert.Equal(t, text, got)
}

func TestForgetLinesHeaders(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "first entry emptied",
			in:   "\n## 2025-01-01 00:00:00\nsecret\n\n## 2025-01-02 00:00:00\nsecond\n",
			want: "\n## 2025-01-02 00:00:00\nsecond\n",
		},
		{
			name: "middle entry emptied",
			in:   "\n## 2025-01-01 00:00:00\na\n\n## 2025-01-02 00:00:00\nsecret\n\n## 2025-01-03 00:00:00\nc\n",
			want: "\n## 2025-01-01 00:00:00\na\n\n## 2025-01-03 00:00:00\nc\n",
		},
		{
			name: "last entry emptied",
			in:   "\n## 2025-01-01 00:00:00\nfirst\n\n## 2025-01-02 00:00:00\nsecret\n",
			want: "\n## 2025-01-01 00:00:00\nfirst\n",
		},
		{
			name: "only entry emptied",
			in:   "\n## 2025-01-01 00:00:00\nsecret\n",
			want: "",
		},
		{
			name: "partial multi-line entry keeps header",
			in:   "\n## 2025-01-01 00:00:00\nsecret\nstill here\n",
			want: "\n## 2025-01-01 00:00:00\nstill here\n",
		},
		{
			name: "untouched empty entry survives",
			in:   "\n## 2025-01-01 00:00:00\n\n\n## 2025-01-02 00:00:00\nsecret\n",
			want: "\n## 2025-01-01 00:00:00\n\n",
		},
		{
			name: "header-shaped content is not an entry header",
			in:   "\n## 2025-01-01 00:00:00\n## 2024-05-05 10:00:00\n\n## 2025-01-02 00:00:00\nsecret\n",
			want: "\n## 2025-01-01 00:00:00\n## 2024-05-05 10:00:00\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := forgetLines(tt.in, "secret")
			assert.Equal(t, tt.want, got)
		})
	}
}
