package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/entrhq/mnemo/pkg/ui"
)

// printJSON writes v indented by two spaces without HTML escaping, so note
// content and non-ASCII text come out as written.
func (a *app) printJSON(v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("cli: encode output: %w", err)
	}

	out := buf.String()
	if a.color {
		out = ui.HighlightJSON(out)
	}
	_, err := io.WriteString(a.out, out)
	return err
}

func (a *app) success(msg string) {
	fmt.Fprintln(a.out, ui.Success(msg))
}

// usageError reports a usage mistake. It is not an error at the process level.
func (a *app) usageError(msg string) {
	fmt.Fprintln(a.out, ui.Error(msg))
}
