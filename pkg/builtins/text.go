package builtins

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/r3d91ll/irpl/pkg/command"
)

func textCommands() []command.Spec {
	return []command.Spec{
		{
			Name:        "csurename",
			Description: "Convert lines to kebab case",
			Handler:     csurename,
		},
	}
}

// csurename converts each following input line until an empty line or end
// of input. A failing read is critical because the session input is gone.
func csurename(_ context.Context, inv *command.Invocation, _ command.Args) command.Outcome {
	fmt.Fprintln(inv.Out, "Parse input according to csunibo org rules for filenames.")
	fmt.Fprintln(inv.Out, "Enter empty line to quit.")
	for {
		line, err := inv.ReadLine()
		if err == io.EOF {
			return command.Done()
		}
		if err != nil {
			return command.Critical(fmt.Errorf("csurename: %w", err))
		}
		if line == "" {
			return command.Done()
		}
		fmt.Fprintln(inv.Out, KebabCase(line))
	}
}

// KebabCase renames a file name to the csunibo convention: accents folded,
// lower case, every run of other characters collapsed into a single dash.
// The extension is kept, lower cased.
func KebabCase(name string) string {
	name = strings.TrimSpace(name)
	ext := filepath.Ext(name)
	if ext == name || strings.ContainsAny(ext, " \t") {
		ext = ""
	}
	stem := strings.TrimSuffix(name, ext)

	folded, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), stem)
	if err != nil {
		folded = stem
	}

	var sb strings.Builder
	dash := false
	for _, r := range strings.ToLower(folded) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			dash = false
			sb.WriteRune(r)
			continue
		}
		dash = true
	}
	return sb.String() + strings.ToLower(ext)
}
