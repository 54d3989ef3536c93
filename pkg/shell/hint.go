package shell

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"

	"github.com/r3d91ll/irpl/pkg/command"
)

// Hinter derives an inline hint from the registry for the line being typed.
// Hints are display only; dispatch never consults them.
type Hinter struct {
	registry *command.Registry
}

// NewHinter creates a Hinter over registry.
func NewHinter(registry *command.Registry) *Hinter {
	return &Hinter{registry: registry}
}

// Hint returns the text to show after line, or "" when there is nothing to add.
// While the first word is being typed and names exactly one command by prefix,
// the hint is the rest of the name plus its signature. Once the name is
// complete, the hint lists the parameters not yet supplied.
func (h *Hinter) Hint(line string) string {
	if h == nil || h.registry == nil || strings.TrimSpace(line) == "" {
		return ""
	}

	fields := strings.Fields(line)
	typingName := len(fields) == 1 && !strings.HasSuffix(line, " ") && !strings.HasSuffix(line, "\t")

	if typingName {
		prefix := fields[0]
		if spec, ok := h.registry.Lookup(prefix); ok {
			return withLeadingSpace(spec.Signature())
		}
		var match *command.Spec
		for _, spec := range h.registry.List() {
			if strings.HasPrefix(spec.Name, prefix) {
				if match != nil {
					return ""
				}
				s := spec
				match = &s
			}
		}
		if match == nil {
			return ""
		}
		return match.Name[len(prefix):] + withLeadingSpace(match.Signature())
	}

	spec, ok := h.registry.Lookup(fields[0])
	if !ok {
		return ""
	}
	supplied := len(fields) - 1
	if supplied >= len(spec.Params) {
		return ""
	}
	remaining := command.Spec{Params: spec.Params[supplied:]}.Signature()
	if strings.HasSuffix(line, " ") || strings.HasSuffix(line, "\t") {
		return remaining
	}
	return " " + remaining
}

func withLeadingSpace(s string) string {
	if s == "" {
		return ""
	}
	return " " + s
}

// hintPainter renders Hinter output dimmed after the cursor, then moves the
// cursor back so editing continues at the end of the typed text.
type hintPainter struct {
	hinter *Hinter
}

var _ readline.Painter = (*hintPainter)(nil)

func (p *hintPainter) Paint(line []rune, pos int) []rune {
	if pos != len(line) {
		return line
	}
	hint := p.hinter.Hint(string(line))
	if hint == "" {
		return line
	}
	width := len([]rune(hint))
	painted := make([]rune, 0, len(line)+width+16)
	painted = append(painted, line...)
	painted = append(painted, []rune(fmt.Sprintf("\033[90m%s\033[0m\033[%dD", hint, width))...)
	return painted
}
