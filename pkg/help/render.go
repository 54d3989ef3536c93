package help

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/r3d91ll/irpl/pkg/command"
)

const (
	indentCategory = "  "
	indentCommand  = "    "

	// minDescriptionWidth keeps descriptions readable when a signature is long.
	minDescriptionWidth = 24
)

// RenderFull renders every command in registration order with its signature
// and wrapped description, followed by the key reference.
func (r *Renderer) RenderFull(title string, specs []command.Spec) {
	r.writeln("")
	r.writeln(r.paint(Header, indentCategory+title))

	column := 0
	for _, spec := range specs {
		if n := len([]rune(spec.Usage())); n > column {
			column = n
		}
	}
	column += 2

	r.writeln(indentCategory + r.paint(Dim, BoxTeeLeft+strings.Repeat(BoxHorizontal, r.width-len(indentCategory)-1)))
	for _, spec := range specs {
		r.renderCommandLine(spec, column)
	}
	r.writeln("")
	r.RenderShortcuts()
}

// RenderCommand renders usage and description for a single command.
func (r *Renderer) RenderCommand(spec command.Spec) {
	r.writeln(indentCategory + r.paint(Bold, "Usage:") + " " + r.usage(spec))
	if spec.Description != "" {
		for _, line := range strings.Split(wordwrap.String(spec.Description, r.width-len(indentCategory)), "\n") {
			r.writeln(indentCategory + r.paint(Dim, line))
		}
	}
}

// RenderShortcuts renders the keyboard reference line.
func (r *Renderer) RenderShortcuts() {
	r.writeln(indentCategory + r.paint(Dim, "Keys: ") +
		r.paint(Shortcut, "Tab") + r.paint(Dim, " complete  ") +
		r.paint(Shortcut, "Ctrl+C") + r.paint(Dim, " cancel  ") +
		r.paint(Shortcut, "Ctrl+D") + r.paint(Dim, " exit"))
}

// renderCommandLine renders one aligned listing row. Long descriptions wrap
// and continue under the description column.
func (r *Renderer) renderCommandLine(spec command.Spec, column int) {
	prefix := indentCommand + r.paint(Dim, BoxVertical+" ")
	usage := PadRight(r.usage(spec), column)

	descWidth := r.width - len(indentCommand) - 2 - column
	if descWidth < minDescriptionWidth {
		descWidth = minDescriptionWidth
	}
	lines := strings.Split(wordwrap.String(spec.Description, descWidth), "\n")

	r.writeln(strings.TrimRight(prefix+usage+r.paint(Dim, lines[0]), " "))
	continuation := prefix + strings.Repeat(" ", column)
	for _, line := range lines[1:] {
		r.writeln(continuation + r.paint(Dim, line))
	}
}

func (r *Renderer) usage(spec command.Spec) string {
	if len(spec.Params) == 0 {
		return r.paint(StyleCommand, spec.Name)
	}
	return r.paint(StyleCommand, spec.Name) + " " + r.paint(Argument, spec.Signature())
}
