// Package errors provides error formatting and display functions.
// Renders IrplErrors with color coding for TTY output.
package errors

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"golang.org/x/term"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m" // Error type/code
	colorYellow = "\033[33m" // Context information
	colorCyan   = "\033[36m" // Suggestions
	colorDim    = "\033[90m" // Secondary/cause info
	colorBold   = "\033[1m"  // Emphasis
)

// Formatter handles error display with optional color support.
type Formatter struct {
	// UseColor enables ANSI color codes in output.
	UseColor bool

	// Writer is the output destination. Defaults to os.Stderr.
	Writer io.Writer

	// Indent is the prefix for context and suggestion lines.
	Indent string
}

// DefaultFormatter returns a Formatter writing to stderr, colored if stderr is a TTY.
func DefaultFormatter() *Formatter {
	return &Formatter{
		UseColor: IsTTY(os.Stderr),
		Writer:   os.Stderr,
		Indent:   "  ",
	}
}

// NewFormatter returns a Formatter for w. Color is only used when w is a terminal
// and useColor is set.
func NewFormatter(w io.Writer, useColor bool) *Formatter {
	if f, ok := w.(*os.File); !ok || !IsTTY(f) {
		useColor = false
	}
	return &Formatter{UseColor: useColor, Writer: w, Indent: "  "}
}

// IsTTY returns true if the given file is a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Format renders an error with color coding based on formatter settings.
// For IrplError, displays code, message, context, cause, and suggestions.
func (f *Formatter) Format(err error) string {
	if err == nil {
		return ""
	}
	ie, ok := AsIrplError(err)
	if !ok {
		return f.paint(colorRed, "Error: ") + err.Error()
	}
	return f.formatIrplError(ie)
}

func (f *Formatter) formatIrplError(ie *IrplError) string {
	var sb strings.Builder

	// ERROR [CODE]: Message
	if f.UseColor {
		sb.WriteString(colorRed + colorBold + "ERROR" + colorReset)
		sb.WriteString(colorRed + " [" + ie.Code + "]: " + colorReset)
	} else {
		sb.WriteString("ERROR [" + ie.Code + "]: ")
	}
	sb.WriteString(ie.Message)

	keys := make([]string, 0, len(ie.Context))
	for k := range ie.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		sb.WriteString("\n" + f.Indent)
		sb.WriteString(f.paint(colorYellow, key+": "))
		sb.WriteString(ie.Context[key])
	}

	if ie.Cause != nil {
		sb.WriteString("\n" + f.Indent)
		sb.WriteString(f.paint(colorDim, "cause: "+ie.Cause.Error()))
	}

	for _, suggestion := range ie.Suggestions {
		sb.WriteString("\n" + f.Indent)
		sb.WriteString(f.paint(colorCyan, "→ "+suggestion))
	}

	return sb.String()
}

func (f *Formatter) paint(color, text string) string {
	if !f.UseColor {
		return text
	}
	return color + text + colorReset
}

// Display writes a formatted error to the formatter's writer.
func (f *Formatter) Display(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(f.Writer, f.Format(err))
}

// Report writes err prefixed with a component tag, e.g. "[bc] Error: ...".
func (f *Formatter) Report(tag string, err error) {
	if err == nil {
		return
	}
	if tag == "" {
		f.Display(err)
		return
	}
	fmt.Fprintln(f.Writer, f.paint(colorDim, "["+tag+"]")+" "+f.Format(err))
}

// Display writes a formatted error to stderr with default settings.
func Display(err error) {
	DefaultFormatter().Display(err)
}

// Sprint returns a formatted error string without colors.
func Sprint(err error) string {
	f := &Formatter{Writer: io.Discard, Indent: "  "}
	return f.Format(err)
}
