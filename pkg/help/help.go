// Package help renders the command listing shown by the help and usage
// commands and the startup banner.
//
// Styling degrades to plain text when color is disabled, so the same
// renderer serves terminals, pipes, and tests.
package help

import (
	"fmt"
	"io"
)

// Box drawing characters for visual structure.
const (
	BoxTopLeft     = "╭"
	BoxTopRight    = "╮"
	BoxBottomLeft  = "╰"
	BoxBottomRight = "╯"
	BoxHorizontal  = "─"
	BoxVertical    = "│"
	BoxTeeLeft     = "├"
	BoxTeeRight    = "┤"
)

// ANSI color codes for styled output.
const (
	ColorReset  = "\033[0m"
	ColorBold   = "\033[1m"
	ColorCyan   = "\033[36m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorGray   = "\033[90m"
)

// DefaultWidth is the total line width the renderer wraps descriptions to.
const DefaultWidth = 80

// Renderer formats and writes help output.
type Renderer struct {
	w     io.Writer
	color bool
	width int
}

// NewRenderer creates a help renderer that writes to w.
func NewRenderer(w io.Writer, color bool) *Renderer {
	return &Renderer{w: w, color: color, width: DefaultWidth}
}

// WithWidth sets the wrap width and returns the renderer.
func (r *Renderer) WithWidth(width int) *Renderer {
	r.width = width
	return r
}

func (r *Renderer) writeln(s string) {
	fmt.Fprintln(r.w, s)
}

// paint applies style only when color output is enabled.
func (r *Renderer) paint(style func(string) string, text string) string {
	if !r.color {
		return text
	}
	return style(text)
}
