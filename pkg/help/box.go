package help

// box.go provides bordered boxes with ANSI-aware width handling.

import (
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

// Box renders box drawing structures with a fixed inner width.
type Box struct {
	Width int
}

// NewBox creates a Box with the specified inner content width.
func NewBox(width int) *Box {
	return &Box{Width: width}
}

// Top returns the top border: ╭───────────╮
func (b *Box) Top() string {
	return BoxTopLeft + strings.Repeat(BoxHorizontal, b.Width) + BoxTopRight
}

// Bottom returns the bottom border: ╰───────────╯
func (b *Box) Bottom() string {
	return BoxBottomLeft + strings.Repeat(BoxHorizontal, b.Width) + BoxBottomRight
}

// RowCenter returns a content row with content centered, truncated if too wide.
func (b *Box) RowCenter(content string) string {
	visibleLen := ansi.PrintableRuneWidth(content)
	if visibleLen >= b.Width {
		return BoxVertical + truncate.String(content, uint(b.Width)) + BoxVertical
	}

	totalPadding := b.Width - visibleLen
	leftPad := totalPadding / 2
	rightPad := totalPadding - leftPad
	return BoxVertical + strings.Repeat(" ", leftPad) + content + strings.Repeat(" ", rightPad) + BoxVertical
}

// PadRight pads s with spaces to the given visible width.
func PadRight(s string, width int) string {
	visLen := ansi.PrintableRuneWidth(s)
	if visLen >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visLen)
}

// RenderBanner writes a centered title inside a rounded box.
func (r *Renderer) RenderBanner(title string) {
	box := NewBox(r.width - 4)
	r.writeln(box.Top())
	r.writeln(box.RowCenter(title))
	r.writeln(box.Bottom())
}
