package help

// style.go provides text styling functions using ANSI escape codes.

// Header returns text styled as a header (bold + cyan).
func Header(text string) string {
	return ColorBold + ColorCyan + text + ColorReset
}

// StyleCommand returns text styled as a command name (cyan).
func StyleCommand(text string) string {
	return ColorCyan + text + ColorReset
}

// Argument returns text styled as a command argument (yellow).
func Argument(text string) string {
	return ColorYellow + text + ColorReset
}

// Shortcut returns text styled as a keyboard shortcut (bold + yellow).
func Shortcut(text string) string {
	return ColorBold + ColorYellow + text + ColorReset
}

// Dim returns text in dim/muted style (gray).
func Dim(text string) string {
	return ColorGray + text + ColorReset
}

// Bold returns text in bold style.
func Bold(text string) string {
	return ColorBold + text + ColorReset
}
