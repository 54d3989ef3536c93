package shell

import (
	"strings"

	"github.com/chzyer/readline"

	"github.com/r3d91ll/irpl/pkg/command"
)

// commandArgCommands take a command name as their first argument and get
// command name completion for it.
var commandArgCommands = []string{
	"usage",
}

// ShellCompleter provides tab completion for registered command names.
// It implements the readline.AutoCompleter interface.
type ShellCompleter struct {
	registry *command.Registry
}

// NewShellCompleter creates a completer over the given registry.
func NewShellCompleter(registry *command.Registry) *ShellCompleter {
	return &ShellCompleter{registry: registry}
}

// Ensure ShellCompleter implements readline.AutoCompleter at compile time.
var _ readline.AutoCompleter = (*ShellCompleter)(nil)

// Do implements readline.AutoCompleter.
// It completes the first word of the line as a command name, and the second
// word as a command name when the first is one of commandArgCommands.
//
// Returns:
//   - newLine: All candidate completions (as suffixes after the common prefix)
//   - length: The number of characters in the common prefix
func (c *ShellCompleter) Do(line []rune, pos int) (newLine [][]rune, length int) {
	if len(line) == 0 || pos <= 0 || c.registry == nil {
		return nil, 0
	}
	if pos > len(line) {
		pos = len(line)
	}

	lineStr := string(line[:pos])
	wordStart := findWordStart(lineStr)
	currentWord := lineStr[wordStart:]

	before := strings.Fields(lineStr[:wordStart])
	switch {
	case len(before) == 0:
		return c.completeCommand(currentWord)
	case len(before) == 1 && isCommandArgCommand(before[0]):
		return c.completeCommand(currentWord)
	}
	return nil, 0
}

// findWordStart returns the index where the current word begins.
// It looks for the last whitespace character (space or tab) and returns
// the position after it. If no whitespace is found, returns 0 (start of line).
func findWordStart(s string) int {
	lastSpace := strings.LastIndex(s, " ")
	lastTab := strings.LastIndex(s, "\t")

	wordStart := lastSpace
	if lastTab > wordStart {
		wordStart = lastTab
	}
	return wordStart + 1
}

func isCommandArgCommand(name string) bool {
	for _, c := range commandArgCommands {
		if c == name {
			return true
		}
	}
	return false
}

// completeCommand returns completions for command names starting with prefix.
func (c *ShellCompleter) completeCommand(prefix string) ([][]rune, int) {
	var matches [][]rune
	for _, name := range c.registry.Names() {
		if strings.HasPrefix(name, prefix) {
			// Return the suffix that completes the command (add space after)
			matches = append(matches, []rune(name[len(prefix):]+" "))
		}
	}
	return matches, len([]rune(prefix))
}
