package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

// LineReader is the input side of a session. *readline.Instance satisfies it;
// nested sessions share their parent's reader and only swap the prompt.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	Close() error
}

var _ LineReader = (*readline.Instance)(nil)

// plainReader reads newline-terminated lines from a non-terminal source such
// as a pipe, printing the prompt itself.
type plainReader struct {
	in     *bufio.Reader
	out    io.Writer
	prompt string
}

// NewPlainReader returns a LineReader over r that writes prompts to w.
func NewPlainReader(r io.Reader, w io.Writer) LineReader {
	return &plainReader{in: bufio.NewReader(r), out: w}
}

func (p *plainReader) Readline() (string, error) {
	fmt.Fprint(p.out, p.prompt)
	line, err := p.in.ReadString('\n')
	if err != nil {
		// A last line without a trailing newline still counts.
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *plainReader) SetPrompt(prompt string) { p.prompt = prompt }

func (p *plainReader) Close() error { return nil }

// isInteractive reports whether both ends are terminals, i.e. whether readline
// line editing makes sense.
func isInteractive(in io.Reader, out io.Writer) bool {
	inFile, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(inFile.Fd())) {
		return false
	}
	outFile, ok := out.(*os.File)
	return ok && term.IsTerminal(int(outFile.Fd()))
}

// newLineReader picks readline for terminals and the plain reader otherwise.
func newLineReader(cfg Config, completer readline.AutoCompleter, painter readline.Painter) (LineReader, error) {
	if !isInteractive(cfg.Stdin, cfg.Stdout) {
		return NewPlainReader(cfg.Stdin, cfg.Stdout), nil
	}

	rlCfg := &readline.Config{
		HistoryFile:     cfg.HistoryFile,
		HistoryLimit:    cfg.HistoryLimit,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
		AutoComplete:    completer,
		Stdin:           readline.NewCancelableStdin(cfg.Stdin),
		Stdout:          cfg.Stdout,
		Stderr:          cfg.Stderr,
	}
	if painter != nil {
		rlCfg.Painter = painter
	}
	return readline.NewEx(rlCfg)
}
