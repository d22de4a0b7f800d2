// Package prompt reads single guesses from a user.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// Line prompts on a writer and reads one line per call from a reader.
type Line struct {
	reader      *bufio.Reader
	out         io.Writer
	echoNewline bool
}

// NewLine creates a Line prompter. When in is not a terminal the user's
// Enter key is never echoed, so Line writes the newline itself to keep
// transcripts readable.
func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{
		reader:      bufio.NewReader(in),
		out:         out,
		echoNewline: !isTerminal(in),
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Prompt writes message and blocks until a line is read. The line
// terminator is stripped; other white space is kept. A final line with no
// terminator is returned before io.EOF.
func (l *Line) Prompt(message string) (string, error) {
	if _, err := fmt.Fprintf(l.out, "%s: ", message); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	input, err := l.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && input != "") {
		return "", err
	}

	if l.echoNewline {
		fmt.Fprintln(l.out)
	}
	return strings.TrimRight(input, "\r\n"), nil
}
