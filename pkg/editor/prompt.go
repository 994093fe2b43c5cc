package editor

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter asks the user for a line of text. ok is false when the user
// cancels. The call blocks until the user answers.
type Prompter interface {
	Prompt(label string) (text string, ok bool)
}

// PrompterFunc adapts a function to the Prompter interface.
type PrompterFunc func(label string) (string, bool)

// Prompt calls f.
func (f PrompterFunc) Prompt(label string) (string, bool) {
	return f(label)
}

// LinePrompter prompts on a terminal: it writes the label to w and reads one
// line from r. End of input counts as a cancel.
type LinePrompter struct {
	w io.Writer
	r *bufio.Reader
}

// NewLinePrompter creates a LinePrompter reading from r and writing to w.
func NewLinePrompter(r io.Reader, w io.Writer) *LinePrompter {
	return &LinePrompter{w: w, r: bufio.NewReader(r)}
}

// Prompt writes label and reads a line.
func (p *LinePrompter) Prompt(label string) (string, bool) {
	fmt.Fprint(p.w, label, " ")
	line, err := p.r.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}
