// Package commands implements the interactive hotel shell
package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Port is the console the commands talk to
type Port struct {
	In  *bufio.Reader
	Out io.Writer
}

// NewPort wraps in and out into a Port
func NewPort(in io.Reader, out io.Writer) *Port {
	return &Port{In: bufio.NewReader(in), Out: out}
}

// Printf writes formatted output
func (p *Port) Printf(format string, args ...any) {
	fmt.Fprintf(p.Out, format, args...)
}

// Println writes a line of output
func (p *Port) Println(args ...any) {
	fmt.Fprintln(p.Out, args...)
}

// ReadLine reads one line without its line ending. A final line without a
// newline is returned before io.EOF.
func (p *Port) ReadLine() (string, error) {
	line, err := p.In.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Prompt prints label and returns the trimmed answer
func (p *Port) Prompt(label string) (string, error) {
	p.Printf("%s", label)
	line, err := p.ReadLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
