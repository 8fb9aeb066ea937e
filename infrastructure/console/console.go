// Package console implements domain.Console with colored output.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/rios0rios0/depstatus/domain"
)

var (
	successColor = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

// Console writes user-facing messages to the given writers.
type Console struct {
	out    io.Writer
	errOut io.Writer
}

var _ domain.Console = (*Console)(nil)

// New creates a console writing to stdout and stderr.
func New() *Console {
	return NewWithWriters(os.Stdout, os.Stderr)
}

// NewWithWriters creates a console with custom writers.
func NewWithWriters(out, errOut io.Writer) *Console {
	return &Console{out: out, errOut: errOut}
}

// Printf writes plain output without a trailing newline.
func (c *Console) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

// Successf writes a green success line.
func (c *Console) Successf(format string, args ...interface{}) {
	successColor.Fprintf(c.out, format+"\n", args...)
}

// Warnf writes a yellow warning line.
func (c *Console) Warnf(format string, args ...interface{}) {
	warningColor.Fprintf(c.out, format+"\n", args...)
}

// Errorf writes a red error line to stderr.
func (c *Console) Errorf(format string, args ...interface{}) {
	errorColor.Fprintf(c.errOut, format+"\n", args...)
}

// NoColor disables color output globally.
func NoColor() {
	color.NoColor = true
}
