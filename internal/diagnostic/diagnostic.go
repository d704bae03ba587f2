// Package diagnostic renders lexical and parse errors uniformly for
// the command-line tools. Errors stay plain data in the lexer and
// parser packages; this package only owns presentation.
package diagnostic

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/lox-lang/lox/internal/lexer"
	"github.com/lox-lang/lox/internal/parser"
	"github.com/lox-lang/lox/internal/position"
)

// Level represents the severity level of a diagnostic message
type Level int

const (
	LevelError Level = iota
	LevelWarning
)

func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Diagnostic represents a single reportable message
type Diagnostic struct {
	Level    Level
	Message  string
	Position position.Position
}

// FromLexical builds a diagnostic from a scanner error
func FromLexical(err *lexer.LexicalError, filename string) Diagnostic {
	return Diagnostic{
		Level:   LevelError,
		Message: err.Message,
		Position: position.Position{
			Filename: filename,
			Line:     err.Line,
			Column:   err.Column,
		},
	}
}

// FromParse builds a diagnostic from a fatal parse failure
func FromParse(err *parser.ParseError) Diagnostic {
	msg := fmt.Sprintf("expected %s, found %q", err.Expected, err.Actual.Lexeme)
	if err.Actual.Type == lexer.TokenEOF {
		msg = fmt.Sprintf("expected %s, found end of input", err.Expected)
	}
	return Diagnostic{
		Level:    LevelError,
		Message:  msg,
		Position: err.Actual.Span.Start,
	}
}

// Writer renders diagnostics one per line, optionally colorized when
// the destination is a terminal.
type Writer struct {
	out      io.Writer
	colorize bool
}

// NewWriter creates a diagnostic writer
func NewWriter(out io.Writer, colorize bool) *Writer {
	return &Writer{out: out, colorize: colorize}
}

// Write renders one diagnostic
func (w *Writer) Write(d Diagnostic) {
	label := d.Level.String()
	if w.colorize {
		label = w.labelColor(d.Level).Sprint(label)
	}

	if d.Position.Line > 0 {
		fmt.Fprintf(w.out, "%s: [line %d:%d] %s\n", label, d.Position.Line, d.Position.Column, d.Message)
		return
	}
	fmt.Fprintf(w.out, "%s: %s\n", label, d.Message)
}

func (w *Writer) labelColor(level Level) *color.Color {
	switch level {
	case LevelWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}
