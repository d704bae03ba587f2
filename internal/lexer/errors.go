package lexer

import "fmt"

// LexicalError records one malformed lexeme or unterminated construct.
// It is a terminal record: the scanner reports it and keeps going, so a
// single bad character never aborts the scan.
type LexicalError struct {
	Line    int    // 1-based line at the error site
	Column  int    // 1-based character offset within the line
	Message string
}

// Error implements the error interface
func (e *LexicalError) Error() string {
	return fmt.Sprintf("[line %d:%d] Error: %s", e.Line, e.Column, e.Message)
}
