// Package lexer implements the Lox lexical analyzer. It turns raw
// source text into an ordered sequence of results, each holding either
// a Token or a LexicalError. Source is addressed by character position,
// not byte position.
package lexer

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/lox-lang/lox/internal/position"
)

// Result is one entry of the scanner output: a Token, or a
// LexicalError when a lexeme was malformed. Exactly one of the two is
// meaningful; Err is nil for token entries.
type Result struct {
	Token Token
	Err   *LexicalError
}

// IsErr reports whether the result records a lexical error
func (r Result) IsErr() bool {
	return r.Err != nil
}

// Tokens extracts the token subsequence of a scan, dropping error
// entries. The returned slice is what the parser consumes.
func Tokens(results []Result) []Token {
	tokens := make([]Token, 0, len(results))
	for _, r := range results {
		if !r.IsErr() {
			tokens = append(tokens, r.Token)
		}
	}
	return tokens
}

// Errors extracts the lexical errors of a scan, in source order
func Errors(results []Result) []*LexicalError {
	var errs []*LexicalError
	for _, r := range results {
		if r.IsErr() {
			errs = append(errs, r.Err)
		}
	}
	return errs
}

// Scanner is the lexical analyzer. A Scanner owns an independent
// cursor and output buffer, so separate Scanners may run in parallel;
// a single Scanner must not be re-entered mid-scan.
type Scanner struct {
	source   []rune
	filename string

	start     int // start of the lexeme being scanned
	current   int // character position of the cursor
	line      int // current 1-based line number
	lineStart int // character position where the current line begins

	// Start position of the lexeme being scanned; saved before each
	// token attempt so multi-line lexemes report where they began.
	startLine int
	startCol  int

	results []Result
}

// New creates a new scanner over source
func New(source string) *Scanner {
	return NewWithFilename(source, "")
}

// NewWithFilename creates a new scanner with a filename for positions
func NewWithFilename(source, filename string) *Scanner {
	return &Scanner{
		source:   []rune(source),
		filename: filename,
		line:     1,
	}
}

// ScanTokens consumes the entire input exactly once and returns the
// ordered result sequence. The last entry is always a single EOF token
// with an empty lexeme and the final line count.
func (s *Scanner) ScanTokens() []Result {
	for !s.isAtEnd() {
		s.start = s.current
		s.startLine = s.line
		s.startCol = s.current - s.lineStart + 1
		s.scanToken()
	}

	s.start = s.current
	s.startLine = s.line
	s.startCol = s.current - s.lineStart + 1
	s.emit(TokenEOF, LiteralValue{})

	return s.results
}

func (s *Scanner) scanToken() {
	c := s.advance()

	switch c {
	case '(':
		s.emit(TokenLeftParen, LiteralValue{})
	case ')':
		s.emit(TokenRightParen, LiteralValue{})
	case '{':
		s.emit(TokenLeftBrace, LiteralValue{})
	case '}':
		s.emit(TokenRightBrace, LiteralValue{})
	case ',':
		s.emit(TokenComma, LiteralValue{})
	case '.':
		s.emit(TokenDot, LiteralValue{})
	case '-':
		s.emit(TokenMinus, LiteralValue{})
	case '+':
		s.emit(TokenPlus, LiteralValue{})
	case ';':
		s.emit(TokenSemicolon, LiteralValue{})
	case '*':
		s.emit(TokenStar, LiteralValue{})
	case '!':
		if s.match('=') {
			s.emit(TokenBangEqual, LiteralValue{})
		} else {
			s.emit(TokenBang, LiteralValue{})
		}
	case '<':
		if s.match('=') {
			s.emit(TokenLessEqual, LiteralValue{})
		} else {
			s.emit(TokenLess, LiteralValue{})
		}
	case '>':
		if s.match('=') {
			s.emit(TokenGreaterEqual, LiteralValue{})
		} else {
			s.emit(TokenGreater, LiteralValue{})
		}
	case '=':
		if s.match('=') {
			s.emit(TokenEqualEqual, LiteralValue{})
		} else {
			s.emit(TokenEqual, LiteralValue{})
		}
	case '/':
		s.scanSlash()
	case '"':
		s.scanString()
	case ' ', '\r', '\t':
		// skipped, no token
	case '\n':
		// line accounting happens in advance
	default:
		switch {
		case isDigit(c):
			s.scanNumber()
		case unicode.IsLetter(c):
			s.scanIdentifierOrKeyword()
		default:
			s.emitError(fmt.Sprintf("Unexpected character '%c'", c))
		}
	}
}

// scanSlash emits a division token, or skips a // comment through (but
// not including) the next newline. Comments stop at end of input too.
func (s *Scanner) scanSlash() {
	if s.match('/') {
		for s.peek() != '\n' && !s.isAtEnd() {
			s.advance()
		}
		return
	}
	s.emit(TokenSlash, LiteralValue{})
}

func (s *Scanner) scanString() {
	for s.peek() != '"' && !s.isAtEnd() {
		s.advance()
	}

	if s.isAtEnd() {
		s.emitError("Unterminated string")
		return
	}

	s.advance() // closing quote
	value := string(s.source[s.start+1 : s.current-1])
	s.emit(TokenString, StringValue(value))
}

func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}

	// A fractional part requires at least one digit after the dot; a
	// trailing dot is left for the next token.
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	text := string(s.source[s.start:s.current])
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		s.emitError(fmt.Sprintf("Malformed number literal %q", text))
		return
	}
	s.emit(TokenNumber, NumberValue(value))
}

func (s *Scanner) scanIdentifierOrKeyword() {
	for unicode.IsLetter(s.peek()) || isDigit(s.peek()) || s.peek() == '_' {
		s.advance()
	}

	text := string(s.source[s.start:s.current])
	tokenType := lookupIdent(text)
	if tokenType == TokenIdentifier {
		s.emit(tokenType, StringValue(text))
		return
	}
	s.emit(tokenType, LiteralValue{})
}

// advance consumes one character and returns it
func (s *Scanner) advance() rune {
	c := s.source[s.current]
	s.current++
	if c == '\n' {
		s.line++
		s.lineStart = s.current
	}
	return c
}

// peek returns the current character without advancing
func (s *Scanner) peek() rune {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

// peekNext returns the character after the current one
func (s *Scanner) peekNext() rune {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

// match consumes the current character only if it equals c
func (s *Scanner) match(c rune) bool {
	if s.isAtEnd() || s.source[s.current] != c {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

// emit appends a token for the lexeme between start and current
func (s *Scanner) emit(tokenType TokenType, literal LiteralValue) {
	lexeme := string(s.source[s.start:s.current])
	span := position.Span{
		Start: position.Position{
			Filename: s.filename,
			Line:     s.startLine,
			Column:   s.startCol,
			Offset:   s.start,
		},
		End: position.Position{
			Filename: s.filename,
			Line:     s.line,
			Column:   s.current - s.lineStart + 1,
			Offset:   s.current,
		},
	}
	s.results = append(s.results, Result{Token: Token{
		Type:    tokenType,
		Lexeme:  lexeme,
		Literal: literal,
		Span:    span,
	}})
}

// emitError appends a lexical error at the start of the current lexeme
func (s *Scanner) emitError(message string) {
	s.results = append(s.results, Result{Err: &LexicalError{
		Line:    s.startLine,
		Column:  s.startCol,
		Message: message,
	}})
}

// isDigit checks if character is ASCII digit
func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}
