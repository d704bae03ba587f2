package lexer

import (
	"fmt"
	"strconv"

	"github.com/lox-lang/lox/internal/position"
)

// TokenType represents the type of a token
type TokenType int

// String returns a string representation of the token type
func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(tt))
}

// Token types - the closed Lox token taxonomy
const (
	// Single-character tokens
	TokenLeftParen TokenType = iota
	TokenRightParen
	TokenLeftBrace
	TokenRightBrace
	TokenComma
	TokenDot
	TokenMinus
	TokenPlus
	TokenSemicolon
	TokenSlash
	TokenStar

	// One or two character tokens
	TokenBang
	TokenBangEqual
	TokenEqual
	TokenEqualEqual
	TokenGreater
	TokenGreaterEqual
	TokenLess
	TokenLessEqual

	// Literals
	TokenIdentifier
	TokenString
	TokenNumber

	// Keywords
	TokenAnd
	TokenClass
	TokenElse
	TokenFalse
	TokenFun
	TokenFor
	TokenIf
	TokenNil
	TokenOr
	TokenPrint
	TokenReturn
	TokenSuper
	TokenThis
	TokenTrue
	TokenVar
	TokenWhile

	TokenEOF
)

// tokenNames provides string representations for token types
var tokenNames = map[TokenType]string{
	TokenLeftParen:  "LEFT_PAREN",
	TokenRightParen: "RIGHT_PAREN",
	TokenLeftBrace:  "LEFT_BRACE",
	TokenRightBrace: "RIGHT_BRACE",
	TokenComma:      "COMMA",
	TokenDot:        "DOT",
	TokenMinus:      "MINUS",
	TokenPlus:       "PLUS",
	TokenSemicolon:  "SEMICOLON",
	TokenSlash:      "SLASH",
	TokenStar:       "STAR",

	TokenBang:         "BANG",
	TokenBangEqual:    "BANG_EQUAL",
	TokenEqual:        "EQUAL",
	TokenEqualEqual:   "EQUAL_EQUAL",
	TokenGreater:      "GREATER",
	TokenGreaterEqual: "GREATER_EQUAL",
	TokenLess:         "LESS",
	TokenLessEqual:    "LESS_EQUAL",

	TokenIdentifier: "IDENTIFIER",
	TokenString:     "STRING",
	TokenNumber:     "NUMBER",

	TokenAnd:    "AND",
	TokenClass:  "CLASS",
	TokenElse:   "ELSE",
	TokenFalse:  "FALSE",
	TokenFun:    "FUN",
	TokenFor:    "FOR",
	TokenIf:     "IF",
	TokenNil:    "NIL",
	TokenOr:     "OR",
	TokenPrint:  "PRINT",
	TokenReturn: "RETURN",
	TokenSuper:  "SUPER",
	TokenThis:   "THIS",
	TokenTrue:   "TRUE",
	TokenVar:    "VAR",
	TokenWhile:  "WHILE",

	TokenEOF: "EOF",
}

// keywords maps string keywords to their token types
var keywords = map[string]TokenType{
	"and":    TokenAnd,
	"class":  TokenClass,
	"else":   TokenElse,
	"false":  TokenFalse,
	"fun":    TokenFun,
	"for":    TokenFor,
	"if":     TokenIf,
	"nil":    TokenNil,
	"or":     TokenOr,
	"print":  TokenPrint,
	"return": TokenReturn,
	"super":  TokenSuper,
	"this":   TokenThis,
	"true":   TokenTrue,
	"var":    TokenVar,
	"while":  TokenWhile,
}

// lookupIdent checks if identifier is keyword
func lookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TokenIdentifier
}

// LiteralKind discriminates the value carried by a literal-bearing token
type LiteralKind int

const (
	LiteralNone LiteralKind = iota
	LiteralNumber
	LiteralString
)

// LiteralValue is the scanned value of a NUMBER, STRING, or IDENTIFIER
// token. Tokens of other kinds carry the zero LiteralValue.
type LiteralValue struct {
	Kind   LiteralKind
	Number float64 // set when Kind == LiteralNumber
	Text   string  // set when Kind == LiteralString
}

// NumberValue wraps a scanned 64-bit floating-point value
func NumberValue(v float64) LiteralValue {
	return LiteralValue{Kind: LiteralNumber, Number: v}
}

// StringValue wraps scanned string or identifier text
func StringValue(s string) LiteralValue {
	return LiteralValue{Kind: LiteralString, Text: s}
}

// String returns the canonical text form of the value. Numbers render
// in their natural decimal form ("123", not "123.0"); strings render
// raw, without re-adding quotes.
func (v LiteralValue) String() string {
	switch v.Kind {
	case LiteralNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case LiteralString:
		return v.Text
	default:
		return "nil"
	}
}

// Token represents a lexical token with position information.
// Tokens are immutable values, produced in source order.
type Token struct {
	Type    TokenType
	Lexeme  string       // the exact source substring consumed
	Literal LiteralValue // value for NUMBER/STRING/IDENTIFIER tokens
	Span    position.Span
}

// Line returns the 1-based source line at the token start
func (t Token) Line() int {
	return t.Span.Start.Line
}

// String returns a string representation of the token
func (t Token) String() string {
	if t.Literal.Kind != LiteralNone {
		return fmt.Sprintf("{Type: %s, Lexeme: %q, Value: %s, Line: %d}",
			t.Type, t.Lexeme, t.Literal, t.Line())
	}
	return fmt.Sprintf("{Type: %s, Lexeme: %q, Line: %d}", t.Type, t.Lexeme, t.Line())
}
