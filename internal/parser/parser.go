// Package parser implements the Lox recursive descent expression
// parser. Each precedence level is one procedure; binary levels fold
// left-associatively, unary recurses right-associatively. Parse
// failures are fatal to the current attempt and returned as error
// values; no partial tree is ever produced.
package parser

import (
	"fmt"

	"github.com/lox-lang/lox/internal/ast"
	"github.com/lox-lang/lox/internal/lexer"
)

// ParseError represents a fatal parse failure: the construct that was
// expected and the offending token actually found.
type ParseError struct {
	Expected string      // description of the expected construct
	Actual   lexer.Token // the token that did not match
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Actual.Type == lexer.TokenEOF {
		return fmt.Sprintf("[line %d] Parse error: expected %s, found end of input",
			e.Actual.Line(), e.Expected)
	}
	return fmt.Sprintf("[line %d] Parse error: expected %s, found %q",
		e.Actual.Line(), e.Expected, e.Actual.Lexeme)
}

// Parser consumes a token sequence and builds one expression tree per
// top-level call. It holds read-only positional access into the
// sequence and never mutates tokens.
type Parser struct {
	tokens  []lexer.Token
	current int
}

// New creates a parser over the given token sequence. The sequence is
// expected to end with an EOF token, as produced by the lexer.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses one expression from the front of the token sequence.
// Whether trailing tokens beyond the expression are acceptable is the
// caller's decision; see AtEnd.
func (p *Parser) Parse() (ast.Expr, error) {
	return p.expression()
}

// AtEnd reports whether the parser has consumed everything up to the
// end-of-input marker
func (p *Parser) AtEnd() bool {
	return p.peek().Type == lexer.TokenEOF
}

// Remaining returns the first unconsumed token. Callers that require a
// full-input parse use it to report trailing tokens.
func (p *Parser) Remaining() lexer.Token {
	return p.peek()
}

// expression → equality
func (p *Parser) expression() (ast.Expr, error) {
	return p.equality()
}

// equality → comparison ( ( "==" | "!=" ) comparison )*
func (p *Parser) equality() (ast.Expr, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}

	for p.check(lexer.TokenEqualEqual, lexer.TokenBangEqual) {
		op := p.advance()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = p.fold(expr, op, right)
	}
	return expr, nil
}

// comparison → term ( ( ">" | ">=" | "<" | "<=" ) term )*
func (p *Parser) comparison() (ast.Expr, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}

	for p.check(lexer.TokenGreater, lexer.TokenGreaterEqual, lexer.TokenLess, lexer.TokenLessEqual) {
		op := p.advance()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = p.fold(expr, op, right)
	}
	return expr, nil
}

// term → factor ( ( "+" | "-" ) factor )*
func (p *Parser) term() (ast.Expr, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}

	for p.check(lexer.TokenPlus, lexer.TokenMinus) {
		op := p.advance()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = p.fold(expr, op, right)
	}
	return expr, nil
}

// factor → unary ( ( "/" | "*" ) unary )*
func (p *Parser) factor() (ast.Expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}

	for p.check(lexer.TokenSlash, lexer.TokenStar) {
		op := p.advance()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = p.fold(expr, op, right)
	}
	return expr, nil
}

// unary → "-" unary | primary
func (p *Parser) unary() (ast.Expr, error) {
	if p.check(lexer.TokenMinus) {
		op := p.advance()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{
			Span:     op.Span.Union(right.GetSpan()),
			Operator: op,
			Right:    right,
		}, nil
	}
	return p.primary()
}

// primary → NUMBER | STRING | "(" expression ")"
func (p *Parser) primary() (ast.Expr, error) {
	tok := p.peek()

	switch tok.Type {
	case lexer.TokenNumber, lexer.TokenString:
		p.advance()
		return &ast.Literal{Span: tok.Span, Value: tok.Literal}, nil

	case lexer.TokenLeftParen:
		p.advance()
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		closing, err := p.expect(lexer.TokenRightParen, "')' after expression")
		if err != nil {
			return nil, err
		}
		return &ast.Grouping{
			Span:  tok.Span.Union(closing.Span),
			Inner: inner,
		}, nil

	default:
		return nil, &ParseError{Expected: "expression", Actual: tok}
	}
}

// fold builds a left-associative binary node from the expression built
// so far and the freshly parsed right operand
func (p *Parser) fold(left ast.Expr, op lexer.Token, right ast.Expr) ast.Expr {
	return &ast.Binary{
		Span:     left.GetSpan().Union(right.GetSpan()),
		Left:     left,
		Operator: op,
		Right:    right,
	}
}

// check reports whether the current token is one of the given types
func (p *Parser) check(types ...lexer.TokenType) bool {
	tok := p.peek()
	for _, t := range types {
		if tok.Type == t {
			return true
		}
	}
	return false
}

// advance consumes and returns the current token
func (p *Parser) advance() lexer.Token {
	tok := p.peek()
	if p.current < len(p.tokens) {
		p.current++
	}
	return tok
}

// peek returns the current token without consuming it. Past the end of
// the sequence it keeps returning the final token, which by the lexer
// contract is EOF.
func (p *Parser) peek() lexer.Token {
	if len(p.tokens) == 0 {
		return lexer.Token{Type: lexer.TokenEOF}
	}
	if p.current >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current]
}

// expect consumes the current token if it matches, otherwise reports a
// fatal parse failure describing what was required
func (p *Parser) expect(tokenType lexer.TokenType, desc string) (lexer.Token, error) {
	if p.check(tokenType) {
		return p.advance(), nil
	}
	return lexer.Token{}, &ParseError{Expected: desc, Actual: p.peek()}
}
