// Package ast defines the expression nodes of the Lox front end.
//
// The node set is closed: Binary, Unary, Grouping, and Literal. New
// consumers of a tree (printer, evaluator, resolver) are added through
// the Visitor interface rather than by modifying node definitions.
// Nodes are built bottom-up by the parser and immutable afterwards;
// every tree is finite and acyclic, each node exclusively owning its
// children.
package ast

import (
	"fmt"

	"github.com/lox-lang/lox/internal/lexer"
	"github.com/lox-lang/lox/internal/position"
)

// Expr is the base interface for all expression nodes
type Expr interface {
	// GetSpan returns the source span covered by this node
	GetSpan() position.Span
	// String returns a human-readable representation of the node
	String() string
	// Accept implements the visitor pattern for tree traversal
	Accept(visitor Visitor) interface{}

	exprNode() // Marker method to keep the node set closed
}

// Binary represents a binary operation: left operator right
type Binary struct {
	Span     position.Span
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (b *Binary) GetSpan() position.Span { return b.Span }
func (b *Binary) exprNode()              {}
func (b *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Operator.Lexeme, b.Left, b.Right)
}
func (b *Binary) Accept(visitor Visitor) interface{} { return visitor.VisitBinary(b) }

// Unary represents a prefix operation: operator right
type Unary struct {
	Span     position.Span
	Operator lexer.Token
	Right    Expr
}

func (u *Unary) GetSpan() position.Span { return u.Span }
func (u *Unary) exprNode()              {}
func (u *Unary) String() string {
	return fmt.Sprintf("(%s %s)", u.Operator.Lexeme, u.Right)
}
func (u *Unary) Accept(visitor Visitor) interface{} { return visitor.VisitUnary(u) }

// Grouping represents a parenthesized expression. It is preserved as a
// distinct node rather than collapsed, so the printer and any later
// stage can see explicit grouping.
type Grouping struct {
	Span  position.Span
	Inner Expr
}

func (g *Grouping) GetSpan() position.Span { return g.Span }
func (g *Grouping) exprNode()              {}
func (g *Grouping) String() string {
	return fmt.Sprintf("(group %s)", g.Inner)
}
func (g *Grouping) Accept(visitor Visitor) interface{} { return visitor.VisitGrouping(g) }

// Literal is a terminal node holding a scanned literal value
type Literal struct {
	Span  position.Span
	Value lexer.LiteralValue
}

func (l *Literal) GetSpan() position.Span { return l.Span }
func (l *Literal) exprNode()              {}
func (l *Literal) String() string {
	return l.Value.String()
}
func (l *Literal) Accept(visitor Visitor) interface{} { return visitor.VisitLiteral(l) }
