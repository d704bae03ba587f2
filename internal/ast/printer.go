package ast

import "strings"

// Printer renders a tree into an unambiguous, fully-parenthesized
// prefix-operator string, independent of source spacing. The rendering
// is a pure function of the tree and serves as the canonical
// serialization for structural-equality tests.
type Printer struct{}

// Print renders the given expression tree
func (p *Printer) Print(expr Expr) string {
	return expr.Accept(p).(string)
}

func (p *Printer) VisitBinary(node *Binary) interface{} {
	return p.parenthesize(node.Operator.Lexeme, node.Left, node.Right)
}

func (p *Printer) VisitUnary(node *Unary) interface{} {
	return p.parenthesize(node.Operator.Lexeme, node.Right)
}

func (p *Printer) VisitGrouping(node *Grouping) interface{} {
	return p.parenthesize("group", node.Inner)
}

func (p *Printer) VisitLiteral(node *Literal) interface{} {
	return node.Value.String()
}

func (p *Printer) parenthesize(name string, exprs ...Expr) string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(name)
	for _, expr := range exprs {
		sb.WriteByte(' ')
		sb.WriteString(expr.Accept(p).(string))
	}
	sb.WriteByte(')')
	return sb.String()
}
