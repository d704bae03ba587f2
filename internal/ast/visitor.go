package ast

// Visitor defines one operation per expression node kind. A node
// accepts a visitor by dispatching to the single matching method,
// passing itself by reference; this is the sole mechanism for adding
// new tree consumers without modifying the node definitions.
type Visitor interface {
	VisitBinary(node *Binary) interface{}
	VisitUnary(node *Unary) interface{}
	VisitGrouping(node *Grouping) interface{}
	VisitLiteral(node *Literal) interface{}
}
