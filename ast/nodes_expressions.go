/*
File : impyc/ast/nodes_expressions.go
Expression node shapes: BinaryExpr (unifies Expr/Pred/Term's three binary
strata), Paren (parenthesized BaseExpr), VarRef, ListElem.
*/
package ast

import "github.com/akashmaji946/impyc/types"

// BinaryExpr covers all three binary strata of the grammar (CondOp at
// Expr level, + - at Pred level, * / /. % at Term level); Op carries the
// literal operator lexeme so the emitter can map it (e.g. "&&" -> "and").
type BinaryExpr struct {
	exprBase
	Left  Expr
	Op    string
	Right Expr
	P     Position
}

func (n *BinaryExpr) Kind() Kind       { return KindBinary }
func (n *BinaryExpr) Pos() Position    { return n.P }
func (n *BinaryExpr) Accept(v Visitor) { v.VisitBinaryExpr(n) }
func (n *BinaryExpr) exprNode()        {}

// Paren is `'(' Expr ')'`; it emits its own parentheses regardless of
// whether the inner expression would need them for precedence.
type Paren struct {
	exprBase
	Inner Expr
	P     Position
}

func (n *Paren) Kind() Kind       { return KindParen }
func (n *Paren) Pos() Position    { return n.P }
func (n *Paren) Accept(v Visitor) { v.VisitParen(n) }
func (n *Paren) exprNode()        {}

// VarRef is a bare `Var` reference used as an Obj.
type VarRef struct {
	exprBase
	Name string
	P    Position
}

func (n *VarRef) Kind() Kind       { return KindVar }
func (n *VarRef) Pos() Position    { return n.P }
func (n *VarRef) Accept(v Visitor) { v.VisitVarRef(n) }
func (n *VarRef) exprNode()        {}

// ListElem is `Var '[' (Int|Var) ']'`.
type ListElem struct {
	exprBase
	Name  string
	Index Expr
	P     Position
}

func (n *ListElem) Kind() Kind       { return KindListElem }
func (n *ListElem) Pos() Position    { return n.P }
func (n *ListElem) Accept(v Visitor) { v.VisitListElem(n) }
func (n *ListElem) exprNode()        {}

// ListLit is `'[' ListExpr? ']'`. ElemType is the unified type of
// Elements, filled in by semantic analysis; it is distinct from exprBase's
// typ (always List for a ListLit) the same way types.Symbol keeps Type
// and ElemType apart.
type ListLit struct {
	exprBase
	Elements []Expr
	ElemType types.Type
	P        Position
}

func (n *ListLit) Kind() Kind       { return KindList }
func (n *ListLit) Pos() Position    { return n.P }
func (n *ListLit) Accept(v Visitor) { v.VisitListLit(n) }
func (n *ListLit) exprNode()        {}
