/*
File    : impyc/ast/node.go
Package ast defines the parse-tree node shapes of spec.md §3/§6. Grounded
on the teacher's parser.NodeVisitor / parser.Node shape (parser/node.go),
re-derived from this language's grammar: one concrete Go struct per
production, carrying only the children that production allows (design
note §9), rather than a uniform child-list node.

The tree is acyclic and the root (Program) exclusively owns all
descendants (spec.md §3); Go's garbage collector removes the manual
free-ordering concern the design notes raise for other languages, so no
arena or parent-pointer bookkeeping is needed.
*/
package ast

import "github.com/akashmaji946/impyc/types"

// Kind names a node's production, spanning both lexical-token kinds and
// grammatical-construct kinds per spec.md §3.
type Kind string

const (
	KindProgram   Kind = "Program"
	KindAssign    Kind = "Assign"
	KindInput     Kind = "Input"
	KindOutput    Kind = "Output"
	KindIfLine    Kind = "IfLine"
	KindLoopLine  Kind = "LoopLine"
	KindBreak     Kind = "Break"
	KindContinue  Kind = "Continue"
	KindBinary    Kind = "BinaryExpr"
	KindParen     Kind = "BaseExpr"
	KindVar       Kind = "Var"
	KindListElem  Kind = "ListElem"
	KindList      Kind = "List"
	KindNum       Kind = "Num"
	KindStr       Kind = "Str"
	KindQuotedStr Kind = "QuotedStr"
	KindBool      Kind = "Bool"
	KindNull      Kind = "Null"
)

// Position locates a node in the source text.
type Position struct {
	Line   int
	Column int
}

// Node is the base interface every parse-tree node implements.
type Node interface {
	Kind() Kind
	Pos() Position
	Accept(v Visitor)
}

// Statement is a node that can appear directly inside a Program or a
// loop/conditional body.
type Statement interface {
	Node
	statementNode()
}

// Expr is a node that produces a value and, after semantic analysis, a
// resolved type.
type Expr interface {
	Node
	exprNode()
	Type() types.Type
	SetType(types.Type)
}

// Visitor dispatches on concrete node type, one method per production,
// mirroring the teacher's NodeVisitor. Both the semantic analyzer and the
// emitter implement this same interface -- one walking the tree to assign
// types, the other to emit text -- which is the teacher's tree-walking
// pattern repurposed from execution to, respectively, type-checking and
// source generation.
type Visitor interface {
	VisitProgram(*Program)
	VisitAssign(*Assign)
	VisitInput(*Input)
	VisitOutput(*Output)
	VisitIfLine(*IfLine)
	VisitLoopLine(*LoopLine)
	VisitBreak(*Break)
	VisitContinue(*Continue)
	VisitBinaryExpr(*BinaryExpr)
	VisitParen(*Paren)
	VisitVarRef(*VarRef)
	VisitListElem(*ListElem)
	VisitListLit(*ListLit)
	VisitNumLit(*NumLit)
	VisitStrLit(*StrLit)
	VisitBoolLit(*BoolLit)
	VisitNullLit(*NullLit)
}

// exprBase factors the Type/SetType bookkeeping shared by every Expr
// implementation.
type exprBase struct {
	typ types.Type
}

func (e *exprBase) Type() types.Type     { return e.typ }
func (e *exprBase) SetType(t types.Type) { e.typ = t }
