/*
File : impyc/semantic/analyzer_expressions.go
Visit methods for every Expr node kind: BinaryExpr, Paren, VarRef,
ListElem, ListLit, NumLit, StrLit, BoolLit, NullLit. Each sets its own
node's Type() via exprBase.SetType rather than returning a value, per
analyzer.go's doc comment.
*/
package semantic

import (
	"github.com/akashmaji946/impyc/ast"
	"github.com/akashmaji946/impyc/diag"
	"github.com/akashmaji946/impyc/types"
)

// VisitBinaryExpr covers Expr/Pred/Term's three binary strata uniformly:
// evaluate both children, then look up the result type in the table the
// operator lexeme selects.
func (a *Analyzer) VisitBinaryExpr(n *ast.BinaryExpr) {
	if a.failed() {
		return
	}
	n.Left.Accept(a)
	if a.failed() {
		return
	}
	n.Right.Accept(a)
	if a.failed() {
		return
	}

	result := resultOf(n.Op, n.Left.Type(), n.Right.Type())
	if result == types.Undef {
		a.fail(diag.Semantic(diag.KindNodeTypeError, diag.Position{Line: n.P.Line, Column: n.P.Column},
			"operator %q is not defined for %s and %s", n.Op, n.Left.Type(), n.Right.Type()))
		return
	}
	n.SetType(result)
}

func (a *Analyzer) VisitParen(n *ast.Paren) {
	if a.failed() {
		return
	}
	n.Inner.Accept(a)
	if a.failed() {
		return
	}
	n.SetType(n.Inner.Type())
}

// VisitVarRef looks the name up in the symbol table; an unknown name is
// UNDEFINED_SYMBOL.
func (a *Analyzer) VisitVarRef(n *ast.VarRef) {
	if a.failed() {
		return
	}
	sym := a.Table.Lookup(n.Name)
	if sym == nil {
		a.fail(diag.Semantic(diag.KindUndefinedSymbol, diag.Position{Line: n.P.Line, Column: n.P.Column}, "undefined symbol %q", n.Name))
		return
	}
	n.SetType(sym.Type)
}

// VisitListElem requires the named symbol to be a list and the index to
// be int (literal or int-typed variable); the result is the list's
// element type.
func (a *Analyzer) VisitListElem(n *ast.ListElem) {
	if a.failed() {
		return
	}
	sym := a.Table.Lookup(n.Name)
	if sym == nil {
		a.fail(diag.Semantic(diag.KindUndefinedSymbol, diag.Position{Line: n.P.Line, Column: n.P.Column}, "undefined symbol %q", n.Name))
		return
	}
	if sym.Type != types.List {
		a.fail(diag.Semantic(diag.KindListTypeError, diag.Position{Line: n.P.Line, Column: n.P.Column}, "%q is not a list", n.Name))
		return
	}

	n.Index.Accept(a)
	if a.failed() {
		return
	}
	if n.Index.Type() != types.Int {
		a.fail(diag.Semantic(diag.KindListTypeError, diag.Position{Line: n.P.Line, Column: n.P.Column}, "list index must be int, got %s", n.Index.Type()))
		return
	}

	n.SetType(sym.ElemType)
}

// VisitListLit types every element, then unifies them into one element
// type per spec.md §4.3's ListExpr rule; a non-unifying pair is
// LIST_TYPE_ERROR. An empty literal's element type is Undef.
func (a *Analyzer) VisitListLit(n *ast.ListLit) {
	if a.failed() {
		return
	}
	n.SetType(types.List)

	if len(n.Elements) == 0 {
		n.ElemType = types.Undef
		return
	}

	n.Elements[0].Accept(a)
	if a.failed() {
		return
	}
	elemType := n.Elements[0].Type()

	for _, elem := range n.Elements[1:] {
		elem.Accept(a)
		if a.failed() {
			return
		}
		unified, ok := types.Unify(elemType, elem.Type())
		if !ok {
			a.fail(diag.Semantic(diag.KindListTypeError, diag.Position{Line: n.P.Line, Column: n.P.Column},
				"list elements do not share a type: %s vs %s", elemType, elem.Type()))
			return
		}
		elemType = unified
	}
	n.ElemType = elemType
}

// VisitNumLit: int iff there is neither a fractional nor an exponent
// part, per spec.md §4.3's Num walk rule.
func (a *Analyzer) VisitNumLit(n *ast.NumLit) {
	if a.failed() {
		return
	}
	if n.IsInt {
		n.SetType(types.Int)
	} else {
		n.SetType(types.Float)
	}
}

// VisitStrLit is always string; interpolants are still walked so an
// undefined symbol inside one is still caught.
func (a *Analyzer) VisitStrLit(n *ast.StrLit) {
	if a.failed() {
		return
	}
	for _, part := range n.Parts {
		for _, interp := range part.Interpolants {
			interp.Accept(a)
			if a.failed() {
				return
			}
		}
	}
	n.SetType(types.String)
}

func (a *Analyzer) VisitBoolLit(n *ast.BoolLit) {
	if a.failed() {
		return
	}
	n.SetType(types.Bool)
}

func (a *Analyzer) VisitNullLit(n *ast.NullLit) {
	if a.failed() {
		return
	}
	n.SetType(types.Null)
}
