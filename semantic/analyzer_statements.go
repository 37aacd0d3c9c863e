/*
File : impyc/semantic/analyzer_statements.go
Visit methods for Program, Assign, Input, Output, Break, Continue.
*/
package semantic

import (
	"github.com/akashmaji946/impyc/ast"
	"github.com/akashmaji946/impyc/diag"
	"github.com/akashmaji946/impyc/types"
)

func (a *Analyzer) VisitProgram(n *ast.Program) {
	for _, stmt := range n.Lines {
		if a.failed() {
			return
		}
		stmt.Accept(a)
	}
}

// VisitAssign is `Var '=' Expr`: introduces the symbol on first sight, or
// retypes it with a warning (silently -- spec.md §3 calls this a warning,
// not an error, and this analyzer has no warning channel to surface it
// through) on reassignment with a different type.
func (a *Analyzer) VisitAssign(n *ast.Assign) {
	if a.failed() {
		return
	}
	n.Value.Accept(a)
	if a.failed() {
		return
	}
	valType := n.Value.Type()

	elemType := types.Undef
	if list, ok := n.Value.(*ast.ListLit); ok {
		elemType = list.ElemType
	}

	if sym := a.Table.Lookup(n.Name); sym != nil {
		a.Table.Retype(n.Name, valType, elemType)
	} else {
		a.Table.Define(n.Name, valType, elemType)
	}
}

// readerElemType maps a reader keyword's spelling to the type it pins on
// its target symbol.
func readerElemType(reader string) types.Type {
	switch reader {
	case "readInt":
		return types.Int
	case "readFloat":
		return types.Float
	case "readBool":
		return types.Bool
	default: // readStr, and any other lexer-validated spelling
		return types.String
	}
}

// VisitInput is `readIn Var`: the reader keyword pins the target symbol's
// type, overwriting (silently, per the same warning-not-error rule as
// Assign) if it was already defined with a different type.
func (a *Analyzer) VisitInput(n *ast.Input) {
	if a.failed() {
		return
	}
	typ := readerElemType(n.Reader)
	if a.Table.Has(n.Name) {
		a.Table.Retype(n.Name, typ, types.Undef)
	} else {
		a.Table.Define(n.Name, typ, types.Undef)
	}
}

func (a *Analyzer) VisitOutput(n *ast.Output) {
	if a.failed() {
		return
	}
	n.Value.Accept(a)
}

// VisitBreak requires the context stack to have an enclosing IfLine or
// LoopLine on top.
func (a *Analyzer) VisitBreak(n *ast.Break) {
	if a.failed() {
		return
	}
	if a.Ctx.Empty() {
		a.fail(diag.Semantic(diag.KindBreakOutOfContext, diag.Position{Line: n.P.Line, Column: n.P.Column}, "break outside of an if or loop context"))
	}
}

// VisitContinue requires the context stack to have an enclosing IfLine or
// LoopLine on top, the same rule as VisitBreak.
func (a *Analyzer) VisitContinue(n *ast.Continue) {
	if a.failed() {
		return
	}
	if a.Ctx.Empty() {
		a.fail(diag.Semantic(diag.KindContinueOutOfContext, diag.Position{Line: n.P.Line, Column: n.P.Column}, "continue outside of an if or loop context"))
	}
}
