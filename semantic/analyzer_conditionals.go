/*
File : impyc/semantic/analyzer_conditionals.go
VisitIfLine: condition must be bool, body and optional else walk under an
IfLine context-stack entry (spec.md §4.3 "IfBody pushes IfLine on entry,
pops on exit").
*/
package semantic

import (
	"github.com/akashmaji946/impyc/ast"
	"github.com/akashmaji946/impyc/diag"
	"github.com/akashmaji946/impyc/symtable"
	"github.com/akashmaji946/impyc/types"
)

func (a *Analyzer) VisitIfLine(n *ast.IfLine) {
	if a.failed() {
		return
	}
	n.Cond.Accept(a)
	if a.failed() {
		return
	}
	if n.Cond.Type() != types.Bool {
		a.fail(diag.Semantic(diag.KindNodeTypeError, diag.Position{Line: n.P.Line, Column: n.P.Column}, "if condition must be bool, got %s", n.Cond.Type()))
		return
	}

	a.Ctx.Push(symtable.ContextIf)
	for _, stmt := range n.Body {
		if a.failed() {
			break
		}
		stmt.Accept(a)
	}
	if !a.failed() && n.HasElse {
		for _, stmt := range n.Else {
			if a.failed() {
				break
			}
			stmt.Accept(a)
		}
	}
	a.Ctx.Pop()
}
