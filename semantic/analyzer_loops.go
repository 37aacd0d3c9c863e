/*
File : impyc/semantic/analyzer_loops.go
VisitLoopLine: condition must be bool, body walks under a LoopLine
context-stack entry so break/continue inside it validate.
*/
package semantic

import (
	"github.com/akashmaji946/impyc/ast"
	"github.com/akashmaji946/impyc/diag"
	"github.com/akashmaji946/impyc/symtable"
	"github.com/akashmaji946/impyc/types"
)

func (a *Analyzer) VisitLoopLine(n *ast.LoopLine) {
	if a.failed() {
		return
	}
	n.Cond.Accept(a)
	if a.failed() {
		return
	}
	if n.Cond.Type() != types.Bool {
		a.fail(diag.Semantic(diag.KindNodeTypeError, diag.Position{Line: n.P.Line, Column: n.P.Column}, "loop condition must be bool, got %s", n.Cond.Type()))
		return
	}

	a.Ctx.Push(symtable.ContextLoop)
	for _, stmt := range n.Body {
		if a.failed() {
			break
		}
		stmt.Accept(a)
	}
	a.Ctx.Pop()
}
