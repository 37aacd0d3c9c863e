/*
File : impyc/emitter/emitter_loops.go
VisitLoopLine: `<indent>while <expr>:` then the body at indent+step.
*/
package emitter

import (
	"fmt"

	"github.com/akashmaji946/impyc/ast"
)

func (e *Emitter) VisitLoopLine(n *ast.LoopLine) {
	e.writeIndent()
	fmt.Fprintf(e.buf, "while %s:\n", e.text(n.Cond))

	e.Indent++
	for _, stmt := range n.Body {
		stmt.Accept(e)
	}
	e.Indent--
}
