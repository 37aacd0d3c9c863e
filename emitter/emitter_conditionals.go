/*
File : impyc/emitter/emitter_conditionals.go
VisitIfLine: `<indent>if <expr>:` then the body at indent+step, with an
optional `<indent>else:` and its own body.
*/
package emitter

import (
	"fmt"

	"github.com/akashmaji946/impyc/ast"
)

func (e *Emitter) VisitIfLine(n *ast.IfLine) {
	e.writeIndent()
	fmt.Fprintf(e.buf, "if %s:\n", e.text(n.Cond))

	e.Indent++
	for _, stmt := range n.Body {
		stmt.Accept(e)
	}
	e.Indent--

	if n.HasElse {
		e.writeIndent()
		e.buf.WriteString("else:\n")
		e.Indent++
		for _, stmt := range n.Else {
			stmt.Accept(e)
		}
		e.Indent--
	}
}
