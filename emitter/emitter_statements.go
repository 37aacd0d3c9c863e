/*
File : impyc/emitter/emitter_statements.go
Visit methods for Program, Assign, Input, Output, Break, Continue.
*/
package emitter

import (
	"fmt"

	"github.com/akashmaji946/impyc/ast"
)

func (e *Emitter) VisitProgram(n *ast.Program) {
	for _, stmt := range n.Lines {
		stmt.Accept(e)
	}
}

// VisitAssign emits `<indent><name> = <expr>`.
func (e *Emitter) VisitAssign(n *ast.Assign) {
	e.writeIndent()
	fmt.Fprintf(e.buf, "%s = %s\n", n.Name, e.text(n.Value))
}

// readerWrapper maps a reader keyword's spelling to the target-language
// conversion wrapped around `input()`; readStr wraps in nothing.
func readerWrapper(reader string) string {
	switch reader {
	case "readInt":
		return "int"
	case "readFloat":
		return "float"
	case "readBool":
		return "bool"
	default:
		return ""
	}
}

// VisitInput emits `<indent><name> = <reader>(input())`.
func (e *Emitter) VisitInput(n *ast.Input) {
	e.writeIndent()
	fmt.Fprintf(e.buf, "%s = %s(input())\n", n.Name, readerWrapper(n.Reader))
}

// VisitOutput emits `<indent>print(<obj>)`.
func (e *Emitter) VisitOutput(n *ast.Output) {
	e.writeIndent()
	fmt.Fprintf(e.buf, "print(%s)\n", e.text(n.Value))
}

func (e *Emitter) VisitBreak(n *ast.Break) {
	e.writeIndent()
	e.buf.WriteString("break\n")
}

func (e *Emitter) VisitContinue(n *ast.Continue) {
	e.writeIndent()
	e.buf.WriteString("continue\n")
}
