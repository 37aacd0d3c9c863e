/*
File    : impyc/emitter/emitter.go
Package emitter implements the text-generation walk of spec.md §4.4. It is
the teacher's eval.Evaluator tree-walking pattern repurposed a second time
(alongside semantic.Analyzer) from "execute" to "emit": the same
ast.Visitor shape, but each Visit* method writes indented target-language
text to a buffer instead of producing a runtime value or assigning a
type. The emitter trusts its input has already passed semantic.Analyze;
it performs no type checking of its own.
*/
package emitter

import (
	"bytes"
	"strings"

	"github.com/akashmaji946/impyc/ast"
)

// Emitter walks a validated Program, writing indented target source text.
// Step is the space-indent width per nesting level (config.Options.
// IndentStep, default 4); Indent is the current nesting depth in levels,
// not spaces.
type Emitter struct {
	buf    *bytes.Buffer
	Step   int
	Indent int
}

// New returns an Emitter using step spaces per indent level.
func New(step int) *Emitter {
	if step <= 0 {
		step = 4
	}
	return &Emitter{buf: &bytes.Buffer{}, Step: step}
}

// Emit renders prog to target source text.
func Emit(prog *ast.Program, step int) string {
	e := New(step)
	prog.Accept(e)
	return e.buf.String()
}

func (e *Emitter) writeIndent() {
	e.buf.WriteString(strings.Repeat(" ", e.Indent*e.Step))
}

// text captures expr's emitted form by swapping in a fresh buffer for the
// duration of the walk, mirroring the teacher's SetWriter redirection
// (used there to capture builtin output for tests) repurposed here to let
// statement-level Visit* methods interpolate a sub-expression's text
// inline without threading return values through the void Visitor
// interface.
func (e *Emitter) text(expr ast.Expr) string {
	saved := e.buf
	e.buf = &bytes.Buffer{}
	expr.Accept(e)
	out := e.buf.String()
	e.buf = saved
	return out
}

// opLexeme maps a binary operator's source lexeme to its target-language
// spelling, per spec.md §4.4: verbatim except &&/||//. .
func opLexeme(op string) string {
	switch op {
	case "&&":
		return "and"
	case "||":
		return "or"
	case "/.":
		return "/"
	default:
		return op
	}
}
