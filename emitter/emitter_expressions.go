/*
File : impyc/emitter/emitter_expressions.go
Visit methods for every Expr node kind. Each writes its own text into
whatever buffer is currently active (e.buf) -- either the top-level
output, via Emit, or a captured scratch buffer, via Emitter.text.
*/
package emitter

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/impyc/ast"
)

// VisitBinaryExpr emits `left OP right` with a single space around OP,
// mapping the operator lexeme per opLexeme.
func (e *Emitter) VisitBinaryExpr(n *ast.BinaryExpr) {
	fmt.Fprintf(e.buf, "%s %s %s", e.text(n.Left), opLexeme(n.Op), e.text(n.Right))
}

// VisitParen emits its own parentheses around the inner expression.
func (e *Emitter) VisitParen(n *ast.Paren) {
	fmt.Fprintf(e.buf, "(%s)", e.text(n.Inner))
}

func (e *Emitter) VisitVarRef(n *ast.VarRef) {
	e.buf.WriteString(n.Name)
}

// VisitListElem emits `name[index]`.
func (e *Emitter) VisitListElem(n *ast.ListElem) {
	fmt.Fprintf(e.buf, "%s[%s]", n.Name, e.text(n.Index))
}

// VisitListLit emits `[e1,e2,...]`.
func (e *Emitter) VisitListLit(n *ast.ListLit) {
	parts := make([]string, len(n.Elements))
	for i, elem := range n.Elements {
		parts[i] = e.text(elem)
	}
	fmt.Fprintf(e.buf, "[%s]", strings.Join(parts, ","))
}

// VisitNumLit reproduces the literal's verbatim spelling: sign, integer
// part, `.<digits>` fraction, and `e+<digits>`/`e-<digits>` exponent.
func (e *Emitter) VisitNumLit(n *ast.NumLit) {
	var b strings.Builder
	b.WriteString(n.Sign)
	b.WriteString(n.IntPart)
	if n.HasFrac {
		b.WriteByte('.')
		b.WriteString(n.FracDigit)
	}
	if n.HasExp {
		expSign := n.ExpSign
		if expSign == "" {
			expSign = "+"
		}
		b.WriteByte('e')
		b.WriteString(expSign)
		b.WriteString(n.ExpDigit)
	}
	e.buf.WriteString(b.String())
}

// VisitStrLit emits each QuotedStr part, joined by " + " when there is
// more than one; a part with interpolants emits as `"raw" %(o1,o2,...)`.
func (e *Emitter) VisitStrLit(n *ast.StrLit) {
	parts := make([]string, len(n.Parts))
	for i, part := range n.Parts {
		var b strings.Builder
		b.WriteByte('"')
		b.WriteString(part.Raw)
		b.WriteByte('"')
		if len(part.Interpolants) > 0 {
			objs := make([]string, len(part.Interpolants))
			for j, obj := range part.Interpolants {
				objs[j] = e.text(obj)
			}
			fmt.Fprintf(&b, " %%(%s)", strings.Join(objs, ","))
		}
		parts[i] = b.String()
	}
	e.buf.WriteString(strings.Join(parts, " + "))
}

func (e *Emitter) VisitBoolLit(n *ast.BoolLit) {
	if n.Value {
		e.buf.WriteString("True")
	} else {
		e.buf.WriteString("False")
	}
}

func (e *Emitter) VisitNullLit(n *ast.NullLit) {
	e.buf.WriteString("None")
}
