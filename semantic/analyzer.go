/*
File    : impyc/semantic/analyzer.go
Package semantic implements the type-checking walk of spec.md §4.3. It
shares its walking shape with the teacher's eval.Evaluator (one private
method per node kind, called from a dispatcher) but is reworked from a
type-switch-returning-objects.GoMixObject dispatcher into an ast.Visitor
implementation: each Visit* method stores its node's resolved type on the
node itself (ast.Expr.SetType) rather than returning a runtime value,
since nothing here ever executes the program.

Analyzer fails fast: the first diag.Error encountered is latched in err
and every subsequent Visit* call becomes a no-op, mirroring the teacher's
"if IsError(result) { return result }" short-circuit threaded through
Go's lack of exceptions -- here the short-circuit is a guard at the top
of each method instead of an early return value, because ast.Visitor's
methods are void per its interface contract.
*/
package semantic

import (
	"github.com/akashmaji946/impyc/ast"
	"github.com/akashmaji946/impyc/diag"
	"github.com/akashmaji946/impyc/symtable"
	"github.com/akashmaji946/impyc/types"
)

// Analyzer walks a Program assigning types to every Expr and validating
// break/continue placement, using a flat symbol table and a context
// stack exactly as spec.md §3/§4.3 describe.
type Analyzer struct {
	Table *symtable.Table
	Ctx   *symtable.ContextStack
	err   diag.Error
}

// New returns an Analyzer with a fresh symbol table and context stack.
func New() *Analyzer {
	return &Analyzer{Table: symtable.New(), Ctx: symtable.NewContextStack()}
}

// Analyze type-checks prog in place and returns the first diagnostic
// encountered, or nil if the program is well-typed.
func Analyze(prog *ast.Program) diag.Error {
	a := New()
	prog.Accept(a)
	return a.err
}

// fail latches the first diagnostic; later calls are ignored so the walk
// keeps returning cleanly instead of panicking on a nil dereference.
func (a *Analyzer) fail(err diag.Error) {
	if a.err == nil {
		a.err = err
	}
}

// failed reports whether an error has already been latched.
func (a *Analyzer) failed() bool {
	return a.err != nil
}

// Err returns the latched diagnostic, if any.
func (a *Analyzer) Err() diag.Error {
	return a.err
}

// Reset clears a latched diagnostic so the same Analyzer (and its symbol
// table/context stack) can keep accepting further statements -- used by
// the REPL, where one line's semantic error should not poison every line
// that follows it.
func (a *Analyzer) Reset() {
	a.err = nil
}

// resultOf looks up the op-table result for a BinaryExpr given its
// resolved operand types, per spec.md §4.3's four-table dispatch keyed on
// the lexeme recorded on the node.
func resultOf(op string, left, right types.Type) types.Type {
	switch op {
	case "+", "-", "*", "/", "%":
		return types.Arith(left, right)
	case "/.":
		return types.FloatDiv(left, right)
	case "<", "<=", ">", ">=":
		return types.Compare(left, right)
	case "==", "!=", "&&", "||":
		return types.Logic(left, right)
	default:
		return types.Undef
	}
}
