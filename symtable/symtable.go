/*
File    : impyc/symtable/symtable.go
Package symtable implements the flat, single-scope symbol table and the
last-in-first-out context stack of spec.md §3. Grounded on the teacher's
scope.Scope (scope/scope.go), with the parent-scope chain dropped: this
language has no functions to close over, so spec.md defines the table as
one flat collection for the entire program rather than a scope chain.
*/
package symtable

import "github.com/akashmaji946/impyc/types"

// Table is the flat, name-keyed symbol table for the entire program.
type Table struct {
	symbols map[string]*types.Symbol
}

// New returns an empty symbol table.
func New() *Table {
	return &Table{symbols: make(map[string]*types.Symbol)}
}

// Lookup returns the symbol named name, or nil if it has not been
// introduced yet.
func (t *Table) Lookup(name string) *types.Symbol {
	return t.symbols[name]
}

// Has reports whether name has already been introduced.
func (t *Table) Has(name string) bool {
	_, ok := t.symbols[name]
	return ok
}

// Define introduces a new symbol, replacing any existing entry of the
// same name; it does not check for pre-existence itself. The analyzer
// checks with Lookup/Has first and uses Retype for reassignment.
func (t *Table) Define(name string, typ, elemType types.Type) *types.Symbol {
	sym := &types.Symbol{Name: name, Type: typ, ElemType: elemType}
	t.symbols[name] = sym
	return sym
}

// Retype overwrites an existing symbol's type in place (the "reassigning
// a differently-typed expression ... is a warning, not an error" rule of
// spec.md §3).
func (t *Table) Retype(name string, typ, elemType types.Type) {
	if sym, ok := t.symbols[name]; ok {
		sym.Type = typ
		sym.ElemType = elemType
	}
}

// ContextKind names an enclosing construct pushed onto the context stack
// to validate break/continue.
type ContextKind string

const (
	ContextIf   ContextKind = "IfLine"
	ContextLoop ContextKind = "LoopLine"
)

// ContextStack is a plain growable ordered sequence, kept deliberately
// separate from Table per design note §9 ("do not entangle it with the
// symbol table").
type ContextStack struct {
	stack []ContextKind
}

// NewContextStack returns an empty context stack.
func NewContextStack() *ContextStack {
	return &ContextStack{}
}

// Push enters an IfLine or LoopLine construct.
func (c *ContextStack) Push(kind ContextKind) {
	c.stack = append(c.stack, kind)
}

// Pop leaves the most recently entered construct. Popping an empty stack
// is a caller bug (spec.md §3's invariant: "failure to pop is an
// implementation bug") and is a no-op here rather than a panic, so a
// semantic-analysis failure that unwinds early never corrupts the stack
// further.
func (c *ContextStack) Pop() {
	if len(c.stack) == 0 {
		return
	}
	c.stack = c.stack[:len(c.stack)-1]
}

// Empty reports whether the stack has no enclosing construct.
func (c *ContextStack) Empty() bool {
	return len(c.stack) == 0
}

// Top returns the innermost enclosing construct kind, and false if the
// stack is empty.
func (c *ContextStack) Top() (ContextKind, bool) {
	if len(c.stack) == 0 {
		return "", false
	}
	return c.stack[len(c.stack)-1], true
}
