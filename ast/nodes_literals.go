/*
File : impyc/ast/nodes_literals.go
Literal node shapes: Num, Str (with its QuotedStr interpolation parts),
Bool, Null.
*/
package ast

// NumLit is `('+'|'-')? Float` where `Float → Int Frac? Exp? | Frac Exp?`.
// It carries every sub-part verbatim so the emitter can reproduce the
// exact sign/fraction/exponent spelling spec.md §4.4 requires, rather
// than re-deriving it from a parsed numeric value.
type NumLit struct {
	exprBase
	Sign      string // "+", "-", or ""
	IntPart   string // digits before '.', "" if absent (bare ".5")
	HasFrac   bool
	FracDigit string // digits after '.'
	HasExp    bool
	ExpSign   string // "+", "-", or ""
	ExpDigit  string
	IsInt     bool // true iff no Frac and no Exp part
	P         Position
}

func (n *NumLit) Kind() Kind       { return KindNum }
func (n *NumLit) Pos() Position    { return n.P }
func (n *NumLit) Accept(v Visitor) { v.VisitNumLit(n) }
func (n *NumLit) exprNode()        {}

// QuotedStr is one `RawQuoted (',' Obj)*` segment of a Str: a raw quoted
// literal plus zero or more comma-separated interpolants, emitted as
// `"..." %(obj1,obj2,...)` when interpolants are present.
type QuotedStr struct {
	Raw          string // literal text inside the quotes, quotes excluded
	Interpolants []Expr
	P            Position
}

// StrLit is `QuotedStr ('+' QuotedStr)*`.
type StrLit struct {
	exprBase
	Parts []*QuotedStr
	P     Position
}

func (n *StrLit) Kind() Kind       { return KindStr }
func (n *StrLit) Pos() Position    { return n.P }
func (n *StrLit) Accept(v Visitor) { v.VisitStrLit(n) }
func (n *StrLit) exprNode()        {}

// BoolLit is `True` or `False`.
type BoolLit struct {
	exprBase
	Value bool
	P     Position
}

func (n *BoolLit) Kind() Kind       { return KindBool }
func (n *BoolLit) Pos() Position    { return n.P }
func (n *BoolLit) Accept(v Visitor) { v.VisitBoolLit(n) }
func (n *BoolLit) exprNode()        {}

// NullLit is `NULL`.
type NullLit struct {
	exprBase
	P Position
}

func (n *NullLit) Kind() Kind       { return KindNull }
func (n *NullLit) Pos() Position    { return n.P }
func (n *NullLit) Accept(v Visitor) { v.VisitNullLit(n) }
func (n *NullLit) exprNode()        {}
