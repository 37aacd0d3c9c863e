/*
File    : impyc/types/types.go
Package types defines the type lattice the semantic analyzer assigns to
parse-tree nodes, and the Symbol/element-type pairing spec.md §3 defines
for the symbol table. Grounded on the teacher's objects.GoMixType enum
(objects/objects.go), trimmed to the seven atomic kinds this language's
lattice names -- no function/array/map/set/struct/tuple/range/object
kinds, since this compiler never executes a program and so never needs a
runtime value representation for those.
*/
package types

// Type is one member of the closed type lattice of spec.md §4.3.
type Type string

const (
	Int    Type = "int"
	Float  Type = "float"
	String Type = "string"
	Bool   Type = "bool"
	Null   Type = "null"
	List   Type = "list"
	// Undef is the bottom type: "not permitted" for an operator-table
	// lookup, and the type of a symbol before its first assignment.
	Undef Type = "undef"
)

// IsNumeric reports whether t is int or float.
func (t Type) IsNumeric() bool {
	return t == Int || t == Float
}

// Symbol is a (name, type, element-type) record. ElemType is meaningful
// only when Type == List; it is Undef otherwise.
type Symbol struct {
	Name     string
	Type     Type
	ElemType Type
}

// Unify computes the unified type of two list-element types per spec.md
// §4.3's ListExpr rule: int and float unify to float; anything else must
// match exactly or the pair does not unify (ok == false).
func Unify(a, b Type) (Type, bool) {
	if a == b {
		return a, true
	}
	if a.IsNumeric() && b.IsNumeric() {
		return Float, true
	}
	return Undef, false
}
