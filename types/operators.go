/*
File    : impyc/types/operators.go
The four operator result-type lookups of spec.md §4.3. arith and floatdiv
are package-level map data keyed by (left, right) type pairs; compare and
logic are not stored as tables but computed by the Compare and Logic
predicate functions below.
*/
package types

// pair is the (left, right) operand-type key into an operator table.
type pair struct {
	Left  Type
	Right Type
}

// arithTable serves '+ - * %' and integer '/'.
var arithTable = map[pair]Type{
	{Int, Int}:     Int,
	{Int, Float}:   Float,
	{Float, Int}:   Float,
	{Float, Float}: Float,
}

// floatdivTable serves '/.'.
var floatdivTable = map[pair]Type{
	{Int, Int}:     Float,
	{Int, Float}:   Float,
	{Float, Int}:   Float,
	{Float, Float}: Float,
}

// Arith looks up the arithmetic result type, or Undef if the pair is not
// permitted.
func Arith(left, right Type) Type {
	if t, ok := arithTable[pair{left, right}]; ok {
		return t
	}
	return Undef
}

// FloatDiv looks up the float-division result type, or Undef.
func FloatDiv(left, right Type) Type {
	if t, ok := floatdivTable[pair{left, right}]; ok {
		return t
	}
	return Undef
}

// Compare serves '< <= > >=': numeric with numeric yields bool, anything
// else is not permitted.
func Compare(left, right Type) Type {
	if left.IsNumeric() && right.IsNumeric() {
		return Bool
	}
	return Undef
}

// Logic serves '== != && ||': every non-list pair yields bool; list with
// list yields bool; list mixed with non-list is not permitted.
func Logic(left, right Type) Type {
	if left == List && right == List {
		return Bool
	}
	if left == List || right == List {
		return Undef
	}
	return Bool
}
