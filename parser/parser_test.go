/*
File : impyc/parser/parser_test.go
Grounded on the teacher's parser_test.go: build a tree from source and
assert on concrete node shapes via type assertion.
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/impyc/ast"
	"github.com/akashmaji946/impyc/config"
	"github.com/akashmaji946/impyc/lexer"
)

func mustParse(t *testing.T, src string) *ast.Program {
	toks, lerr := lexer.Lex(src, config.Default().Readers)
	assert.Nil(t, lerr)
	prog, perr := Parse(toks)
	assert.Nil(t, perr)
	assert.NotNil(t, prog)
	return prog
}

func TestParser_Assign_SimpleInt(t *testing.T) {
	prog := mustParse(t, "x = 12;\n")
	assert.Equal(t, 1, len(prog.Lines))

	assign, ok := prog.Lines[0].(*ast.Assign)
	assert.True(t, ok)
	assert.Equal(t, "x", assign.Name)

	num, ok := assign.Value.(*ast.NumLit)
	assert.True(t, ok)
	assert.Equal(t, "12", num.IntPart)
	assert.True(t, num.IsInt)
}

func TestParser_Assign_AddExpression(t *testing.T) {
	prog := mustParse(t, "x = 12 + 13;\n")
	assign := prog.Lines[0].(*ast.Assign)

	bin, ok := assign.Value.(*ast.BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, "+", bin.Op)

	left, ok := bin.Left.(*ast.NumLit)
	assert.True(t, ok)
	assert.Equal(t, "12", left.IntPart)

	right, ok := bin.Right.(*ast.NumLit)
	assert.True(t, ok)
	assert.Equal(t, "13", right.IntPart)
}

func TestParser_Assign_PrecedenceMulOverSub(t *testing.T) {
	prog := mustParse(t, "x = 28 - 13 * 2;\n")
	assign := prog.Lines[0].(*ast.Assign)

	top, ok := assign.Value.(*ast.BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, "-", top.Op)

	_, ok = top.Left.(*ast.NumLit)
	assert.True(t, ok)

	mul, ok := top.Right.(*ast.BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, "*", mul.Op)
}

func TestParser_FloatWithSignAndExponent(t *testing.T) {
	prog := mustParse(t, "x = -3.14^+2;\n")
	assign := prog.Lines[0].(*ast.Assign)

	num, ok := assign.Value.(*ast.NumLit)
	assert.True(t, ok)
	assert.Equal(t, "-", num.Sign)
	assert.Equal(t, "3", num.IntPart)
	assert.True(t, num.HasFrac)
	assert.Equal(t, "14", num.FracDigit)
	assert.True(t, num.HasExp)
	assert.Equal(t, "+", num.ExpSign)
	assert.Equal(t, "2", num.ExpDigit)
	assert.False(t, num.IsInt)
}

func TestParser_BareFractionWithSign(t *testing.T) {
	prog := mustParse(t, "x = +.5;\n")
	assign := prog.Lines[0].(*ast.Assign)

	num, ok := assign.Value.(*ast.NumLit)
	assert.True(t, ok)
	assert.Equal(t, "+", num.Sign)
	assert.Equal(t, "", num.IntPart)
	assert.True(t, num.HasFrac)
	assert.Equal(t, "5", num.FracDigit)
}

func TestParser_ListElemDisambiguation(t *testing.T) {
	prog := mustParse(t, "x = nums[0];\n")
	assign := prog.Lines[0].(*ast.Assign)

	elem, ok := assign.Value.(*ast.ListElem)
	assert.True(t, ok)
	assert.Equal(t, "nums", elem.Name)
	idx, ok := elem.Index.(*ast.NumLit)
	assert.True(t, ok)
	assert.Equal(t, "0", idx.IntPart)
}

func TestParser_VarWithoutBracketIsPlainVarRef(t *testing.T) {
	prog := mustParse(t, "x = y;\n")
	assign := prog.Lines[0].(*ast.Assign)

	ref, ok := assign.Value.(*ast.VarRef)
	assert.True(t, ok)
	assert.Equal(t, "y", ref.Name)
}

func TestParser_ListLiteral(t *testing.T) {
	prog := mustParse(t, "x = [1,2,3];\n")
	assign := prog.Lines[0].(*ast.Assign)

	list, ok := assign.Value.(*ast.ListLit)
	assert.True(t, ok)
	assert.Equal(t, 3, len(list.Elements))
}

func TestParser_StrConcatenationVsPredAddition(t *testing.T) {
	prog := mustParse(t, `x = "a" + "b";` + "\n")
	assign := prog.Lines[0].(*ast.Assign)

	str, ok := assign.Value.(*ast.StrLit)
	assert.True(t, ok)
	assert.Equal(t, 2, len(str.Parts))
	assert.Equal(t, "a", str.Parts[0].Raw)
	assert.Equal(t, "b", str.Parts[1].Raw)
}

func TestParser_StrInterpolants(t *testing.T) {
	prog := mustParse(t, `x = "hi", a, b;` + "\n")
	assign := prog.Lines[0].(*ast.Assign)

	str, ok := assign.Value.(*ast.StrLit)
	assert.True(t, ok)
	assert.Equal(t, 1, len(str.Parts))
	assert.Equal(t, 2, len(str.Parts[0].Interpolants))
}

func TestParser_BoolAndNull(t *testing.T) {
	prog := mustParse(t, "x = True;\ny = NULL;\n")

	b := prog.Lines[0].(*ast.Assign).Value.(*ast.BoolLit)
	assert.True(t, b.Value)

	_, ok := prog.Lines[1].(*ast.Assign).Value.(*ast.NullLit)
	assert.True(t, ok)
}

func TestParser_IfLineWithElse(t *testing.T) {
	prog := mustParse(t, "if (x == 1) {\n  y = 2;\n} else {\n  y = 3;\n};\n")
	assert.Equal(t, 1, len(prog.Lines))

	ifLine, ok := prog.Lines[0].(*ast.IfLine)
	assert.True(t, ok)
	assert.Equal(t, 1, len(ifLine.Body))
	assert.True(t, ifLine.HasElse)
	assert.Equal(t, 1, len(ifLine.Else))
}

func TestParser_IfLineWithoutElse(t *testing.T) {
	prog := mustParse(t, "if (x == 1) {\n  y = 2;\n};\n")
	ifLine := prog.Lines[0].(*ast.IfLine)
	assert.False(t, ifLine.HasElse)
	assert.Nil(t, ifLine.Else)
}

func TestParser_EmptyIfBodyIsError(t *testing.T) {
	toks, lerr := lexer.Lex("if (x == 1) {\n}\n", config.Default().Readers)
	assert.Nil(t, lerr)
	_, err := Parse(toks)
	assert.NotNil(t, err)
}

func TestParser_LoopLineAllowsEmptyBody(t *testing.T) {
	prog := mustParse(t, "while (x == 1) {\n};\n")
	loop, ok := prog.Lines[0].(*ast.LoopLine)
	assert.True(t, ok)
	assert.Equal(t, 0, len(loop.Body))
}

func TestParser_BreakAndContinue(t *testing.T) {
	prog := mustParse(t, "while (x == 1) {\n  break;\n  continue;\n};\n")
	loop := prog.Lines[0].(*ast.LoopLine)
	assert.Equal(t, 2, len(loop.Body))
	_, ok := loop.Body[0].(*ast.Break)
	assert.True(t, ok)
	_, ok = loop.Body[1].(*ast.Continue)
	assert.True(t, ok)
}

func TestParser_Input(t *testing.T) {
	prog := mustParse(t, "readInt x;\n")
	in, ok := prog.Lines[0].(*ast.Input)
	assert.True(t, ok)
	assert.Equal(t, "readInt", in.Reader)
	assert.Equal(t, "x", in.Name)
}

func TestParser_Output(t *testing.T) {
	prog := mustParse(t, "writeOut x;\n")
	out, ok := prog.Lines[0].(*ast.Output)
	assert.True(t, ok)
	_, ok = out.Value.(*ast.VarRef)
	assert.True(t, ok)
}

func TestParser_ParenExpr(t *testing.T) {
	prog := mustParse(t, "x = (1 + 2) * 3;\n")
	assign := prog.Lines[0].(*ast.Assign)

	top := assign.Value.(*ast.BinaryExpr)
	assert.Equal(t, "*", top.Op)
	_, ok := top.Left.(*ast.Paren)
	assert.True(t, ok)
}

func TestParser_UnexpectedTokenIsError(t *testing.T) {
	toks, lerr := lexer.Lex("x = ;\n", config.Default().Readers)
	assert.Nil(t, lerr)
	_, err := Parse(toks)
	assert.NotNil(t, err)
}

func TestParser_MissingEndlineIsError(t *testing.T) {
	toks, lerr := lexer.Lex("x = 1", config.Default().Readers)
	assert.Nil(t, lerr)
	_, err := Parse(toks)
	assert.NotNil(t, err)
}
