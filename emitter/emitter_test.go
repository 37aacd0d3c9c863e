/*
File : impyc/emitter/emitter_test.go
Grounded on the teacher's evaluator_test.go table-driven style, checking
emitted text end to end from source through lex/parse/analyze/emit.
*/
package emitter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/impyc/config"
	"github.com/akashmaji946/impyc/lexer"
	"github.com/akashmaji946/impyc/parser"
	"github.com/akashmaji946/impyc/semantic"
)

func mustEmit(t *testing.T, src string) string {
	toks, lerr := lexer.Lex(src, config.Default().Readers)
	assert.Nil(t, lerr)
	prog, perr := parser.Parse(toks)
	assert.Nil(t, perr)
	serr := semantic.Analyze(prog)
	assert.Nil(t, serr)
	return Emit(prog, config.Default().IndentStep)
}

func TestEmit_Assign(t *testing.T) {
	out := mustEmit(t, "x = 1 + 2;\n")
	assert.Equal(t, "x = 1 + 2\n", out)
}

func TestEmit_SignAndFractionAndExponent(t *testing.T) {
	out := mustEmit(t, "x = -3.14^+2;\n")
	assert.Equal(t, "x = -3.14e+2\n", out)
}

func TestEmit_BareFractionWithSign(t *testing.T) {
	out := mustEmit(t, "x = +.5;\n")
	assert.Equal(t, "x = +.5\n", out)
}

func TestEmit_BoolAndNull(t *testing.T) {
	out := mustEmit(t, "x = True;\ny = NULL;\n")
	assert.Equal(t, "x = True\ny = None\n", out)
}

func TestEmit_AndOrFloatDivMapping(t *testing.T) {
	out := mustEmit(t, "x = (1 && 2) || (4 /. 2);\n")
	assert.Equal(t, "x = (1 and 2) or (4 / 2)\n", out)
}

func TestEmit_StrConcatenationJoinedWithPlus(t *testing.T) {
	out := mustEmit(t, `x = "a" + "b";` + "\n")
	assert.Equal(t, `x = "a" + "b"`+"\n", out)
}

func TestEmit_StrInterpolantsUsePercentTemplate(t *testing.T) {
	out := mustEmit(t, "a = 1;\nb = 2;\n"+`x = "hi", a, b;`+"\n")
	assert.Equal(t, "a = 1\nb = 2\n"+`x = "hi" %(a,b)`+"\n", out)
}

func TestEmit_ListLiteralAndListElem(t *testing.T) {
	out := mustEmit(t, "nums = [1,2,3];\ny = nums[0];\n")
	assert.Equal(t, "nums = [1,2,3]\ny = nums[0]\n", out)
}

func TestEmit_Input(t *testing.T) {
	assert.Equal(t, "x = int(input())\n", mustEmit(t, "readInt x;\n"))
	assert.Equal(t, "x = float(input())\n", mustEmit(t, "readFloat x;\n"))
	assert.Equal(t, "x = bool(input())\n", mustEmit(t, "readBool x;\n"))
	assert.Equal(t, "x = (input())\n", mustEmit(t, "readStr x;\n"))
}

func TestEmit_Output(t *testing.T) {
	out := mustEmit(t, "x = 1;\nwriteOut x;\n")
	assert.Equal(t, "x = 1\nprint(x)\n", out)
}

func TestEmit_IfLineWithElseIndentsBody(t *testing.T) {
	out := mustEmit(t, "x = 1;\nif (x == 1) {\n  y = 2;\n} else {\n  y = 3;\n};\n")
	assert.Equal(t, "x = 1\nif x == 1:\n    y = 2\nelse:\n    y = 3\n", out)
}

func TestEmit_LoopLineWithBreakAndContinue(t *testing.T) {
	out := mustEmit(t, "x = 1;\nwhile (x == 1) {\n  break;\n  continue;\n};\n")
	assert.Equal(t, "x = 1\nwhile x == 1:\n    break\n    continue\n", out)
}

func TestEmit_NestedIfInsideLoopDoubleIndents(t *testing.T) {
	out := mustEmit(t, "x = 1;\nwhile (x == 1) {\n  if (x == 2) {\n    break;\n  };\n};\n")
	assert.Equal(t, "x = 1\nwhile x == 1:\n    if x == 2:\n        break\n", out)
}
