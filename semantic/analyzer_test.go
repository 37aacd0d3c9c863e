/*
File : impyc/semantic/analyzer_test.go
Table-driven, grounded on the teacher's evaluator_test.go style.
*/
package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/impyc/config"
	"github.com/akashmaji946/impyc/lexer"
	"github.com/akashmaji946/impyc/parser"
	"github.com/akashmaji946/impyc/types"
)

func TestAnalyzer_ArithPromotesIntAndFloat(t *testing.T) {
	tests := []struct {
		input    string
		expected types.Type
	}{
		{"x = 1 + 2;\n", types.Int},
		{"x = 1 + 2.5;\n", types.Float},
		{"x = 1.5 + 2;\n", types.Float},
		{"x = 1.5 + 2.5;\n", types.Float},
	}
	for _, tt := range tests {
		toks, lerr := lexer.Lex(tt.input, config.Default().Readers)
		assert.Nil(t, lerr)
		prog, perr := parser.Parse(toks)
		assert.Nil(t, perr)
		a := New()
		prog.Accept(a)
		assert.Nil(t, a.err)
		assert.Equal(t, tt.expected, a.Table.Lookup("x").Type)
	}
}

func TestAnalyzer_StringConcatTypesAsString(t *testing.T) {
	toks, lerr := lexer.Lex(`x = "a" + "b";` + "\n", config.Default().Readers)
	assert.Nil(t, lerr)
	prog, perr := parser.Parse(toks)
	assert.Nil(t, perr)
	a := New()
	prog.Accept(a)
	assert.Nil(t, a.err)
	assert.Equal(t, types.String, a.Table.Lookup("x").Type)
}

func TestAnalyzer_UndefinedSymbolIsError(t *testing.T) {
	toks, lerr := lexer.Lex("x = y;\n", config.Default().Readers)
	assert.Nil(t, lerr)
	prog, perr := parser.Parse(toks)
	assert.Nil(t, perr)
	err := Analyze(prog)
	assert.NotNil(t, err)
}

func TestAnalyzer_MismatchedArithIsNodeTypeError(t *testing.T) {
	toks, lerr := lexer.Lex(`x = 1 + "a";` + "\n", config.Default().Readers)
	assert.Nil(t, lerr)
	prog, perr := parser.Parse(toks)
	assert.Nil(t, perr)
	err := Analyze(prog)
	assert.NotNil(t, err)
}

func TestAnalyzer_IfConditionMustBeBool(t *testing.T) {
	toks, lerr := lexer.Lex("if (1) {\n  x = 1;\n};\n", config.Default().Readers)
	assert.Nil(t, lerr)
	prog, perr := parser.Parse(toks)
	assert.Nil(t, perr)
	err := Analyze(prog)
	assert.NotNil(t, err)
}

func TestAnalyzer_BreakInsideLoopIsValid(t *testing.T) {
	toks, lerr := lexer.Lex("while (x == 1) {\n  break;\n};\n", config.Default().Readers)
	assert.Nil(t, lerr)
	prog, perr := parser.Parse(toks)
	assert.Nil(t, perr)
	a := New()
	a.Table.Define("x", types.Int, types.Undef)
	prog.Accept(a)
	assert.Nil(t, a.err)
}

func TestAnalyzer_BreakOutsideContextIsError(t *testing.T) {
	toks, lerr := lexer.Lex("break;\n", config.Default().Readers)
	assert.Nil(t, lerr)
	prog, perr := parser.Parse(toks)
	assert.Nil(t, perr)
	err := Analyze(prog)
	assert.NotNil(t, err)
}

func TestAnalyzer_ContinueInsideIfIsValid(t *testing.T) {
	toks, lerr := lexer.Lex("if (x == 1) {\n  continue;\n};\n", config.Default().Readers)
	assert.Nil(t, lerr)
	prog, perr := parser.Parse(toks)
	assert.Nil(t, perr)
	a := New()
	a.Table.Define("x", types.Int, types.Undef)
	prog.Accept(a)
	assert.Nil(t, a.err)
}

func TestAnalyzer_ListElemRequiresListSymbol(t *testing.T) {
	toks, lerr := lexer.Lex("y = x[0];\n", config.Default().Readers)
	assert.Nil(t, lerr)
	prog, perr := parser.Parse(toks)
	assert.Nil(t, perr)
	a := New()
	a.Table.Define("x", types.Int, types.Undef)
	prog.Accept(a)
	assert.NotNil(t, a.err)
}

func TestAnalyzer_ListElemResolvesElementType(t *testing.T) {
	toks, lerr := lexer.Lex("nums = [1,2,3];\ny = nums[0];\n", config.Default().Readers)
	assert.Nil(t, lerr)
	prog, perr := parser.Parse(toks)
	assert.Nil(t, perr)
	a := New()
	prog.Accept(a)
	assert.Nil(t, a.err)
	assert.Equal(t, types.Int, a.Table.Lookup("y").Type)
}

func TestAnalyzer_ListLiteralUnifiesIntAndFloat(t *testing.T) {
	toks, lerr := lexer.Lex("nums = [1,2.5];\n", config.Default().Readers)
	assert.Nil(t, lerr)
	prog, perr := parser.Parse(toks)
	assert.Nil(t, perr)
	a := New()
	prog.Accept(a)
	assert.Nil(t, a.err)
	assert.Equal(t, types.Float, a.Table.Lookup("nums").ElemType)
}

func TestAnalyzer_ListLiteralMismatchIsError(t *testing.T) {
	toks, lerr := lexer.Lex(`nums = [1,"a"];` + "\n", config.Default().Readers)
	assert.Nil(t, lerr)
	prog, perr := parser.Parse(toks)
	assert.Nil(t, perr)
	err := Analyze(prog)
	assert.NotNil(t, err)
}

func TestAnalyzer_InputPinsReaderType(t *testing.T) {
	toks, lerr := lexer.Lex("readFloat x;\n", config.Default().Readers)
	assert.Nil(t, lerr)
	prog, perr := parser.Parse(toks)
	assert.Nil(t, perr)
	a := New()
	prog.Accept(a)
	assert.Nil(t, a.err)
	assert.Equal(t, types.Float, a.Table.Lookup("x").Type)
}

func TestAnalyzer_ReassignRetypesWithoutError(t *testing.T) {
	toks, lerr := lexer.Lex(`x = 1;` + "\n"+ `x = "hi";` + "\n", config.Default().Readers)
	assert.Nil(t, lerr)
	prog, perr := parser.Parse(toks)
	assert.Nil(t, perr)
	a := New()
	prog.Accept(a)
	assert.Nil(t, a.err)
	assert.Equal(t, types.String, a.Table.Lookup("x").Type)
}
