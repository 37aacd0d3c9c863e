/*
File : impyc/parser/parser_loops.go
LoopLine production: `while IfCond '{' Program '}'` per SPEC_FULL's brace
resolution. Unlike IfBody/OptElse the loop body may be empty -- it reuses
parseLines directly rather than parseBracedLines' non-empty check.
*/
package parser

import (
	"github.com/akashmaji946/impyc/ast"
	"github.com/akashmaji946/impyc/diag"
	"github.com/akashmaji946/impyc/token"
)

// parseLoopLine is `while IfCond '{' Program '}'`.
func (p *Parser) parseLoopLine() (ast.Statement, diag.Error) {
	whileTok := p.advance()
	cond, err := p.parseIfCond()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}
	body, err := p.parseLines(token.RBRACE)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return &ast.LoopLine{Cond: cond, Body: body, P: p.position(whileTok)}, nil
}
