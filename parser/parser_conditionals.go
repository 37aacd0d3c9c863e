/*
File : impyc/parser/parser_conditionals.go
IfLine / IfCond / IfBody / OptElse productions. Body delimiting follows
SPEC_FULL's brace resolution (see SPEC_FULL.md §4.2) rather than spec.md's
literal, unterminated FOLLOW-set prose.
*/
package parser

import (
	"github.com/akashmaji946/impyc/ast"
	"github.com/akashmaji946/impyc/diag"
	"github.com/akashmaji946/impyc/token"
)

// parseIfCond is `'(' Expr ')'`.
func (p *Parser) parseIfCond() (ast.Expr, diag.Error) {
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return cond, nil
}

// parseBracedLines is `'{' (Line Endline)+ '}'`, the brace-delimited body
// shared by IfBody and OptElse. The body may not be empty.
func (p *Parser) parseBracedLines() ([]ast.Statement, diag.Error) {
	open, err := p.expect(token.LBRACE)
	if err != nil {
		return nil, err
	}
	stmts, err := p.parseLines(token.RBRACE)
	if err != nil {
		return nil, err
	}
	if len(stmts) == 0 {
		return nil, diag.Syntax(diag.KindUnexpectedToken, p.position(open), "a block body cannot be empty")
	}
	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return stmts, nil
}

// parseIfLine is `if IfCond IfBody` where `IfBody → '{' (Line Endline)+ '}' OptElse?`.
func (p *Parser) parseIfLine() (ast.Statement, diag.Error) {
	ifTok := p.advance()
	cond, err := p.parseIfCond()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBracedLines()
	if err != nil {
		return nil, err
	}

	var elseBody []ast.Statement
	hasElse := false
	if p.cur().Kind == token.ELSE {
		p.advance()
		elseBody, err = p.parseBracedLines()
		if err != nil {
			return nil, err
		}
		hasElse = true
	}

	return &ast.IfLine{Cond: cond, Body: body, Else: elseBody, HasElse: hasElse, P: p.position(ifTok)}, nil
}
