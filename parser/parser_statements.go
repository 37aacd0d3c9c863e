/*
File : impyc/parser/parser_statements.go
Line-level productions: Line, Assign, Input, Output, Break, Continue, and
the shared (Line Endline)* / (Line Endline)+ helper used by Program,
IfBody, OptElse, and LoopLine's body.
*/
package parser

import (
	"github.com/akashmaji946/impyc/ast"
	"github.com/akashmaji946/impyc/diag"
	"github.com/akashmaji946/impyc/token"
)

// parseLines consumes (Line Endline)* until the current token is stop.
// Reaching EOF before stop (when stop != token.EOF) is a missing-endline
// style structural error.
func (p *Parser) parseLines(stop token.Kind) ([]ast.Statement, diag.Error) {
	var stmts []ast.Statement
	for p.cur().Kind != stop {
		if p.cur().Kind == token.EOF {
			t := p.cur()
			return nil, diag.Syntax(diag.KindUnexpectedToken, diag.Position{Line: t.Line, Column: t.Column},
				"unexpected end of input, expected %s", stop)
		}
		line, err := p.parseLine()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, line)
		if _, err := p.expect(token.ENDLINE); err != nil {
			return nil, err
		}
	}
	return stmts, nil
}

// parseLine dispatches on the current token's kind per spec.md §4.2:
// `Line → Assign | Input | Output | IfLine | LoopLine | Break | Continue`.
func (p *Parser) parseLine() (ast.Statement, diag.Error) {
	switch p.cur().Kind {
	case token.VAR:
		return p.parseAssign()
	case token.READ_IN:
		return p.parseInput()
	case token.WRITE_OUT:
		return p.parseOutput()
	case token.IF:
		return p.parseIfLine()
	case token.WHILE:
		return p.parseLoopLine()
	case token.BREAK:
		t := p.advance()
		return &ast.Break{P: p.position(t)}, nil
	case token.CONTINUE:
		t := p.advance()
		return &ast.Continue{P: p.position(t)}, nil
	default:
		t := p.cur()
		return nil, diag.Syntax(diag.KindUnexpectedToken, diag.Position{Line: t.Line, Column: t.Column},
			"%q does not start a valid statement", t.Literal)
	}
}

// parseAssign is `Var '=' Expr`.
func (p *Parser) parseAssign() (ast.Statement, diag.Error) {
	nameTok, err := p.expect(token.VAR)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Assign{Name: nameTok.Literal, Var: p.position(nameTok), Value: value, P: p.position(nameTok)}, nil
}

// parseInput is `readIn Var` (where "readIn" matches one of the reader
// keyword spellings the lexer has already validated).
func (p *Parser) parseInput() (ast.Statement, diag.Error) {
	readerTok := p.advance()
	nameTok, err := p.expect(token.VAR)
	if err != nil {
		return nil, err
	}
	return &ast.Input{Reader: readerTok.Literal, Name: nameTok.Literal, P: p.position(readerTok)}, nil
}

// parseOutput is `writeOut Obj`.
func (p *Parser) parseOutput() (ast.Statement, diag.Error) {
	wTok := p.advance()
	value, err := p.parseObj()
	if err != nil {
		return nil, err
	}
	return &ast.Output{Value: value, P: p.position(wTok)}, nil
}
