/*
File : impyc/parser/parser_expressions.go
Expr / Pred / Term / BaseExpr productions. Each stratum is right-recursive
exactly as spec.md §6 states it; precedence is encoded by stratification
rather than a precedence-climbing loop, so these stay a direct transliteration
of the grammar rather than the teacher's Pratt-style parseExpression.
*/
package parser

import (
	"github.com/akashmaji946/impyc/ast"
	"github.com/akashmaji946/impyc/diag"
	"github.com/akashmaji946/impyc/token"
)

var condOps = map[token.Kind]bool{
	token.EQ: true, token.NEQ: true, token.LT: true, token.LE: true,
	token.GT: true, token.GE: true, token.AND: true, token.OR: true,
}

var termOps = map[token.Kind]bool{
	token.STAR: true, token.SLASH: true, token.FSLASH: true, token.PERCENT: true,
}

// parseExpr is `Pred ( CondOp Expr )?`.
func (p *Parser) parseExpr() (ast.Expr, diag.Error) {
	left, err := p.parsePred()
	if err != nil {
		return nil, err
	}
	if condOps[p.cur().Kind] {
		opTok := p.advance()
		right, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{Left: left, Op: opTok.Literal, Right: right, P: p.position(opTok)}, nil
	}
	return left, nil
}

// parsePred is `Term ( ('+'|'-') Pred )?`.
func (p *Parser) parsePred() (ast.Expr, diag.Error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if p.cur().Kind == token.PLUS || p.cur().Kind == token.MINUS {
		opTok := p.advance()
		right, err := p.parsePred()
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{Left: left, Op: opTok.Literal, Right: right, P: p.position(opTok)}, nil
	}
	return left, nil
}

// parseTerm is `BaseExpr ( ('*'|'/'|'/.'|'%') Term )?`.
func (p *Parser) parseTerm() (ast.Expr, diag.Error) {
	left, err := p.parseBaseExpr()
	if err != nil {
		return nil, err
	}
	if termOps[p.cur().Kind] {
		opTok := p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{Left: left, Op: opTok.Literal, Right: right, P: p.position(opTok)}, nil
	}
	return left, nil
}

// parseBaseExpr is `Obj | '(' Expr ')'`.
func (p *Parser) parseBaseExpr() (ast.Expr, diag.Error) {
	if p.cur().Kind == token.LPAREN {
		openTok := p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return &ast.Paren{Inner: inner, P: p.position(openTok)}, nil
	}
	return p.parseObj()
}
