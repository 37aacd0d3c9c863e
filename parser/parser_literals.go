/*
File : impyc/parser/parser_literals.go
Obj and its alternatives: Var/ListElem, List, Str/QuotedStr, Bool, Null,
Num. Grounded on spec.md §6's grammar block; the Var-vs-ListElem and
Str-concatenation-vs-Pred-addition disambiguations both resolve with a
single extra token of look-ahead via Parser.peek, matching §4.2's "at most
one token of look-ahead" contract (the look-ahead is on the SEPARATOR
token, not on an additional grammar symbol).
*/
package parser

import (
	"strconv"

	"github.com/akashmaji946/impyc/ast"
	"github.com/akashmaji946/impyc/diag"
	"github.com/akashmaji946/impyc/token"
)

// parseObj is `Obj → Var | ListElem | List | Str | Bool | Null | Num`.
func (p *Parser) parseObj() (ast.Expr, diag.Error) {
	switch p.cur().Kind {
	case token.VAR:
		if p.peek().Kind == token.LBRACKET {
			return p.parseListElem()
		}
		t := p.advance()
		return &ast.VarRef{Name: t.Literal, P: p.position(t)}, nil
	case token.LBRACKET:
		return p.parseListLit()
	case token.STRING:
		return p.parseStrLit()
	case token.BOOL:
		t := p.advance()
		return &ast.BoolLit{Value: t.Literal == "True", P: p.position(t)}, nil
	case token.NULL:
		t := p.advance()
		return &ast.NullLit{P: p.position(t)}, nil
	case token.INT, token.PLUS, token.MINUS, token.DOT:
		return p.parseNum()
	default:
		t := p.cur()
		return nil, diag.Syntax(diag.KindUnexpectedToken, diag.Position{Line: t.Line, Column: t.Column},
			"%q does not start a value", t.Literal)
	}
}

// parseListElem is `Var '[' (Int|Var) ']'`.
func (p *Parser) parseListElem() (ast.Expr, diag.Error) {
	nameTok := p.advance()
	if _, err := p.expect(token.LBRACKET); err != nil {
		return nil, err
	}
	var index ast.Expr
	switch p.cur().Kind {
	case token.INT:
		t := p.advance()
		index = &ast.NumLit{IntPart: t.Literal, IsInt: true, P: p.position(t)}
	case token.VAR:
		t := p.advance()
		index = &ast.VarRef{Name: t.Literal, P: p.position(t)}
	default:
		t := p.cur()
		return nil, diag.Syntax(diag.KindUnexpectedToken, diag.Position{Line: t.Line, Column: t.Column},
			"list index must be an integer literal or a variable, got %s", t.Kind)
	}
	if _, err := p.expect(token.RBRACKET); err != nil {
		return nil, err
	}
	return &ast.ListElem{Name: nameTok.Literal, Index: index, P: p.position(nameTok)}, nil
}

// parseListLit is `List → '[' ListExpr? ']'`, `ListExpr → Obj (',' Obj)*`.
func (p *Parser) parseListLit() (ast.Expr, diag.Error) {
	openTok, err := p.expect(token.LBRACKET)
	if err != nil {
		return nil, err
	}
	var elems []ast.Expr
	if p.cur().Kind != token.RBRACKET {
		first, err := p.parseObj()
		if err != nil {
			return nil, err
		}
		elems = append(elems, first)
		for p.cur().Kind == token.COMMA {
			p.advance()
			next, err := p.parseObj()
			if err != nil {
				return nil, err
			}
			elems = append(elems, next)
		}
	}
	if _, err := p.expect(token.RBRACKET); err != nil {
		return nil, err
	}
	return &ast.ListLit{Elements: elems, P: p.position(openTok)}, nil
}

// parseStrLit is `Str → QuotedStr ('+' QuotedStr)*`. A '+' only joins
// another QuotedStr when the token past it is itself a STRING; otherwise
// the '+' belongs to the enclosing Pred and is left for parsePred.
func (p *Parser) parseStrLit() (ast.Expr, diag.Error) {
	first, err := p.parseQuotedStr()
	if err != nil {
		return nil, err
	}
	parts := []*ast.QuotedStr{first}
	for p.cur().Kind == token.PLUS && p.peek().Kind == token.STRING {
		p.advance()
		next, err := p.parseQuotedStr()
		if err != nil {
			return nil, err
		}
		parts = append(parts, next)
	}
	return &ast.StrLit{Parts: parts, P: parts[0].P}, nil
}

// parseQuotedStr is `QuotedStr → RawQuoted (',' Obj)*`.
func (p *Parser) parseQuotedStr() (*ast.QuotedStr, diag.Error) {
	t, err := p.expect(token.STRING)
	if err != nil {
		return nil, err
	}
	raw := t.Literal
	if len(raw) >= 2 {
		raw = raw[1 : len(raw)-1]
	}
	qs := &ast.QuotedStr{Raw: raw, P: p.position(t)}
	for p.cur().Kind == token.COMMA {
		p.advance()
		obj, err := p.parseObj()
		if err != nil {
			return nil, err
		}
		qs.Interpolants = append(qs.Interpolants, obj)
	}
	return qs, nil
}

// parseNum is `Num → ('+'|'-')? Float`, `Float → Int Frac? Exp? | Frac Exp?`.
// The optional sign is folded into Float's parse (rather than gated on an
// integer part being present) so `+.5` and `-.5` parse uniformly.
func (p *Parser) parseNum() (ast.Expr, diag.Error) {
	start := p.cur()
	n := &ast.NumLit{P: p.position(start), IsInt: true}

	if p.cur().Kind == token.PLUS || p.cur().Kind == token.MINUS {
		n.Sign = p.advance().Literal
	}

	switch p.cur().Kind {
	case token.INT:
		n.IntPart = p.advance().Literal
	case token.DOT:
		// bare fraction, no integer part
	default:
		t := p.cur()
		return nil, diag.Syntax(diag.KindUnexpectedToken, diag.Position{Line: t.Line, Column: t.Column},
			"expected a numeric literal, got %s %q", t.Kind, t.Literal)
	}

	if p.cur().Kind == token.DOT {
		p.advance()
		digits, err := p.expect(token.INT)
		if err != nil {
			return nil, err
		}
		n.HasFrac = true
		n.FracDigit = digits.Literal
		n.IsInt = false
	}

	if p.cur().Kind == token.CARET {
		p.advance()
		if p.cur().Kind == token.PLUS || p.cur().Kind == token.MINUS {
			n.ExpSign = p.advance().Literal
		}
		digits, err := p.expect(token.INT)
		if err != nil {
			return nil, err
		}
		n.HasExp = true
		n.ExpDigit = digits.Literal
		n.IsInt = false
	}

	// Reject an integer part that does not fit in an int (the lexer has
	// already ensured it is all digits, so strconv.Atoi fails only on
	// overflow). Fraction and exponent digits are not checked; NumLit keeps
	// every part's verbatim spelling for the emitter.
	if n.IntPart != "" {
		if _, err := strconv.Atoi(n.IntPart); err != nil {
			return nil, diag.Syntax(diag.KindUnexpectedToken, p.position(start), "invalid integer literal %q", n.IntPart)
		}
	}

	return n, nil
}
