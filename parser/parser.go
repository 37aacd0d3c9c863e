/*
File    : impyc/parser/parser.go
Package parser implements a recursive-descent (LL(1)) parser for this
language's grammar, producing an ast.Program. Grounded on the teacher's
parser.Parser (parser/parser.go) for its cursor shape (CurrToken/NextToken
lookahead fields, forward-only advance), but intentionally NOT grounded on
its Pratt/precedence-climbing dispatch: this grammar's operator precedence
is already baked into production stratification (Expr/Pred/Term), so a
plain recursive descent over the grammar of spec.md §4.2 is the correct
match rather than a unary/binary parse-function table.

The parser fails fast: the first mismatch returns a diag.Error and parsing
stops, rather than the teacher's HasErrors()/GetErrors() multi-error
collection -- spec.md §7's "no recovery, no multiple-error collection"
policy supersedes the teacher's approach here.
*/
package parser

import (
	"github.com/akashmaji946/impyc/ast"
	"github.com/akashmaji946/impyc/diag"
	"github.com/akashmaji946/impyc/token"
)

// Parser holds a forward-only cursor over the whitespace-stripped token
// sequence.
type Parser struct {
	toks []token.Token
	pos  int
}

// New creates a Parser over toks (already filtered of WS tokens, e.g. via
// lexer.Lex).
func New(toks []token.Token) *Parser {
	return &Parser{toks: toks}
}

// Parse parses the whole token sequence into a Program, per spec.md §4.2:
// `Program → (Line Endline)*`.
func Parse(toks []token.Token) (*ast.Program, diag.Error) {
	p := New(toks)
	lines, err := p.parseLines(token.EOF)
	if err != nil {
		return nil, err
	}
	return &ast.Program{Lines: lines, P: ast.Position{Line: 1, Column: 1}}, nil
}

func (p *Parser) cur() token.Token {
	if p.pos >= len(p.toks) {
		return token.Token{Kind: token.EOF}
	}
	return p.toks[p.pos]
}

func (p *Parser) peek() token.Token {
	if p.pos+1 >= len(p.toks) {
		return token.Token{Kind: token.EOF}
	}
	return p.toks[p.pos+1]
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *Parser) position(t token.Token) ast.Position {
	return ast.Position{Line: t.Line, Column: t.Column}
}

// expect consumes the current token if it has the given kind, or returns
// a diag.Syntax error naming both the expected and the actual kind.
func (p *Parser) expect(kind token.Kind) (token.Token, diag.Error) {
	t := p.cur()
	if t.Kind != kind {
		return token.Token{}, diag.Syntax(diag.KindUnexpectedToken, diag.Position{Line: t.Line, Column: t.Column},
			"expected %s, got %s %q", kind, t.Kind, t.Literal)
	}
	return p.advance(), nil
}
