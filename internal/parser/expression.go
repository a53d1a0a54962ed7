package parser

import (
	"fmt"
	"strconv"

	"github.com/redindelible/adze/internal/ast"
	"github.com/redindelible/adze/internal/diag"
	"github.com/redindelible/adze/internal/token"
)

// parseExpr: Block | Terminal
func (p *Parser) parseExpr() (ast.Expr, error) {
	if p.expect(token.LBrace) {
		return p.parseBlock()
	}
	return p.parseTerminal()
}

// parseTerminal: Integer | QualName | '(' Expr ')'.
// Скобки узла не создают, выражение сохраняет свой span.
func (p *Parser) parseTerminal() (ast.Expr, error) {
	cur := p.current()
	switch cur.Kind {
	case token.Integer:
		p.advance()
		value, err := strconv.ParseUint(cur.Text, 10, 64)
		if err != nil {
			p.report(diag.SynBadLiteral, cur.Loc, fmt.Sprintf("could not parse literal %q", cur.Text))
			return nil, p.synchronize()
		}
		return &ast.IntegerExpr{Value: value, Text: cur.Text, Location: cur.Loc}, nil
	case token.Identifier:
		name, err := p.parseQualName()
		if err != nil {
			return nil, err
		}
		return &ast.NameExpr{Name: name, Location: name.Loc()}, nil
	case token.LParen:
		p.advance()
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err = p.consume(token.RParen); err != nil {
			return nil, err
		}
		return x, nil
	default:
		p.report(diag.SynExpected, cur.Loc, "Expected an expression.")
		return nil, p.synchronize()
	}
}
