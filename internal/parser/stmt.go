package parser

import (
	"github.com/redindelible/adze/internal/ast"
	"github.com/redindelible/adze/internal/token"
)

// точки возобновления внутри блока
var stmtResume = []token.Kind{token.Semicolon, token.RBrace, token.Return}

// parseBlock: '{' Stmt* '}'. Каждый оператор разбирается в своём
// обработчике, так что ошибка в одном не роняет весь блок.
func (p *Parser) parseBlock() (*ast.Block, error) {
	start, err := p.consume(token.LBrace)
	if err != nil {
		return nil, err
	}
	stmts := []ast.Stmt{}
	for !p.expect(token.RBrace) && !p.isDone() {
		err := p.catch(stmtResume, func() error {
			stmt, err := p.parseStmt()
			if err != nil {
				return err
			}
			stmts = append(stmts, stmt)
			return nil
		})
		if err != nil {
			return nil, err
		}
		// после восстановления пропускаем ';' повреждённого оператора
		if p.expect(token.Semicolon) {
			p.advance()
		}
	}
	end, err := p.consume(token.RBrace)
	if err != nil {
		return nil, err
	}
	return &ast.Block{Stmts: stmts, Location: start.Loc.Combine(end.Loc)}, nil
}

// parseStmt: 'return' Expr ';' | Expr ';'
func (p *Parser) parseStmt() (ast.Stmt, error) {
	if p.expect(token.Return) {
		start := p.advance()
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		end, err := p.consume(token.Semicolon)
		if err != nil {
			return nil, err
		}
		return &ast.ReturnStmt{Value: value, Location: start.Loc.Combine(end.Loc)}, nil
	}

	x, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	end, err := p.consume(token.Semicolon)
	if err != nil {
		return nil, err
	}
	return &ast.ExprStmt{X: x, Location: x.Loc().Combine(end.Loc)}, nil
}
