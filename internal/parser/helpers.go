package parser

import (
	"fmt"

	"github.com/redindelible/adze/internal/diag"
	"github.com/redindelible/adze/internal/source"
	"github.com/redindelible/adze/internal/token"
)

func (p *Parser) isDone() bool {
	return p.pos >= len(p.tokens)
}

// current возвращает текущий токен или синтетический EOF за концом.
func (p *Parser) current() token.Token {
	if p.pos >= len(p.tokens) {
		return token.EOFToken(p.file)
	}
	return p.tokens[p.pos]
}

func (p *Parser) peekNext() token.Token {
	if p.pos+1 >= len(p.tokens) {
		return token.EOFToken(p.file)
	}
	return p.tokens[p.pos+1]
}

// advance съедает текущий токен
func (p *Parser) advance() token.Token {
	tok := p.current()
	if !p.isDone() {
		p.pos++
	}
	return tok
}

// expect: только проверка, без побочных эффектов.
func (p *Parser) expect(k token.Kind) bool {
	return p.current().Kind == k
}

// expectPair распознаёт составные операторы ('->', '::') из двух соседних
// токенов: второй не должен иметь пробела перед собой.
func (p *Parser) expectPair(first, second token.Kind) bool {
	next := p.peekNext()
	return p.current().Kind == first && next.Kind == second && !next.LeadingSpace
}

// consume ожидает конкретный токен. Если нет, репортим и синхронизируемся.
func (p *Parser) consume(k token.Kind) (token.Token, error) {
	if p.expect(k) {
		return p.advance(), nil
	}
	cur := p.current()
	p.report(diag.SynUnexpectedToken, cur.Loc, fmt.Sprintf("unexpected token: got %s, expected %s", cur.Kind, k))
	return token.Token{}, p.synchronize()
}

// consumeWithMessage: как consume, но с сообщением от вызывающего.
func (p *Parser) consumeWithMessage(k token.Kind, msg string) (token.Token, error) {
	if p.expect(k) {
		return p.advance(), nil
	}
	p.report(diag.SynExpected, p.current().Loc, msg)
	return token.Token{}, p.synchronize()
}

// consumePair съедает составной оператор; name идёт в сообщение об ошибке.
func (p *Parser) consumePair(first, second token.Kind, name string) (token.Token, token.Token, error) {
	if p.expectPair(first, second) {
		a := p.advance()
		b := p.advance()
		return a, b, nil
	}
	p.report(diag.SynExpected, p.current().Loc, fmt.Sprintf("Expected a %s.", name))
	return token.Token{}, token.Token{}, p.synchronize()
}

func (p *Parser) report(code diag.Code, loc source.Location, msg string) bool {
	p.errors++
	if p.opts.Reporter == nil {
		return false // нет reporter - ничего не записали
	}
	if p.opts.Enough() {
		return false // достигли максимального количества ошибок
	}
	p.opts.CurrentErrors++
	diag.ReportError(p.opts.Reporter, code, loc, msg).Emit()
	return true
}
