package parser

import (
	"errors"
	"fmt"
	"slices"

	"github.com/redindelible/adze/internal/token"
)

// handler: точка восстановления: токены, на которых можно продолжить
// разбор, и id, равный глубине в стеке.
type handler struct {
	kinds []token.Kind
	id    int
}

// syncError поднимается от места ошибки до catch с тем же id.
// Промежуточные функции возвращают его как есть.
type syncError struct {
	handler int
}

func (e syncError) Error() string {
	return fmt.Sprintf("parser: unwinding to handler %d", e.handler)
}

// catch запускает fn под новым обработчиком. Сигнал для этого обработчика
// проглатывается; остальные ошибки уходят выше.
func (p *Parser) catch(kinds []token.Kind, fn func() error) error {
	id := len(p.handlers)
	p.handlers = append(p.handlers, handler{kinds: kinds, id: id})
	defer func() { p.handlers = p.handlers[:len(p.handlers)-1] }()

	err := fn()
	var se syncError
	if errors.As(err, &se) && se.handler == id {
		return nil
	}
	return err
}

// synchronize пропускает токены до первого, который принимает какой-нибудь
// обработчик. Стек просматривается в порядке хранения, токен не съедается.
// Если токены кончились, сигнал 0.
func (p *Parser) synchronize() error {
	for !p.isDone() {
		kind := p.current().Kind
		for _, h := range p.handlers {
			if slices.Contains(h.kinds, kind) {
				return syncError{handler: h.id}
			}
		}
		p.advance()
	}
	return syncError{handler: 0}
}
