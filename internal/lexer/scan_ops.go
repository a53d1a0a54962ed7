package lexer

import (
	"fmt"

	"github.com/redindelible/adze/internal/diag"
	"github.com/redindelible/adze/internal/token"
)

// scanOperatorOrPunct читает ровно один символ. Составные операторы
// ('->', '::') лексер не склеивает: парсер собирает их из пар соседних
// токенов по LeadingSpace.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	r := lx.cursor.Bump()
	loc := lx.cursor.LocFrom(start)
	text := lx.cursor.TextFrom(start)

	if k, ok := token.LookupSymbol(r); ok {
		return token.Token{Kind: k, Loc: loc, Text: text}
	}

	lx.report(diag.LexUnexpectedChar, loc, fmt.Sprintf("unexpected character %q", r))
	return token.Token{Kind: token.Error, Loc: loc, Text: text}
}
