package lexer

import (
	"github.com/redindelible/adze/internal/token"
)

// scanIdentOrKeyword сканирует [Ident] и проверяет через LookupKeyword.
// Ключевые слова регистрозависимые. Token.Text ровно исходный срез.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for {
		r, sz := lx.cursor.Peek()
		if sz == 0 || !isIdentContinue(r) {
			break
		}
		lx.cursor.Bump()
	}

	text := lx.cursor.TextFrom(start)
	loc := lx.cursor.LocFrom(start)
	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Loc: loc, Text: text}
	}
	return token.Token{Kind: token.Identifier, Loc: loc, Text: text}
}
