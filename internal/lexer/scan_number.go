package lexer

import (
	"github.com/redindelible/adze/internal/token"
)

// scanNumber берёт максимальную серию десятичных цифр.
// Значение не вычисляется: это делает парсер, он же репортит переполнение.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	for {
		r, sz := lx.cursor.Peek()
		if sz == 0 || !isDec(r) {
			break
		}
		lx.cursor.Bump()
	}
	return token.Token{Kind: token.Integer, Loc: lx.cursor.LocFrom(start), Text: lx.cursor.TextFrom(start)}
}
