package lexer

import (
	"github.com/redindelible/adze/internal/source"
	"github.com/redindelible/adze/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1 элементный буфер для токена
	errors int
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next возвращает следующий токен с выставленным LeadingSpace.
// После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	// 1) Если есть look, вернуть его и очистить
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	// 2) Пропустить пробелы и переводы строк, запомнив факт
	space := lx.skipSpace()

	// 3) EOF
	if lx.cursor.EOF() {
		return token.EOFToken(lx.file)
	}

	// 4) Посмотреть текущую руну и выбрать сканер
	r, _ := lx.cursor.Peek()
	var tok token.Token
	switch {
	case isIdentStart(r):
		tok = lx.scanIdentOrKeyword()
	case isDec(r):
		tok = lx.scanNumber()
	default:
		// иначе → scanOperatorOrPunct() (включая неизвестные символы)
		tok = lx.scanOperatorOrPunct()
	}

	tok.LeadingSpace = space
	return tok
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Errors returns the number of lexical errors reported so far.
func (lx *Lexer) Errors() int {
	return lx.errors
}

func (lx *Lexer) skipSpace() bool {
	skipped := false
	for {
		r, sz := lx.cursor.Peek()
		if sz == 0 || (r != '\n' && !isSpace(r)) {
			return skipped
		}
		lx.cursor.Bump()
		skipped = true
	}
}

// Tokenize lexes the whole file. The returned slice does not include the
// trailing EOF token; the parser synthesizes it. Lexing never stops early:
// every unexpected character yields an Error token and one diagnostic.
func Tokenize(file *source.File, opts Options) (tokens []token.Token, errors int) {
	lx := New(file, opts)
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens, lx.Errors()
}
