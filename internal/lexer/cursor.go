package lexer

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"github.com/redindelible/adze/internal/source"
)

// Cursor представляет собой позицию в файле.
// Off считается в байтах, Line и Col в строках и рунах, чтобы
// Location строился без повторного прохода по строке.
type Cursor struct {
	File  *source.File
	Off   uint32
	Line  int
	Col   int
	Limit uint32
}

// NewCursor creates a new cursor for the provided file.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Text))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{File: f, Limit: limit}
}

// EOF проверяет, достигнут ли конец файла
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek читает текущую руну, если есть, иначе возвращает utf8.RuneError и 0
func (c *Cursor) Peek() (r rune, size int) {
	if c.EOF() {
		return utf8.RuneError, 0
	}
	b := c.File.Text[c.Off]
	if b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRuneInString(c.File.Text[c.Off:])
}

// Bump перемещает курсор на одну руну вперёд, обновляя строку и колонку.
func (c *Cursor) Bump() rune {
	r, sz := c.Peek()
	if sz == 0 {
		return r
	}
	usz, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("bump overflow: %w", err))
	}
	c.Off += usz
	if r == '\n' {
		c.Line++
		c.Col = 0
	} else {
		c.Col++
	}
	return r
}

// Mark это метка, чтобы быстро получать Location читаемого фрагмента
type Mark struct {
	off  uint32
	line int
	col  int
}

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark{off: c.Off, line: c.Line, col: c.Col}
}

// LocFrom получает Location для фрагмента, начиная с метки.
// Токены не пересекают перевод строки, поэтому результат однострочный.
func (c *Cursor) LocFrom(m Mark) source.Location {
	return source.NewLocation(c.File, m.line, m.col, c.Col-m.col)
}

// TextFrom возвращает исходный текст от метки до курсора.
func (c *Cursor) TextFrom(m Mark) string {
	return c.File.Text[m.off:c.Off]
}
