package lexer

import (
	"github.com/redindelible/adze/internal/diag"
	"github.com/redindelible/adze/internal/source"
)

type Options struct {
	Reporter diag.Reporter // может быть nil, тогда ошибки игнорируем (но продолжаем лексить)
}

func (lx *Lexer) report(code diag.Code, loc source.Location, msg string) {
	lx.errors++
	if lx.opts.Reporter != nil {
		diag.ReportError(lx.opts.Reporter, code, loc, msg).Emit()
	}
}
