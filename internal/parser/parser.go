package parser

import (
	"github.com/redindelible/adze/internal/ast"
	"github.com/redindelible/adze/internal/diag"
	"github.com/redindelible/adze/internal/source"
	"github.com/redindelible/adze/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// Result of parsing one file. File is never nil: items whose parse failed
// are left out, everything else that was recovered is kept. Callers that
// need an all-or-nothing contract check Errors.
type Result struct {
	File   *ast.File
	Errors uint
}

// Parser: состояние парсера на один файл
type Parser struct {
	file     *source.File
	tokens   []token.Token
	pos      int
	handlers []handler
	opts     Options
	errors   uint
}

// ParseFile: входная точка для разбора одного файла по готовому списку
// токенов (без завершающего EOF).
func ParseFile(file *source.File, tokens []token.Token, opts Options) Result {
	p := New(file, tokens, opts)
	f := p.parseFile()
	return Result{File: f, Errors: p.errors}
}

func New(file *source.File, tokens []token.Token, opts Options) *Parser {
	return &Parser{
		file:   file,
		tokens: tokens,
		opts:   opts,
		// базовый обработчик с пустым множеством: id вложенных равен глубине
		handlers: []handler{{kinds: nil, id: 0}},
	}
}

// parseFile: основной цикл верхнего уровня: каждый TopLevel в своём
// обработчике. Сигнал с id 0 (никто не поймал или токены кончились)
// завершает файл.
func (p *Parser) parseFile() *ast.File {
	f := &ast.File{Source: p.file}
	if len(p.tokens) > 0 {
		f.Location = p.tokens[0].Loc.Combine(p.tokens[len(p.tokens)-1].Loc)
	} else {
		f.Location = source.EOFLocation(p.file)
	}

	for !p.isDone() {
		err := p.catch(topLevelStarters, func() error {
			item, err := p.parseTopLevel()
			if err != nil {
				return err
			}
			f.Items = append(f.Items, item)
			return nil
		})
		if err != nil {
			break
		}
	}
	return f
}

var topLevelStarters = []token.Kind{token.Struct, token.Fn, token.Import}

// parseTopLevel выбирает по первому токену нужный распознаватель.
func (p *Parser) parseTopLevel() (ast.TopLevel, error) {
	switch p.current().Kind {
	case token.Struct:
		return p.parseStruct()
	case token.Fn:
		return p.parseFunction()
	case token.Import:
		return p.parseImport()
	default:
		p.report(diag.SynUnexpectedTopLevel, p.current().Loc, "Expected the start of a struct, function, or import.")
		return nil, p.synchronize()
	}
}
