package token

var keywords = map[string]Kind{
	"while":  While,
	"if":     If,
	"return": Return,
	"trait":  Trait,
	"fn":     Fn,
	"for":    For,
	"is":     Is,
	"import": Import,
	"struct": Struct,
}

var symbols = map[rune]Kind{
	'<': LAngle,
	'>': RAngle,
	'(': LParen,
	')': RParen,
	'[': LBracket,
	']': RBracket,
	'{': LBrace,
	'}': RBrace,
	'+': Plus,
	'-': Minus,
	'*': Star,
	'/': Slash,
	'%': Percent,
	'=': Equal,
	'~': Tilde,
	'&': Ampersand,
	'|': Pipe,
	'!': Bang,
	'?': Question,
	'.': Dot,
	',': Comma,
	';': Semicolon,
	':': Colon,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// LookupSymbol returns the kind of a single-character symbol.
func LookupSymbol(r rune) (Kind, bool) {
	k, ok := symbols[r]
	return k, ok
}

// Keywords returns a copy of the keyword table.
func Keywords() map[string]Kind {
	out := make(map[string]Kind, len(keywords))
	for s, k := range keywords {
		out[s] = k
	}
	return out
}
