package token

import (
	"testing"
)

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]Kind{
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

	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
	if len(Keywords()) != len(cases) {
		t.Fatalf("keyword table has %d entries, want %d", len(Keywords()), len(cases))
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	// Заведомо НЕ ключевые слова
	notKw := []string{
		"Fn", "STRUCT", "Return", // регистр важен
		"let", "else", "Int",
		"identifier", "fnx", "_fn",
	}
	for _, s := range notKw {
		if _, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}

func TestLookupSymbol(t *testing.T) {
	for _, r := range "<>()[]{}+-*/%=~&|!?.,;:" {
		k, ok := LookupSymbol(r)
		if !ok || !k.IsSymbol() {
			t.Fatalf("LookupSymbol(%q) = %v, %v", r, k, ok)
		}
	}
	for _, r := range "@#$^`\"'\\" {
		if k, ok := LookupSymbol(r); ok {
			t.Fatalf("LookupSymbol(%q) = %v, want not found", r, k)
		}
	}
}
