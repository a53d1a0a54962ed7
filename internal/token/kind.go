package token

import "fmt"

// Kind represents the category of a source token.
type Kind uint8

const (
	// Error marks a character the lexer could not classify.
	Error Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Integer represents a decimal integer literal.
	Integer
	// Identifier represents an identifier token.
	Identifier
	// String is reserved for string literals; the lexer does not produce it yet.
	String

	// Return represents the 'return' keyword.
	Return
	// If represents the 'if' keyword.
	If
	// For represents the 'for' keyword.
	For
	// Is represents the 'is' keyword.
	Is
	// While represents the 'while' keyword.
	While
	// Struct represents the 'struct' keyword.
	Struct
	// Import represents the 'import' keyword.
	Import
	// Fn represents the 'fn' keyword.
	Fn
	// Trait represents the 'trait' keyword.
	Trait

	LAngle    // <
	RAngle    // >
	LParen    // (
	RParen    // )
	LBracket  // [
	RBracket  // ]
	LBrace    // {
	RBrace    // }
	Plus      // +
	Minus     // -
	Star      // *
	Slash     // /
	Percent   // %
	Equal     // =
	Tilde     // ~
	Ampersand // &
	Pipe      // |
	Bang      // !
	Question  // ?
	Dot       // .
	Comma     // ,
	Semicolon // ;
	Colon     // :

	kindCount
)

var kindNames = [...]string{
	Error:      "error",
	EOF:        "end of file",
	Integer:    "integer",
	Identifier: "identifier",
	String:     "string",
	Return:     "'return'",
	If:         "'if'",
	For:        "'for'",
	Is:         "'is'",
	While:      "'while'",
	Struct:     "'struct'",
	Import:     "'import'",
	Fn:         "'fn'",
	Trait:      "'trait'",
	LAngle:     "'<'",
	RAngle:     "'>'",
	LParen:     "'('",
	RParen:     "')'",
	LBracket:   "'['",
	RBracket:   "']'",
	LBrace:     "'{'",
	RBrace:     "'}'",
	Plus:       "'+'",
	Minus:      "'-'",
	Star:       "'*'",
	Slash:      "'/'",
	Percent:    "'%'",
	Equal:      "'='",
	Tilde:      "'~'",
	Ampersand:  "'&'",
	Pipe:       "'|'",
	Bang:       "'!'",
	Question:   "'?'",
	Dot:        "'.'",
	Comma:      "','",
	Semicolon:  "';'",
	Colon:      "':'",
}

var kindIdents = [...]string{
	Error:      "Error",
	EOF:        "EOF",
	Integer:    "Integer",
	Identifier: "Identifier",
	String:     "String",
	Return:     "Return",
	If:         "If",
	For:        "For",
	Is:         "Is",
	While:      "While",
	Struct:     "Struct",
	Import:     "Import",
	Fn:         "Fn",
	Trait:      "Trait",
	LAngle:     "LAngle",
	RAngle:     "RAngle",
	LParen:     "LParen",
	RParen:     "RParen",
	LBracket:   "LBracket",
	RBracket:   "RBracket",
	LBrace:     "LBrace",
	RBrace:     "RBrace",
	Plus:       "Plus",
	Minus:      "Minus",
	Star:       "Star",
	Slash:      "Slash",
	Percent:    "Percent",
	Equal:      "Equal",
	Tilde:      "Tilde",
	Ampersand:  "Ampersand",
	Pipe:       "Pipe",
	Bang:       "Bang",
	Question:   "Question",
	Dot:        "Dot",
	Comma:      "Comma",
	Semicolon:  "Semicolon",
	Colon:      "Colon",
}

// String returns the human-facing name used in diagnostics.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Ident returns the Go-style identifier of the kind, used by token dumps.
func (k Kind) Ident() string {
	if k < kindCount {
		return kindIdents[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IsKeyword reports whether k is one of the reserved words.
func (k Kind) IsKeyword() bool {
	return k >= Return && k <= Trait
}

// IsSymbol reports whether k is a single-character punctuation token.
func (k Kind) IsSymbol() bool {
	return k >= LAngle && k <= Colon
}

// IsLiteral reports whether k carries a literal value.
func (k Kind) IsLiteral() bool {
	return k == Integer || k == String
}
