package lexer

// ===== Классификаторы =====
// Только ASCII: не-ASCII буквы дают токен Error.

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || isDec(r)
}

func isDec(r rune) bool { return r >= '0' && r <= '9' }

// isSpace is ASCII whitespace other than '\n', which the cursor tracks itself.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\v', '\f':
		return true
	}
	return false
}
