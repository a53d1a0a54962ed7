// Package token defines lexical token kinds for the adze front end.
// Invariants:
//   - Token.Text is an owned copy of the matched source text.
//   - Token.Loc covers Text exactly and never crosses a line.
//   - Multi-character operators ('->', '::') are not tokens: the parser
//     recognises them from adjacent single-character tokens using
//     Token.LeadingSpace.
//   - Error tokens are emitted for unrecognised characters so that the token
//     stream stays complete even when lexing fails.
package token
