// Package lexer provides tokenization of YANG (RFC 7950) source text.
package lexer

import (
	"github.com/golangsnmp/goyang/yang"
)

// Token is one lexical unit with its source span. Tokens are immutable once
// emitted; the lexer holds only its cursor state.
type Token struct {
	Kind   TokenKind
	Pos    yang.Position // position of the token's first character
	Len    int           // byte length of the raw lexeme
	Lexeme string        // raw source text, including quotes
	Value  string        // decoded text for strings; equals Lexeme otherwise
}

// TokenKind identifies a token type.
type TokenKind int

const (
	// TokInvalid is an unexpected character, a malformed identifier-ref,
	// or an unterminated quoted string.
	TokInvalid TokenKind = iota
	// TokEOF is end of input. The lexer returns it repeatedly once the
	// input is exhausted.
	TokEOF
	// TokLBrace is '{'.
	TokLBrace
	// TokRBrace is '}'.
	TokRBrace
	// TokSemicolon is ';'.
	TokSemicolon
	// TokPlus is the string concatenation operator '+'.
	TokPlus
	// TokIdentifier is a bareword identifier.
	TokIdentifier
	// TokIdentifierRef is a prefixed identifier, "prefix:identifier".
	TokIdentifierRef
	// TokString is a quoted string or any other contiguous run of
	// non-punctuator characters (bare numbers, dates, paths).
	TokString
)

// String returns a short name for k.
func (k TokenKind) String() string {
	switch k {
	case TokInvalid:
		return "invalid"
	case TokEOF:
		return "eof"
	case TokLBrace:
		return "'{'"
	case TokRBrace:
		return "'}'"
	case TokSemicolon:
		return "';'"
	case TokPlus:
		return "'+'"
	case TokIdentifier:
		return "identifier"
	case TokIdentifierRef:
		return "identifier-ref"
	case TokString:
		return "string"
	default:
		return "unknown"
	}
}
