package lexer

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/golangsnmp/goyang/internal/types"
	"github.com/golangsnmp/goyang/yang"
)

const eof rune = -1

// Lexer tokenizes YANG source text. It produces tokens on demand and holds
// only its cursor state; once the input is exhausted it returns TokEOF
// forever.
type Lexer struct {
	source string
	pos    int // byte offset of the next rune
	line   int // 1-based line of the next rune
	col    int // 1-based column of the next rune
	types.Logger
}

// New returns a Lexer over source. Pass nil for logger to disable logging.
func New(source string, logger *slog.Logger) *Lexer {
	l := &Lexer{
		source: source,
		line:   1,
		col:    1,
		Logger: types.Logger{L: logger},
	}
	l.Log(slog.LevelDebug, "lexer initialized", slog.Int("bytes", len(source)))
	return l
}

// Tokenize consumes all remaining input and returns the token stream,
// including the final TokEOF.
func (l *Lexer) Tokenize() []Token {
	estimated := max(len(l.source)/6, 16)
	tokens := make([]Token, 0, estimated)
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == TokEOF {
			return tokens
		}
	}
}

// NextToken advances the lexer and returns the next token.
func (l *Lexer) NextToken() Token {
	l.skipWhitespaceAndComments()

	start := l.position()
	switch c := l.peek(); {
	case c == eof:
		return l.token(TokEOF, start)
	case c == '{':
		l.advance()
		return l.token(TokLBrace, start)
	case c == '}':
		l.advance()
		return l.token(TokRBrace, start)
	case c == ';':
		l.advance()
		return l.token(TokSemicolon, start)
	case c == '"':
		return l.scanDoubleQuoted(start)
	case c == '\'':
		return l.scanSingleQuoted(start)
	case c == '+':
		l.advance()
		if l.atDelimiter() {
			return l.token(TokPlus, start)
		}
		return l.scanWordRest(start)
	case !validChar(c):
		l.advance()
		return l.token(TokInvalid, start)
	case isIdentStart(c):
		return l.scanIdentifier(start)
	default:
		l.advance()
		return l.scanWordRest(start)
	}
}

func (l *Lexer) position() yang.Position {
	return yang.Position{Line: l.line, Column: l.col, Offset: l.pos}
}

// token builds a token spanning from start to the current cursor.
func (l *Lexer) token(kind TokenKind, start yang.Position) Token {
	lexeme := l.source[start.Offset:l.pos]
	return l.emit(kind, start, lexeme, lexeme)
}

func (l *Lexer) emit(kind TokenKind, start yang.Position, lexeme, value string) Token {
	tok := Token{
		Kind:   kind,
		Pos:    start,
		Len:    l.pos - start.Offset,
		Lexeme: lexeme,
		Value:  value,
	}
	if l.TraceEnabled() {
		l.Trace("token",
			slog.String("kind", kind.String()),
			slog.Int("line", start.Line),
			slog.Int("col", start.Column),
			slog.Int("len", tok.Len))
	}
	return tok
}

// peek returns but does not consume the next rune, or eof.
func (l *Lexer) peek() rune {
	if l.pos >= len(l.source) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.pos:])
	return r
}

// peekAt returns the rune that starts offset bytes past the cursor.
func (l *Lexer) peekAt(offset int) rune {
	if l.pos+offset >= len(l.source) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.pos+offset:])
	return r
}

// advance consumes and returns the next rune, updating line and column.
func (l *Lexer) advance() rune {
	if l.pos >= len(l.source) {
		return eof
	}
	r, width := utf8.DecodeRuneInString(l.source[l.pos:])
	l.pos += width
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch c := l.peek(); c {
		case ' ', '\t', '\r', '\n':
			l.advance()
		case '/':
			switch l.peekAt(1) {
			case '/':
				for c := l.peek(); c != eof && c != '\n'; c = l.peek() {
					l.advance()
				}
			case '*':
				l.advance()
				l.advance()
				// Block comments do not nest; a missing "*/"
				// silently consumes to end of input.
				for {
					c := l.advance()
					if c == eof {
						return
					}
					if c == '*' && l.peek() == '/' {
						l.advance()
						break
					}
				}
			default:
				return
			}
		default:
			return
		}
	}
}

// atDelimiter reports whether the cursor sits on something that terminates a
// bareword: whitespace, punctuation, a quote, a comment start, end of input,
// or a character outside the permitted ranges.
func (l *Lexer) atDelimiter() bool {
	switch c := l.peek(); c {
	case eof, ' ', '\t', '\r', '\n', ';', '{', '}', '"', '\'':
		return true
	case '/':
		next := l.peekAt(1)
		return next == '/' || next == '*'
	default:
		return !validChar(c)
	}
}

func (l *Lexer) acceptIdentChars() {
	for isIdentChar(l.peek()) {
		l.advance()
	}
}

// scanIdentifier scans a bareword that starts like an identifier. It emits
// an identifier, an identifier-ref, an invalid token for a malformed ref, or
// degrades to a generic string when the run continues with characters an
// identifier cannot contain.
func (l *Lexer) scanIdentifier(start yang.Position) Token {
	l.advance()
	l.acceptIdentChars()

	if l.peek() == ':' {
		l.advance()
		if !isIdentStart(l.peek()) {
			// Malformed ref: the token spans what was consumed.
			return l.token(TokInvalid, start)
		}
		l.advance()
		l.acceptIdentChars()
		if l.atDelimiter() {
			return l.token(TokIdentifierRef, start)
		}
		return l.scanWordRest(start)
	}
	if l.atDelimiter() {
		return l.token(TokIdentifier, start)
	}
	return l.scanWordRest(start)
}

// scanWordRest consumes the remainder of a generic non-punctuator run and
// emits a string token covering everything from start.
func (l *Lexer) scanWordRest(start yang.Position) Token {
	for !l.atDelimiter() {
		l.advance()
	}
	return l.token(TokString, start)
}

// scanDoubleQuoted scans a double-quoted string, expanding the escape
// sequences \n, \t, \" and \\ and stripping the layout indentation of
// multi-line strings per RFC 7950 section 6.1.3: from the second line on, an
// exact prefix of as many spaces as the opening quote's column is removed;
// lines without that exact prefix are left alone.
func (l *Lexer) scanDoubleQuoted(start yang.Position) Token {
	indent := l.col // 1-based column of the opening quote
	l.advance()

	var sb strings.Builder
	for {
		c := l.peek()
		if c == eof {
			return l.token(TokInvalid, start)
		}
		l.advance()
		switch c {
		case '"':
			lexeme := l.source[start.Offset:l.pos]
			return l.emit(TokString, start, lexeme, sb.String())
		case '\\':
			switch l.peek() {
			case 'n':
				sb.WriteByte('\n')
				l.advance()
			case 't':
				sb.WriteByte('\t')
				l.advance()
			case '"':
				sb.WriteByte('"')
				l.advance()
			case '\\':
				sb.WriteByte('\\')
				l.advance()
			default:
				// Unknown escapes keep the backslash verbatim;
				// patterns rely on sequences like \S surviving.
				sb.WriteByte('\\')
			}
		case '\n':
			sb.WriteByte('\n')
			l.stripIndent(indent)
		default:
			sb.WriteRune(c)
		}
	}
}

// stripIndent consumes exactly n leading spaces if they are all present.
func (l *Lexer) stripIndent(n int) {
	if n <= 0 || l.pos+n > len(l.source) {
		return
	}
	for i := 0; i < n; i++ {
		if l.source[l.pos+i] != ' ' {
			return
		}
	}
	for i := 0; i < n; i++ {
		l.advance()
	}
}

// scanSingleQuoted scans a single-quoted string. Content is taken literally:
// no escapes, no indentation stripping.
func (l *Lexer) scanSingleQuoted(start yang.Position) Token {
	l.advance()
	valueStart := l.pos
	for {
		c := l.peek()
		if c == eof {
			return l.token(TokInvalid, start)
		}
		if c == '\'' {
			value := l.source[valueStart:l.pos]
			l.advance()
			lexeme := l.source[start.Offset:l.pos]
			return l.emit(TokString, start, lexeme, value)
		}
		l.advance()
	}
}

func isIdentStart(c rune) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c rune) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9') || c == '.' || c == '-'
}

// validChar reports whether c is within the character ranges RFC 7950
// permits (the XML character set).
func validChar(c rune) bool {
	switch {
	case c == 0x9 || c == 0xA || c == 0xD:
		return true
	case c >= 0x20 && c <= 0xD7FF:
		return true
	case c >= 0xE000 && c <= 0xFFFD:
		return true
	case c >= 0x10000 && c <= 0x10FFFF:
		return true
	default:
		return false
	}
}
