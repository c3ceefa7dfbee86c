// Package parser builds the generic YANG statement tree.
//
// The grammar is RFC 7950 section 6.3:
//
//	statement = keyword [argument] (";" / "{" *statement "}")
//
// Keywords are identifiers or prefixed identifier-refs; an argument is a
// single bareword or a sequence of quoted strings joined with "+". Syntax
// errors are fatal: they abort the whole parse and surface as a single
// *SyntaxError carrying the offending token's position. Everything past this
// layer is semantic and non-fatal.
package parser

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/golangsnmp/goyang/internal/lexer"
	"github.com/golangsnmp/goyang/internal/types"
	"github.com/golangsnmp/goyang/yang"
)

// SyntaxError is a fatal parse error.
type SyntaxError struct {
	Source string
	Pos    yang.Position
	Msg    string
}

// Error renders the error in the stable "<line>:<column>:<message>" format.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d:%s", e.Pos.Line, e.Pos.Column, e.Msg)
}

// Diagnostic converts e into a model diagnostic.
func (e *SyntaxError) Diagnostic() yang.Diagnostic {
	return yang.Diagnostic{Severity: yang.SeverityError, Pos: e.Pos, Message: e.Msg}
}

// Parser is a recursive-descent consumer of the token stream.
type Parser struct {
	sourceRef string
	lex       *lexer.Lexer
	tok       lexer.Token // one-token lookahead
	types.Logger
}

// New returns a Parser over source. The sourceRef names where the source
// came from and is recorded on every statement's metadata.
func New(sourceRef, source string, logger *slog.Logger) *Parser {
	lex := lexer.New(source, types.Component(logger, "lexer"))
	p := &Parser{
		sourceRef: sourceRef,
		lex:       lex,
		Logger:    types.Logger{L: logger},
	}
	p.tok = lex.NextToken()
	p.Log(slog.LevelDebug, "parser initialized", slog.String("source", sourceRef))
	return p
}

// Parse consumes the whole input and returns its top-level statements.
func Parse(sourceRef, source string, logger *slog.Logger) ([]*yang.Statement, error) {
	return New(sourceRef, source, logger).Parse()
}

// Parse reads statements until end of input.
func (p *Parser) Parse() ([]*yang.Statement, error) {
	var stmts []*yang.Statement
	for p.tok.Kind != lexer.TokEOF {
		s, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	p.Log(slog.LevelDebug, "parse complete", slog.Int("statements", len(stmts)))
	return stmts, nil
}

func (p *Parser) next() {
	p.tok = p.lex.NextToken()
}

func (p *Parser) syntaxErrorf(tok lexer.Token, format string, args ...any) error {
	return &SyntaxError{
		Source: p.sourceRef,
		Pos:    tok.Pos,
		Msg:    fmt.Sprintf(format, args...),
	}
}

// statement parses one statement, recursing for substatements.
func (p *Parser) statement() (*yang.Statement, error) {
	kw := p.tok
	var prefix, keyword string
	switch kw.Kind {
	case lexer.TokIdentifier:
		keyword = kw.Lexeme
	case lexer.TokIdentifierRef:
		i := strings.IndexByte(kw.Lexeme, ':')
		prefix, keyword = kw.Lexeme[:i], kw.Lexeme[i+1:]
	default:
		return nil, p.syntaxErrorf(kw, "Unexpected %s; expected a statement keyword.", tokenText(kw))
	}
	p.next()

	s := &yang.Statement{
		Prefix:  prefix,
		Keyword: keyword,
		Meta: yang.Metadata{
			Source: p.sourceRef,
			Pos:    kw.Pos,
		},
	}

	switch p.tok.Kind {
	case lexer.TokString:
		arg := p.tok.Value
		p.next()
		// Concatenation per RFC 7950 section 6.1.3.1.
		for p.tok.Kind == lexer.TokPlus {
			p.next()
			if p.tok.Kind != lexer.TokString {
				return nil, p.syntaxErrorf(p.tok, "Unexpected %s; expected a string after '+'.", tokenText(p.tok))
			}
			arg += p.tok.Value
			p.next()
		}
		s.Argument, s.HasArgument = arg, true
	case lexer.TokIdentifier, lexer.TokIdentifierRef:
		// A bareword immediately after the keyword is an unquoted
		// argument.
		s.Argument, s.HasArgument = p.tok.Lexeme, true
		p.next()
	}

	switch p.tok.Kind {
	case lexer.TokSemicolon:
		end := p.tok
		p.next()
		s.Meta.Len = end.Pos.Offset + end.Len - kw.Pos.Offset
		return s, nil
	case lexer.TokLBrace:
		p.next()
		for p.tok.Kind != lexer.TokRBrace {
			if p.tok.Kind == lexer.TokEOF {
				return nil, p.syntaxErrorf(p.tok, "Unexpected end of input; expected '}'.")
			}
			sub, err := p.statement()
			if err != nil {
				return nil, err
			}
			s.Substatements = append(s.Substatements, sub)
		}
		end := p.tok
		p.next()
		s.Meta.Len = end.Pos.Offset + end.Len - kw.Pos.Offset
		return s, nil
	default:
		return nil, p.syntaxErrorf(p.tok, "Unexpected %s; expected ';' or '{'.", tokenText(p.tok))
	}
}

func tokenText(t lexer.Token) string {
	switch t.Kind {
	case lexer.TokEOF:
		return "end of input"
	case lexer.TokInvalid:
		if t.Lexeme == "" {
			return "invalid character"
		}
		return fmt.Sprintf("invalid token %q", t.Lexeme)
	default:
		return fmt.Sprintf("token %q", t.Lexeme)
	}
}
