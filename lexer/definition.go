package lexer

import (
	"io"

	plex "github.com/alecthomas/participle/v2/lexer"
	"github.com/ren-lang/renc/lexer/token"
)

// streamLexer adapts a pre-computed, coalesced token.Token slice to
// participle's lexer.Lexer interface (a single Next() method), the same
// contract the teacher's gosmi lexer implements directly against its
// character cursor. Adapting the finished slice rather than the cursor
// keeps coalescing — which needs the whole stream at once — out of the
// incremental Next() protocol participle expects.
type streamLexer struct {
	tokens []token.Token
	pos    int
	eofPos plex.Position
}

func (s *streamLexer) Next() (plex.Token, error) {
	if s.pos >= len(s.tokens) {
		return plex.Token{Type: plex.EOF, Pos: s.eofPos}, nil
	}
	t := s.tokens[s.pos]
	s.pos++
	return plex.Token{Type: plex.TokenType(t.Kind), Value: t.Value, Pos: t.Pos}, nil
}

// Definition implements participle's lexer.Definition so a future Ren
// parser can consume this package's token stream with no adapter code of
// its own, mirroring the posture gosmi's lexer.LexerDefinition takes
// toward its own downstream participle parser. Building that parser is out
// of scope; only the producer contract is implemented.
type Definition struct{}

var (
	_ plex.Definition = Definition{}
	_ plex.Lexer      = (*streamLexer)(nil)
)

func (Definition) Lex(filename string, r io.Reader) (plex.Lexer, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Definition{}.LexBytes(filename, b)
}

func (Definition) LexString(filename, input string) (plex.Lexer, error) {
	toks, err := Lex(filename, input)
	if err != nil {
		return nil, err
	}
	return &streamLexer{tokens: toks, eofPos: plex.Position{Filename: filename}}, nil
}

func (d Definition) LexBytes(filename string, input []byte) (plex.Lexer, error) {
	return d.LexString(filename, string(input))
}

func (Definition) Symbols() map[string]plex.TokenType {
	return map[string]plex.TokenType{
		"EOF":        plex.TokenType(token.EOF),
		"Number":     plex.TokenType(token.Number),
		"String":     plex.TokenType(token.String),
		"Comment":    plex.TokenType(token.Comment),
		"Keyword":    plex.TokenType(token.Keyword),
		"Symbol":     plex.TokenType(token.Symbol),
		"Operator":   plex.TokenType(token.Operator),
		"Identifier": plex.TokenType(token.Identifier),
		"Unknown":    plex.TokenType(token.Unknown),
	}
}

// Lex runs the stream driver and the coalesce pass over input: the
// top-level entry point that threads raw text through the scanner and
// then the coalesce pass.
func Lex(filename, input string) ([]token.Token, error) {
	toks, err := NewLexer(filename, input).Stream()
	if err != nil {
		return nil, err
	}
	return Coalesce(toks), nil
}
