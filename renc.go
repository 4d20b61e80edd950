// Package renc is the Ren compiler front-end's lexical-analysis entry
// point: it threads source text through the scanner (github.com/ren-lang/renc/lexer)
// and the coalesce pass, and maps any scan failure to a single opaque
// failure value.
//
// The parser, AST, and JavaScript code generator that would consume this
// package's output are out of scope here; so is any CLI build driver (see
// cmd/renlex for the thin dump tool that drives the lexer directly).
package renc

import (
	"errors"
	"fmt"

	"github.com/ren-lang/renc/lexer"
	"github.com/ren-lang/renc/lexer/token"
)

// ErrLex is the opaque failure value Lex returns on any scan failure. The
// lexer reports no structured diagnostic — only total success or failure —
// so every internal error collapses to this sentinel. Use
// errors.Is(err, ErrLex) to detect it. The internal cause is included only
// as text in the error message (e.g. for logging); it is not wrapped, so
// errors.Unwrap yields ErrLex itself, and the message's shape is
// unspecified.
var ErrLex = errors.New("lex: scan failed")

// Token is the public name for a single classified lexeme; see
// github.com/ren-lang/renc/lexer/token for the full Kind/IdentKind
// taxonomy and the Number/String/Comment/Keyword/Symbol/Operator/
// Identifier/Unknown payload fields.
type Token = token.Token

// Tokens is an ordered, coalesced token stream: no two adjacent tokens are
// both Comment, no two adjacent tokens are both Unknown, and every other
// token appears in the order the scanner produced it.
type Tokens = []token.Token

// Lex tokenises source and coalesces the result. On any scan failure it
// returns a nil stream and an error wrapping ErrLex; on success it returns
// every token the source contains, in source order, with comment runs and
// unknown-character runs merged.
func Lex(source string) (Tokens, error) {
	toks, err := lexer.Lex("", source)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLex, err)
	}
	return toks, nil
}
