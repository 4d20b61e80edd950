// Package lexer turns Ren source text into a token stream. It is a pure,
// single-threaded, backtracking recursive-descent scanner over a character
// cursor: no shared state, no I/O, no suspension points. Instances share no
// data and are trivially reentrant — a caller lexing several files
// concurrently simply constructs one *Lexer per file on its own goroutine.
package lexer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	plex "github.com/alecthomas/participle/v2/lexer"
	"github.com/ren-lang/renc/lexer/token"
)

const eof = -1

// Lexer holds the cursor over a single source buffer. The entire buffer is
// borrowed read-only for the lifetime of the Lexer; tokens hold either
// substrings of it or newly built strings, and since Go strings are
// immutable either kind outlives the borrow.
type Lexer struct {
	filename string
	input    string

	pos, width int
	line, col  int
	start      int
	startLine  int
	startCol   int
}

// NewLexer constructs a lexer over input. filename is carried into token
// positions and is purely advisory (participle's Position.Filename).
func NewLexer(filename, input string) *Lexer {
	return &Lexer{filename: filename, input: input, line: 1, col: 1, startLine: 1, startCol: 1}
}

// snapshot captures enough cursor state to undo a committed, failed
// backtrackable attempt. No unbounded buffering is required: a single
// snapshot is restored at the point a recogniser gives up.
type snapshot struct {
	pos, width, line, col int
}

func (l *Lexer) snapshot() snapshot {
	return snapshot{l.pos, l.width, l.line, l.col}
}

func (l *Lexer) restore(s snapshot) {
	l.pos, l.width, l.line, l.col = s.pos, s.width, s.line, s.col
}

// try runs a backtrackable recogniser: on failure, the cursor is restored
// to its pre-attempt position so the next alternative may try the same
// characters, per the "backtrackable recogniser" contract.
func (l *Lexer) try(f func() bool) bool {
	snap := l.snapshot()
	if f() {
		return true
	}
	l.restore(snap)
	return false
}

// --- scanner primitives ---

// next consumes and returns the next rune, or eof at end of input.
func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = w
	l.pos += w
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

// peek returns the next rune without consuming it.
func (l *Lexer) peek() rune {
	if l.pos >= len(l.input) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	return r
}

// peekAt returns the rune n runes ahead of the cursor without consuming
// anything, or eof if that runs past the end of input.
func (l *Lexer) peekAt(n int) rune {
	pos := l.pos
	for i := 0; i < n; i++ {
		if pos >= len(l.input) {
			return eof
		}
		_, w := utf8.DecodeRuneInString(l.input[pos:])
		pos += w
	}
	if pos >= len(l.input) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(l.input[pos:])
	return r
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.input)
}

// literal consumes exactly s or fails without advancing the cursor.
func (l *Lexer) literal(s string) bool {
	if !strings.HasPrefix(l.input[l.pos:], s) {
		return false
	}
	for range s {
		l.next()
	}
	return true
}

// chompIf consumes one rune satisfying pred, or fails without advancing.
func (l *Lexer) chompIf(pred func(rune) bool) bool {
	if pred(l.peek()) {
		l.next()
		return true
	}
	return false
}

// chompWhile consumes zero or more runes satisfying pred. It never fails.
func (l *Lexer) chompWhile(pred func(rune) bool) {
	for pred(l.peek()) {
		l.next()
	}
}

// chompUntilEndOr consumes runes until the next occurrence of s or
// end-of-input, whichever comes first. It never fails.
func (l *Lexer) chompUntilEndOr(s string) {
	for !l.atEnd() && !strings.HasPrefix(l.input[l.pos:], s) {
		l.next()
	}
}

// getChompedString runs p and returns the text it consumed.
func (l *Lexer) getChompedString(p func() bool) (string, bool) {
	start := l.pos
	ok := p()
	return l.input[start:l.pos], ok
}

// spaces consumes a run of whitespace. It never fails.
func (l *Lexer) spaces() {
	l.chompWhile(unicode.IsSpace)
}

// markStart records the cursor position as the start of the next token,
// for use by the recogniser that ends up emitting it.
func (l *Lexer) markStart() {
	l.start, l.startLine, l.startCol = l.pos, l.line, l.col
}

// --- token recognisers, tried in order by token() ---

func isIdentStart(r rune) bool { return unicode.IsLetter(r) }
func isIdentCont(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// number recognises an integer or float literal, widened to float64.
// Backtrackable: a leading digit does not commit until a full number has
// been confirmed. Hex/octal/binary prefixes are not special-cased: "0x1A"
// simply lexes as the decimal Number 0 followed by the identifier "x1A".
func (l *Lexer) number() (token.Token, bool) {
	var tok token.Token
	ok := l.try(func() bool {
		if !isDigit(l.peek()) {
			return false
		}
		text, _ := l.getChompedString(func() bool {
			l.chompWhile(isDigit)
			if l.peek() == '.' && isDigit(l.peekAt(1)) {
				l.next() // consume '.'
				l.chompWhile(isDigit)
			}
			return true
		})
		tok = token.Token{Kind: token.Number, Value: text, Number: parseFloat(text)}
		return true
	})
	return tok, ok
}

// string_ recognises a double-quoted literal. Not backtrackable: the
// opening quote is unambiguous, so once consumed any failure (unterminated
// literal, unrecognised escape) is a hard lexer error.
func (l *Lexer) string_() (token.Token, bool, error) {
	if l.peek() != '"' {
		return token.Token{}, false, nil
	}
	l.next() // consume opening quote

	var b strings.Builder
	for {
		r := l.next()
		switch r {
		case eof:
			return token.Token{}, false, fmt.Errorf("unterminated string literal")
		case '"':
			return token.Token{Kind: token.String, Text: b.String(), Value: b.String()}, true, nil
		case '\\':
			switch l.next() {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case eof:
				return token.Token{}, false, fmt.Errorf("unterminated escape sequence in string literal")
			default:
				return token.Token{}, false, fmt.Errorf("unrecognised escape sequence in string literal")
			}
		default:
			b.WriteRune(r)
		}
	}
}

// keyword is backtrackable: it tries each reserved word in descending
// length order, requiring a non-identifier boundary afterward so a longer
// identifier sharing a keyword's prefix (e.g. "lets") is never truncated.
func (l *Lexer) keyword() (token.Token, bool) {
	for _, kw := range token.KeywordsByLength() {
		matched := l.try(func() bool {
			if !l.literal(kw) {
				return false
			}
			return !isIdentCont(l.peek())
		})
		if matched {
			return token.Token{Kind: token.Keyword, Value: kw}, true
		}
	}
	return token.Token{}, false
}

// comment recognises "//" followed by chomping to end-of-line or
// end-of-input. Not backtrackable: "//" is unambiguous and chompUntilEndOr
// never fails. The payload includes the leading "//".
func (l *Lexer) comment() (token.Token, bool) {
	textStart := l.pos
	if !l.literal("//") {
		return token.Token{}, false
	}
	l.chompUntilEndOr("\n")
	return token.Token{Kind: token.Comment, Value: l.input[textStart:l.pos]}, true
}

// operator is backtrackable, tried longest-first against the operator
// table so "=>" always wins over "=" followed by ">".
func (l *Lexer) operator() (token.Token, bool) {
	for _, op := range token.OperatorsByLength() {
		if l.try(func() bool { return l.literal(op) }) {
			return token.Token{Kind: token.Operator, Value: op}, true
		}
	}
	return token.Token{}, false
}

// symbol is backtrackable, tried longest-first against the symbol table.
func (l *Lexer) symbol() (token.Token, bool) {
	for _, sym := range token.SymbolsByLength() {
		if l.try(func() bool { return l.literal(sym) }) {
			return token.Token{Kind: token.Symbol, Value: sym}, true
		}
	}
	return token.Token{}, false
}

// identifier recognises an uppercase- or lowercase-initial name, or a
// hash-/at-prefixed variant, and classifies it with token.IdOf. It fails
// (rather than emitting) if the matched text turns out to be a reserved
// word, which cannot actually occur here since keyword() already claims
// every reserved word at a token boundary before identifier() runs.
func (l *Lexer) identifier() (token.Token, bool) {
	var tok token.Token
	ok := l.try(func() bool {
		full, _ := l.getChompedString(func() bool {
			if l.peek() == '#' || l.peek() == '@' {
				l.next()
			}
			if !l.chompIf(isIdentStart) {
				return false
			}
			l.chompWhile(isIdentCont)
			return true
		})
		if full == "" {
			return false
		}
		kind, name, ok := token.IdOf(full)
		if !ok {
			return false
		}
		tok = token.Token{Kind: token.Identifier, Value: name, Ident: kind}
		return true
	})
	return tok, ok
}

// unknown never fails while input remains: it consumes exactly one
// character and wraps it, guaranteeing the scanner always makes progress.
func (l *Lexer) unknown() (token.Token, bool) {
	if l.atEnd() {
		return token.Token{}, false
	}
	r := l.next()
	return token.Token{Kind: token.Unknown, Value: string(r)}, true
}

// token tries each recogniser in priority order, returning the first match.
func (l *Lexer) token() (token.Token, error) {
	l.markStart()

	if tok, ok := l.number(); ok {
		return l.withPos(tok), nil
	}
	if tok, ok, err := l.string_(); err != nil {
		return token.Token{}, l.errAt(err)
	} else if ok {
		return l.withPos(tok), nil
	}
	if tok, ok := l.keyword(); ok {
		return l.withPos(tok), nil
	}
	if tok, ok := l.comment(); ok {
		return l.withPos(tok), nil
	}
	if tok, ok := l.operator(); ok {
		return l.withPos(tok), nil
	}
	if tok, ok := l.symbol(); ok {
		return l.withPos(tok), nil
	}
	if tok, ok := l.identifier(); ok {
		return l.withPos(tok), nil
	}
	if tok, ok := l.unknown(); ok {
		return l.withPos(tok), nil
	}
	return token.Token{}, l.errAt(fmt.Errorf("end: no input remains"))
}

func (l *Lexer) withPos(tok token.Token) token.Token {
	tok.Pos = l.position()
	return tok
}

func (l *Lexer) position() plex.Position {
	return plex.Position{Filename: l.filename, Offset: l.start, Line: l.startLine, Column: l.startCol}
}

func (l *Lexer) errAt(err error) error {
	return fmt.Errorf("%s: %w", l.position(), err)
}

// Stream runs the stream driver: optional leading whitespace, then zero or
// more (token, trailing whitespace) pairs, then end-of-input.
// Whitespace between tokens is discarded; no whitespace tokens are
// produced. The returned slice is in source order and has not yet been
// coalesced.
func (l *Lexer) Stream() ([]token.Token, error) {
	var tokens []token.Token
	l.spaces()
	for !l.atEnd() {
		tok, err := l.token()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		l.spaces()
	}
	return tokens, nil
}

// parseFloat widens a decimal integer-or-float lexeme to float64. text is
// already known to match [0-9]+('.'[0-9]+)?, so the only possible error is
// magnitude overflow, for which strconv returns +Inf together with a range
// error; the error is discarded and +Inf is kept.
func parseFloat(text string) float64 {
	n, _ := strconv.ParseFloat(text, 64)
	return n
}
