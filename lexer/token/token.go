// Package token defines Ren's closed token taxonomy: the Kind enumeration,
// the Token value itself, and the reverse-lookup tables (KwOf, SymOf, OpOf,
// IdOf) the lexer's recognisers consult to classify fixed lexemes.
package token

import (
	"fmt"
	"sort"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
)

// Kind is the closed set of token cases Ren's lexer produces.
type Kind int

const (
	// EOF marks the end of input. Participle reserves the value -1 for it.
	EOF Kind = iota - 1
	Number
	String
	Comment
	Keyword
	Symbol
	Operator
	Identifier
	Unknown
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Number:
		return "Number"
	case String:
		return "String"
	case Comment:
		return "Comment"
	case Keyword:
		return "Keyword"
	case Symbol:
		return "Symbol"
	case Operator:
		return "Operator"
	case Identifier:
		return "Identifier"
	case Unknown:
		return "Unknown"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// IdentKind distinguishes the identifier variants the language reference
// enumerates: ordinary lowercase bindings, uppercase type/namespace
// components, and the two sigil-prefixed forms.
type IdentKind int

const (
	Lower IdentKind = iota
	Upper
	Hash // #name
	At   // @name
)

func (k IdentKind) String() string {
	switch k {
	case Lower:
		return "Lower"
	case Upper:
		return "Upper"
	case Hash:
		return "Hash"
	case At:
		return "At"
	default:
		return "IdentKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Token is a single classified lexeme. Value carries the case-specific
// source text: the literal digits of a number, the decoded string contents
// (without quotes, escapes resolved), the comment text, the spelling of a
// keyword/symbol/operator, the identifier's name with any sigil stripped,
// or the raw unknown text. Number and Text hold the decoded payloads for
// the Number and String kinds respectively.
type Token struct {
	Kind   Kind
	Value  string
	Number float64
	Text   string
	Ident  IdentKind
	Pos    lexer.Position
}

func (t Token) String() string {
	val := t.Value
	if len(val) > 24 {
		val = val[:21] + "..."
	}
	return fmt.Sprintf("%s: %s %q", t.Pos, t.Kind, val)
}

// tableEntry backs the three lookup tables. Each table is built once from a
// source-of-truth string set and consulted longest-first so that maximal
// munch holds for multi-character lexemes of varying length (e.g. "=>" must
// never be read as "=" then ">").
type tableEntry struct {
	lexeme string
}

func buildTable(lexemes []string) []tableEntry {
	entries := make([]tableEntry, len(lexemes))
	for i, s := range lexemes {
		entries[i] = tableEntry{lexeme: s}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return len(entries[i].lexeme) > len(entries[j].lexeme)
	})
	return entries
}

// Keywords is the source-of-truth set of reserved words, including the
// import-syntax keywords ("import", "as", "exposing") alongside the core
// binding/control keywords.
var Keywords = []string{
	"let", "in", "if", "then", "else", "fn", "type", "alias",
	"import", "as", "exposing",
	"true", "false",
	"pub", "ext",
}

// Symbols is the source-of-truth set of punctuation symbols.
var Symbols = []string{
	"(", ")", "[", "]", "{", "}", ",", ":", "|",
}

// Operators is the source-of-truth set of operator lexemes. Longer entries
// are tried first so "=>" and ".." are never split into their shorter
// prefixes.
var Operators = []string{
	"..", "=>", "->", "==", "!=", "<=", ">=", "<>",
	"|>", "<|", "&&", "||",
	"+", "-", "*", "/", "%", "=", "<", ">", "!", ".",
}

var (
	keywordTable  = buildTable(Keywords)
	symbolTable   = buildTable(Symbols)
	operatorTable = buildTable(Operators)

	keywordSet = func() map[string]struct{} {
		m := make(map[string]struct{}, len(Keywords))
		for _, k := range Keywords {
			m[k] = struct{}{}
		}
		return m
	}()
)

// KeywordsByLength returns the keyword table's entries longest-first, for
// recognisers that must try candidates in descending-length order.
func KeywordsByLength() []string {
	out := make([]string, len(keywordTable))
	for i, e := range keywordTable {
		out[i] = e.lexeme
	}
	return out
}

// SymbolsByLength returns the symbol table's entries longest-first.
func SymbolsByLength() []string {
	out := make([]string, len(symbolTable))
	for i, e := range symbolTable {
		out[i] = e.lexeme
	}
	return out
}

// OperatorsByLength returns the operator table's entries longest-first.
func OperatorsByLength() []string {
	out := make([]string, len(operatorTable))
	for i, e := range operatorTable {
		out[i] = e.lexeme
	}
	return out
}

// KwOf reports whether s is a reserved word.
func KwOf(s string) bool {
	_, ok := keywordSet[s]
	return ok
}

// SymOf reports whether s is a recognised punctuation symbol.
func SymOf(s string) bool {
	for _, sym := range Symbols {
		if sym == s {
			return true
		}
	}
	return false
}

// OpOf reports whether s is a recognised operator lexeme.
func OpOf(s string) bool {
	for _, op := range Operators {
		if op == s {
			return true
		}
	}
	return false
}

// IdOf classifies an already-matched identifier-shaped string into its
// variant by inspecting the first character class, and rejects reserved
// words (they are Keyword tokens, not Identifier tokens). ok is false if s
// is empty, is a keyword, or starts with a character that names none of the
// identifier variants.
func IdOf(s string) (kind IdentKind, name string, ok bool) {
	if s == "" || KwOf(s) {
		return 0, "", false
	}
	first, _ := utf8.DecodeRuneInString(s)
	switch {
	case first == '#':
		return Hash, s[1:], true
	case first == '@':
		return At, s[1:], true
	case unicode.IsUpper(first):
		return Upper, s, true
	case unicode.IsLower(first):
		return Lower, s, true
	default:
		return 0, "", false
	}
}
