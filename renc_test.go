package renc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ren-lang/renc/lexer"
	"github.com/ren-lang/renc/lexer/token"
)

// kinds extracts the Kind of each token, for compact sequence assertions.
func kinds(toks Tokens) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestLexScenarioA(t *testing.T) {
	toks, err := Lex("let x = 10")
	require.NoError(t, err)
	require.Len(t, toks, 4)
	assert.Equal(t, []token.Kind{token.Keyword, token.Identifier, token.Operator, token.Number}, kinds(toks))
	assert.InDelta(t, 10.0, toks[3].Number, 1e-9)
}

func TestLexScenarioB(t *testing.T) {
	toks, err := Lex("// a\n// b\nlet x = 1")
	require.NoError(t, err)
	require.Len(t, toks, 5)
	assert.Equal(t, token.Comment, toks[0].Kind)
	assert.Equal(t, "// a\n// b", toks[0].Value)
	assert.Equal(t, []token.Kind{token.Comment, token.Keyword, token.Identifier, token.Operator, token.Number}, kinds(toks))
}

func TestLexScenarioC(t *testing.T) {
	toks, err := Lex("\"hi\nthere\"")
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, token.String, toks[0].Kind)
	assert.Equal(t, "hi\nthere", toks[0].Text)
}

func TestLexScenarioD(t *testing.T) {
	toks, err := Lex("[ 1, 2, 3 ]")
	require.NoError(t, err)
	want := []token.Kind{
		token.Symbol, token.Number, token.Symbol, token.Number,
		token.Symbol, token.Number, token.Symbol,
	}
	assert.Equal(t, want, kinds(toks))
}

func TestLexScenarioE(t *testing.T) {
	toks, err := Lex("$€")
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, token.Unknown, toks[0].Kind)
	assert.Equal(t, "$€", toks[0].Value)
}

func TestLexScenarioF(t *testing.T) {
	toks, err := Lex("a => a + 1")
	require.NoError(t, err)
	want := []token.Kind{token.Identifier, token.Operator, token.Identifier, token.Operator, token.Number}
	assert.Equal(t, want, kinds(toks))
	assert.Equal(t, "=>", toks[1].Value)
}

func TestLexEmptyInput(t *testing.T) {
	toks, err := Lex("")
	require.NoError(t, err)
	assert.Empty(t, toks)
}

func TestLexWhitespaceOnlyInput(t *testing.T) {
	toks, err := Lex("   \n\t\r  ")
	require.NoError(t, err)
	assert.Empty(t, toks)
}

func TestLexMaximalMunchArrow(t *testing.T) {
	toks, err := Lex("=>")
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, "=>", toks[0].Value)
}

func TestLexKeywordVsIdentifierVsUppercase(t *testing.T) {
	toks, err := Lex("let lets LET")
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, token.Keyword, toks[0].Kind)
	assert.Equal(t, token.Identifier, toks[1].Kind)
	assert.Equal(t, token.Lower, toks[1].Ident)
	assert.Equal(t, token.Identifier, toks[2].Kind)
	assert.Equal(t, token.Upper, toks[2].Ident)
}

func TestLexFailsOnUnknownEscape(t *testing.T) {
	_, err := Lex(`"bad \q escape"`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLex))
}

// TestLexNoAdjacentCommentsOrUnknowns asserts invariants 3 and 4 of the
// testable-properties section across a handful of inputs that would
// produce runs of each if coalescing were skipped.
func TestLexNoAdjacentCommentsOrUnknowns(t *testing.T) {
	inputs := []string{
		"// a\n// b\n// c\nlet x = 1",
		"$%^&",
		"let // a\n// b\n x",
	}
	for _, in := range inputs {
		toks, err := Lex(in)
		require.NoError(t, err)
		for i := 1; i < len(toks); i++ {
			if toks[i-1].Kind == token.Comment {
				assert.NotEqual(t, token.Comment, toks[i].Kind, "adjacent comments in %q", in)
			}
			if toks[i-1].Kind == token.Unknown {
				assert.NotEqual(t, token.Unknown, toks[i].Kind, "adjacent unknowns in %q", in)
			}
		}
	}
}

// TestLexCoalesceIsIdempotent exercises invariant 6: running the coalesce
// pass again over an already-coalesced stream changes nothing, verified
// here by running lexer.Coalesce over Lex's output and comparing.
func TestLexCoalesceIsIdempotent(t *testing.T) {
	const src = "// a\n// b\nlet x = 1 $%"
	first, err := Lex(src)
	require.NoError(t, err)
	require.NotEmpty(t, first)
	second := lexer.Coalesce(first)
	assert.Equal(t, first, second)
}

func TestLexTerminates(t *testing.T) {
	// A battery of inputs that historically trip up hand-rolled lexers:
	// lone sigils, dangling operators, unterminated-looking (but legal)
	// comments, and an unterminated string.
	inputs := []string{"", " ", "#", "@", "-", "..", "=>", "let", "//", "\"", "a-b", "1.", ".1"}
	for _, in := range inputs {
		_, _ = Lex(in) // must not hang or panic regardless of success/failure
	}
}
