package lexer

import "github.com/ren-lang/renc/lexer/token"

// Coalesce rebuilds tok so that no two adjacent Comment tokens remain and
// no two adjacent Unknown tokens remain. It is a single forward pass with
// a one-token pending accumulator: equivalent to, and simpler than, a
// right fold over the run, since the earlier token in a run becomes the
// left operand of each join, so the newline separator in a merged comment
// ("x" ++ "\n" ++ "y") falls out of ordinary left-to-right string
// concatenation with no need to track fold direction.
//
// All tokens that are neither Comment nor Unknown pass through untouched
// and in their original relative order.
func Coalesce(tokens []token.Token) []token.Token {
	result := make([]token.Token, 0, len(tokens))
	var pending *token.Token

	flush := func() {
		if pending != nil {
			result = append(result, *pending)
			pending = nil
		}
	}

	for i := range tokens {
		t := tokens[i]
		switch {
		case t.Kind == token.Comment && pending != nil && pending.Kind == token.Comment:
			pending.Value = pending.Value + "\n" + t.Value
		case t.Kind == token.Unknown && pending != nil && pending.Kind == token.Unknown:
			pending.Value = pending.Value + t.Value
		case t.Kind == token.Comment || t.Kind == token.Unknown:
			flush()
			tCopy := t
			pending = &tCopy
		default:
			flush()
			result = append(result, t)
		}
	}
	flush()
	return result
}
