// Package parsec provides a typed parser combinator engine for Go.
//
// Parsers are built from three layers:
//   - neu: per-element matchers over runes or bytes (character classes,
//     ranges, set membership, boolean algebra)
//   - regex: recognisers that consume input and report a matched span
//     (literals, repetition, sequencing, alternation, look-around)
//   - ctor: constructors that turn matched spans into typed values
//     (substring extraction, mapping, pairing, collection, recursion)
//
// Matching is transactional: a failed parser rewinds the input cursor to
// where it started, so alternatives compose without manual bookkeeping.
//
// Basic usage:
//
//	// Parse a decimal number from a string.
//	c := parsec.NewChars("42 items")
//	digits := regex.NewMany1[*ctx.Chars](neu.Digit[rune]())
//	num, err := parsec.Invoke[*ctx.Chars, int](c, parsec.MapMat[*ctx.Chars](digits, conv.FromStr[int]()))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// num == 42, c.Offset() == 2
package parsec

import (
	"github.com/coregx/parsec/ctor"
	"github.com/coregx/parsec/ctx"
	"github.com/coregx/parsec/span"
)

// Span is the location of a match in the input.
type Span = span.Span

// NewChars creates a rune-oriented parsing context over a string.
// Offsets and spans are byte positions in the string.
func NewChars(dat string) *ctx.Chars {
	return ctx.NewChars(dat)
}

// NewBytes creates a byte-oriented parsing context over a slice.
func NewBytes(dat []byte) *ctx.Bytes {
	return ctx.NewBytes(dat)
}

// TryMat runs a recogniser against the context, advancing past the match
// on success and leaving the cursor untouched on failure.
func TryMat[C ctx.Policy[C]](c C, pat ctx.Regex[C]) (Span, error) {
	return c.TryMat(pat)
}

// Invoke runs a constructor against the context and returns its value.
// The cursor is advanced on success and rewound on failure.
func Invoke[C ctx.Policy[C], O any](c C, pat ctor.Ctor[C, O]) (O, error) {
	g := ctx.NewGuard(c)
	defer g.Drop()
	v, err := pat.Construct(c)
	return v, g.ProcessRet(err)
}

// InvokeWith matches a recogniser and feeds the resulting span to handler.
func InvokeWith[C ctx.Policy[C], O any](c C, pat ctx.Regex[C], handler func(Span) (O, error)) (O, error) {
	return Invoke(c, ctor.NewWith[C](pat, handler))
}

// MapMat builds a constructor that matches pat and converts its text.
func MapMat[C ctor.StrPolicy[C], O any](pat ctx.Regex[C], fn ctor.MapFn[string, O]) ctor.Ctor[C, O] {
	return ctor.NewMap[C, string, O](ctor.NewStr[C](pat), fn)
}

// MapMatBytes builds a constructor that matches pat and converts its bytes.
func MapMatBytes[C ctor.BytesPolicy[C], O any](pat ctx.Regex[C], fn ctor.MapFn[[]byte, O]) ctor.Ctor[C, O] {
	return ctor.NewMap[C, []byte, O](ctor.NewBytes[C](pat), fn)
}
