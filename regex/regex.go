// Package regex implements the recogniser layer of the combinator engine.
//
// A recogniser answers "does a prefix of the remaining input match, and how
// long is it?" by returning a span. Primitives (literals, anchors, consume)
// and per-element adaptors (Once, Many0, bounded Repeat) are combined with
// algebraic operators (Then, Or, Ltm, Not, Quote, Repeat, Sep, Collect, If,
// Pad, Array) into bigger recognisers; the ctor package lifts the same tree
// into typed value construction.
//
// Every combinator obeys the cursor contract: on success the context has
// advanced by exactly the returned span's length, on failure the offset is
// unchanged. Composites enforce the latter with a ctx.Guard.
package regex

import (
	"github.com/coregx/parsec/ctx"
	"github.com/coregx/parsec/errs"
	"github.com/coregx/parsec/span"
)

// Empty matches the empty string: a zero-width match at the current offset.
type Empty[C ctx.Cursor] struct{}

// NewEmpty creates the zero-width always-succeeding recogniser.
func NewEmpty[C ctx.Cursor]() *Empty[C] {
	return &Empty[C]{}
}

// TryParse implements ctx.Regex.
func (*Empty[C]) TryParse(c C) (span.Span, error) {
	return span.New(c.Offset(), 0), nil
}

// Fail never matches.
type Fail[C ctx.Cursor] struct{}

// NewFail creates the always-failing recogniser.
func NewFail[C ctx.Cursor]() *Fail[C] {
	return &Fail[C]{}
}

// TryParse implements ctx.Regex.
func (*Fail[C]) TryParse(C) (span.Span, error) {
	return span.Span{}, errs.ErrFail
}

// Start is the zero-width assertion that the cursor is at offset zero.
type Start[C ctx.Cursor] struct{}

// NewStart creates the start anchor.
func NewStart[C ctx.Cursor]() *Start[C] {
	return &Start[C]{}
}

// TryParse implements ctx.Regex.
func (*Start[C]) TryParse(c C) (span.Span, error) {
	if c.Offset() != 0 {
		return span.Span{}, errs.ErrStart
	}
	return span.New(0, 0), nil
}

// End is the zero-width assertion that the cursor is at the end of input.
type End[C ctx.Cursor] struct{}

// NewEnd creates the end anchor.
func NewEnd[C ctx.Cursor]() *End[C] {
	return &End[C]{}
}

// TryParse implements ctx.Regex.
func (*End[C]) TryParse(c C) (span.Span, error) {
	if c.Offset() != c.Len() {
		return span.Span{}, errs.ErrEnd
	}
	return span.New(c.Offset(), 0), nil
}

// Consume matches exactly n items regardless of their values.
type Consume[C ctx.Peeker[I], I any] struct {
	n int
}

// NewConsume creates a recogniser advancing n items, failing when fewer
// remain.
func NewConsume[C ctx.Peeker[I], I any](n int) *Consume[C, I] {
	return &Consume[C, I]{n: n}
}

// TryParse implements ctx.Regex.
func (p *Consume[C, I]) TryParse(c C) (span.Span, error) {
	off := c.Offset()
	it, err := c.PeekAt(off)
	if err != nil {
		return span.Span{}, err
	}
	end := c.Len()
	for i := 0; i < p.n; i++ {
		if _, _, ok := it.Next(); !ok {
			return span.Span{}, errs.ErrConsume
		}
	}
	if idx, _, ok := it.Next(); ok {
		end = idx
	}
	c.SetOffset(end)
	return span.New(off, end-off), nil
}

// ConsumeAll matches the whole remaining input.
type ConsumeAll[C ctx.Cursor] struct{}

// NewConsumeAll creates a recogniser advancing to the end of input.
func NewConsumeAll[C ctx.Cursor]() *ConsumeAll[C] {
	return &ConsumeAll[C]{}
}

// TryParse implements ctx.Regex.
func (*ConsumeAll[C]) TryParse(c C) (span.Span, error) {
	off := c.Offset()
	c.SetOffset(c.Len())
	return span.New(off, c.Len()-off), nil
}
