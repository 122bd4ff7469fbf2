package regex

import (
	"bytes"
	"strings"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/parsec/ctx"
	"github.com/coregx/parsec/errs"
	"github.com/coregx/parsec/span"
)

// StrCtx is the capability a string-literal recogniser needs: a cursor over
// a string input.
type StrCtx interface {
	ctx.Cursor
	ctx.Origin[string]
}

// BytesCtx is the capability a byte-literal recogniser needs: a cursor over
// a byte-slice input.
type BytesCtx interface {
	ctx.Cursor
	ctx.Origin[[]byte]
}

// Str matches a literal string at the cursor.
type Str[C StrCtx] struct {
	lit string
}

// NewStr creates a string-literal recogniser.
func NewStr[C StrCtx](lit string) *Str[C] {
	return &Str[C]{lit: lit}
}

// TryParse implements ctx.Regex.
func (p *Str[C]) TryParse(c C) (span.Span, error) {
	off := c.Offset()
	rest, err := c.OrigAt(off)
	if err != nil {
		return span.Span{}, err
	}
	if !strings.HasPrefix(rest, p.lit) {
		return span.Span{}, errs.ErrString
	}
	c.Inc(len(p.lit))
	return span.New(off, len(p.lit)), nil
}

// Slice matches a literal byte sequence at the cursor.
type Slice[C BytesCtx] struct {
	lit []byte
}

// NewSlice creates a byte-literal recogniser.
func NewSlice[C BytesCtx](lit []byte) *Slice[C] {
	return &Slice[C]{lit: lit}
}

// TryParse implements ctx.Regex.
func (p *Slice[C]) TryParse(c C) (span.Span, error) {
	off := c.Offset()
	rest, err := c.OrigAt(off)
	if err != nil {
		return span.Span{}, err
	}
	if !bytes.HasPrefix(rest, p.lit) {
		return span.Span{}, errs.ErrSlice
	}
	c.Inc(len(p.lit))
	return span.New(off, len(p.lit)), nil
}

// LitSet is a multi-literal alternation over byte inputs. An Aho-Corasick
// automaton built over the alternatives prefilters each attempt: when no
// alternative occurs anywhere in the remaining input the match is rejected
// without scanning. When the automaton reports an occurrence, a linear
// prefix scan over the alternatives decides, so declaration order breaks
// ties among overlapping literals.
//
// The prefilter makes large alternations cheap on non-matching input; for
// a handful of literals a plain Array of Slice recognisers is just as
// fast.
type LitSet[C BytesCtx] struct {
	auto *ahocorasick.Automaton
	lits [][]byte
}

// NewLitSet creates a multi-literal recogniser. Construction falls back to
// linear scanning when the automaton cannot be built.
func NewLitSet[C BytesCtx](lits ...[]byte) *LitSet[C] {
	p := &LitSet[C]{lits: lits}
	if len(lits) == 0 {
		return p
	}
	builder := ahocorasick.NewBuilder()
	for _, lit := range lits {
		builder.AddPattern(lit)
	}
	auto, err := builder.Build()
	if err == nil {
		p.auto = auto
	}
	return p
}

// NewLitSetStrings is NewLitSet over string alternatives.
func NewLitSetStrings[C BytesCtx](lits ...string) *LitSet[C] {
	bs := make([][]byte, len(lits))
	for i, lit := range lits {
		bs[i] = []byte(lit)
	}
	return NewLitSet[C](bs...)
}

// TryParse implements ctx.Regex.
func (p *LitSet[C]) TryParse(c C) (span.Span, error) {
	off := c.Offset()
	if off > c.Len() {
		return span.Span{}, errs.ErrOutOfBound
	}
	if p.auto != nil {
		if m := p.auto.Find(c.Orig(), off); m == nil {
			return span.Span{}, errs.ErrArray
		}
	}
	rest, err := c.OrigAt(off)
	if err != nil {
		return span.Span{}, err
	}
	for _, lit := range p.lits {
		if bytes.HasPrefix(rest, lit) {
			c.Inc(len(lit))
			return span.New(off, len(lit)), nil
		}
	}
	return span.Span{}, errs.ErrArray
}
