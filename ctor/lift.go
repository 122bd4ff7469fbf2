package ctor

import (
	"strings"

	"github.com/coregx/parsec/ctx"
	"github.com/coregx/parsec/span"
)

// Pat lifts a recogniser into a constructor returning the matched span
// itself: the identity handler with the Span extraction.
type Pat[C ctx.Policy[C]] struct {
	re ctx.Regex[C]
}

// NewPat lifts a recogniser to a span constructor.
func NewPat[C ctx.Policy[C]](re ctx.Regex[C]) *Pat[C] {
	return &Pat[C]{re: re}
}

// Construct implements Ctor.
func (p *Pat[C]) Construct(c C) (span.Span, error) {
	return c.TryMat(p.re)
}

// Str lifts a recogniser over a string input into a constructor returning
// the matched substring. The substring borrows from the input; no copy is
// made.
type Str[C StrPolicy[C]] struct {
	re ctx.Regex[C]
}

// NewStr lifts a recogniser to a borrowed-substring constructor.
func NewStr[C StrPolicy[C]](re ctx.Regex[C]) *Str[C] {
	return &Str[C]{re: re}
}

// Construct implements Ctor.
func (p *Str[C]) Construct(c C) (string, error) {
	s, err := c.TryMat(p.re)
	if err != nil {
		return "", err
	}
	return c.OrigSub(s.Beg, s.Len)
}

// Bytes lifts a recogniser over a byte input into a constructor returning
// the matched sub-slice. The sub-slice aliases the input; no copy is made.
type Bytes[C BytesPolicy[C]] struct {
	re ctx.Regex[C]
}

// NewBytes lifts a recogniser to a borrowed-slice constructor.
func NewBytes[C BytesPolicy[C]](re ctx.Regex[C]) *Bytes[C] {
	return &Bytes[C]{re: re}
}

// Construct implements Ctor.
func (p *Bytes[C]) Construct(c C) ([]byte, error) {
	s, err := c.TryMat(p.re)
	if err != nil {
		return nil, err
	}
	return c.OrigSub(s.Beg, s.Len)
}

// Owned lifts a recogniser over a string input into a constructor
// returning a copied string, detaching the result from the input's
// lifetime.
type Owned[C StrPolicy[C]] struct {
	re ctx.Regex[C]
}

// NewOwned lifts a recogniser to a copying string constructor.
func NewOwned[C StrPolicy[C]](re ctx.Regex[C]) *Owned[C] {
	return &Owned[C]{re: re}
}

// Construct implements Ctor.
func (p *Owned[C]) Construct(c C) (string, error) {
	s, err := c.TryMat(p.re)
	if err != nil {
		return "", err
	}
	sub, err := c.OrigSub(s.Beg, s.Len)
	if err != nil {
		return "", err
	}
	return strings.Clone(sub), nil
}

// OwnedBytes lifts a recogniser over a byte input into a constructor
// returning a copied string of the matched region.
type OwnedBytes[C BytesPolicy[C]] struct {
	re ctx.Regex[C]
}

// NewOwnedBytes lifts a recogniser to a copying string constructor over
// byte inputs.
func NewOwnedBytes[C BytesPolicy[C]](re ctx.Regex[C]) *OwnedBytes[C] {
	return &OwnedBytes[C]{re: re}
}

// Construct implements Ctor.
func (p *OwnedBytes[C]) Construct(c C) (string, error) {
	s, err := c.TryMat(p.re)
	if err != nil {
		return "", err
	}
	sub, err := c.OrigSub(s.Beg, s.Len)
	if err != nil {
		return "", err
	}
	return string(sub), nil
}

// NewWithValue lifts a recogniser to a constructor returning a fixed
// value whenever the recogniser matches, e.g. a keyword mapped to its
// token tag.
func NewWithValue[C ctx.Policy[C], O any](val O, re ctx.Regex[C]) Ctor[C, O] {
	return CtorFunc[C, O](func(c C) (O, error) {
		var zero O
		if _, err := c.TryMat(re); err != nil {
			return zero, err
		}
		return val, nil
	})
}

// NewWith lifts a recogniser and a span handler into a constructor: the
// handler receives the matched span and produces the value.
func NewWith[C ctx.Policy[C], O any](re ctx.Regex[C], handler func(span.Span) (O, error)) Ctor[C, O] {
	return CtorFunc[C, O](func(c C) (O, error) {
		var zero O
		pre := c.Offset()
		s, err := c.TryMat(re)
		if err != nil {
			return zero, err
		}
		o, err := handler(s)
		if err != nil {
			c.SetOffset(pre)
			return zero, err
		}
		return o, nil
	})
}

// NewStrWith lifts a recogniser and a substring handler into a
// constructor: the handler receives the borrowed matched substring.
func NewStrWith[C StrPolicy[C], O any](re ctx.Regex[C], handler func(string) (O, error)) Ctor[C, O] {
	return CtorFunc[C, O](func(c C) (O, error) {
		var zero O
		pre := c.Offset()
		s, err := c.TryMat(re)
		if err != nil {
			return zero, err
		}
		sub, err := c.OrigSub(s.Beg, s.Len)
		if err != nil {
			c.SetOffset(pre)
			return zero, err
		}
		o, err := handler(sub)
		if err != nil {
			c.SetOffset(pre)
			return zero, err
		}
		return o, nil
	})
}

// NewBytesWith lifts a recogniser and a sub-slice handler into a
// constructor: the handler receives the borrowed matched bytes.
func NewBytesWith[C BytesPolicy[C], O any](re ctx.Regex[C], handler func([]byte) (O, error)) Ctor[C, O] {
	return CtorFunc[C, O](func(c C) (O, error) {
		var zero O
		pre := c.Offset()
		s, err := c.TryMat(re)
		if err != nil {
			return zero, err
		}
		sub, err := c.OrigSub(s.Beg, s.Len)
		if err != nil {
			c.SetOffset(pre)
			return zero, err
		}
		o, err := handler(sub)
		if err != nil {
			c.SetOffset(pre)
			return zero, err
		}
		return o, nil
	})
}
