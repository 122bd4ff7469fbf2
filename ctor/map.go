package ctor

import (
	"github.com/coregx/parsec/ctx"
	"github.com/coregx/parsec/errs"
)

// MapFn is a pure value conversion: it may fail, and failure propagates as
// the parse failure of the mapping constructor. The conv package provides
// the standard conversions.
type MapFn[A, B any] func(A) (B, error)

// Map applies a conversion to a constructor's value. A conversion failure
// fails the whole constructor with the cursor rewound.
type Map[C ctx.Policy[C], A, B any] struct {
	pat Ctor[C, A]
	fn  MapFn[A, B]
}

// NewMap creates a mapping constructor.
func NewMap[C ctx.Policy[C], A, B any](pat Ctor[C, A], fn MapFn[A, B]) *Map[C, A, B] {
	return &Map[C, A, B]{pat: pat, fn: fn}
}

// Construct implements Ctor.
func (p *Map[C, A, B]) Construct(c C) (B, error) {
	var zero B
	g := ctx.NewGuard(c)
	defer g.Drop()
	a, err := guardConstruct(g, p.pat)
	if err != nil {
		return zero, err
	}
	b, err := p.fn(a)
	if err != nil {
		return zero, g.ProcessRet(err)
	}
	return b, nil
}

// Single passes the extracted value through unchanged.
func Single[A any]() MapFn[A, A] {
	return func(v A) (A, error) {
		return v, nil
	}
}

// Select0 projects the first element of a pair.
func Select0[A, B any]() MapFn[Pair[A, B], A] {
	return func(p Pair[A, B]) (A, error) {
		return p.First, nil
	}
}

// Select1 projects the second element of a pair.
func Select1[A, B any]() MapFn[Pair[A, B], B] {
	return func(p Pair[A, B]) (B, error) {
		return p.Second, nil
	}
}

// SelectEq projects a pair of equal values to the value, failing when the
// two differ.
func SelectEq[A comparable]() MapFn[Pair[A, A], A] {
	return func(p Pair[A, A]) (A, error) {
		if p.First != p.Second {
			var zero A
			return zero, errs.ErrSelectEq
		}
		return p.First, nil
	}
}
