package ctor

import (
	"github.com/coregx/parsec/ctx"
	"github.com/coregx/parsec/errs"
)

// Array is a first-match alternation over constructors producing the same
// value type. Alternatives are tried in declaration order with a rewind
// between them.
type Array[C ctx.Policy[C], O any] struct {
	pats []Ctor[C, O]
}

// NewArray creates an ordered constructor alternation.
func NewArray[C ctx.Policy[C], O any](pats ...Ctor[C, O]) *Array[C, O] {
	return &Array[C, O]{pats: pats}
}

// Construct implements Ctor.
func (p *Array[C, O]) Construct(c C) (O, error) {
	var zero O
	g := ctx.NewGuard(c)
	defer g.Drop()
	for _, pat := range p.pats {
		v, err := guardConstruct(g, pat)
		if err == nil {
			return v, nil
		}
		g.Reset()
	}
	return zero, g.ProcessRet(errs.ErrArray)
}

// PairArray maps recognisers to tag values. The first recogniser that
// matches yields its tag; useful for keyword and operator tables.
type PairArray[C ctx.Policy[C], T any] struct {
	pats []ctx.Regex[C]
	tags []T
}

// NewPairArray creates an empty recogniser/tag table.
func NewPairArray[C ctx.Policy[C], T any]() *PairArray[C, T] {
	return &PairArray[C, T]{}
}

// Add appends a recogniser and its tag to the table.
func (p *PairArray[C, T]) Add(pat ctx.Regex[C], tag T) *PairArray[C, T] {
	p.pats = append(p.pats, pat)
	p.tags = append(p.tags, tag)
	return p
}

// Construct implements Ctor.
func (p *PairArray[C, T]) Construct(c C) (T, error) {
	var zero T
	g := ctx.NewGuard(c)
	defer g.Drop()
	for i, pat := range p.pats {
		_, err := g.TryMat(pat)
		if err == nil {
			return p.tags[i], nil
		}
		g.Reset()
	}
	return zero, g.ProcessRet(errs.ErrPairArray)
}
