package ctor

import (
	"sync"

	"github.com/coregx/parsec/ctx"
	"github.com/coregx/parsec/errs"
)

// Rec is a fix-point cell for recursive grammars. It starts empty and is
// tied to its definition with Set; parsing an untied cell fails with
// ErrOption. Rec is not safe for concurrent Set, use RecMu for that.
type Rec[C ctx.Policy[C], O any] struct {
	pat Ctor[C, O]
}

// NewRec creates an empty recursion cell.
func NewRec[C ctx.Policy[C], O any]() *Rec[C, O] {
	return &Rec[C, O]{}
}

// Set ties the cell to its definition.
func (p *Rec[C, O]) Set(pat Ctor[C, O]) {
	p.pat = pat
}

// Construct implements Ctor.
func (p *Rec[C, O]) Construct(c C) (O, error) {
	if p.pat == nil {
		var zero O
		return zero, errs.ErrOption
	}
	return p.pat.Construct(c)
}

// RecParser builds a recursive constructor in one step: f receives the
// cell and returns the grammar body, which may reference the cell.
func RecParser[C ctx.Policy[C], O any](f func(*Rec[C, O]) Ctor[C, O]) *Rec[C, O] {
	p := NewRec[C, O]()
	p.Set(f(p))
	return p
}

// RecMu is the thread-safe flavour of Rec. The read path takes a shared
// lock only long enough to copy the inner constructor.
type RecMu[C ctx.Policy[C], O any] struct {
	mu  sync.RWMutex
	pat Ctor[C, O]
}

// NewRecMu creates an empty thread-safe recursion cell.
func NewRecMu[C ctx.Policy[C], O any]() *RecMu[C, O] {
	return &RecMu[C, O]{}
}

// Set ties the cell to its definition.
func (p *RecMu[C, O]) Set(pat Ctor[C, O]) {
	p.mu.Lock()
	p.pat = pat
	p.mu.Unlock()
}

// Construct implements Ctor.
func (p *RecMu[C, O]) Construct(c C) (O, error) {
	p.mu.RLock()
	pat := p.pat
	p.mu.RUnlock()
	if pat == nil {
		var zero O
		return zero, errs.ErrOption
	}
	return pat.Construct(c)
}

// RecParserSync is RecParser over a RecMu cell.
func RecParserSync[C ctx.Policy[C], O any](f func(*RecMu[C, O]) Ctor[C, O]) *RecMu[C, O] {
	p := NewRecMu[C, O]()
	p.Set(f(p))
	return p
}
