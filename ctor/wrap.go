package ctor

import (
	"sync"
	"sync/atomic"

	"github.com/coregx/parsec/ctx"
	"github.com/coregx/parsec/errs"
)

// Mu is a mutex-guarded constructor slot. The inner constructor may be
// swapped with Set while other goroutines hold references to the Mu, and
// each parse holds the lock for the duration of the inner Construct.
type Mu[C ctx.Policy[C], O any] struct {
	mu  sync.Mutex
	pat Ctor[C, O]
}

// NewMu creates a guarded slot holding pat, which may be nil.
func NewMu[C ctx.Policy[C], O any](pat Ctor[C, O]) *Mu[C, O] {
	return &Mu[C, O]{pat: pat}
}

// Set replaces the inner constructor.
func (p *Mu[C, O]) Set(pat Ctor[C, O]) {
	p.mu.Lock()
	p.pat = pat
	p.mu.Unlock()
}

// Construct implements Ctor. An empty slot fails with ErrOption.
func (p *Mu[C, O]) Construct(c C) (O, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pat == nil {
		var zero O
		return zero, errs.ErrOption
	}
	return p.pat.Construct(c)
}

// Cell is a lock-free constructor slot backed by an atomic pointer. Swaps
// are visible to subsequent parses without blocking in-flight ones.
type Cell[C ctx.Policy[C], O any] struct {
	pat atomic.Pointer[Ctor[C, O]]
}

// NewCell creates a cell holding pat, which may be nil.
func NewCell[C ctx.Policy[C], O any](pat Ctor[C, O]) *Cell[C, O] {
	p := &Cell[C, O]{}
	if pat != nil {
		p.pat.Store(&pat)
	}
	return p
}

// Set replaces the inner constructor.
func (p *Cell[C, O]) Set(pat Ctor[C, O]) {
	p.pat.Store(&pat)
}

// Construct implements Ctor. An empty cell fails with ErrOption.
func (p *Cell[C, O]) Construct(c C) (O, error) {
	pat := p.pat.Load()
	if pat == nil {
		var zero O
		return zero, errs.ErrOption
	}
	return (*pat).Construct(c)
}
