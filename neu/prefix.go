package neu

import "sync/atomic"

// Prefix is a stateful matcher: the first n invocations must match the head
// predicate, later invocations the body predicate. Once any invocation
// fails the matcher stays failed until Reset. A typical use is an
// identifier whose first character is a letter and whose remaining
// characters are alphanumeric.
//
// Prefix keeps per-instance state and is not safe for concurrent use; a
// grammar cloned with its own Prefix instance gets an independent latch.
// Use AtomicPrefix when the grammar is shared across goroutines.
type Prefix[I any] struct {
	head   Neu[I]
	body   Neu[I]
	n      int
	seen   int
	failed bool
}

// NewPrefix creates a latched matcher: n head items, then body items.
func NewPrefix[I any](head, body Neu[I], n int) *Prefix[I] {
	return &Prefix[I]{head: head, body: body, n: n}
}

// IsMatch implements Neu.
func (p *Prefix[I]) IsMatch(item I) bool {
	if p.failed {
		return false
	}
	var ok bool
	if p.seen < p.n {
		ok = p.head.IsMatch(item)
	} else {
		ok = p.body.IsMatch(item)
	}
	if !ok {
		p.failed = true
		return false
	}
	p.seen++
	return true
}

// Reset unlatches the matcher for the next use.
func (p *Prefix[I]) Reset() {
	p.seen = 0
	p.failed = false
}

// AtomicPrefix is the shareable flavour of Prefix; its latch uses atomics
// so a grammar containing it may be used from multiple goroutines, one
// parse at a time per latch.
type AtomicPrefix[I any] struct {
	head   Neu[I]
	body   Neu[I]
	n      int64
	seen   atomic.Int64
	failed atomic.Bool
}

// NewAtomicPrefix creates a shareable latched matcher.
func NewAtomicPrefix[I any](head, body Neu[I], n int) *AtomicPrefix[I] {
	return &AtomicPrefix[I]{head: head, body: body, n: int64(n)}
}

// IsMatch implements Neu.
func (p *AtomicPrefix[I]) IsMatch(item I) bool {
	if p.failed.Load() {
		return false
	}
	var ok bool
	if p.seen.Load() < p.n {
		ok = p.head.IsMatch(item)
	} else {
		ok = p.body.IsMatch(item)
	}
	if !ok {
		p.failed.Store(true)
		return false
	}
	p.seen.Add(1)
	return true
}

// Reset unlatches the matcher for the next use.
func (p *AtomicPrefix[I]) Reset() {
	p.seen.Store(0)
	p.failed.Store(false)
}
