package ctx

import (
	"github.com/coregx/parsec/span"
)

// Guard records a context's offset at entry and rewinds to it when a
// composite combinator fails. Every composite that sequences or alternates
// children takes a guard and defers Drop, so either the whole composite
// succeeds with the cursor at the end of the total match, or it fails with
// the cursor exactly at entry.
//
// Typical use:
//
//	g := ctx.NewGuard(c)
//	defer g.Drop()
//	left, err := g.TryMat(p.left)
//	...
type Guard[C Policy[C]] struct {
	c     C
	beg   int
	reset bool
}

// NewGuard creates a guard recording the context's current offset.
func NewGuard[C Policy[C]](c C) *Guard[C] {
	return &Guard[C]{c: c, beg: c.Offset()}
}

// Beg returns the offset recorded at entry.
func (g *Guard[C]) Beg() int { return g.beg }

// End returns the context's current offset.
func (g *Guard[C]) End() int { return g.c.Offset() }

// Ctx returns the guarded context.
func (g *Guard[C]) Ctx() C { return g.c }

// Reset repositions the cursor to the entry offset and clears any pending
// rewind. Branching combinators call it between alternatives.
func (g *Guard[C]) Reset() {
	g.c.SetOffset(g.beg)
	g.reset = false
}

// TryMat matches r through the context's policy, recording failure so that
// Drop rewinds. Success clears a previously recorded failure.
func (g *Guard[C]) TryMat(r Regex[C]) (span.Span, error) {
	s, err := g.c.TryMat(r)
	g.reset = err != nil
	return s, err
}

// ProcessRet records the final verdict of a composite: a non-nil error
// marks the guard for rewind on Drop, nil clears the mark. It returns err
// unchanged.
func (g *Guard[C]) ProcessRet(err error) error {
	g.reset = err != nil
	return err
}

// Drop rewinds the cursor to the entry offset if a failure is pending.
// It is intended to run deferred.
func (g *Guard[C]) Drop() {
	if g.reset {
		g.c.SetOffset(g.beg)
	}
}
