package regex

import (
	"github.com/coregx/parsec/ctx"
	"github.com/coregx/parsec/errs"
	"github.com/coregx/parsec/span"
)

// Then matches the left recogniser, then the right one, and returns the
// concatenated span. It fails when either child fails, rewinding the
// cursor to entry.
type Then[C ctx.Policy[C]] struct {
	left, right ctx.Regex[C]
}

// NewThen creates a sequential composition.
func NewThen[C ctx.Policy[C]](left, right ctx.Regex[C]) *Then[C] {
	return &Then[C]{left: left, right: right}
}

// TryParse implements ctx.Regex.
func (p *Then[C]) TryParse(c C) (span.Span, error) {
	g := ctx.NewGuard(c)
	defer g.Drop()
	l, err := g.TryMat(p.left)
	if err != nil {
		return span.Span{}, err
	}
	r, err := g.TryMat(p.right)
	if err != nil {
		return span.Span{}, err
	}
	l.AddAssign(r)
	return l, nil
}

// Or tries the left recogniser; on failure it rewinds and tries the right
// one. First match wins, not longest; use Ltm for longest.
type Or[C ctx.Policy[C]] struct {
	left, right ctx.Regex[C]
}

// NewOr creates a first-match alternation.
func NewOr[C ctx.Policy[C]](left, right ctx.Regex[C]) *Or[C] {
	return &Or[C]{left: left, right: right}
}

// TryParse implements ctx.Regex.
func (p *Or[C]) TryParse(c C) (span.Span, error) {
	g := ctx.NewGuard(c)
	defer g.Drop()
	l, err := g.TryMat(p.left)
	if err == nil {
		return l, nil
	}
	g.Reset()
	r, err := g.TryMat(p.right)
	if err != nil {
		return span.Span{}, err
	}
	return r, nil
}

// Ltm evaluates both children from the same entry offset and keeps
// whichever consumed more input; ties favour the left child.
type Ltm[C ctx.Policy[C]] struct {
	left, right ctx.Regex[C]
}

// NewLtm creates a longest-token-match alternation.
func NewLtm[C ctx.Policy[C]](left, right ctx.Regex[C]) *Ltm[C] {
	return &Ltm[C]{left: left, right: right}
}

// TryParse implements ctx.Regex.
func (p *Ltm[C]) TryParse(c C) (span.Span, error) {
	g := ctx.NewGuard(c)
	defer g.Drop()
	ls, lerr := g.TryMat(p.left)
	lend := g.End()
	g.Reset()
	rs, rerr := g.TryMat(p.right)
	rend := g.End()

	cs, cerr, cend := ls, lerr, lend
	if rerr == nil && (lerr != nil || rend > lend) {
		cs, cerr, cend = rs, rerr, rend
	}
	if err := g.ProcessRet(cerr); err != nil {
		return span.Span{}, err
	}
	c.SetOffset(cend)
	return cs, nil
}

// Not succeeds with a zero-width match iff its child fails. It never
// consumes input.
type Not[C ctx.Policy[C]] struct {
	inner ctx.Regex[C]
}

// NewNot creates a negative lookahead.
func NewNot[C ctx.Policy[C]](inner ctx.Regex[C]) *Not[C] {
	return &Not[C]{inner: inner}
}

// TryParse implements ctx.Regex.
func (p *Not[C]) TryParse(c C) (span.Span, error) {
	g := ctx.NewGuard(c)
	defer g.Drop()
	_, err := g.TryMat(p.inner)
	g.Reset()
	if err == nil {
		return span.Span{}, g.ProcessRet(errs.ErrFail)
	}
	return span.New(c.Offset(), 0), nil
}

// Quote matches left, then the pattern, then right. The span covers all
// three; the ctor layer projects out the pattern's value.
type Quote[C ctx.Policy[C]] struct {
	left, pat, right ctx.Regex[C]
}

// NewQuote creates a delimited recogniser.
func NewQuote[C ctx.Policy[C]](left, pat, right ctx.Regex[C]) *Quote[C] {
	return &Quote[C]{left: left, pat: pat, right: right}
}

// TryParse implements ctx.Regex.
func (p *Quote[C]) TryParse(c C) (span.Span, error) {
	g := ctx.NewGuard(c)
	defer g.Drop()
	l, err := g.TryMat(p.left)
	if err != nil {
		return span.Span{}, err
	}
	m, err := g.TryMat(p.pat)
	if err != nil {
		return span.Span{}, err
	}
	r, err := g.TryMat(p.right)
	if err != nil {
		return span.Span{}, err
	}
	l.AddAssign(m)
	l.AddAssign(r)
	return l, nil
}

// Pad matches the pattern followed by a trailing recogniser whose result
// the ctor layer discards. The span covers both.
type Pad[C ctx.Policy[C]] struct {
	pat, tail ctx.Regex[C]
}

// NewPad creates a trailing-padded recogniser.
func NewPad[C ctx.Policy[C]](pat, tail ctx.Regex[C]) *Pad[C] {
	return &Pad[C]{pat: pat, tail: tail}
}

// TryParse implements ctx.Regex.
func (p *Pad[C]) TryParse(c C) (span.Span, error) {
	g := ctx.NewGuard(c)
	defer g.Drop()
	m, err := g.TryMat(p.pat)
	if err != nil {
		return span.Span{}, err
	}
	t, err := g.TryMat(p.tail)
	if err != nil {
		return span.Span{}, err
	}
	m.AddAssign(t)
	return m, nil
}

// Padded matches a leading recogniser whose result the ctor layer
// discards, then the pattern. The span covers both.
type Padded[C ctx.Policy[C]] struct {
	lead, pat ctx.Regex[C]
}

// NewPadded creates a leading-padded recogniser.
func NewPadded[C ctx.Policy[C]](lead, pat ctx.Regex[C]) *Padded[C] {
	return &Padded[C]{lead: lead, pat: pat}
}

// TryParse implements ctx.Regex.
func (p *Padded[C]) TryParse(c C) (span.Span, error) {
	g := ctx.NewGuard(c)
	defer g.Drop()
	l, err := g.TryMat(p.lead)
	if err != nil {
		return span.Span{}, err
	}
	m, err := g.TryMat(p.pat)
	if err != nil {
		return span.Span{}, err
	}
	l.AddAssign(m)
	return l, nil
}

// If runs an effect-free predicate against the context and matches one of
// two children accordingly.
type If[C ctx.Policy[C]] struct {
	cond       func(C) bool
	then, orOp ctx.Regex[C]
}

// NewIf creates a conditional branch.
func NewIf[C ctx.Policy[C]](cond func(C) bool, then, otherwise ctx.Regex[C]) *If[C] {
	return &If[C]{cond: cond, then: then, orOp: otherwise}
}

// TryParse implements ctx.Regex.
func (p *If[C]) TryParse(c C) (span.Span, error) {
	g := ctx.NewGuard(c)
	defer g.Drop()
	branch := p.orOp
	if p.cond(c) {
		branch = p.then
	}
	s, err := g.TryMat(branch)
	if err != nil {
		return span.Span{}, err
	}
	return s, nil
}
