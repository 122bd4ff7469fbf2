package ctor

import (
	"github.com/coregx/parsec/ctx"
	"github.com/coregx/parsec/errs"
)

// Then constructs the left value, then the right one, and pairs them. It
// fails when either child fails, rewinding the cursor to entry.
type Then[C ctx.Policy[C], A, B any] struct {
	left  Ctor[C, A]
	right Ctor[C, B]
}

// NewThen creates a sequential composition producing a Pair.
func NewThen[C ctx.Policy[C], A, B any](left Ctor[C, A], right Ctor[C, B]) *Then[C, A, B] {
	return &Then[C, A, B]{left: left, right: right}
}

// Construct implements Ctor.
func (p *Then[C, A, B]) Construct(c C) (Pair[A, B], error) {
	g := ctx.NewGuard(c)
	defer g.Drop()
	a, err := guardConstruct(g, p.left)
	if err != nil {
		return Pair[A, B]{}, err
	}
	b, err := guardConstruct(g, p.right)
	if err != nil {
		return Pair[A, B]{}, err
	}
	return Pair[A, B]{First: a, Second: b}, nil
}

// Or tries the left constructor; on failure it rewinds and tries the
// right. Both branches produce the same output type.
type Or[C ctx.Policy[C], O any] struct {
	left, right Ctor[C, O]
}

// NewOr creates a first-match alternation.
func NewOr[C ctx.Policy[C], O any](left, right Ctor[C, O]) *Or[C, O] {
	return &Or[C, O]{left: left, right: right}
}

// Construct implements Ctor.
func (p *Or[C, O]) Construct(c C) (O, error) {
	g := ctx.NewGuard(c)
	defer g.Drop()
	a, err := guardConstruct(g, p.left)
	if err == nil {
		return a, nil
	}
	g.Reset()
	b, err := guardConstruct(g, p.right)
	if err != nil {
		var zero O
		return zero, err
	}
	return b, nil
}

// Ltm constructs both children from the same entry offset and keeps the
// value of whichever consumed more input; ties favour the left child.
type Ltm[C ctx.Policy[C], O any] struct {
	left, right Ctor[C, O]
}

// NewLtm creates a longest-token-match alternation.
func NewLtm[C ctx.Policy[C], O any](left, right Ctor[C, O]) *Ltm[C, O] {
	return &Ltm[C, O]{left: left, right: right}
}

// Construct implements Ctor.
func (p *Ltm[C, O]) Construct(c C) (O, error) {
	g := ctx.NewGuard(c)
	defer g.Drop()
	lv, lerr := guardConstruct(g, p.left)
	lend := g.End()
	g.Reset()
	rv, rerr := guardConstruct(g, p.right)
	rend := g.End()

	cv, cerr, cend := lv, lerr, lend
	if rerr == nil && (lerr != nil || rend > lend) {
		cv, cerr, cend = rv, rerr, rend
	}
	if err := g.ProcessRet(cerr); err != nil {
		var zero O
		return zero, err
	}
	c.SetOffset(cend)
	return cv, nil
}

// Quote matches the left delimiter, constructs the inner value, then
// matches the right delimiter, returning only the inner value.
type Quote[C ctx.Policy[C], O any] struct {
	left  ctx.Regex[C]
	pat   Ctor[C, O]
	right ctx.Regex[C]
}

// NewQuote creates a delimited constructor.
func NewQuote[C ctx.Policy[C], O any](left ctx.Regex[C], pat Ctor[C, O], right ctx.Regex[C]) *Quote[C, O] {
	return &Quote[C, O]{left: left, pat: pat, right: right}
}

// Construct implements Ctor.
func (p *Quote[C, O]) Construct(c C) (O, error) {
	var zero O
	g := ctx.NewGuard(c)
	defer g.Drop()
	if _, err := g.TryMat(p.left); err != nil {
		return zero, err
	}
	v, err := guardConstruct(g, p.pat)
	if err != nil {
		return zero, err
	}
	if _, err := g.TryMat(p.right); err != nil {
		return zero, err
	}
	return v, nil
}

// Pad constructs the value, then matches a trailing recogniser whose
// result is discarded.
type Pad[C ctx.Policy[C], O any] struct {
	pat  Ctor[C, O]
	tail ctx.Regex[C]
}

// NewPad creates a trailing-padded constructor.
func NewPad[C ctx.Policy[C], O any](pat Ctor[C, O], tail ctx.Regex[C]) *Pad[C, O] {
	return &Pad[C, O]{pat: pat, tail: tail}
}

// Construct implements Ctor.
func (p *Pad[C, O]) Construct(c C) (O, error) {
	var zero O
	g := ctx.NewGuard(c)
	defer g.Drop()
	v, err := guardConstruct(g, p.pat)
	if err != nil {
		return zero, err
	}
	if _, err := g.TryMat(p.tail); err != nil {
		return zero, err
	}
	return v, nil
}

// Padded matches a leading recogniser whose result is discarded, then
// constructs the value.
type Padded[C ctx.Policy[C], O any] struct {
	lead ctx.Regex[C]
	pat  Ctor[C, O]
}

// NewPadded creates a leading-padded constructor.
func NewPadded[C ctx.Policy[C], O any](lead ctx.Regex[C], pat Ctor[C, O]) *Padded[C, O] {
	return &Padded[C, O]{lead: lead, pat: pat}
}

// Construct implements Ctor.
func (p *Padded[C, O]) Construct(c C) (O, error) {
	var zero O
	g := ctx.NewGuard(c)
	defer g.Drop()
	if _, err := g.TryMat(p.lead); err != nil {
		return zero, err
	}
	v, err := guardConstruct(g, p.pat)
	if err != nil {
		return zero, err
	}
	return v, nil
}

// If runs an effect-free predicate against the context and constructs one
// of two children accordingly.
type If[C ctx.Policy[C], O any] struct {
	cond       func(C) bool
	then, orOp Ctor[C, O]
}

// NewIf creates a conditional branch.
func NewIf[C ctx.Policy[C], O any](cond func(C) bool, then, otherwise Ctor[C, O]) *If[C, O] {
	return &If[C, O]{cond: cond, then: then, orOp: otherwise}
}

// Construct implements Ctor.
func (p *If[C, O]) Construct(c C) (O, error) {
	g := ctx.NewGuard(c)
	defer g.Drop()
	branch := p.orOp
	if p.cond(c) {
		branch = p.then
	}
	v, err := guardConstruct(g, branch)
	if err != nil {
		var zero O
		return zero, err
	}
	return v, nil
}

// Opt tries a constructor and never fails: an absent match produces
// None with the cursor untouched.
type Opt[C ctx.Policy[C], O any] struct {
	pat Ctor[C, O]
}

// NewOpt creates an optional constructor.
func NewOpt[C ctx.Policy[C], O any](pat Ctor[C, O]) *Opt[C, O] {
	return &Opt[C, O]{pat: pat}
}

// Construct implements Ctor.
func (p *Opt[C, O]) Construct(c C) (Option[O], error) {
	pre := c.Offset()
	v, err := p.pat.Construct(c)
	if err != nil {
		c.SetOffset(pre)
		return None[O](), nil
	}
	return Some(v), nil
}

// IfThen always constructs the pattern; when the guard recogniser then
// matches, it also constructs the tail and pairs the results, otherwise
// the second value is absent.
type IfThen[C ctx.Policy[C], A, B any] struct {
	pat  Ctor[C, A]
	re   ctx.Regex[C]
	then Ctor[C, B]
}

// NewIfThen creates a conditionally continued constructor.
func NewIfThen[C ctx.Policy[C], A, B any](pat Ctor[C, A], re ctx.Regex[C], then Ctor[C, B]) *IfThen[C, A, B] {
	return &IfThen[C, A, B]{pat: pat, re: re, then: then}
}

// Construct implements Ctor.
func (p *IfThen[C, A, B]) Construct(c C) (Pair[A, Option[B]], error) {
	g := ctx.NewGuard(c)
	defer g.Drop()
	a, err := guardConstruct(g, p.pat)
	if err != nil {
		return Pair[A, Option[B]]{}, err
	}
	pre := c.Offset()
	if _, err := c.TryMat(p.re); err != nil {
		c.SetOffset(pre)
		return Pair[A, Option[B]]{First: a, Second: None[B]()}, nil
	}
	b, err := guardConstruct(g, p.then)
	if err != nil {
		return Pair[A, Option[B]]{}, err
	}
	return Pair[A, Option[B]]{First: a, Second: Some(b)}, nil
}

// Dyn resolves a constructor lazily at parse time. It is the dynamic
// continuation: the resolver sees the context and returns the constructor
// to run.
type Dyn[C ctx.Policy[C], O any] struct {
	resolve func(c C) (Ctor[C, O], error)
}

// NewDyn creates a lazily resolved constructor.
func NewDyn[C ctx.Policy[C], O any](resolve func(c C) (Ctor[C, O], error)) *Dyn[C, O] {
	return &Dyn[C, O]{resolve: resolve}
}

// Construct implements Ctor.
func (p *Dyn[C, O]) Construct(c C) (O, error) {
	var zero O
	target, err := p.resolve(c)
	if err != nil {
		return zero, err
	}
	if target == nil {
		return zero, errs.ErrOption
	}
	return target.Construct(c)
}

// DThen constructs the pattern value, hands it to a builder that returns
// the continuation constructor, runs the continuation and pairs both
// values.
type DThen[C ctx.Policy[C], A, B any] struct {
	pat   Ctor[C, A]
	build func(c C, a A) (Ctor[C, B], error)
}

// NewDThen creates a dynamically continued constructor.
func NewDThen[C ctx.Policy[C], A, B any](pat Ctor[C, A], build func(c C, a A) (Ctor[C, B], error)) *DThen[C, A, B] {
	return &DThen[C, A, B]{pat: pat, build: build}
}

// Construct implements Ctor.
func (p *DThen[C, A, B]) Construct(c C) (Pair[A, B], error) {
	g := ctx.NewGuard(c)
	defer g.Drop()
	a, err := guardConstruct(g, p.pat)
	if err != nil {
		return Pair[A, B]{}, err
	}
	next, err := p.build(c, a)
	if err != nil {
		g.ProcessRet(err)
		return Pair[A, B]{}, err
	}
	b, err := guardConstruct(g, next)
	if err != nil {
		return Pair[A, B]{}, err
	}
	return Pair[A, B]{First: a, Second: b}, nil
}
