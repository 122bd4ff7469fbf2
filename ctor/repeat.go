package ctor

import (
	"iter"
	"slices"

	"github.com/coregx/parsec/ctx"
	"github.com/coregx/parsec/errs"
)

// Repeat constructs the pattern greedily and succeeds with the collected
// values when the iteration count falls within [min, max]. A negative max
// means unbounded. There is no backtracking to a shorter count.
type Repeat[C ctx.Policy[C], O any] struct {
	pat      Ctor[C, O]
	min, max int
	capacity int
}

// NewRepeat creates a bounded repetition collecting into a slice.
// min < 0 is treated as zero.
func NewRepeat[C ctx.Policy[C], O any](pat Ctor[C, O], min, max int) *Repeat[C, O] {
	if min < 0 {
		min = 0
	}
	return &Repeat[C, O]{pat: pat, min: min, max: max}
}

// WithCapacity sets the initial capacity of the collected slice; it is a
// hint only.
func (p *Repeat[C, O]) WithCapacity(capacity int) *Repeat[C, O] {
	p.capacity = capacity
	return p
}

// Construct implements Ctor.
func (p *Repeat[C, O]) Construct(c C) ([]O, error) {
	g := ctx.NewGuard(c)
	defer g.Drop()
	res := make([]O, 0, max(p.capacity, p.min))
	for p.max < 0 || len(res) < p.max {
		pre := c.Offset()
		v, err := p.pat.Construct(c)
		if err != nil {
			c.SetOffset(pre)
			break
		}
		res = append(res, v)
		if c.Offset() == pre {
			break
		}
	}
	if len(res) < p.min {
		return nil, g.ProcessRet(errs.ErrRepeat)
	}
	return res, nil
}

// Sep constructs the pattern interleaved with a separator recogniser,
// collecting the pattern values. Separator values are discarded; a
// trailing separator stays consumed. When skip is true a missing separator
// is tolerated and the next pattern is tried anyway. Succeeds iff at least
// min patterns matched.
type Sep[C ctx.Policy[C], O any] struct {
	pat      Ctor[C, O]
	sep      ctx.Regex[C]
	min      int
	skip     bool
	capacity int
}

// NewSep creates a separated repetition collecting into a slice.
// min < 0 is treated as zero.
func NewSep[C ctx.Policy[C], O any](pat Ctor[C, O], sep ctx.Regex[C], min int, skip bool) *Sep[C, O] {
	if min < 0 {
		min = 0
	}
	return &Sep[C, O]{pat: pat, sep: sep, min: min, skip: skip}
}

// WithCapacity sets the initial capacity of the collected slice.
func (p *Sep[C, O]) WithCapacity(capacity int) *Sep[C, O] {
	p.capacity = capacity
	return p
}

// Construct implements Ctor.
func (p *Sep[C, O]) Construct(c C) ([]O, error) {
	g := ctx.NewGuard(c)
	defer g.Drop()
	res := sepLoop(c, p.pat, p.sep, p.skip, max(p.capacity, p.min))
	if len(res) < p.min {
		return nil, g.ProcessRet(errs.ErrSeparate)
	}
	return res, nil
}

// sepLoop is the shared pattern/separator iteration of Sep and SepCollect.
func sepLoop[C ctx.Policy[C], O any](c C, pat Ctor[C, O], sep ctx.Regex[C], skip bool, capacity int) []O {
	res := make([]O, 0, capacity)
	for {
		iterBeg := c.Offset()
		v, err := pat.Construct(c)
		if err != nil {
			c.SetOffset(iterBeg)
			break
		}
		res = append(res, v)

		pre := c.Offset()
		if _, err := c.TryMat(sep); err != nil {
			c.SetOffset(pre)
			if !skip {
				break
			}
		}
		if c.Offset() == iterBeg {
			break
		}
	}
	return res
}

// SepOnce constructs left, matches the separator, constructs right, and
// pairs the two values.
type SepOnce[C ctx.Policy[C], A, B any] struct {
	left  Ctor[C, A]
	sep   ctx.Regex[C]
	right Ctor[C, B]
}

// NewSepOnce creates a single separated pair constructor.
func NewSepOnce[C ctx.Policy[C], A, B any](left Ctor[C, A], sep ctx.Regex[C], right Ctor[C, B]) *SepOnce[C, A, B] {
	return &SepOnce[C, A, B]{left: left, sep: sep, right: right}
}

// Construct implements Ctor.
func (p *SepOnce[C, A, B]) Construct(c C) (Pair[A, B], error) {
	g := ctx.NewGuard(c)
	defer g.Drop()
	a, err := guardConstruct(g, p.left)
	if err != nil {
		return Pair[A, B]{}, err
	}
	if _, err := g.TryMat(p.sep); err != nil {
		return Pair[A, B]{}, err
	}
	b, err := guardConstruct(g, p.right)
	if err != nil {
		return Pair[A, B]{}, err
	}
	return Pair[A, B]{First: a, Second: b}, nil
}

// SepCollect is Sep with a caller-chosen collection: the collected values
// are handed to a collector as an iter.Seq, so slices.Collect,
// maps-shaped collectors or any user fold plug in.
type SepCollect[C ctx.Policy[C], O, T any] struct {
	pat     Ctor[C, O]
	sep     ctx.Regex[C]
	min     int
	skip    bool
	collect func(iter.Seq[O]) T
}

// NewSepCollect creates a separated repetition collecting into T.
func NewSepCollect[C ctx.Policy[C], O, T any](
	pat Ctor[C, O],
	sep ctx.Regex[C],
	min int,
	skip bool,
	collect func(iter.Seq[O]) T,
) *SepCollect[C, O, T] {
	if min < 0 {
		min = 0
	}
	return &SepCollect[C, O, T]{pat: pat, sep: sep, min: min, skip: skip, collect: collect}
}

// Construct implements Ctor.
func (p *SepCollect[C, O, T]) Construct(c C) (T, error) {
	var zero T
	g := ctx.NewGuard(c)
	defer g.Drop()
	res := sepLoop(c, p.pat, p.sep, p.skip, p.min)
	if len(res) < p.min {
		return zero, g.ProcessRet(errs.ErrSeparateCollect)
	}
	return p.collect(slices.Values(res)), nil
}

// Collect repeats the pattern until its first failure, collecting values,
// and succeeds iff at least min iterations matched.
type Collect[C ctx.Policy[C], O any] struct {
	pat      Ctor[C, O]
	min      int
	capacity int
}

// NewCollect creates an unseparated collection constructor.
func NewCollect[C ctx.Policy[C], O any](pat Ctor[C, O], min int) *Collect[C, O] {
	return &Collect[C, O]{pat: pat, min: min}
}

// WithCapacity sets the initial capacity of the collected slice.
func (p *Collect[C, O]) WithCapacity(capacity int) *Collect[C, O] {
	p.capacity = capacity
	return p
}

// Construct implements Ctor.
func (p *Collect[C, O]) Construct(c C) ([]O, error) {
	g := ctx.NewGuard(c)
	defer g.Drop()
	res := make([]O, 0, max(p.capacity, p.min))
	for {
		pre := c.Offset()
		v, err := p.pat.Construct(c)
		if err != nil {
			c.SetOffset(pre)
			break
		}
		res = append(res, v)
		if c.Offset() == pre {
			break
		}
	}
	if len(res) < p.min {
		return nil, g.ProcessRet(errs.ErrCollect)
	}
	return res, nil
}

// CollectInto is Collect with a caller-chosen collection built from an
// iter.Seq of the values.
type CollectInto[C ctx.Policy[C], O, T any] struct {
	pat     Ctor[C, O]
	min     int
	collect func(iter.Seq[O]) T
}

// NewCollectInto creates an unseparated collection constructor producing
// T.
func NewCollectInto[C ctx.Policy[C], O, T any](pat Ctor[C, O], min int, collect func(iter.Seq[O]) T) *CollectInto[C, O, T] {
	return &CollectInto[C, O, T]{pat: pat, min: min, collect: collect}
}

// Construct implements Ctor.
func (p *CollectInto[C, O, T]) Construct(c C) (T, error) {
	var zero T
	inner := NewCollect(p.pat, p.min)
	res, err := inner.Construct(c)
	if err != nil {
		return zero, err
	}
	return p.collect(slices.Values(res)), nil
}
