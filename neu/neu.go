// Package neu implements per-element matchers: predicates over a single
// input item (a byte or a rune).
//
// Matchers form a boolean algebra through And, Or and Not. The regex
// package adapts matchers into recognisers (Once, Many0, Many1, bounded
// repetition) that drive the context's item iterator.
package neu

import "cmp"

// Neu is a predicate over one input item.
type Neu[I any] interface {
	IsMatch(item I) bool
}

// Func adapts a plain predicate function to the Neu interface.
type Func[I any] func(I) bool

// IsMatch implements Neu.
func (f Func[I]) IsMatch(item I) bool { return f(item) }

// Equal matches exactly one value.
type Equal[I comparable] struct {
	val I
}

// NewEqual creates a matcher for a single value.
func NewEqual[I comparable](val I) *Equal[I] {
	return &Equal[I]{val: val}
}

// IsMatch implements Neu.
func (e *Equal[I]) IsMatch(item I) bool { return item == e.val }

// Range matches items within an ordered range. Each bound is inclusive or
// exclusive independently.
type Range[I cmp.Ordered] struct {
	lo, hi         I
	loIncl, hiIncl bool
}

// NewRange creates a range matcher inclusive of both bounds.
func NewRange[I cmp.Ordered](lo, hi I) *Range[I] {
	return &Range[I]{lo: lo, hi: hi, loIncl: true, hiIncl: true}
}

// NewRangeBounds creates a range matcher with per-bound inclusivity.
func NewRangeBounds[I cmp.Ordered](lo, hi I, loIncl, hiIncl bool) *Range[I] {
	return &Range[I]{lo: lo, hi: hi, loIncl: loIncl, hiIncl: hiIncl}
}

// IsMatch implements Neu.
func (r *Range[I]) IsMatch(item I) bool {
	if r.loIncl {
		if item < r.lo {
			return false
		}
	} else if item <= r.lo {
		return false
	}
	if r.hiIncl {
		return item <= r.hi
	}
	return item < r.hi
}

// In matches membership in a fixed set of values.
type In[I comparable] struct {
	set map[I]struct{}
}

// NewIn creates a set-membership matcher.
func NewIn[I comparable](vals ...I) *In[I] {
	set := make(map[I]struct{}, len(vals))
	for _, v := range vals {
		set[v] = struct{}{}
	}
	return &In[I]{set: set}
}

// IsMatch implements Neu.
func (n *In[I]) IsMatch(item I) bool {
	_, ok := n.set[item]
	return ok
}

// NotIn matches everything outside a fixed set of values.
type NotIn[I comparable] struct {
	in *In[I]
}

// NewNotIn creates the complement of a set-membership matcher.
func NewNotIn[I comparable](vals ...I) *NotIn[I] {
	return &NotIn[I]{in: NewIn(vals...)}
}

// IsMatch implements Neu.
func (n *NotIn[I]) IsMatch(item I) bool { return !n.in.IsMatch(item) }

// And matches when both children match.
type And[I any] struct {
	left, right Neu[I]
}

// NewAnd creates the conjunction of two matchers.
func NewAnd[I any](left, right Neu[I]) *And[I] {
	return &And[I]{left: left, right: right}
}

// IsMatch implements Neu.
func (a *And[I]) IsMatch(item I) bool {
	return a.left.IsMatch(item) && a.right.IsMatch(item)
}

// Or matches when either child matches.
type Or[I any] struct {
	left, right Neu[I]
}

// NewOr creates the disjunction of two matchers.
func NewOr[I any](left, right Neu[I]) *Or[I] {
	return &Or[I]{left: left, right: right}
}

// IsMatch implements Neu.
func (o *Or[I]) IsMatch(item I) bool {
	return o.left.IsMatch(item) || o.right.IsMatch(item)
}

// Not matches when the child does not.
type Not[I any] struct {
	inner Neu[I]
}

// NewNot creates the complement of a matcher.
func NewNot[I any](inner Neu[I]) *Not[I] {
	return &Not[I]{inner: inner}
}

// IsMatch implements Neu.
func (n *Not[I]) IsMatch(item I) bool { return !n.inner.IsMatch(item) }

// Cond is a per-element post-check attached to a matcher adaptor. It runs
// after IsMatch succeeds and also sees the context and the item's position,
// so it can enforce cross-item constraints. It may fail with an error,
// which aborts the match. Conditions must be side-effect free: the engine
// does not memoise and may evaluate a condition more than once for the same
// item across alternatives.
type Cond[C, I any] func(c C, idx int, item I) (bool, error)
