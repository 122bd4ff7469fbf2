package regex

import (
	"github.com/coregx/parsec/ctx"
	"github.com/coregx/parsec/errs"
	"github.com/coregx/parsec/neu"
	"github.com/coregx/parsec/span"
)

// matchUnits drives the context's item iterator while unit (and cond,
// when set) hold, consuming at most max items (max < 0 means unbounded).
// The resulting span runs from the first consumed item's index to the index
// of the item after the last consumed one, or to the input length when no
// further item exists. The cursor is advanced only when count >= min;
// otherwise kindErr is returned and the cursor stays put.
func matchUnits[C ctx.Peeker[I], I any](
	c C,
	unit neu.Neu[I],
	cond neu.Cond[C, I],
	min, max int,
	kindErr error,
) (span.Span, int, error) {
	off := c.Offset()
	it, err := c.PeekAt(off)
	if err != nil {
		return span.Span{}, 0, err
	}
	cnt := 0
	end := c.Len()
	for {
		idx, item, ok := it.Next()
		if !ok {
			break
		}
		if max >= 0 && cnt >= max {
			end = idx
			break
		}
		if !unit.IsMatch(item) {
			end = idx
			break
		}
		if cond != nil {
			ok, err := cond(c, idx, item)
			if err != nil {
				return span.Span{}, 0, err
			}
			if !ok {
				end = idx
				break
			}
		}
		cnt++
	}
	if cnt < min {
		return span.Span{}, cnt, kindErr
	}
	c.SetOffset(end)
	return span.New(off, end-off), cnt, nil
}

// Once consumes exactly one item satisfying the unit matcher. The span's
// length is the byte width of the item: one for bytes, 1-4 for a rune.
type Once[C ctx.Peeker[I], I any] struct {
	unit neu.Neu[I]
	cond neu.Cond[C, I]
}

// NewOnce creates a one-item recogniser.
func NewOnce[C ctx.Peeker[I], I any](unit neu.Neu[I]) *Once[C, I] {
	return &Once[C, I]{unit: unit}
}

// SetCond attaches a per-element condition and returns the recogniser.
func (p *Once[C, I]) SetCond(cond neu.Cond[C, I]) *Once[C, I] {
	p.cond = cond
	return p
}

// TryParse implements ctx.Regex.
func (p *Once[C, I]) TryParse(c C) (span.Span, error) {
	s, _, err := matchUnits(c, p.unit, p.cond, 1, 1, errs.ErrOnce)
	return s, err
}

// Opt consumes zero or one item; it never fails.
type Opt[C ctx.Peeker[I], I any] struct {
	unit neu.Neu[I]
	cond neu.Cond[C, I]
}

// NewOpt creates a zero-or-one recogniser.
func NewOpt[C ctx.Peeker[I], I any](unit neu.Neu[I]) *Opt[C, I] {
	return &Opt[C, I]{unit: unit}
}

// SetCond attaches a per-element condition and returns the recogniser.
func (p *Opt[C, I]) SetCond(cond neu.Cond[C, I]) *Opt[C, I] {
	p.cond = cond
	return p
}

// TryParse implements ctx.Regex.
func (p *Opt[C, I]) TryParse(c C) (span.Span, error) {
	s, _, err := matchUnits(c, p.unit, p.cond, 0, 1, nil)
	return s, err
}

// Many0 greedily consumes zero or more items; it never fails.
type Many0[C ctx.Peeker[I], I any] struct {
	unit neu.Neu[I]
	cond neu.Cond[C, I]
}

// NewMany0 creates a zero-or-more recogniser.
func NewMany0[C ctx.Peeker[I], I any](unit neu.Neu[I]) *Many0[C, I] {
	return &Many0[C, I]{unit: unit}
}

// SetCond attaches a per-element condition and returns the recogniser.
func (p *Many0[C, I]) SetCond(cond neu.Cond[C, I]) *Many0[C, I] {
	p.cond = cond
	return p
}

// TryParse implements ctx.Regex.
func (p *Many0[C, I]) TryParse(c C) (span.Span, error) {
	s, _, err := matchUnits(c, p.unit, p.cond, 0, -1, nil)
	return s, err
}

// Many1 greedily consumes one or more items; it fails when zero items
// match.
type Many1[C ctx.Peeker[I], I any] struct {
	unit neu.Neu[I]
	cond neu.Cond[C, I]
}

// NewMany1 creates a one-or-more recogniser.
func NewMany1[C ctx.Peeker[I], I any](unit neu.Neu[I]) *Many1[C, I] {
	return &Many1[C, I]{unit: unit}
}

// SetCond attaches a per-element condition and returns the recogniser.
func (p *Many1[C, I]) SetCond(cond neu.Cond[C, I]) *Many1[C, I] {
	p.cond = cond
	return p
}

// TryParse implements ctx.Regex.
func (p *Many1[C, I]) TryParse(c C) (span.Span, error) {
	s, _, err := matchUnits(c, p.unit, p.cond, 1, -1, errs.ErrMany1)
	return s, err
}

// RepeatUnit greedily consumes between min and max items inclusive,
// failing when fewer than min items match. A negative max means unbounded.
// Compile-time and runtime bounds share this one implementation so the
// empty and unbounded cases cannot diverge.
type RepeatUnit[C ctx.Peeker[I], I any] struct {
	unit     neu.Neu[I]
	cond     neu.Cond[C, I]
	min, max int
}

// NewRepeatUnit creates a bounded per-element repetition.
func NewRepeatUnit[C ctx.Peeker[I], I any](unit neu.Neu[I], min, max int) *RepeatUnit[C, I] {
	return &RepeatUnit[C, I]{unit: unit, min: min, max: max}
}

// SetCond attaches a per-element condition and returns the recogniser.
func (p *RepeatUnit[C, I]) SetCond(cond neu.Cond[C, I]) *RepeatUnit[C, I] {
	p.cond = cond
	return p
}

// TryParse implements ctx.Regex.
func (p *RepeatUnit[C, I]) TryParse(c C) (span.Span, error) {
	s, _, err := matchUnits(c, p.unit, p.cond, p.min, p.max, errs.ErrRepeat)
	return s, err
}

// Then2 consumes exactly two consecutive items, each checked by its own
// matcher. It fails when fewer than two items remain or either matcher
// rejects.
type Then2[C ctx.Peeker[I], I any] struct {
	first, second neu.Neu[I]
	cond          neu.Cond[C, I]
}

// NewThen2 creates a two-item recogniser.
func NewThen2[C ctx.Peeker[I], I any](first, second neu.Neu[I]) *Then2[C, I] {
	return &Then2[C, I]{first: first, second: second}
}

// SetCond attaches a per-element condition checked for both items.
func (p *Then2[C, I]) SetCond(cond neu.Cond[C, I]) *Then2[C, I] {
	p.cond = cond
	return p
}

// TryParse implements ctx.Regex.
func (p *Then2[C, I]) TryParse(c C) (span.Span, error) {
	off := c.Offset()
	it, err := c.PeekAt(off)
	if err != nil {
		return span.Span{}, err
	}
	units := [2]neu.Neu[I]{p.first, p.second}
	for _, unit := range units {
		idx, item, ok := it.Next()
		if !ok || !unit.IsMatch(item) {
			return span.Span{}, errs.ErrOnce
		}
		if p.cond != nil {
			ok, err := p.cond(c, idx, item)
			if err != nil {
				return span.Span{}, err
			}
			if !ok {
				return span.Span{}, errs.ErrOnce
			}
		}
	}
	end := c.Len()
	if idx, _, ok := it.Next(); ok {
		end = idx
	}
	c.SetOffset(end)
	return span.New(off, end-off), nil
}

// NewWs is a convenience zero-or-more Unicode whitespace recogniser,
// suitable as a context's ignore hook.
func NewWs[C ctx.Peeker[I], I neu.Unit]() *Many0[C, I] {
	return NewMany0[C](neu.Whitespace[I]())
}
