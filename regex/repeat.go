package regex

import (
	"github.com/coregx/parsec/ctx"
	"github.com/coregx/parsec/errs"
	"github.com/coregx/parsec/span"
)

// Repeat matches the pattern greedily and succeeds when the iteration
// count falls within [min, max]. A negative max means unbounded. There is
// no backtracking to a shorter count: once the pattern stops matching the
// count is final. The span concatenates all iterations.
type Repeat[C ctx.Policy[C]] struct {
	pat      ctx.Regex[C]
	min, max int
}

// NewRepeat creates a bounded repetition. min < 0 is treated as zero.
func NewRepeat[C ctx.Policy[C]](pat ctx.Regex[C], min, max int) *Repeat[C] {
	if min < 0 {
		min = 0
	}
	return &Repeat[C]{pat: pat, min: min, max: max}
}

// TryParse implements ctx.Regex.
func (p *Repeat[C]) TryParse(c C) (span.Span, error) {
	g := ctx.NewGuard(c)
	defer g.Drop()
	ret := span.New(c.Offset(), 0)
	cnt := 0
	for p.max < 0 || cnt < p.max {
		pre := c.Offset()
		s, err := c.TryMat(p.pat)
		if err != nil {
			c.SetOffset(pre)
			break
		}
		if cnt == 0 {
			ret = s
		} else {
			ret.AddAssign(s)
		}
		cnt++
		if c.Offset() == pre {
			break
		}
	}
	if cnt < p.min {
		return span.Span{}, g.ProcessRet(errs.ErrRepeat)
	}
	return ret, nil
}

// Sep matches the pattern interleaved with a separator: pattern, then
// optionally separator, repeated. When the separator fails and skip is
// false the repetition stops with the separator unconsumed; when skip is
// true a missing separator is tolerated and the next pattern is tried
// anyway. A separator consumed before a failing pattern stays consumed, so
// trailing separators are accepted. Succeeds iff at least min patterns
// matched.
type Sep[C ctx.Policy[C]] struct {
	pat, sep ctx.Regex[C]
	min      int
	skip     bool
}

// NewSep creates a separated repetition.
func NewSep[C ctx.Policy[C]](pat, sep ctx.Regex[C], min int, skip bool) *Sep[C] {
	return &Sep[C]{pat: pat, sep: sep, min: min, skip: skip}
}

// TryParse implements ctx.Regex.
func (p *Sep[C]) TryParse(c C) (span.Span, error) {
	g := ctx.NewGuard(c)
	defer g.Drop()
	ret := span.New(c.Offset(), 0)
	cnt := 0
	for {
		iterBeg := c.Offset()
		s, err := c.TryMat(p.pat)
		if err != nil {
			c.SetOffset(iterBeg)
			break
		}
		if cnt == 0 {
			ret = s
		} else {
			ret.AddAssign(s)
		}
		cnt++

		pre := c.Offset()
		sepSpan, err := c.TryMat(p.sep)
		if err != nil {
			c.SetOffset(pre)
			if !p.skip {
				break
			}
		} else {
			ret.AddAssign(sepSpan)
		}
		if c.Offset() == iterBeg {
			break
		}
	}
	if cnt < p.min {
		return span.Span{}, g.ProcessRet(errs.ErrSeparate)
	}
	return ret, nil
}

// SepOnce matches left, separator, right in sequence. The ctor layer
// returns the pair of left and right values; here the span covers all
// three.
type SepOnce[C ctx.Policy[C]] struct {
	left, sep, right ctx.Regex[C]
}

// NewSepOnce creates a single separated pair.
func NewSepOnce[C ctx.Policy[C]](left, sep, right ctx.Regex[C]) *SepOnce[C] {
	return &SepOnce[C]{left: left, sep: sep, right: right}
}

// TryParse implements ctx.Regex.
func (p *SepOnce[C]) TryParse(c C) (span.Span, error) {
	g := ctx.NewGuard(c)
	defer g.Drop()
	l, err := g.TryMat(p.left)
	if err != nil {
		return span.Span{}, err
	}
	s, err := g.TryMat(p.sep)
	if err != nil {
		return span.Span{}, err
	}
	r, err := g.TryMat(p.right)
	if err != nil {
		return span.Span{}, err
	}
	l.AddAssign(s)
	l.AddAssign(r)
	return l, nil
}

// Collect repeats the pattern until its first failure and succeeds iff at
// least min iterations matched. It is Sep without a separator.
type Collect[C ctx.Policy[C]] struct {
	pat ctx.Regex[C]
	min int
}

// NewCollect creates an unseparated collection recogniser.
func NewCollect[C ctx.Policy[C]](pat ctx.Regex[C], min int) *Collect[C] {
	return &Collect[C]{pat: pat, min: min}
}

// TryParse implements ctx.Regex.
func (p *Collect[C]) TryParse(c C) (span.Span, error) {
	g := ctx.NewGuard(c)
	defer g.Drop()
	ret := span.New(c.Offset(), 0)
	cnt := 0
	for {
		pre := c.Offset()
		s, err := c.TryMat(p.pat)
		if err != nil {
			c.SetOffset(pre)
			break
		}
		if cnt == 0 {
			ret = s
		} else {
			ret.AddAssign(s)
		}
		cnt++
		if c.Offset() == pre {
			break
		}
	}
	if cnt < p.min {
		return span.Span{}, g.ProcessRet(errs.ErrCollect)
	}
	return ret, nil
}
