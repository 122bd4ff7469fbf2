package regex

import (
	"github.com/coregx/parsec/ctx"
	"github.com/coregx/parsec/span"
)

// ThenDyn matches a pattern, hands the resulting span to a builder
// function, and then matches the recogniser the builder returns. It lets a
// matched prefix parameterise what follows, e.g. an opening token choosing
// a count-limited body. The builder runs after the first match and may
// reposition the cursor backwards before the second match; the returned
// span always runs from the first match's beginning to the second match's
// end.
type ThenDyn[C ctx.Policy[C]] struct {
	pat   ctx.Regex[C]
	build func(c C, s span.Span) (ctx.Regex[C], error)
}

// NewThenDyn creates a dynamically continued recogniser.
func NewThenDyn[C ctx.Policy[C]](pat ctx.Regex[C], build func(c C, s span.Span) (ctx.Regex[C], error)) *ThenDyn[C] {
	return &ThenDyn[C]{pat: pat, build: build}
}

// TryParse implements ctx.Regex.
func (p *ThenDyn[C]) TryParse(c C) (span.Span, error) {
	g := ctx.NewGuard(c)
	defer g.Drop()
	first, err := g.TryMat(p.pat)
	if err != nil {
		return span.Span{}, err
	}
	next, err := p.build(c, first)
	if err != nil {
		return span.Span{}, g.ProcessRet(err)
	}
	second, err := g.TryMat(next)
	if err != nil {
		return span.Span{}, err
	}
	first.AddAssign(second)
	return first, nil
}
