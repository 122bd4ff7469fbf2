package regex

import (
	"github.com/coregx/parsec/ctx"
	"github.com/coregx/parsec/errs"
	"github.com/coregx/parsec/span"
)

// Array is a first-match alternation over an ordered list of recognisers.
// Alternatives are tried in declaration order with a rewind between them;
// authors should place more specific patterns first. It fails only when
// every alternative fails.
type Array[C ctx.Policy[C]] struct {
	pats []ctx.Regex[C]
}

// NewArray creates an ordered alternation.
func NewArray[C ctx.Policy[C]](pats ...ctx.Regex[C]) *Array[C] {
	return &Array[C]{pats: pats}
}

// TryParse implements ctx.Regex.
func (p *Array[C]) TryParse(c C) (span.Span, error) {
	g := ctx.NewGuard(c)
	defer g.Drop()
	for _, pat := range p.pats {
		s, err := g.TryMat(pat)
		if err == nil {
			return s, nil
		}
		g.Reset()
	}
	return span.Span{}, g.ProcessRet(errs.ErrArray)
}
