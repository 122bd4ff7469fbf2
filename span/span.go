// Package span defines the half-open match region reported by recognisers.
//
// A Span names a contiguous region of the input by its starting offset and
// byte length. Recognisers return spans instead of sub-slices so that callers
// decide when (and whether) to materialise the matched text.
package span

import "fmt"

// Span is a half-open region [Beg, Beg+Len) in the input's addressing space.
// For textual and byte inputs the addressing space is byte offsets.
//
// A zero-length span is legal and denotes a zero-width match.
type Span struct {
	Beg int
	Len int
}

// New creates a span with the given beginning position and length.
func New(beg, length int) Span {
	return Span{Beg: beg, Len: length}
}

// End returns the offset one past the last byte of the span.
func (s Span) End() int {
	return s.Beg + s.Len
}

// IsEmpty reports whether the span has zero length.
func (s Span) IsEmpty() bool {
	return s.Len == 0
}

// AddAssign extends the span to cover the range from its beginning to the
// end of other. The other span must not begin before the receiver; any gap
// between the two regions is absorbed. Composition is used by combinators
// that just matched consecutive regions, which guarantees the ordering.
func (s *Span) AddAssign(other Span) *Span {
	s.Len += other.Len + other.Beg - (s.Beg + s.Len)
	return s
}

// String implements fmt.Stringer.
func (s Span) String() string {
	return fmt.Sprintf("{beg: %d, len: %d}", s.Beg, s.Len)
}
