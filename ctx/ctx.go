// Package ctx provides the parsing contexts the combinator engine runs
// against: a cursor over a fully materialised input with transactional
// rewind.
//
// Two concrete contexts exist. Chars walks a UTF-8 string and yields runes
// at their byte offsets; Bytes walks a byte slice and yields single bytes.
// Combinators are generic over the capability interfaces below, so one
// combinator tree serves both inputs.
//
// A context's cursor advances only under a successful match. Composite
// combinators take a Guard at entry so that failure anywhere inside them
// rewinds the cursor to the entry offset.
package ctx

import (
	"github.com/coregx/parsec/span"
)

// Iter is a lazy iterator of (index, item) pairs over a suffix of the
// input. For string inputs the item is a rune and the index its starting
// byte offset; for byte inputs the item is a byte.
type Iter[I any] interface {
	// Next returns the next pair. ok is false once the input is
	// exhausted.
	Next() (idx int, item I, ok bool)
}

// Cursor is raw cursor access over an input of known length.
type Cursor interface {
	// Len returns the total input length.
	Len() int
	// Offset returns the current cursor position.
	Offset() int
	// SetOffset repositions the cursor.
	SetOffset(off int)
	// Inc advances the cursor by n.
	Inc(n int)
	// Dec moves the cursor back by n.
	Dec(n int)
}

// Peeker produces lazy item iterators anchored at arbitrary offsets.
type Peeker[I any] interface {
	Cursor
	// Peek returns an iterator starting at the current offset.
	Peek() (Iter[I], error)
	// PeekAt returns an iterator starting at off. It fails with
	// OutOfBound when off is past the input; at exactly the input
	// length it yields an empty iterator.
	PeekAt(off int) (Iter[I], error)
}

// Origin exposes borrowed views of the underlying input.
type Origin[O any] interface {
	// Orig returns the whole input.
	Orig() O
	// OrigAt returns the suffix starting at off.
	OrigAt(off int) (O, error)
	// OrigSub returns the n-length view starting at off.
	OrigSub(off, n int) (O, error)
}

// Orig projects a span back onto the input it was matched against.
func Orig[O any](c Origin[O], s span.Span) (O, error) {
	return c.OrigSub(s.Beg, s.Len)
}

// Regex is the recogniser contract. On success the context has advanced by
// exactly the returned span's length and the span is anchored at the offset
// on entry. On failure the offset is unchanged; composites enforce this
// with a Guard.
type Regex[C any] interface {
	TryParse(c C) (span.Span, error)
}

// RegexFunc adapts a plain function to the Regex interface.
type RegexFunc[C any] func(c C) (span.Span, error)

// TryParse implements Regex.
func (f RegexFunc[C]) TryParse(c C) (span.Span, error) {
	return f(c)
}

// Policy is the transactional match entry point carried by every concrete
// context. TryMat runs the ignore hook (when one is attached) and then
// delegates to the recogniser; the recogniser is trusted to advance the
// cursor correctly on success.
type Policy[C any] interface {
	Cursor
	// TryMat applies the ignore hook, then r.
	TryMat(r Regex[C]) (span.Span, error)
	// PreMatch runs the ignore hook once, discarding its span. A hook
	// failure rewinds the cursor and is returned, aborting the match.
	// It is a no-op when no hook is attached or when called from
	// within the hook itself.
	PreMatch() error
}
