package ctx

import (
	"unicode/utf8"

	"github.com/coregx/parsec/errs"
	"github.com/coregx/parsec/span"
)

// Chars is a parsing context over a UTF-8 string. Items are runes; offsets
// and span lengths are byte-indexed, so a single item is 1-4 bytes wide.
type Chars struct {
	dat    string
	offset int
	ignore Regex[*Chars]
	inPre  bool
}

// NewChars creates a context positioned at the start of dat.
func NewChars(dat string) *Chars {
	return &Chars{dat: dat}
}

// WithOffset repositions the cursor and returns the context.
func (c *Chars) WithOffset(off int) *Chars {
	c.offset = off
	return c
}

// WithIgnore attaches an ignore hook run before every TryMat, typically a
// whitespace skipper. The hook's span is discarded; the hook is not applied
// from within itself.
func (c *Chars) WithIgnore(r Regex[*Chars]) *Chars {
	c.ignore = r
	return c
}

// Reset moves the cursor back to the start and returns the context.
func (c *Chars) Reset() *Chars {
	c.offset = 0
	return c
}

// ResetWith replaces the input and rewinds the cursor.
func (c *Chars) ResetWith(dat string) *Chars {
	c.dat = dat
	c.offset = 0
	return c
}

// Len returns the input length in bytes.
func (c *Chars) Len() int { return len(c.dat) }

// Offset returns the current cursor position.
func (c *Chars) Offset() int { return c.offset }

// SetOffset repositions the cursor.
func (c *Chars) SetOffset(off int) { c.offset = off }

// Inc advances the cursor by n bytes.
func (c *Chars) Inc(n int) { c.offset += n }

// Dec moves the cursor back by n bytes.
func (c *Chars) Dec(n int) { c.offset -= n }

// Orig returns the whole input.
func (c *Chars) Orig() string { return c.dat }

// OrigAt returns the suffix starting at byte offset off.
func (c *Chars) OrigAt(off int) (string, error) {
	if off < 0 || off > len(c.dat) {
		return "", errs.ErrOutOfBound
	}
	return c.dat[off:], nil
}

// OrigSub returns the n-byte substring starting at off.
func (c *Chars) OrigSub(off, n int) (string, error) {
	if off < 0 || n < 0 || off+n > len(c.dat) {
		return "", errs.ErrOutOfBound
	}
	return c.dat[off : off+n], nil
}

// Peek returns a rune iterator starting at the current offset.
func (c *Chars) Peek() (Iter[rune], error) {
	return c.PeekAt(c.offset)
}

// PeekAt returns a rune iterator starting at byte offset off.
func (c *Chars) PeekAt(off int) (Iter[rune], error) {
	if off < 0 || off > len(c.dat) {
		return nil, errs.ErrOutOfBound
	}
	return &runeIter{dat: c.dat, off: off}, nil
}

// PreMatch implements Policy.
func (c *Chars) PreMatch() error {
	if c.ignore == nil || c.inPre {
		return nil
	}
	c.inPre = true
	pre := c.offset
	_, err := c.ignore.TryParse(c)
	if err != nil {
		c.offset = pre
	}
	c.inPre = false
	return err
}

// TryMat implements Policy: it runs the ignore hook, then the recogniser.
func (c *Chars) TryMat(r Regex[*Chars]) (span.Span, error) {
	if err := c.PreMatch(); err != nil {
		return span.Span{}, err
	}
	return r.TryParse(c)
}

type runeIter struct {
	dat string
	off int
}

func (it *runeIter) Next() (int, rune, bool) {
	if it.off >= len(it.dat) {
		return it.off, 0, false
	}
	r, w := utf8.DecodeRuneInString(it.dat[it.off:])
	idx := it.off
	it.off += w
	return idx, r, true
}
