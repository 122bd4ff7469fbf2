package ctx

import (
	"github.com/coregx/parsec/errs"
	"github.com/coregx/parsec/span"
)

// Bytes is a parsing context over a byte slice. Items are single bytes and
// every item is exactly one offset wide.
type Bytes struct {
	dat    []byte
	offset int
	ignore Regex[*Bytes]
	inPre  bool
}

// NewBytes creates a context positioned at the start of dat.
func NewBytes(dat []byte) *Bytes {
	return &Bytes{dat: dat}
}

// WithOffset repositions the cursor and returns the context.
func (c *Bytes) WithOffset(off int) *Bytes {
	c.offset = off
	return c
}

// WithIgnore attaches an ignore hook run before every TryMat. The hook's
// span is discarded; the hook is not applied from within itself.
func (c *Bytes) WithIgnore(r Regex[*Bytes]) *Bytes {
	c.ignore = r
	return c
}

// Reset moves the cursor back to the start and returns the context.
func (c *Bytes) Reset() *Bytes {
	c.offset = 0
	return c
}

// ResetWith replaces the input and rewinds the cursor.
func (c *Bytes) ResetWith(dat []byte) *Bytes {
	c.dat = dat
	c.offset = 0
	return c
}

// Len returns the input length.
func (c *Bytes) Len() int { return len(c.dat) }

// Offset returns the current cursor position.
func (c *Bytes) Offset() int { return c.offset }

// SetOffset repositions the cursor.
func (c *Bytes) SetOffset(off int) { c.offset = off }

// Inc advances the cursor by n.
func (c *Bytes) Inc(n int) { c.offset += n }

// Dec moves the cursor back by n.
func (c *Bytes) Dec(n int) { c.offset -= n }

// Orig returns the whole input.
func (c *Bytes) Orig() []byte { return c.dat }

// OrigAt returns the suffix starting at off.
func (c *Bytes) OrigAt(off int) ([]byte, error) {
	if off < 0 || off > len(c.dat) {
		return nil, errs.ErrOutOfBound
	}
	return c.dat[off:], nil
}

// OrigSub returns the n-length sub-slice starting at off.
func (c *Bytes) OrigSub(off, n int) ([]byte, error) {
	if off < 0 || n < 0 || off+n > len(c.dat) {
		return nil, errs.ErrOutOfBound
	}
	return c.dat[off : off+n], nil
}

// Peek returns a byte iterator starting at the current offset.
func (c *Bytes) Peek() (Iter[byte], error) {
	return c.PeekAt(c.offset)
}

// PeekAt returns a byte iterator starting at off.
func (c *Bytes) PeekAt(off int) (Iter[byte], error) {
	if off < 0 || off > len(c.dat) {
		return nil, errs.ErrOutOfBound
	}
	return &byteIter{dat: c.dat, off: off}, nil
}

// PreMatch implements Policy.
func (c *Bytes) PreMatch() error {
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
func (c *Bytes) TryMat(r Regex[*Bytes]) (span.Span, error) {
	if err := c.PreMatch(); err != nil {
		return span.Span{}, err
	}
	return r.TryParse(c)
}

type byteIter struct {
	dat []byte
	off int
}

func (it *byteIter) Next() (int, byte, bool) {
	if it.off >= len(it.dat) {
		return it.off, 0, false
	}
	idx := it.off
	it.off++
	return idx, it.dat[idx], true
}
