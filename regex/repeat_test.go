package regex

import (
	"errors"
	"testing"

	"github.com/coregx/parsec/ctx"
	"github.com/coregx/parsec/errs"
	"github.com/coregx/parsec/neu"
	"github.com/coregx/parsec/span"
)

func TestRepeat(t *testing.T) {
	word := NewThen[*ctx.Chars](
		NewStr[*ctx.Chars]("ab"),
		NewOpt[*ctx.Chars, rune](neu.NewEqual(' ')),
	)
	tests := []struct {
		name     string
		min, max int
		input    string
		wantLen  int
		wantErr  error
	}{
		{"three of three", 0, 3, "ab ab ab ", 9, nil},
		{"capped at max", 1, 2, "ab ab ab ", 6, nil},
		{"stops at mismatch", 0, -1, "ab xy", 3, nil},
		{"below min", 3, -1, "ab ab", 0, errs.ErrRepeat},
		{"zero matches allowed", 0, 5, "xy", 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re := NewRepeat[*ctx.Chars](word, tt.min, tt.max)
			s, off, err := matChars(re, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				if off != 0 {
					t.Errorf("offset after failure = %d, want 0", off)
				}
				return
			}
			if s.Len != tt.wantLen || off != tt.wantLen {
				t.Errorf("span = %v, offset = %d, want length %d", s, off, tt.wantLen)
			}
		})
	}
}

func TestRepeat_ZeroWidthChild(t *testing.T) {
	re := NewRepeat[*ctx.Chars](NewEmpty[*ctx.Chars](), 0, -1)
	s, off, err := matChars(re, "abc")
	if err != nil {
		t.Fatal(err)
	}
	if !s.IsEmpty() || off != 0 {
		t.Errorf("span = %v, offset = %d, want no progress and no hang", s, off)
	}
}

func TestSep(t *testing.T) {
	num := NewMany1[*ctx.Chars, rune](neu.Digit[rune]())
	comma := NewStr[*ctx.Chars](",")
	tests := []struct {
		name    string
		min     int
		skip    bool
		input   string
		wantLen int
		wantOff int
		wantErr error
	}{
		{"plain list", 1, false, "1,22,333 rest", 8, 8, nil},
		{"single element", 1, false, "7 rest", 1, 1, nil},
		{"trailing separator consumed", 1, false, "1,2, rest", 4, 4, nil},
		{"below min", 2, false, "5 rest", 0, 0, errs.ErrSeparate},
		{"no elements", 1, false, "rest", 0, 0, errs.ErrSeparate},
		{"skip tolerates missing sep", 2, true, "1 2", 1, 1, errs.ErrSeparate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re := NewSep[*ctx.Chars](num, comma, tt.min, tt.skip)
			s, off, err := matChars(re, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				if off != 0 {
					t.Errorf("offset after failure = %d, want 0", off)
				}
				return
			}
			if s.Len != tt.wantLen || off != tt.wantOff {
				t.Errorf("span = %v, offset = %d, want length %d, offset %d",
					s, off, tt.wantLen, tt.wantOff)
			}
		})
	}
}

func TestSep_SkipContinues(t *testing.T) {
	// With skip, elements need no separator between them at all.
	num := NewOnce[*ctx.Chars, rune](neu.Digit[rune]())
	re := NewSep[*ctx.Chars](num, NewStr[*ctx.Chars](","), 3, true)
	s, off, err := matChars(re, "1,23")
	if err != nil {
		t.Fatal(err)
	}
	if s != span.New(0, 4) || off != 4 {
		t.Errorf("span = %v, offset = %d, want the whole input", s, off)
	}
}

func TestSepOnce(t *testing.T) {
	key := NewMany1[*ctx.Chars, rune](neu.Alpha[rune]())
	val := NewMany1[*ctx.Chars, rune](neu.Digit[rune]())
	re := NewSepOnce[*ctx.Chars](key, NewStr[*ctx.Chars]("="), val)
	s, off, err := matChars(re, "port=8080;")
	if err != nil {
		t.Fatal(err)
	}
	if s != span.New(0, 9) || off != 9 {
		t.Errorf("span = %v, offset = %d, want {0 9}, 9", s, off)
	}

	_, off, err = matChars(re, "port=;")
	if err == nil {
		t.Fatal("expected failure")
	}
	if off != 0 {
		t.Errorf("offset after failure = %d, want 0", off)
	}
}

func TestCollect(t *testing.T) {
	hexPair := NewRepeatUnit[*ctx.Chars, rune](neu.HexDigit[rune](), 2, 2)
	re := NewCollect[*ctx.Chars](hexPair, 1)
	s, off, err := matChars(re, "deadbe!")
	if err != nil {
		t.Fatal(err)
	}
	if s != span.New(0, 6) || off != 6 {
		t.Errorf("span = %v, offset = %d, want {0 6}, 6", s, off)
	}

	_, off, err = matChars(re, "x")
	if !errors.Is(err, errs.ErrCollect) {
		t.Errorf("err = %v, want Collect", err)
	}
	if off != 0 {
		t.Errorf("offset after failure = %d, want 0", off)
	}
}

func TestThenDyn(t *testing.T) {
	// A digit prefix chooses how many following letters to take.
	count := NewOnce[*ctx.Chars, rune](neu.Digit[rune]())
	re := NewThenDyn[*ctx.Chars](count, func(c *ctx.Chars, s span.Span) (ctx.Regex[*ctx.Chars], error) {
		d, err := c.OrigSub(s.Beg, s.Len)
		if err != nil {
			return nil, err
		}
		n := int(d[0] - '0')
		return NewRepeatUnit[*ctx.Chars, rune](neu.Alpha[rune](), n, n), nil
	})

	s, off, err := matChars(re, "3abcde")
	if err != nil {
		t.Fatal(err)
	}
	if s != span.New(0, 4) || off != 4 {
		t.Errorf("span = %v, offset = %d, want {0 4}, 4", s, off)
	}

	_, off, err = matChars(re, "3ab")
	if err == nil {
		t.Fatal("expected failure when the body is short")
	}
	if off != 0 {
		t.Errorf("offset after failure = %d, want 0", off)
	}
}
