package regex

import (
	"errors"
	"testing"

	"github.com/coregx/parsec/ctx"
	"github.com/coregx/parsec/errs"
	"github.com/coregx/parsec/neu"
	"github.com/coregx/parsec/span"
)

func TestThen(t *testing.T) {
	re := NewThen[*ctx.Chars](NewStr[*ctx.Chars]("ab"), NewStr[*ctx.Chars]("cd"))
	s, off, err := matChars(re, "abcdef")
	if err != nil {
		t.Fatal(err)
	}
	if s != span.New(0, 4) || off != 4 {
		t.Errorf("span = %v, offset = %d, want {0 4}, 4", s, off)
	}
}

func TestThen_RewindOnRightFailure(t *testing.T) {
	re := NewThen[*ctx.Chars](NewStr[*ctx.Chars]("ab"), NewStr[*ctx.Chars]("zz"))
	_, off, err := matChars(re, "abcdef")
	if !errors.Is(err, errs.ErrString) {
		t.Errorf("err = %v, want String", err)
	}
	if off != 0 {
		t.Errorf("offset after partial match failure = %d, want 0", off)
	}
}

func TestOr(t *testing.T) {
	re := NewOr[*ctx.Chars](NewStr[*ctx.Chars]("cat"), NewStr[*ctx.Chars]("car"))
	s, off, err := matChars(re, "carpet")
	if err != nil {
		t.Fatal(err)
	}
	if s != span.New(0, 3) || off != 3 {
		t.Errorf("span = %v, offset = %d, want {0 3}, 3", s, off)
	}

	_, off, err = matChars(re, "dog")
	if err == nil {
		t.Fatal("expected failure")
	}
	if off != 0 {
		t.Errorf("offset after failure = %d, want 0", off)
	}
}

func TestOr_FirstMatchWins(t *testing.T) {
	// "a" matches first even though "ab" would be longer.
	re := NewOr[*ctx.Chars](NewStr[*ctx.Chars]("a"), NewStr[*ctx.Chars]("ab"))
	s, _, err := matChars(re, "ab")
	if err != nil {
		t.Fatal(err)
	}
	if s != span.New(0, 1) {
		t.Errorf("span = %v, want the first alternative's match", s)
	}
}

func TestLtm(t *testing.T) {
	tests := []struct {
		name    string
		left    string
		right   string
		input   string
		wantLen int
		wantErr bool
	}{
		{"right longer", "a", "ab", "abc", 2, false},
		{"left longer", "abc", "a", "abc", 3, false},
		{"tie goes left", "ab", "ab", "abc", 2, false},
		{"only left matches", "ab", "zz", "abc", 2, false},
		{"only right matches", "zz", "ab", "abc", 2, false},
		{"both fail", "xx", "zz", "abc", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re := NewLtm[*ctx.Chars](NewStr[*ctx.Chars](tt.left), NewStr[*ctx.Chars](tt.right))
			s, off, err := matChars(re, tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected failure")
				}
				if off != 0 {
					t.Errorf("offset after failure = %d, want 0", off)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if s.Len != tt.wantLen || off != tt.wantLen {
				t.Errorf("span = %v, offset = %d, want length %d", s, off, tt.wantLen)
			}
		})
	}
}

func TestNot(t *testing.T) {
	re := NewNot[*ctx.Chars](NewStr[*ctx.Chars]("ab"))
	s, off, err := matChars(re, "xy")
	if err != nil {
		t.Fatal(err)
	}
	if s != span.New(0, 0) || off != 0 {
		t.Errorf("span = %v, offset = %d, want zero-width at 0", s, off)
	}

	_, off, err = matChars(re, "ab")
	if !errors.Is(err, errs.ErrFail) {
		t.Errorf("err = %v, want Fail", err)
	}
	if off != 0 {
		t.Errorf("offset = %d, want 0 (lookahead must not consume)", off)
	}
}

func TestNot_NeverConsumes(t *testing.T) {
	// Keyword boundary: "if" not followed by an identifier rune.
	re := NewThen[*ctx.Chars](
		NewStr[*ctx.Chars]("if"),
		NewNot[*ctx.Chars](NewOnce[*ctx.Chars, rune](neu.Alphanumeric[rune]())),
	)
	s, off, err := matChars(re, "if (x)")
	if err != nil {
		t.Fatal(err)
	}
	if s != span.New(0, 2) || off != 2 {
		t.Errorf("span = %v, offset = %d, want {0 2}, 2", s, off)
	}
	if _, _, err := matChars(re, "iffy"); err == nil {
		t.Error("identifier starting with the keyword should not match")
	}
}

func TestQuote(t *testing.T) {
	re := NewQuote[*ctx.Chars](
		NewStr[*ctx.Chars]("\""),
		NewMany0[*ctx.Chars, rune](neu.NewNot[rune](neu.NewEqual('"'))),
		NewStr[*ctx.Chars]("\""),
	)
	s, off, err := matChars(re, `"hi" rest`)
	if err != nil {
		t.Fatal(err)
	}
	if s != span.New(0, 4) || off != 4 {
		t.Errorf("span = %v, offset = %d, want {0 4}, 4", s, off)
	}

	_, off, err = matChars(re, `"unterminated`)
	if err == nil {
		t.Fatal("expected failure")
	}
	if off != 0 {
		t.Errorf("offset after failure = %d, want 0", off)
	}
}

func TestPadPadded(t *testing.T) {
	ws := NewWs[*ctx.Chars, rune]()
	pad := NewPad[*ctx.Chars](NewStr[*ctx.Chars]("a"), ws)
	s, off, err := matChars(pad, "a   b")
	if err != nil {
		t.Fatal(err)
	}
	if s != span.New(0, 4) || off != 4 {
		t.Errorf("Pad: span = %v, offset = %d, want {0 4}, 4", s, off)
	}

	padded := NewPadded[*ctx.Chars](ws, NewStr[*ctx.Chars]("b"))
	s, off, err = matChars(padded, "   b")
	if err != nil {
		t.Fatal(err)
	}
	if s != span.New(0, 4) || off != 4 {
		t.Errorf("Padded: span = %v, offset = %d, want {0 4}, 4", s, off)
	}
}

func TestIf(t *testing.T) {
	atStart := func(c *ctx.Chars) bool { return c.Offset() == 0 }
	re := NewIf[*ctx.Chars](atStart, NewStr[*ctx.Chars]("a"), NewStr[*ctx.Chars]("b"))

	if _, _, err := matChars(re, "ab"); err != nil {
		t.Errorf("then branch should match, got %v", err)
	}
	c := ctx.NewChars("ab").WithOffset(1)
	if _, err := c.TryMat(re); err != nil {
		t.Errorf("else branch should match, got %v", err)
	}
	c = ctx.NewChars("ba")
	if _, err := c.TryMat(re); err == nil {
		t.Error("then branch should fail on mismatched input")
	}
	if c.Offset() != 0 {
		t.Errorf("offset after failure = %d, want 0", c.Offset())
	}
}

func TestArray(t *testing.T) {
	re := NewArray[*ctx.Chars](
		NewStr[*ctx.Chars]("let"),
		NewStr[*ctx.Chars]("const"),
		NewStr[*ctx.Chars]("var"),
	)
	for _, tt := range []struct {
		input   string
		wantLen int
	}{
		{"let x", 3},
		{"const y", 5},
		{"var z", 3},
	} {
		s, _, err := matChars(re, tt.input)
		if err != nil {
			t.Errorf("input %q: %v", tt.input, err)
			continue
		}
		if s.Len != tt.wantLen {
			t.Errorf("input %q: span = %v, want length %d", tt.input, s, tt.wantLen)
		}
	}

	_, off, err := matChars(re, "func f")
	if !errors.Is(err, errs.ErrArray) {
		t.Errorf("err = %v, want Array", err)
	}
	if off != 0 {
		t.Errorf("offset after failure = %d, want 0", off)
	}
}
