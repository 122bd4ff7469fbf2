package parsec

import (
	"errors"
	"iter"
	"maps"
	"slices"
	"testing"

	"github.com/coregx/parsec/conv"
	"github.com/coregx/parsec/ctor"
	"github.com/coregx/parsec/ctx"
	"github.com/coregx/parsec/errs"
	"github.com/coregx/parsec/neu"
	"github.com/coregx/parsec/regex"
	"github.com/coregx/parsec/span"
)

func TestTryMat(t *testing.T) {
	c := NewChars("hello world")
	s, err := TryMat(c, regex.NewStr[*ctx.Chars]("hello"))
	if err != nil {
		t.Fatal(err)
	}
	if s != span.New(0, 5) || c.Offset() != 5 {
		t.Errorf("span = %v, offset = %d, want {0 5}, 5", s, c.Offset())
	}
}

func TestInvoke_RewindOnFailure(t *testing.T) {
	c := NewChars("abc")
	p := ctor.NewThen[*ctx.Chars, string, string](
		ctor.NewStr[*ctx.Chars](regex.NewStr[*ctx.Chars]("ab")),
		ctor.NewStr[*ctx.Chars](regex.NewStr[*ctx.Chars]("zz")),
	)
	if _, err := Invoke[*ctx.Chars, ctor.Pair[string, string]](c, p); err == nil {
		t.Fatal("expected failure")
	}
	if c.Offset() != 0 {
		t.Errorf("offset after failure = %d, want 0", c.Offset())
	}
}

func TestInvokeWith(t *testing.T) {
	c := NewChars("abba")
	got, err := InvokeWith(c, regex.NewMany1[*ctx.Chars, rune](neu.Alpha[rune]()),
		func(s Span) (int, error) { return s.Len, nil })
	if err != nil {
		t.Fatal(err)
	}
	if got != 4 {
		t.Errorf("InvokeWith = %d, want 4", got)
	}
}

func TestMapMat(t *testing.T) {
	digits := regex.NewMany1[*ctx.Chars, rune](neu.Digit[rune]())
	c := NewChars("204 No Content")
	got, err := Invoke(c, MapMat[*ctx.Chars](digits, conv.FromStr[int]()))
	if err != nil {
		t.Fatal(err)
	}
	if got != 204 {
		t.Errorf("MapMat = %d, want 204", got)
	}
}

// A bracketed list of decimals with incidental whitespace handled by the
// context's ignore hook.
func TestParseDecimalList(t *testing.T) {
	digits := regex.NewMany1[*ctx.Chars, rune](neu.Digit[rune]())
	num := MapMat[*ctx.Chars](digits, conv.FromStr[int]())
	list := ctor.NewQuote[*ctx.Chars, []int](
		regex.NewStr[*ctx.Chars]("["),
		ctor.NewSep[*ctx.Chars, int](num, regex.NewStr[*ctx.Chars](","), 0, false),
		regex.NewStr[*ctx.Chars]("]"),
	)

	c := NewChars("[ 1, 23 , 456 ]").WithIgnore(regex.NewWs[*ctx.Chars, rune]())
	got, err := Invoke[*ctx.Chars, []int](c, list)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{1, 23, 456}; !slices.Equal(got, want) {
		t.Errorf("Invoke = %v, want %v", got, want)
	}
	if c.Offset() != c.Len() {
		t.Errorf("offset = %d, want the whole input consumed", c.Offset())
	}

	c = NewChars("[]").WithIgnore(regex.NewWs[*ctx.Chars, rune]())
	got, err = Invoke[*ctx.Chars, []int](c, list)
	if err != nil {
		t.Fatalf("empty list should parse, got %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Invoke = %v, want an empty list", got)
	}
}

// Query-string pairs collected straight into a map.
func TestParseKeyValueMap(t *testing.T) {
	word := ctor.NewStr[*ctx.Chars](regex.NewMany1[*ctx.Chars, rune](neu.Alphanumeric[rune]()))
	entry := ctor.NewSepOnce[*ctx.Chars, string, string](word, regex.NewStr[*ctx.Chars]("="), word)
	query := ctor.NewSepCollect[*ctx.Chars, ctor.Pair[string, string], map[string]string](
		entry, regex.NewStr[*ctx.Chars]("&"), 1, false,
		func(seq iter.Seq[ctor.Pair[string, string]]) map[string]string {
			var pairs iter.Seq2[string, string] = func(yield func(string, string) bool) {
				for kv := range seq {
					if !yield(kv.First, kv.Second) {
						return
					}
				}
			}
			return maps.Collect(pairs)
		},
	)

	c := NewChars("host=local&port=80&debug=1")
	got, err := Invoke[*ctx.Chars, map[string]string](c, query)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]string{"host": "local", "port": "80", "debug": "1"}
	if !maps.Equal(got, want) {
		t.Errorf("Invoke = %v, want %v", got, want)
	}
}

// Longest-token matching picks "value" over its prefix "val".
func TestLongestKeyword(t *testing.T) {
	p := ctor.NewLtm[*ctx.Chars, string](
		ctor.NewStr[*ctx.Chars](regex.NewStr[*ctx.Chars]("val")),
		ctor.NewStr[*ctx.Chars](regex.NewStr[*ctx.Chars]("value")),
	)
	c := NewChars("value = 3")
	got, err := Invoke[*ctx.Chars, string](c, p)
	if err != nil {
		t.Fatal(err)
	}
	if got != "value" {
		t.Errorf("Invoke = %q, want %q", got, "value")
	}
	if c.Offset() != 5 {
		t.Errorf("offset = %d, want 5", c.Offset())
	}
}

// A recursive grammar counting bracket nesting depth.
func TestRecursiveBrackets(t *testing.T) {
	p := ctor.RecParser(func(cell *ctor.Rec[*ctx.Chars, int]) ctor.Ctor[*ctx.Chars, int] {
		nested := ctor.NewQuote[*ctx.Chars, int](
			regex.NewStr[*ctx.Chars]("["),
			cell,
			regex.NewStr[*ctx.Chars]("]"),
		)
		deeper := ctor.NewMap[*ctx.Chars, int, int](nested, func(n int) (int, error) {
			return n + 1, nil
		})
		leaf := ctor.NewWithValue[*ctx.Chars, int](0, regex.NewStr[*ctx.Chars]("x"))
		return ctor.NewOr[*ctx.Chars, int](deeper, leaf)
	})

	c := NewChars("[[[x]]]")
	got, err := Invoke[*ctx.Chars, int](c, p)
	if err != nil {
		t.Fatal(err)
	}
	if got != 3 {
		t.Errorf("depth = %d, want 3", got)
	}

	c = NewChars("[[x]")
	if _, err := Invoke[*ctx.Chars, int](c, p); err == nil {
		t.Fatal("unbalanced input should fail")
	}
	if c.Offset() != 0 {
		t.Errorf("offset after failure = %d, want 0", c.Offset())
	}
}

// A number with an optional fractional part.
func TestOptionalFraction(t *testing.T) {
	digits := regex.NewMany1[*ctx.Chars, rune](neu.Digit[rune]())
	intPart := MapMat[*ctx.Chars](digits, conv.FromStr[int]())
	frac := MapMat[*ctx.Chars](digits, conv.FromStr[int]())
	p := ctor.NewIfThen[*ctx.Chars, int, int](intPart, regex.NewStr[*ctx.Chars]("."), frac)

	c := NewChars("3.14")
	got, err := Invoke[*ctx.Chars, ctor.Pair[int, ctor.Option[int]]](c, p)
	if err != nil {
		t.Fatal(err)
	}
	f, ok := got.Second.Get()
	if got.First != 3 || !ok || f != 14 {
		t.Errorf("Invoke = %+v, want {3 Some(14)}", got)
	}

	c = NewChars("42;")
	got, err = Invoke[*ctx.Chars, ctor.Pair[int, ctor.Option[int]]](c, p)
	if err != nil {
		t.Fatal(err)
	}
	if got.First != 42 || got.Second.IsSome() {
		t.Errorf("Invoke = %+v, want {42 None}", got)
	}
	if c.Offset() != 2 {
		t.Errorf("offset = %d, want 2", c.Offset())
	}
}

// Little-endian 16-bit integers decoded from a byte stream.
func TestDecodeLittleEndian(t *testing.T) {
	word := MapMatBytes[*ctx.Bytes](regex.NewConsume[*ctx.Bytes, byte](2), conv.FromLeBytes[int16]())
	p := ctor.NewCollect[*ctx.Bytes, int16](word, 1)

	c := NewBytes([]byte{0x01, 0x00, 0xFF, 0xFF, 0x00, 0x01})
	got, err := Invoke[*ctx.Bytes, []int16](c, p)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int16{1, -1, 256}; !slices.Equal(got, want) {
		t.Errorf("Invoke = %v, want %v", got, want)
	}
	if c.Offset() != 6 {
		t.Errorf("offset = %d, want 6", c.Offset())
	}

	// A trailing odd byte is left unconsumed.
	c = NewBytes([]byte{0x01, 0x00, 0x02})
	got, err = Invoke[*ctx.Bytes, []int16](c, p)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int16{1}; !slices.Equal(got, want) {
		t.Errorf("Invoke = %v, want %v", got, want)
	}
	if c.Offset() != 2 {
		t.Errorf("offset = %d, want 2", c.Offset())
	}

	c = NewBytes(nil)
	if _, err := Invoke[*ctx.Bytes, []int16](c, p); !errors.Is(err, errs.ErrCollect) {
		t.Errorf("empty input: err = %v, want Collect", err)
	}
}
