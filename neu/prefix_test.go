package neu

import "testing"

func TestPrefix_IdentShape(t *testing.T) {
	p := NewPrefix[rune](Alpha[rune](), Alphanumeric[rune](), 1)
	for _, r := range "a1b2" {
		if !p.IsMatch(r) {
			t.Errorf("identifier rune %q should match", r)
		}
	}
	p.Reset()
	if p.IsMatch('1') {
		t.Error("first rune must satisfy the head matcher")
	}
	// Latched: everything fails until Reset.
	if p.IsMatch('a') {
		t.Error("latched matcher should keep failing")
	}
	p.Reset()
	if !p.IsMatch('a') {
		t.Error("Reset should unlatch the matcher")
	}
}

func TestPrefix_HeadCount(t *testing.T) {
	p := NewPrefix[rune](NewEqual('-'), Digit[rune](), 2)
	for i, r := range "--42" {
		if !p.IsMatch(r) {
			t.Errorf("rune %d (%q) should match", i, r)
		}
	}
	p.Reset()
	if !p.IsMatch('-') {
		t.Fatal("first head rune should match")
	}
	if p.IsMatch('4') {
		t.Error("second rune must still satisfy the head matcher")
	}
}

func TestAtomicPrefix(t *testing.T) {
	p := NewAtomicPrefix[rune](Alpha[rune](), Alphanumeric[rune](), 1)
	for _, r := range "x9" {
		if !p.IsMatch(r) {
			t.Errorf("rune %q should match", r)
		}
	}
	if p.IsMatch(' ') {
		t.Error("space should not match")
	}
	if p.IsMatch('a') {
		t.Error("latched matcher should keep failing")
	}
	p.Reset()
	if !p.IsMatch('a') {
		t.Error("Reset should unlatch the matcher")
	}
}
