package neu

import "unicode"

// Unit constrains the item types the built-in character classes accept.
type Unit interface {
	~byte | ~rune
}

// Any matches every item.
func Any[I any]() Neu[I] {
	return Func[I](func(I) bool { return true })
}

// None matches no item.
func None[I any]() Neu[I] {
	return Func[I](func(I) bool { return false })
}

// Alpha matches Unicode letters.
func Alpha[I Unit]() Neu[I] {
	return Func[I](func(i I) bool { return unicode.IsLetter(rune(i)) })
}

// Digit matches Unicode decimal digits.
func Digit[I Unit]() Neu[I] {
	return Func[I](func(i I) bool { return unicode.IsDigit(rune(i)) })
}

// Alphanumeric matches Unicode letters and decimal digits.
func Alphanumeric[I Unit]() Neu[I] {
	return Func[I](func(i I) bool {
		r := rune(i)
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	})
}

// Whitespace matches Unicode white space.
func Whitespace[I Unit]() Neu[I] {
	return Func[I](func(i I) bool { return unicode.IsSpace(rune(i)) })
}

// Lower matches Unicode lower-case letters.
func Lower[I Unit]() Neu[I] {
	return Func[I](func(i I) bool { return unicode.IsLower(rune(i)) })
}

// Upper matches Unicode upper-case letters.
func Upper[I Unit]() Neu[I] {
	return Func[I](func(i I) bool { return unicode.IsUpper(rune(i)) })
}

// AsciiAlpha matches ASCII letters only.
func AsciiAlpha[I Unit]() Neu[I] {
	return Func[I](func(i I) bool {
		r := rune(i)
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	})
}

// AsciiDigit matches ASCII decimal digits only.
func AsciiDigit[I Unit]() Neu[I] {
	return Func[I](func(i I) bool { return rune(i) >= '0' && rune(i) <= '9' })
}

// AsciiLower matches ASCII lower-case letters only.
func AsciiLower[I Unit]() Neu[I] {
	return Func[I](func(i I) bool { return rune(i) >= 'a' && rune(i) <= 'z' })
}

// AsciiUpper matches ASCII upper-case letters only.
func AsciiUpper[I Unit]() Neu[I] {
	return Func[I](func(i I) bool { return rune(i) >= 'A' && rune(i) <= 'Z' })
}

// AsciiWhitespace matches ASCII space, tab, CR, LF, FF and VT.
func AsciiWhitespace[I Unit]() Neu[I] {
	return Func[I](func(i I) bool {
		switch rune(i) {
		case ' ', '\t', '\r', '\n', '\f', '\v':
			return true
		}
		return false
	})
}

// HexDigit matches a hexadecimal digit.
func HexDigit[I Unit]() Neu[I] {
	return Func[I](func(i I) bool {
		r := rune(i)
		return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
	})
}
