// Package conv provides the standard value conversions used with ctor.Map:
// text to integer, bytes to text, byte order decoding and checked integer
// narrowing. Every conversion reports failure through the errs package so
// callers can branch on the error kind.
package conv

import (
	"encoding/binary"
	"strconv"
	"strings"
	"unicode/utf8"
	"unsafe"

	"github.com/coregx/parsec/ctor"
	"github.com/coregx/parsec/errs"
)

// Signed is the constraint for signed machine integers.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the constraint for unsigned machine integers.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integer is the constraint for machine integers of either signedness.
type Integer interface {
	Signed | Unsigned
}

func signed[T Integer]() bool {
	var z T
	return z-1 < z
}

func bits[T Integer]() int {
	var z T
	return int(unsafe.Sizeof(z)) * 8
}

// FromStr parses a decimal integer from the matched text.
func FromStr[T Integer]() ctor.MapFn[string, T] {
	return FromStrRadix[T](10)
}

// FromStrRadix parses an integer from the matched text in the given base.
func FromStrRadix[T Integer](base int) ctor.MapFn[string, T] {
	return func(s string) (T, error) {
		if signed[T]() {
			v, err := strconv.ParseInt(s, base, bits[T]())
			if err != nil {
				return 0, errs.ErrFromStr
			}
			return T(v), nil
		}
		v, err := strconv.ParseUint(s, base, bits[T]())
		if err != nil {
			return 0, errs.ErrFromStr
		}
		return T(v), nil
	}
}

// FromUtf8 converts matched bytes to a string, failing on invalid UTF-8.
func FromUtf8() ctor.MapFn[[]byte, string] {
	return func(b []byte) (string, error) {
		if !utf8.Valid(b) {
			return "", errs.ErrUtf8
		}
		return string(b), nil
	}
}

// FromUtf8Lossy converts matched bytes to a string, replacing invalid
// sequences with the replacement character. It never fails.
func FromUtf8Lossy() ctor.MapFn[[]byte, string] {
	return func(b []byte) (string, error) {
		return strings.ToValidUTF8(string(b), "�"), nil
	}
}

// FromLeBytes decodes a little-endian integer from exactly bits/8 matched
// bytes.
func FromLeBytes[T Integer]() ctor.MapFn[[]byte, T] {
	return fromBytes[T](binary.LittleEndian, errs.ErrFromLeBytes)
}

// FromBeBytes decodes a big-endian integer from exactly bits/8 matched
// bytes.
func FromBeBytes[T Integer]() ctor.MapFn[[]byte, T] {
	return fromBytes[T](binary.BigEndian, errs.ErrFromBeBytes)
}

func fromBytes[T Integer](order binary.ByteOrder, fail error) ctor.MapFn[[]byte, T] {
	size := bits[T]() / 8
	return func(b []byte) (T, error) {
		if len(b) != size {
			return 0, fail
		}
		var v uint64
		switch size {
		case 1:
			v = uint64(b[0])
		case 2:
			v = uint64(order.Uint16(b))
		case 4:
			v = uint64(order.Uint32(b))
		default:
			v = order.Uint64(b)
		}
		return T(v), nil
	}
}

// Widen converts between integer types without checking. Use it for
// conversions that cannot lose information, for example uint8 to int32.
func Widen[T, U Integer]() ctor.MapFn[T, U] {
	return func(v T) (U, error) {
		return U(v), nil
	}
}

// Narrow converts between integer types, failing when the value does not
// round-trip.
func Narrow[T, U Integer]() ctor.MapFn[T, U] {
	return func(v T) (U, error) {
		u := U(v)
		if T(u) != v || (v < 0) != (u < 0) {
			return 0, errs.ErrTryInto
		}
		return u, nil
	}
}
