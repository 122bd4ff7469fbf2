// Package errs defines the closed set of error kinds surfaced by the
// combinator engine.
//
// Every failure produced by a context, recogniser or constructor is one of
// the exported sentinel errors below (or a Uid error carrying a user code).
// Errors carry no nested cause: failure short-circuits and the innermost
// informative kind is reported.
package errs

import "fmt"

// Kind identifies the combinator or adapter that produced an error.
type Kind uint8

const (
	// KindEmpty is reported by the empty primitive (it never is, in
	// practice; Empty always succeeds) and kept for completeness.
	KindEmpty Kind = iota
	// KindFail is reported by the fail primitive and by Not when its
	// child matched.
	KindFail
	// KindString is a string-literal mismatch.
	KindString
	// KindSlice is a byte-literal mismatch.
	KindSlice
	// KindConsume means not enough items remained for Consume.
	KindConsume
	// KindStart is the start anchor asserted at a non-zero offset.
	KindStart
	// KindEnd is the end anchor asserted before the end of input.
	KindEnd
	// KindOutOfBound is an orig/peek access past the input.
	KindOutOfBound
	// KindOnce means a single-item matcher was unsatisfied.
	KindOnce
	// KindMany1 means a one-or-more matcher matched zero items.
	KindMany1
	// KindRepeat means a bounded repetition fell outside its range.
	KindRepeat
	// KindCollect means a collection matched fewer than min elements.
	KindCollect
	// KindSeparate means a separated list matched fewer than min elements.
	KindSeparate
	// KindSeparateCollect is the collecting flavour of KindSeparate.
	KindSeparateCollect
	// KindArray means every alternative of an array alternation failed.
	KindArray
	// KindPairArray means every alternative of a tagged alternation failed.
	KindPairArray
	// KindOption is a dereference of an unfilled recursive-parser cell.
	KindOption
	// KindLockMutex is an interior-mutable wrapper without a value, or a
	// wrapper whose lock could not be taken.
	KindLockMutex
	// KindFromStr is a failed string-to-value conversion.
	KindFromStr
	// KindTryInto is a failed checked narrowing conversion.
	KindTryInto
	// KindUtf8 is a failed UTF-8 validation.
	KindUtf8
	// KindFromLeBytes is a failed little-endian decode.
	KindFromLeBytes
	// KindFromBeBytes is a failed big-endian decode.
	KindFromBeBytes
	// KindSelectEq is a failed tuple equality projection.
	KindSelectEq
	// KindUid is a user-supplied error code.
	KindUid
)

var kindNames = [...]string{
	KindEmpty:           "Empty",
	KindFail:            "Fail",
	KindString:          "String",
	KindSlice:           "Slice",
	KindConsume:         "Consume",
	KindStart:           "Start",
	KindEnd:             "End",
	KindOutOfBound:      "OutOfBound",
	KindOnce:            "Once",
	KindMany1:           "Many1",
	KindRepeat:          "Repeat",
	KindCollect:         "Collect",
	KindSeparate:        "Separate",
	KindSeparateCollect: "SeparateCollect",
	KindArray:           "Array",
	KindPairArray:       "PairArray",
	KindOption:          "Option",
	KindLockMutex:       "LockMutex",
	KindFromStr:         "FromStr",
	KindTryInto:         "TryInto",
	KindUtf8:            "Utf8",
	KindFromLeBytes:     "FromLeBytes",
	KindFromBeBytes:     "FromBeBytes",
	KindSelectEq:        "SelectEq",
	KindUid:             "Uid",
}

// String returns the kind's name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Error is a parse failure of a particular kind. Two errors match under
// errors.Is when their kinds (and, for Uid errors, codes) are equal.
type Error struct {
	kind Kind
	code uint64
}

// New creates an error of the given kind. Prefer the exported sentinels;
// New exists for tests and for code that selects a kind dynamically.
func New(k Kind) *Error {
	return &Error{kind: k}
}

// Uid creates a user error carrying the given code.
func Uid(code uint64) *Error {
	return &Error{kind: KindUid, code: code}
}

// Kind returns the error's kind.
func (e *Error) Kind() Kind {
	return e.kind
}

// Code returns the user code of a Uid error, zero otherwise.
func (e *Error) Code() uint64 {
	return e.code
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.kind == KindUid {
		return fmt.Sprintf("parse error: Uid(%d)", e.code)
	}
	return "parse error: " + e.kind.String()
}

// Is reports whether target is an *Error of the same kind (and code).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.kind == t.kind && e.code == t.code
}

// Sentinel errors, one per kind. These are the values the engine returns;
// compare with errors.Is.
var (
	ErrEmpty           = New(KindEmpty)
	ErrFail            = New(KindFail)
	ErrString          = New(KindString)
	ErrSlice           = New(KindSlice)
	ErrConsume         = New(KindConsume)
	ErrStart           = New(KindStart)
	ErrEnd             = New(KindEnd)
	ErrOutOfBound      = New(KindOutOfBound)
	ErrOnce            = New(KindOnce)
	ErrMany1           = New(KindMany1)
	ErrRepeat          = New(KindRepeat)
	ErrCollect         = New(KindCollect)
	ErrSeparate        = New(KindSeparate)
	ErrSeparateCollect = New(KindSeparateCollect)
	ErrArray           = New(KindArray)
	ErrPairArray       = New(KindPairArray)
	ErrOption          = New(KindOption)
	ErrLockMutex       = New(KindLockMutex)
	ErrFromStr         = New(KindFromStr)
	ErrTryInto         = New(KindTryInto)
	ErrUtf8            = New(KindUtf8)
	ErrFromLeBytes     = New(KindFromLeBytes)
	ErrFromBeBytes     = New(KindFromBeBytes)
	ErrSelectEq        = New(KindSelectEq)
)
