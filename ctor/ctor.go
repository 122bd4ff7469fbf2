// Package ctor implements the constructor layer of the combinator engine:
// combinators that, on successful recognition, build typed values from the
// matched region.
//
// Every recogniser lifts to a constructor through Pat, Str, Bytes or their
// handler-shaped With variants; constructor composites mirror the regex
// operators but project into typed pairs, slices and user types. Interface
// values provide the type erasure that recursive grammars need; the Rec
// fix-point cell ties the knot.
//
// Constructors follow the same cursor contract as recognisers: success
// advances the cursor past the match, failure leaves it at the pre-call
// offset.
package ctor

import (
	"github.com/coregx/parsec/ctx"
)

// Ctor builds a typed value from the input at the cursor.
type Ctor[C, O any] interface {
	Construct(c C) (O, error)
}

// CtorFunc adapts a plain function to the Ctor interface.
type CtorFunc[C, O any] func(c C) (O, error)

// Construct implements Ctor.
func (f CtorFunc[C, O]) Construct(c C) (O, error) {
	return f(c)
}

// Pair is the typed result of sequential composition.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Option is a possibly-absent value, the typed result of an optional
// branch.
type Option[T any] struct {
	val T
	ok  bool
}

// Some creates a present Option.
func Some[T any](val T) Option[T] {
	return Option[T]{val: val, ok: true}
}

// None creates an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.val, o.ok
}

// IsSome reports whether the value is present.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// StrPolicy is the capability a string-extracting constructor needs.
type StrPolicy[C any] interface {
	ctx.Policy[C]
	ctx.Origin[string]
}

// BytesPolicy is the capability a byte-extracting constructor needs.
type BytesPolicy[C any] interface {
	ctx.Policy[C]
	ctx.Origin[[]byte]
}

// guardConstruct runs a child constructor under a guard, recording failure
// so the guard rewinds on drop, mirroring Guard.TryMat for the ctor layer.
func guardConstruct[C ctx.Policy[C], O any](g *ctx.Guard[C], p Ctor[C, O]) (O, error) {
	o, err := p.Construct(g.Ctx())
	g.ProcessRet(err)
	return o, err
}
