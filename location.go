package erased

import (
	"reflect"

	"github.com/oliverbestmann/erased/internal/refl"
)

// Location is a place where a T can be read and overwritten. It is either bound
// to an existing T, or owns a proxy value that converts to and from T.
//
// Copying a Location by assignment shares the underlying proxy. Use Clone to
// get an independent proxy.
type Location[T any] struct {
	impl locationImpl[T]
}

// Proxy is the capability set of a proxy value of type P standing in for a T.
// The methods are implemented on *P.
type Proxy[T any, P any] interface {
	*P

	// Load converts the current state of the proxy to a T.
	Load() T

	// Store replaces the state of the proxy with one constructed from value.
	Store(value T)
}

type loadStorer[T any] interface {
	Load() T
	Store(value T)
}

type locationImpl[T any] interface {
	ref() *T
	set(value T)
	clone() locationImpl[T]
}

// Bind returns a Location bound to the value target points to.
func Bind[T any](target *T) Location[T] {
	if target == nil {
		panic(misuse("Bind", ErrUnbound))
	}

	return Location[T]{impl: binding[T]{target: target}}
}

// Wrap returns a Location owning the given proxy value.
func Wrap[T any, P any, PP Proxy[T, P]](value P) Location[T] {
	return Location[T]{impl: &proxy[T, P]{data: value}}
}

// Convert returns a Location owning a value of type V that is converted
// from and to T using the conversion rules of the language. It panics with
// a *ConversionError if V and T can not be converted in both directions.
func Convert[T any, V any](value V) Location[T] {
	from, to := refl.TypeFor[V](), refl.TypeFor[T]()

	if !from.ConvertibleTo(to) || !to.ConvertibleTo(from) {
		panic(&ConversionError{From: from, To: to, Reason: "types are not convertible"})
	}

	return Location[T]{impl: &conversion[T, V]{data: value, from: from, to: to}}
}

// Of selects the kind of Location by the static type of arg. A *T is bound
// directly. A value whose pointer implements Load and Store for T becomes a proxy.
// Any other value must be convertible to and from T and is wrapped using Convert.
func Of[T any, A any](arg A) Location[T] {
	argType, valueType := refl.TypeFor[A](), refl.TypeFor[T]()

	switch {
	case argType == reflect.PointerTo(valueType):
		return Bind(any(arg).(*T))

	case argType == valueType:
		panic(&ConversionError{From: argType, To: valueType, Reason: "pass a pointer to bind a value"})

	case refl.Implements[loadStorer[T]](argType):
		return Location[T]{impl: &proxy[T, A]{data: arg}}

	default:
		return Convert[T](arg)
	}
}

// IsBound reports if the location refers to anything. The zero
// Location is not bound.
func (l Location[T]) IsBound() bool {
	return l.impl != nil
}

// Get reads the current value of the location. A proxy is converted again on every call.
func (l Location[T]) Get() T {
	if l.impl == nil {
		panic(misuse("Location.Get", ErrUnbound))
	}

	return *l.impl.ref()
}

// Ref returns a pointer to the current value. For a bound location this is
// the bound value itself. For a proxy this is working storage holding the
// freshly converted value, only valid until the next call to Get, Ref or Set.
func (l Location[T]) Ref() *T {
	if l.impl == nil {
		panic(misuse("Location.Ref", ErrUnbound))
	}

	return l.impl.ref()
}

// Set overwrites the bound value, or stores the value into the proxy.
func (l Location[T]) Set(value T) {
	if l.impl == nil {
		panic(misuse("Location.Set", ErrUnbound))
	}

	l.impl.set(value)
}

// Clone returns a Location bound to the same value, or owning a copy of the proxy.
func (l Location[T]) Clone() Location[T] {
	if l.impl == nil {
		return Location[T]{}
	}

	return Location[T]{impl: l.impl.clone()}
}

type binding[T any] struct {
	target *T
}

func (b binding[T]) ref() *T {
	return b.target
}

func (b binding[T]) set(value T) {
	*b.target = value
}

func (b binding[T]) clone() locationImpl[T] {
	return b
}

type proxy[T any, P any] struct {
	data P

	// working storage for the value returned by ref
	value T
}

func (p *proxy[T, P]) ref() *T {
	p.value = any(&p.data).(loadStorer[T]).Load()
	return &p.value
}

func (p *proxy[T, P]) set(value T) {
	any(&p.data).(loadStorer[T]).Store(value)
}

func (p *proxy[T, P]) clone() locationImpl[T] {
	return &proxy[T, P]{data: cloneOf(p.data)}
}

type conversion[T any, V any] struct {
	data     V
	from, to reflect.Type

	// working storage for the value returned by ref
	value T
}

func (c *conversion[T, V]) ref() *T {
	converted := reflect.ValueOf(&c.data).Elem().Convert(c.to)
	reflect.ValueOf(&c.value).Elem().Set(converted)
	return &c.value
}

func (c *conversion[T, V]) set(value T) {
	converted := reflect.ValueOf(&value).Elem().Convert(c.from)
	reflect.ValueOf(&c.data).Elem().Set(converted)
}

func (c *conversion[T, V]) clone() locationImpl[T] {
	return &conversion[T, V]{data: cloneOf(c.data), from: c.from, to: c.to}
}

func cloneOf[V any](value V) V {
	if cloner, ok := any(&value).(Cloner[V]); ok {
		return cloner.Clone()
	}

	return value
}
