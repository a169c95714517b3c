package erased

import (
	"log/slog"
	"maps"
	"reflect"
	"sync/atomic"
	"unsafe"

	"github.com/oliverbestmann/erased/internal/assert"
	"github.com/oliverbestmann/erased/internal/layout"
	"github.com/oliverbestmann/erased/internal/refl"
)

// Iterator is the capability set of a concrete cursor of type It yielding
// values of type T. The methods are implemented on *It.
type Iterator[T any, It any] interface {
	*It

	// Value returns the element at the current position.
	Value() T

	// Next advances the cursor by one element.
	Next()

	// Equal reports if both cursors point to the same position.
	Equal(other It) bool
}

// Addressable can optionally be implemented by a concrete cursor to expose
// the address of the current element.
type Addressable[T any] interface {
	Pointer() *T
}

// Cloner can optionally be implemented by concrete cursors and proxy
// values that need a deep copy to be duplicated.
type Cloner[T any] interface {
	Clone() T
}

// cursorType describes one concrete cursor type. It acts as the type tag of a
// Cursor and holds the operations on an untyped pointer to a value of the type.
type cursorType[T any] struct {
	Name      string
	Type      reflect.Type
	Placement layout.Placement

	// TrivialCopy indicates that a value can be duplicated
	// by copying its memory, e.g. it does not implement Cloner.
	TrivialCopy bool

	value     func(ptr unsafe.Pointer) T
	pointer   func(ptr unsafe.Pointer) *T
	next      func(ptr unsafe.Pointer)
	equal     func(lhs, rhs unsafe.Pointer) bool
	copyValue func(to, from unsafe.Pointer)
	newValue  func(from unsafe.Pointer) unsafe.Pointer
}

var cursorTypes atomic.Pointer[map[unsafe.Pointer]any]

func init() {
	// initialize the lookup table
	cursorTypes.Store(&map[unsafe.Pointer]any{})
}

func cursorTypeOf[T any, It any, P Iterator[T, It]]() *cursorType[T] {
	ptrToType := refl.TypeKey(refl.TypeFor[It]())

	if cached, ok := (*cursorTypes.Load())[ptrToType]; ok {
		return cached.(*cursorType[T])
	}

	return ensureCursorType(ptrToType, makeCursorType[T, It, P])
}

func ensureCursorType[T any](ptrToType unsafe.Pointer, makeType func() *cursorType[T]) *cursorType[T] {
	for {
		previousTypes := cursorTypes.Load()
		if cached, ok := (*previousTypes)[ptrToType]; ok {
			return cached.(*cursorType[T])
		}

		newType := makeType()

		newTypes := maps.Clone(*previousTypes)
		newTypes[ptrToType] = newType

		if cursorTypes.CompareAndSwap(previousTypes, &newTypes) {
			slog.Debug(
				"New cursor type registered",
				slog.String("name", newType.Name),
				slog.String("placement", newType.Placement.String()),
			)

			return newType
		}
	}
}

func makeCursorType[T any, It any, P Iterator[T, It]]() *cursorType[T] {
	reflectType := refl.TypeFor[It]()

	ty := &cursorType[T]{
		Name:      reflectType.String(),
		Type:      reflectType,
		Placement: layout.Of(reflectType),
	}

	if ty.Placement.Inline() {
		assert.FitsInto(reflectType, slotSize(ty.Placement))
		assert.AlignedTo(reflectType, layout.WordSize)
	}

	ty.value = func(ptr unsafe.Pointer) T {
		return P((*It)(ptr)).Value()
	}

	ty.next = func(ptr unsafe.Pointer) {
		P((*It)(ptr)).Next()
	}

	ty.equal = func(lhs, rhs unsafe.Pointer) bool {
		return P((*It)(lhs)).Equal(*(*It)(rhs))
	}

	if refl.Implements[Addressable[T]](reflectType) {
		ty.pointer = func(ptr unsafe.Pointer) *T {
			return any((*It)(ptr)).(Addressable[T]).Pointer()
		}
	} else {
		ty.pointer = func(ptr unsafe.Pointer) *T {
			value := P((*It)(ptr)).Value()
			return &value
		}
	}

	if refl.Implements[Cloner[It]](reflectType) {
		ty.copyValue = func(to, from unsafe.Pointer) {
			*(*It)(to) = any((*It)(from)).(Cloner[It]).Clone()
		}
	} else {
		ty.TrivialCopy = true

		ty.copyValue = func(to, from unsafe.Pointer) {
			*(*It)(to) = *(*It)(from)
		}
	}

	ty.newValue = func(from unsafe.Pointer) unsafe.Pointer {
		value := new(It)
		ty.copyValue(unsafe.Pointer(value), from)
		return unsafe.Pointer(value)
	}

	return ty
}
