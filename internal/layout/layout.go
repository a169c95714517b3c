package layout

import (
	"reflect"
	"unsafe"

	"github.com/oliverbestmann/erased/internal/refl"
)

// WordSize is the size of a machine word in bytes.
const WordSize = unsafe.Sizeof(uintptr(0))

// InlineSize is the largest value size that can be stored inline. It matches
// a cursor consisting of a type tag and a single address.
const InlineSize = 2 * WordSize

// Placement describes where a value of some type can be stored inside
// an inline buffer without hiding pointers from the garbage collector.
type Placement uint8

const (
	// None means the type does not fit any inline slot and must be heap allocated.
	None Placement = iota

	// Scalar types contain no pointers and are stored in untyped words.
	Scalar

	// Pointer types hold a pointer in their first word and nothing but scalars after it.
	Pointer
)

func (p Placement) String() string {
	switch p {
	case Scalar:
		return "scalar"
	case Pointer:
		return "pointer"
	default:
		return "none"
	}
}

// Inline reports if the placement refers to an inline slot.
func (p Placement) Inline() bool {
	return p != None
}

// Of calculates the inline placement for values of type t.
func Of(t reflect.Type) Placement {
	if t.Size() > InlineSize || uintptr(t.Align()) > WordSize {
		return None
	}

	offsets := PointerOffsets(t, 0, nil)

	switch {
	case len(offsets) == 0:
		return Scalar

	case len(offsets) == 1 && offsets[0] == 0:
		return Pointer

	default:
		return None
	}
}

// PointerOffsets appends the offsets of all words within t that hold a pointer
// the garbage collector needs to trace. base is the offset of t within its parent.
func PointerOffsets(t reflect.Type, base uintptr, offsets []uintptr) []uintptr {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan, reflect.Func:
		return append(offsets, base)

	case reflect.String, reflect.Slice:
		// the data pointer is the first word of the header
		return append(offsets, base)

	case reflect.Interface:
		// both the type word and the data word
		return append(offsets, base, base+WordSize)

	case reflect.Array:
		elem := t.Elem()
		if elem.Size() == 0 {
			return offsets
		}

		for idx := range t.Len() {
			offsets = PointerOffsets(elem, base+uintptr(idx)*elem.Size(), offsets)
		}

		return offsets

	case reflect.Struct:
		for field := range refl.IterFields(t) {
			offsets = PointerOffsets(field.Type, base+field.Offset, offsets)
		}

		return offsets

	default:
		return offsets
	}
}

// HasPointers indicates that a value of the type contains pointers, e.g.
// by having a field of type *T, a string, a slice or a map value.
func HasPointers(t reflect.Type) bool {
	return len(PointerOffsets(t, 0, nil)) > 0
}
