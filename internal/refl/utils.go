package refl

import (
	"iter"
	"reflect"
	"unsafe"
)

func IterFields(ty reflect.Type) iter.Seq[reflect.StructField] {
	return func(yield func(reflect.StructField) bool) {
		for idx := range ty.NumField() {
			if !yield(ty.Field(idx)) {
				return
			}
		}
	}
}

// TypeFor returns the reflect.Type of T. Unlike reflect.TypeFor this never
// converts a value of T to an interface.
func TypeFor[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// TypeKey returns a pointer that uniquely identifies the given type
// for the lifetime of the process.
func TypeKey(t reflect.Type) unsafe.Pointer {
	type eface struct {
		typ, val unsafe.Pointer
	}

	// a reflect.Type is backed by an *rType. The rType contains a abi.Type as
	// its first value. This means, that a *rType can be re-interpreted as *abi.Type
	return (*eface)(unsafe.Pointer(&t)).val
}

// Implements reports whether a pointer to a value of type ty implements If.
func Implements[If any](ty reflect.Type) bool {
	return reflect.PointerTo(ty).Implements(TypeFor[If]())
}
