package erased

import (
	"unsafe"
)

// SliceIter is a concrete cursor over the backing array of a slice. It is
// the size of a pointer and an index and is always stored inline.
type SliceIter[T any] struct {
	base  unsafe.Pointer
	index uintptr
}

// IterOf returns concrete cursors to the first element of the slice and
// one past its last element.
func IterOf[T any](values []T) (first, last SliceIter[T]) {
	base := unsafe.Pointer(unsafe.SliceData(values))
	return SliceIter[T]{base: base}, SliceIter[T]{base: base, index: uintptr(len(values))}
}

// Begin returns an erased cursor to the first element of the slice.
func Begin[T any](values []T) Cursor[T] {
	first, _ := IterOf(values)
	return New[T](first)
}

// End returns an erased cursor one past the last element of the slice.
func End[T any](values []T) Cursor[T] {
	_, last := IterOf(values)
	return New[T](last)
}

func (it *SliceIter[T]) Value() T {
	return *it.Pointer()
}

func (it *SliceIter[T]) Pointer() *T {
	var tZero T
	return (*T)(unsafe.Add(it.base, it.index*unsafe.Sizeof(tZero)))
}

func (it *SliceIter[T]) Next() {
	it.index += 1
}

// Equal compares the addresses both cursors refer to, so cursors into
// different slices of the same array compare equal at the same element.
// Elements of zero size share one address and are compared by index.
func (it *SliceIter[T]) Equal(other SliceIter[T]) bool {
	var tZero T
	if unsafe.Sizeof(tZero) == 0 {
		return it.base == other.base && it.index == other.index
	}

	return it.addr() == other.addr()
}

func (it *SliceIter[T]) addr() uintptr {
	var tZero T
	return uintptr(it.base) + it.index*unsafe.Sizeof(tZero)
}
