package erased

import (
	"iter"
)

// View is a range defined by a pair of erased cursors.
type View[T any] struct {
	first, last Cursor[T]
}

func NewView[T any, It any, P Iterator[T, It]](first, last It) View[T] {
	return View[T]{
		first: New[T, It, P](first),
		last:  New[T, It, P](last),
	}
}

// ViewOf returns a view over all elements of the slice.
func ViewOf[T any](values []T) View[T] {
	return View[T]{
		first: Begin(values),
		last:  End(values),
	}
}

// ViewBetween moves both cursors into a new View.
func ViewBetween[T any](first, last *Cursor[T]) View[T] {
	return View[T]{
		first: first.Move(),
		last:  last.Move(),
	}
}

func (v *View[T]) Begin() *Cursor[T] {
	return &v.first
}

func (v *View[T]) End() *Cursor[T] {
	return &v.last
}

// All yields the elements from begin until a cursor equal to end is reached.
// Iteration works on a clone of begin, the view itself is not modified.
func (v *View[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		cursor := v.first.Clone()
		defer cursor.Release()

		for ; !cursor.Equal(&v.last); cursor.Next() {
			if !yield(cursor.Value()) {
				return
			}
		}
	}
}

func (v *View[T]) Clone() View[T] {
	return View[T]{
		first: v.first.Clone(),
		last:  v.last.Clone(),
	}
}

func (v *View[T]) Release() {
	v.first.Release()
	v.last.Release()
}
