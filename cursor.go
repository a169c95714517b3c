package erased

import (
	"unsafe"
)

// Cursor is a cursor over a sequence of T with its concrete type erased.
//
// A Cursor must not be copied by assignment once it holds owned storage,
// as both copies would share the same concrete cursor. Use Clone or Move.
type Cursor[T any] struct {
	ty     *cursorType[T]
	mode   StorageMode
	inline inlineBuffer
	owned  unsafe.Pointer
}

// New erases the type of the given concrete cursor. Whether the value is stored
// inline or in owned storage only depends on the memory layout of It.
func New[T any, It any, P Iterator[T, It]](it It) Cursor[T] {
	ty := cursorTypeOf[T, It, P]()

	c := Cursor[T]{ty: ty}

	if ty.Placement.Inline() {
		c.mode = Inline
		*(*It)(c.inline.slot(ty.Placement)) = it
	} else {
		value := new(It)
		*value = it

		c.mode = Owned
		c.owned = unsafe.Pointer(value)
		heapAllocs.Add(1)
	}

	return c
}

func (c *Cursor[T]) ptr() unsafe.Pointer {
	switch c.mode {
	case Inline:
		return c.inline.slot(c.ty.Placement)
	case Owned:
		return c.owned
	default:
		return nil
	}
}

// Mode returns the storage mode of the cursor.
func (c *Cursor[T]) Mode() StorageMode {
	return c.mode
}

func (c *Cursor[T]) IsEmpty() bool {
	return c.mode == Empty
}

// TypeName returns the name of the concrete cursor type, or an empty string
// if the cursor is empty.
func (c *Cursor[T]) TypeName() string {
	if c.ty == nil {
		return ""
	}

	return c.ty.Name
}

// Value returns the current element. It panics with a *MisuseError
// if the cursor is empty.
func (c *Cursor[T]) Value() T {
	if c.mode == Empty {
		panic(misuse("Cursor.Value", ErrEmpty))
	}

	return c.ty.value(c.ptr())
}

// Pointer returns a pointer to the current element. If the concrete cursor is not
// Addressable, this is a pointer to a copy of the current element.
// It panics with a *MisuseError if the cursor is empty.
func (c *Cursor[T]) Pointer() *T {
	if c.mode == Empty {
		panic(misuse("Cursor.Pointer", ErrEmpty))
	}

	return c.ty.pointer(c.ptr())
}

// Next advances the cursor by one element. Advancing an empty cursor does nothing.
// The cursor must not be advanced past the end of its sequence.
func (c *Cursor[T]) Next() {
	if c.mode == Empty {
		return
	}

	c.ty.next(c.ptr())
}

// PostNext advances the cursor and returns a clone of the cursor taken
// before it was advanced.
func (c *Cursor[T]) PostNext() Cursor[T] {
	previous := c.Clone()
	c.Next()
	return previous
}

// Equal reports if both cursors wrap the same concrete cursor type and the
// concrete cursors are equal. Two empty cursors are always equal.
func (c *Cursor[T]) Equal(other *Cursor[T]) bool {
	if c.ty != other.ty {
		return false
	}

	if c.ty == nil {
		return true
	}

	return c.ty.equal(c.ptr(), other.ptr())
}

// Clone returns an independent copy of the cursor using the same storage mode.
// Cloning an inline cursor does not allocate, unless the concrete cursor is a Cloner.
func (c *Cursor[T]) Clone() Cursor[T] {
	clone := Cursor[T]{ty: c.ty, mode: c.mode}

	switch c.mode {
	case Inline:
		if c.ty.TrivialCopy {
			clone.inline = c.inline
		} else {
			clone.inline = c.cloneInline()
		}

	case Owned:
		clone.owned = c.ty.newValue(c.owned)
		heapAllocs.Add(1)
	}

	trace("copy", c.mode, c.ty)

	return clone
}

// cloneInline deep copies the inline value. The buffer escapes to the heap
// here, the clone in Clone must not.
func (c *Cursor[T]) cloneInline() inlineBuffer {
	var buf inlineBuffer
	c.ty.copyValue(buf.slot(c.ty.Placement), c.ptr())
	return buf
}

// Move transfers the content of the cursor into the returned value and
// leaves this cursor empty. Owned storage is handed over without allocation.
func (c *Cursor[T]) Move() Cursor[T] {
	trace("move", c.mode, c.ty)

	// exchange the source with an empty target
	var target Cursor[T]
	target, *c = *c, target

	return target
}

// CopyFrom releases the current content and replaces it with a clone of other.
func (c *Cursor[T]) CopyFrom(other *Cursor[T]) {
	if c == other {
		return
	}

	c.Release()
	*c = other.Clone()
}

// MoveFrom releases the current content and moves the content of other into this cursor.
func (c *Cursor[T]) MoveFrom(other *Cursor[T]) {
	if c == other {
		return
	}

	c.Release()
	*c = other.Move()
}

// Release drops the concrete cursor and leaves the cursor empty.
// Releasing an empty cursor does nothing.
func (c *Cursor[T]) Release() {
	if c.mode == Empty {
		return
	}

	trace("release", c.mode, c.ty)

	if c.mode == Owned {
		heapFrees.Add(1)
	}

	// clears inline memory in place and drops the reference to owned storage
	*c = Cursor[T]{}
}
