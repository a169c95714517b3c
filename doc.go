// Package erased provides value types that hide the concrete type of a cursor
// or of a readable and writable location.
//
// A Cursor[T] wraps any concrete cursor that can produce a T, step forward and
// compare itself to another cursor of the same type. Small cursors, at most a
// type tag and an address in size, are stored inline in the Cursor value.
// Larger cursors are stored in a heap allocation owned by the Cursor.
//
// Cursors have value semantics, but a Go assignment does not know about owned
// storage. Use Clone to copy a cursor and Move to transfer it. The zero Cursor
// is empty, the same state a cursor is left in after it was moved from.
//
// A Location[T] is either bound to an existing T or owns a proxy value that
// converts to and from T. A View[T] pairs two cursors for range iteration.
package erased
