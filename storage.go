package erased

import (
	"fmt"
	"unsafe"

	"github.com/oliverbestmann/erased/internal/layout"
)

// StorageMode describes how a Cursor holds its concrete cursor value.
type StorageMode uint8

const (
	// Empty cursors hold no value. This is the zero value of a Cursor
	// and the state a cursor is left in after being moved from or released.
	Empty StorageMode = iota

	// Inline cursors embed the concrete cursor value.
	Inline

	// Owned cursors hold an exclusively owned heap allocation.
	Owned
)

func (m StorageMode) String() string {
	switch m {
	case Inline:
		return "inline"
	case Owned:
		return "owned"
	default:
		return "empty"
	}
}

// inlineBuffer provides a typed slot for each layout.Placement: values with
// a leading pointer start at ptr and may spill into words[0], pointer free
// values live in words. The garbage collector only ever finds pointers in ptr.
type inlineBuffer struct {
	ptr   unsafe.Pointer
	words [layout.InlineSize / layout.WordSize]uintptr
}

func (b *inlineBuffer) slot(placement layout.Placement) unsafe.Pointer {
	switch placement {
	case layout.Pointer:
		return unsafe.Pointer(&b.ptr)

	case layout.Scalar:
		return unsafe.Pointer(&b.words)

	default:
		panic(fmt.Sprintf("no inline slot for placement %s", placement))
	}
}

func slotSize(placement layout.Placement) uintptr {
	switch placement {
	case layout.Pointer:
		return unsafe.Sizeof(inlineBuffer{})

	case layout.Scalar:
		return unsafe.Sizeof(inlineBuffer{}.words)

	default:
		return 0
	}
}
