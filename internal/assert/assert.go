package assert

import (
	"fmt"
	"reflect"
)

func FitsInto(t reflect.Type, size uintptr) {
	if t.Size() > size {
		panic(fmt.Sprintf("type %s of size %d does not fit into %d bytes", t, t.Size(), size))
	}
}

func AlignedTo(t reflect.Type, align uintptr) {
	if uintptr(t.Align()) > align {
		panic(fmt.Sprintf("type %s requires alignment %d, slot is aligned to %d", t, t.Align(), align))
	}
}
