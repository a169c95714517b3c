package layout

import (
	"fmt"
	"reflect"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

type addr struct {
	ptr *int
}

type addrIndex struct {
	ptr   unsafe.Pointer
	index uintptr
}

type indexAddr struct {
	index uintptr
	ptr   *int
}

type span struct {
	from, to int
}

type triple struct {
	a, b, c int
}

type wide struct {
	values []int
	index  int
}

type nested struct {
	inner struct {
		a int16
		b int16
	}
	c int32
}

func TestOf(t *testing.T) {
	cases := []struct {
		Type     reflect.Type
		Expected Placement
	}{
		{reflect.TypeFor[int](), Scalar},
		{reflect.TypeFor[struct{}](), Scalar},
		{reflect.TypeFor[span](), Scalar},
		{reflect.TypeFor[nested](), Scalar},
		{reflect.TypeFor[[2]uint32](), Scalar},
		{reflect.TypeFor[*int](), Pointer},
		{reflect.TypeFor[addr](), Pointer},
		{reflect.TypeFor[addrIndex](), Pointer},
		{reflect.TypeFor[string](), Pointer},
		{reflect.TypeFor[map[int]int](), Pointer},
		{reflect.TypeFor[func()](), Pointer},
		{reflect.TypeFor[indexAddr](), None},
		{reflect.TypeFor[triple](), None},
		{reflect.TypeFor[wide](), None},
		{reflect.TypeFor[[]int](), None},
		{reflect.TypeFor[any](), None},
		{reflect.TypeFor[fmt.Stringer](), None},
		{reflect.TypeFor[[2]*int](), None},
	}

	for _, tc := range cases {
		t.Run(tc.Type.String(), func(t *testing.T) {
			require.Equal(t, tc.Expected, Of(tc.Type))
		})
	}
}

func TestPointerOffsets(t *testing.T) {
	require.Empty(t, PointerOffsets(reflect.TypeFor[span](), 0, nil))

	require.Equal(t,
		[]uintptr{WordSize},
		PointerOffsets(reflect.TypeFor[indexAddr](), 0, nil))

	require.Equal(t,
		[]uintptr{0, WordSize},
		PointerOffsets(reflect.TypeFor[any](), 0, nil))

	require.Equal(t,
		[]uintptr{4 * WordSize, 6 * WordSize},
		PointerOffsets(reflect.TypeFor[[2]indexAddr](), 3*WordSize, nil))
}

func TestHasPointers(t *testing.T) {
	require.False(t, HasPointers(reflect.TypeFor[triple]()))
	require.True(t, HasPointers(reflect.TypeFor[wide]()))
	require.False(t, HasPointers(reflect.TypeFor[[4]struct{}]()))
}

func TestPlacement_String(t *testing.T) {
	require.Equal(t, "scalar", Scalar.String())
	require.Equal(t, "pointer", Pointer.String())
	require.Equal(t, "none", None.String())
	require.True(t, Pointer.Inline())
	require.False(t, None.Inline())
}
