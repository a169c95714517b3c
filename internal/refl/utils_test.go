package refl

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

type point struct {
	X, Y int
	name string
}

func (p *point) String() string {
	return p.name
}

func TestIterFields(t *testing.T) {
	var names []string
	for field := range IterFields(reflect.TypeFor[point]()) {
		names = append(names, field.Name)
	}

	require.Equal(t, []string{"X", "Y", "name"}, names)
}

func TestIterFields_StopsEarly(t *testing.T) {
	var count int
	for range IterFields(reflect.TypeFor[point]()) {
		count++
		break
	}

	require.Equal(t, 1, count)
}

func TestTypeKey(t *testing.T) {
	require.Equal(t, TypeKey(reflect.TypeFor[int]()), TypeKey(TypeFor[int]()))
	require.NotEqual(t, TypeKey(reflect.TypeFor[int]()), TypeKey(reflect.TypeFor[int64]()))
	require.Equal(t, reflect.TypeFor[fmt.Stringer](), TypeFor[fmt.Stringer]())
}

func TestImplements(t *testing.T) {
	require.True(t, Implements[fmt.Stringer](reflect.TypeFor[point]()))
	require.False(t, Implements[fmt.Stringer](reflect.TypeFor[int]()))
}
