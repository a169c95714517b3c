package erased

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestView_All(t *testing.T) {
	view := NewView[int](counter{n: 0}, counter{n: 3})
	require.Equal(t, []int{0, 1, 2}, slices.Collect(view.All()))

	// iteration does not advance the view
	require.Equal(t, 0, view.Begin().Value())
	require.Equal(t, []int{0, 1, 2}, slices.Collect(view.All()))
}

func TestView_Break(t *testing.T) {
	first, last := listOf(1, 2, 3, 4)
	view := NewView[int](first, last)

	var values []int
	for value := range view.All() {
		if value == 3 {
			break
		}

		values = append(values, value)
	}

	require.Equal(t, []int{1, 2}, values)
}

func TestView_Owned(t *testing.T) {
	values := []int{5, 6, 7}

	before := ReadHeapStats()

	view := NewView[int](wideIter{values: values}, wideIter{values: values, index: len(values)})
	require.Equal(t, Owned, view.Begin().Mode())
	require.Equal(t, values, slices.Collect(view.All()))

	view.Release()

	stats := ReadHeapStats().Sub(before)
	require.Zero(t, stats.Live())

	// two cursors in the view and one clone used for iteration
	require.Equal(t, uint64(3), stats.Allocs)
}

func TestView_Between(t *testing.T) {
	values := []int{1, 2, 3}

	begin, end := Begin(values), End(values)
	begin.Next()

	view := ViewBetween(&begin, &end)
	require.True(t, begin.IsEmpty())
	require.True(t, end.IsEmpty())

	require.Equal(t, []int{2, 3}, slices.Collect(view.All()))
}

func TestView_Clone(t *testing.T) {
	view := ViewOf([]int{1, 2})

	clone := view.Clone()
	clone.Begin().Next()

	require.Equal(t, []int{1, 2}, slices.Collect(view.All()))
	require.Equal(t, []int{2}, slices.Collect(clone.All()))

	clone.Release()
	require.True(t, clone.Begin().IsEmpty())
	require.Empty(t, slices.Collect(clone.All()))
}
