package erased

import (
	"sync/atomic"
)

// HeapStats counts the allocations made for cursors in owned storage.
type HeapStats struct {
	// Allocs is the number of owned cursor values allocated, either by
	// constructing or by cloning a cursor.
	Allocs uint64

	// Frees is the number of owned cursor values released.
	Frees uint64
}

// Live returns the number of owned cursor values that were not released yet.
func (s HeapStats) Live() int64 {
	return int64(s.Allocs) - int64(s.Frees)
}

// Sub returns the difference between two snapshots.
func (s HeapStats) Sub(other HeapStats) HeapStats {
	return HeapStats{
		Allocs: s.Allocs - other.Allocs,
		Frees:  s.Frees - other.Frees,
	}
}

var heapAllocs, heapFrees atomic.Uint64

// ReadHeapStats returns a snapshot of the process wide allocation counters.
func ReadHeapStats() HeapStats {
	return HeapStats{
		Allocs: heapAllocs.Load(),
		Frees:  heapFrees.Load(),
	}
}
