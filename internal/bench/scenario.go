package bench

import (
	"log/slog"

	"github.com/oliverbestmann/erased"
)

// Scenario sums up all values using one way of traversing them.
type Scenario struct {
	Name string
	Sum  func(values []int) int
}

type Result struct {
	Scenario string
	Sum      int
	Timings  Timings
	Heap     erased.HeapStats
}

func Scenarios() []Scenario {
	return []Scenario{
		{Name: "slice", Sum: sumSlice},
		{Name: "inline", Sum: sumInline},
		{Name: "owned", Sum: sumOwned},
		{Name: "view", Sum: sumView},
		{Name: "location", Sum: sumLocation},
	}
}

// Lookup returns the scenarios with the given names, each at most once.
// An empty list selects all scenarios.
func Lookup(names []string) ([]Scenario, bool) {
	all := Scenarios()
	if len(names) == 0 {
		return all, true
	}

	var selected []Scenario
	for _, name := range names {
		idx := indexOf(all, name)
		if idx < 0 {
			return nil, false
		}

		if indexOf(selected, name) >= 0 {
			continue
		}

		selected = append(selected, all[idx])
	}

	return selected, true
}

func indexOf(scenarios []Scenario, name string) int {
	for idx, scenario := range scenarios {
		if scenario.Name == name {
			return idx
		}
	}

	return -1
}

// Run executes every scenario for the given number of rounds.
func Run(logger *slog.Logger, scenarios []Scenario, values []int, rounds int) []Result {
	stats := NewTimingStats()

	var results []Result
	for _, scenario := range scenarios {
		heapBefore := erased.ReadHeapStats()

		var sum int
		for range rounds {
			stopwatch := stats.MeasureScenario(scenario.Name)
			sum = scenario.Sum(values)
			stopwatch.Stop()
		}

		result := Result{
			Scenario: scenario.Name,
			Sum:      sum,
			Timings:  stats.ByScenario[scenario.Name],
			Heap:     erased.ReadHeapStats().Sub(heapBefore),
		}

		logger.Debug("Scenario finished",
			slog.String("scenario", result.Scenario),
			slog.Int("sum", result.Sum),
			slog.Duration("average", result.Timings.MovingAverage),
		)

		results = append(results, result)
	}

	return results
}

func sumSlice(values []int) int {
	var sum int
	for _, value := range values {
		sum += value
	}

	return sum
}

func sumInline(values []int) int {
	end := erased.End(values)

	var sum int
	for it := erased.Begin(values); !it.Equal(&end); it.Next() {
		sum += it.Value()
	}

	return sum
}

// strideIter is too large for inline storage.
type strideIter struct {
	values []int
	index  int
}

func (it *strideIter) Value() int { return it.values[it.index] }
func (it *strideIter) Next()      { it.index += 1 }

func (it *strideIter) Equal(other strideIter) bool {
	return it.index == other.index
}

func sumOwned(values []int) int {
	it := erased.New[int](strideIter{values: values})
	defer it.Release()

	end := erased.New[int](strideIter{values: values, index: len(values)})
	defer end.Release()

	var sum int
	for ; !it.Equal(&end); it.Next() {
		sum += it.Value()
	}

	return sum
}

func sumView(values []int) int {
	view := erased.ViewOf(values)

	var sum int
	for value := range view.All() {
		sum += value
	}

	return sum
}

func sumLocation(values []int) int {
	var sum int

	total := erased.Bind(&sum)
	for _, value := range values {
		total.Set(total.Get() + value)
	}

	return sum
}
