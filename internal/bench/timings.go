package bench

import (
	"time"
)

type Timings struct {
	Count         int
	Latest        time.Duration
	MovingAverage time.Duration
	Min, Max      time.Duration
}

func (t Timings) Add(d time.Duration) Timings {
	t.Latest = d

	if t.Count == 0 {
		t.Min = d
		t.Max = d
		t.MovingAverage = d
	} else {
		t.Min = min(t.Min, d)
		t.Max = max(t.Max, d)
		t.MovingAverage = (95*t.MovingAverage + 5*d) / 100
	}

	t.Count += 1

	return t
}

// TimingStats collects timings per scenario in order of first measurement.
type TimingStats struct {
	ByScenario    map[string]Timings
	ScenarioOrder []string
}

func NewTimingStats() TimingStats {
	return TimingStats{
		ByScenario: map[string]Timings{},
	}
}

func (t *TimingStats) MeasureScenario(name string) TimingStopwatch {
	startTime := time.Now()

	if _, ok := t.ByScenario[name]; !ok {
		t.ScenarioOrder = append(t.ScenarioOrder, name)
	}

	return TimingStopwatch{
		Stop: func() {
			duration := time.Since(startTime)
			t.ByScenario[name] = t.ByScenario[name].Add(duration)
		},
	}
}

type TimingStopwatch struct {
	Stop func()
}
