package latency

import "time"

type Aggregation struct {
	P50 time.Duration // P50 is the 50th percentile sampling latency.
	P75 time.Duration // P75 is the 75th percentile sampling latency.
	P95 time.Duration // P95 is the 95th percentile sampling latency.
}

// Collector captures the wall-clock duration of individual sampling
// calls so percentile latencies can be reported.
type Collector interface {
	Add(t time.Duration)     // Add sends a new sampling duration to the collector.
	Len() int                // Len gets the number of durations collected.
	Aggregate() *Aggregation // Aggregate calculates percentile latencies over the collected durations.
	Reset()                  // Reset resets the state of the collector for reuse.
}
