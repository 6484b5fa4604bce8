package latency

import (
	"fmt"
	"sync"
	"time"

	"github.com/montanaflynn/stats"
)

// arrayCollector captures every timing it is given. As storage and
// computation are both O(n), this has been designed for ephemeral
// usage such as tests and short benchmarking runs.
type arrayCollector struct {
	durationsSeconds    []float64
	durationsSecondsMux *sync.Mutex
}

func NewArrayCollector() *arrayCollector {
	return &arrayCollector{
		durationsSeconds:    []float64{},
		durationsSecondsMux: &sync.Mutex{},
	}
}

// All gets all the durations collected, in seconds.
func (c *arrayCollector) All() []float64 {
	c.durationsSecondsMux.Lock()
	defer c.durationsSecondsMux.Unlock()
	durations := make([]float64, len(c.durationsSeconds))
	copy(durations, c.durationsSeconds)
	return durations
}

func (c *arrayCollector) Len() int {
	c.durationsSecondsMux.Lock()
	defer c.durationsSecondsMux.Unlock()
	return len(c.durationsSeconds)
}

func (c *arrayCollector) Add(t time.Duration) {
	c.durationsSecondsMux.Lock()
	c.durationsSeconds = append(c.durationsSeconds, float64(t)/float64(time.Second))
	c.durationsSecondsMux.Unlock()
}

func (c *arrayCollector) Aggregate() *Aggregation {
	// The stats package creates a copy of the array, so we must hold
	// onto the mutex while calculations are being made.
	c.durationsSecondsMux.Lock()
	defer c.durationsSecondsMux.Unlock()

	// The stats package requires input arrays to be non-empty.
	if len(c.durationsSeconds) == 0 {
		return &Aggregation{
			P50: 0,
			P75: 0,
			P95: 0,
		}
	}

	p50, err := stats.Median(c.durationsSeconds)
	if err != nil {
		panic(fmt.Errorf("unexpected err in arrayCollector.Aggregate() while calculating p50: %w", err))
	}
	p75, err := stats.Percentile(c.durationsSeconds, 75)
	if err != nil {
		panic(fmt.Errorf("unexpected err in arrayCollector.Aggregate() while calculating p75: %w", err))
	}
	p95, err := stats.Percentile(c.durationsSeconds, 95)
	if err != nil {
		panic(fmt.Errorf("unexpected err in arrayCollector.Aggregate() while calculating p95: %w", err))
	}

	return &Aggregation{
		P50: time.Duration(p50 * float64(time.Second)),
		P75: time.Duration(p75 * float64(time.Second)),
		P95: time.Duration(p95 * float64(time.Second)),
	}
}

func (c *arrayCollector) Reset() {
	c.durationsSecondsMux.Lock()
	c.durationsSeconds = []float64{}
	c.durationsSecondsMux.Unlock()
}
