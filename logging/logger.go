package logging

type Logger interface {
	LogSampleRequest(components int, samples int, method string, seconds float64) // Takes in the sampling duration in seconds.
	LogAggregateLatencies(p50 float64, p75 float64, p95 float64)                  // Takes in percentile latencies in seconds.
}

// noopLogger does not perform any logging.
type noopLogger struct{}

func NewNoopLogger() *noopLogger {
	return &noopLogger{}
}

func (*noopLogger) LogSampleRequest(int, int, string, float64) {
	return
}

func (*noopLogger) LogAggregateLatencies(float64, float64, float64) {
	return
}
