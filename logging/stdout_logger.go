package logging

import (
	"log"
)

// stdoutLogger logs the output to standard output.
type stdoutLogger struct{}

func NewStdoutLogger() *stdoutLogger {
	return &stdoutLogger{}
}

func (*stdoutLogger) LogSampleRequest(components int, samples int, method string, seconds float64) {
	log.Printf("sampled %d x %d via %s in %.6fs\n", samples, components, method, seconds)
}

func (*stdoutLogger) LogAggregateLatencies(p50 float64, p75 float64, p95 float64) {
	log.Printf("sampling latency p50: %.6f, p75: %.6f, p95: %.6f\n", p50, p75, p95)
}
