package main

import (
	"fmt"
	"log"
	"time"

	"github.com/kcz17/dirichlet/config"
	"github.com/kcz17/dirichlet/dirichlet"
	"github.com/kcz17/dirichlet/latency"
	"github.com/kcz17/dirichlet/logging"
	"github.com/kcz17/dirichlet/serving"
)

func main() {
	conf := config.ReadConfig()
	fmt.Printf("Loaded config:\n%+v\n", conf)

	var logger logging.Logger
	if *conf.Logging.Driver == "noop" {
		logger = logging.NewNoopLogger()
	} else if *conf.Logging.Driver == "stdout" {
		logger = logging.NewStdoutLogger()
	} else if *conf.Logging.Driver == "influxdb" {
		logger = logging.NewInfluxDBLogger(
			*conf.Logging.InfluxDB.Host,
			*conf.Logging.InfluxDB.Token,
			*conf.Logging.InfluxDB.Org,
			*conf.Logging.InfluxDB.Bucket,
		)
	} else {
		log.Fatalf("expected logging.driver one of {noop, stdout, influxdb}; got %s", *conf.Logging.Driver)
	}

	var collector latency.Collector
	if *conf.Latency.Collector == "array" {
		collector = latency.NewArrayCollector()
	} else {
		collector = latency.NewTachymeterCollector(*conf.Latency.Window)
	}

	defaultMethod, err := dirichlet.ParseMethod(*conf.Sampling.DefaultMethod)
	if err != nil {
		log.Fatalf("expected sampling.defaultMethod to name a method; got err = %v", err)
	}

	go monitorLatencies(collector, logger, time.Duration(*conf.Latency.LogPeriodSeconds)*time.Second)

	server := serving.NewServer(&serving.ServerOptions{
		Addr:             fmt.Sprintf(":%v", *conf.Server.Port),
		DefaultMethod:    defaultMethod,
		MaxDimensions:    *conf.Sampling.MaxDimensions,
		MaxSamples:       *conf.Sampling.MaxSamples,
		LatencyCollector: collector,
		Logger:           logger,
	})
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("error serving sampler API: %v", err)
	}
}

func monitorLatencies(collector latency.Collector, logger logging.Logger, period time.Duration) {
	for range time.Tick(period) {
		aggregation := collector.Aggregate()

		// The logger operates with seconds.
		p50 := float64(aggregation.P50) / float64(time.Second)
		p75 := float64(aggregation.P75) / float64(time.Second)
		p95 := float64(aggregation.P95) / float64(time.Second)
		logger.LogAggregateLatencies(p50, p75, p95)
	}
}
