package main

import (
	"os"

	"github.com/labstack/gommon/log"

	"github.com/jeffypooo/bsdmon/internal/metrics"
	"github.com/jeffypooo/bsdmon/internal/report"
)

func main() {
	logger := log.New("bsdmon")
	logger.SetOutput(os.Stderr)
	logger.SetHeader("${prefix} ${level}")
	logger.SetLevel(log.INFO)

	mc := metrics.NewMetricsCollector(
		metrics.WithSkipHandler(func(iface string, err error) {
			logger.Debugf("skipping address on %s: %v", iface, err)
		}),
	)
	if err := report.New(os.Stdout, logger, mc).Write(); err != nil {
		logger.Fatalf("Error getting metrics: %v", err)
	}
}
