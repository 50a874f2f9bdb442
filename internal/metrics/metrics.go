// Copyright 2025 The PIV2/PIVHU developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pivhu/piv2-genesis/internal/config"
	"github.com/pivhu/piv2-genesis/internal/logging"
)

var hashesProcessed = prometheus.NewCounter(prometheus.CounterOpts{
	Name: "piv2_genesis_hashes_processed_total",
	Help: "The total number of header hashes computed",
})

// ProcessedHashes returns the counter tracking total header hashes
func ProcessedHashes() prometheus.Counter {
	return hashesProcessed
}

// Start exposes the metrics endpoint when a listen port is configured
func Start() error {
	cfg := config.GetConfig()
	if cfg.Metrics.ListenPort == 0 {
		return nil
	}
	if err := prometheus.Register(hashesProcessed); err != nil {
		return err
	}
	listenAddr := fmt.Sprintf(
		"%s:%d",
		cfg.Metrics.ListenAddress,
		cfg.Metrics.ListenPort,
	)
	logging.GetLogger().Infof("starting metrics listener on %s", listenAddr)
	http.Handle("/", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(listenAddr, nil); err != nil {
			logging.GetLogger().Errorf("metrics listener: %s", err)
		}
	}()
	return nil
}
