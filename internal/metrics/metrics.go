// Package metrics exposes the Prometheus collectors the arithmetic core
// updates as it dispatches between multiplication regimes and runs FFT
// transforms.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RegimesTotal counts every Mul call, labeled by the regime it dispatched to
// ("schoolbook", "karatsuba", "fft") and whether it completed successfully.
var RegimesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "arbint_mul_regime_total",
		Help: "Total multiplication operations by regime and status.",
	},
	[]string{"regime", "status"},
)

// RegimeDuration observes the wall-clock time a Mul call spent inside a
// given regime.
var RegimeDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "arbint_mul_regime_duration_seconds",
		Help: "Multiplication duration in seconds by regime.",
	},
	[]string{"regime"},
)

// FFTTransformDuration observes the wall-clock time of one fft.Square or
// fft.Multiply call (brute-force or transform path), labeled under the
// "direction" key with the operation name, "square" or "multiply".
var FFTTransformDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "arbint_fft_transform_duration_seconds",
		Help: "FFT transform duration in seconds by direction.",
	},
	[]string{"direction"},
)

// RootCacheSize reports the current size of the cached root-of-unity table,
// a proxy for how large an FFT the process has been asked to perform.
var RootCacheSize = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "arbint_fft_root_cache_size",
		Help: "Number of precomputed roots of unity currently cached.",
	},
)

// DivisionsTotal counts DivMod and DivModScalar calls by status.
var DivisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "arbint_division_total",
		Help: "Total division operations by status.",
	},
	[]string{"status"},
)
