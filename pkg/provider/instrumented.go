package provider

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	allocations prometheus.Counter
	frees       prometheus.Counter
	failures    prometheus.Counter
	bytesInUse  prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		allocations: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "alloclist_provider_allocations_total",
			Help: "Total number of regions handed out by the provider.",
		}),
		frees: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "alloclist_provider_frees_total",
			Help: "Total number of regions returned to the provider.",
		}),
		failures: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "alloclist_provider_failures_total",
			Help: "Total number of allocation requests the provider could not satisfy.",
		}),
		bytesInUse: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "alloclist_provider_bytes_in_use",
			Help: "Bytes currently held in regions obtained from the provider.",
		}),
	}
}

// Instrumented reports provider traffic to prometheus.
type Instrumented struct {
	next    Provider
	metrics *Metrics
}

func NewInstrumented(next Provider, metrics *Metrics) *Instrumented {
	return &Instrumented{next: next, metrics: metrics}
}

func (i *Instrumented) Alloc(size int) ([]byte, error) {
	region, err := i.next.Alloc(size)
	if err != nil {
		i.metrics.failures.Inc()
		return nil, err
	}
	i.metrics.allocations.Inc()
	i.metrics.bytesInUse.Add(float64(len(region)))
	return region, nil
}

func (i *Instrumented) Free(region []byte) {
	i.metrics.frees.Inc()
	i.metrics.bytesInUse.Sub(float64(len(region)))
	i.next.Free(region)
}
