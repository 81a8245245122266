// Package metrics exports region events as Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/joshuapare/ecckit/ecc/region"
)

// Metrics counts region events. It implements region.Observer.
type Metrics struct {
	corrections   prometheus.Counter
	checkBit      prometheus.Counter
	uncorrectable prometheus.Counter
	allocations   prometheus.Counter
	deallocations prometheus.Counter
	faults        prometheus.Counter
	scrubs        prometheus.Counter
	bytesWritten  prometheus.Counter
	bytesRead     prometheus.Counter
	blocksInUse   prometheus.Gauge
}

// New registers the metrics with reg. A nil reg creates unregistered metrics.
func New(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		corrections: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "ecckit_corrections_total",
			Help: "Single-bit data errors corrected during reads and scrubs.",
		}),
		checkBit: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "ecckit_check_bit_errors_total",
			Help: "Groups whose stored check code, not data, was found damaged.",
		}),
		uncorrectable: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "ecckit_uncorrectable_total",
			Help: "Groups with a detected error that could not be corrected.",
		}),
		allocations: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "ecckit_allocations_total",
			Help: "Blocks allocated.",
		}),
		deallocations: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "ecckit_deallocations_total",
			Help: "Blocks deallocated.",
		}),
		faults: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "ecckit_injected_faults_total",
			Help: "Faults injected into data or check-code buffers.",
		}),
		scrubs: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "ecckit_scrubbed_blocks_total",
			Help: "Blocks verified by scrub passes.",
		}),
		bytesWritten: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "ecckit_bytes_written_total",
			Help: "Payload bytes written.",
		}),
		bytesRead: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "ecckit_bytes_read_total",
			Help: "Payload bytes read.",
		}),
		blocksInUse: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "ecckit_blocks_in_use",
			Help: "Blocks currently allocated.",
		}),
	}
}

// Observe implements region.Observer.
func (m *Metrics) Observe(e region.Event) {
	switch e.Kind {
	case region.KindCorrected:
		m.corrections.Inc()
	case region.KindCheckBit:
		m.checkBit.Inc()
	case region.KindUncorrectable:
		m.uncorrectable.Inc()
	case region.KindAllocated:
		m.allocations.Inc()
		m.blocksInUse.Inc()
	case region.KindDeallocated:
		m.deallocations.Inc()
		m.blocksInUse.Dec()
	case region.KindFault:
		m.faults.Inc()
	case region.KindScrubbed:
		m.scrubs.Inc()
	case region.KindWrite:
		m.bytesWritten.Add(float64(e.Size))
	case region.KindRead:
		m.bytesRead.Add(float64(e.Size))
	}
}

var _ region.Observer = (*Metrics)(nil)
