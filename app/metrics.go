package app

import (
	"net/http"

	"github.com/dan13ram/mint-queue/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type MetricsRegistry struct {
	registry      *prometheus.Registry
	enqueueTotal  *prometheus.CounterVec
	dispatchTotal *prometheus.CounterVec
	pollTotal     *prometheus.CounterVec
	queueDepth    *prometheus.GaugeVec
}

var Metrics = NewMetricsRegistry()

func NewMetricsRegistry() *MetricsRegistry {
	enqueue := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mintqueue_enqueue_total",
		Help: "Payment events handled by the enqueue handler",
	}, []string{"result"})

	dispatch := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mintqueue_dispatch_total",
		Help: "Dispatch attempts by outcome",
	}, []string{"result"})

	poll := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mintqueue_poll_total",
		Help: "Confirmation polls by outcome",
	}, []string{"result"})

	depth := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "mintqueue_queue_depth",
		Help: "Mint requests per status",
	}, []string{"status"})

	r := prometheus.NewRegistry()
	r.MustRegister(enqueue, dispatch, poll, depth)

	return &MetricsRegistry{
		registry:      r,
		enqueueTotal:  enqueue,
		dispatchTotal: dispatch,
		pollTotal:     poll,
		queueDepth:    depth,
	}
}

func (m *MetricsRegistry) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *MetricsRegistry) Registry() *prometheus.Registry {
	return m.registry
}

func (m *MetricsRegistry) IncEnqueue(result string) {
	m.enqueueTotal.WithLabelValues(result).Inc()
}

func (m *MetricsRegistry) IncDispatch(result models.DispatchResult) {
	m.dispatchTotal.WithLabelValues(string(result)).Inc()
}

func (m *MetricsRegistry) IncPoll(result models.PollResult) {
	m.pollTotal.WithLabelValues(string(result)).Inc()
}

func (m *MetricsRegistry) SetQueueDepth(depth map[models.MintStatus]int64) {
	for _, status := range []models.MintStatus{
		models.StatusPending,
		models.StatusProcessing,
		models.StatusPendingConfirmation,
		models.StatusCompleted,
		models.StatusFailed,
	} {
		m.queueDepth.WithLabelValues(string(status)).Set(float64(depth[status]))
	}
}
