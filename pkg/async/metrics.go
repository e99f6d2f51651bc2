package async

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registered on the default registry, which the /metrics endpoint serves.
var (
	tasksSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "async_tasks_submitted_total",
		Help: "Tasks handed to the bounded worker pool.",
	})

	tasksRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "async_tasks_rejected_total",
		Help: "Submissions rejected because the queue was full and the worker ceiling was reached.",
	})

	fallbacksServed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "async_fallbacks_served_total",
		Help: "Operations resolved to their fallback value after a fault or timeout.",
	}, []string{"op"})

	queueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "async_queue_depth",
		Help: "Pending tasks waiting for a worker.",
	})
)
