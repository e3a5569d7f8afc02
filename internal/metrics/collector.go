// Package metrics provides internal metrics collection.
// This package is internal and should not be imported by external projects.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// Collector implements network.MetricsRecorder on top of prometheus.
type Collector struct {
	workflowExecutionsTotal   *prometheus.CounterVec
	workflowExecutionDuration *prometheus.HistogramVec
	workflowIterations        *prometheus.HistogramVec

	nodeExecutionsTotal *prometheus.CounterVec
	nodeDuration        *prometheus.HistogramVec

	logger *zap.Logger
}

// NewCollector creates a collector registering its metrics with reg. Pass
// prometheus.DefaultRegisterer for process-wide metrics or a fresh registry
// in tests.
func NewCollector(namespace string, reg prometheus.Registerer, logger *zap.Logger) *Collector {
	factory := promauto.With(reg)

	c := &Collector{
		logger: logger.With(zap.String("component", "metrics")),
	}

	c.workflowExecutionsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "workflow_executions_total",
			Help:      "Total number of workflow executions",
		},
		[]string{"network", "status"},
	)

	c.workflowExecutionDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "workflow_execution_duration_seconds",
			Help:      "Workflow execution duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"network"},
	)

	c.workflowIterations = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "workflow_iterations",
			Help:      "Traversal iterations consumed per workflow execution",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		},
		[]string{"network"},
	)

	c.nodeExecutionsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "node_executions_total",
			Help:      "Total number of node executions",
		},
		[]string{"network", "node", "status"},
	)

	c.nodeDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "node_execution_duration_seconds",
			Help:      "Node execution duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"network", "node"},
	)

	return c
}

// ObserveNodeExecution records one node invocation.
func (c *Collector) ObserveNodeExecution(networkID, nodeID string, failed bool, duration time.Duration) {
	status := "ok"
	if failed {
		status = "error"
	}
	c.nodeExecutionsTotal.WithLabelValues(networkID, nodeID, status).Inc()
	c.nodeDuration.WithLabelValues(networkID, nodeID).Observe(duration.Seconds())
}

// ObserveWorkflowExecution records one Execute call.
func (c *Collector) ObserveWorkflowExecution(networkID string, completed bool, duration time.Duration, iterations int) {
	status := "completed"
	if !completed {
		status = "incomplete"
	}
	c.workflowExecutionsTotal.WithLabelValues(networkID, status).Inc()
	c.workflowExecutionDuration.WithLabelValues(networkID).Observe(duration.Seconds())
	c.workflowIterations.WithLabelValues(networkID).Observe(float64(iterations))
}
