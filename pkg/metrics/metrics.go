package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all application metrics. A nil *Metrics is valid and records nothing.
type Metrics struct {
	// Prediction metrics
	PredictionsTotal   *prometheus.CounterVec
	PredictionFailures prometheus.Counter
	ValidationFailures prometheus.Counter
	InferenceLatency   prometheus.Histogram
	ProbabilityPercent prometheus.Histogram

	// HTTP metrics
	RequestDuration *prometheus.HistogramVec
	RequestTotal    *prometheus.CounterVec
	ErrorTotal      *prometheus.CounterVec
}

// NewMetrics creates all application metrics and registers them with reg.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		PredictionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "predictions_total",
			Help:      "Total number of successful predictions",
		}, []string{"risk_level", "interpretation"}),
		PredictionFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "prediction_failures_total",
			Help:      "Total number of model invocations that failed",
		}),
		ValidationFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_failures_total",
			Help:      "Total number of patient records rejected before inference",
		}),
		InferenceLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "inference_duration_seconds",
			Help:      "Time spent inside the model",
			Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05},
		}),
		ProbabilityPercent: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "probability_percent",
			Help:      "Distribution of returned probability percentages",
			Buckets:   []float64{20, 40, 60, 80, 100},
		}),

		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
		}, []string{"method", "path", "status"}),
		RequestTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		ErrorTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Total number of HTTP errors",
		}, []string{"method", "path", "type"}),
	}
}

func (m *Metrics) ObservePrediction(riskLevel, interpretation string, percent float64) {
	if m == nil {
		return
	}
	m.PredictionsTotal.WithLabelValues(riskLevel, interpretation).Inc()
	m.ProbabilityPercent.Observe(percent)
}

func (m *Metrics) ObservePredictionFailure() {
	if m == nil {
		return
	}
	m.PredictionFailures.Inc()
}

func (m *Metrics) ObserveValidationFailure() {
	if m == nil {
		return
	}
	m.ValidationFailures.Inc()
}

func (m *Metrics) ObserveInference(d time.Duration) {
	if m == nil {
		return
	}
	m.InferenceLatency.Observe(d.Seconds())
}

func (m *Metrics) ObserveRequest(method, path, status string, d time.Duration, failed bool) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(method, path, status).Observe(d.Seconds())
	m.RequestTotal.WithLabelValues(method, path, status).Inc()
	if failed {
		m.ErrorTotal.WithLabelValues(method, path, "http").Inc()
	}
}
