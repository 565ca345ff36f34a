package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	timelineBuilds = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "planner",
		Subsystem: "timeline",
		Name:      "builds_total",
		Help:      "Number of day timelines computed, by caller.",
	}, []string{"source"})
	timelineBuildDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "planner",
		Subsystem: "timeline",
		Name:      "build_duration_seconds",
		Help:      "Time spent filtering, sorting and walking one day of activities.",
		Buckets:   []float64{0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
	})
	liveSessions = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "planner",
		Subsystem: "live",
		Name:      "sessions",
		Help:      "Currently connected websocket sessions.",
	})
	livePushes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "planner",
		Subsystem: "live",
		Name:      "pushes_total",
		Help:      "Views pushed to live sessions, by message type.",
	}, []string{"type"})
	feedPublishFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "planner",
		Subsystem: "feed",
		Name:      "publish_failures_total",
		Help:      "Change events that could not be published, by collection.",
	}, []string{"collection"})
	persistenceErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "planner",
		Subsystem: "persistence",
		Name:      "errors_total",
		Help:      "Repository calls that failed with a storage error, by operation.",
	}, []string{"op"})
)

func init() {
	prometheus.MustRegister(
		timelineBuilds,
		timelineBuildDuration,
		liveSessions,
		livePushes,
		feedPublishFailures,
		persistenceErrors,
	)
}

// RecordTimelineBuild counts one timeline computation and its duration.
func RecordTimelineBuild(source string, d time.Duration) {
	timelineBuilds.WithLabelValues(source).Inc()
	timelineBuildDuration.Observe(d.Seconds())
}

func SessionOpened() {
	liveSessions.Inc()
}

func SessionClosed() {
	liveSessions.Dec()
}

func RecordPush(msgType string) {
	livePushes.WithLabelValues(msgType).Inc()
}

func RecordPublishFailure(collection string) {
	feedPublishFailures.WithLabelValues(collection).Inc()
}

func RecordPersistenceError(op string) {
	persistenceErrors.WithLabelValues(op).Inc()
}
