package metrics

import "github.com/prometheus/client_golang/prometheus"

// Domain Prometheus metrics.
var (
	SearchQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "compass",
			Name:      "search_queries_total",
			Help:      "Total number of page search queries",
		},
		[]string{"status"},
	)

	SearchDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "compass",
			Name:      "search_duration_seconds",
			Help:      "Search execution time in seconds (fetch + match + rank)",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
	)

	SearchResultCount = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "compass",
			Name:      "search_result_count",
			Help:      "Number of results returned per search query",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
		},
	)

	WorkflowTriggersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "compass",
			Name:      "workflow_triggers_total",
			Help:      "Crawl/scrape triggers forwarded to the workflow engine",
		},
		[]string{"trigger", "status"},
	)

	InterviewRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "compass",
			Name:      "interview_requests_total",
			Help:      "AI interview provider requests",
		},
		[]string{"operation", "status"},
	)

	InterviewRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "compass",
			Name:      "interview_request_duration_seconds",
			Help:      "AI interview provider request duration in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"operation"},
	)
)

// RegisterDomainMetrics registers the domain metrics. Must be called once from main.
func RegisterDomainMetrics() {
	prometheus.MustRegister(
		SearchQueriesTotal,
		SearchDurationSeconds,
		SearchResultCount,
		WorkflowTriggersTotal,
		InterviewRequestsTotal,
		InterviewRequestDuration,
	)
}
