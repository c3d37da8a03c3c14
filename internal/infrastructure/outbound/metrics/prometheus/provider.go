package prometheus

import (
	"strconv"
	"time"

	ports "pinstack-publish-service/internal/domain/ports/output"
)

type PrometheusMetricsProvider struct{}

func NewPrometheusMetricsProvider() ports.MetricsProvider {
	return &PrometheusMetricsProvider{}
}

func (p *PrometheusMetricsProvider) IncrementHTTPRequests(method, path, status string) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
}

func (p *PrometheusMetricsProvider) RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func (p *PrometheusMetricsProvider) IncrementGRPCRequests(method, status string) {
	GRPCRequestsTotal.WithLabelValues(method, status).Inc()
}

func (p *PrometheusMetricsProvider) RecordGRPCRequestDuration(method, status string, duration time.Duration) {
	GRPCRequestDuration.WithLabelValues(method, status).Observe(duration.Seconds())
}

func (p *PrometheusMetricsProvider) IncrementDatabaseQueries(queryType string, success bool) {
	DatabaseQueriesTotal.WithLabelValues(queryType, strconv.FormatBool(success)).Inc()
}

func (p *PrometheusMetricsProvider) RecordDatabaseQueryDuration(queryType string, duration time.Duration) {
	DatabaseQueryDuration.WithLabelValues(queryType).Observe(duration.Seconds())
}

func (p *PrometheusMetricsProvider) IncrementCacheHits() {
	CacheHitsTotal.Inc()
}

func (p *PrometheusMetricsProvider) IncrementCacheMisses() {
	CacheMissesTotal.Inc()
}

func (p *PrometheusMetricsProvider) RecordCacheOperationDuration(operation string, duration time.Duration) {
	CacheOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (p *PrometheusMetricsProvider) IncrementPostTransitions(from, to string) {
	PostTransitionsTotal.WithLabelValues(from, to).Inc()
}

func (p *PrometheusMetricsProvider) IncrementApprovalDecisions(decision string) {
	ApprovalDecisionsTotal.WithLabelValues(decision).Inc()
}

func (p *PrometheusMetricsProvider) IncrementTargetOutcomes(platform, status, code string) {
	TargetOutcomesTotal.WithLabelValues(platform, status, code).Inc()
}

func (p *PrometheusMetricsProvider) RecordAdapterCallDuration(platform string, duration time.Duration) {
	AdapterCallDuration.WithLabelValues(platform).Observe(duration.Seconds())
}

func (p *PrometheusMetricsProvider) IncrementAggregations(verdict string) {
	AggregationsTotal.WithLabelValues(verdict).Inc()
}

func (p *PrometheusMetricsProvider) IncrementSchedulerDispatches(success bool) {
	SchedulerDispatchesTotal.WithLabelValues(strconv.FormatBool(success)).Inc()
}

func (p *PrometheusMetricsProvider) RecordSchedulerBatchSize(size int) {
	SchedulerBatchSize.Set(float64(size))
}

func (p *PrometheusMetricsProvider) IncrementTransactions(outcome string) {
	TransactionsTotal.WithLabelValues(outcome).Inc()
}

func (p *PrometheusMetricsProvider) IncrementEventsPublished(event string, success bool) {
	EventsPublishedTotal.WithLabelValues(event, strconv.FormatBool(success)).Inc()
}

func (p *PrometheusMetricsProvider) SetServiceHealth(healthy bool) {
	if healthy {
		ServiceHealth.Set(1)
	} else {
		ServiceHealth.Set(0)
	}
}
