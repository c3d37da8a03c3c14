package ports

import "time"

type MetricsProvider interface {
	IncrementHTTPRequests(method, path, status string)
	RecordHTTPRequestDuration(method, path, status string, duration time.Duration)

	IncrementGRPCRequests(method, status string)
	RecordGRPCRequestDuration(method, status string, duration time.Duration)

	IncrementDatabaseQueries(queryType string, success bool)
	RecordDatabaseQueryDuration(queryType string, duration time.Duration)
	IncrementTransactions(outcome string)

	IncrementCacheHits()
	IncrementCacheMisses()
	RecordCacheOperationDuration(operation string, duration time.Duration)

	IncrementPostTransitions(from, to string)
	IncrementApprovalDecisions(decision string)
	IncrementTargetOutcomes(platform, status, code string)
	RecordAdapterCallDuration(platform string, duration time.Duration)
	IncrementAggregations(verdict string)
	IncrementSchedulerDispatches(success bool)
	RecordSchedulerBatchSize(size int)
	IncrementEventsPublished(event string, success bool)

	SetServiceHealth(healthy bool)
}
