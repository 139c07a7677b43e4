// Package observability provides application-level Prometheus metrics.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "survivalskills_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// EmailDeliveries counts outbound email attempts by template and outcome.
	EmailDeliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "survivalskills_email_deliveries_total",
		Help: "Total outbound email attempts by template and outcome",
	}, []string{"template", "outcome"})

	// SubscriptionOutcomes counts subscribe attempts by terminal result.
	SubscriptionOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "survivalskills_subscriptions_total",
		Help: "Total subscription attempts by terminal result",
	}, []string{"result"})
)
