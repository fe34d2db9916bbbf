// Package metrics registers the service's Prometheus counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FeedRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_feed_requests_total",
		Help: "Feed pages served, by feed kind",
	}, []string{"kind"})

	FeedCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_feed_cache_total",
		Help: "Global feed cache lookups, by result (hit, miss, error)",
	}, []string{"result"})

	Follows = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_follow_total",
		Help: "Follow requests, by outcome (created, noop)",
	}, []string{"outcome"})
)
