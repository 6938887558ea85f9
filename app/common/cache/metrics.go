package cache

import "github.com/zeromicro/go-zero/core/metric"

var metricLookupTotal = metric.NewCounterVec(&metric.CounterVecOpts{
	Namespace: "kissahub",
	Subsystem: "cache",
	Name:      "lookup_total",
	Help:      "read-through lookups by outcome.",
	Labels:    []string{"outcome"},
})
