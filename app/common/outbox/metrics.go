package outbox

import "github.com/zeromicro/go-zero/core/metric"

var metricRelayTotal = metric.NewCounterVec(&metric.CounterVecOpts{
	Namespace: "kissahub",
	Subsystem: "outbox",
	Name:      "relay_total",
	Help:      "outbox publish attempts by topic and result.",
	Labels:    []string{"topic", "result"},
})
