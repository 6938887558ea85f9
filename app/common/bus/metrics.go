package bus

import "github.com/zeromicro/go-zero/core/metric"

const (
	resultOK         = "ok"
	resultFailed     = "failed"
	resultDeadLetter = "dead_letter"
)

var (
	metricPublishTotal = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "kissahub",
		Subsystem: "bus",
		Name:      "publish_total",
		Help:      "bus publish attempts by topic and result.",
		Labels:    []string{"topic", "result"},
	})
	metricConsumeTotal = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "kissahub",
		Subsystem: "bus",
		Name:      "consume_total",
		Help:      "bus deliveries by topic and result.",
		Labels:    []string{"topic", "result"},
	})
)
