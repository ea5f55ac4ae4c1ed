package service

import "github.com/prometheus/client_golang/prometheus"

var (
	// 通知各渠道的投递结果, channel: store/push/email, status: ok/failed/skipped
	notifyDeliveriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "learnhub_notify_deliveries_total",
			Help: "Total number of notification deliveries by channel and status",
		},
		[]string{"channel", "status"},
	)

	notifyFanoutDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "learnhub_notify_fanout_duration_seconds",
			Help:    "Fan-out duration of one comment event in seconds",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(notifyDeliveriesTotal)
	prometheus.MustRegister(notifyFanoutDuration)
}
