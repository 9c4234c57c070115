package metric

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// 1. HTTP 组：模块请求耗时与状态分布
	RequestMetrics = promauto.NewSummaryVec(prometheus.SummaryOpts{
		Namespace:  "pakship",
		Subsystem:  "http",
		Name:       "request",
		Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
	}, []string{"status"})

	// 2.1 承运商组：对 Pakman 的出站调用计数
	CarrierRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pakship",
		Subsystem: "carrier",
		Name:      "requests_total",
		Help:      "Pakman 报价调用统计",
	}, []string{"outcome"}) // success / business_error / protocol_error / transport_error

	// 2.2 承运商组：调用耗时直方图
	CarrierDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "pakship",
		Subsystem: "carrier",
		Name:      "request_duration_seconds",
		Help:      "Pakman 报价调用耗时",
		Buckets:   prometheus.DefBuckets,
	}, []string{"outcome"})

	// 3. 业务组：免邮规则命中计数
	FreeShippingHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pakship",
		Subsystem: "quote",
		Name:      "free_shipping_hits_total",
		Help:      "免邮判定结果统计",
	}, []string{"kind"}) // unconditional / threshold / none
)

// ObserveRequest 记录一次模块 HTTP 请求
func ObserveRequest(t time.Duration, status int) {
	RequestMetrics.WithLabelValues(strconv.Itoa(status)).Observe(t.Seconds())
}

// ObserveCarrier 记录一次承运商出站调用
func ObserveCarrier(t time.Duration, outcome string) {
	CarrierRequestsTotal.WithLabelValues(outcome).Inc()
	CarrierDuration.WithLabelValues(outcome).Observe(t.Seconds())
}
