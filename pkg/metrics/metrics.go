// pkg/metrics/metrics.go
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics 引擎监控指标集合
// 可选注入；nil 接收者上所有方法都是空操作，
// 热路径不因为没接监控而多一层判断负担
type Metrics struct {
	validations        *prometheus.CounterVec
	validationDuration *prometheus.HistogramVec
	cacheSkips         prometheus.Counter
	cacheExtractions   prometheus.Counter
	cacheInvalidations prometheus.Counter
}

// New 创建并注册指标
// reg 为 nil 时使用默认注册表
func New(namespace string, reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "integrity",
			Name:      "validations_total",
			Help:      "Total validations by status and terminal outcome.",
		}, []string{"status", "outcome"}),
		validationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "integrity",
			Name:      "validation_duration_seconds",
			Help:      "Validation latency by status.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"status"}),
		cacheSkips: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "integrity",
			Name:      "cache_skips_total",
			Help:      "Batch inputs skipped because the cached checksum was unchanged.",
		}),
		cacheExtractions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "integrity",
			Name:      "cache_extractions_total",
			Help:      "Batch inputs re-extracted because content changed.",
		}),
		cacheInvalidations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "integrity",
			Name:      "cache_invalidations_total",
			Help:      "Cache entries removed explicitly.",
		}),
	}

	for _, c := range []prometheus.Collector{
		m.validations, m.validationDuration,
		m.cacheSkips, m.cacheExtractions, m.cacheInvalidations,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// MustNew 创建并注册指标，失败时 panic
func MustNew(namespace string, reg prometheus.Registerer) *Metrics {
	m, err := New(namespace, reg)
	if err != nil {
		panic(err)
	}
	return m
}

// ObserveValidation 记录一次校验
func (m *Metrics) ObserveValidation(status, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.validations.WithLabelValues(status, outcome).Inc()
	m.validationDuration.WithLabelValues(status).Observe(elapsed.Seconds())
}

// AddCacheSkips 记录批量处理中被跳过的输入数
func (m *Metrics) AddCacheSkips(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.cacheSkips.Add(float64(n))
}

// AddCacheExtractions 记录批量处理中重新抽取的输入数
func (m *Metrics) AddCacheExtractions(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.cacheExtractions.Add(float64(n))
}

// AddCacheInvalidations 记录显式失效的条目数
func (m *Metrics) AddCacheInvalidations(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.cacheInvalidations.Add(float64(n))
}
