package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// 読み書きの結果ラベル
const (
	ResultOK       = "ok"
	ResultError    = "error"
	ResultCacheHit = "cache_hit"
)

// Metrics は /metrics で公開する Prometheus のコレクタをまとめます
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPLatency  *prometheus.HistogramVec

	// document ラベルは "words" か "status"
	StoreReads  *prometheus.CounterVec
	StoreWrites *prometheus.CounterVec

	VocabularyEntries prometheus.Gauge
	StatusEntries     prometheus.Gauge
}

// New は新しいレジストリを作り、全てのコレクタを登録します
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "vocab_cards_http_requests_total",
			Help: "Total number of HTTP requests by route and status code",
		}, []string{"method", "route", "status"}),

		HTTPLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vocab_cards_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"method", "route"}),

		StoreReads: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "vocab_cards_store_reads_total",
			Help: "Total number of document reads by document and result",
		}, []string{"document", "result"}),

		StoreWrites: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "vocab_cards_store_writes_total",
			Help: "Total number of status document writes by result",
		}, []string{"result"}),

		VocabularyEntries: factory.NewGauge(prometheus.GaugeOpts{
			Name: "vocab_cards_vocabulary_entries",
			Help: "Number of entries in the last loaded vocabulary document",
		}),

		StatusEntries: factory.NewGauge(prometheus.GaugeOpts{
			Name: "vocab_cards_status_entries",
			Help: "Number of cards with a status in the last saved status document",
		}),
	}
}

// Handler はこのレジストリの /metrics ハンドラを返します
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordRead はドキュメントの読み込みを記録します
func (m *Metrics) RecordRead(document, result string) {
	m.StoreReads.WithLabelValues(document, result).Inc()
}

// RecordWrite は暗記度ドキュメントの書き込みを記録します
func (m *Metrics) RecordWrite(result string) {
	m.StoreWrites.WithLabelValues(result).Inc()
}
