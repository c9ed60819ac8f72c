package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"atelier-backoffice/internal/domain"
)

type collector struct {
	requestsTotal          *prometheus.CounterVec   // Общее количество HTTP запросов
	requestDurationSeconds *prometheus.HistogramVec // Распределение времени ответа HTTP запросов

	shipmentViewsBuiltTotal prometheus.Counter // Сколько раз строились записи партий
	priceGapShipmentsTotal  prometheus.Counter // Партии с позициями без цены (итог занижен)
	catalogMissesTotal      prometheus.Counter // Запросы изделий, отсутствующих в каталоге
}

func NewCollector() domain.MetricsCollector {
	c := &collector{
		requestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "atelier_http_requests_total",
				Help: "Total number of processed HTTP requests.",
			},
			[]string{"method", "path", "status_code"},
		),
		requestDurationSeconds: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "atelier_http_request_duration_seconds",
				Help:    "Histogram of HTTP request durations in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		shipmentViewsBuiltTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "atelier_shipment_views_built_total",
				Help: "Total number of shipment view builds.",
			},
		),
		priceGapShipmentsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "atelier_price_gap_shipments_total",
				Help: "Total number of built shipments whose total is an undercount.",
			},
		),
		catalogMissesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "atelier_catalog_misses_total",
				Help: "Total number of catalog lookups for unknown products.",
			},
		),
	}
	return c
}

// IncRequestsTotal увеличивает счетчик общего количества HTTP запросов.
func (c *collector) IncRequestsTotal(method, path, statusCode string) {
	c.requestsTotal.WithLabelValues(method, path, statusCode).Inc()
}

// ObserveRequestDuration записывает время выполнения HTTP запроса в гистограмму.
func (c *collector) ObserveRequestDuration(method, path string, duration float64) {
	c.requestDurationSeconds.WithLabelValues(method, path).Observe(duration)
}

// IncShipmentViewsBuilt увеличивает счетчик построений записей партий.
func (c *collector) IncShipmentViewsBuilt() {
	c.shipmentViewsBuiltTotal.Inc()
}

// IncPriceGapShipments увеличивает счетчик партий с заниженным итогом.
func (c *collector) IncPriceGapShipments() {
	c.priceGapShipmentsTotal.Inc()
}

// IncCatalogMisses увеличивает счетчик промахов каталога.
func (c *collector) IncCatalogMisses() {
	c.catalogMissesTotal.Inc()
}

// RunMetricsServer создает и возвращает сконфигурированный http.Server
func RunMetricsServer(addr string) *http.Server {
	mux := http.NewServeMux()

	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	return server
}
