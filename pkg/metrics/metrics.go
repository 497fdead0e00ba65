package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics concentra os contadores e histogramas Prometheus da aplicação
type Metrics struct {
	// Métricas HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Métricas dos jobs de sincronização
	SyncJobsTotal     *prometheus.CounterVec
	SyncJobDuration   *prometheus.HistogramVec
	SyncJobsInFlight  prometheus.Gauge
	AccountsProcessed *prometheus.CounterVec

	// Métricas das integrações externas (SP-API e Ads)
	ExternalAPICalls    *prometheus.CounterVec
	ExternalAPIDuration *prometheus.HistogramVec

	// Métricas do pipeline de análise
	DashboardsComposed       *prometheus.CounterVec
	DashboardComposeDuration prometheus.Histogram
}

// New registra as métricas no registrador padrão do Prometheus
func New() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total de requisições HTTP recebidas",
			},
			[]string{"method", "path", "status_code"},
		),

		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duração das requisições HTTP em segundos",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		SyncJobsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sync_jobs_total",
				Help: "Total de execuções dos jobs de sincronização",
			},
			[]string{"job", "status"},
		),

		SyncJobDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sync_job_duration_seconds",
				Help:    "Duração dos jobs de sincronização em segundos",
				Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600},
			},
			[]string{"job"},
		),

		SyncJobsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "sync_jobs_in_flight",
				Help: "Jobs de sincronização em execução no momento",
			},
		),

		AccountsProcessed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "accounts_processed_total",
				Help: "Total de contas processadas pelos jobs",
			},
			[]string{"job", "status"},
		),

		ExternalAPICalls: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "external_api_calls_total",
				Help: "Total de chamadas às APIs da Amazon",
			},
			[]string{"api", "status"},
		),

		ExternalAPIDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "external_api_duration_seconds",
				Help:    "Duração das chamadas às APIs da Amazon em segundos",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"api"},
		),

		DashboardsComposed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboards_composed_total",
				Help: "Total de dashboards compostos pelo pipeline de análise",
			},
			[]string{"status"},
		),

		DashboardComposeDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dashboard_compose_duration_seconds",
				Help:    "Duração da composição do dashboard em segundos",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
		),
	}
}

// RecordHTTPRequest registra uma requisição HTTP concluída
func (m *Metrics) RecordHTTPRequest(method, path, statusCode string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordSyncJob registra a execução de um job de sincronização
func (m *Metrics) RecordSyncJob(job, status string, duration time.Duration) {
	m.SyncJobsTotal.WithLabelValues(job, status).Inc()
	m.SyncJobDuration.WithLabelValues(job).Observe(duration.Seconds())
}

// RecordAccountProcessed registra uma conta processada por um job
func (m *Metrics) RecordAccountProcessed(job, status string) {
	m.AccountsProcessed.WithLabelValues(job, status).Inc()
}

// RecordExternalAPICall registra uma chamada a uma API externa
func (m *Metrics) RecordExternalAPICall(api, status string, duration time.Duration) {
	m.ExternalAPICalls.WithLabelValues(api, status).Inc()
	m.ExternalAPIDuration.WithLabelValues(api).Observe(duration.Seconds())
}

// RecordDashboardComposed registra uma composição de dashboard
func (m *Metrics) RecordDashboardComposed(status string, duration time.Duration) {
	m.DashboardsComposed.WithLabelValues(status).Inc()
	m.DashboardComposeDuration.Observe(duration.Seconds())
}

// IncSyncJobsInFlight incrementa o contador de jobs em execução
func (m *Metrics) IncSyncJobsInFlight() {
	m.SyncJobsInFlight.Inc()
}

// DecSyncJobsInFlight decrementa o contador de jobs em execução
func (m *Metrics) DecSyncJobsInFlight() {
	m.SyncJobsInFlight.Dec()
}
