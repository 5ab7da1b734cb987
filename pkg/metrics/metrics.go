// Package metrics define los colectores Prometheus de la aplicación y expone
// el handler de scraping.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los colectores Prometheus del servicio.
type Metrics struct {
	registry *prometheus.Registry

	// PasesDashboardTotal pases de reporte del dashboard por resultado (ok | error).
	PasesDashboardTotal *prometheus.CounterVec
	// DuracionPase latencia de un pase completo de reportes, en segundos.
	DuracionPase prometheus.Histogram
	// HTTPRequestsTotal peticiones HTTP por método, ruta y estado.
	HTTPRequestsTotal *prometheus.CounterVec
}

// New crea y registra los colectores en un registry propio.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		PasesDashboardTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "printops_dashboard_passes_total",
				Help: "Pases de reporte del dashboard por resultado (ok, error).",
			},
			[]string{"resultado"},
		),
		DuracionPase: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "printops_dashboard_pass_duration_seconds",
				Help:    "Duración de un pase completo de reportes en segundos.",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "printops_http_requests_total",
				Help: "Peticiones HTTP por método, ruta y código de estado.",
			},
			[]string{"method", "path", "status"},
		),
	}
	reg.MustRegister(m.PasesDashboardTotal, m.DuracionPase, m.HTTPRequestsTotal)
	return m
}

// Handler devuelve el handler HTTP de scraping para este registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
