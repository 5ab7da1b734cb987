package dto

import (
	"time"

	"github.com/jhoicas/printops-api/internal/domain/reporte"
)

// KPIsDTO contadores de cabecera del panel.
type KPIsDTO struct {
	Pendientes   int `json:"pendientes"`
	SinStock     int `json:"sin_stock"`
	AtendidosMes int `json:"atendidos_mes"`
	EnTransito   int `json:"en_transito"`
}

// PuntoMensualDTO un mes de la serie del gráfico de tendencia.
type PuntoMensualDTO struct {
	Mes   string `json:"mes"`
	Total int    `json:"total"`
}

// EntradaRankingDTO una posición de un ranking top-N.
type EntradaRankingDTO struct {
	Clave string `json:"clave"`
	Total int    `json:"total"`
}

// ResumenDashboardDTO respuesta de GET /api/dashboard/resumen.
type ResumenDashboardDTO struct {
	KPIs         KPIsDTO             `json:"kpis"`
	SerieMensual []PuntoMensualDTO   `json:"serie_mensual"`
	TopClientes  []EntradaRankingDTO `json:"top_clientes"`
	TopSinStock  []EntradaRankingDTO `json:"top_sin_stock"`
	GeneradoEn   time.Time           `json:"generado_en"`
}

// ToResumenDashboardDTO convierte el resumen de dominio en el DTO de la API.
func ToResumenDashboardDTO(r *reporte.Resumen) *ResumenDashboardDTO {
	if r == nil {
		return nil
	}
	out := &ResumenDashboardDTO{
		KPIs: KPIsDTO{
			Pendientes:   r.KPIs.Pendientes,
			SinStock:     r.KPIs.SinStock,
			AtendidosMes: r.KPIs.AtendidosMes,
			EnTransito:   r.KPIs.EnTransito,
		},
		SerieMensual: make([]PuntoMensualDTO, 0, len(r.SerieMensual)),
		TopClientes:  make([]EntradaRankingDTO, 0, len(r.TopClientes)),
		TopSinStock:  make([]EntradaRankingDTO, 0, len(r.TopSinStock)),
		GeneradoEn:   r.GeneradoEn,
	}
	for _, p := range r.SerieMensual {
		out.SerieMensual = append(out.SerieMensual, PuntoMensualDTO{Mes: p.Mes, Total: p.Total})
	}
	for _, e := range r.TopClientes {
		out.TopClientes = append(out.TopClientes, EntradaRankingDTO{Clave: e.Clave, Total: e.Total})
	}
	for _, e := range r.TopSinStock {
		out.TopSinStock = append(out.TopSinStock, EntradaRankingDTO{Clave: e.Clave, Total: e.Total})
	}
	return out
}
