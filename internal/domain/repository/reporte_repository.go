package repository

import (
	"context"

	"github.com/jhoicas/printops-api/internal/domain/reporte"
)

// ReporteRepository consultas de solo lectura que alimentan el motor de
// reportes. Las implementaciones devuelven registros ya tipados y validados:
// una fecha que no parsea en la fuente llega como nil, nunca como cadena cruda.
type ReporteRepository interface {
	// FetchActivos devuelve la vista de reporte de todos los requerimientos activos.
	FetchActivos(ctx context.Context) ([]reporte.Registro, error)

	// FetchHistoricos devuelve la vista de reporte de todos los requerimientos archivados.
	FetchHistoricos(ctx context.Context) ([]reporte.Registro, error)
}
