package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/printops-api/internal/domain/reporte"
	"github.com/jhoicas/printops-api/internal/domain/repository"
)

var _ repository.ReporteRepository = (*ReporteRepo)(nil)

// ReporteRepo consultas de solo lectura para el motor de reportes. Proyecta
// únicamente las columnas que el dashboard consume y resuelve los nombres de
// cliente y SKU en el mismo SELECT, de modo que el dominio recibe registros
// tipados completos y nunca re-consulta por fila.
type ReporteRepo struct {
	q Querier
}

func NewReporteRepository(q Querier) *ReporteRepo {
	return &ReporteRepo{q: q}
}

// FetchActivos devuelve la vista de reporte de los requerimientos activos.
func (rp *ReporteRepo) FetchActivos(ctx context.Context) ([]reporte.Registro, error) {
	query := `
		SELECT r.estado, r.fecha_solicitud, r.fecha_atencion,
			COALESCE(c.nombre_especifico, ''), COALESCE(r.cod_sku, '')
		FROM requerimiento r
		LEFT JOIN clientes c ON c.id_cliente = r.id_cliente`
	regs, err := rp.fetch(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("fetch activos: %w", err)
	}
	return regs, nil
}

// FetchHistoricos devuelve la vista de reporte de los requerimientos archivados.
func (rp *ReporteRepo) FetchHistoricos(ctx context.Context) ([]reporte.Registro, error) {
	query := `
		SELECT h.estado, h.fecha_solicitud, h.fecha_atencion,
			COALESCE(c.nombre_especifico, ''), COALESCE(h.cod_sku, '')
		FROM requerimiento_historico h
		LEFT JOIN clientes c ON c.id_cliente = h.id_cliente`
	regs, err := rp.fetch(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("fetch historicos: %w", err)
	}
	return regs, nil
}

func (rp *ReporteRepo) fetch(ctx context.Context, query string) ([]reporte.Registro, error) {
	rows, err := rp.q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var regs []reporte.Registro
	for rows.Next() {
		var r reporte.Registro
		if err := rows.Scan(&r.Estado, &r.FechaSolicitud, &r.FechaAtencion, &r.Cliente, &r.SKU); err != nil {
			return nil, fmt.Errorf("scan registro: %w", err)
		}
		regs = append(regs, r)
	}
	return regs, rows.Err()
}
