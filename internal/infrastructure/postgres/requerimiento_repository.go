package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/printops-api/internal/domain/entity"
	"github.com/jhoicas/printops-api/internal/domain/repository"
)

var _ repository.RequerimientoRepository = (*RequerimientoRepo)(nil)

// RequerimientoRepo implementación del puerto RequerimientoRepository sobre
// PostgreSQL. Se construye sobre un Querier para poder operar tanto con el
// pool como dentro de una transacción (archivado).
type RequerimientoRepo struct {
	q Querier
}

func NewRequerimientoRepository(q Querier) *RequerimientoRepo {
	return &RequerimientoRepo{q: q}
}

const columnasRequerimiento = `
	id_requerimiento, serie_impresora, id_cliente, cod_sku, cantidad_solicitada,
	estado, guia, porcentaje, dias_restantes,
	fecha_solicitud, fecha_atencion, fecha_instalacion,
	creado_por, observacion, timestamp_registro,
	nombre_contacto, numero_contacto, departamento, provincia, distrito, direccion`

func scanRequerimiento(row pgx.Row, r *entity.Requerimiento) error {
	return row.Scan(
		&r.IDRequerimiento, &r.SerieImpresora, &r.IDCliente, &r.CodSKU, &r.CantidadSolicitada,
		&r.Estado, &r.Guia, &r.Porcentaje, &r.DiasRestantes,
		&r.FechaSolicitud, &r.FechaAtencion, &r.FechaInstalacion,
		&r.CreadoPor, &r.Observacion, &r.TimestampRegistro,
		&r.NombreContacto, &r.NumeroContacto, &r.Departamento, &r.Provincia, &r.Distrito, &r.Direccion,
	)
}

// Create inserta el requerimiento y deja el ID generado en la entidad.
func (rp *RequerimientoRepo) Create(ctx context.Context, r *entity.Requerimiento) error {
	query := `
		INSERT INTO requerimiento (
			serie_impresora, id_cliente, cod_sku, cantidad_solicitada,
			estado, guia, porcentaje, dias_restantes,
			fecha_solicitud, fecha_atencion, fecha_instalacion,
			creado_por, observacion, timestamp_registro,
			nombre_contacto, numero_contacto, departamento, provincia, distrito, direccion
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING id_requerimiento`
	err := rp.q.QueryRow(ctx, query,
		r.SerieImpresora, r.IDCliente, r.CodSKU, r.CantidadSolicitada,
		r.Estado, r.Guia, r.Porcentaje, r.DiasRestantes,
		r.FechaSolicitud, r.FechaAtencion, r.FechaInstalacion,
		r.CreadoPor, r.Observacion, r.TimestampRegistro,
		r.NombreContacto, r.NumeroContacto, r.Departamento, r.Provincia, r.Distrito, r.Direccion,
	).Scan(&r.IDRequerimiento)
	if err != nil {
		return fmt.Errorf("insert requerimiento: %w", err)
	}
	return nil
}

// GetByID obtiene un requerimiento activo por ID; nil si no existe.
func (rp *RequerimientoRepo) GetByID(ctx context.Context, id int64) (*entity.Requerimiento, error) {
	query := `SELECT` + columnasRequerimiento + ` FROM requerimiento WHERE id_requerimiento = $1`
	var r entity.Requerimiento
	if err := scanRequerimiento(rp.q.QueryRow(ctx, query, id), &r); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get requerimiento: %w", err)
	}
	return &r, nil
}

// Update reescribe los campos mutables del requerimiento.
func (rp *RequerimientoRepo) Update(ctx context.Context, r *entity.Requerimiento) error {
	query := `
		UPDATE requerimiento SET
			serie_impresora = $2, id_cliente = $3, cod_sku = $4, cantidad_solicitada = $5,
			estado = $6, guia = $7, porcentaje = $8, dias_restantes = $9,
			fecha_atencion = $10, fecha_instalacion = $11, observacion = $12,
			nombre_contacto = $13, numero_contacto = $14,
			departamento = $15, provincia = $16, distrito = $17, direccion = $18
		WHERE id_requerimiento = $1`
	_, err := rp.q.Exec(ctx, query,
		r.IDRequerimiento, r.SerieImpresora, r.IDCliente, r.CodSKU, r.CantidadSolicitada,
		r.Estado, r.Guia, r.Porcentaje, r.DiasRestantes,
		r.FechaAtencion, r.FechaInstalacion, r.Observacion,
		r.NombreContacto, r.NumeroContacto,
		r.Departamento, r.Provincia, r.Distrito, r.Direccion,
	)
	if err != nil {
		return fmt.Errorf("update requerimiento: %w", err)
	}
	return nil
}

// List devuelve todos los requerimientos activos, los más recientes primero.
func (rp *RequerimientoRepo) List(ctx context.Context) ([]*entity.Requerimiento, error) {
	query := `SELECT` + columnasRequerimiento + ` FROM requerimiento ORDER BY timestamp_registro DESC`
	rows, err := rp.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list requerimientos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Requerimiento
	for rows.Next() {
		var r entity.Requerimiento
		if err := scanRequerimiento(rows, &r); err != nil {
			return nil, fmt.Errorf("scan requerimiento: %w", err)
		}
		list = append(list, &r)
	}
	return list, rows.Err()
}

// Delete elimina el requerimiento de la tabla activa.
func (rp *RequerimientoRepo) Delete(ctx context.Context, id int64) error {
	if _, err := rp.q.Exec(ctx, `DELETE FROM requerimiento WHERE id_requerimiento = $1`, id); err != nil {
		return fmt.Errorf("delete requerimiento: %w", err)
	}
	return nil
}

var _ repository.HistoricoRepository = (*HistoricoRepo)(nil)

// HistoricoRepo implementación del puerto HistoricoRepository. La tabla
// requerimiento_historico es append-only desde la aplicación.
type HistoricoRepo struct {
	q Querier
}

func NewHistoricoRepository(q Querier) *HistoricoRepo {
	return &HistoricoRepo{q: q}
}

// Insert copia el requerimiento terminado al histórico.
func (hp *HistoricoRepo) Insert(ctx context.Context, h *entity.RequerimientoHistorico) error {
	query := `
		INSERT INTO requerimiento_historico (
			id_requerimiento, serie_impresora, id_cliente, cod_sku, cantidad_solicitada,
			estado, guia, porcentaje, dias_restantes,
			fecha_solicitud, fecha_atencion, fecha_instalacion,
			creado_por, observacion, timestamp_registro, timestamp_archivado,
			nombre_contacto, numero_contacto, departamento, provincia, distrito, direccion
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		RETURNING id_historico`
	err := hp.q.QueryRow(ctx, query,
		h.IDRequerimiento, h.SerieImpresora, h.IDCliente, h.CodSKU, h.CantidadSolicitada,
		h.Estado, h.Guia, h.Porcentaje, h.DiasRestantes,
		h.FechaSolicitud, h.FechaAtencion, h.FechaInstalacion,
		h.CreadoPor, h.Observacion, h.TimestampRegistro, h.TimestampArchivado,
		h.NombreContacto, h.NumeroContacto, h.Departamento, h.Provincia, h.Distrito, h.Direccion,
	).Scan(&h.IDHistorico)
	if err != nil {
		return fmt.Errorf("insert historico: %w", err)
	}
	return nil
}

// List devuelve los archivados más recientes primero, acotado por limit.
func (hp *HistoricoRepo) List(ctx context.Context, limit int) ([]*entity.RequerimientoHistorico, error) {
	query := `
		SELECT id_historico, id_requerimiento, serie_impresora, id_cliente, cod_sku, cantidad_solicitada,
			estado, guia, porcentaje, dias_restantes,
			fecha_solicitud, fecha_atencion, fecha_instalacion,
			creado_por, observacion, timestamp_registro, timestamp_archivado,
			nombre_contacto, numero_contacto, departamento, provincia, distrito, direccion
		FROM requerimiento_historico
		ORDER BY timestamp_archivado DESC
		LIMIT $1`
	rows, err := hp.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list historico: %w", err)
	}
	defer rows.Close()

	var list []*entity.RequerimientoHistorico
	for rows.Next() {
		var h entity.RequerimientoHistorico
		err := rows.Scan(
			&h.IDHistorico, &h.IDRequerimiento, &h.SerieImpresora, &h.IDCliente, &h.CodSKU, &h.CantidadSolicitada,
			&h.Estado, &h.Guia, &h.Porcentaje, &h.DiasRestantes,
			&h.FechaSolicitud, &h.FechaAtencion, &h.FechaInstalacion,
			&h.CreadoPor, &h.Observacion, &h.TimestampRegistro, &h.TimestampArchivado,
			&h.NombreContacto, &h.NumeroContacto, &h.Departamento, &h.Provincia, &h.Distrito, &h.Direccion,
		)
		if err != nil {
			return nil, fmt.Errorf("scan historico: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}
