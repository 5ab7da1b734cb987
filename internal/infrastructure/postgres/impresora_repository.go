package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/printops-api/internal/domain"
	"github.com/jhoicas/printops-api/internal/domain/entity"
	"github.com/jhoicas/printops-api/internal/domain/repository"
)

var _ repository.ImpresoraRepository = (*ImpresoraRepo)(nil)

// ImpresoraRepo implementación del puerto ImpresoraRepository sobre PostgreSQL.
type ImpresoraRepo struct {
	q Querier
}

func NewImpresoraRepository(q Querier) *ImpresoraRepo {
	return &ImpresoraRepo{q: q}
}

// Create registra una impresora nueva en el parque.
func (r *ImpresoraRepo) Create(ctx context.Context, imp *entity.Impresora) error {
	query := `
		INSERT INTO impresora (serie, id_modelo, id_cliente, direccion, provincia, nombre_contacto, creado_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		imp.Serie, imp.IDModelo, imp.IDCliente, imp.Direccion, imp.Provincia, imp.NombreContacto, imp.CreadoEn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert impresora: %w", err)
	}
	return nil
}

// GetBySerie obtiene una impresora por serie; nil si no existe.
func (r *ImpresoraRepo) GetBySerie(ctx context.Context, serie string) (*entity.Impresora, error) {
	query := `
		SELECT serie, id_modelo, id_cliente, direccion, provincia, nombre_contacto, creado_en
		FROM impresora WHERE serie = $1`
	var imp entity.Impresora
	err := r.q.QueryRow(ctx, query, serie).Scan(
		&imp.Serie, &imp.IDModelo, &imp.IDCliente, &imp.Direccion, &imp.Provincia, &imp.NombreContacto, &imp.CreadoEn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get impresora: %w", err)
	}
	return &imp, nil
}

// Update actualiza los datos de la impresora.
func (r *ImpresoraRepo) Update(ctx context.Context, imp *entity.Impresora) error {
	query := `
		UPDATE impresora SET id_modelo = $2, id_cliente = $3, direccion = $4, provincia = $5, nombre_contacto = $6
		WHERE serie = $1`
	_, err := r.q.Exec(ctx, query,
		imp.Serie, imp.IDModelo, imp.IDCliente, imp.Direccion, imp.Provincia, imp.NombreContacto,
	)
	if err != nil {
		return fmt.Errorf("update impresora: %w", err)
	}
	return nil
}

// List lista todo el parque ordenado por serie.
func (r *ImpresoraRepo) List(ctx context.Context) ([]*entity.Impresora, error) {
	query := `
		SELECT serie, id_modelo, id_cliente, direccion, provincia, nombre_contacto, creado_en
		FROM impresora ORDER BY serie`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list impresoras: %w", err)
	}
	defer rows.Close()

	var list []*entity.Impresora
	for rows.Next() {
		var imp entity.Impresora
		if err := rows.Scan(&imp.Serie, &imp.IDModelo, &imp.IDCliente, &imp.Direccion, &imp.Provincia, &imp.NombreContacto, &imp.CreadoEn); err != nil {
			return nil, fmt.Errorf("scan impresora: %w", err)
		}
		list = append(list, &imp)
	}
	return list, rows.Err()
}

// Delete elimina una impresora por serie.
func (r *ImpresoraRepo) Delete(ctx context.Context, serie string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM impresora WHERE serie = $1`, serie); err != nil {
		return fmt.Errorf("delete impresora: %w", err)
	}
	return nil
}

// ListModelos catálogo de modelos para resolver nombres en listados.
func (r *ImpresoraRepo) ListModelos(ctx context.Context) ([]entity.Modelo, error) {
	rows, err := r.q.Query(ctx, `SELECT id_modelo, nombre FROM modelo ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list modelos: %w", err)
	}
	defer rows.Close()

	var list []entity.Modelo
	for rows.Next() {
		var m entity.Modelo
		if err := rows.Scan(&m.IDModelo, &m.Nombre); err != nil {
			return nil, fmt.Errorf("scan modelo: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
