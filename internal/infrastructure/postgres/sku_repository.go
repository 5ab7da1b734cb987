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

var _ repository.SKURepository = (*SKURepo)(nil)

// SKURepo implementación del puerto SKURepository sobre PostgreSQL.
type SKURepo struct {
	q Querier
}

func NewSKURepository(q Querier) *SKURepo {
	return &SKURepo{q: q}
}

// Create persiste un SKU nuevo. El código es la clave primaria, por lo que un
// duplicado se traduce a domain.ErrDuplicate.
func (r *SKURepo) Create(ctx context.Context, s *entity.SKU) error {
	query := `
		INSERT INTO sku (cod_sku, nombre, descripcion, id_color, creado_en)
		VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.q.Exec(ctx, query, s.CodSKU, s.Nombre, s.Descripcion, s.IDColor, s.CreadoEn); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sku: %w", err)
	}
	return nil
}

// GetByCod obtiene un SKU por código; nil si no existe.
func (r *SKURepo) GetByCod(ctx context.Context, codSKU string) (*entity.SKU, error) {
	query := `SELECT cod_sku, nombre, descripcion, id_color, creado_en FROM sku WHERE cod_sku = $1`
	var s entity.SKU
	err := r.q.QueryRow(ctx, query, codSKU).Scan(&s.CodSKU, &s.Nombre, &s.Descripcion, &s.IDColor, &s.CreadoEn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sku: %w", err)
	}
	return &s, nil
}

// Update actualiza los datos del SKU.
func (r *SKURepo) Update(ctx context.Context, s *entity.SKU) error {
	query := `UPDATE sku SET nombre = $2, descripcion = $3, id_color = $4 WHERE cod_sku = $1`
	if _, err := r.q.Exec(ctx, query, s.CodSKU, s.Nombre, s.Descripcion, s.IDColor); err != nil {
		return fmt.Errorf("update sku: %w", err)
	}
	return nil
}

// List lista los SKUs con el nombre de color ya resuelto.
func (r *SKURepo) List(ctx context.Context) ([]repository.SKUConColor, error) {
	query := `
		SELECT s.cod_sku, s.nombre, s.descripcion, s.id_color, s.creado_en, COALESCE(c.nombre, '')
		FROM sku s
		LEFT JOIN color c ON c.id_color = s.id_color
		ORDER BY s.cod_sku`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list skus: %w", err)
	}
	defer rows.Close()

	var list []repository.SKUConColor
	for rows.Next() {
		var s repository.SKUConColor
		if err := rows.Scan(&s.CodSKU, &s.Nombre, &s.Descripcion, &s.IDColor, &s.CreadoEn, &s.Color); err != nil {
			return nil, fmt.Errorf("scan sku: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Delete elimina un SKU por código.
func (r *SKURepo) Delete(ctx context.Context, codSKU string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM sku WHERE cod_sku = $1`, codSKU); err != nil {
		return fmt.Errorf("delete sku: %w", err)
	}
	return nil
}

// ListColores catálogo de colores para los formularios.
func (r *SKURepo) ListColores(ctx context.Context) ([]entity.Color, error) {
	rows, err := r.q.Query(ctx, `SELECT id_color, nombre FROM color ORDER BY id_color`)
	if err != nil {
		return nil, fmt.Errorf("list colores: %w", err)
	}
	defer rows.Close()

	var list []entity.Color
	for rows.Next() {
		var c entity.Color
		if err := rows.Scan(&c.IDColor, &c.Nombre); err != nil {
			return nil, fmt.Errorf("scan color: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
