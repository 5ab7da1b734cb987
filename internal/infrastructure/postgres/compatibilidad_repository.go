package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/printops-api/internal/domain"
	"github.com/jhoicas/printops-api/internal/domain/entity"
	"github.com/jhoicas/printops-api/internal/domain/repository"
)

var _ repository.CompatibilidadRepository = (*CompatibilidadRepo)(nil)

// CompatibilidadRepo implementación del puerto CompatibilidadRepository.
type CompatibilidadRepo struct {
	q Querier
}

func NewCompatibilidadRepository(q Querier) *CompatibilidadRepo {
	return &CompatibilidadRepo{q: q}
}

// Create registra que un modelo acepta un SKU.
func (r *CompatibilidadRepo) Create(ctx context.Context, comp *entity.Compatibilidad) error {
	query := `INSERT INTO compatibilidad (id_modelo, cod_sku) VALUES ($1, $2)`
	if _, err := r.q.Exec(ctx, query, comp.IDModelo, comp.CodSKU); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert compatibilidad: %w", err)
	}
	return nil
}

// ListByModelo lista los SKUs compatibles con un modelo.
func (r *CompatibilidadRepo) ListByModelo(ctx context.Context, idModelo int64) ([]entity.Compatibilidad, error) {
	query := `SELECT id_modelo, cod_sku FROM compatibilidad WHERE id_modelo = $1 ORDER BY cod_sku`
	rows, err := r.q.Query(ctx, query, idModelo)
	if err != nil {
		return nil, fmt.Errorf("list compatibilidades: %w", err)
	}
	defer rows.Close()

	var list []entity.Compatibilidad
	for rows.Next() {
		var c entity.Compatibilidad
		if err := rows.Scan(&c.IDModelo, &c.CodSKU); err != nil {
			return nil, fmt.Errorf("scan compatibilidad: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Delete elimina la relación modelo-SKU.
func (r *CompatibilidadRepo) Delete(ctx context.Context, idModelo int64, codSKU string) error {
	query := `DELETE FROM compatibilidad WHERE id_modelo = $1 AND cod_sku = $2`
	if _, err := r.q.Exec(ctx, query, idModelo, codSKU); err != nil {
		return fmt.Errorf("delete compatibilidad: %w", err)
	}
	return nil
}
