package repository

import (
	"context"

	"github.com/jhoicas/printops-api/internal/domain/entity"
)

// ImpresoraRepository puerto de persistencia para el parque de impresoras.
type ImpresoraRepository interface {
	Create(ctx context.Context, imp *entity.Impresora) error
	GetBySerie(ctx context.Context, serie string) (*entity.Impresora, error)
	Update(ctx context.Context, imp *entity.Impresora) error
	List(ctx context.Context) ([]*entity.Impresora, error)
	Delete(ctx context.Context, serie string) error

	// ListModelos catálogo de modelos para resolver nombres en listados.
	ListModelos(ctx context.Context) ([]entity.Modelo, error)
}

// CompatibilidadRepository puerto para la relación modelo ↔ SKU.
type CompatibilidadRepository interface {
	Create(ctx context.Context, comp *entity.Compatibilidad) error
	ListByModelo(ctx context.Context, idModelo int64) ([]entity.Compatibilidad, error)
	Delete(ctx context.Context, idModelo int64, codSKU string) error
}
