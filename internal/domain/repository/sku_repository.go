package repository

import (
	"context"

	"github.com/jhoicas/printops-api/internal/domain/entity"
)

// SKUConColor fila de listado: SKU con el nombre de color ya resuelto.
type SKUConColor struct {
	entity.SKU
	Color string // vacío si el SKU no tiene color
}

// SKURepository puerto de persistencia para SKU.
type SKURepository interface {
	Create(ctx context.Context, sku *entity.SKU) error
	GetByCod(ctx context.Context, codSKU string) (*entity.SKU, error)
	Update(ctx context.Context, sku *entity.SKU) error
	List(ctx context.Context) ([]SKUConColor, error)
	Delete(ctx context.Context, codSKU string) error

	// ListColores catálogo de colores para los formularios.
	ListColores(ctx context.Context) ([]entity.Color, error)
}
