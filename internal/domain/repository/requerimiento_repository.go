package repository

import (
	"context"

	"github.com/jhoicas/printops-api/internal/domain/entity"
)

// RequerimientoRepository puerto de persistencia para requerimientos activos.
type RequerimientoRepository interface {
	Create(ctx context.Context, req *entity.Requerimiento) error
	GetByID(ctx context.Context, id int64) (*entity.Requerimiento, error)
	Update(ctx context.Context, req *entity.Requerimiento) error
	List(ctx context.Context) ([]*entity.Requerimiento, error)

	// Delete elimina el requerimiento de la tabla activa. Solo lo invoca el
	// flujo de archivado, dentro de la misma transacción que inserta la copia
	// histórica.
	Delete(ctx context.Context, id int64) error
}

// HistoricoRepository puerto de persistencia para requerimientos archivados.
// La tabla es append-only: no hay Update ni Delete.
type HistoricoRepository interface {
	Insert(ctx context.Context, hist *entity.RequerimientoHistorico) error

	// List devuelve los archivados más recientes primero, acotado por limit.
	List(ctx context.Context, limit int) ([]*entity.RequerimientoHistorico, error)
}
