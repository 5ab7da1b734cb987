package repository

import (
	"context"

	"github.com/jhoicas/printops-api/internal/domain/entity"
)

// ClienteRepository puerto de persistencia para Cliente (DIP).
// La implementación vive en infrastructure.
type ClienteRepository interface {
	Create(ctx context.Context, cliente *entity.Cliente) error
	GetByID(ctx context.Context, id int64) (*entity.Cliente, error)
	Update(ctx context.Context, cliente *entity.Cliente) error
	List(ctx context.Context) ([]*entity.Cliente, error)
	Delete(ctx context.Context, id int64) error
}
