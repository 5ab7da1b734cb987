package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/printops-api/internal/application/dto"
	"github.com/jhoicas/printops-api/internal/domain"
	"github.com/jhoicas/printops-api/internal/domain/entity"
	"github.com/jhoicas/printops-api/internal/domain/repository"
)

// ImpresoraUseCase operaciones sobre el parque de impresoras instalado.
type ImpresoraUseCase struct {
	repo        repository.ImpresoraRepository
	clienteRepo repository.ClienteRepository
}

// NewImpresoraUseCase construye el caso de uso.
func NewImpresoraUseCase(repo repository.ImpresoraRepository, clienteRepo repository.ClienteRepository) *ImpresoraUseCase {
	return &ImpresoraUseCase{repo: repo, clienteRepo: clienteRepo}
}

// List devuelve el inventario con modelo y cliente resueltos. Las tablas de
// lookup se indexan una sola vez; la resolución por fila es O(1) en lugar de
// un barrido por referencia.
func (uc *ImpresoraUseCase) List(ctx context.Context) ([]dto.ImpresoraResponse, error) {
	impresoras, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	modelos, err := uc.repo.ListModelos(ctx)
	if err != nil {
		return nil, err
	}
	clientes, err := uc.clienteRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	modeloPorID := make(map[int64]string, len(modelos))
	for _, m := range modelos {
		modeloPorID[m.IDModelo] = m.Nombre
	}
	clientePorID := make(map[int64]string, len(clientes))
	for _, c := range clientes {
		clientePorID[c.IDCliente] = c.NombreEspecifico
	}

	out := make([]dto.ImpresoraResponse, 0, len(impresoras))
	for _, imp := range impresoras {
		out = append(out, dto.ImpresoraResponse{
			Serie:          imp.Serie,
			IDModelo:       imp.IDModelo,
			Modelo:         modeloPorID[imp.IDModelo],
			IDCliente:      imp.IDCliente,
			Cliente:        clientePorID[imp.IDCliente],
			Direccion:      imp.Direccion,
			Provincia:      imp.Provincia,
			NombreContacto: imp.NombreContacto,
		})
	}
	return out, nil
}

// GetBySerie devuelve una impresora por su serie.
func (uc *ImpresoraUseCase) GetBySerie(ctx context.Context, serie string) (*dto.ImpresoraResponse, error) {
	imp, err := uc.repo.GetBySerie(ctx, serie)
	if err != nil {
		return nil, err
	}
	if imp == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.ImpresoraResponse{
		Serie:          imp.Serie,
		IDModelo:       imp.IDModelo,
		IDCliente:      imp.IDCliente,
		Direccion:      imp.Direccion,
		Provincia:      imp.Provincia,
		NombreContacto: imp.NombreContacto,
	}, nil
}

// Create registra una impresora instalada.
func (uc *ImpresoraUseCase) Create(ctx context.Context, in dto.CreateImpresoraRequest) (*dto.ImpresoraResponse, error) {
	if strings.TrimSpace(in.Serie) == "" || in.IDModelo == 0 || in.IDCliente == 0 {
		return nil, domain.ErrInvalidInput
	}
	imp := &entity.Impresora{
		Serie:          strings.TrimSpace(in.Serie),
		IDModelo:       in.IDModelo,
		IDCliente:      in.IDCliente,
		Direccion:      in.Direccion,
		Provincia:      in.Provincia,
		NombreContacto: in.NombreContacto,
		CreadoEn:       time.Now(),
	}
	if err := uc.repo.Create(ctx, imp); err != nil {
		return nil, err
	}
	return uc.GetBySerie(ctx, imp.Serie)
}

// Update modifica los campos presentes en la petición.
func (uc *ImpresoraUseCase) Update(ctx context.Context, serie string, in dto.UpdateImpresoraRequest) (*dto.ImpresoraResponse, error) {
	imp, err := uc.repo.GetBySerie(ctx, serie)
	if err != nil {
		return nil, err
	}
	if imp == nil {
		return nil, domain.ErrNotFound
	}
	if in.IDModelo != nil {
		imp.IDModelo = *in.IDModelo
	}
	if in.IDCliente != nil {
		imp.IDCliente = *in.IDCliente
	}
	if in.Direccion != nil {
		imp.Direccion = *in.Direccion
	}
	if in.Provincia != nil {
		imp.Provincia = *in.Provincia
	}
	if in.NombreContacto != nil {
		imp.NombreContacto = *in.NombreContacto
	}
	if err := uc.repo.Update(ctx, imp); err != nil {
		return nil, err
	}
	return uc.GetBySerie(ctx, serie)
}

// Delete retira una impresora del inventario.
func (uc *ImpresoraUseCase) Delete(ctx context.Context, serie string) error {
	return uc.repo.Delete(ctx, serie)
}
