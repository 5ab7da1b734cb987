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

// SKUUseCase operaciones CRUD sobre el catálogo de suministros.
type SKUUseCase struct {
	repo repository.SKURepository
}

// NewSKUUseCase construye el caso de uso.
func NewSKUUseCase(repo repository.SKURepository) *SKUUseCase {
	return &SKUUseCase{repo: repo}
}

// List devuelve el catálogo con el color ya resuelto por la consulta.
func (uc *SKUUseCase) List(ctx context.Context) ([]dto.SKUResponse, error) {
	filas, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SKUResponse, 0, len(filas))
	for _, f := range filas {
		out = append(out, dto.SKUResponse{
			CodSKU:      f.CodSKU,
			Nombre:      f.Nombre,
			Descripcion: f.Descripcion,
			Color:       f.Color,
		})
	}
	return out, nil
}

// GetByCod devuelve un SKU por su código de catálogo.
func (uc *SKUUseCase) GetByCod(ctx context.Context, codSKU string) (*dto.SKUResponse, error) {
	s, err := uc.repo.GetByCod(ctx, codSKU)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.SKUResponse{CodSKU: s.CodSKU, Nombre: s.Nombre, Descripcion: s.Descripcion}, nil
}

// Create da de alta un SKU. Devuelve ErrDuplicate si el código ya existe.
func (uc *SKUUseCase) Create(ctx context.Context, in dto.CreateSKURequest) (*dto.SKUResponse, error) {
	cod := strings.TrimSpace(in.CodSKU)
	if cod == "" || strings.TrimSpace(in.Nombre) == "" {
		return nil, domain.ErrInvalidInput
	}
	s := &entity.SKU{
		CodSKU:      cod,
		Nombre:      strings.TrimSpace(in.Nombre),
		Descripcion: in.Descripcion,
		IDColor:     in.IDColor,
		CreadoEn:    time.Now(),
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return &dto.SKUResponse{CodSKU: s.CodSKU, Nombre: s.Nombre, Descripcion: s.Descripcion}, nil
}

// Update modifica los campos presentes en la petición.
func (uc *SKUUseCase) Update(ctx context.Context, codSKU string, in dto.UpdateSKURequest) (*dto.SKUResponse, error) {
	s, err := uc.repo.GetByCod(ctx, codSKU)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		s.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		s.Descripcion = *in.Descripcion
	}
	if in.IDColor != nil {
		s.IDColor = in.IDColor
	}
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return &dto.SKUResponse{CodSKU: s.CodSKU, Nombre: s.Nombre, Descripcion: s.Descripcion}, nil
}

// Delete elimina un SKU del catálogo.
func (uc *SKUUseCase) Delete(ctx context.Context, codSKU string) error {
	return uc.repo.Delete(ctx, codSKU)
}

// ListColores catálogo de colores para los formularios del panel.
func (uc *SKUUseCase) ListColores(ctx context.Context) ([]dto.ColorResponse, error) {
	colores, err := uc.repo.ListColores(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ColorResponse, 0, len(colores))
	for _, c := range colores {
		out = append(out, dto.ColorResponse{IDColor: c.IDColor, Nombre: c.Nombre})
	}
	return out, nil
}
