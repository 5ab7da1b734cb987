package usecase

import (
	"context"

	"github.com/jhoicas/printops-api/internal/application/dto"
	"github.com/jhoicas/printops-api/internal/domain"
	"github.com/jhoicas/printops-api/internal/domain/entity"
	"github.com/jhoicas/printops-api/internal/domain/repository"
)

// CompatibilidadUseCase gestiona la relación modelo de impresora ↔ SKU.
type CompatibilidadUseCase struct {
	repo    repository.CompatibilidadRepository
	skuRepo repository.SKURepository
}

// NewCompatibilidadUseCase construye el caso de uso.
func NewCompatibilidadUseCase(repo repository.CompatibilidadRepository, skuRepo repository.SKURepository) *CompatibilidadUseCase {
	return &CompatibilidadUseCase{repo: repo, skuRepo: skuRepo}
}

// ListByModelo lista los SKUs compatibles con un modelo, con nombre y color
// resueltos. El catálogo se indexa una vez por llamada.
func (uc *CompatibilidadUseCase) ListByModelo(ctx context.Context, idModelo int64) ([]dto.CompatibilidadResponse, error) {
	comps, err := uc.repo.ListByModelo(ctx, idModelo)
	if err != nil {
		return nil, err
	}
	catalogo, err := uc.skuRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	skuPorCod := make(map[string]repository.SKUConColor, len(catalogo))
	for _, s := range catalogo {
		skuPorCod[s.CodSKU] = s
	}

	out := make([]dto.CompatibilidadResponse, 0, len(comps))
	for _, c := range comps {
		resp := dto.CompatibilidadResponse{IDModelo: c.IDModelo, CodSKU: c.CodSKU}
		if s, ok := skuPorCod[c.CodSKU]; ok {
			resp.SKU = s.Nombre
			resp.Color = s.Color
		}
		out = append(out, resp)
	}
	return out, nil
}

// Create da de alta una compatibilidad. El SKU debe existir en el catálogo.
func (uc *CompatibilidadUseCase) Create(ctx context.Context, in dto.CreateCompatibilidadRequest) (*dto.CompatibilidadResponse, error) {
	if in.IDModelo == 0 || in.CodSKU == "" {
		return nil, domain.ErrInvalidInput
	}
	sku, err := uc.skuRepo.GetByCod(ctx, in.CodSKU)
	if err != nil {
		return nil, err
	}
	if sku == nil {
		return nil, domain.ErrNotFound
	}
	comp := &entity.Compatibilidad{IDModelo: in.IDModelo, CodSKU: in.CodSKU}
	if err := uc.repo.Create(ctx, comp); err != nil {
		return nil, err
	}
	return &dto.CompatibilidadResponse{IDModelo: comp.IDModelo, CodSKU: comp.CodSKU, SKU: sku.Nombre}, nil
}

// Delete elimina una compatibilidad.
func (uc *CompatibilidadUseCase) Delete(ctx context.Context, idModelo int64, codSKU string) error {
	return uc.repo.Delete(ctx, idModelo, codSKU)
}
