package usecase

import (
	"context"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/printops-api/internal/application/dto"
	"github.com/jhoicas/printops-api/internal/domain"
	"github.com/jhoicas/printops-api/internal/domain/entity"
	"github.com/jhoicas/printops-api/internal/domain/repository"
)

// ClienteUseCase operaciones CRUD sobre clientes.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// normalizar quita tildes y pasa a minúsculas para comparar nombres como lo
// espera un operador que teclea "maranon" buscando "Marañón".
func normalizar(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// List devuelve los clientes, opcionalmente filtrados por nombre
// (insensible a mayúsculas y tildes).
func (uc *ClienteUseCase) List(ctx context.Context, filtro string) ([]dto.ClienteResponse, error) {
	clientes, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	filtro = normalizar(strings.TrimSpace(filtro))
	out := make([]dto.ClienteResponse, 0, len(clientes))
	for _, c := range clientes {
		if filtro != "" && !strings.Contains(normalizar(c.NombreEspecifico), filtro) {
			continue
		}
		out = append(out, toClienteResponse(c))
	}
	return out, nil
}

// GetByID devuelve un cliente o nil si no existe.
func (uc *ClienteUseCase) GetByID(ctx context.Context, id int64) (*dto.ClienteResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	resp := toClienteResponse(c)
	return &resp, nil
}

// Create registra un cliente nuevo.
func (uc *ClienteUseCase) Create(ctx context.Context, in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	if strings.TrimSpace(in.NombreEspecifico) == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	c := &entity.Cliente{
		NombreEspecifico: strings.TrimSpace(in.NombreEspecifico),
		RUC:              in.RUC,
		Telefono:         in.Telefono,
		Direccion:        in.Direccion,
		CreadoEn:         now,
		ActualizadoEn:    now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	resp := toClienteResponse(c)
	return &resp, nil
}

// Update modifica los campos presentes en la petición.
func (uc *ClienteUseCase) Update(ctx context.Context, id int64, in dto.UpdateClienteRequest) (*dto.ClienteResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.NombreEspecifico != nil {
		if strings.TrimSpace(*in.NombreEspecifico) == "" {
			return nil, domain.ErrInvalidInput
		}
		c.NombreEspecifico = strings.TrimSpace(*in.NombreEspecifico)
	}
	if in.RUC != nil {
		c.RUC = *in.RUC
	}
	if in.Telefono != nil {
		c.Telefono = *in.Telefono
	}
	if in.Direccion != nil {
		c.Direccion = *in.Direccion
	}
	c.ActualizadoEn = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	resp := toClienteResponse(c)
	return &resp, nil
}

// Delete elimina un cliente.
func (uc *ClienteUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toClienteResponse(c *entity.Cliente) dto.ClienteResponse {
	return dto.ClienteResponse{
		IDCliente:        c.IDCliente,
		NombreEspecifico: c.NombreEspecifico,
		RUC:              c.RUC,
		Telefono:         c.Telefono,
		Direccion:        c.Direccion,
		CreadoEn:         c.CreadoEn,
	}
}
