package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/printops-api/internal/application/dto"
	"github.com/jhoicas/printops-api/internal/domain"
	"github.com/jhoicas/printops-api/internal/domain/entity"
	"github.com/jhoicas/printops-api/internal/domain/repository"
	"github.com/jhoicas/printops-api/pkg/fechas"
)

// TxRunner ejecuta fn dentro de una transacción, con los repositorios de
// requerimientos atados a ella. Lo usa el archivado: insertar en histórico y
// borrar de activos debe ser atómico.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		reqRepo repository.RequerimientoRepository,
		histRepo repository.HistoricoRepository,
	) error) error
}

// RequerimientoUseCase ciclo de vida de un requerimiento: alta, edición,
// listado unificado y archivado al histórico.
type RequerimientoUseCase struct {
	tx            TxRunner
	reqRepo       repository.RequerimientoRepository
	histRepo      repository.HistoricoRepository
	clienteRepo   repository.ClienteRepository
	impresoraRepo repository.ImpresoraRepository
}

// NewRequerimientoUseCase construye el caso de uso.
func NewRequerimientoUseCase(
	tx TxRunner,
	reqRepo repository.RequerimientoRepository,
	histRepo repository.HistoricoRepository,
	clienteRepo repository.ClienteRepository,
	impresoraRepo repository.ImpresoraRepository,
) *RequerimientoUseCase {
	return &RequerimientoUseCase{
		tx:            tx,
		reqRepo:       reqRepo,
		histRepo:      histRepo,
		clienteRepo:   clienteRepo,
		impresoraRepo: impresoraRepo,
	}
}

// ListActivos lista los requerimientos activos con cliente y modelo resueltos.
// Se construye un índice por tabla de lookup una sola vez y se resuelve cada
// fila en O(1), en lugar de barrer las tablas por cada referencia.
func (uc *RequerimientoUseCase) ListActivos(ctx context.Context) ([]dto.RequerimientoResponse, error) {
	reqs, err := uc.reqRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	clientes, err := uc.clienteRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	impresoras, err := uc.impresoraRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	modelos, err := uc.impresoraRepo.ListModelos(ctx)
	if err != nil {
		return nil, err
	}

	clientePorID := make(map[int64]string, len(clientes))
	for _, c := range clientes {
		clientePorID[c.IDCliente] = c.NombreEspecifico
	}
	modeloPorID := make(map[int64]string, len(modelos))
	for _, m := range modelos {
		modeloPorID[m.IDModelo] = m.Nombre
	}
	modeloPorSerie := make(map[string]string, len(impresoras))
	for _, imp := range impresoras {
		modeloPorSerie[imp.Serie] = modeloPorID[imp.IDModelo]
	}

	out := make([]dto.RequerimientoResponse, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, toRequerimientoResponse(r,
			clientePorID[r.IDCliente], modeloPorSerie[r.SerieImpresora]))
	}
	return out, nil
}

// ListHistorico lista los archivados más recientes primero.
func (uc *RequerimientoUseCase) ListHistorico(ctx context.Context, limit int) ([]dto.HistoricoResponse, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	hists, err := uc.histRepo.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.HistoricoResponse, 0, len(hists))
	for _, h := range hists {
		out = append(out, dto.HistoricoResponse{
			IDHistorico:        h.IDHistorico,
			IDRequerimiento:    h.IDRequerimiento,
			SerieImpresora:     h.SerieImpresora,
			IDCliente:          h.IDCliente,
			CodSKU:             h.CodSKU,
			CantidadSolicitada: h.CantidadSolicitada,
			Estado:             h.Estado,
			Guia:               h.Guia,
			Porcentaje:         h.Porcentaje,
			FechaSolicitud:     h.FechaSolicitud,
			FechaAtencion:      h.FechaAtencion,
			TimestampRegistro:  h.TimestampRegistro,
			TimestampArchivado: h.TimestampArchivado,
		})
	}
	return out, nil
}

// Create registra un requerimiento en estado pendiente con la fecha de
// solicitud del servidor. La fecha de instalación llega como dd/mm/yyyy y se
// valida antes de persistir.
func (uc *RequerimientoUseCase) Create(ctx context.Context, creadoPor string, in dto.CreateRequerimientoRequest) (*dto.RequerimientoResponse, error) {
	if strings.TrimSpace(in.SerieImpresora) == "" || in.IDCliente == 0 || strings.TrimSpace(in.CodSKU) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.CantidadSolicitada <= 0 {
		return nil, fmt.Errorf("%w: cantidad solicitada debe ser mayor que cero", domain.ErrInvalidInput)
	}

	var fechaInstalacion *time.Time
	if in.FechaInstalacion != "" {
		f, err := fechas.Parse(in.FechaInstalacion)
		if err != nil {
			return nil, fmt.Errorf("%w: fecha de instalación: %s", domain.ErrInvalidInput, err)
		}
		fechaInstalacion = &f
	}

	now := time.Now()
	req := &entity.Requerimiento{
		SerieImpresora:     strings.TrimSpace(in.SerieImpresora),
		IDCliente:          in.IDCliente,
		CodSKU:             strings.TrimSpace(in.CodSKU),
		CantidadSolicitada: in.CantidadSolicitada,
		Estado:             entity.EstadoPendiente,
		Porcentaje:         in.Porcentaje,
		DiasRestantes:      in.DiasRestantes,
		FechaSolicitud:     &now,
		FechaInstalacion:   fechaInstalacion,
		CreadoPor:          creadoPor,
		Observacion:        in.Observacion,
		TimestampRegistro:  now,
		NombreContacto:     in.NombreContacto,
		NumeroContacto:     in.NumeroContacto,
		Departamento:       in.Departamento,
		Provincia:          in.Provincia,
		Distrito:           in.Distrito,
		Direccion:          in.Direccion,
	}
	if err := uc.reqRepo.Create(ctx, req); err != nil {
		return nil, err
	}
	resp := toRequerimientoResponse(req, "", "")
	return &resp, nil
}

// Update aplica los campos presentes de la petición. Cambiar el estado a
// atendido sella la fecha de atención si aún no la tiene.
func (uc *RequerimientoUseCase) Update(ctx context.Context, id int64, in dto.UpdateRequerimientoRequest) (*dto.RequerimientoResponse, error) {
	req, err := uc.reqRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}

	if in.Estado != nil {
		if !entity.EsEstadoValido(*in.Estado) {
			return nil, fmt.Errorf("%w: estado %q fuera del vocabulario", domain.ErrInvalidInput, *in.Estado)
		}
		req.Estado = *in.Estado
		if req.Estado == entity.EstadoAtendido && req.FechaAtencion == nil {
			now := time.Now()
			req.FechaAtencion = &now
		}
	}
	if in.Guia != nil {
		req.Guia = *in.Guia
	}
	if in.Porcentaje != nil {
		req.Porcentaje = *in.Porcentaje
	}
	if in.DiasRestantes != nil {
		req.DiasRestantes = *in.DiasRestantes
	}
	if in.Observacion != nil {
		req.Observacion = *in.Observacion
	}

	if err := uc.reqRepo.Update(ctx, req); err != nil {
		return nil, err
	}
	resp := toRequerimientoResponse(req, "", "")
	return &resp, nil
}

// Archivar mueve un requerimiento terminado (atendido o cancelado) al
// histórico. Inserción y borrado ocurren en la misma transacción: o el
// registro queda en exactamente una de las dos tablas, o en la de origen.
func (uc *RequerimientoUseCase) Archivar(ctx context.Context, id int64) error {
	req, err := uc.reqRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if req == nil {
		return domain.ErrNotFound
	}
	if !req.Archivable() {
		return fmt.Errorf("%w: solo se archivan requerimientos atendidos o cancelados", domain.ErrConflict)
	}

	hist := &entity.RequerimientoHistorico{
		IDRequerimiento:    req.IDRequerimiento,
		SerieImpresora:     req.SerieImpresora,
		IDCliente:          req.IDCliente,
		CodSKU:             req.CodSKU,
		CantidadSolicitada: req.CantidadSolicitada,
		Estado:             req.Estado,
		Guia:               req.Guia,
		Porcentaje:         req.Porcentaje,
		DiasRestantes:      req.DiasRestantes,
		FechaSolicitud:     req.FechaSolicitud,
		FechaAtencion:      req.FechaAtencion,
		FechaInstalacion:   req.FechaInstalacion,
		CreadoPor:          req.CreadoPor,
		Observacion:        req.Observacion,
		TimestampRegistro:  req.TimestampRegistro,
		TimestampArchivado: time.Now(),
		NombreContacto:     req.NombreContacto,
		NumeroContacto:     req.NumeroContacto,
		Departamento:       req.Departamento,
		Provincia:          req.Provincia,
		Distrito:           req.Distrito,
		Direccion:          req.Direccion,
	}

	return uc.tx.Run(ctx, func(reqRepo repository.RequerimientoRepository, histRepo repository.HistoricoRepository) error {
		if err := histRepo.Insert(ctx, hist); err != nil {
			return err
		}
		return reqRepo.Delete(ctx, req.IDRequerimiento)
	})
}

func toRequerimientoResponse(r *entity.Requerimiento, cliente, modelo string) dto.RequerimientoResponse {
	return dto.RequerimientoResponse{
		IDRequerimiento:    r.IDRequerimiento,
		SerieImpresora:     r.SerieImpresora,
		Modelo:             modelo,
		IDCliente:          r.IDCliente,
		Cliente:            cliente,
		CodSKU:             r.CodSKU,
		CantidadSolicitada: r.CantidadSolicitada,
		Estado:             r.Estado,
		Guia:               r.Guia,
		Porcentaje:         r.Porcentaje,
		DiasRestantes:      r.DiasRestantes,
		FechaSolicitud:     r.FechaSolicitud,
		FechaAtencion:      r.FechaAtencion,
		FechaInstalacion:   r.FechaInstalacion,
		CreadoPor:          r.CreadoPor,
		Observacion:        r.Observacion,
		TimestampRegistro:  r.TimestampRegistro,
		NombreContacto:     r.NombreContacto,
		NumeroContacto:     r.NumeroContacto,
		Departamento:       r.Departamento,
		Provincia:          r.Provincia,
		Distrito:           r.Distrito,
		Direccion:          r.Direccion,
	}
}
