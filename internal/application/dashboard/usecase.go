// Package dashboard contiene el caso de uso que orquesta un pase completo de
// reportes para el panel de operaciones.
package dashboard

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jhoicas/printops-api/internal/domain/reporte"
	"github.com/jhoicas/printops-api/internal/domain/repository"
	"github.com/jhoicas/printops-api/pkg/logger"
	"github.com/jhoicas/printops-api/pkg/metrics"
)

const (
	defaultTopN = 5 // posiciones en los widgets de ranking
)

// UseCase ejecuta pases de reporte sobre los requerimientos activos e
// históricos y mantiene el último resumen calculado.
//
// Un pase corre de principio a fin o falla completo: nunca se publican
// resultados parciales. Los refrescos concurrentes se coalescen sobre el pase
// en vuelo (singleflight), y el resumen cacheado solo se reemplaza si el pase
// que termina es más nuevo que el cacheado, de modo que un pase lento nunca
// pisa el resultado de uno más reciente.
type UseCase struct {
	repo  repository.ReporteRepository
	log   *logger.Logger
	met   *metrics.Metrics // opcional; nil desactiva la instrumentación
	topN  int
	meses int

	grupo singleflight.Group

	mu     sync.RWMutex
	ultimo *reporte.Resumen
}

// Config parámetros del panel.
type Config struct {
	TopN  int // entradas por ranking; <=0 usa 5
	Meses int // ventana de la serie mensual; <=0 usa 12
}

// NewUseCase construye el caso de uso. met puede ser nil.
func NewUseCase(repo repository.ReporteRepository, log *logger.Logger, met *metrics.Metrics, cfg Config) *UseCase {
	topN := cfg.TopN
	if topN <= 0 {
		topN = defaultTopN
	}
	meses := cfg.Meses
	if meses <= 0 {
		meses = reporte.MesesVentana
	}
	return &UseCase{repo: repo, log: log, met: met, topN: topN, meses: meses}
}

// Resumen ejecuta un pase de reportes (o se suma al que ya está en vuelo) y
// devuelve el resultado. Si el fetch falla, el pase aborta con un único error
// y el resumen anterior queda intacto.
func (uc *UseCase) Resumen(ctx context.Context) (*reporte.Resumen, error) {
	v, err, _ := uc.grupo.Do("dashboard", func() (interface{}, error) {
		return uc.ejecutarPase(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*reporte.Resumen), nil
}

// Ultimo devuelve el último resumen calculado con éxito, o nil si aún no hay.
func (uc *UseCase) Ultimo() *reporte.Resumen {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.ultimo
}

func (uc *UseCase) ejecutarPase(ctx context.Context) (*reporte.Resumen, error) {
	inicio := time.Now()

	// Fetch de los dos conjuntos en paralelo (consultas independientes).
	type fetchResult struct {
		registros []reporte.Registro
		err       error
	}
	activosCh := make(chan fetchResult, 1)
	historicosCh := make(chan fetchResult, 1)

	go func() {
		regs, err := uc.repo.FetchActivos(ctx)
		activosCh <- fetchResult{regs, err}
	}()
	go func() {
		regs, err := uc.repo.FetchHistoricos(ctx)
		historicosCh <- fetchResult{regs, err}
	}()

	activos := <-activosCh
	historicos := <-historicosCh

	if activos.err != nil {
		uc.observar("error", inicio)
		return nil, fmt.Errorf("dashboard: requerimientos activos: %w", activos.err)
	}
	if historicos.err != nil {
		uc.observar("error", inicio)
		return nil, fmt.Errorf("dashboard: requerimientos históricos: %w", historicos.err)
	}

	ahora := time.Now()

	kpis, desconocidos := reporte.ClasificarKPIs(ahora, activos.registros, historicos.registros)
	if len(desconocidos) > 0 && uc.log != nil {
		uc.log.Warn().
			Str("estados", strings.Join(desconocidos, ", ")).
			Int("registros", kpis.Otros).
			Msg("requerimientos con estado fuera del vocabulario, excluidos de los KPIs visibles")
	}

	// Tendencia sobre la unión activos ∪ históricos (las solicitudes recientes
	// pueden seguir activas).
	union := make([]reporte.Registro, 0, len(activos.registros)+len(historicos.registros))
	union = append(union, historicos.registros...)
	union = append(union, activos.registros...)

	res := &reporte.Resumen{
		KPIs:         kpis,
		SerieMensual: reporte.SerieMensual(ahora, uc.meses, union),
		TopClientes: reporte.TopN(historicos.registros, reporte.AtendidoEnMes(ahora),
			func(r reporte.Registro) string { return r.Cliente }, reporte.SinCliente, uc.topN),
		TopSinStock: reporte.TopN(activos.registros, reporte.EsSinStock,
			func(r reporte.Registro) string { return r.SKU }, reporte.SinSKU, uc.topN),
		GeneradoEn: ahora,
	}

	uc.guardar(res)
	uc.observar("ok", inicio)
	return res, nil
}

// guardar publica el resumen si es más nuevo que el cacheado. El orden que
// manda es el de finalización, no el de inicio: un pase rezagado se descarta.
func (uc *UseCase) guardar(res *reporte.Resumen) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.ultimo == nil || res.GeneradoEn.After(uc.ultimo.GeneradoEn) {
		uc.ultimo = res
	}
}

func (uc *UseCase) observar(resultado string, inicio time.Time) {
	if uc.met == nil {
		return
	}
	uc.met.PasesDashboardTotal.WithLabelValues(resultado).Inc()
	uc.met.DuracionPase.Observe(time.Since(inicio).Seconds())
}
