package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/printops-api/internal/domain/entity"
	"github.com/jhoicas/printops-api/internal/domain/reporte"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del ReporteRepository
// ──────────────────────────────────────────────────────────────────────────────

type fakeReporteRepo struct {
	activos    []reporte.Registro
	historicos []reporte.Registro

	errActivos    error
	errHistoricos error

	llamadasActivos int
}

func (f *fakeReporteRepo) FetchActivos(context.Context) ([]reporte.Registro, error) {
	f.llamadasActivos++
	if f.errActivos != nil {
		return nil, f.errActivos
	}
	return f.activos, nil
}

func (f *fakeReporteRepo) FetchHistoricos(context.Context) ([]reporte.Registro, error) {
	if f.errHistoricos != nil {
		return nil, f.errHistoricos
	}
	return f.historicos, nil
}

func fecha(anio int, mes time.Month, dia int) *time.Time {
	t := time.Date(anio, mes, dia, 10, 0, 0, 0, time.UTC)
	return &t
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Un pase completo debe producir KPIs, serie de 12 meses y rankings coherentes
// sobre los dos conjuntos.
func TestResumen_PaseCompleto(t *testing.T) {
	ahora := time.Now()
	esteMes := fecha(ahora.Year(), ahora.Month(), 1)

	repo := &fakeReporteRepo{
		activos: []reporte.Registro{
			{Estado: entity.EstadoPendiente, FechaSolicitud: esteMes, Cliente: "Acme", SKU: "TN-217"},
			{Estado: entity.EstadoPendiente, FechaSolicitud: esteMes, Cliente: "Acme", SKU: "TN-321"},
			{Estado: entity.EstadoSinStock, FechaSolicitud: esteMes, Cliente: "Globex", SKU: "TN-217"},
		},
		historicos: []reporte.Registro{
			{Estado: entity.EstadoAtendido, FechaSolicitud: esteMes, FechaAtencion: esteMes, Cliente: "Acme", SKU: "TN-217"},
			{Estado: entity.EstadoAtendido, FechaSolicitud: esteMes, FechaAtencion: esteMes, Cliente: "Acme", SKU: "TN-321"},
			{Estado: entity.EstadoAtendido, FechaSolicitud: esteMes, FechaAtencion: esteMes, Cliente: "Globex", SKU: "TN-217"},
		},
	}
	uc := NewUseCase(repo, nil, nil, Config{})

	res, err := uc.Resumen(context.Background())
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, 2, res.KPIs.Pendientes)
	assert.Equal(t, 1, res.KPIs.SinStock)
	assert.Equal(t, 3, res.KPIs.AtendidosMes)

	require.Len(t, res.SerieMensual, 12, "la serie siempre trae 12 meses")
	// Todas las solicitudes caen en el mes en curso: la última posición.
	assert.Equal(t, 6, res.SerieMensual[11].Total)

	require.NotEmpty(t, res.TopClientes)
	assert.Equal(t, "Acme", res.TopClientes[0].Clave)
	assert.Equal(t, 2, res.TopClientes[0].Total)

	require.NotEmpty(t, res.TopSinStock)
	assert.Equal(t, "TN-217", res.TopSinStock[0].Clave)
}

// El resumen publicado debe ser el mismo que devolvió el pase.
func TestResumen_PublicaUltimo(t *testing.T) {
	repo := &fakeReporteRepo{}
	uc := NewUseCase(repo, nil, nil, Config{})

	require.Nil(t, uc.Ultimo(), "sin pases aún no hay resumen")

	res, err := uc.Resumen(context.Background())
	require.NoError(t, err)
	assert.Same(t, res, uc.Ultimo())
}

// Un fetch fallido aborta el pase con un solo error y el resumen anterior
// queda intacto: nunca se publican resultados parciales.
func TestResumen_FetchFallido_ConservaAnterior(t *testing.T) {
	repo := &fakeReporteRepo{
		historicos: []reporte.Registro{
			{Estado: entity.EstadoAtendido, Cliente: "Acme", SKU: "TN-217"},
		},
	}
	uc := NewUseCase(repo, nil, nil, Config{})

	previo, err := uc.Resumen(context.Background())
	require.NoError(t, err)

	repo.errActivos = errors.New("conexión perdida")
	res, err := uc.Resumen(context.Background())
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorContains(t, err, "requerimientos activos")

	assert.Same(t, previo, uc.Ultimo(), "el resumen previo debe sobrevivir al pase fallido")
}

// Dos pases con datos idénticos producen el mismo resumen (idempotencia).
func TestResumen_Idempotente(t *testing.T) {
	esteMes := fecha(time.Now().Year(), time.Now().Month(), 2)
	repo := &fakeReporteRepo{
		activos: []reporte.Registro{
			{Estado: entity.EstadoPendiente, FechaSolicitud: esteMes, Cliente: "Acme", SKU: "TN-217"},
		},
	}
	uc := NewUseCase(repo, nil, nil, Config{})

	a, err := uc.Resumen(context.Background())
	require.NoError(t, err)
	b, err := uc.Resumen(context.Background())
	require.NoError(t, err)

	assert.Equal(t, a.KPIs, b.KPIs)
	assert.Equal(t, a.SerieMensual, b.SerieMensual)
	assert.Equal(t, a.TopClientes, b.TopClientes)
	assert.Equal(t, a.TopSinStock, b.TopSinStock)
}

// guardar descarta un pase rezagado: manda el orden de finalización.
func TestGuardar_PaseRezagadoNoGana(t *testing.T) {
	uc := NewUseCase(&fakeReporteRepo{}, nil, nil, Config{})

	nuevo := &reporte.Resumen{GeneradoEn: time.Now()}
	viejo := &reporte.Resumen{GeneradoEn: nuevo.GeneradoEn.Add(-time.Minute)}

	uc.guardar(nuevo)
	uc.guardar(viejo) // terminó después pero calculó con datos más viejos

	assert.Same(t, nuevo, uc.Ultimo(), "un pase rezagado no debe pisar uno más nuevo")
}

// Config con ceros usa los defaults del panel.
func TestNewUseCase_Defaults(t *testing.T) {
	uc := NewUseCase(&fakeReporteRepo{}, nil, nil, Config{})
	assert.Equal(t, 5, uc.topN)
	assert.Equal(t, 12, uc.meses)
}
