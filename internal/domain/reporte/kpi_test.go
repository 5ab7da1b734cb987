package reporte_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/printops-api/internal/domain/entity"
	"github.com/jhoicas/printops-api/internal/domain/reporte"
)

func activo(estado string) reporte.Registro {
	return reporte.Registro{Estado: estado}
}

// Escenario: activos = [pendiente, pendiente, sin stock] → Pendientes=2, SinStock=1.
func TestClasificarKPIs_ConteosPorEstado(t *testing.T) {
	ahora := time.Date(2025, time.July, 20, 0, 0, 0, 0, time.UTC)
	activos := []reporte.Registro{
		activo(entity.EstadoPendiente),
		activo(entity.EstadoPendiente),
		activo(entity.EstadoSinStock),
	}

	k, desconocidos := reporte.ClasificarKPIs(ahora, activos, nil)
	assert.Equal(t, 2, k.Pendientes)
	assert.Equal(t, 1, k.SinStock)
	assert.Zero(t, k.EnTransito)
	assert.Zero(t, k.AtendidosMes)
	assert.Empty(t, desconocidos)
}

// Los contadores particionan la tabla activa: la suma de todos los estados
// (incluido Otros) es el total de registros.
func TestClasificarKPIs_ParticionDeActivos(t *testing.T) {
	ahora := time.Now()
	activos := []reporte.Registro{
		activo(entity.EstadoPendiente),
		activo(entity.EstadoSinStock),
		activo(entity.EstadoTransito),
		activo(entity.EstadoAprobado),
		activo(entity.EstadoAtendido), // atendido pero aún no archivado
		activo(entity.EstadoCancelado),
		activo("EN PROCESO"), // fuera del vocabulario
		activo(entity.EstadoPendiente),
	}

	k, desconocidos := reporte.ClasificarKPIs(ahora, activos, nil)
	suma := k.Pendientes + k.SinStock + k.EnTransito + k.Aprobados + k.Atendidos + k.Cancelados + k.Otros
	assert.Equal(t, len(activos), suma)
	assert.Equal(t, []string{"EN PROCESO"}, desconocidos)
}

// AtendidosMes usa intervalo semiabierto: el primer instante del mes siguiente
// queda excluido, el primer instante del mes actual incluido.
func TestClasificarKPIs_IntervaloSemiabierto(t *testing.T) {
	ahora := time.Date(2025, time.July, 20, 12, 0, 0, 0, time.UTC)
	inicioJulio := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	inicioAgosto := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)
	finJunio := inicioJulio.Add(-time.Nanosecond)

	historicos := []reporte.Registro{
		{Estado: entity.EstadoAtendido, FechaAtencion: &inicioJulio},  // incluido
		{Estado: entity.EstadoAtendido, FechaAtencion: &inicioAgosto}, // excluido (frontera)
		{Estado: entity.EstadoAtendido, FechaAtencion: &finJunio},     // excluido
	}

	k, _ := reporte.ClasificarKPIs(ahora, nil, historicos)
	assert.Equal(t, 1, k.AtendidosMes)
}

// Solo cuentan los históricos con estado atendido; otros estados archivados
// (cancelado) no entran aunque tengan fecha de atención en el mes.
func TestClasificarKPIs_SoloAtendidosDelHistorico(t *testing.T) {
	ahora := time.Date(2025, time.July, 20, 0, 0, 0, 0, time.UTC)
	historicos := []reporte.Registro{
		{Estado: entity.EstadoAtendido, FechaAtencion: fecha(2025, time.July, 5)},
		{Estado: entity.EstadoCancelado, FechaAtencion: fecha(2025, time.July, 6)},
		{Estado: entity.EstadoAtendido, FechaAtencion: nil}, // sin fecha: fuera
	}

	k, _ := reporte.ClasificarKPIs(ahora, nil, historicos)
	assert.Equal(t, 1, k.AtendidosMes)
}

// Escenario: un activo sin fecha de solicitud cuenta en los KPIs de estado
// (no dependen de fechas) pero no aparece en la serie mensual.
func TestClasificarKPIs_RegistroSinFechaCuentaEnEstados(t *testing.T) {
	ahora := time.Date(2025, time.July, 20, 0, 0, 0, 0, time.UTC)
	sinFecha := reporte.Registro{Estado: entity.EstadoPendiente, FechaSolicitud: nil}

	k, _ := reporte.ClasificarKPIs(ahora, []reporte.Registro{sinFecha}, nil)
	require.Equal(t, 1, k.Pendientes)

	serie := reporte.SerieMensual(ahora, 12, []reporte.Registro{sinFecha})
	for _, p := range serie {
		assert.Zero(t, p.Total)
	}
}

// Los estados desconocidos se devuelven ordenados y sin duplicados.
func TestClasificarKPIs_EstadosDesconocidosOrdenados(t *testing.T) {
	ahora := time.Now()
	activos := []reporte.Registro{
		activo("zzz"), activo("Pendiente"), activo("zzz"), activo("ATENDIDO"),
	}

	k, desconocidos := reporte.ClasificarKPIs(ahora, activos, nil)
	assert.Equal(t, 4, k.Otros)
	assert.Equal(t, []string{"ATENDIDO", "Pendiente", "zzz"}, desconocidos,
		"la comparación de estados es sensible a mayúsculas")
}
