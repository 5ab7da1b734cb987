package reporte_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/printops-api/internal/domain/entity"
	"github.com/jhoicas/printops-api/internal/domain/reporte"
)

func atendido(cliente string, anio int, mes time.Month, dia int) reporte.Registro {
	return reporte.Registro{
		Estado:        entity.EstadoAtendido,
		FechaAtencion: fecha(anio, mes, dia),
		Cliente:       cliente,
	}
}

func porCliente(r reporte.Registro) string { return r.Cliente }
func porSKU(r reporte.Registro) string     { return r.SKU }

// Escenario: 2 atendidos del mes para "Acme" y 1 para "Globex" →
// [(Acme, 2), (Globex, 1)].
func TestTopN_TopClientesDelMes(t *testing.T) {
	ahora := time.Date(2025, time.July, 20, 0, 0, 0, 0, time.UTC)
	historicos := []reporte.Registro{
		atendido("Acme", 2025, time.July, 3),
		atendido("Globex", 2025, time.July, 10),
		atendido("Acme", 2025, time.July, 18),
		atendido("Initech", 2025, time.June, 30), // mes anterior: fuera del filtro
	}

	top := reporte.TopN(historicos, reporte.AtendidoEnMes(ahora), porCliente, reporte.SinCliente, 5)
	require.Equal(t, []reporte.EntradaRanking{
		{Clave: "Acme", Total: 2},
		{Clave: "Globex", Total: 1},
	}, top)
}

// Nunca más de N entradas y los totales son no crecientes.
func TestTopN_LimiteYMonotonia(t *testing.T) {
	var registros []reporte.Registro
	clientes := []string{"A", "B", "C", "D", "E", "F", "G"}
	for i, c := range clientes {
		for j := 0; j <= i; j++ {
			registros = append(registros, reporte.Registro{Estado: entity.EstadoSinStock, SKU: c})
		}
	}

	top := reporte.TopN(registros, reporte.EsSinStock, porSKU, reporte.SinSKU, 5)
	require.Len(t, top, 5)
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].Total, top[i].Total)
	}
	assert.Equal(t, "G", top[0].Clave)
	assert.Equal(t, 7, top[0].Total)
}

// Empates se ordenan por clave ascendente: misma entrada → misma salida,
// llamada tras llamada.
func TestTopN_DesempatePorClaveDeterminista(t *testing.T) {
	registros := []reporte.Registro{
		{Estado: entity.EstadoSinStock, SKU: "W1490A"},
		{Estado: entity.EstadoSinStock, SKU: "CF259X"},
		{Estado: entity.EstadoSinStock, SKU: "TN-660"},
	}

	esperado := []reporte.EntradaRanking{
		{Clave: "CF259X", Total: 1},
		{Clave: "TN-660", Total: 1},
		{Clave: "W1490A", Total: 1},
	}
	for i := 0; i < 50; i++ {
		assert.Equal(t, esperado, reporte.TopN(registros, reporte.EsSinStock, porSKU, reporte.SinSKU, 5))
	}
}

// Conjunto filtrado vacío → salida vacía, no error.
func TestTopN_SinCoincidenciasDevuelveVacio(t *testing.T) {
	registros := []reporte.Registro{
		{Estado: entity.EstadoPendiente, SKU: "CF259X"},
	}
	top := reporte.TopN(registros, reporte.EsSinStock, porSKU, reporte.SinSKU, 5)
	assert.Empty(t, top)
}

// Clave vacía se acumula bajo el centinela de relleno.
func TestTopN_ClaveVaciaUsaRelleno(t *testing.T) {
	registros := []reporte.Registro{
		{Estado: entity.EstadoSinStock, SKU: ""},
		{Estado: entity.EstadoSinStock, SKU: ""},
		{Estado: entity.EstadoSinStock, SKU: "CF259X"},
	}

	top := reporte.TopN(registros, reporte.EsSinStock, porSKU, reporte.SinSKU, 5)
	require.Len(t, top, 2)
	assert.Equal(t, reporte.EntradaRanking{Clave: reporte.SinSKU, Total: 2}, top[0])
}

// La comparación de claves es exacta: mayúsculas y espacios distinguen.
func TestTopN_ClavesSensiblesAMayusculas(t *testing.T) {
	registros := []reporte.Registro{
		{Estado: entity.EstadoSinStock, SKU: "cf259x"},
		{Estado: entity.EstadoSinStock, SKU: "CF259X"},
	}
	top := reporte.TopN(registros, reporte.EsSinStock, porSKU, reporte.SinSKU, 5)
	assert.Len(t, top, 2, "sin normalización: claves distintas no se consolidan")
}
