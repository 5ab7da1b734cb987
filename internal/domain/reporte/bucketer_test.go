package reporte_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/printops-api/internal/domain/reporte"
)

func fecha(anio int, mes time.Month, dia int) *time.Time {
	t := time.Date(anio, mes, dia, 10, 30, 0, 0, time.UTC)
	return &t
}

func solicitud(f *time.Time) reporte.Registro {
	return reporte.Registro{Estado: "pendiente", FechaSolicitud: f}
}

// La serie siempre tiene exactamente 12 entradas, cubre los 12 meses que
// terminan en el mes de referencia y va del más antiguo al más reciente,
// sin importar la fecha de referencia elegida.
func TestSerieMensual_Siempre12MesesOrdenados(t *testing.T) {
	referencias := []time.Time{
		time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC),
		time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC),
	}
	for _, ahora := range referencias {
		serie := reporte.SerieMensual(ahora, 12, nil)
		require.Len(t, serie, 12, "la ventana debe tener exactamente 12 meses")

		// El último punto es el mes de la referencia
		assert.Equal(t, reporte.EtiquetaMes(ahora.Month()), serie[11].Mes)
		// El primero es el mes 11 posiciones atrás
		inicio := time.Date(ahora.Year(), ahora.Month()-11, 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, reporte.EtiquetaMes(inicio.Month()), serie[0].Mes)

		for _, p := range serie {
			assert.Zero(t, p.Total, "sin registros todos los meses van en cero")
		}
	}
}

// Dos instantes del mismo mes calendario caen en el mismo bucket sin importar
// día ni hora.
func TestSerieMensual_TruncaAGranularidadDeMes(t *testing.T) {
	ahora := time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC)
	registros := []reporte.Registro{
		solicitud(fecha(2025, time.June, 1)),
		solicitud(fecha(2025, time.June, 30)),
		solicitud(fecha(2025, time.May, 15)),
	}

	serie := reporte.SerieMensual(ahora, 12, registros)
	require.Len(t, serie, 12)
	assert.Equal(t, reporte.PuntoMensual{Mes: "Jun", Total: 2}, serie[11])
	assert.Equal(t, reporte.PuntoMensual{Mes: "May", Total: 1}, serie[10])
}

// Escenario: registros repartidos en 14 meses distintos; la ventana de 12
// excluye por completo los 2 más antiguos aunque existan en la entrada.
func TestSerieMensual_ExcluyeMesesFueraDeVentana(t *testing.T) {
	ahora := time.Date(2025, time.December, 10, 0, 0, 0, 0, time.UTC)

	var registros []reporte.Registro
	total := 0
	for i := 0; i < 14; i++ {
		d := time.Date(2025, time.December-time.Month(i), 5, 8, 0, 0, 0, time.UTC)
		registros = append(registros, solicitud(&d))
		total++
	}
	require.Equal(t, 14, total)

	serie := reporte.SerieMensual(ahora, 12, registros)
	require.Len(t, serie, 12)

	suma := 0
	for _, p := range serie {
		suma += p.Total
	}
	assert.Equal(t, 12, suma, "los 2 meses más antiguos quedan fuera")
	assert.Equal(t, "Ene", serie[0].Mes)
	assert.Equal(t, "Dic", serie[11].Mes)
}

// Registros sin fecha de solicitud se omiten en silencio: no cuentan ni fallan.
func TestSerieMensual_OmiteFechasNulas(t *testing.T) {
	ahora := time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC)
	registros := []reporte.Registro{
		solicitud(nil),
		solicitud(fecha(2025, time.June, 2)),
		solicitud(nil),
	}

	serie := reporte.SerieMensual(ahora, 12, registros)
	assert.Equal(t, 1, serie[11].Total)
}

// La ventana cruza el cambio de año: etiquetas y conteos correctos a ambos lados.
func TestSerieMensual_VentanaCruzaAnio(t *testing.T) {
	ahora := time.Date(2025, time.February, 5, 0, 0, 0, 0, time.UTC)
	registros := []reporte.Registro{
		solicitud(fecha(2024, time.March, 10)), // primer mes de la ventana
		solicitud(fecha(2024, time.December, 25)),
		solicitud(fecha(2025, time.February, 1)),
		solicitud(fecha(2024, time.February, 1)), // mismo mes, año anterior: fuera
	}

	serie := reporte.SerieMensual(ahora, 12, registros)
	require.Len(t, serie, 12)
	assert.Equal(t, reporte.PuntoMensual{Mes: "Mar", Total: 1}, serie[0])
	assert.Equal(t, reporte.PuntoMensual{Mes: "Dic", Total: 1}, serie[9])
	assert.Equal(t, reporte.PuntoMensual{Mes: "Feb", Total: 1}, serie[11],
		"feb 2024 no debe colarse en el bucket de feb 2025")
}

// Ventana no positiva usa el valor por defecto de 12 meses.
func TestSerieMensual_VentanaPorDefecto(t *testing.T) {
	ahora := time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC)
	serie := reporte.SerieMensual(ahora, 0, nil)
	assert.Len(t, serie, reporte.MesesVentana)
}
