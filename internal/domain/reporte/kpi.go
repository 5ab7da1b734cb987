package reporte

import (
	"sort"
	"time"

	"github.com/jhoicas/printops-api/internal/domain/entity"
)

// KPIs contadores de cabecera del panel. Los cuatro primeros son los widgets
// visibles; el resto completa la partición de la tabla activa:
// Pendientes + SinStock + EnTransito + Aprobados + Atendidos + Cancelados +
// Otros siempre suma el total de registros activos.
type KPIs struct {
	Pendientes   int
	SinStock     int
	EnTransito   int
	AtendidosMes int // histórico: atendidos con fecha de atención en el mes en curso
	Aprobados    int
	Atendidos    int // activos atendidos pendientes de archivar
	Cancelados   int
	Otros        int // estados fuera del vocabulario
}

// InicioMes primer instante del mes calendario de t.
func InicioMes(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// InicioMesSiguiente primer instante del mes siguiente al de t.
func InicioMesSiguiente(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, t.Location())
}

// ClasificarKPIs calcula los contadores del panel sobre los conjuntos activo e
// histórico con `ahora` como referencia.
//
// AtendidosMes usa el intervalo semiabierto [inicio de mes, inicio del mes
// siguiente): un registro fechado exactamente en el primer instante del mes
// siguiente queda excluido. Los predicados de estado no dependen de fechas:
// un registro activo con fecha de solicitud nula igual se cuenta.
//
// El segundo valor devuelto lista, ordenados y sin duplicar, los estados de
// registros activos fuera del vocabulario; el llamador decide si los reporta
// como advertencia de calidad de datos.
func ClasificarKPIs(ahora time.Time, activos, historicos []Registro) (KPIs, []string) {
	var k KPIs
	var desconocidos map[string]struct{}

	for _, r := range activos {
		switch r.Estado {
		case entity.EstadoPendiente:
			k.Pendientes++
		case entity.EstadoSinStock:
			k.SinStock++
		case entity.EstadoTransito:
			k.EnTransito++
		case entity.EstadoAprobado:
			k.Aprobados++
		case entity.EstadoAtendido:
			k.Atendidos++
		case entity.EstadoCancelado:
			k.Cancelados++
		default:
			k.Otros++
			if desconocidos == nil {
				desconocidos = make(map[string]struct{})
			}
			desconocidos[r.Estado] = struct{}{}
		}
	}

	desde := InicioMes(ahora)
	hasta := InicioMesSiguiente(ahora)
	for _, h := range historicos {
		if h.Estado != entity.EstadoAtendido || h.FechaAtencion == nil {
			continue
		}
		fa := *h.FechaAtencion
		if !fa.Before(desde) && fa.Before(hasta) {
			k.AtendidosMes++
		}
	}

	if len(desconocidos) == 0 {
		return k, nil
	}
	lista := make([]string, 0, len(desconocidos))
	for e := range desconocidos {
		lista = append(lista, e)
	}
	sort.Strings(lista)
	return k, lista
}

// AtendidoEnMes predicado para los rankings: estado atendido y fecha de
// atención dentro del mes calendario de `ahora` (intervalo semiabierto).
func AtendidoEnMes(ahora time.Time) func(Registro) bool {
	desde := InicioMes(ahora)
	hasta := InicioMesSiguiente(ahora)
	return func(r Registro) bool {
		if r.Estado != entity.EstadoAtendido || r.FechaAtencion == nil {
			return false
		}
		return !r.FechaAtencion.Before(desde) && r.FechaAtencion.Before(hasta)
	}
}

// EsSinStock predicado para el ranking de suministros agotados.
func EsSinStock(r Registro) bool { return r.Estado == entity.EstadoSinStock }
