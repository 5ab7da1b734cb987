// Package reporte implementa el motor de agregación del dashboard de
// operaciones: clasificación de KPIs por estado, serie mensual de solicitudes
// y rankings top-N de clientes y SKUs.
//
// El motor es puro: no consulta la base de datos ni conoce HTTP. Consume
// registros ya tipados y validados en la frontera de persistencia y produce
// valores derivados efímeros (nada de este paquete se persiste).
package reporte

import "time"

// Registro es la vista mínima de un requerimiento (activo o histórico) que
// consume el motor. Las fechas son punteros: un nil significa que la fuente
// no trae fecha o que no parseó como instante válido, y el registro se omite
// en silencio de los cómputos que la necesitan.
type Registro struct {
	Estado         string
	FechaSolicitud *time.Time
	FechaAtencion  *time.Time
	Cliente        string // nombre del cliente ya resuelto
	SKU            string // código de catálogo
}

// Claves de relleno para registros sin cliente o sin SKU en los rankings.
const (
	SinCliente = "Sin cliente"
	SinSKU     = "SIN SKU"
)

// Resumen es el resultado de un pase completo de reportes: lo que muestra el
// panel. Se reemplaza de forma atómica al terminar un pase exitoso.
type Resumen struct {
	KPIs         KPIs
	SerieMensual []PuntoMensual
	TopClientes  []EntradaRanking
	TopSinStock  []EntradaRanking
	GeneradoEn   time.Time
}
