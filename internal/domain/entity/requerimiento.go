package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de un requerimiento. Son el contrato de cadenas con la base de
// datos: la comparación es exacta y sensible a mayúsculas, cualquier variación
// deja el registro fuera de los conteos del dashboard.
const (
	EstadoPendiente = "pendiente"
	EstadoSinStock  = "sin stock"
	EstadoAprobado  = "aprobado"
	EstadoTransito  = "transito"
	EstadoAtendido  = "atendido"
	EstadoCancelado = "cancelado"
)

// EstadosValidos vocabulario completo, en el orden del ciclo de vida.
var EstadosValidos = []string{
	EstadoPendiente, EstadoSinStock, EstadoAprobado,
	EstadoTransito, EstadoAtendido, EstadoCancelado,
}

// EsEstadoValido indica si s pertenece al vocabulario de estados.
func EsEstadoValido(s string) bool {
	for _, e := range EstadosValidos {
		if s == e {
			return true
		}
	}
	return false
}

// Requerimiento es una solicitud de reposición de suministros aún activa.
// Lo crea el flujo de intake, muta su estado en sitio y eventualmente se
// archiva (pasa a RequerimientoHistorico y sale de la tabla activa).
type Requerimiento struct {
	IDRequerimiento    int64
	SerieImpresora     string
	IDCliente          int64
	CodSKU             string
	CantidadSolicitada int
	Estado             string
	Guia               string
	Porcentaje         decimal.Decimal // % de tóner restante reportado por el contador
	DiasRestantes      int
	FechaSolicitud     *time.Time
	FechaAtencion      *time.Time
	FechaInstalacion   *time.Time
	CreadoPor          string
	Observacion        string
	TimestampRegistro  time.Time
	NombreContacto     string
	NumeroContacto     string
	Departamento       string
	Provincia          string
	Distrito           string
	Direccion          string
}

// Archivable indica si el requerimiento puede moverse al histórico.
// Solo se archivan los que ya terminaron su ciclo: atendidos o cancelados.
func (r *Requerimiento) Archivable() bool {
	return r.Estado == EstadoAtendido || r.Estado == EstadoCancelado
}

// RequerimientoHistorico es un requerimiento archivado. Inmutable una vez
// insertado; la tabla es append-only desde el punto de vista de la aplicación.
type RequerimientoHistorico struct {
	IDHistorico        int64
	IDRequerimiento    int64
	SerieImpresora     string
	IDCliente          int64
	CodSKU             string
	CantidadSolicitada int
	Estado             string
	Guia               string
	Porcentaje         decimal.Decimal
	DiasRestantes      int
	FechaSolicitud     *time.Time
	FechaAtencion      *time.Time
	FechaInstalacion   *time.Time
	CreadoPor          string
	Observacion        string
	TimestampRegistro  time.Time
	TimestampArchivado time.Time
	NombreContacto     string
	NumeroContacto     string
	Departamento       string
	Provincia          string
	Distrito           string
	Direccion          string
}
