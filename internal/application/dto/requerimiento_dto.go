package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateRequerimientoRequest cuerpo para crear un requerimiento.
// FechaInstalacion viaja como texto dd/mm/yyyy tal como la captura el panel.
type CreateRequerimientoRequest struct {
	SerieImpresora     string          `json:"serie_impresora"`
	IDCliente          int64           `json:"id_cliente"`
	CodSKU             string          `json:"cod_sku"`
	CantidadSolicitada int             `json:"cantidad_solicitada"`
	Porcentaje         decimal.Decimal `json:"porcentaje"`
	DiasRestantes      int             `json:"dias_restantes"`
	FechaInstalacion   string          `json:"fecha_instalacion"` // dd/mm/yyyy, opcional
	Observacion        string          `json:"observacion"`
	NombreContacto     string          `json:"nombre_contacto"`
	NumeroContacto     string          `json:"numero_contacto"`
	Departamento       string          `json:"departamento"`
	Provincia          string          `json:"provincia"`
	Distrito           string          `json:"distrito"`
	Direccion          string          `json:"direccion"`
}

// UpdateRequerimientoRequest campos editables de un requerimiento activo.
// Punteros: solo se actualiza lo que viene presente en el JSON.
type UpdateRequerimientoRequest struct {
	Estado        *string          `json:"estado"`
	Guia          *string          `json:"guia"`
	Porcentaje    *decimal.Decimal `json:"porcentaje"`
	DiasRestantes *int             `json:"dias_restantes"`
	Observacion   *string          `json:"observacion"`
}

// RequerimientoResponse fila del listado activo, con nombres ya resueltos.
type RequerimientoResponse struct {
	IDRequerimiento    int64           `json:"id_requerimiento"`
	SerieImpresora     string          `json:"serie_impresora"`
	Modelo             string          `json:"modelo,omitempty"`
	IDCliente          int64           `json:"id_cliente"`
	Cliente            string          `json:"cliente,omitempty"`
	CodSKU             string          `json:"cod_sku"`
	CantidadSolicitada int             `json:"cantidad_solicitada"`
	Estado             string          `json:"estado"`
	Guia               string          `json:"guia,omitempty"`
	Porcentaje         decimal.Decimal `json:"porcentaje"`
	DiasRestantes      int             `json:"dias_restantes"`
	FechaSolicitud     *time.Time      `json:"fecha_solicitud"`
	FechaAtencion      *time.Time      `json:"fecha_atencion"`
	FechaInstalacion   *time.Time      `json:"fecha_instalacion"`
	CreadoPor          string          `json:"creado_por,omitempty"`
	Observacion        string          `json:"observacion,omitempty"`
	TimestampRegistro  time.Time       `json:"timestamp_registro"`
	NombreContacto     string          `json:"nombre_contacto,omitempty"`
	NumeroContacto     string          `json:"numero_contacto,omitempty"`
	Departamento       string          `json:"departamento,omitempty"`
	Provincia          string          `json:"provincia,omitempty"`
	Distrito           string          `json:"distrito,omitempty"`
	Direccion          string          `json:"direccion,omitempty"`
}

// HistoricoResponse fila del listado histórico.
type HistoricoResponse struct {
	IDHistorico        int64           `json:"id_historico"`
	IDRequerimiento    int64           `json:"id_requerimiento"`
	SerieImpresora     string          `json:"serie_impresora"`
	IDCliente          int64           `json:"id_cliente"`
	CodSKU             string          `json:"cod_sku"`
	CantidadSolicitada int             `json:"cantidad_solicitada"`
	Estado             string          `json:"estado"`
	Guia               string          `json:"guia,omitempty"`
	Porcentaje         decimal.Decimal `json:"porcentaje"`
	FechaSolicitud     *time.Time      `json:"fecha_solicitud"`
	FechaAtencion      *time.Time      `json:"fecha_atencion"`
	TimestampRegistro  time.Time       `json:"timestamp_registro"`
	TimestampArchivado time.Time       `json:"timestamp_archivado"`
}
