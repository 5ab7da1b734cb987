package entity

import "time"

// Cliente empresa atendida por el servicio de impresión administrada.
type Cliente struct {
	IDCliente       int64
	NombreEspecifico string
	RUC             string
	Telefono        string
	Direccion       string
	CreadoEn        time.Time
	ActualizadoEn   time.Time
}
