package dto

import "time"

// CreateClienteRequest cuerpo para crear un cliente.
type CreateClienteRequest struct {
	NombreEspecifico string `json:"nombre_especifico"`
	RUC              string `json:"ruc"`
	Telefono         string `json:"telefono"`
	Direccion        string `json:"direccion"`
}

// UpdateClienteRequest campos editables de un cliente.
type UpdateClienteRequest struct {
	NombreEspecifico *string `json:"nombre_especifico"`
	RUC              *string `json:"ruc"`
	Telefono         *string `json:"telefono"`
	Direccion        *string `json:"direccion"`
}

// ClienteResponse representación API de un cliente.
type ClienteResponse struct {
	IDCliente        int64     `json:"id_cliente"`
	NombreEspecifico string    `json:"nombre_especifico"`
	RUC              string    `json:"ruc,omitempty"`
	Telefono         string    `json:"telefono,omitempty"`
	Direccion        string    `json:"direccion,omitempty"`
	CreadoEn         time.Time `json:"creado_en"`
}
