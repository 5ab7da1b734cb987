package dto

// CreateImpresoraRequest cuerpo para registrar una impresora instalada.
type CreateImpresoraRequest struct {
	Serie          string `json:"serie"`
	IDModelo       int64  `json:"id_modelo"`
	IDCliente      int64  `json:"id_cliente"`
	Direccion      string `json:"direccion"`
	Provincia      string `json:"provincia"`
	NombreContacto string `json:"nombre_contacto"`
}

// UpdateImpresoraRequest campos editables de una impresora.
type UpdateImpresoraRequest struct {
	IDModelo       *int64  `json:"id_modelo"`
	IDCliente      *int64  `json:"id_cliente"`
	Direccion      *string `json:"direccion"`
	Provincia      *string `json:"provincia"`
	NombreContacto *string `json:"nombre_contacto"`
}

// ImpresoraResponse fila del inventario con modelo y cliente resueltos.
type ImpresoraResponse struct {
	Serie          string `json:"serie"`
	IDModelo       int64  `json:"id_modelo"`
	Modelo         string `json:"modelo,omitempty"`
	IDCliente      int64  `json:"id_cliente"`
	Cliente        string `json:"cliente,omitempty"`
	Direccion      string `json:"direccion,omitempty"`
	Provincia      string `json:"provincia,omitempty"`
	NombreContacto string `json:"nombre_contacto,omitempty"`
}

// CreateCompatibilidadRequest alta de una relación modelo ↔ SKU.
type CreateCompatibilidadRequest struct {
	IDModelo int64  `json:"id_modelo"`
	CodSKU   string `json:"cod_sku"`
}

// CompatibilidadResponse fila del listado con el SKU resuelto.
type CompatibilidadResponse struct {
	IDModelo int64  `json:"id_modelo"`
	CodSKU   string `json:"cod_sku"`
	SKU      string `json:"sku_nombre,omitempty"`
	Color    string `json:"color,omitempty"`
}
