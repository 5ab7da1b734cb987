package dto

// CreateSKURequest cuerpo para crear un SKU.
type CreateSKURequest struct {
	CodSKU      string `json:"cod_sku"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	IDColor     *int64 `json:"id_color"`
}

// UpdateSKURequest campos editables de un SKU.
type UpdateSKURequest struct {
	Nombre      *string `json:"nombre"`
	Descripcion *string `json:"descripcion"`
	IDColor     *int64  `json:"id_color"`
}

// SKUResponse representación API de un SKU con su color resuelto.
type SKUResponse struct {
	CodSKU      string `json:"cod_sku"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
	Color       string `json:"color,omitempty"`
}

// ColorResponse un color del catálogo.
type ColorResponse struct {
	IDColor int64  `json:"id_color"`
	Nombre  string `json:"nombre"`
}
