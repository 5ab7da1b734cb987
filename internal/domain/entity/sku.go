package entity

import "time"

// SKU suministro consumible (tóner, cilindro, kit de mantenimiento).
// La clave primaria es el código de catálogo del fabricante.
type SKU struct {
	CodSKU      string
	Nombre      string
	Descripcion string
	IDColor     *int64 // nil para suministros sin color (p.ej. fusor)
	CreadoEn    time.Time
}

// Color color de tóner asociado a un SKU.
type Color struct {
	IDColor int64
	Nombre  string // Negro, Cian, Magenta, Amarillo
}
