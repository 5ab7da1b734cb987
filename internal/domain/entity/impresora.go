package entity

import "time"

// Modelo modelo de impresora del parque instalado.
type Modelo struct {
	IDModelo int64
	Nombre   string
}

// Impresora equipo instalado en la sede de un cliente. La serie del
// fabricante es la clave primaria.
type Impresora struct {
	Serie          string
	IDModelo       int64
	IDCliente      int64
	Direccion      string
	Provincia      string
	NombreContacto string
	CreadoEn       time.Time
}

// Compatibilidad relación N:M entre modelos de impresora y SKUs de suministro.
type Compatibilidad struct {
	IDModelo int64
	CodSKU   string
}
