package reporte

import "time"

// MesesVentana tamaño por defecto de la ventana de la serie mensual.
const MesesVentana = 12

// etiquetasMes abreviaturas de mes para el eje X del gráfico. La etiqueta es
// función solo del número de mes: dos años distintos colisionan visualmente,
// aceptable porque la ventana nunca supera 12 meses.
var etiquetasMes = [12]string{
	"Ene", "Feb", "Mar", "Abr", "May", "Jun",
	"Jul", "Ago", "Sep", "Oct", "Nov", "Dic",
}

// EtiquetaMes devuelve la abreviatura en español del mes dado.
func EtiquetaMes(m time.Month) string { return etiquetasMes[m-1] }

// PuntoMensual un mes calendario de la serie con su conteo de solicitudes.
type PuntoMensual struct {
	Mes   string
	Total int
}

// claveMes (año, mes) truncado a granularidad de mes: dos instantes del mismo
// mes calendario caen en la misma clave sin importar día ni hora.
type claveMes struct {
	anio int
	mes  time.Month
}

func clavePara(t time.Time) claveMes {
	return claveMes{anio: t.Year(), mes: t.Month()}
}

// SerieMensual agrupa las fechas de solicitud de los registros en una ventana
// de `ventana` meses calendario que termina en el mes de `ahora`, del más
// antiguo al más reciente.
//
// La salida tiene siempre exactamente `ventana` entradas: los meses sin
// registros aparecen con total cero, nunca se omiten. Registros sin fecha de
// solicitud o con fecha fuera de la ventana se descartan sin error.
func SerieMensual(ahora time.Time, ventana int, registros []Registro) []PuntoMensual {
	if ventana <= 0 {
		ventana = MesesVentana
	}

	claves := make([]claveMes, 0, ventana)
	conteo := make(map[claveMes]int, ventana)
	for i := ventana - 1; i >= 0; i-- {
		// time.Date normaliza meses fuera de rango (enero-3 = octubre del año anterior)
		d := time.Date(ahora.Year(), ahora.Month()-time.Month(i), 1, 0, 0, 0, 0, ahora.Location())
		k := clavePara(d)
		claves = append(claves, k)
		conteo[k] = 0
	}

	for _, r := range registros {
		if r.FechaSolicitud == nil {
			continue
		}
		k := clavePara(*r.FechaSolicitud)
		if _, dentro := conteo[k]; dentro {
			conteo[k]++
		}
	}

	serie := make([]PuntoMensual, 0, len(claves))
	for _, k := range claves {
		serie = append(serie, PuntoMensual{Mes: EtiquetaMes(k.mes), Total: conteo[k]})
	}
	return serie
}
