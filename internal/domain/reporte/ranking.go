package reporte

import "sort"

// EntradaRanking una clave categórica y su número de ocurrencias dentro del
// subconjunto filtrado.
type EntradaRanking struct {
	Clave string
	Total int
}

// TopN filtra los registros con `filtro`, extrae una clave por registro con
// `clave` (vacía se reemplaza por `relleno`) y devuelve las n claves más
// frecuentes en orden descendente de conteo.
//
// Empates se desempatan por clave ascendente (orden de bytes, sensible a
// mayúsculas), de modo que la salida es idéntica byte a byte entre llamadas
// con la misma entrada: el orden de iteración del mapa nunca se filtra al
// resultado. Un conjunto filtrado vacío produce un slice vacío, no un error.
func TopN(registros []Registro, filtro func(Registro) bool, clave func(Registro) string, relleno string, n int) []EntradaRanking {
	if n <= 0 {
		return nil
	}

	conteo := make(map[string]int)
	for _, r := range registros {
		if !filtro(r) {
			continue
		}
		k := clave(r)
		if k == "" {
			k = relleno
		}
		conteo[k]++
	}
	if len(conteo) == 0 {
		return nil
	}

	entradas := make([]EntradaRanking, 0, len(conteo))
	for k, c := range conteo {
		entradas = append(entradas, EntradaRanking{Clave: k, Total: c})
	}
	sort.Slice(entradas, func(i, j int) bool {
		if entradas[i].Total != entradas[j].Total {
			return entradas[i].Total > entradas[j].Total
		}
		return entradas[i].Clave < entradas[j].Clave
	})

	if len(entradas) > n {
		entradas = entradas[:n]
	}
	return entradas
}
