// Package fechas valida y convierte fechas en formato dd/mm/yyyy, el formato
// con el que el panel captura la fecha de instalación.
package fechas

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var patronDDMMYYYY = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)

// diasPorMes días de cada mes en año no bisiesto.
var diasPorMes = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// EsBisiesto indica si el año es bisiesto según el calendario gregoriano.
func EsBisiesto(anio int) bool {
	return (anio%4 == 0 && anio%100 != 0) || anio%400 == 0
}

// Parse valida una cadena dd/mm/yyyy y la convierte a time.Time (medianoche
// UTC). Los mensajes de error están pensados para mostrarse directamente en
// el formulario.
func Parse(s string) (time.Time, error) {
	m := patronDDMMYYYY.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, fmt.Errorf("formato inválido, use dd/mm/yyyy")
	}

	dia, _ := strconv.Atoi(m[1])
	mes, _ := strconv.Atoi(m[2])
	anio, _ := strconv.Atoi(m[3])

	if mes < 1 || mes > 12 {
		return time.Time{}, fmt.Errorf("mes inválido (1-12)")
	}
	if dia < 1 || dia > 31 {
		return time.Time{}, fmt.Errorf("día inválido (1-31)")
	}

	max := diasPorMes[mes-1]
	if mes == 2 && EsBisiesto(anio) {
		max = 29
	}
	if dia > max {
		return time.Time{}, fmt.Errorf("día inválido para %d/%d", mes, anio)
	}

	return time.Date(anio, time.Month(mes), dia, 0, 0, 0, 0, time.UTC), nil
}

// Format devuelve t como dd/mm/yyyy.
func Format(t time.Time) string {
	return t.Format("02/01/2006")
}
