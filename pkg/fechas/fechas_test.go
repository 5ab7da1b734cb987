package fechas_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/printops-api/pkg/fechas"
)

func TestParse_FechaValida(t *testing.T) {
	got, err := fechas.Parse("15/08/2025")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.August, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestParse_BisiestoAcepta29Febrero(t *testing.T) {
	got, err := fechas.Parse("29/02/2024")
	require.NoError(t, err)
	assert.Equal(t, time.February, got.Month())

	// 2023 no es bisiesto
	_, err = fechas.Parse("29/02/2023")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "día inválido para 2/2023")
}

// Los años divisibles por 100 no son bisiestos salvo que lo sean por 400.
func TestParse_ReglaDeSiglos(t *testing.T) {
	_, err := fechas.Parse("29/02/2000")
	assert.NoError(t, err, "2000 es bisiesto (divisible por 400)")

	_, err = fechas.Parse("29/02/1900")
	assert.Error(t, err, "1900 no es bisiesto (divisible por 100)")
}

func TestParse_FormatosInvalidos(t *testing.T) {
	casos := []string{"2025-08-15", "15/8/2025", "15/08/25", "", "hoy", "1/01/2025"}
	for _, c := range casos {
		_, err := fechas.Parse(c)
		assert.Error(t, err, "debe rechazar %q", c)
		assert.EqualError(t, err, "formato inválido, use dd/mm/yyyy")
	}
}

func TestParse_RangosFueraDeLimite(t *testing.T) {
	_, err := fechas.Parse("10/13/2025")
	assert.EqualError(t, err, "mes inválido (1-12)")

	_, err = fechas.Parse("32/01/2025")
	assert.EqualError(t, err, "día inválido (1-31)")

	_, err = fechas.Parse("31/04/2025")
	assert.EqualError(t, err, "día inválido para 4/2025")
}

func TestFormat_IdaYVuelta(t *testing.T) {
	original := "07/03/2025"
	parsed, err := fechas.Parse(original)
	require.NoError(t, err)
	assert.Equal(t, original, fechas.Format(parsed))
}
