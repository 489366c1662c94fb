package pedido

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizarPrecio_FormatoLocal(t *testing.T) {
	p, err := NormalizarPrecio("1.234,50")
	require.NoError(t, err)
	assert.Equal(t, "1234.5", p.String())
}

func TestNormalizarPrecio_DecimalPlano(t *testing.T) {
	// Without a comma the period is a decimal point, not a thousands separator.
	p, err := NormalizarPrecio("1.50")
	require.NoError(t, err)
	assert.Equal(t, "1.5", p.String())
}

func TestNormalizarPrecio_MilesSinDecimales(t *testing.T) {
	p, err := NormalizarPrecio("12.000,00")
	require.NoError(t, err)
	assert.Equal(t, "12000", p.String())
}

func TestParseDetalles_FilasVaciasSeOmiten(t *testing.T) {
	// Template rows with both precio and cantidad blank are not errors.
	detalles, errores := ParseDetalles(
		[]string{"A1", "", "A3"},
		[]string{"100,00", "", "50"},
		[]string{"2", "", "1"},
	)
	assert.Empty(t, errores)
	require.Len(t, detalles, 2)
	assert.Equal(t, "A1", detalles[0].Referencia)
	assert.Equal(t, 2, detalles[0].Cantidad)
	assert.Equal(t, "A3", detalles[1].Referencia)
}

func TestParseDetalles_FilaParcialEsError(t *testing.T) {
	_, errores := ParseDetalles(
		[]string{"A1", "A2"},
		[]string{"100", ""},
		[]string{"", "3"},
	)
	require.Len(t, errores, 2)
	assert.Equal(t, 1, errores[0].Fila)
	assert.Contains(t, errores[0].Motivo, "precio y cantidad son requeridos")
	assert.Equal(t, 2, errores[1].Fila)
}

func TestParseDetalles_ReferenciaRequerida(t *testing.T) {
	_, errores := ParseDetalles(
		[]string{""},
		[]string{"100"},
		[]string{"1"},
	)
	require.Len(t, errores, 1)
	assert.Contains(t, errores[0].Motivo, "referencia")
}

func TestParseDetalles_PrecioCero(t *testing.T) {
	_, errores := ParseDetalles([]string{"A1"}, []string{"0"}, []string{"1"})
	require.Len(t, errores, 1)
	assert.Equal(t, 1, errores[0].Fila)
	assert.Contains(t, errores[0].Motivo, "mayor a cero")
}

func TestParseDetalles_CantidadInvalida(t *testing.T) {
	_, errores := ParseDetalles(
		[]string{"A1", "A2"},
		[]string{"10", "10"},
		[]string{"0", "2.5"},
	)
	require.Len(t, errores, 2)
	assert.Contains(t, errores[0].Motivo, "mayor a cero")
	assert.Contains(t, errores[1].Motivo, "cantidad invalida")
}

func TestParseDetalles_TodoVacio(t *testing.T) {
	detalles, errores := ParseDetalles(nil, nil, nil)
	assert.Empty(t, detalles)
	assert.Empty(t, errores)

	detalles, errores = ParseDetalles(
		[]string{"", ""},
		[]string{"", "  "},
		[]string{" ", ""},
	)
	assert.Empty(t, detalles)
	assert.Empty(t, errores)
}

func TestParseDetalles_OrdenDeEntrada(t *testing.T) {
	detalles, errores := ParseDetalles(
		[]string{"C", "A", "B"},
		[]string{"3", "1", "2"},
		[]string{"1", "1", "1"},
	)
	require.Empty(t, errores)
	require.Len(t, detalles, 3)
	assert.Equal(t, "C", detalles[0].Referencia)
	assert.Equal(t, "A", detalles[1].Referencia)
	assert.Equal(t, "B", detalles[2].Referencia)
}

func TestDetalle_SubtotalExacto(t *testing.T) {
	detalles, errores := ParseDetalles([]string{"A1"}, []string{"33,33"}, []string{"3"})
	require.Empty(t, errores)
	require.Len(t, detalles, 1)
	assert.Equal(t, "99.99", detalles[0].Subtotal().String())
}
