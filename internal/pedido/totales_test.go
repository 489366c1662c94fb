package pedido

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestPoliticaDescuento_EscenarioCompleto(t *testing.T) {
	// Two lines (100.00 × 2, 50.00 × 1) with 10% discount.
	detalles := []Detalle{
		{Referencia: "A1", Precio: d("100.00"), Cantidad: 2},
		{Referencia: "A2", Precio: d("50.00"), Cantidad: 1},
	}
	tot := CalcularTotales(detalles, PoliticaDescuento{Porcentaje: d("10")})

	assert.True(t, tot.Subtotal.Equal(d("250.00")), "subtotal = %s", tot.Subtotal)
	assert.True(t, tot.Ajuste.Equal(d("25.00")), "descuento = %s", tot.Ajuste)
	assert.True(t, tot.Total.Equal(d("225.00")), "total = %s", tot.Total)
}

func TestPoliticaImpuesto_EscenarioCompleto(t *testing.T) {
	// One line 60.00 × 3, mano de obra 20.00, envio 10.00, IVA 19%.
	detalles := []Detalle{{Referencia: "A1", Precio: d("60.00"), Cantidad: 3}}
	tot := CalcularTotales(detalles, PoliticaImpuesto{
		Porcentaje:   d("19"),
		ManoObra:     d("20.00"),
		ConDomicilio: true,
		PrecioEnvio:  d("10.00"),
	})

	assert.True(t, tot.Subtotal.Equal(d("210.00")), "subtotal = %s", tot.Subtotal)
	assert.True(t, tot.Ajuste.Equal(d("39.90")), "iva = %s", tot.Ajuste)
	assert.True(t, tot.Total.Equal(d("249.90")), "total = %s", tot.Total)
}

func TestPoliticaImpuesto_SinDomicilioIgnoraEnvio(t *testing.T) {
	detalles := []Detalle{{Referencia: "A1", Precio: d("100"), Cantidad: 1}}
	tot := CalcularTotales(detalles, PoliticaImpuesto{
		Porcentaje:  d("19"),
		PrecioEnvio: d("10.00"), // must not be added
	})
	assert.True(t, tot.Subtotal.Equal(d("100.00")))
	assert.True(t, tot.Total.Equal(d("119.00")))
}

func TestCalcularTotales_Idempotente(t *testing.T) {
	detalles := []Detalle{
		{Referencia: "A1", Precio: d("33.33"), Cantidad: 3},
		{Referencia: "A2", Precio: d("0.01"), Cantidad: 7},
	}
	pol := PoliticaDescuento{Porcentaje: d("7.5")}

	primera := CalcularTotales(detalles, pol)
	segunda := CalcularTotales(detalles, pol)

	assert.True(t, primera.Subtotal.Equal(segunda.Subtotal))
	assert.True(t, primera.Ajuste.Equal(segunda.Ajuste))
	assert.True(t, primera.Total.Equal(segunda.Total))
}

func TestCalcularTotales_SinDetallesEsCero(t *testing.T) {
	tot := CalcularTotales(nil, PoliticaDescuento{Porcentaje: d("10")})
	assert.True(t, tot.Subtotal.IsZero())
	assert.True(t, tot.Ajuste.IsZero())
	assert.True(t, tot.Total.IsZero())

	tot = CalcularTotales(nil, PoliticaImpuesto{Porcentaje: d("19")})
	assert.True(t, tot.Subtotal.IsZero())
	assert.True(t, tot.Total.IsZero())
}

func TestCalcularTotales_NoNegativo(t *testing.T) {
	// 100% discount lands exactly on zero, never below.
	detalles := []Detalle{{Referencia: "A1", Precio: d("99.99"), Cantidad: 1}}
	tot := CalcularTotales(detalles, PoliticaDescuento{Porcentaje: d("100")})
	assert.True(t, tot.Total.IsZero(), "total = %s", tot.Total)
	assert.False(t, tot.Subtotal.IsNegative())
}

func TestCalcularTotales_RedondeoMitadHaciaArriba(t *testing.T) {
	// 3 × 33.335 = 100.005 → subtotal stored as 100.01 (half-up), and the
	// discount is computed over the stored subtotal.
	detalles := []Detalle{{Referencia: "A1", Precio: d("33.335"), Cantidad: 3}}
	tot := CalcularTotales(detalles, PoliticaDescuento{Porcentaje: d("10")})

	require.True(t, tot.Subtotal.Equal(d("100.01")), "subtotal = %s", tot.Subtotal)
	assert.True(t, tot.Ajuste.Equal(d("10.00")), "descuento = %s", tot.Ajuste)
	assert.True(t, tot.Total.Equal(d("90.01")), "total = %s", tot.Total)
}
