package pedido

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Detalle is one validated line-item candidate produced by ParseDetalles.
// Referencia is the product/arrangement id as submitted; resolution against
// the catalog happens later, inside the service transaction.
type Detalle struct {
	Referencia string
	Precio     decimal.Decimal
	Cantidad   int
}

// Subtotal returns the exact product precio × cantidad, never rounded.
func (d Detalle) Subtotal() decimal.Decimal {
	return d.Precio.Mul(decimal.NewFromInt(int64(d.Cantidad)))
}

// NormalizarPrecio parses a price string as typed by the operator.
//
// Locale rule: when the string contains a comma it is treated as es-CO
// formatted — every "." is a thousands separator and "," is the decimal
// point ("1.234,50" → 1234.50). Without a comma the string is a plain
// decimal ("1.50" → 1.50). This keeps thousands-formatted input working
// without mangling plain decimal prices.
func NormalizarPrecio(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	return decimal.NewFromString(s)
}

// ParseDetalles zips three index-aligned string slices (as submitted by the
// multi-row order form) into validated detail candidates.
//
// Per row:
//   - both precio and cantidad blank → unused template row, skipped;
//   - exactly one of them blank → row error;
//   - precio must normalize to a decimal > 0, cantidad to an integer > 0,
//     and the referencia must be present.
//
// Row errors are collected for every bad row (1-based indexes) rather than
// stopping at the first. The function is pure: it never touches storage.
func ParseDetalles(referencias, precios, cantidades []string) ([]Detalle, []ErrorFila) {
	n := len(precios)
	if len(cantidades) > n {
		n = len(cantidades)
	}
	if len(referencias) > n {
		n = len(referencias)
	}

	var detalles []Detalle
	var errores []ErrorFila

	for i := 0; i < n; i++ {
		ref := strings.TrimSpace(at(referencias, i))
		precioStr := strings.TrimSpace(at(precios, i))
		cantidadStr := strings.TrimSpace(at(cantidades, i))
		fila := i + 1

		if precioStr == "" && cantidadStr == "" {
			continue
		}
		if precioStr == "" || cantidadStr == "" {
			errores = append(errores, ErrorFila{Fila: fila, Motivo: "precio y cantidad son requeridos"})
			continue
		}
		if ref == "" {
			errores = append(errores, ErrorFila{Fila: fila, Motivo: "referencia de producto requerida"})
			continue
		}

		precio, err := NormalizarPrecio(precioStr)
		if err != nil {
			errores = append(errores, ErrorFila{Fila: fila, Motivo: "precio invalido: " + precioStr})
			continue
		}
		if !precio.IsPositive() {
			errores = append(errores, ErrorFila{Fila: fila, Motivo: "el precio debe ser mayor a cero"})
			continue
		}

		cantidad, err := strconv.Atoi(cantidadStr)
		if err != nil {
			errores = append(errores, ErrorFila{Fila: fila, Motivo: "cantidad invalida: " + cantidadStr})
			continue
		}
		if cantidad <= 0 {
			errores = append(errores, ErrorFila{Fila: fila, Motivo: "la cantidad debe ser mayor a cero"})
			continue
		}

		detalles = append(detalles, Detalle{Referencia: ref, Precio: precio, Cantidad: cantidad})
	}

	return detalles, errores
}

func at(s []string, i int) string {
	if i < len(s) {
		return s[i]
	}
	return ""
}
