package pedido

import "github.com/shopspring/decimal"

var cien = decimal.NewFromInt(100)

// Totales holds the three derived monetary fields of an order header.
// Ajuste is the discount amount for compras and the IVA amount for ventas.
type Totales struct {
	Subtotal decimal.Decimal
	Ajuste   decimal.Decimal
	Total    decimal.Decimal
}

// Politica derives order totals from the exact sum of line subtotals.
// Compras and ventas apply genuinely different business rules (discount on
// merchandise only vs. tax after labor and shipping), so each one is an
// explicit policy rather than a unified formula.
type Politica interface {
	Calcular(sumaDetalles decimal.Decimal) Totales
}

// PoliticaDescuento is the compras rule:
//
//	subtotal  = Σ detalle
//	descuento = subtotal × pct/100
//	total     = subtotal − descuento
//
// Each derived field is rounded half-up to 2 decimals when stored; the
// incoming sum stays exact.
type PoliticaDescuento struct {
	Porcentaje decimal.Decimal
}

func (p PoliticaDescuento) Calcular(sumaDetalles decimal.Decimal) Totales {
	subtotal := sumaDetalles.Round(2)
	descuento := subtotal.Mul(p.Porcentaje).Div(cien).Round(2)
	return Totales{
		Subtotal: subtotal,
		Ajuste:   descuento,
		Total:    subtotal.Sub(descuento).Round(2),
	}
}

// PoliticaImpuesto is the ventas rule: labor cost always joins the taxable
// base, shipping only when the sale is delivered, and IVA is applied on top.
type PoliticaImpuesto struct {
	Porcentaje   decimal.Decimal
	ManoObra     decimal.Decimal
	ConDomicilio bool
	PrecioEnvio  decimal.Decimal
}

func (p PoliticaImpuesto) Calcular(sumaDetalles decimal.Decimal) Totales {
	base := sumaDetalles.Add(p.ManoObra)
	if p.ConDomicilio {
		base = base.Add(p.PrecioEnvio)
	}
	subtotal := base.Round(2)
	iva := subtotal.Mul(p.Porcentaje).Div(cien).Round(2)
	return Totales{
		Subtotal: subtotal,
		Ajuste:   iva,
		Total:    subtotal.Add(iva).Round(2),
	}
}

// CalcularTotales sums the exact line subtotals and applies the policy.
// Zero detalles yields all-zero totals, not an error — the "at least one
// line" gate belongs to the service layer, not here.
func CalcularTotales(detalles []Detalle, politica Politica) Totales {
	suma := decimal.Zero
	for _, d := range detalles {
		suma = suma.Add(d.Subtotal())
	}
	return politica.Calcular(suma)
}
