// Package pedido contains the order-with-line-items core shared by compras
// and ventas: the parallel-array detail parser, the totals policies, and the
// validation error taxonomy. It is pure domain logic — no DB, no HTTP.
package pedido

import (
	"errors"
	"fmt"
	"strings"
)

// ErrPedidoVacio is returned when, after parsing, zero valid detail rows
// remain. An order must contain at least one line item.
var ErrPedidoVacio = errors.New("el pedido debe tener al menos un detalle")

// ErrorFila is a validation error scoped to a single detail row.
// Fila is 1-based, matching what the operator sees on screen.
type ErrorFila struct {
	Fila   int    `json:"fila"`
	Motivo string `json:"motivo"`
}

func (e ErrorFila) Error() string {
	return fmt.Sprintf("fila %d: %s", e.Fila, e.Motivo)
}

// ErrorReferencia signals that a detail row references a product or
// arrangement that does not exist at persistence time. The whole
// transaction is rolled back — the line is never silently dropped.
type ErrorReferencia struct {
	Referencia string
}

func (e *ErrorReferencia) Error() string {
	return fmt.Sprintf("referencia inexistente: %s", e.Referencia)
}

// ReporteValidacion combines order-level field errors with row-scoped
// detail errors into one addressable report. The service layer returns it
// instead of persisting anything when validation fails.
type ReporteValidacion struct {
	Campos map[string]string `json:"campos,omitempty"`
	Filas  []ErrorFila       `json:"filas,omitempty"`
}

func (r *ReporteValidacion) Error() string {
	partes := make([]string, 0, len(r.Campos)+len(r.Filas))
	for campo, motivo := range r.Campos {
		partes = append(partes, campo+": "+motivo)
	}
	for _, f := range r.Filas {
		partes = append(partes, f.Error())
	}
	return "validacion fallida: " + strings.Join(partes, "; ")
}

// Vacio reports whether the report carries no errors at all.
func (r *ReporteValidacion) Vacio() bool {
	return len(r.Campos) == 0 && len(r.Filas) == 0
}

// AgregarCampo records an order-level field error.
func (r *ReporteValidacion) AgregarCampo(campo, motivo string) {
	if r.Campos == nil {
		r.Campos = make(map[string]string)
	}
	r.Campos[campo] = motivo
}
