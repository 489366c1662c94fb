package infra

import (
	"fmt"
	"os"
	"path/filepath"

	"floristeria/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateReciboPDF renders a sales receipt in A7 ticket format
// (74mm x 105mm) and writes it under storagePath. It returns the
// absolute path of the generated file. The venta must come preloaded
// with Cliente and Detalles.Arreglo.
func GenerateReciboPDF(venta *model.Venta, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0o755); err != nil {
		return "", fmt.Errorf("pdf: crear directorio: %w", err)
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "mm",
		Size:    fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.SetAutoPageBreak(true, 4)
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 5, "Floristeria", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(0, 3.5, "Recibo de venta", "", 1, "C", false, 0, "")
	pdf.Ln(1.5)

	// Ticket info
	pdf.SetFont("Helvetica", "", 6.5)
	pdf.CellFormat(0, 3.2, fmt.Sprintf("Recibo: %s", venta.ID.String()[:8]), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 3.2, fmt.Sprintf("Fecha: %s", venta.FechaEmision.Format("2006-01-02")), "", 1, "L", false, 0, "")
	if venta.Cliente != nil {
		pdf.CellFormat(0, 3.2, fmt.Sprintf("Cliente: %s %s", venta.Cliente.Nombre, venta.Cliente.Apellido), "", 1, "L", false, 0, "")
	}
	pdf.Ln(1.5)

	// Item table
	usable := 74.0 - 8.0
	colNombre := usable * 0.52
	colCant := usable * 0.16
	colImporte := usable * 0.32

	pdf.SetFont("Helvetica", "B", 6.5)
	pdf.CellFormat(colNombre, 3.5, "Arreglo", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colCant, 3.5, "Cant", "B", 0, "C", false, 0, "")
	pdf.CellFormat(colImporte, 3.5, "Importe", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 6.5)
	for _, det := range venta.Detalles {
		nombre := "Arreglo"
		if det.Arreglo != nil {
			nombre = det.Arreglo.NombreFlor
		}
		pdf.CellFormat(colNombre, 3.2, nombre, "", 0, "L", false, 0, "")
		pdf.CellFormat(colCant, 3.2, fmt.Sprintf("%d", det.Cantidad), "", 0, "C", false, 0, "")
		pdf.CellFormat(colImporte, 3.2, "$"+det.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	}
	pdf.Ln(1)

	// Adjustments
	if venta.ManoObra.IsPositive() {
		pdf.CellFormat(colNombre+colCant, 3.2, "Mano de obra", "", 0, "L", false, 0, "")
		pdf.CellFormat(colImporte, 3.2, "$"+venta.ManoObra.StringFixed(2), "", 1, "R", false, 0, "")
	}
	if venta.ConDomicilio {
		pdf.CellFormat(colNombre+colCant, 3.2, "Envio a domicilio", "", 0, "L", false, 0, "")
		pdf.CellFormat(colImporte, 3.2, "$"+venta.PrecioEnvio.StringFixed(2), "", 1, "R", false, 0, "")
	}

	// Totals
	pdf.CellFormat(colNombre+colCant, 3.5, "Subtotal", "T", 0, "L", false, 0, "")
	pdf.CellFormat(colImporte, 3.5, "$"+venta.Subtotal.StringFixed(2), "T", 1, "R", false, 0, "")
	pdf.CellFormat(colNombre+colCant, 3.2, fmt.Sprintf("IVA (%s%%)", venta.IvaPct.StringFixed(0)), "", 0, "L", false, 0, "")
	pdf.CellFormat(colImporte, 3.2, "$"+venta.IvaTotal.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(colNombre+colCant, 4.5, "TOTAL", "", 0, "L", false, 0, "")
	pdf.CellFormat(colImporte, 4.5, "$"+venta.Total.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 6.5)
	pdf.CellFormat(0, 3.2, fmt.Sprintf("Forma de pago: %s", venta.FormaPago), "", 1, "L", false, 0, "")

	// Footer
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "I", 6.5)
	pdf.CellFormat(0, 3.5, "¡Gracias por su compra!", "", 1, "C", false, 0, "")

	path := filepath.Join(storagePath, fmt.Sprintf("recibo_%s.pdf", venta.ID))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("pdf: escribir archivo: %w", err)
	}
	return path, nil
}
