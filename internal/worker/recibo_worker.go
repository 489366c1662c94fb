package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"floristeria/internal/infra"
	"floristeria/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ReciboJobPayload identifies the venta whose receipt must be built.
type ReciboJobPayload struct {
	VentaID uuid.UUID `json:"venta_id"`
}

// ReciboWorker generates the PDF receipt for a venta and, when the
// customer has an email on file, chains an email delivery job.
type ReciboWorker struct {
	ventaRepo   repository.VentaRepository
	dispatcher  *Dispatcher
	storagePath string
}

func NewReciboWorker(ventaRepo repository.VentaRepository, dispatcher *Dispatcher, storagePath string) *ReciboWorker {
	return &ReciboWorker{ventaRepo: ventaRepo, dispatcher: dispatcher, storagePath: storagePath}
}

func (w *ReciboWorker) Handle(ctx context.Context, job Job) error {
	var payload ReciboJobPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		return fmt.Errorf("recibo: payload invalido: %w", err)
	}

	venta, err := w.ventaRepo.FindByID(ctx, payload.VentaID)
	if err != nil {
		return fmt.Errorf("recibo: venta %s: %w", payload.VentaID, err)
	}

	path, err := infra.GenerateReciboPDF(venta, w.storagePath)
	if err != nil {
		return err
	}
	log.Info().Str("venta_id", venta.ID.String()).Str("pdf", path).Msg("recibo generado")

	if venta.Cliente == nil || venta.Cliente.Correo == nil || *venta.Cliente.Correo == "" {
		return nil
	}

	return w.dispatcher.EnqueueEmail(ctx, EmailJobPayload{
		ToEmail: *venta.Cliente.Correo,
		Subject: "Recibo de su compra en Floristeria",
		Body: fmt.Sprintf("Hola %s,\n\nAdjuntamos el recibo de su compra del %s por un total de $%s.\n\n¡Gracias por preferirnos!",
			venta.Cliente.Nombre, venta.FechaEmision.Format("2006-01-02"), venta.Total.StringFixed(2)),
		PDFPath: path,
	})
}
