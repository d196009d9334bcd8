package worker

// email_worker.go
// Processes boleta-email jobs from QueueEmail: regenerates the receipt PDF
// and sends it to the customer via SMTP.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/enzofs112/roxfarma-sistema-gestion/internal/infra"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/repository"
)

// EmailJobPayload is the job envelope sent to QueueEmail.
type EmailJobPayload struct {
	VentaID int64  `json:"venta_id"`
	ToEmail string `json:"to_email"`
}

type EmailWorker struct {
	ventas repository.VentaRepository
	mailer *infra.Mailer
}

func NewEmailWorker(ventas repository.VentaRepository, mailer *infra.Mailer) *EmailWorker {
	return &EmailWorker{ventas: ventas, mailer: mailer}
}

// Process renders the boleta for the sale and emails it as attachment.
func (w *EmailWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload EmailJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("email_worker: invalid payload")
		return nil
	}
	if payload.ToEmail == "" {
		log.Warn().Int64("venta_id", payload.VentaID).Msg("email_worker: empty to_email — skipping")
		return nil
	}

	venta, err := w.ventas.FindByID(ctx, payload.VentaID)
	if err != nil {
		return fmt.Errorf("email_worker: load venta %d: %w", payload.VentaID, err)
	}

	pdfBytes, err := infra.GenerarBoletaPDF(venta)
	if err != nil {
		return fmt.Errorf("email_worker: render boleta: %w", err)
	}

	numero := infra.NumeroBoleta(venta.ID)
	subject := "Boleta de venta " + numero
	body := "Adjuntamos la boleta " + numero + ". Gracias por su compra."
	fileName := numero + ".pdf"

	if err := w.mailer.SendBoleta(payload.ToEmail, subject, body, pdfBytes, fileName); err != nil {
		return fmt.Errorf("email_worker: send to %s: %w", payload.ToEmail, err)
	}

	log.Info().Str("to", payload.ToEmail).Str("boleta", numero).Msg("email_worker: boleta sent")
	return nil
}
