package worker

// auditoria_worker.go
// Persists audit-trail entries asynchronously so mutating requests never wait
// on the auditorias table.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/enzofs112/roxfarma-sistema-gestion/internal/model"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/repository"
)

// AuditoriaJobPayload is the job envelope sent to QueueAuditoria.
type AuditoriaJobPayload struct {
	Operacion string `json:"operacion"` // CREAR | ACTUALIZAR | ELIMINAR
	Entidad   string `json:"entidad"`   // VENTA, PEDIDO, PRODUCTO, ...
	EntidadID int64  `json:"entidad_id"`
	Usuario   string `json:"usuario"`
	Detalles  string `json:"detalles"`
}

type AuditoriaWorker struct {
	repo repository.AuditoriaRepository
}

func NewAuditoriaWorker(repo repository.AuditoriaRepository) *AuditoriaWorker {
	return &AuditoriaWorker{repo: repo}
}

func (w *AuditoriaWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload AuditoriaJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		// Malformed payloads never succeed on retry — drop with a log instead.
		log.Error().Err(err).Msg("auditoria_worker: invalid payload")
		return nil
	}

	entry := &model.Auditoria{
		Operacion: payload.Operacion,
		Entidad:   payload.Entidad,
		EntidadID: payload.EntidadID,
		Usuario:   payload.Usuario,
		Detalles:  payload.Detalles,
	}
	if err := w.repo.Create(ctx, entry); err != nil {
		return fmt.Errorf("auditoria_worker: persist entry: %w", err)
	}

	log.Debug().
		Str("entidad", payload.Entidad).
		Int64("entidad_id", payload.EntidadID).
		Str("operacion", payload.Operacion).
		Msg("auditoria_worker: entry recorded")
	return nil
}
