package worker

import (
	"context"
	"encoding/json"

	"magictravel/internal/dto"
	"magictravel/internal/model"
	"magictravel/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// BitacoraWorker persists audit events. Failures are logged and swallowed —
// the audit sink never affects the operation that produced the event.
type BitacoraWorker struct {
	repo repository.BitacoraRepository
}

func NewBitacoraWorker(repo repository.BitacoraRepository) *BitacoraWorker {
	return &BitacoraWorker{repo: repo}
}

func (w *BitacoraWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload dto.BitacoraJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("bitacora_worker: invalid payload")
		return
	}

	entrada := &model.Bitacora{
		Accion:  payload.Accion,
		Entidad: payload.Entidad,
		Detalle: payload.Detalle,
	}
	if uid, err := uuid.Parse(payload.UsuarioID); err == nil {
		entrada.UsuarioID = &uid
	}
	if eid, err := uuid.Parse(payload.EntidadID); err == nil {
		entrada.EntidadID = &eid
	}

	if err := w.repo.Create(ctx, entrada); err != nil {
		log.Error().Err(err).Str("accion", payload.Accion).Msg("bitacora_worker: insert failed")
	}
}
