package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"magictravel/internal/dto"
	"magictravel/internal/infra"

	"github.com/rs/zerolog/log"
)

// EmailWorker renders the liquidation PDF and mails it. Like every worker
// here it only logs failures: the liquidation itself already committed.
type EmailWorker struct {
	mailer         *infra.Mailer
	pdfStoragePath string
}

func NewEmailWorker(mailer *infra.Mailer, pdfStoragePath string) *EmailWorker {
	return &EmailWorker{mailer: mailer, pdfStoragePath: pdfStoragePath}
}

func (w *EmailWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload dto.LiquidacionEmailPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("email_worker: invalid payload")
		return
	}
	if payload.Destinatario == "" {
		log.Warn().Str("ruta_activada_id", payload.RutaActivadaID).
			Msg("email_worker: sin destinatario, reporte descartado")
		return
	}

	pdfPath, err := infra.GenerarReporteLiquidacion(
		payload.RutaActivadaID, payload.Ruta, payload.Fecha,
		payload.Conteo, payload.Resumen, w.pdfStoragePath)
	if err != nil {
		log.Error().Err(err).Str("ruta_activada_id", payload.RutaActivadaID).
			Msg("email_worker: pdf generation failed")
		// Send without the attachment rather than dropping the report
		pdfPath = ""
	}

	subject := fmt.Sprintf("Liquidacion %s (%s)", payload.Ruta, payload.Fecha)
	body := fmt.Sprintf(
		"Ruta: %s\nFecha: %s\n\nReservas directas: %d\nIngreso bruto: Q %s\nTotal egresos: Q %s\nPago conductor: Q %s\nNeto: Q %s\nMargen: %s %%\n",
		payload.Ruta, payload.Fecha,
		payload.Conteo.Total,
		payload.Resumen.IngresoBruto.StringFixed(2),
		payload.Resumen.TotalEgresos.StringFixed(2),
		payload.Resumen.PagoConductor.StringFixed(2),
		payload.Resumen.Neto.StringFixed(2),
		payload.Resumen.MargenPct.StringFixed(2),
	)

	if err := w.mailer.SendReporte(payload.Destinatario, subject, body, pdfPath); err != nil {
		log.Error().Err(err).Str("ruta_activada_id", payload.RutaActivadaID).
			Msg("email_worker: send failed")
		return
	}
	log.Info().Str("ruta_activada_id", payload.RutaActivadaID).
		Str("to", payload.Destinatario).Msg("reporte de liquidacion enviado")
}
