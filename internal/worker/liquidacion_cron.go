package worker

// liquidacion_cron.go
// Background goroutine that periodically refreshes the occupancy-derived
// state of every non-liquidated scheduled route, so routes flip between
// "Activada" and "Llena" without waiting for a reservation write.

import (
	"context"
	"time"

	"magictravel/internal/service"

	"github.com/rs/zerolog/log"
)

// StartLiquidacionCron launches a background goroutine that ticks every
// intervalMinutes and runs the bulk status refresh. A non-positive interval
// disables the cron. Respects the context for graceful shutdown.
func StartLiquidacionCron(ctx context.Context, liquidaciones service.LiquidacionService, intervalMinutes int) {
	if intervalMinutes <= 0 {
		log.Info().Msg("liquidacion_cron: disabled")
		return
	}

	go func() {
		ticker := time.NewTicker(time.Duration(intervalMinutes) * time.Minute)
		defer ticker.Stop()

		log.Info().Int("interval_min", intervalMinutes).Msg("liquidacion_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("liquidacion_cron: shutting down")
				return
			case <-ticker.C:
				resumen, err := liquidaciones.ActualizarEstadosMasivo(ctx)
				if err != nil {
					log.Error().Err(err).Msg("liquidacion_cron: bulk status refresh failed")
					continue
				}
				if resumen.Actualizadas > 0 {
					log.Info().
						Int("revisadas", resumen.Revisadas).
						Int("actualizadas", resumen.Actualizadas).
						Int("omitidas", resumen.Omitidas).
						Msg("liquidacion_cron: estados refreshed")
				}
			}
		}
	}()
}
