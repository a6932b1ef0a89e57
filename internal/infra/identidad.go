package infra

import (
	"context"
	"fmt"

	"magictravel/internal/config"
	"magictravel/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ResolverIdentidadOperadora resolves the operator agency id once at startup.
// Precedence: explicit MAGIC_TRAVEL_AGENCY_ID, then a name-fragment lookup
// with MAGIC_TRAVEL_AGENCY_NOMBRE. Failing both is a fatal misconfiguration:
// every transfer classification depends on this id.
func ResolverIdentidadOperadora(ctx context.Context, cfg *config.Config, agencias repository.AgenciaRepository) (uuid.UUID, error) {
	if cfg.MagicTravelAgencyID != "" {
		id, err := uuid.Parse(cfg.MagicTravelAgencyID)
		if err != nil {
			return uuid.Nil, fmt.Errorf("identidad: MAGIC_TRAVEL_AGENCY_ID invalido: %w", err)
		}
		if _, err := agencias.FindByID(ctx, id); err != nil {
			return uuid.Nil, fmt.Errorf("identidad: agencia %s no existe: %w", id, err)
		}
		log.Info().Str("agencia_id", id.String()).Msg("identidad operadora fijada por configuracion")
		return id, nil
	}

	agencia, err := agencias.FindByNombreContains(ctx, cfg.MagicTravelAgencyNombre)
	if err != nil {
		return uuid.Nil, fmt.Errorf("identidad: ninguna agencia coincide con %q: %w",
			cfg.MagicTravelAgencyNombre, err)
	}
	log.Info().Str("agencia_id", agencia.ID.String()).Str("nombre", agencia.Nombre).
		Msg("identidad operadora resuelta por nombre")
	return agencia.ID, nil
}
