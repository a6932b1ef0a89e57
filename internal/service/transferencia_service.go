package service

import (
	"context"
	"fmt"

	"magictravel/internal/dto"
	"magictravel/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Inter-agency transfer scenarios.
const (
	EscenarioVentaDirecta       = "VENTA_DIRECTA"
	EscenarioReubicacionInterna = "REUBICACION_INTERNA"
	EscenarioMagicTransfiere    = "MAGIC_TRANSFIERE"
	EscenarioMagicRecibeOpera   = "MAGIC_RECIBE_OPERA"
	EscenarioMagicPuente        = "MAGIC_PUENTE"
	EscenarioCasoEspecial       = "CASO_ESPECIAL"
)

// implicacionesPorEscenario is the static financial-implications table —
// looked up, never computed.
var implicacionesPorEscenario = map[string]dto.ImplicacionesFinancieras{
	EscenarioVentaDirecta: {
		FacturaCliente: "magic_travel", Opera: "magic_travel",
		GananciaTotal: true, ComisionPendiente: false, CrearEnCaja: true,
	},
	EscenarioReubicacionInterna: {
		FacturaCliente: "magic_travel", Opera: "magic_travel",
		GananciaTotal: true, ComisionPendiente: false, CrearEnCaja: true,
	},
	EscenarioMagicTransfiere: {
		FacturaCliente: "magic_travel", Opera: "agencia_transferida",
		GananciaTotal: false, ComisionPendiente: true, CrearEnCaja: false,
	},
	EscenarioMagicRecibeOpera: {
		FacturaCliente: "agencia_externa", Opera: "magic_travel",
		GananciaTotal: false, ComisionPendiente: true, CrearEnCaja: false,
	},
	EscenarioMagicPuente: {
		FacturaCliente: "agencia_externa", Opera: "agencia_transferida",
		GananciaTotal: false, ComisionPendiente: true, CrearEnCaja: false,
	},
	EscenarioCasoEspecial: {
		FacturaCliente: "revisar", Opera: "revisar",
		GananciaTotal: false, ComisionPendiente: false, CrearEnCaja: false,
	},
}

var descripcionPorEscenario = map[string]string{
	EscenarioVentaDirecta:       "Magic Travel vende y opera la reserva directamente",
	EscenarioReubicacionInterna: "Reubicacion interna entre servicios de Magic Travel",
	EscenarioMagicTransfiere:    "Magic Travel vende pero transfiere la operacion a otra agencia",
	EscenarioMagicRecibeOpera:   "Otra agencia vende y Magic Travel opera el servicio",
	EscenarioMagicPuente:        "Magic Travel actua como puente entre dos agencias externas",
	EscenarioCasoEspecial:       "Combinacion no clasificada — requiere revision manual",
}

// TransferenciaService classifies who sells vs. who operates each reservation.
// The operator agency id is resolved once at startup (infra.ResolverIdentidadOperadora)
// and injected here — never re-derived per call.
type TransferenciaService interface {
	Clasificar(ctx context.Context, reservaID uuid.UUID) (*dto.TransferenciaResponse, error)
	ObtenerReservasPorEscenario(ctx context.Context, escenario string) ([]dto.TransferenciaResponse, error)
}

type transferenciaService struct {
	reservas      repository.ReservaRepository
	magicTravelID uuid.UUID
}

func NewTransferenciaService(reservas repository.ReservaRepository, magicTravelID uuid.UUID) TransferenciaService {
	return &transferenciaService{reservas: reservas, magicTravelID: magicTravelID}
}

// ── Clasificar ────────────────────────────────────────────────────────────────
// Decision table, evaluated top to bottom. Exhaustive and mutually exclusive
// over (operadora, transferida) relative to the operator agency:
//
//	operadora == magic, transferida nil      → VENTA_DIRECTA
//	operadora == magic, transferida == magic → REUBICACION_INTERNA
//	operadora == magic, transferida otra     → MAGIC_TRANSFIERE
//	operadora != magic, transferida nil      → MAGIC_RECIBE_OPERA
//	operadora != magic, transferida != magic → MAGIC_PUENTE
//	operadora != magic, transferida == magic → CASO_ESPECIAL

func (s *transferenciaService) Clasificar(ctx context.Context, reservaID uuid.UUID) (*dto.TransferenciaResponse, error) {
	if s.magicTravelID == uuid.Nil {
		return nil, fmt.Errorf("%w: agencia operadora sin resolver", ErrConfiguracion)
	}

	reserva, err := s.reservas.FindByID(ctx, reservaID)
	if err != nil {
		return nil, fmt.Errorf("%w: reserva %s", ErrNoEncontrado, reservaID)
	}

	booking, err := reserva.Booking()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntradaInvalida, err)
	}

	var operadoraID *uuid.UUID
	if ag := booking.AgenciaOperadora(); ag != nil {
		operadoraID = &ag.ID
	}
	transferidaID := reserva.AgenciaTransferidaID

	operaMagic := operadoraID != nil && *operadoraID == s.magicTravelID
	var escenario string
	switch {
	case operaMagic && transferidaID == nil:
		escenario = EscenarioVentaDirecta
	case operaMagic && *transferidaID == s.magicTravelID:
		escenario = EscenarioReubicacionInterna
	case operaMagic:
		escenario = EscenarioMagicTransfiere
	case transferidaID == nil:
		escenario = EscenarioMagicRecibeOpera
	case *transferidaID != s.magicTravelID:
		escenario = EscenarioMagicPuente
	default:
		escenario = EscenarioCasoEspecial
	}

	resp := &dto.TransferenciaResponse{
		ReservaID:     reservaID.String(),
		Escenario:     escenario,
		Descripcion:   descripcionPorEscenario[escenario],
		Implicaciones: implicacionesPorEscenario[escenario],
	}
	if operadoraID != nil {
		id := operadoraID.String()
		resp.AgenciaOperadoraID = &id
	}
	if transferidaID != nil {
		id := transferidaID.String()
		resp.AgenciaTransferidaID = &id
	}
	return resp, nil
}

// ObtenerReservasPorEscenario classifies every live reservation and keeps the
// ones matching escenario. A malformed reservation is logged and skipped —
// it must not abort the batch.
func (s *transferenciaService) ObtenerReservasPorEscenario(ctx context.Context, escenario string) ([]dto.TransferenciaResponse, error) {
	if _, ok := implicacionesPorEscenario[escenario]; !ok {
		return nil, fmt.Errorf("%w: escenario %q desconocido", ErrEntradaInvalida, escenario)
	}

	reservas, err := s.reservas.ListVivas(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]dto.TransferenciaResponse, 0)
	for _, r := range reservas {
		clasif, err := s.Clasificar(ctx, r.ID)
		if err != nil {
			log.Warn().Str("reserva_id", r.ID.String()).Err(err).
				Msg("reserva omitida en clasificacion por escenario")
			continue
		}
		if clasif.Escenario == escenario {
			result = append(result, *clasif)
		}
	}
	return result, nil
}
