package service

import (
	"context"
	"fmt"
	"time"

	"magictravel/internal/dto"
	"magictravel/internal/model"
	"magictravel/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Liquidation states for a scheduled route. LIQUIDADA is terminal.
const (
	LiquidacionSinReservas           = "SIN_RESERVAS"
	LiquidacionPendientePagos        = "PENDIENTE_PAGOS"
	LiquidacionPendienteConfirmacion = "PENDIENTE_CONFIRMACION"
	LiquidacionListoLiquidar         = "LISTO_LIQUIDAR"
	LiquidacionLiquidada             = "LIQUIDADA"
)

var accionesPorEstadoLiquidacion = map[string][]string{
	LiquidacionSinReservas:           {"Sin reservas de venta directa que liquidar"},
	LiquidacionPendientePagos:        {"Cobrar o confirmar las reservas pendientes de pago"},
	LiquidacionPendienteConfirmacion: {"Confirmar los pagos entregados al conductor"},
	LiquidacionListoLiquidar:         {"Ejecutar la liquidacion de la ruta"},
	LiquidacionLiquidada:             {},
}

// Dispatcher is the async side effects the engine emits after liquidating.
// Satisfied by *worker.Dispatcher; nil disables side effects.
type Dispatcher interface {
	EnqueueBitacora(ctx context.Context, payload interface{}) error
	EnqueueEmail(ctx context.Context, payload interface{}) error
}

// LiquidacionService derives the closure state of a scheduled route from its
// reservations and executes the final liquidation.
//
// Only VENTA_DIRECTA reservations enter the tally: transferred and received
// reservations settle through inter-agency commissions, never through the
// route's own cash.
type LiquidacionService interface {
	EstadoLiquidacion(ctx context.Context, rutaActivadaID uuid.UUID) (*dto.LiquidacionResponse, error)
	ProcesarLiquidacion(ctx context.Context, rutaActivadaID, usuarioID uuid.UUID) (*dto.LiquidacionFinalResponse, error)
	LiquidacionesPendientes(ctx context.Context) ([]dto.LiquidacionResponse, error)
	ActualizarEstadosMasivo(ctx context.Context) (*dto.ActualizacionMasivaResponse, error)
}

type liquidacionService struct {
	rutas          repository.RutaActivadaRepository
	egresos        repository.EgresoRepository
	estados        repository.EstadoRepository
	transferencias TransferenciaService
	pagos          PagoService
	capacidad      CapacidadService
	dispatcher     Dispatcher
	reportesEmail  string
}

func NewLiquidacionService(
	rutas repository.RutaActivadaRepository,
	egresos repository.EgresoRepository,
	estados repository.EstadoRepository,
	transferencias TransferenciaService,
	pagos PagoService,
	capacidad CapacidadService,
	dispatcher Dispatcher,
	reportesEmail string,
) LiquidacionService {
	return &liquidacionService{
		rutas:          rutas,
		egresos:        egresos,
		estados:        estados,
		transferencias: transferencias,
		pagos:          pagos,
		capacidad:      capacidad,
		dispatcher:     dispatcher,
		reportesEmail:  reportesEmail,
	}
}

// ── EstadoLiquidacion ─────────────────────────────────────────────────────────

func (s *liquidacionService) EstadoLiquidacion(ctx context.Context, rutaActivadaID uuid.UUID) (*dto.LiquidacionResponse, error) {
	ruta, err := s.rutas.FindByID(ctx, rutaActivadaID)
	if err != nil {
		return nil, fmt.Errorf("%w: ruta activada %s", ErrNoEncontrado, rutaActivadaID)
	}
	return s.estadoCargada(ctx, ruta)
}

func (s *liquidacionService) estadoCargada(ctx context.Context, ruta *model.RutaActivada) (*dto.LiquidacionResponse, error) {
	resp := &dto.LiquidacionResponse{
		RutaActivadaID: ruta.ID.String(),
		Fecha:          ruta.Fecha.Format("2006-01-02"),
	}
	if ruta.Ruta != nil {
		resp.Ruta = fmt.Sprintf("%s - %s", ruta.Ruta.Origen, ruta.Ruta.Destino)
	}

	// Terminal state short-circuits: a liquidated route is never reopened.
	if ruta.Estado != nil && model.ClasificarEstadoRuta(ruta.Estado.Nombre) == model.EstadoRutaLiquidada {
		resp.Estado = LiquidacionLiquidada
		resp.AccionesPendientes = accionesPorEstadoLiquidacion[LiquidacionLiquidada]
		resumen, err := s.resumenFinanciero(ctx, ruta, s.reservasDirectas(ctx, ruta))
		if err != nil {
			return nil, err
		}
		resp.Resumen = *resumen
		return resp, nil
	}

	directas := s.reservasDirectas(ctx, ruta)

	conteo := dto.ConteoPagos{Total: len(directas)}
	for _, r := range directas {
		pago, err := s.pagos.ClasificarPago(ctx, r.ID)
		if err != nil {
			log.Warn().Str("reserva_id", r.ID.String()).Err(err).
				Msg("reserva omitida en conteo de pagos")
			conteo.Desconocidos++
			continue
		}
		switch pago.FormaPago {
		case PagoCaja, Pagado:
			conteo.Confirmados++
		case PagoConductor:
			conteo.PorConfirmar++
		case Pendiente:
			conteo.Pendientes++
		default:
			conteo.Desconocidos++
		}
	}
	resp.Conteo = conteo

	switch {
	case conteo.Total == 0:
		resp.Estado = LiquidacionSinReservas
	case conteo.Pendientes > 0 || conteo.Desconocidos > 0:
		resp.Estado = LiquidacionPendientePagos
	case conteo.PorConfirmar > 0:
		resp.Estado = LiquidacionPendienteConfirmacion
	default:
		resp.Estado = LiquidacionListoLiquidar
	}
	resp.AccionesPendientes = accionesPorEstadoLiquidacion[resp.Estado]

	resumen, err := s.resumenFinanciero(ctx, ruta, directas)
	if err != nil {
		return nil, err
	}
	resp.Resumen = *resumen
	return resp, nil
}

// reservasDirectas filters the route's reservations down to direct sales.
// A reservation the classifier rejects is logged and excluded, matching the
// batch semantics everywhere else.
func (s *liquidacionService) reservasDirectas(ctx context.Context, ruta *model.RutaActivada) []model.Reserva {
	directas := make([]model.Reserva, 0, len(ruta.Reservas))
	for _, r := range ruta.Reservas {
		clasif, err := s.transferencias.Clasificar(ctx, r.ID)
		if err != nil {
			log.Warn().Str("reserva_id", r.ID.String()).Err(err).
				Msg("reserva omitida en liquidacion")
			continue
		}
		if clasif.Escenario == EscenarioVentaDirecta {
			directas = append(directas, r)
		}
	}
	return directas
}

func (s *liquidacionService) resumenFinanciero(ctx context.Context, ruta *model.RutaActivada, directas []model.Reserva) (*dto.ResumenFinanciero, error) {
	ingresoBruto := decimal.Zero
	for _, r := range directas {
		ingresoBruto = ingresoBruto.Add(r.MontoCobrar)
	}

	totalEgresos, err := s.egresos.SumByRutaActivada(ctx, ruta.ID)
	if err != nil {
		return nil, err
	}

	pagoConductor := decimal.Zero
	if ruta.Vehiculo != nil {
		pagoConductor = ruta.Vehiculo.PagoConductor
	}

	neto := ingresoBruto.Sub(totalEgresos).Sub(pagoConductor)

	margen := decimal.Zero
	if ingresoBruto.GreaterThan(decimal.Zero) {
		margen = neto.Div(ingresoBruto).Mul(decimal.NewFromInt(100)).Round(2)
	}

	return &dto.ResumenFinanciero{
		IngresoBruto:  ingresoBruto.Round(2),
		TotalEgresos:  totalEgresos.Round(2),
		PagoConductor: pagoConductor.Round(2),
		Neto:          neto.Round(2),
		MargenPct:     margen,
	}, nil
}

// ── ProcesarLiquidacion ───────────────────────────────────────────────────────
// The state is recomputed here, never trusted from the caller. Re-liquidating
// an already liquidated route fails with ErrEstadoInvalido.

func (s *liquidacionService) ProcesarLiquidacion(ctx context.Context, rutaActivadaID, usuarioID uuid.UUID) (*dto.LiquidacionFinalResponse, error) {
	ruta, err := s.rutas.FindByID(ctx, rutaActivadaID)
	if err != nil {
		return nil, fmt.Errorf("%w: ruta activada %s", ErrNoEncontrado, rutaActivadaID)
	}

	estado, err := s.estadoCargada(ctx, ruta)
	if err != nil {
		return nil, err
	}
	if estado.Estado != LiquidacionListoLiquidar {
		return nil, fmt.Errorf("%w: la ruta esta en %s, se requiere %s",
			ErrEstadoInvalido, estado.Estado, LiquidacionListoLiquidar)
	}

	estadoLiquidada, err := s.estados.FindByNombreContains(ctx, "liquidada")
	if err != nil {
		return nil, fmt.Errorf("%w: no existe estado 'liquidada' en el catalogo", ErrConfiguracion)
	}

	txErr := runTx(ctx, s.rutas.DB(), func(tx *gorm.DB) error {
		return s.rutas.UpdateEstadoTx(tx, ruta.ID, estadoLiquidada.ID)
	})
	if txErr != nil {
		return nil, txErr
	}

	s.emitirEventos(ctx, ruta, usuarioID, estado)

	return &dto.LiquidacionFinalResponse{
		RutaActivadaID: ruta.ID.String(),
		NuevoEstado:    estadoLiquidada.Nombre,
		Resumen:        estado.Resumen,
	}, nil
}

// emitirEventos enqueues the audit entry and the report email. Both are
// fire-and-forget: the liquidation is already committed.
func (s *liquidacionService) emitirEventos(ctx context.Context, ruta *model.RutaActivada, usuarioID uuid.UUID, estado *dto.LiquidacionResponse) {
	if s.dispatcher == nil {
		return
	}

	detalle := fmt.Sprintf("ruta %s liquidada, neto %s", estado.Ruta, estado.Resumen.Neto.StringFixed(2))
	if err := s.dispatcher.EnqueueBitacora(ctx, dto.BitacoraJobPayload{
		UsuarioID: usuarioID.String(),
		Accion:    "liquidar",
		Entidad:   "ruta_activada",
		EntidadID: ruta.ID.String(),
		Detalle:   &detalle,
	}); err != nil {
		log.Error().Err(err).Str("ruta_activada_id", ruta.ID.String()).
			Msg("no se pudo encolar la bitacora de liquidacion")
	}

	if s.reportesEmail == "" {
		return
	}
	if err := s.dispatcher.EnqueueEmail(ctx, dto.LiquidacionEmailPayload{
		Destinatario:   s.reportesEmail,
		RutaActivadaID: ruta.ID.String(),
		Ruta:           estado.Ruta,
		Fecha:          estado.Fecha,
		Conteo:         estado.Conteo,
		Resumen:        estado.Resumen,
	}); err != nil {
		log.Error().Err(err).Str("ruta_activada_id", ruta.ID.String()).
			Msg("no se pudo encolar el reporte de liquidacion")
	}
}

// ── LiquidacionesPendientes ───────────────────────────────────────────────────

// finDeHoy returns the last instant of the current day. Routes are due by
// date, not by timestamp: one scheduled for later today already counts.
func finDeHoy() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
}

// LiquidacionesPendientes reports every route dated today or earlier that has
// not been liquidated yet. A route that fails to evaluate is logged and
// skipped.
func (s *liquidacionService) LiquidacionesPendientes(ctx context.Context) ([]dto.LiquidacionResponse, error) {
	rutas, err := s.rutas.ListHastaFecha(ctx, finDeHoy())
	if err != nil {
		return nil, err
	}

	result := make([]dto.LiquidacionResponse, 0)
	for _, ruta := range rutas {
		if ruta.Estado != nil && model.ClasificarEstadoRuta(ruta.Estado.Nombre) == model.EstadoRutaLiquidada {
			continue
		}
		estado, err := s.EstadoLiquidacion(ctx, ruta.ID)
		if err != nil {
			log.Warn().Str("ruta_activada_id", ruta.ID.String()).Err(err).
				Msg("ruta omitida en liquidaciones pendientes")
			continue
		}
		result = append(result, *estado)
	}
	return result, nil
}

// ── ActualizarEstadosMasivo ───────────────────────────────────────────────────

// ActualizarEstadosMasivo refreshes the occupancy-derived state of every
// non-liquidated scheduled route. Each route is independent: one failure
// never aborts the pass.
func (s *liquidacionService) ActualizarEstadosMasivo(ctx context.Context) (*dto.ActualizacionMasivaResponse, error) {
	rutas, err := s.rutas.ListHastaFecha(ctx, finDeHoy())
	if err != nil {
		return nil, err
	}

	resp := &dto.ActualizacionMasivaResponse{}
	for _, ruta := range rutas {
		resp.Revisadas++

		if ruta.Estado != nil && model.ClasificarEstadoRuta(ruta.Estado.Nombre) == model.EstadoRutaLiquidada {
			resp.Omitidas++
			continue
		}

		nuevoNombre, err := s.capacidad.DeterminarNuevoEstado(ctx, ruta.ID)
		if err != nil {
			log.Warn().Str("ruta_activada_id", ruta.ID.String()).Err(err).
				Msg("ruta omitida en actualizacion masiva")
			resp.Omitidas++
			continue
		}
		if ruta.Estado != nil && ruta.Estado.Nombre == nuevoNombre {
			resp.Omitidas++
			continue
		}

		nuevoEstado, err := s.estados.FindByNombreContains(ctx, nuevoNombre)
		if err != nil {
			log.Warn().Str("ruta_activada_id", ruta.ID.String()).Str("estado", nuevoNombre).Err(err).
				Msg("estado no encontrado en el catalogo")
			resp.Omitidas++
			continue
		}
		if err := s.rutas.UpdateEstado(ctx, ruta.ID, nuevoEstado.ID); err != nil {
			log.Error().Str("ruta_activada_id", ruta.ID.String()).Err(err).
				Msg("no se pudo actualizar el estado de la ruta")
			resp.Omitidas++
			continue
		}
		resp.Actualizadas++
	}
	return resp, nil
}
