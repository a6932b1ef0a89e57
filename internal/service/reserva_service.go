package service

import (
	"context"
	"fmt"

	"magictravel/internal/dto"
	"magictravel/internal/model"
	"magictravel/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ReservaService handles the booking lifecycle. Capacity and pricing are
// delegated to their own services so the rules live in exactly one place.
type ReservaService interface {
	CrearReserva(ctx context.Context, usuarioID uuid.UUID, req dto.CrearReservaRequest) (*dto.ReservaResponse, error)
	ObtenerReserva(ctx context.Context, id uuid.UUID) (*dto.ReservaResponse, error)
	ListarPorRutaActivada(ctx context.Context, rutaActivadaID uuid.UUID) ([]dto.ReservaResponse, error)
	ActualizarReserva(ctx context.Context, id, usuarioID uuid.UUID, req dto.ActualizarReservaRequest) (*dto.ReservaResponse, error)
	EliminarReserva(ctx context.Context, id, usuarioID uuid.UUID) error
}

type reservaService struct {
	reservas   repository.ReservaRepository
	rutas      repository.RutaActivadaRepository
	estados    repository.EstadoRepository
	precios    PrecioService
	capacidad  CapacidadService
	dispatcher Dispatcher
}

func NewReservaService(
	reservas repository.ReservaRepository,
	rutas repository.RutaActivadaRepository,
	estados repository.EstadoRepository,
	precios PrecioService,
	capacidad CapacidadService,
	dispatcher Dispatcher,
) ReservaService {
	return &reservaService{
		reservas:   reservas,
		rutas:      rutas,
		estados:    estados,
		precios:    precios,
		capacidad:  capacidad,
		dispatcher: dispatcher,
	}
}

// ── CrearReserva ──────────────────────────────────────────────────────────────
// Pre-flight (outside any write): union validation, route state, capacity,
// price. The insert itself is a single row; the route state refresh happens
// after, best effort.

func (s *reservaService) CrearReserva(ctx context.Context, usuarioID uuid.UUID, req dto.CrearReservaRequest) (*dto.ReservaResponse, error) {
	servicioID, err := uuid.Parse(req.ServicioID)
	if err != nil {
		return nil, fmt.Errorf("%w: servicio_id invalido", ErrEntradaInvalida)
	}

	rutaActivadaID, tourActivadoID, err := parseDestino(req.RutaActivadaID, req.TourActivadoID)
	if err != nil {
		return nil, err
	}

	if rutaActivadaID != nil {
		ruta, err := s.rutas.FindByID(ctx, *rutaActivadaID)
		if err != nil {
			return nil, fmt.Errorf("%w: ruta activada %s", ErrNoEncontrado, *rutaActivadaID)
		}
		if ruta.Estado != nil && model.ClasificarEstadoRuta(ruta.Estado.Nombre) == model.EstadoRutaLiquidada {
			return nil, fmt.Errorf("%w: la ruta ya fue liquidada", ErrEstadoInvalido)
		}

		disp, err := s.capacidad.ValidarCapacidad(ctx, *rutaActivadaID, req.NumeroAdultos, req.NumeroNinos, nil)
		if err != nil {
			return nil, err
		}
		if !disp.PuedeAcomodar {
			return nil, fmt.Errorf("%w: capacidad insuficiente (%d disponibles, %d solicitados)",
				ErrEstadoInvalido, disp.Disponibles, disp.Solicitados)
		}
	}

	monto, err := s.precios.CalcularPrecioReserva(ctx, servicioID, req.NumeroAdultos, req.NumeroNinos)
	if err != nil {
		return nil, err
	}

	estadoInicial, err := s.estados.FindByNombreContains(ctx, "pendiente")
	if err != nil {
		return nil, fmt.Errorf("%w: no existe estado 'pendiente' en el catalogo", ErrConfiguracion)
	}

	reserva := &model.Reserva{
		NombreCliente:   req.NombreCliente,
		TelefonoCliente: req.TelefonoCliente,
		NumeroAdultos:   req.NumeroAdultos,
		NumeroNinos:     req.NumeroNinos,
		MontoCobrar:     monto,
		ServicioID:      servicioID,
		RutaActivadaID:  rutaActivadaID,
		TourActivadoID:  tourActivadoID,
		EstadoID:        estadoInicial.ID,
	}
	if req.AgenciaTransferidaID != nil {
		tid, err := uuid.Parse(*req.AgenciaTransferidaID)
		if err != nil {
			return nil, fmt.Errorf("%w: agencia_transferida_id invalido", ErrEntradaInvalida)
		}
		reserva.AgenciaTransferidaID = &tid
	}

	if err := s.reservas.Create(ctx, nil, reserva); err != nil {
		return nil, err
	}

	s.refrescarEstadoRuta(ctx, rutaActivadaID)
	s.auditar(ctx, usuarioID, "crear", reserva.ID, fmt.Sprintf("reserva para %s, %d pax", reserva.NombreCliente, reserva.TotalPasajeros()))

	creada, err := s.reservas.FindByID(ctx, reserva.ID)
	if err != nil {
		return reservaToResponse(reserva), nil
	}
	return reservaToResponse(creada), nil
}

func (s *reservaService) ObtenerReserva(ctx context.Context, id uuid.UUID) (*dto.ReservaResponse, error) {
	reserva, err := s.reservas.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: reserva %s", ErrNoEncontrado, id)
	}
	return reservaToResponse(reserva), nil
}

func (s *reservaService) ListarPorRutaActivada(ctx context.Context, rutaActivadaID uuid.UUID) ([]dto.ReservaResponse, error) {
	reservas, err := s.reservas.ListByRutaActivada(ctx, rutaActivadaID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ReservaResponse, 0, len(reservas))
	for i := range reservas {
		result = append(result, *reservaToResponse(&reservas[i]))
	}
	return result, nil
}

// ── ActualizarReserva ─────────────────────────────────────────────────────────
// A passenger-count change revalidates capacity (discounting the reservation's
// own current seats) and reprices the charge.

func (s *reservaService) ActualizarReserva(ctx context.Context, id, usuarioID uuid.UUID, req dto.ActualizarReservaRequest) (*dto.ReservaResponse, error) {
	reserva, err := s.reservas.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: reserva %s", ErrNoEncontrado, id)
	}

	if req.NombreCliente != nil {
		reserva.NombreCliente = *req.NombreCliente
	}
	if req.TelefonoCliente != nil {
		reserva.TelefonoCliente = req.TelefonoCliente
	}
	if req.AgenciaTransferidaID != nil {
		tid, err := uuid.Parse(*req.AgenciaTransferidaID)
		if err != nil {
			return nil, fmt.Errorf("%w: agencia_transferida_id invalido", ErrEntradaInvalida)
		}
		reserva.AgenciaTransferidaID = &tid
	}

	cambioPasajeros := req.NumeroAdultos != nil || req.NumeroNinos != nil
	if cambioPasajeros {
		adultos := reserva.NumeroAdultos
		ninos := reserva.NumeroNinos
		if req.NumeroAdultos != nil {
			adultos = *req.NumeroAdultos
		}
		if req.NumeroNinos != nil {
			ninos = *req.NumeroNinos
		}

		if reserva.RutaActivadaID != nil {
			disp, err := s.capacidad.ValidarCapacidad(ctx, *reserva.RutaActivadaID, adultos, ninos, &reserva.ID)
			if err != nil {
				return nil, err
			}
			if !disp.PuedeAcomodar {
				return nil, fmt.Errorf("%w: capacidad insuficiente (%d disponibles, %d solicitados)",
					ErrEstadoInvalido, disp.Disponibles, disp.Solicitados)
			}
		}

		monto, err := s.precios.CalcularPrecioReserva(ctx, reserva.ServicioID, adultos, ninos)
		if err != nil {
			return nil, err
		}
		reserva.NumeroAdultos = adultos
		reserva.NumeroNinos = ninos
		reserva.MontoCobrar = monto
	}

	if err := s.reservas.Update(ctx, reserva); err != nil {
		return nil, err
	}

	if cambioPasajeros {
		s.refrescarEstadoRuta(ctx, reserva.RutaActivadaID)
	}
	s.auditar(ctx, usuarioID, "actualizar", reserva.ID, "")

	return reservaToResponse(reserva), nil
}

func (s *reservaService) EliminarReserva(ctx context.Context, id, usuarioID uuid.UUID) error {
	reserva, err := s.reservas.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: reserva %s", ErrNoEncontrado, id)
	}

	if err := s.reservas.Delete(ctx, id); err != nil {
		return err
	}

	s.refrescarEstadoRuta(ctx, reserva.RutaActivadaID)
	s.auditar(ctx, usuarioID, "eliminar", id, fmt.Sprintf("reserva de %s", reserva.NombreCliente))
	return nil
}

// refrescarEstadoRuta re-derives the route's occupancy state after a seat
// change. Best effort: the booking write already succeeded.
func (s *reservaService) refrescarEstadoRuta(ctx context.Context, rutaActivadaID *uuid.UUID) {
	if rutaActivadaID == nil {
		return
	}
	nombre, err := s.capacidad.DeterminarNuevoEstado(ctx, *rutaActivadaID)
	if err != nil {
		log.Warn().Str("ruta_activada_id", rutaActivadaID.String()).Err(err).
			Msg("no se pudo derivar el estado de la ruta")
		return
	}
	estado, err := s.estados.FindByNombreContains(ctx, nombre)
	if err != nil {
		log.Warn().Str("estado", nombre).Err(err).Msg("estado no encontrado en el catalogo")
		return
	}
	if err := s.rutas.UpdateEstado(ctx, *rutaActivadaID, estado.ID); err != nil {
		log.Error().Str("ruta_activada_id", rutaActivadaID.String()).Err(err).
			Msg("no se pudo actualizar el estado de la ruta")
	}
}

func (s *reservaService) auditar(ctx context.Context, usuarioID uuid.UUID, accion string, reservaID uuid.UUID, detalle string) {
	if s.dispatcher == nil {
		return
	}
	payload := dto.BitacoraJobPayload{
		UsuarioID: usuarioID.String(),
		Accion:    accion,
		Entidad:   "reserva",
		EntidadID: reservaID.String(),
	}
	if detalle != "" {
		payload.Detalle = &detalle
	}
	if err := s.dispatcher.EnqueueBitacora(ctx, payload); err != nil {
		log.Error().Err(err).Str("accion", accion).Msg("no se pudo encolar la bitacora")
	}
}

// parseDestino enforces the exactly-one-destination rule at the API boundary.
func parseDestino(rutaActivadaID, tourActivadoID *string) (*uuid.UUID, *uuid.UUID, error) {
	if (rutaActivadaID == nil) == (tourActivadoID == nil) {
		return nil, nil, fmt.Errorf("%w: la reserva requiere exactamente un destino (ruta_activada_id o tour_activado_id)", ErrEntradaInvalida)
	}
	if rutaActivadaID != nil {
		id, err := uuid.Parse(*rutaActivadaID)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: ruta_activada_id invalido", ErrEntradaInvalida)
		}
		return &id, nil, nil
	}
	id, err := uuid.Parse(*tourActivadoID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: tour_activado_id invalido", ErrEntradaInvalida)
	}
	return nil, &id, nil
}

func reservaToResponse(r *model.Reserva) *dto.ReservaResponse {
	resp := &dto.ReservaResponse{
		ID:              r.ID.String(),
		NombreCliente:   r.NombreCliente,
		TelefonoCliente: r.TelefonoCliente,
		NumeroAdultos:   r.NumeroAdultos,
		NumeroNinos:     r.NumeroNinos,
		TotalPasajeros:  r.TotalPasajeros(),
		MontoCobrar:     r.MontoCobrar,
		ServicioID:      r.ServicioID.String(),
		CreatedAt:       r.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if r.RutaActivadaID != nil {
		id := r.RutaActivadaID.String()
		resp.RutaActivadaID = &id
	}
	if r.TourActivadoID != nil {
		id := r.TourActivadoID.String()
		resp.TourActivadoID = &id
	}
	if r.AgenciaTransferidaID != nil {
		id := r.AgenciaTransferidaID.String()
		resp.AgenciaTransferidaID = &id
	}
	if r.Estado != nil {
		resp.Estado = r.Estado.Nombre
	}
	return resp
}
