package service

import (
	"context"
	"fmt"

	"magictravel/internal/dto"
	"magictravel/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Availability states, in tie-break order.
const (
	CapacidadSinVehiculo = "NO_VEHICULO"
	CapacidadCompleta    = "COMPLETA"
	CapacidadCasiLlena   = "CASI_LLENA"
	CapacidadDisponible  = "DISPONIBLE"
	CapacidadVacia       = "VACIA"
)

var umbralCasiLlena = decimal.NewFromInt(80)

// CapacidadService computes vehicle occupancy vs. capacity for scheduled routes.
type CapacidadService interface {
	VerificarDisponibilidad(ctx context.Context, rutaActivadaID uuid.UUID, pasajeros int) (*dto.DisponibilidadResponse, error)
	// ValidarCapacidad re-checks adding adultos+ninos seats; excluirReservaID
	// discounts the reservation being edited so its own seats don't double-count.
	ValidarCapacidad(ctx context.Context, rutaActivadaID uuid.UUID, adultos, ninos int, excluirReservaID *uuid.UUID) (*dto.DisponibilidadResponse, error)
	// DeterminarNuevoEstado derives the route state label after an occupancy
	// change: "Llena" when no seats remain, "Activada" otherwise.
	DeterminarNuevoEstado(ctx context.Context, rutaActivadaID uuid.UUID) (string, error)
}

type capacidadService struct {
	rutas    repository.RutaActivadaRepository
	reservas repository.ReservaRepository
}

func NewCapacidadService(rutas repository.RutaActivadaRepository, reservas repository.ReservaRepository) CapacidadService {
	return &capacidadService{rutas: rutas, reservas: reservas}
}

func (s *capacidadService) VerificarDisponibilidad(ctx context.Context, rutaActivadaID uuid.UUID, pasajeros int) (*dto.DisponibilidadResponse, error) {
	if pasajeros <= 0 {
		return nil, fmt.Errorf("%w: pasajeros solicitados debe ser mayor a cero", ErrEntradaInvalida)
	}
	return s.verificar(ctx, rutaActivadaID, pasajeros, nil)
}

func (s *capacidadService) ValidarCapacidad(ctx context.Context, rutaActivadaID uuid.UUID, adultos, ninos int, excluirReservaID *uuid.UUID) (*dto.DisponibilidadResponse, error) {
	if adultos <= 0 {
		return nil, fmt.Errorf("%w: numero de adultos debe ser mayor a cero", ErrEntradaInvalida)
	}
	if ninos < 0 {
		return nil, fmt.Errorf("%w: numero de ninos no puede ser negativo", ErrEntradaInvalida)
	}
	return s.verificar(ctx, rutaActivadaID, adultos+ninos, excluirReservaID)
}

func (s *capacidadService) verificar(ctx context.Context, rutaActivadaID uuid.UUID, solicitados int, excluir *uuid.UUID) (*dto.DisponibilidadResponse, error) {
	ruta, err := s.rutas.FindByID(ctx, rutaActivadaID)
	if err != nil {
		return nil, fmt.Errorf("%w: ruta activada %s", ErrNoEncontrado, rutaActivadaID)
	}

	resp := &dto.DisponibilidadResponse{
		RutaActivadaID: rutaActivadaID.String(),
		Solicitados:    solicitados,
	}

	if ruta.Vehiculo == nil || ruta.Vehiculo.CapacidadPasajeros <= 0 {
		resp.Estado = CapacidadSinVehiculo
		resp.PorcentajeOcupacion = decimal.Zero
		return resp, nil
	}

	capacidad := ruta.Vehiculo.CapacidadPasajeros
	ocupacion := 0
	for _, r := range ruta.Reservas {
		if excluir != nil && r.ID == *excluir {
			continue
		}
		ocupacion += r.TotalPasajeros()
	}

	disponibles := capacidad - ocupacion
	pct := decimal.NewFromInt(int64(ocupacion)).
		Div(decimal.NewFromInt(int64(capacidad))).
		Mul(decimal.NewFromInt(100)).
		Round(1)

	resp.Capacidad = capacidad
	resp.Ocupacion = ocupacion
	resp.Disponibles = disponibles
	resp.PorcentajeOcupacion = pct
	resp.PuedeAcomodar = disponibles >= solicitados

	switch {
	case !resp.PuedeAcomodar:
		resp.Estado = CapacidadCompleta
	case pct.GreaterThanOrEqual(umbralCasiLlena):
		resp.Estado = CapacidadCasiLlena
	case pct.GreaterThan(decimal.Zero):
		resp.Estado = CapacidadDisponible
	default:
		resp.Estado = CapacidadVacia
	}
	return resp, nil
}

// DeterminarNuevoEstado collapses occupancy into the two labels the legacy
// data actually uses. The almost-full and empty levels deliberately share
// "Activada" — the report above is where the finer distinction lives.
func (s *capacidadService) DeterminarNuevoEstado(ctx context.Context, rutaActivadaID uuid.UUID) (string, error) {
	ruta, err := s.rutas.FindByID(ctx, rutaActivadaID)
	if err != nil {
		return "", fmt.Errorf("%w: ruta activada %s", ErrNoEncontrado, rutaActivadaID)
	}
	if ruta.Vehiculo == nil || ruta.Vehiculo.CapacidadPasajeros <= 0 {
		return "Activada", nil
	}
	ocupacion := 0
	for _, r := range ruta.Reservas {
		ocupacion += r.TotalPasajeros()
	}
	if ocupacion >= ruta.Vehiculo.CapacidadPasajeros {
		return "Llena", nil
	}
	return "Activada", nil
}
