package service

import (
	"context"
	"fmt"

	"magictravel/internal/dto"
	"magictravel/internal/model"
	"magictravel/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Children on collective services pay 75% of the effective price.
var factorNino = decimal.NewFromFloat(0.75)

// PrecioService computes reservation charges from a service's pricing.
type PrecioService interface {
	CalcularPrecioReserva(ctx context.Context, servicioID uuid.UUID, adultos, ninos int) (decimal.Decimal, error)
	CalcularDesglose(ctx context.Context, servicioID uuid.UUID, adultos, ninos int) (*dto.DesglosePrecioResponse, error)
}

type precioService struct {
	servicios repository.ServicioRepository
}

func NewPrecioService(servicios repository.ServicioRepository) PrecioService {
	return &precioService{servicios: servicios}
}

// ── CalcularPrecioReserva ─────────────────────────────────────────────────────
// PRIVADO: flat effective price, independent of passenger count.
// COLECTIVO: adultos × efectivo + ninos × (0.75 × efectivo).

func (s *precioService) CalcularPrecioReserva(ctx context.Context, servicioID uuid.UUID, adultos, ninos int) (decimal.Decimal, error) {
	if adultos <= 0 {
		return decimal.Zero, fmt.Errorf("%w: numero de adultos debe ser mayor a cero", ErrEntradaInvalida)
	}
	if ninos < 0 {
		return decimal.Zero, fmt.Errorf("%w: numero de ninos no puede ser negativo", ErrEntradaInvalida)
	}

	servicio, err := s.servicios.FindByID(ctx, servicioID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: servicio %s", ErrNoEncontrado, servicioID)
	}

	efectivo := servicio.PrecioEfectivo()
	if servicio.Tipo == model.ServicioPrivado {
		return efectivo.Round(2), nil
	}

	precioNino := efectivo.Mul(factorNino)
	total := efectivo.Mul(decimal.NewFromInt(int64(adultos))).
		Add(precioNino.Mul(decimal.NewFromInt(int64(ninos))))
	return total.Round(2), nil
}

// CalcularDesglose returns the charge plus the per-segment breakdown for
// display. Pure derived data — no side effects.
func (s *precioService) CalcularDesglose(ctx context.Context, servicioID uuid.UUID, adultos, ninos int) (*dto.DesglosePrecioResponse, error) {
	if adultos <= 0 {
		return nil, fmt.Errorf("%w: numero de adultos debe ser mayor a cero", ErrEntradaInvalida)
	}
	if ninos < 0 {
		return nil, fmt.Errorf("%w: numero de ninos no puede ser negativo", ErrEntradaInvalida)
	}

	servicio, err := s.servicios.FindByID(ctx, servicioID)
	if err != nil {
		return nil, fmt.Errorf("%w: servicio %s", ErrNoEncontrado, servicioID)
	}

	efectivo := servicio.PrecioEfectivo()
	desglose := &dto.DesglosePrecioResponse{
		ServicioID:     servicio.ID.String(),
		TipoServicio:   servicio.Tipo,
		PrecioBase:     servicio.PrecioNormal,
		ConDescuento:   servicio.PrecioDescuento != nil,
		PrecioEfectivo: efectivo,
	}

	if servicio.Tipo == model.ServicioPrivado {
		// Flat rate: one segment covering the whole group
		desglose.Lineas = []dto.LineaPrecio{{
			Concepto:       "tarifa privada",
			Cantidad:       adultos + ninos,
			PrecioUnitario: efectivo,
			Subtotal:       efectivo.Round(2),
		}}
		desglose.Total = efectivo.Round(2)
		return desglose, nil
	}

	precioNino := efectivo.Mul(factorNino)
	subAdultos := efectivo.Mul(decimal.NewFromInt(int64(adultos))).Round(2)
	desglose.Lineas = []dto.LineaPrecio{{
		Concepto:       "adultos",
		Cantidad:       adultos,
		PrecioUnitario: efectivo,
		Subtotal:       subAdultos,
	}}
	total := subAdultos
	if ninos > 0 {
		subNinos := precioNino.Mul(decimal.NewFromInt(int64(ninos))).Round(2)
		desglose.Lineas = append(desglose.Lineas, dto.LineaPrecio{
			Concepto:       "ninos (75%)",
			Cantidad:       ninos,
			PrecioUnitario: precioNino,
			Subtotal:       subNinos,
		})
		total = total.Add(subNinos)
	}
	desglose.Total = total
	return desglose, nil
}
