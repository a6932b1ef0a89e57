package service

import (
	"context"
	"fmt"
	"time"

	"magictravel/internal/dto"
	"magictravel/internal/model"
	"magictravel/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment classification categories.
const (
	PagoCaja      = "PAGO_CAJA"
	PagoConductor = "PAGO_CONDUCTOR"
	Pagado        = "PAGADO"
	Pendiente     = "PENDIENTE"
	Desconocido   = "DESCONOCIDO"
)

// accionesPorForma is the static required-actions table per category.
var accionesPorForma = map[string]dto.AccionesRequeridas{
	PagoCaja:      {},
	PagoConductor: {ConfirmarPago: true, CrearEnCaja: true, SeguimientoConductor: true},
	Pagado:        {CrearEnCaja: true},
	Pendiente:     {ConfirmarPago: true},
	Desconocido:   {SeguimientoConductor: true},
}

var descripcionPorForma = map[string]string{
	PagoCaja:      "Pago confirmado y registrado en caja",
	PagoConductor: "Pago entregado al conductor, pendiente de confirmacion",
	Pagado:        "Pago cobrado, sin registro en caja",
	Pendiente:     "Reserva confirmada con pago pendiente",
	Desconocido:   "Estado de pago no clasificable",
}

// PagoService classifies a reservation's payment state and confirms
// driver-collected payments.
type PagoService interface {
	ClasificarPago(ctx context.Context, reservaID uuid.UUID) (*dto.PagoResponse, error)
	ConfirmarPagoConductor(ctx context.Context, reservaID, usuarioID uuid.UUID) (*dto.ConfirmacionPagoResponse, error)
}

type pagoService struct {
	reservas repository.ReservaRepository
	cajas    repository.CajaRepository
	estados  repository.EstadoRepository
}

func NewPagoService(
	reservas repository.ReservaRepository,
	cajas repository.CajaRepository,
	estados repository.EstadoRepository,
) PagoService {
	return &pagoService{reservas: reservas, cajas: cajas, estados: estados}
}

// ── ClasificarPago ────────────────────────────────────────────────────────────
// Priority order: an existing cash record wins over any state label; then the
// state variant decides.

func (s *pagoService) ClasificarPago(ctx context.Context, reservaID uuid.UUID) (*dto.PagoResponse, error) {
	reserva, err := s.reservas.FindByID(ctx, reservaID)
	if err != nil {
		return nil, fmt.Errorf("%w: reserva %s", ErrNoEncontrado, reservaID)
	}
	return s.clasificarCargada(ctx, reserva)
}

func (s *pagoService) clasificarCargada(ctx context.Context, reserva *model.Reserva) (*dto.PagoResponse, error) {
	enCaja, err := s.cajas.ExistsByReserva(ctx, reserva.ID)
	if err != nil {
		return nil, err
	}

	forma := Desconocido
	if enCaja {
		forma = PagoCaja
	} else if reserva.Estado != nil {
		switch model.ClasificarEstadoReserva(reserva.Estado.Nombre) {
		case model.EstadoReservaPorConfirmar:
			forma = PagoConductor
		case model.EstadoReservaPagada:
			forma = Pagado
		case model.EstadoReservaPendiente:
			forma = Pendiente
		}
	}

	return &dto.PagoResponse{
		ReservaID:   reserva.ID.String(),
		FormaPago:   forma,
		Descripcion: descripcionPorForma[forma],
		Acciones:    accionesPorForma[forma],
	}, nil
}

// ── ConfirmarPagoConductor ────────────────────────────────────────────────────
// Only valid when the current classification is PAGO_CONDUCTOR. State change
// and cash-record creation happen in one transaction: a reservation can never
// end up "pagada" without its caja snapshot.

func (s *pagoService) ConfirmarPagoConductor(ctx context.Context, reservaID, usuarioID uuid.UUID) (*dto.ConfirmacionPagoResponse, error) {
	reserva, err := s.reservas.FindByID(ctx, reservaID)
	if err != nil {
		return nil, fmt.Errorf("%w: reserva %s", ErrNoEncontrado, reservaID)
	}

	clasif, err := s.clasificarCargada(ctx, reserva)
	if err != nil {
		return nil, err
	}
	if clasif.FormaPago != PagoConductor {
		return nil, fmt.Errorf("%w: la reserva esta en %s, se requiere %s",
			ErrEstadoInvalido, clasif.FormaPago, PagoConductor)
	}

	estadoPagada, err := s.estados.FindByNombreContains(ctx, "pagada")
	if err != nil {
		return nil, fmt.Errorf("%w: no existe estado 'pagada' en el catalogo", ErrConfiguracion)
	}

	if reserva.Servicio == nil {
		return nil, fmt.Errorf("%w: la reserva no tiene servicio cargado", ErrEntradaInvalida)
	}

	origen, destino, fecha := datosViaje(reserva)
	caja := &model.Caja{
		ReservaID:      reserva.ID,
		UsuarioID:      usuarioID,
		Origen:         origen,
		Destino:        destino,
		FechaViaje:     fecha,
		NumeroAdultos:  reserva.NumeroAdultos,
		NumeroNinos:    reserva.NumeroNinos,
		PrecioUnitario: reserva.Servicio.PrecioEfectivo(),
		Total:          reserva.MontoCobrar,
	}

	txErr := runTx(ctx, s.reservas.DB(), func(tx *gorm.DB) error {
		if err := s.reservas.UpdateEstadoTx(tx, reserva.ID, estadoPagada.ID); err != nil {
			return err
		}
		return s.cajas.CreateTx(tx, caja)
	})
	if txErr != nil {
		return nil, txErr
	}

	return &dto.ConfirmacionPagoResponse{
		ReservaID:   reserva.ID.String(),
		FormaPago:   PagoCaja,
		NuevoEstado: estadoPagada.Nombre,
		Total:       caja.Total,
	}, nil
}

// datosViaje pulls the trip snapshot from whichever side of the union the
// reservation points to. Unresolvable pieces stay zero-valued: the snapshot
// must still be written.
func datosViaje(reserva *model.Reserva) (origen, destino string, fecha time.Time) {
	booking, err := reserva.Booking()
	if err != nil {
		return "", "", fecha
	}
	switch booking.Kind {
	case model.BookingRuta:
		if ra := booking.RutaActivada; ra != nil {
			fecha = ra.Fecha
			if ra.Ruta != nil {
				origen, destino = ra.Ruta.Origen, ra.Ruta.Destino
			}
		}
	case model.BookingTour:
		if ta := booking.TourActivado; ta != nil {
			fecha = ta.Fecha
			if ta.Tour != nil {
				origen, destino = ta.Tour.Nombre, ta.Tour.Nombre
			}
		}
	}
	return origen, destino, fecha
}
