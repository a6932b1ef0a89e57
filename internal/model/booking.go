package model

import "errors"

// BookingKind discriminates the Reserva target union.
type BookingKind int

const (
	BookingRuta BookingKind = iota
	BookingTour
)

// Booking is the tagged-union view of a Reserva's target: a scheduled route
// XOR a scheduled tour. Constructing it validates the mutual exclusivity so
// classification code never observes a dual/neither state.
type Booking struct {
	Kind         BookingKind
	RutaActivada *RutaActivada
	TourActivado *TourActivado
}

var (
	ErrReservaSinDestino  = errors.New("la reserva no referencia ruta activada ni tour activado")
	ErrReservaDobleDestino = errors.New("la reserva referencia ruta activada y tour activado a la vez")
)

// Booking resolves the union from the preloaded relations.
func (r *Reserva) Booking() (Booking, error) {
	switch {
	case r.RutaActivadaID != nil && r.TourActivadoID != nil:
		return Booking{}, ErrReservaDobleDestino
	case r.RutaActivadaID != nil:
		return Booking{Kind: BookingRuta, RutaActivada: r.RutaActivada}, nil
	case r.TourActivadoID != nil:
		return Booking{Kind: BookingTour, TourActivado: r.TourActivado}, nil
	default:
		return Booking{}, ErrReservaSinDestino
	}
}

// AgenciaOperadora returns the agency owning the route/tour behind the
// booking, or nil when the template chain is not loaded or inconsistent.
func (b Booking) AgenciaOperadora() *Agencia {
	switch b.Kind {
	case BookingRuta:
		if b.RutaActivada != nil && b.RutaActivada.Ruta != nil {
			return b.RutaActivada.Ruta.Agencia
		}
	case BookingTour:
		if b.TourActivado != nil && b.TourActivado.Tour != nil {
			return b.TourActivado.Tour.Agencia
		}
	}
	return nil
}
