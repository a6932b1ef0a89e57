package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestClasificarEstadoReserva(t *testing.T) {
	casos := []struct {
		nombre   string
		variante EstadoReserva
	}{
		{"Por confirmar", EstadoReservaPorConfirmar},
		{"Recibido", EstadoReservaPorConfirmar},
		{"Pagada", EstadoReservaPagada},
		{"Cobrado", EstadoReservaPagada},
		{"Pendiente", EstadoReservaPendiente},
		{"Confirmada", EstadoReservaPendiente},
		{"PENDIENTE", EstadoReservaPendiente},
		{"Cancelada", EstadoReservaDesconocido},
		{"", EstadoReservaDesconocido},
	}
	for _, c := range casos {
		assert.Equal(t, c.variante, ClasificarEstadoReserva(c.nombre), "nombre %q", c.nombre)
	}
}

// "Por confirmar" contiene "confirmar" y "Confirmada" contiene "confirmada":
// el orden de evaluacion decide, y debe ganar la confirmacion de conductor.
func TestClasificarEstadoReserva_OrdenDeEvaluacion(t *testing.T) {
	assert.Equal(t, EstadoReservaPorConfirmar, ClasificarEstadoReserva("Pago por confirmar pendiente"))
	assert.Equal(t, EstadoReservaPagada, ClasificarEstadoReserva("Pagada pendiente de liquidar"))
}

func TestClasificarEstadoRuta(t *testing.T) {
	casos := []struct {
		nombre   string
		variante EstadoRuta
	}{
		{"Liquidada", EstadoRutaLiquidada},
		{"Por liquidar", EstadoRutaLiquidada},
		{"Llena", EstadoRutaLlena},
		{"Activada", EstadoRutaActivada},
		{"ACTIVADA", EstadoRutaActivada},
		{"Suspendida", EstadoRutaDesconocido},
	}
	for _, c := range casos {
		assert.Equal(t, c.variante, ClasificarEstadoRuta(c.nombre), "nombre %q", c.nombre)
	}
}

func TestBooking_Union(t *testing.T) {
	rutaID := uuid.New()
	tourID := uuid.New()

	ruta := &Reserva{RutaActivadaID: &rutaID, RutaActivada: &RutaActivada{ID: rutaID}}
	b, err := ruta.Booking()
	assert.NoError(t, err)
	assert.Equal(t, BookingRuta, b.Kind)

	tour := &Reserva{TourActivadoID: &tourID, TourActivado: &TourActivado{ID: tourID}}
	b, err = tour.Booking()
	assert.NoError(t, err)
	assert.Equal(t, BookingTour, b.Kind)

	ninguno := &Reserva{}
	_, err = ninguno.Booking()
	assert.ErrorIs(t, err, ErrReservaSinDestino)

	ambos := &Reserva{RutaActivadaID: &rutaID, TourActivadoID: &tourID}
	_, err = ambos.Booking()
	assert.ErrorIs(t, err, ErrReservaDobleDestino)
}

func TestBooking_AgenciaOperadora(t *testing.T) {
	agencia := &Agencia{ID: uuid.New(), Nombre: "Magic Travel"}
	rutaID := uuid.New()

	res := &Reserva{
		RutaActivadaID: &rutaID,
		RutaActivada: &RutaActivada{
			ID:   rutaID,
			Ruta: &Ruta{AgenciaID: agencia.ID, Agencia: agencia},
		},
	}
	b, err := res.Booking()
	assert.NoError(t, err)
	assert.Equal(t, agencia.ID, b.AgenciaOperadora().ID)

	// cadena sin precargar: nil, nunca panic
	sinCadena := &Reserva{RutaActivadaID: &rutaID, RutaActivada: &RutaActivada{ID: rutaID}}
	b, err = sinCadena.Booking()
	assert.NoError(t, err)
	assert.Nil(t, b.AgenciaOperadora())
}
