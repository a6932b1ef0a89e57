package service

import (
	"context"
	"testing"

	"magictravel/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClasificarPago_PorEstado(t *testing.T) {
	f := newFixtura()
	svc := NewPagoService(f.reservas, f.cajas, f.estados)
	ruta := f.nuevaRuta(f.magicTravel, 10, decimal.Zero)

	casos := []struct {
		estado string
		forma  string
	}{
		{"Por confirmar", PagoConductor},
		{"Pagada", Pagado},
		{"Pendiente", Pendiente},
		{"Liquidada", Desconocido},
	}

	for _, c := range casos {
		t.Run(c.estado, func(t *testing.T) {
			res := f.nuevaReserva(ruta, c.estado, 1, 0, decimal.NewFromInt(100))
			clasif, err := svc.ClasificarPago(context.Background(), res.ID)
			require.NoError(t, err)
			assert.Equal(t, c.forma, clasif.FormaPago)
		})
	}
}

func TestClasificarPago_CajaGanaSobreEstado(t *testing.T) {
	f := newFixtura()
	svc := NewPagoService(f.reservas, f.cajas, f.estados)
	ruta := f.nuevaRuta(f.magicTravel, 10, decimal.Zero)

	res := f.nuevaReserva(ruta, "Pendiente", 1, 0, decimal.NewFromInt(100))
	require.NoError(t, f.cajas.CreateTx(nil, &model.Caja{ReservaID: res.ID}))

	clasif, err := svc.ClasificarPago(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, PagoCaja, clasif.FormaPago)
	assert.False(t, clasif.Acciones.ConfirmarPago)
	assert.False(t, clasif.Acciones.CrearEnCaja)
}

func TestClasificarPago_NoEncontrada(t *testing.T) {
	f := newFixtura()
	svc := NewPagoService(f.reservas, f.cajas, f.estados)

	_, err := svc.ClasificarPago(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNoEncontrado)
}

func TestConfirmarPagoConductor(t *testing.T) {
	f := newFixtura()
	svc := NewPagoService(f.reservas, f.cajas, f.estados)
	ruta := f.nuevaRuta(f.magicTravel, 10, decimal.Zero)

	res := f.nuevaReserva(ruta, "Por confirmar", 2, 1, decimal.NewFromInt(275))
	usuario := uuid.New()

	conf, err := svc.ConfirmarPagoConductor(context.Background(), res.ID, usuario)
	require.NoError(t, err)
	assert.Equal(t, PagoCaja, conf.FormaPago)
	assert.Equal(t, "Pagada", conf.NuevoEstado)
	assert.Equal(t, "275.00", conf.Total.StringFixed(2))

	// caja snapshot written with the trip data
	caja, err := f.cajas.FindByReserva(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, "Antigua", caja.Origen)
	assert.Equal(t, "Panajachel", caja.Destino)
	assert.Equal(t, 2, caja.NumeroAdultos)
	assert.Equal(t, 1, caja.NumeroNinos)
	assert.Equal(t, usuario, caja.UsuarioID)

	// reservation state moved to pagada
	assert.Equal(t, "Pagada", res.Estado.Nombre)

	// reclassifying now reports the cash record
	clasif, err := svc.ClasificarPago(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, PagoCaja, clasif.FormaPago)
}

func TestConfirmarPagoConductor_EstadoIncorrecto(t *testing.T) {
	f := newFixtura()
	svc := NewPagoService(f.reservas, f.cajas, f.estados)
	ruta := f.nuevaRuta(f.magicTravel, 10, decimal.Zero)

	res := f.nuevaReserva(ruta, "Pendiente", 1, 0, decimal.NewFromInt(100))

	_, err := svc.ConfirmarPagoConductor(context.Background(), res.ID, uuid.New())
	assert.ErrorIs(t, err, ErrEstadoInvalido)
}

func TestConfirmarPagoConductor_YaEnCaja(t *testing.T) {
	f := newFixtura()
	svc := NewPagoService(f.reservas, f.cajas, f.estados)
	ruta := f.nuevaRuta(f.magicTravel, 10, decimal.Zero)

	res := f.nuevaReserva(ruta, "Por confirmar", 1, 0, decimal.NewFromInt(100))
	require.NoError(t, f.cajas.CreateTx(nil, &model.Caja{ReservaID: res.ID}))

	// already PAGO_CAJA: a second confirmation must not double-register
	_, err := svc.ConfirmarPagoConductor(context.Background(), res.ID, uuid.New())
	assert.ErrorIs(t, err, ErrEstadoInvalido)
}
