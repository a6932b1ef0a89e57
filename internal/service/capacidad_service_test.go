package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerificarDisponibilidad_Completa(t *testing.T) {
	f := newFixtura()
	svc := NewCapacidadService(f.rutas, f.reservas)

	ruta := f.nuevaRuta(f.magicTravel, 10, decimal.NewFromInt(150))
	f.nuevaReserva(ruta, "Pendiente", 5, 0, decimal.NewFromInt(500))
	f.nuevaReserva(ruta, "Pendiente", 3, 0, decimal.NewFromInt(300))

	// ocupacion 8 de 10, piden 3
	resp, err := svc.VerificarDisponibilidad(context.Background(), ruta.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, CapacidadCompleta, resp.Estado)
	assert.Equal(t, 2, resp.Disponibles)
	assert.False(t, resp.PuedeAcomodar)
	assert.Equal(t, "80.0", resp.PorcentajeOcupacion.StringFixed(1))
}

func TestVerificarDisponibilidad_CasiLlena(t *testing.T) {
	f := newFixtura()
	svc := NewCapacidadService(f.rutas, f.reservas)

	ruta := f.nuevaRuta(f.magicTravel, 10, decimal.Zero)
	f.nuevaReserva(ruta, "Pendiente", 8, 0, decimal.NewFromInt(800))

	resp, err := svc.VerificarDisponibilidad(context.Background(), ruta.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, CapacidadCasiLlena, resp.Estado)
	assert.True(t, resp.PuedeAcomodar)
}

func TestVerificarDisponibilidad_VaciaYDisponible(t *testing.T) {
	f := newFixtura()
	svc := NewCapacidadService(f.rutas, f.reservas)

	ruta := f.nuevaRuta(f.magicTravel, 10, decimal.Zero)

	resp, err := svc.VerificarDisponibilidad(context.Background(), ruta.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, CapacidadVacia, resp.Estado)

	f.nuevaReserva(ruta, "Pendiente", 2, 0, decimal.NewFromInt(200))
	resp, err = svc.VerificarDisponibilidad(context.Background(), ruta.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, CapacidadDisponible, resp.Estado)
}

func TestVerificarDisponibilidad_SinVehiculo(t *testing.T) {
	f := newFixtura()
	svc := NewCapacidadService(f.rutas, f.reservas)

	ruta := f.nuevaRuta(f.magicTravel, 0, decimal.Zero)

	resp, err := svc.VerificarDisponibilidad(context.Background(), ruta.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, CapacidadSinVehiculo, resp.Estado)
}

func TestVerificarDisponibilidad_PasajerosInvalidos(t *testing.T) {
	f := newFixtura()
	svc := NewCapacidadService(f.rutas, f.reservas)
	ruta := f.nuevaRuta(f.magicTravel, 10, decimal.Zero)

	_, err := svc.VerificarDisponibilidad(context.Background(), ruta.ID, 0)
	assert.ErrorIs(t, err, ErrEntradaInvalida)
}

func TestValidarCapacidad_ExcluyeReservaEditada(t *testing.T) {
	f := newFixtura()
	svc := NewCapacidadService(f.rutas, f.reservas)

	ruta := f.nuevaRuta(f.magicTravel, 10, decimal.Zero)
	propia := f.nuevaReserva(ruta, "Pendiente", 6, 0, decimal.NewFromInt(600))
	f.nuevaReserva(ruta, "Pendiente", 3, 0, decimal.NewFromInt(300))

	// Sin exclusion 6+3=9 ocupados y 7 solicitados no caben; excluyendo la
	// propia quedan 3 ocupados y si caben.
	resp, err := svc.ValidarCapacidad(context.Background(), ruta.ID, 5, 2, nil)
	require.NoError(t, err)
	assert.False(t, resp.PuedeAcomodar)

	resp, err = svc.ValidarCapacidad(context.Background(), ruta.ID, 5, 2, &propia.ID)
	require.NoError(t, err)
	assert.True(t, resp.PuedeAcomodar)
}

func TestDeterminarNuevoEstado(t *testing.T) {
	f := newFixtura()
	svc := NewCapacidadService(f.rutas, f.reservas)

	ruta := f.nuevaRuta(f.magicTravel, 4, decimal.Zero)

	nombre, err := svc.DeterminarNuevoEstado(context.Background(), ruta.ID)
	require.NoError(t, err)
	assert.Equal(t, "Activada", nombre)

	f.nuevaReserva(ruta, "Pendiente", 3, 1, decimal.NewFromInt(400))
	nombre, err = svc.DeterminarNuevoEstado(context.Background(), ruta.ID)
	require.NoError(t, err)
	assert.Equal(t, "Llena", nombre)
}

func TestDeterminarNuevoEstado_SinVehiculoSiempreActivada(t *testing.T) {
	f := newFixtura()
	svc := NewCapacidadService(f.rutas, f.reservas)

	ruta := f.nuevaRuta(f.magicTravel, 0, decimal.Zero)
	f.nuevaReserva(ruta, "Pendiente", 20, 0, decimal.NewFromInt(2000))

	nombre, err := svc.DeterminarNuevoEstado(context.Background(), ruta.ID)
	require.NoError(t, err)
	assert.Equal(t, "Activada", nombre)
}
