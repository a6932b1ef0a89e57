package service

import (
	"context"
	"testing"

	"magictravel/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcularPrecioReserva_ColectivoConNinos(t *testing.T) {
	servicios := newFakeServicios()
	svc := NewPrecioService(servicios)

	s := &model.Servicio{Tipo: model.ServicioColectivo, PrecioNormal: decimal.NewFromInt(100)}
	require.NoError(t, servicios.Create(context.Background(), s))

	// 2 adultos × 100 + 1 nino × 75
	total, err := svc.CalcularPrecioReserva(context.Background(), s.ID, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, "275.00", total.StringFixed(2))
}

func TestCalcularPrecioReserva_PrivadoEsTarifaPlana(t *testing.T) {
	servicios := newFakeServicios()
	svc := NewPrecioService(servicios)

	s := &model.Servicio{Tipo: model.ServicioPrivado, PrecioNormal: decimal.NewFromInt(500)}
	require.NoError(t, servicios.Create(context.Background(), s))

	uno, err := svc.CalcularPrecioReserva(context.Background(), s.ID, 1, 0)
	require.NoError(t, err)
	ocho, err := svc.CalcularPrecioReserva(context.Background(), s.ID, 6, 2)
	require.NoError(t, err)

	assert.Equal(t, "500.00", uno.StringFixed(2))
	assert.True(t, uno.Equal(ocho), "la tarifa privada no depende de los pasajeros")
}

func TestCalcularPrecioReserva_DescuentoReemplazaPrecioNormal(t *testing.T) {
	servicios := newFakeServicios()
	svc := NewPrecioService(servicios)

	s := &model.Servicio{
		Tipo:            model.ServicioColectivo,
		PrecioNormal:    decimal.NewFromInt(100),
		PrecioDescuento: decimalPtr(decimal.NewFromInt(80)),
	}
	require.NoError(t, servicios.Create(context.Background(), s))

	total, err := svc.CalcularPrecioReserva(context.Background(), s.ID, 1, 1)
	require.NoError(t, err)
	// 80 + 60 — el descuento tambien rebaja la tarifa de ninos
	assert.Equal(t, "140.00", total.StringFixed(2))
}

func TestCalcularPrecioReserva_EntradasInvalidas(t *testing.T) {
	servicios := newFakeServicios()
	svc := NewPrecioService(servicios)

	s := &model.Servicio{Tipo: model.ServicioColectivo, PrecioNormal: decimal.NewFromInt(100)}
	require.NoError(t, servicios.Create(context.Background(), s))

	_, err := svc.CalcularPrecioReserva(context.Background(), s.ID, 0, 2)
	assert.ErrorIs(t, err, ErrEntradaInvalida)

	_, err = svc.CalcularPrecioReserva(context.Background(), s.ID, 1, -1)
	assert.ErrorIs(t, err, ErrEntradaInvalida)
}

func TestCalcularDesglose_Colectivo(t *testing.T) {
	servicios := newFakeServicios()
	svc := NewPrecioService(servicios)

	s := &model.Servicio{Tipo: model.ServicioColectivo, PrecioNormal: decimal.NewFromInt(100)}
	require.NoError(t, servicios.Create(context.Background(), s))

	desglose, err := svc.CalcularDesglose(context.Background(), s.ID, 2, 1)
	require.NoError(t, err)
	require.Len(t, desglose.Lineas, 2)
	assert.Equal(t, "200.00", desglose.Lineas[0].Subtotal.StringFixed(2))
	assert.Equal(t, "75.00", desglose.Lineas[1].Subtotal.StringFixed(2))
	assert.Equal(t, "275.00", desglose.Total.StringFixed(2))
}

func TestCalcularDesglose_SinNinosOmiteLinea(t *testing.T) {
	servicios := newFakeServicios()
	svc := NewPrecioService(servicios)

	s := &model.Servicio{Tipo: model.ServicioColectivo, PrecioNormal: decimal.NewFromInt(100)}
	require.NoError(t, servicios.Create(context.Background(), s))

	desglose, err := svc.CalcularDesglose(context.Background(), s.ID, 3, 0)
	require.NoError(t, err)
	require.Len(t, desglose.Lineas, 1)
	assert.Equal(t, "300.00", desglose.Total.StringFixed(2))
}

func TestCalcularPrecioReserva_ServicioInexistente(t *testing.T) {
	svc := NewPrecioService(newFakeServicios())

	_, err := svc.CalcularPrecioReserva(context.Background(), newFixtura().magicTravel.ID, 1, 0)
	assert.ErrorIs(t, err, ErrNoEncontrado)
}
