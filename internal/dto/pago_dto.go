package dto

import "github.com/shopspring/decimal"

// AccionesRequeridas flags the follow-ups a payment category demands.
type AccionesRequeridas struct {
	ConfirmarPago        bool `json:"confirmar_pago"`
	CrearEnCaja          bool `json:"crear_en_caja"`
	SeguimientoConductor bool `json:"seguimiento_conductor"`
}

// PagoResponse classifies a reservation's payment state.
// FormaPago: PAGO_CAJA | PAGO_CONDUCTOR | PAGADO | PENDIENTE | DESCONOCIDO
type PagoResponse struct {
	ReservaID   string             `json:"reserva_id"`
	FormaPago   string             `json:"forma_pago"`
	Descripcion string             `json:"descripcion"`
	Acciones    AccionesRequeridas `json:"acciones"`
}

type ConfirmacionPagoResponse struct {
	ReservaID   string          `json:"reserva_id"`
	FormaPago   string          `json:"forma_pago"`
	NuevoEstado string          `json:"nuevo_estado"`
	Total       decimal.Decimal `json:"total"`
}
