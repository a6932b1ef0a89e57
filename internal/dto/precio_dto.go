package dto

import "github.com/shopspring/decimal"

// LineaPrecio is one segment of a price breakdown.
type LineaPrecio struct {
	Concepto       string          `json:"concepto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type DesglosePrecioResponse struct {
	ServicioID     string          `json:"servicio_id"`
	TipoServicio   string          `json:"tipo_servicio"`
	PrecioBase     decimal.Decimal `json:"precio_base"`
	ConDescuento   bool            `json:"con_descuento"`
	PrecioEfectivo decimal.Decimal `json:"precio_efectivo"`
	Lineas         []LineaPrecio   `json:"lineas"`
	Total          decimal.Decimal `json:"total"`
}
