package dto

import "github.com/shopspring/decimal"

// ResumenFinanciero is the money side of a liquidation report.
// Neto = IngresoBruto − TotalEgresos − PagoConductor.
type ResumenFinanciero struct {
	IngresoBruto  decimal.Decimal `json:"ingreso_bruto"`
	TotalEgresos  decimal.Decimal `json:"total_egresos"`
	PagoConductor decimal.Decimal `json:"pago_conductor"`
	Neto          decimal.Decimal `json:"neto"`
	MargenPct     decimal.Decimal `json:"margen_pct"`
}

// ConteoPagos tallies direct-sale reservations per payment category.
type ConteoPagos struct {
	Total        int `json:"total"`
	Pendientes   int `json:"pendientes"`
	PorConfirmar int `json:"por_confirmar"`
	Confirmados  int `json:"confirmados"`
	Desconocidos int `json:"desconocidos"`
}

// LiquidacionResponse is the closure report for one scheduled route.
// Estado: SIN_RESERVAS | PENDIENTE_PAGOS | PENDIENTE_CONFIRMACION |
// LISTO_LIQUIDAR | LIQUIDADA
type LiquidacionResponse struct {
	RutaActivadaID     string            `json:"ruta_activada_id"`
	Ruta               string            `json:"ruta"`
	Fecha              string            `json:"fecha"`
	Estado             string            `json:"estado"`
	Conteo             ConteoPagos       `json:"conteo"`
	Resumen            ResumenFinanciero `json:"resumen"`
	AccionesPendientes []string          `json:"acciones_pendientes"`
}

type LiquidacionFinalResponse struct {
	RutaActivadaID string            `json:"ruta_activada_id"`
	NuevoEstado    string            `json:"nuevo_estado"`
	Resumen        ResumenFinanciero `json:"resumen"`
}

// ActualizacionMasivaResponse summarizes a bulk status refresh pass.
type ActualizacionMasivaResponse struct {
	Revisadas    int `json:"revisadas"`
	Actualizadas int `json:"actualizadas"`
	Omitidas     int `json:"omitidas"`
}
