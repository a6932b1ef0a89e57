package dto

import "github.com/shopspring/decimal"

// DisponibilidadResponse reports occupancy vs. capacity for a scheduled route.
// Estado: NO_VEHICULO | COMPLETA | CASI_LLENA | DISPONIBLE | VACIA
type DisponibilidadResponse struct {
	RutaActivadaID      string          `json:"ruta_activada_id"`
	Estado              string          `json:"estado"`
	Capacidad           int             `json:"capacidad"`
	Ocupacion           int             `json:"ocupacion"`
	Disponibles         int             `json:"disponibles"`
	Solicitados         int             `json:"solicitados"`
	PorcentajeOcupacion decimal.Decimal `json:"porcentaje_ocupacion"`
	PuedeAcomodar       bool            `json:"puede_acomodar"`
}
