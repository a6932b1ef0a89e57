package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CrearReservaRequest books seats on exactly one of {ruta_activada, tour_activado}.
type CrearReservaRequest struct {
	NombreCliente        string  `json:"nombre_cliente"         validate:"required,min=3"`
	TelefonoCliente      *string `json:"telefono_cliente"`
	NumeroAdultos        int     `json:"numero_adultos"         validate:"required,min=1"`
	NumeroNinos          int     `json:"numero_ninos"           validate:"min=0"`
	ServicioID           string  `json:"servicio_id"            validate:"required,uuid"`
	RutaActivadaID       *string `json:"ruta_activada_id"       validate:"omitempty,uuid"`
	TourActivadoID       *string `json:"tour_activado_id"       validate:"omitempty,uuid"`
	AgenciaTransferidaID *string `json:"agencia_transferida_id" validate:"omitempty,uuid"`
}

type ActualizarReservaRequest struct {
	NombreCliente        *string `json:"nombre_cliente"         validate:"omitempty,min=3"`
	TelefonoCliente      *string `json:"telefono_cliente"`
	NumeroAdultos        *int    `json:"numero_adultos"         validate:"omitempty,min=1"`
	NumeroNinos          *int    `json:"numero_ninos"           validate:"omitempty,min=0"`
	AgenciaTransferidaID *string `json:"agencia_transferida_id" validate:"omitempty,uuid"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ReservaResponse struct {
	ID                   string          `json:"id"`
	NombreCliente        string          `json:"nombre_cliente"`
	TelefonoCliente      *string         `json:"telefono_cliente"`
	NumeroAdultos        int             `json:"numero_adultos"`
	NumeroNinos          int             `json:"numero_ninos"`
	TotalPasajeros       int             `json:"total_pasajeros"`
	MontoCobrar          decimal.Decimal `json:"monto_cobrar"`
	ServicioID           string          `json:"servicio_id"`
	RutaActivadaID       *string         `json:"ruta_activada_id"`
	TourActivadoID       *string         `json:"tour_activado_id"`
	Estado               string          `json:"estado"`
	AgenciaTransferidaID *string         `json:"agencia_transferida_id"`
	CreatedAt            string          `json:"created_at"`
}
