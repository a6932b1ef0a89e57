package dto

import "github.com/shopspring/decimal"

// ─── Agencias ────────────────────────────────────────────────────────────────

type AgenciaRequest struct {
	Nombre   string  `json:"nombre"   validate:"required,min=3"`
	Telefono *string `json:"telefono"`
	Email    *string `json:"email"    validate:"omitempty,email"`
}

type AgenciaResponse struct {
	ID       string  `json:"id"`
	Nombre   string  `json:"nombre"`
	Telefono *string `json:"telefono"`
	Email    *string `json:"email"`
	Activo   bool    `json:"activo"`
}

// ─── Vehiculos ───────────────────────────────────────────────────────────────

type VehiculoRequest struct {
	Placa              string          `json:"placa"               validate:"required,min=3"`
	Marca              *string         `json:"marca"`
	CapacidadPasajeros int             `json:"capacidad_pasajeros" validate:"min=0"`
	PagoConductor      decimal.Decimal `json:"pago_conductor"      validate:"min=0"`
}

type VehiculoResponse struct {
	ID                 string          `json:"id"`
	Placa              string          `json:"placa"`
	Marca              *string         `json:"marca"`
	CapacidadPasajeros int             `json:"capacidad_pasajeros"`
	PagoConductor      decimal.Decimal `json:"pago_conductor"`
	Activo             bool            `json:"activo"`
}

// ─── Egresos ─────────────────────────────────────────────────────────────────

type EgresoRequest struct {
	RutaActivadaID string          `json:"ruta_activada_id" validate:"required,uuid"`
	Monto          decimal.Decimal `json:"monto"            validate:"required"`
	Descripcion    string          `json:"descripcion"      validate:"required,min=3"`
}

type EgresoResponse struct {
	ID             string          `json:"id"`
	RutaActivadaID string          `json:"ruta_activada_id"`
	Monto          decimal.Decimal `json:"monto"`
	Descripcion    string          `json:"descripcion"`
	CreatedAt      string          `json:"created_at"`
}

// ─── Cajas ───────────────────────────────────────────────────────────────────

type CajaResponse struct {
	ID             string          `json:"id"`
	ReservaID      string          `json:"reserva_id"`
	Origen         string          `json:"origen"`
	Destino        string          `json:"destino"`
	FechaViaje     string          `json:"fecha_viaje"`
	NumeroAdultos  int             `json:"numero_adultos"`
	NumeroNinos    int             `json:"numero_ninos"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Total          decimal.Decimal `json:"total"`
	CreatedAt      string          `json:"created_at"`
}
