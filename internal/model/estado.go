package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Estado is the free-text state catalog inherited from the legacy schema.
// Meaning is derived from label content; ALL substring matching is confined
// to the Clasificar* functions below — business logic only sees the variants.
type Estado struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EstadoReserva is the closed variant type for reservation states.
type EstadoReserva int

const (
	EstadoReservaDesconocido EstadoReserva = iota
	// EstadoReservaPorConfirmar: payment handed to the driver, pending
	// in-house confirmation ("Por confirmar", "Recibido").
	EstadoReservaPorConfirmar
	// EstadoReservaPagada: payment settled ("Pagada", "Cobrado").
	EstadoReservaPagada
	// EstadoReservaPendiente: booked but unpaid ("Pendiente", "Confirmada").
	EstadoReservaPendiente
)

func (e EstadoReserva) String() string {
	switch e {
	case EstadoReservaPorConfirmar:
		return "por_confirmar"
	case EstadoReservaPagada:
		return "pagada"
	case EstadoReservaPendiente:
		return "pendiente"
	default:
		return "desconocido"
	}
}

// ClasificarEstadoReserva maps a legacy label to its variant. Match order is
// the contract: driver-confirmation labels win over paid labels, which win
// over pending labels.
func ClasificarEstadoReserva(nombre string) EstadoReserva {
	s := strings.ToLower(nombre)
	switch {
	case strings.Contains(s, "confirmar") || strings.Contains(s, "recibido"):
		return EstadoReservaPorConfirmar
	case strings.Contains(s, "pagada") || strings.Contains(s, "cobrado"):
		return EstadoReservaPagada
	case strings.Contains(s, "pendiente") || strings.Contains(s, "confirmada"):
		return EstadoReservaPendiente
	default:
		return EstadoReservaDesconocido
	}
}

// EstadoRuta is the closed variant type for scheduled-route states.
type EstadoRuta int

const (
	EstadoRutaDesconocido EstadoRuta = iota
	// EstadoRutaLiquidada: financially closed ("Liquidar", "Liquidada"). Terminal.
	EstadoRutaLiquidada
	// EstadoRutaLlena: no seats left.
	EstadoRutaLlena
	// EstadoRutaActivada: operating normally at any other occupancy level.
	EstadoRutaActivada
)

func (e EstadoRuta) String() string {
	switch e {
	case EstadoRutaLiquidada:
		return "liquidada"
	case EstadoRutaLlena:
		return "llena"
	case EstadoRutaActivada:
		return "activada"
	default:
		return "desconocido"
	}
}

// ClasificarEstadoRuta maps a legacy label to its variant.
func ClasificarEstadoRuta(nombre string) EstadoRuta {
	s := strings.ToLower(nombre)
	switch {
	case strings.Contains(s, "liquidar") || strings.Contains(s, "liquidada"):
		return EstadoRutaLiquidada
	case strings.Contains(s, "llena"):
		return EstadoRutaLlena
	case strings.Contains(s, "activada"):
		return EstadoRutaActivada
	default:
		return EstadoRutaDesconocido
	}
}
