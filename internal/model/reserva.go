package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Reserva is a booking for a scheduled route or tour (exactly one of the two —
// use Booking() to observe it as a tagged union).
// NumeroAdultos + NumeroNinos is always >= 1 for persisted rows.
type Reserva struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NombreCliente        string          `gorm:"not null"`
	TelefonoCliente      *string
	NumeroAdultos        int             `gorm:"not null"`
	NumeroNinos          int             `gorm:"not null;default:0"`
	MontoCobrar          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ServicioID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	RutaActivadaID       *uuid.UUID      `gorm:"type:uuid;index"`
	TourActivadoID       *uuid.UUID      `gorm:"type:uuid;index"`
	EstadoID             uuid.UUID       `gorm:"type:uuid;not null"`
	AgenciaTransferidaID *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
	DeletedAt            gorm.DeletedAt `gorm:"index"`

	Servicio           *Servicio     `gorm:"foreignKey:ServicioID"`
	RutaActivada       *RutaActivada `gorm:"foreignKey:RutaActivadaID"`
	TourActivado       *TourActivado `gorm:"foreignKey:TourActivadoID"`
	Estado             *Estado       `gorm:"foreignKey:EstadoID"`
	AgenciaTransferida *Agencia      `gorm:"foreignKey:AgenciaTransferidaID"`
	Caja               *Caja         `gorm:"foreignKey:ReservaID"`
}

// TotalPasajeros returns adults + children.
func (r *Reserva) TotalPasajeros() int {
	return r.NumeroAdultos + r.NumeroNinos
}
