package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Service type tags.
const (
	ServicioPrivado   = "PRIVADO"
	ServicioColectivo = "COLECTIVO"
)

// Servicio is the priced offering behind a reservation. It belongs to exactly
// one of {RutaActivada, TourActivado}. PrecioDescuento, when present, is
// never greater than PrecioNormal (enforced at the edge).
type Servicio struct {
	ID              uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RutaActivadaID  *uuid.UUID       `gorm:"type:uuid;index"`
	TourActivadoID  *uuid.UUID       `gorm:"type:uuid;index"`
	Tipo            string           `gorm:"type:varchar(20);not null"`
	PrecioNormal    decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	PrecioDescuento *decimal.Decimal `gorm:"type:decimal(12,2)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`

	RutaActivada *RutaActivada `gorm:"foreignKey:RutaActivadaID"`
	TourActivado *TourActivado `gorm:"foreignKey:TourActivadoID"`
}

// PrecioEfectivo returns the discounted price when present, else the normal one.
func (s *Servicio) PrecioEfectivo() decimal.Decimal {
	if s.PrecioDescuento != nil {
		return *s.PrecioDescuento
	}
	return s.PrecioNormal
}
