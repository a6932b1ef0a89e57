package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Caja is the immutable cash-record snapshot created at most once per
// reservation when payment is confirmed in-house. Trip data is denormalized
// on purpose: the record must survive later edits to the route or service.
// The unique index is partial: only one LIVE record per reservation — a
// soft-deleted snapshot must not block a later re-confirmation.
type Caja struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ReservaID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:ux_cajas_reserva_viva,where:deleted_at IS NULL"`
	UsuarioID      uuid.UUID       `gorm:"type:uuid;not null"`
	Origen         string          `gorm:"not null"`
	Destino        string          `gorm:"not null"`
	FechaViaje     time.Time       `gorm:"not null"`
	NumeroAdultos  int             `gorm:"not null"`
	NumeroNinos    int             `gorm:"not null;default:0"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Total          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// Egreso is an expense charged against a scheduled route.
type Egreso struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RutaActivadaID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Monto          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Descripcion    string          `gorm:"not null"`
	CreatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}
