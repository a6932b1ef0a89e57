package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Vehiculo is a transport unit assigned to scheduled routes.
// PagoConductor is the fixed per-trip driver payment used by liquidation.
type Vehiculo struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Placa              string          `gorm:"uniqueIndex;not null"`
	Marca              *string
	CapacidadPasajeros int             `gorm:"not null;default:0"`
	PagoConductor      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Activo             bool            `gorm:"not null;default:true"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}
