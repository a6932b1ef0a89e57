package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ruta is a reusable route template (origin/destination) owned by an agency.
// Concrete dated instances are RutaActivada rows.
type Ruta struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Origen    string    `gorm:"not null"`
	Destino   string    `gorm:"not null"`
	AgenciaID uuid.UUID `gorm:"type:uuid;not null;index"`
	Activo    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Agencia *Agencia `gorm:"foreignKey:AgenciaID"`
}

// Tour is a reusable tour template owned by an agency.
type Tour struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"not null"`
	Descripcion *string
	AgenciaID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Activo      bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`

	Agencia *Agencia `gorm:"foreignKey:AgenciaID"`
}
