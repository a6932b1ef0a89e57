package model

import (
	"time"

	"github.com/google/uuid"
)

// Usuario stores system users with role-based access.
// Rol: "vendedor" | "supervisor" | "administrador"
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"uniqueIndex;not null"`
	Nombre       string    `gorm:"not null"`
	Email        *string
	PasswordHash string `gorm:"not null"`
	Rol          string `gorm:"type:varchar(20);not null"`
	Activo       bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Bitacora is an append-only audit row written by the async audit worker.
// Writes are fire-and-forget: a lost audit entry never fails the operation
// that produced it.
type Bitacora struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID *uuid.UUID `gorm:"type:uuid;index"`
	Accion    string     `gorm:"not null"`
	Entidad   string     `gorm:"not null"`
	EntidadID *uuid.UUID `gorm:"type:uuid"`
	Detalle   *string
	CreatedAt time.Time
}
