package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Agencia is a selling/operating agency. Exactly one agency in the system is
// the operator ("Magic Travel"); its id is resolved once at startup (see
// infra.ResolverIdentidadOperadora) and injected wherever classification
// needs it — never re-derived per request.
type Agencia struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"uniqueIndex;not null"`
	Telefono  *string
	Email     *string
	Activo    bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
