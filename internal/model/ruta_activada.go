package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RutaActivada is a route instance scheduled for a specific date, with an
// assigned vehicle, its own reservations and expense records.
// Estado labels observed in production data: "Activada" | "Llena" |
// "Liquidar" | "Liquidada" — classified via ClasificarEstadoRuta.
type RutaActivada struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RutaID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	VehiculoID *uuid.UUID `gorm:"type:uuid;index"`
	Fecha      time.Time  `gorm:"not null;index"`
	EstadoID   uuid.UUID  `gorm:"type:uuid;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`

	Ruta     *Ruta     `gorm:"foreignKey:RutaID"`
	Vehiculo *Vehiculo `gorm:"foreignKey:VehiculoID"`
	Estado   *Estado   `gorm:"foreignKey:EstadoID"`
	Reservas []Reserva `gorm:"foreignKey:RutaActivadaID"`
	Egresos  []Egreso  `gorm:"foreignKey:RutaActivadaID"`
}

// TourActivado is a tour instance scheduled for a specific date.
type TourActivado struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TourID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Fecha     time.Time `gorm:"not null;index"`
	EstadoID  uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Tour     *Tour     `gorm:"foreignKey:TourID"`
	Estado   *Estado   `gorm:"foreignKey:EstadoID"`
	Reservas []Reserva `gorm:"foreignKey:TourActivadoID"`
}
