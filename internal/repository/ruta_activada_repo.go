package repository

import (
	"context"
	"time"

	"magictravel/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RutaActivadaRepository interface {
	Create(ctx context.Context, ra *model.RutaActivada) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.RutaActivada, error)
	ListHastaFecha(ctx context.Context, fecha time.Time) ([]model.RutaActivada, error)
	UpdateEstado(ctx context.Context, id uuid.UUID, estadoID uuid.UUID) error
	UpdateEstadoTx(tx *gorm.DB, id uuid.UUID, estadoID uuid.UUID) error
	DB() *gorm.DB
}

type rutaActivadaRepo struct{ db *gorm.DB }

func NewRutaActivadaRepository(db *gorm.DB) RutaActivadaRepository {
	return &rutaActivadaRepo{db: db}
}

func (r *rutaActivadaRepo) DB() *gorm.DB { return r.db }

func (r *rutaActivadaRepo) Create(ctx context.Context, ra *model.RutaActivada) error {
	return r.db.WithContext(ctx).Create(ra).Error
}

func (r *rutaActivadaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.RutaActivada, error) {
	var ra model.RutaActivada
	err := r.db.WithContext(ctx).
		Preload("Ruta").Preload("Ruta.Agencia").
		Preload("Vehiculo").Preload("Estado").
		Preload("Reservas").Preload("Reservas.Estado").Preload("Reservas.Caja").
		First(&ra, "id = ?", id).Error
	return &ra, err
}

// ListHastaFecha returns scheduled routes dated on or before fecha.
// Terminal-state filtering happens in the service, where labels become variants.
func (r *rutaActivadaRepo) ListHastaFecha(ctx context.Context, fecha time.Time) ([]model.RutaActivada, error) {
	var rutas []model.RutaActivada
	err := r.db.WithContext(ctx).
		Preload("Ruta").Preload("Vehiculo").Preload("Estado").
		Where("fecha <= ?", fecha).
		Order("fecha ASC").
		Find(&rutas).Error
	return rutas, err
}

func (r *rutaActivadaRepo) UpdateEstado(ctx context.Context, id uuid.UUID, estadoID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.RutaActivada{}).
		Where("id = ?", id).Update("estado_id", estadoID).Error
}

func (r *rutaActivadaRepo) UpdateEstadoTx(tx *gorm.DB, id uuid.UUID, estadoID uuid.UUID) error {
	return tx.Model(&model.RutaActivada{}).Where("id = ?", id).Update("estado_id", estadoID).Error
}
