package repository

import (
	"context"

	"magictravel/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServicioRepository interface {
	Create(ctx context.Context, s *model.Servicio) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Servicio, error)
}

type servicioRepo struct{ db *gorm.DB }

func NewServicioRepository(db *gorm.DB) ServicioRepository { return &servicioRepo{db: db} }

func (r *servicioRepo) Create(ctx context.Context, s *model.Servicio) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *servicioRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Servicio, error) {
	var s model.Servicio
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return &s, err
}
