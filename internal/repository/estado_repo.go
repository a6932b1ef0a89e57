package repository

import (
	"context"

	"magictravel/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EstadoRepository interface {
	Create(ctx context.Context, e *model.Estado) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Estado, error)
	// FindByNombreContains resolves a catalog row by label fragment —
	// the single place where state lookup-by-text happens on writes.
	FindByNombreContains(ctx context.Context, fragmento string) (*model.Estado, error)
	List(ctx context.Context) ([]model.Estado, error)
}

type estadoRepo struct{ db *gorm.DB }

func NewEstadoRepository(db *gorm.DB) EstadoRepository { return &estadoRepo{db: db} }

func (r *estadoRepo) Create(ctx context.Context, e *model.Estado) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *estadoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Estado, error) {
	var e model.Estado
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	return &e, err
}

func (r *estadoRepo) FindByNombreContains(ctx context.Context, fragmento string) (*model.Estado, error) {
	var e model.Estado
	err := r.db.WithContext(ctx).
		Where("LOWER(nombre) LIKE LOWER(?)", "%"+fragmento+"%").
		First(&e).Error
	return &e, err
}

func (r *estadoRepo) List(ctx context.Context) ([]model.Estado, error) {
	var estados []model.Estado
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&estados).Error
	return estados, err
}
