package repository

import (
	"context"

	"magictravel/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AgenciaRepository interface {
	Create(ctx context.Context, a *model.Agencia) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Agencia, error)
	FindByNombreContains(ctx context.Context, fragmento string) (*model.Agencia, error)
	List(ctx context.Context, incluirInactivas bool) ([]model.Agencia, error)
	Update(ctx context.Context, a *model.Agencia) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type agenciaRepo struct{ db *gorm.DB }

func NewAgenciaRepository(db *gorm.DB) AgenciaRepository { return &agenciaRepo{db: db} }

func (r *agenciaRepo) Create(ctx context.Context, a *model.Agencia) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *agenciaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Agencia, error) {
	var a model.Agencia
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	return &a, err
}

func (r *agenciaRepo) FindByNombreContains(ctx context.Context, fragmento string) (*model.Agencia, error) {
	var a model.Agencia
	err := r.db.WithContext(ctx).
		Where("LOWER(nombre) LIKE LOWER(?)", "%"+fragmento+"%").
		First(&a).Error
	return &a, err
}

func (r *agenciaRepo) List(ctx context.Context, incluirInactivas bool) ([]model.Agencia, error) {
	q := r.db.WithContext(ctx)
	if !incluirInactivas {
		q = q.Where("activo = true")
	}
	var agencias []model.Agencia
	err := q.Order("nombre ASC").Find(&agencias).Error
	return agencias, err
}

func (r *agenciaRepo) Update(ctx context.Context, a *model.Agencia) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *agenciaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Agencia{}, "id = ?", id).Error
}
