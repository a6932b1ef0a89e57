package repository

import (
	"context"

	"magictravel/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VehiculoRepository interface {
	Create(ctx context.Context, v *model.Vehiculo) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Vehiculo, error)
	List(ctx context.Context, incluirInactivos bool) ([]model.Vehiculo, error)
	Update(ctx context.Context, v *model.Vehiculo) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type vehiculoRepo struct{ db *gorm.DB }

func NewVehiculoRepository(db *gorm.DB) VehiculoRepository { return &vehiculoRepo{db: db} }

func (r *vehiculoRepo) Create(ctx context.Context, v *model.Vehiculo) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *vehiculoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Vehiculo, error) {
	var v model.Vehiculo
	err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error
	return &v, err
}

func (r *vehiculoRepo) List(ctx context.Context, incluirInactivos bool) ([]model.Vehiculo, error) {
	q := r.db.WithContext(ctx)
	if !incluirInactivos {
		q = q.Where("activo = true")
	}
	var vehiculos []model.Vehiculo
	err := q.Order("placa ASC").Find(&vehiculos).Error
	return vehiculos, err
}

func (r *vehiculoRepo) Update(ctx context.Context, v *model.Vehiculo) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *vehiculoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Vehiculo{}, "id = ?", id).Error
}
