package repository

import (
	"context"

	"magictravel/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CajaRepository interface {
	CreateTx(tx *gorm.DB, c *model.Caja) error
	ExistsByReserva(ctx context.Context, reservaID uuid.UUID) (bool, error)
	FindByReserva(ctx context.Context, reservaID uuid.UUID) (*model.Caja, error)
	List(ctx context.Context, page, limit int) ([]model.Caja, int64, error)
}

type cajaRepo struct{ db *gorm.DB }

func NewCajaRepository(db *gorm.DB) CajaRepository { return &cajaRepo{db: db} }

func (r *cajaRepo) CreateTx(tx *gorm.DB, c *model.Caja) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(c).Error
}

func (r *cajaRepo) ExistsByReserva(ctx context.Context, reservaID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Caja{}).
		Where("reserva_id = ?", reservaID).Count(&count).Error
	return count > 0, err
}

func (r *cajaRepo) FindByReserva(ctx context.Context, reservaID uuid.UUID) (*model.Caja, error) {
	var c model.Caja
	err := r.db.WithContext(ctx).Where("reserva_id = ?", reservaID).First(&c).Error
	return &c, err
}

func (r *cajaRepo) List(ctx context.Context, page, limit int) ([]model.Caja, int64, error) {
	var cajas []model.Caja
	var total int64
	q := r.db.WithContext(ctx).Model(&model.Caja{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&cajas).Error
	return cajas, total, err
}
