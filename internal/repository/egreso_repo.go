package repository

import (
	"context"

	"magictravel/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type EgresoRepository interface {
	Create(ctx context.Context, e *model.Egreso) error
	ListByRutaActivada(ctx context.Context, rutaActivadaID uuid.UUID) ([]model.Egreso, error)
	SumByRutaActivada(ctx context.Context, rutaActivadaID uuid.UUID) (decimal.Decimal, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type egresoRepo struct{ db *gorm.DB }

func NewEgresoRepository(db *gorm.DB) EgresoRepository { return &egresoRepo{db: db} }

func (r *egresoRepo) Create(ctx context.Context, e *model.Egreso) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *egresoRepo) ListByRutaActivada(ctx context.Context, rutaActivadaID uuid.UUID) ([]model.Egreso, error) {
	var egresos []model.Egreso
	err := r.db.WithContext(ctx).
		Where("ruta_activada_id = ?", rutaActivadaID).
		Order("created_at ASC").
		Find(&egresos).Error
	return egresos, err
}

func (r *egresoRepo) SumByRutaActivada(ctx context.Context, rutaActivadaID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.Egreso{}).
		Select("COALESCE(SUM(monto), 0)").
		Where("ruta_activada_id = ?", rutaActivadaID).
		Scan(&total).Error
	if err != nil || !total.Valid {
		return decimal.Zero, err
	}
	return total.Decimal, nil
}

func (r *egresoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Egreso{}, "id = ?", id).Error
}
