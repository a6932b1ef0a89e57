package repository

import (
	"context"

	"magictravel/internal/model"

	"gorm.io/gorm"
)

type BitacoraRepository interface {
	Create(ctx context.Context, b *model.Bitacora) error
}

type bitacoraRepo struct{ db *gorm.DB }

func NewBitacoraRepository(db *gorm.DB) BitacoraRepository { return &bitacoraRepo{db: db} }

func (r *bitacoraRepo) Create(ctx context.Context, b *model.Bitacora) error {
	return r.db.WithContext(ctx).Create(b).Error
}
