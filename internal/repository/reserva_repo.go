package repository

import (
	"context"

	"magictravel/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// reservaPreloads is everything classification needs loaded in one fetch:
// the booking chain up to the owning agency, the state label, the service
// prices and the cash record (if any).
var reservaPreloads = []string{
	"Servicio",
	"Estado",
	"Caja",
	"RutaActivada",
	"RutaActivada.Ruta",
	"RutaActivada.Ruta.Agencia",
	"RutaActivada.Vehiculo",
	"TourActivado",
	"TourActivado.Tour",
	"TourActivado.Tour.Agencia",
}

type ReservaRepository interface {
	Create(ctx context.Context, tx *gorm.DB, r *model.Reserva) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Reserva, error)
	ListByRutaActivada(ctx context.Context, rutaActivadaID uuid.UUID) ([]model.Reserva, error)
	ListVivas(ctx context.Context) ([]model.Reserva, error)
	Update(ctx context.Context, r *model.Reserva) error
	UpdateEstadoTx(tx *gorm.DB, id uuid.UUID, estadoID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type reservaRepo struct{ db *gorm.DB }

func NewReservaRepository(db *gorm.DB) ReservaRepository { return &reservaRepo{db: db} }

func (r *reservaRepo) DB() *gorm.DB { return r.db }

func (r *reservaRepo) Create(ctx context.Context, tx *gorm.DB, res *model.Reserva) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Create(res).Error
}

func (r *reservaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Reserva, error) {
	q := r.db.WithContext(ctx)
	for _, p := range reservaPreloads {
		q = q.Preload(p)
	}
	var res model.Reserva
	err := q.First(&res, "id = ?", id).Error
	return &res, err
}

func (r *reservaRepo) ListByRutaActivada(ctx context.Context, rutaActivadaID uuid.UUID) ([]model.Reserva, error) {
	var reservas []model.Reserva
	err := r.db.WithContext(ctx).
		Preload("Estado").Preload("Caja").
		Where("ruta_activada_id = ?", rutaActivadaID).
		Order("created_at ASC").
		Find(&reservas).Error
	return reservas, err
}

func (r *reservaRepo) ListVivas(ctx context.Context) ([]model.Reserva, error) {
	q := r.db.WithContext(ctx)
	for _, p := range reservaPreloads {
		q = q.Preload(p)
	}
	var reservas []model.Reserva
	err := q.Order("created_at DESC").Find(&reservas).Error
	return reservas, err
}

func (r *reservaRepo) Update(ctx context.Context, res *model.Reserva) error {
	return r.db.WithContext(ctx).Save(res).Error
}

func (r *reservaRepo) UpdateEstadoTx(tx *gorm.DB, id uuid.UUID, estadoID uuid.UUID) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Model(&model.Reserva{}).Where("id = ?", id).Update("estado_id", estadoID).Error
}

func (r *reservaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Reserva{}, "id = ?", id).Error
}
