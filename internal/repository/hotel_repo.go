package repository

import (
	"context"

	"github.com/Eursukkul/hotel-booking-service/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HotelRepository interface {
	Upsert(ctx context.Context, hotel *models.Hotel) error
}

type hotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) HotelRepository {
	return &hotelRepository{db: db}
}

func (r *hotelRepository) Upsert(ctx context.Context, hotel *models.Hotel) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "image", "updated_at"}),
	}).Omit("Rooms").Create(hotel).Error
}
