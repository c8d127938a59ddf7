package repository

import (
	"context"

	"github.com/Eursukkul/hotel-booking-service/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoomRepository interface {
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Room, error)
	Upsert(ctx context.Context, room *models.Room) error
}

type roomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

// FindByIDForUpdate acquires a row-level lock on the room within the given
// transaction. Admissions to the same room serialize on this lock.
func (r *roomRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Room, error) {
	var room models.Room
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// Upsert inserts or updates a room on conflict (same ID from the catalog).
func (r *roomRepository) Upsert(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "capacity", "hotel_id", "updated_at"}),
	}).Create(room).Error
}
