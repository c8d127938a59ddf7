package repository

import (
	"context"
	"time"

	"github.com/Eursukkul/hotel-booking-service/internal/models"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	FindByUserID(ctx context.Context, tx *gorm.DB, userID uint) (*models.Booking, error)
	FindByUserIDWithRoom(ctx context.Context, userID uint) (*models.Booking, error)
	UpdateRoom(ctx context.Context, tx *gorm.DB, bookingID, roomID uint) error
	CountByRoom(ctx context.Context, tx *gorm.DB, roomID uint) (int64, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	return tx.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByUserID(ctx context.Context, tx *gorm.DB, userID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := tx.WithContext(ctx).Where("user_id = ?", userID).First(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByUserIDWithRoom(ctx context.Context, userID uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Preload("Room").
		Where("user_id = ?", userID).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateRoom moves a booking to another room and refreshes updated_at.
func (r *bookingRepository) UpdateRoom(ctx context.Context, tx *gorm.DB, bookingID, roomID uint) error {
	result := tx.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Updates(map[string]any{"room_id": roomID, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *bookingRepository) CountByRoom(ctx context.Context, tx *gorm.DB, roomID uint) (int64, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.Booking{}).
		Where("room_id = ?", roomID).
		Count(&count).Error
	return count, err
}
